package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"pizzeria/internal/config"
	"pizzeria/internal/domain"
	httpapi "pizzeria/internal/http"
	"pizzeria/internal/repository"
	"pizzeria/internal/service"
	"pizzeria/internal/storage"

	_ "pizzeria/docs"
)

func main() {
	app := &cli.App{
		Name:  "pizzeria",
		Usage: "pizza catalog and order processing server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config",
				EnvVars: []string{"PIZZERIA_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "check",
				Usage:  "list pizzas whose ingredients are forbidden for their type",
				Action: check,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deps общие зависимости команд
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *repository.MemoryStore
	tx       *repository.MemoryTx
	snapshot *storage.FileStore
}

func bootstrap(c *cli.Context) (*deps, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	domain.PasswordCost = cfg.PasswordCost

	store := repository.NewMemoryStore(nil)
	tx := repository.NewMemoryTx(store)
	a := &deps{cfg: cfg, logger: logger, store: store, tx: tx}

	ctx := c.Context
	if cfg.Storage.Snapshot != "" {
		a.snapshot = storage.NewFileStore(cfg.Storage.Snapshot, logger)
		err := a.snapshot.LoadCatalog(ctx, store, tx)
		switch {
		case errors.Is(err, storage.ErrNoSnapshot):
			logger.Info("no snapshot, starting with empty catalog", zap.String("path", cfg.Storage.Snapshot))
		case err != nil:
			return nil, err
		}
	}
	if err := a.ensureOperator(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// ensureOperator создаёт пиццайоло из конфигурации, если его нет в каталоге
func (a *deps) ensureOperator(ctx context.Context) error {
	if _, err := a.store.FindAccount(ctx, a.cfg.Operator.Email); err == nil {
		return nil
	}
	op, err := domain.NewOperatorAccount(a.cfg.Operator.Email, a.cfg.Operator.Password,
		domain.NewPersonalInfo(a.cfg.Operator.LastName, a.cfg.Operator.FirstName, "", 0))
	if err != nil {
		return fmt.Errorf("create operator: %w", err)
	}
	if err := a.store.AddAccount(ctx, op); err != nil {
		return fmt.Errorf("create operator: %w", err)
	}
	a.logger.Info("operator account created", zap.String("email", op.Email()))
	return nil
}

func (a *deps) save(ctx context.Context) {
	if a.snapshot == nil {
		return
	}
	if err := a.snapshot.SaveCatalog(ctx, a.store, a.tx); err != nil {
		a.logger.Error("snapshot save failed", zap.Error(err))
	}
}

func serve(c *cli.Context) error {
	a, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	if !a.cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := service.NewSessions()
	clients := service.NewClientService(a.store, a.tx, sessions, a.logger)
	operator := service.NewOperatorService(a.store, a.tx, sessions, a.logger)
	srv := httpapi.NewServer(clients, operator, a.logger)

	httpServer := &http.Server{
		Addr:    a.cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	if a.snapshot != nil && a.cfg.Storage.Autosave != "" {
		scheduler := cron.New()
		if err := scheduler.AddFunc(a.cfg.Storage.Autosave, func() { a.save(context.Background()) }); err != nil {
			return fmt.Errorf("autosave schedule %q: %w", a.cfg.Storage.Autosave, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		a.logger.Info("autosave scheduled",
			zap.String("path", a.snapshot.Path()),
			zap.String("schedule", a.cfg.Storage.Autosave))
	}

	go func() {
		a.logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("shutdown error", zap.Error(err))
	}
	a.save(ctx)
	a.logger.Info("stopped")
	return nil
}

func check(c *cli.Context) error {
	a, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	operator := service.NewOperatorService(a.store, a.tx, service.NewSessions(), a.logger)
	clients := service.NewClientService(a.store, a.tx, service.NewSessions(), a.logger)
	found := 0
	for _, p := range clients.Pizzas(c.Context) {
		conflicts, err := operator.CheckConsistency(c.Context, p.Name)
		if err != nil {
			return err
		}
		if len(conflicts) == 0 {
			continue
		}
		found++
		fmt.Fprintf(c.App.Writer, "%s (%s): %v\n", p.Name, p.Type, conflicts)
	}
	if found == 0 {
		fmt.Fprintln(c.App.Writer, "no conflicts")
	}
	return nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	return zc.Build()
}
