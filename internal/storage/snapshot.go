package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

// ErrNoSnapshot файл снимка отсутствует
var ErrNoSnapshot = errors.New("snapshot not found")

const formatVersion = 1

// Записи снимка ссылаются друг на друга по имени, email и ID заказа
type snapshotFile struct {
	Version     int                `yaml:"version"`
	SavedAt     time.Time          `yaml:"saved_at"`
	Ingredients []ingredientRecord `yaml:"ingredients"`
	Pizzas      []pizzaRecord      `yaml:"pizzas"`
	Accounts    []accountRecord    `yaml:"accounts"`
	Orders      []orderRecord      `yaml:"orders"`
}

type ingredientRecord struct {
	Name         string             `yaml:"name"`
	UnitCost     float64            `yaml:"unit_cost"`
	ForbiddenFor []domain.PizzaType `yaml:"forbidden_for,omitempty"`
}

type evaluationRecord struct {
	Rating  int    `yaml:"rating"`
	Comment string `yaml:"comment,omitempty"`
	Author  string `yaml:"author"`
}

type pizzaRecord struct {
	Name        string             `yaml:"name"`
	Type        domain.PizzaType   `yaml:"type"`
	Ingredients []string           `yaml:"ingredients,omitempty"`
	ManualPrice *float64           `yaml:"manual_price,omitempty"`
	Photo       string             `yaml:"photo,omitempty"`
	Evaluations []evaluationRecord `yaml:"evaluations,omitempty"`
}

type accountRecord struct {
	Email        string              `yaml:"email"`
	PasswordHash string              `yaml:"password_hash"`
	Operator     bool                `yaml:"operator,omitempty"`
	Info         domain.PersonalInfo `yaml:"info"`
	History      []string            `yaml:"history,omitempty"`
}

type lineRecord struct {
	Pizza    string `yaml:"pizza"`
	Quantity int    `yaml:"quantity"`
}

type orderRecord struct {
	ID        string            `yaml:"id"`
	Owner     string            `yaml:"owner"`
	State     domain.OrderState `yaml:"state"`
	CreatedAt time.Time         `yaml:"created_at"`
	Lines     []lineRecord      `yaml:"lines,omitempty"`
}

// FileStore хранит снимок каталога в YAML-файле
type FileStore struct {
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger.Named("storage")}
}

func (f *FileStore) Path() string { return f.path }

// SaveCatalog снимает каталог под блокировкой чтения и пишет файл
func (f *FileStore) SaveCatalog(ctx context.Context, catalog repository.Catalog, tx repository.TxManager) error {
	var data []byte
	err := tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		var err error
		data, err = Encode(catalog.Export(ctx))
		return err
	})
	if err != nil {
		return err
	}
	return f.write(data)
}

// LoadCatalog заменяет содержимое каталога снимком из файла
func (f *FileStore) LoadCatalog(ctx context.Context, catalog repository.Catalog, tx repository.TxManager) error {
	snap, err := f.Load()
	if err != nil {
		return err
	}
	return tx.WithTransaction(ctx, func(ctx context.Context) error {
		catalog.Replace(ctx, snap)
		return nil
	})
}

// write пишет атомарно: временный файл и rename
func (f *FileStore) write(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", f.path, err)
	}
	f.logger.Debug("snapshot saved", zap.String("path", f.path), zap.Int("bytes", len(data)))
	return nil
}

// Load читает снимок; ErrNoSnapshot если файла нет
func (f *FileStore) Load() (repository.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return repository.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("failed to read snapshot %s: %w", f.path, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("snapshot %s: %w", f.path, err)
	}
	f.logger.Info("snapshot loaded",
		zap.String("path", f.path),
		zap.Int("pizzas", len(snap.Pizzas)),
		zap.Int("accounts", len(snap.Accounts)),
		zap.Int("orders", len(snap.Orders)))
	return snap, nil
}

// Encode сериализует снимок в YAML
func Encode(s repository.Snapshot) ([]byte, error) {
	file := snapshotFile{Version: formatVersion, SavedAt: time.Now().UTC()}
	for _, ing := range s.Ingredients {
		file.Ingredients = append(file.Ingredients, ingredientRecord{
			Name:         ing.Name,
			UnitCost:     ing.UnitCost,
			ForbiddenFor: ing.ForbiddenFor.List(),
		})
	}
	for _, p := range s.Pizzas {
		rec := pizzaRecord{Name: p.Name(), Type: p.Type(), Photo: p.Photo()}
		for _, ing := range p.Ingredients() {
			rec.Ingredients = append(rec.Ingredients, ing.Name)
		}
		if manual, ok := p.ManualPrice(); ok {
			rec.ManualPrice = &manual
		}
		for _, e := range p.Evaluations() {
			rec.Evaluations = append(rec.Evaluations, evaluationRecord{Rating: e.Rating(), Comment: e.Comment(), Author: e.Author()})
		}
		file.Pizzas = append(file.Pizzas, rec)
	}
	for _, a := range s.Accounts {
		rec := accountRecord{Email: a.Email(), PasswordHash: a.PasswordHash(), Info: a.Info()}
		switch acc := a.(type) {
		case *domain.OperatorAccount:
			rec.Operator = true
		case *domain.ClientAccount:
			for _, o := range acc.History() {
				rec.History = append(rec.History, o.ID())
			}
		}
		file.Accounts = append(file.Accounts, rec)
	}
	for _, o := range s.Orders {
		rec := orderRecord{ID: o.ID(), State: o.State(), CreatedAt: o.CreatedAt()}
		if o.Owner() != nil {
			rec.Owner = o.Owner().Email()
		}
		for _, l := range o.Lines() {
			rec.Lines = append(rec.Lines, lineRecord{Pizza: l.Pizza.Name(), Quantity: l.Quantity})
		}
		file.Orders = append(file.Orders, rec)
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode разбирает YAML и восстанавливает связи между объектами
func Decode(data []byte) (repository.Snapshot, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return repository.Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if file.Version != formatVersion {
		return repository.Snapshot{}, fmt.Errorf("unsupported snapshot version %d", file.Version)
	}

	var snap repository.Snapshot
	ingredients := make(map[string]*domain.Ingredient, len(file.Ingredients))
	for _, rec := range file.Ingredients {
		ing := domain.NewIngredient(rec.Name, rec.UnitCost)
		for _, t := range rec.ForbiddenFor {
			kind, err := domain.ParsePizzaType(string(t))
			if err != nil {
				return repository.Snapshot{}, fmt.Errorf("ingredient %q: %w", rec.Name, err)
			}
			ing.Forbid(kind)
		}
		if _, dup := ingredients[key(rec.Name)]; dup {
			return repository.Snapshot{}, fmt.Errorf("duplicate ingredient %q", rec.Name)
		}
		ingredients[key(rec.Name)] = ing
		snap.Ingredients = append(snap.Ingredients, ing)
	}

	pizzas := make(map[string]*domain.Pizza, len(file.Pizzas))
	for _, rec := range file.Pizzas {
		kind, err := domain.ParsePizzaType(string(rec.Type))
		if err != nil {
			return repository.Snapshot{}, fmt.Errorf("pizza %q: %w", rec.Name, err)
		}
		ings := make([]*domain.Ingredient, 0, len(rec.Ingredients))
		for _, name := range rec.Ingredients {
			ing, ok := ingredients[key(name)]
			if !ok {
				return repository.Snapshot{}, fmt.Errorf("pizza %q: unknown ingredient %q", rec.Name, name)
			}
			ings = append(ings, ing)
		}
		evals := make([]domain.Evaluation, 0, len(rec.Evaluations))
		for _, e := range rec.Evaluations {
			evals = append(evals, domain.NewEvaluation(e.Rating, e.Comment, e.Author))
		}
		if _, dup := pizzas[key(rec.Name)]; dup {
			return repository.Snapshot{}, fmt.Errorf("duplicate pizza %q", rec.Name)
		}
		p := domain.RestorePizza(rec.Name, kind, ings, evals, rec.ManualPrice, rec.Photo)
		pizzas[key(rec.Name)] = p
		snap.Pizzas = append(snap.Pizzas, p)
	}

	clients := make(map[string]*domain.ClientAccount)
	emails := make(map[string]struct{}, len(file.Accounts))
	for _, rec := range file.Accounts {
		if _, dup := emails[key(rec.Email)]; dup {
			return repository.Snapshot{}, fmt.Errorf("duplicate account %q", rec.Email)
		}
		emails[key(rec.Email)] = struct{}{}
		if rec.Operator {
			snap.Accounts = append(snap.Accounts, domain.RestoreOperatorAccount(rec.Email, rec.PasswordHash, rec.Info))
			continue
		}
		c := domain.RestoreClientAccount(rec.Email, rec.PasswordHash, rec.Info)
		clients[key(rec.Email)] = c
		snap.Accounts = append(snap.Accounts, c)
	}

	orders := make(map[string]*domain.Order, len(file.Orders))
	for _, rec := range file.Orders {
		if _, dup := orders[rec.ID]; dup {
			return repository.Snapshot{}, fmt.Errorf("duplicate order %s", rec.ID)
		}
		owner, ok := clients[key(rec.Owner)]
		if !ok {
			return repository.Snapshot{}, fmt.Errorf("order %s: unknown owner %q", rec.ID, rec.Owner)
		}
		lines := make([]domain.OrderLine, 0, len(rec.Lines))
		for _, l := range rec.Lines {
			if l.Quantity <= 0 {
				return repository.Snapshot{}, fmt.Errorf("order %s: quantity %d for %q", rec.ID, l.Quantity, l.Pizza)
			}
			p, ok := pizzas[key(l.Pizza)]
			if !ok {
				return repository.Snapshot{}, fmt.Errorf("order %s: unknown pizza %q", rec.ID, l.Pizza)
			}
			lines = append(lines, domain.OrderLine{Pizza: p, Quantity: l.Quantity})
		}
		switch rec.State {
		case domain.OrderCreated, domain.OrderValidated, domain.OrderFulfilled, domain.OrderCancelled:
		default:
			return repository.Snapshot{}, fmt.Errorf("order %s: unknown state %q", rec.ID, rec.State)
		}
		o := domain.RestoreOrder(rec.ID, owner, lines, rec.State, rec.CreatedAt)
		orders[rec.ID] = o
		snap.Orders = append(snap.Orders, o)
	}

	for _, rec := range file.Accounts {
		c, ok := clients[key(rec.Email)]
		if !ok {
			continue
		}
		for _, id := range rec.History {
			o, ok := orders[id]
			if !ok {
				return repository.Snapshot{}, fmt.Errorf("account %s: unknown order %s", rec.Email, id)
			}
			c.AppendOrder(o)
		}
	}
	return snap, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
