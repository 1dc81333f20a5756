package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config настройки сервера пиццерии
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Operator OperatorConfig `yaml:"operator"`
	Storage  StorageConfig  `yaml:"storage"`
	// PasswordCost стоимость bcrypt для новых паролей
	PasswordCost int `yaml:"password_cost"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// OperatorConfig учётная запись пиццайоло, создаваемая при пустом каталоге
type OperatorConfig struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	LastName  string `yaml:"last_name"`
	FirstName string `yaml:"first_name"`
}

type StorageConfig struct {
	// Snapshot путь к файлу; пустой отключает сохранение
	Snapshot string `yaml:"snapshot"`
	// Autosave расписание robfig/cron; пустое отключает автосохранение
	Autosave string `yaml:"autosave"`
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":9091",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		Operator: OperatorConfig{
			Email:     "chef@pizza.fr",
			Password:  "admin",
			LastName:  "Chef",
			FirstName: "Mario",
		},
		Storage: StorageConfig{
			Snapshot: "pizzeria.yaml",
			Autosave: "@every 5m",
		},
		PasswordCost: bcrypt.DefaultCost,
	}
}

// Load читает YAML-файл (если путь задан) поверх значений по умолчанию и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PIZZERIA_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("PIZZERIA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PIZZERIA_LOG_DEVELOPMENT"); v != "" {
		cfg.Log.Development = v == "true"
	}
	if v, ok := os.LookupEnv("PIZZERIA_SNAPSHOT"); ok {
		cfg.Storage.Snapshot = v
	}
	if v, ok := os.LookupEnv("PIZZERIA_AUTOSAVE"); ok {
		cfg.Storage.Autosave = v
	}
	if v := os.Getenv("PIZZERIA_OPERATOR_EMAIL"); v != "" {
		cfg.Operator.Email = v
	}
	if v := os.Getenv("PIZZERIA_OPERATOR_PASSWORD"); v != "" {
		cfg.Operator.Password = v
	}
	if v := os.Getenv("PIZZERIA_PASSWORD_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PIZZERIA_PASSWORD_COST: %w", err)
		}
		cfg.PasswordCost = cost
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is empty"))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}
	if c.Operator.Email == "" || c.Operator.Password == "" {
		errs = append(errs, errors.New("operator credentials are empty"))
	}
	if c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("password_cost %d out of range [%d, %d]", c.PasswordCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Storage.Autosave != "" && c.Storage.Snapshot == "" {
		errs = append(errs, errors.New("storage.autosave requires storage.snapshot"))
	}
	return errors.Join(errs...)
}
