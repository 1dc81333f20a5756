package repository

import (
	"context"
	"errors"
	"strings"

	"pizzeria/internal/domain"
)

var (
	// ErrNotFound возвращается, когда сущность не найдена
	ErrNotFound = errors.New("not found")
	// ErrDuplicate сущность с таким именем или email уже есть
	ErrDuplicate = errors.New("already exists")
)

// Snapshot полное состояние каталога для внешнего хранилища
type Snapshot struct {
	Pizzas      []*domain.Pizza
	Ingredients []*domain.Ingredient
	Accounts    []domain.Account
	Orders      []*domain.Order
}

// Catalog интерфейс хранилища каталога (Menu)
type Catalog interface {
	Pizzas(ctx context.Context) []*domain.Pizza
	FindPizza(ctx context.Context, name string) (*domain.Pizza, error)
	AddPizza(ctx context.Context, p *domain.Pizza) error

	Ingredients(ctx context.Context) []*domain.Ingredient
	FindIngredient(ctx context.Context, name string) (*domain.Ingredient, error)
	AddIngredient(ctx context.Context, ing *domain.Ingredient) error

	Accounts(ctx context.Context) []domain.Account
	FindAccount(ctx context.Context, email string) (domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (domain.Account, error)
	AddAccount(ctx context.Context, a domain.Account) error

	Orders(ctx context.Context) []*domain.Order
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
	AppendOrder(ctx context.Context, o *domain.Order) error

	Export(ctx context.Context) Snapshot
	Replace(ctx context.Context, s Snapshot)
}

// TxManager абстракция транзакции. Для in-memory это глобальная блокировка.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive equality on trimmed names
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
