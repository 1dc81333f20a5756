package repository

import (
	"context"
	"sync"

	"pizzeria/internal/domain"
)

const (
	DefaultOperatorEmail    = "chef@pizza.fr"
	DefaultOperatorPassword = "admin"
)

// MemoryStore единое in-memory хранилище каталога: пиццы, ингредиенты, учётные записи, журнал заказов
type MemoryStore struct {
	mu          sync.RWMutex
	pizzas      []*domain.Pizza
	ingredients []*domain.Ingredient
	accounts    []domain.Account
	orders      []*domain.Order
}

// NewMemoryStore создаёт каталог с учётной записью пиццайоло
func NewMemoryStore(operator *domain.OperatorAccount) *MemoryStore {
	m := &MemoryStore{}
	if operator != nil {
		m.accounts = append(m.accounts, operator)
	}
	return m
}

// NewSeededStore каталог с пиццайоло по умолчанию
func NewSeededStore() (*MemoryStore, error) {
	op, err := domain.NewOperatorAccount(DefaultOperatorEmail, DefaultOperatorPassword,
		domain.NewPersonalInfo("Chef", "Mario", "", 0))
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(op), nil
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var (
	_ Catalog   = (*MemoryStore)(nil)
	_ TxManager = (*MemoryTx)(nil)
)

func (m *MemoryStore) Pizzas(ctx context.Context) []*domain.Pizza {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]*domain.Pizza(nil), m.pizzas...)
}

func (m *MemoryStore) FindPizza(ctx context.Context, name string) (*domain.Pizza, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, p := range m.pizzas {
		if sameName(p.Name(), name) {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AddPizza(ctx context.Context, p *domain.Pizza) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, cur := range m.pizzas {
		if cur == p || sameName(cur.Name(), p.Name()) {
			return ErrDuplicate
		}
	}
	m.pizzas = append(m.pizzas, p)
	return nil
}

func (m *MemoryStore) Ingredients(ctx context.Context) []*domain.Ingredient {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]*domain.Ingredient(nil), m.ingredients...)
}

func (m *MemoryStore) FindIngredient(ctx context.Context, name string) (*domain.Ingredient, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, ing := range m.ingredients {
		if sameName(ing.Name, name) {
			return ing, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AddIngredient(ctx context.Context, ing *domain.Ingredient) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, cur := range m.ingredients {
		if cur == ing || sameName(cur.Name, ing.Name) {
			return ErrDuplicate
		}
	}
	m.ingredients = append(m.ingredients, ing)
	return nil
}

func (m *MemoryStore) Accounts(ctx context.Context) []domain.Account {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]domain.Account(nil), m.accounts...)
}

func (m *MemoryStore) FindAccount(ctx context.Context, email string) (domain.Account, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, a := range m.accounts {
		if domain.EmailMatches(a, email) {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Authenticate email без учёта регистра, пароль с учётом
func (m *MemoryStore) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	a, err := m.FindAccount(ctx, email)
	if err != nil {
		return nil, err
	}
	if !a.CheckPassword(password) {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *MemoryStore) AddAccount(ctx context.Context, a domain.Account) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, cur := range m.accounts {
		if domain.EmailMatches(cur, a.Email()) {
			return ErrDuplicate
		}
	}
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *MemoryStore) Orders(ctx context.Context) []*domain.Order {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]*domain.Order(nil), m.orders...)
}

func (m *MemoryStore) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, o := range m.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

// AppendOrder добавляет заказ в общий журнал
func (m *MemoryStore) AppendOrder(ctx context.Context, o *domain.Order) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, cur := range m.orders {
		if cur == o || cur.ID() == o.ID() {
			return ErrDuplicate
		}
	}
	m.orders = append(m.orders, o)
	return nil
}

// Export копия всех коллекций; элементы общие с каталогом
func (m *MemoryStore) Export(ctx context.Context) Snapshot {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return Snapshot{
		Pizzas:      append([]*domain.Pizza(nil), m.pizzas...),
		Ingredients: append([]*domain.Ingredient(nil), m.ingredients...),
		Accounts:    append([]domain.Account(nil), m.accounts...),
		Orders:      append([]*domain.Order(nil), m.orders...),
	}
}

// Replace заменяет содержимое на месте, сам объект хранилища остаётся прежним
func (m *MemoryStore) Replace(ctx context.Context, s Snapshot) {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	m.pizzas = append([]*domain.Pizza(nil), s.Pizzas...)
	m.ingredients = append([]*domain.Ingredient(nil), s.Ingredients...)
	m.accounts = append([]domain.Account(nil), s.Accounts...)
	m.orders = append([]*domain.Order(nil), s.Orders...)
}

// MemoryTx эмулирует транзакцию глобальной блокировкой
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозиторий пропускал внутренние локи
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}

// WithReadTransaction то же под блокировкой чтения; fn не должна менять каталог
func (tx *MemoryTx) WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
