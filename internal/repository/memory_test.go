package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pizzeria/internal/domain"
)

func TestMain(m *testing.M) {
	domain.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newStore(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := NewSeededStore()
	require.NoError(t, err)
	return store
}

func TestMemoryStore_SeededOperator(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	acc, err := store.Authenticate(ctx, "CHEF@pizza.fr", DefaultOperatorPassword)
	require.NoError(t, err)
	_, isOperator := acc.(*domain.OperatorAccount)
	assert.True(t, isOperator)

	_, err = store.Authenticate(ctx, "chef@pizza.fr", "ADMIN")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Authenticate(ctx, "nobody@pizza.fr", "admin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CatalogLookups(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	p, err := domain.NewPizza("Margherita", domain.PizzaVegetarian)
	require.NoError(t, err)
	require.NoError(t, store.AddPizza(ctx, p))
	dup, _ := domain.NewPizza("MARGHERITA", domain.PizzaMeat)
	assert.ErrorIs(t, store.AddPizza(ctx, dup), ErrDuplicate)

	got, err := store.FindPizza(ctx, "margherita")
	require.NoError(t, err)
	assert.Same(t, p, got)
	_, err = store.FindPizza(ctx, "Reine")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.AddIngredient(ctx, domain.NewIngredient("Tomato", 1)))
	assert.ErrorIs(t, store.AddIngredient(ctx, domain.NewIngredient("tomato", 2)), ErrDuplicate)
	ing, err := store.FindIngredient(ctx, " TOMATO ")
	require.NoError(t, err)
	assert.Equal(t, 1.0, ing.UnitCost)
	assert.Len(t, store.Ingredients(ctx), 1)
}

func TestMemoryStore_AccountsAndOrders(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	c, err := domain.NewClientAccount("a@x.com", "pw", domain.PersonalInfo{})
	require.NoError(t, err)
	require.NoError(t, store.AddAccount(ctx, c))
	other, _ := domain.NewClientAccount("A@X.com", "pw2", domain.PersonalInfo{})
	assert.ErrorIs(t, store.AddAccount(ctx, other), ErrDuplicate)
	assert.Len(t, store.Accounts(ctx), 2)

	o := domain.NewOrder(c)
	require.NoError(t, store.AppendOrder(ctx, o))
	assert.ErrorIs(t, store.AppendOrder(ctx, o), ErrDuplicate)
	got, err := store.FindOrder(ctx, o.ID())
	require.NoError(t, err)
	assert.Same(t, o, got)
	_, err = store.FindOrder(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExportReplaceKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p, _ := domain.NewPizza("Margherita", domain.PizzaVegetarian)
	require.NoError(t, store.AddPizza(ctx, p))

	snap := store.Export(ctx)
	require.Len(t, snap.Pizzas, 1)
	require.Len(t, snap.Accounts, 1)

	other := newStore(t)
	reine, _ := domain.NewPizza("Reine", domain.PizzaMeat)
	require.NoError(t, other.AddPizza(ctx, reine))
	same := other
	other.Replace(ctx, snap)

	assert.Same(t, same, other)
	names := []string{}
	for _, pz := range other.Pizzas(ctx) {
		names = append(names, pz.Name())
	}
	assert.Equal(t, []string{"Margherita"}, names)

	// снимок не разделяет срезы с хранилищем
	snap.Pizzas[0] = reine
	got, err := other.FindPizza(ctx, "Margherita")
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestMemoryTx_TransactionalUpdate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	tx := NewMemoryTx(store)

	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := domain.NewPizza("Margherita", domain.PizzaVegetarian)
		if err != nil {
			return err
		}
		if err := store.AddPizza(ctx, p); err != nil {
			return err
		}
		// вложенная транзакция не берёт блокировку повторно
		return tx.WithReadTransaction(ctx, func(ctx context.Context) error {
			_, err := store.FindPizza(ctx, "margherita")
			return err
		})
	})
	require.NoError(t, err)
	assert.Len(t, store.Pizzas(ctx), 1)
}

func TestMemoryTx_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	tx := NewMemoryTx(store)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = tx.WithTransaction(ctx, func(ctx context.Context) error {
				return store.AddIngredient(ctx, domain.NewIngredient(fmt.Sprintf("ing-%02d", i), 1))
			})
		}(i)
	}
	wg.Wait()
	assert.Len(t, store.Ingredients(ctx), 50)
}
