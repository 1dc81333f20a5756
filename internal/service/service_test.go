package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

func TestMain(m *testing.M) {
	domain.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixture struct {
	ctx      context.Context
	clients  *ClientService
	operator *OperatorService
	sessions *Sessions
	opToken  string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store, err := repository.NewSeededStore()
	require.NoError(t, err)
	tx := repository.NewMemoryTx(store)
	sessions := NewSessions()
	f := &fixture{
		ctx:      context.Background(),
		clients:  NewClientService(store, tx, sessions, nil),
		operator: NewOperatorService(store, tx, sessions, nil),
		sessions: sessions,
	}
	f.opToken, err = f.operator.Login(f.ctx, repository.DefaultOperatorEmail, repository.DefaultOperatorPassword)
	require.NoError(t, err)
	return f
}

// client регистрирует клиента и открывает его сессию
func (f *fixture) client(t *testing.T, email string) string {
	t.Helper()
	info := domain.NewPersonalInfo("Rossi", "Luigi", "1 rue des Pins", 30)
	require.NoError(t, f.clients.Register(f.ctx, email, "pw", &info))
	token, err := f.clients.Login(f.ctx, email, "pw")
	require.NoError(t, err)
	return token
}

// pizza создаёт пиццу с одним ингредиентом заданной стоимости
func (f *fixture) pizza(t *testing.T, name string, kind domain.PizzaType, ingredient string, cost float64) {
	t.Helper()
	_, err := f.operator.CreatePizza(f.ctx, name, kind)
	require.NoError(t, err)
	if ingredient == "" {
		return
	}
	_, err = f.operator.CreateIngredient(f.ctx, ingredient, cost)
	require.NoError(t, err)
	ok, err := f.operator.AddIngredientToPizza(f.ctx, name, ingredient)
	require.NoError(t, err)
	require.True(t, ok)
}

// order оформляет и валидирует заказ из пар пицца/количество
func (f *fixture) order(t *testing.T, token string, lines map[string]int) OrderView {
	t.Helper()
	_, err := f.clients.BeginOrder(f.ctx, token)
	require.NoError(t, err)
	for name, qty := range lines {
		ok, err := f.clients.AddToOrder(f.ctx, token, name, qty)
		require.NoError(t, err)
		require.True(t, ok)
	}
	view, ok, err := f.clients.ValidateOrder(f.ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	return view
}
