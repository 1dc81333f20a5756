package service

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

func TestRegister_Errors(t *testing.T) {
	f := setup(t)
	info := domain.NewPersonalInfo("Rossi", "Luigi", "", 30)

	assert.ErrorIs(t, f.clients.Register(f.ctx, "", "pw", &info), ErrMissingArgument)
	assert.ErrorIs(t, f.clients.Register(f.ctx, "a@x.com", "", &info), ErrMissingArgument)
	assert.ErrorIs(t, f.clients.Register(f.ctx, "a@x.com", "pw", nil), ErrMissingArgument)

	require.NoError(t, f.clients.Register(f.ctx, "a@x.com", "pw", &info))
	assert.ErrorIs(t, f.clients.Register(f.ctx, "A@X.COM", "other", &info), ErrEmailTaken)
	assert.ErrorIs(t, f.clients.Register(f.ctx, repository.DefaultOperatorEmail, "pw", &info), ErrEmailTaken)

	long := strings.Repeat("p", domain.MaxPasswordBytes+1)
	assert.ErrorIs(t, f.clients.Register(f.ctx, "long@x.com", long, &info), ErrPasswordTooLong)
	require.NoError(t, f.clients.Register(f.ctx, "max@x.com", long[:domain.MaxPasswordBytes], &info))
}

func TestLogin_CaseRules(t *testing.T) {
	f := setup(t)
	info := domain.NewPersonalInfo("Rossi", "Luigi", "", 30)
	require.NoError(t, f.clients.Register(f.ctx, "a@x.com", "Secret", &info))

	token, err := f.clients.Login(f.ctx, "A@X.com", "Secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = f.clients.Login(f.ctx, "a@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// пиццайоло не входит как клиент
	_, err = f.clients.Login(f.ctx, repository.DefaultOperatorEmail, repository.DefaultOperatorPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	me, err := f.clients.Me(f.ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)
	assert.False(t, me.Operator)
	assert.Equal(t, "Luigi", me.Info.FirstName)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	f := setup(t)
	token := f.client(t, "a@x.com")

	require.NoError(t, f.clients.Logout(token))
	_, err := f.clients.Me(f.ctx, token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = f.clients.BeginOrder(f.ctx, token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, f.clients.Logout(token), ErrNotAuthenticated)
}

func TestOperatorSessionRejectedByClientOperations(t *testing.T) {
	f := setup(t)
	_, err := f.clients.BeginOrder(f.ctx, f.opToken)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestOrderLifecycle(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	token := f.client(t, "a@x.com")

	_, err := f.clients.AddToOrder(f.ctx, token, "Margherita", 1)
	assert.ErrorIs(t, err, ErrNoActiveOrder)

	started, err := f.clients.BeginOrder(f.ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCreated, started.State)

	ok, err := f.clients.AddToOrder(f.ctx, token, "margherita", 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.clients.AddToOrder(f.ctx, token, "Reine", 1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = f.clients.AddToOrder(f.ctx, token, "Margherita", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	active, err := f.clients.ActiveOrder(f.ctx, token)
	require.NoError(t, err)
	require.Len(t, active.Lines, 1)
	assert.Equal(t, 2, active.Lines[0].Quantity)

	validated, ok, err := f.clients.ValidateOrder(f.ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.OrderValidated, validated.State)
	assert.InDelta(t, 28.0, validated.Total, 1e-9)

	_, err = f.clients.ActiveOrder(f.ctx, token)
	assert.ErrorIs(t, err, ErrNoActiveOrder)

	pending, err := f.clients.PendingOrders(f.ctx, token)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, validated.ID, pending[0].ID)
}

func TestValidateOrder_EmptyCartIsSoftFailure(t *testing.T) {
	f := setup(t)
	token := f.client(t, "a@x.com")
	_, err := f.clients.BeginOrder(f.ctx, token)
	require.NoError(t, err)

	view, ok, err := f.clients.ValidateOrder(f.ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.OrderCreated, view.State)

	past, err := f.clients.PastOrders(f.ctx, token)
	require.NoError(t, err)
	assert.Empty(t, past)
	assert.Empty(t, f.operator.CollectValidatedOrders(f.ctx))
}

func TestCancelOrder(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	token := f.client(t, "a@x.com")

	_, err := f.clients.BeginOrder(f.ctx, token)
	require.NoError(t, err)
	_, err = f.clients.AddToOrder(f.ctx, token, "Margherita", 1)
	require.NoError(t, err)
	cancelled, err := f.clients.CancelOrder(f.ctx, token, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.State)
	assert.Empty(t, cancelled.Lines)
	_, err = f.clients.CancelOrder(f.ctx, token, "")
	assert.ErrorIs(t, err, ErrNoActiveOrder)

	validated := f.order(t, token, map[string]int{"Margherita": 1})
	cancelled, err = f.clients.CancelOrder(f.ctx, token, validated.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.State)

	_, err = f.clients.CancelOrder(f.ctx, token, validated.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = f.clients.CancelOrder(f.ctx, token, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	fulfilled := f.order(t, token, map[string]int{"Margherita": 1})
	f.operator.CollectValidatedOrders(f.ctx)
	_, err = f.clients.CancelOrder(f.ctx, token, fulfilled.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelOrder_OtherClientsOrderNotVisible(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	alice := f.client(t, "a@x.com")
	bob := f.client(t, "b@x.com")

	order := f.order(t, alice, map[string]int{"Margherita": 1})
	_, err := f.clients.CancelOrder(f.ctx, bob, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPastOrders_KeepsEveryState(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	token := f.client(t, "a@x.com")

	first := f.order(t, token, map[string]int{"Margherita": 1})
	f.operator.CollectValidatedOrders(f.ctx)
	second := f.order(t, token, map[string]int{"Margherita": 3})

	past, err := f.clients.PastOrders(f.ctx, token)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, first.ID, past[0].ID)
	assert.Equal(t, domain.OrderFulfilled, past[0].State)
	assert.Equal(t, second.ID, past[1].ID)

	pending, err := f.clients.PendingOrders(f.ctx, token)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestSelectFiltered(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 5.0)
	f.pizza(t, "Reine", domain.PizzaMeat, "Ham", 10.0)
	f.pizza(t, "Savoyarde", domain.PizzaRegional, "Reblochon", 20.0)
	token := f.client(t, "a@x.com")

	names := func() []string {
		t.Helper()
		views, err := f.clients.SelectFiltered(f.ctx, token)
		require.NoError(t, err)
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Margherita", "Reine", "Savoyarde"}, names())

	require.NoError(t, f.clients.SetMaxPrice(token, 14.0))
	assert.Equal(t, []string{"Margherita", "Reine"}, names())

	require.NoError(t, f.clients.SetTypeFilter(token, domain.PizzaMeat))
	assert.Equal(t, []string{"Reine"}, names())

	require.NoError(t, f.clients.ClearFilters(token))
	require.NoError(t, f.clients.SetIngredientFilter(token, "reblochon", "HAM"))
	assert.Equal(t, []string{"Reine", "Savoyarde"}, names())

	// фильтр пересчитывается по текущему каталогу
	_, err := f.operator.ChangeIngredientCost(f.ctx, "Ham", 30.0)
	require.NoError(t, err)
	require.NoError(t, f.clients.SetMaxPrice(token, 30.0))
	assert.Equal(t, []string{"Savoyarde"}, names())

	view, err := f.clients.Filters(token)
	require.NoError(t, err)
	require.NotNil(t, view.MaxPrice)
	assert.Equal(t, 30.0, *view.MaxPrice)
	assert.Equal(t, []string{"reblochon", "ham"}, view.Ingredients)

	assert.ErrorIs(t, f.clients.SetTypeFilter(token, "calzone"), ErrUnknownPizzaType)
}

func TestUpdateFilters_AllOrNothing(t *testing.T) {
	f := setup(t)
	token := f.client(t, "a@x.com")

	limit := 20.0
	kind := domain.PizzaType("Meat")
	view, err := f.clients.UpdateFilters(token, FilterUpdate{MaxPrice: &limit, Type: &kind, Ingredients: []string{"Ham"}})
	require.NoError(t, err)
	require.NotNil(t, view.Type)
	assert.Equal(t, domain.PizzaMeat, *view.Type)
	assert.Equal(t, []string{"ham"}, view.Ingredients)

	other := 5.0
	bad := domain.PizzaType("calzone")
	_, err = f.clients.UpdateFilters(token, FilterUpdate{MaxPrice: &other, Type: &bad})
	assert.ErrorIs(t, err, ErrUnknownPizzaType)

	view, err = f.clients.Filters(token)
	require.NoError(t, err)
	require.NotNil(t, view.MaxPrice)
	assert.Equal(t, 20.0, *view.MaxPrice)
	assert.Equal(t, domain.PizzaMeat, *view.Type)

	nan := math.NaN()
	_, err = f.clients.UpdateFilters(token, FilterUpdate{MaxPrice: &nan})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.clients.UpdateFilters("unknown", FilterUpdate{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFiltersArePerSession(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 5.0)
	f.pizza(t, "Reine", domain.PizzaMeat, "Ham", 10.0)
	alice := f.client(t, "a@x.com")
	bob := f.client(t, "b@x.com")

	require.NoError(t, f.clients.SetTypeFilter(alice, domain.PizzaMeat))
	a, err := f.clients.SelectFiltered(f.ctx, alice)
	require.NoError(t, err)
	b, err := f.clients.SelectFiltered(f.ctx, bob)
	require.NoError(t, err)
	assert.Len(t, a, 1)
	assert.Len(t, b, 2)
}

func TestEvaluations(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "", 0)
	token := f.client(t, "a@x.com")

	avg, err := f.clients.AverageRating(f.ctx, "Margherita")
	require.NoError(t, err)
	assert.Zero(t, avg)

	require.NoError(t, f.clients.AddEvaluation(f.ctx, token, "Margherita", 9, "perfetta"))
	require.NoError(t, f.clients.AddEvaluation(f.ctx, token, "margherita", 2, ""))

	evals, err := f.clients.Evaluations(f.ctx, "Margherita")
	require.NoError(t, err)
	require.Len(t, evals, 2)
	assert.Equal(t, 5, evals[0].Rating)
	assert.Equal(t, "a@x.com", evals[0].Author)

	avg, err = f.clients.AverageRating(f.ctx, "Margherita")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, avg, 1e-9)

	err = f.clients.AddEvaluation(f.ctx, token, "Reine", 3, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	err = f.clients.AddEvaluation(f.ctx, "nope", "Margherita", 3, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
