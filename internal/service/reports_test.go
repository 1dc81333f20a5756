package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

func TestEndToEnd_BenefitZeroWithoutManualPrice(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	token := f.client(t, "a@x.com")

	order := f.order(t, token, map[string]int{"Margherita": 2})
	assert.Equal(t, domain.OrderValidated, order.State)
	assert.InDelta(t, 28.0, order.Total, 1e-9)

	batch := f.operator.CollectValidatedOrders(f.ctx)
	require.Len(t, batch, 1)
	assert.Equal(t, domain.OrderFulfilled, batch[0].State)

	stat, err := f.operator.StatsFor(f.ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, stat.PizzaCount)
	assert.Zero(t, stat.Benefit)
}

func TestEndToEnd_BenefitWithManualPrice(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	ok, err := f.operator.SetManualPrice(f.ctx, "Margherita", 16.0)
	require.NoError(t, err)
	require.True(t, ok)
	token := f.client(t, "a@x.com")

	order := f.order(t, token, map[string]int{"Margherita": 2})
	f.operator.CollectValidatedOrders(f.ctx)

	stat, err := f.operator.StatsFor(f.ctx, "a@x.com")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stat.Benefit, 1e-9)
	assert.InDelta(t, 4.0, f.operator.TotalBenefit(f.ctx), 1e-9)

	benefit, err := f.operator.OrderBenefit(f.ctx, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, benefit, 1e-9)
}

func TestTotalBenefit_OnlyFulfilled(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	_, err := f.operator.SetManualPrice(f.ctx, "Margherita", 15.0)
	require.NoError(t, err)
	token := f.client(t, "a@x.com")

	f.order(t, token, map[string]int{"Margherita": 1})
	f.operator.CollectValidatedOrders(f.ctx)
	pending := f.order(t, token, map[string]int{"Margherita": 10})

	assert.InDelta(t, 1.0, f.operator.TotalBenefit(f.ctx), 1e-9)

	benefit, err := f.operator.OrderBenefit(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, benefit, 1e-9)
	_, err = f.operator.OrderBenefit(f.ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBenefitPerPizza(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	f.pizza(t, "Reine", domain.PizzaMeat, "Ham", 5.0)
	_, err := f.operator.SetManualPrice(f.ctx, "Reine", 9.5)
	require.NoError(t, err)

	got := f.operator.BenefitPerPizza(f.ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "Margherita", got[0].Pizza)
	assert.Zero(t, got[0].UnitBenefit)
	assert.InDelta(t, 7.0, got[1].MinimumPrice, 1e-9)
	assert.InDelta(t, 2.5, got[1].UnitBenefit, 1e-9)
}

func TestClientStats_GroupsByOwner(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	_, err := f.operator.SetManualPrice(f.ctx, "Margherita", 15.0)
	require.NoError(t, err)
	alice := f.client(t, "a@x.com")
	bob := f.client(t, "b@x.com")
	f.client(t, "c@x.com")

	f.order(t, bob, map[string]int{"Margherita": 1})
	f.order(t, alice, map[string]int{"Margherita": 2})
	f.order(t, bob, map[string]int{"Margherita": 3})
	f.operator.CollectValidatedOrders(f.ctx)

	stats := f.operator.ClientStats(f.ctx)
	require.Len(t, stats, 2)
	assert.Equal(t, "b@x.com", stats[0].Email)
	assert.Equal(t, 2, stats[0].Orders)
	assert.Equal(t, 4, stats[0].PizzaCount)
	assert.InDelta(t, 4.0, stats[0].Benefit, 1e-9)
	assert.Equal(t, "a@x.com", stats[1].Email)
	assert.Equal(t, 2, stats[1].PizzaCount)

	idle, err := f.operator.StatsFor(f.ctx, "c@x.com")
	require.NoError(t, err)
	assert.Zero(t, idle.PizzaCount)
	assert.Equal(t, "Luigi", idle.Info.FirstName)

	_, err = f.operator.StatsFor(f.ctx, repository.DefaultOperatorEmail)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPopularityRanking(t *testing.T) {
	f := setup(t)
	f.pizza(t, "Margherita", domain.PizzaVegetarian, "Mozzarella", 10.0)
	f.pizza(t, "Reine", domain.PizzaMeat, "Ham", 5.0)
	f.pizza(t, "Savoyarde", domain.PizzaRegional, "Reblochon", 8.0)
	f.pizza(t, "Quattro", domain.PizzaVegetarian, "Gorgonzola", 8.0)
	token := f.client(t, "a@x.com")

	f.order(t, token, map[string]int{"Reine": 2, "Savoyarde": 1})
	f.order(t, token, map[string]int{"Margherita": 1, "Savoyarde": 1})
	f.operator.CollectValidatedOrders(f.ctx)
	f.order(t, token, map[string]int{"Margherita": 10})

	ranking := f.operator.PopularityRanking(f.ctx)
	assert.Equal(t, []PizzaSales{
		{Pizza: "Reine", Quantity: 2},
		{Pizza: "Savoyarde", Quantity: 2},
		{Pizza: "Margherita", Quantity: 1},
	}, ranking)

	sold, err := f.operator.QuantitySold(f.ctx, "Margherita")
	require.NoError(t, err)
	assert.Equal(t, 1, sold)
	sold, err = f.operator.QuantitySold(f.ctx, "Quattro")
	require.NoError(t, err)
	assert.Zero(t, sold)
}
