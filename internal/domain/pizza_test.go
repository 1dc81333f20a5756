package domain

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newTestPizza(t *testing.T, name string, kind PizzaType) *Pizza {
	t.Helper()
	p, err := NewPizza(name, kind)
	require.NoError(t, err)
	return p
}

func TestNewPizza_Defaults(t *testing.T) {
	p := newTestPizza(t, "Reine", PizzaMeat)
	assert.Equal(t, "Reine", p.Name())
	assert.Equal(t, PizzaMeat, p.Type())
	assert.Empty(t, p.Ingredients())
	assert.Empty(t, p.Evaluations())
	assert.Equal(t, 0.0, p.Price())
	assert.Equal(t, "", p.Photo())

	_, err := NewPizza("   ", PizzaMeat)
	assert.ErrorIs(t, err, ErrBlankName)
	assert.ErrorIs(t, p.SetName(""), ErrBlankName)
	require.NoError(t, p.SetName("Royale"))
	assert.Equal(t, "Royale", p.Name())
}

func TestMinimumPrice(t *testing.T) {
	assert.Equal(t, 0.0, MinimumPriceFor())
	assert.InDelta(t, 10.30, MinimumPriceFor(7.00, 0.30), 1e-9)
	assert.InDelta(t, 14.0, MinimumPriceFor(10.0), 1e-9)
	// 1.01 * 1.4 = 1.414 -> 1.5
	assert.InDelta(t, 1.5, MinimumPriceFor(1.01), 1e-9)

	p := newTestPizza(t, "Base", PizzaVegetarian)
	require.True(t, p.AddIngredient(NewIngredient("Base", 7.00)))
	require.True(t, p.AddIngredient(NewIngredient("Epice", 0.30)))
	assert.InDelta(t, 10.30, p.MinimumPrice(), 1e-9)
}

func TestManualPrice(t *testing.T) {
	p := newTestPizza(t, "Reine", PizzaMeat)
	dough := NewIngredient("Dough", 10.0)
	require.True(t, p.AddIngredient(dough))
	assert.Equal(t, 14.0, p.Price())

	assert.False(t, p.SetManualPrice(12.0))
	assert.Equal(t, 14.0, p.Price())
	_, set := p.ManualPrice()
	assert.False(t, set)

	assert.True(t, p.SetManualPrice(16.0))
	assert.Equal(t, 16.0, p.Price())
	assert.InDelta(t, 2.0, p.UnitBenefit(), 1e-9)

	p.ClearManualPrice()
	assert.Equal(t, 14.0, p.Price())
}

func TestManualPrice_StaleFallsBackToMinimum(t *testing.T) {
	p := newTestPizza(t, "Reine", PizzaMeat)
	require.True(t, p.AddIngredient(NewIngredient("Dough", 10.0)))
	require.True(t, p.SetManualPrice(15.0))

	ham := NewIngredient("Ham", 5.0)
	require.True(t, p.AddIngredient(ham))
	assert.InDelta(t, 21.0, p.Price(), 1e-9)
	assert.InDelta(t, 0.0, p.UnitBenefit(), 1e-9)

	manual, set := p.ManualPrice()
	assert.True(t, set)
	assert.Equal(t, 15.0, manual)

	require.True(t, p.RemoveIngredient(ham))
	assert.Equal(t, 15.0, p.Price())
}

func TestAddIngredient_DuplicateAndForbidden(t *testing.T) {
	p := newTestPizza(t, "Veggie", PizzaVegetarian)
	tomato := NewIngredient("Tomato", 1.0)
	require.True(t, p.AddIngredient(tomato))
	assert.False(t, p.AddIngredient(tomato))
	assert.Len(t, p.Ingredients(), 1)

	ham := NewIngredient("Ham", 2.0)
	ham.Forbid(PizzaVegetarian)
	assert.False(t, p.AddIngredient(ham))
	assert.Len(t, p.Ingredients(), 1)
	assert.False(t, p.AddIngredient(nil))
}

func TestConflicts_AfterLateRestriction(t *testing.T) {
	p := newTestPizza(t, "Veggie", PizzaVegetarian)
	cheese := NewIngredient("Cheese", 1.0)
	egg := NewIngredient("Egg", 0.5)
	require.True(t, p.AddIngredient(cheese))
	require.True(t, p.AddIngredient(egg))
	assert.Empty(t, p.Conflicts())

	egg.Forbid(PizzaVegetarian)
	assert.Equal(t, []string{"Egg"}, p.Conflicts())
	assert.True(t, p.HasIngredient(egg))

	assert.True(t, egg.Permit(PizzaVegetarian))
	assert.False(t, egg.Permit(PizzaVegetarian))
	assert.Empty(t, p.Conflicts())
}

func TestIngredientRestrictions(t *testing.T) {
	ing := NewIngredient("Anchovy", 1.2)
	ing.Forbid(PizzaVegetarian)
	ing.Forbid(PizzaRegional)
	assert.Equal(t, []PizzaType{PizzaRegional, PizzaVegetarian}, ing.ForbiddenFor.List())
	ing.ResetRestrictions()
	assert.Empty(t, ing.ForbiddenFor.List())
	assert.True(t, ing.NameIs("ANCHOVY"))
}

func TestParsePizzaType(t *testing.T) {
	kind, err := ParsePizzaType(" Meat ")
	require.NoError(t, err)
	assert.Equal(t, PizzaMeat, kind)
	_, err = ParsePizzaType("dessert")
	assert.ErrorIs(t, err, ErrUnknownPizzaType)
}

func TestEvaluations(t *testing.T) {
	p := newTestPizza(t, "Reine", PizzaMeat)
	assert.Equal(t, 0.0, p.AverageRating())

	for _, r := range []int{5, 3, 4} {
		p.AddEvaluation(NewEvaluation(r, "", "a@x.com"))
	}
	assert.Equal(t, 4.0, p.AverageRating())

	assert.Equal(t, 0, NewEvaluation(-3, "", "a").Rating())
	assert.Equal(t, 5, NewEvaluation(9, "great", "a").Rating())
	e := NewEvaluation(2, "meh", "b@x.com")
	assert.Equal(t, "meh", e.Comment())
	assert.Equal(t, "b@x.com", e.Author())
}

func TestSetPhoto(t *testing.T) {
	p := newTestPizza(t, "Reine", PizzaMeat)
	require.NoError(t, p.SetPhoto("img/reine.png"))
	assert.Equal(t, "img/reine.png", p.Photo())
	require.NoError(t, p.SetPhoto("IMG/REINE.JPEG"))

	assert.ErrorIs(t, p.SetPhoto("img/reine.gif"), ErrInvalidPhoto)
	assert.ErrorIs(t, p.SetPhoto("  "), ErrInvalidPhoto)
	assert.Equal(t, "IMG/REINE.JPEG", p.Photo())
}

func TestPersonalInfo(t *testing.T) {
	info := NewPersonalInfo("Chef", "Mario", "", -1)
	assert.Equal(t, 0, info.Age)
	info.SetAge(40)
	info.SetAge(0)
	assert.Equal(t, 40, info.Age)
	info.SetAddress("1 rue de la Paix")
	info.SetAddress("")
	assert.Equal(t, "1 rue de la Paix", info.Address)
	assert.Equal(t, "Mario Chef", info.String())
}

func TestAccounts(t *testing.T) {
	c, err := NewClientAccount("a@x.com", "Secret", NewPersonalInfo("Doe", "Ann", "", 30))
	require.NoError(t, err)
	assert.True(t, c.CheckPassword("Secret"))
	assert.False(t, c.CheckPassword("secret"))
	assert.True(t, EmailMatches(c, "A@X.COM"))
	assert.NotEqual(t, "Secret", c.PasswordHash())

	op, err := NewOperatorAccount("chef@pizza.fr", "admin", NewPersonalInfo("Chef", "Mario", "", 0))
	require.NoError(t, err)

	for _, acc := range []Account{c, op} {
		switch acc.(type) {
		case *ClientAccount:
			assert.Equal(t, "a@x.com", acc.Email())
		case *OperatorAccount:
			assert.Equal(t, "chef@pizza.fr", acc.Email())
		default:
			t.Fatalf("unexpected account %T", acc)
		}
	}

	restored := RestoreClientAccount(c.Email(), c.PasswordHash(), c.Info())
	assert.True(t, restored.CheckPassword("Secret"))

	_, err = NewClientAccount("b@x.com", strings.Repeat("x", MaxPasswordBytes+1), NewPersonalInfo("Doe", "Bob", "", 0))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
