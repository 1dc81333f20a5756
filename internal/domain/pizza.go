package domain

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	marginRate = decimal.RequireFromString("1.4")
	priceSteps = decimal.NewFromInt(10)
)

var photoExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// MinimumPriceFor себестоимость плюс 40% с округлением вверх до 0.10
func MinimumPriceFor(costs ...float64) float64 {
	sum := decimal.Zero
	for _, c := range costs {
		sum = sum.Add(decimal.NewFromFloat(c))
	}
	price, _ := sum.Mul(marginRate).Mul(priceSteps).Ceil().Div(priceSteps).Float64()
	return price
}

// Pizza пицца каталога
type Pizza struct {
	name        string
	kind        PizzaType
	ingredients []*Ingredient
	evaluations []Evaluation
	manualPrice *float64
	photo       string
}

func NewPizza(name string, kind PizzaType) (*Pizza, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	return &Pizza{name: name, kind: kind}, nil
}

// RestorePizza собирает пиццу из снимка без проверки запретов
func RestorePizza(name string, kind PizzaType, ingredients []*Ingredient, evaluations []Evaluation, manualPrice *float64, photo string) *Pizza {
	p := &Pizza{name: name, kind: kind, photo: photo}
	for _, ing := range ingredients {
		if !p.HasIngredient(ing) {
			p.ingredients = append(p.ingredients, ing)
		}
	}
	p.evaluations = append(p.evaluations, evaluations...)
	if manualPrice != nil {
		v := *manualPrice
		p.manualPrice = &v
	}
	return p
}

func (p *Pizza) Name() string { return p.name }
func (p *Pizza) Type() PizzaType { return p.kind }
func (p *Pizza) Photo() string { return p.photo }

func (p *Pizza) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	p.name = name
	return nil
}

// NameIs сравнение имени без учёта регистра
func (p *Pizza) NameIs(name string) bool {
	return strings.EqualFold(p.name, name)
}

// Ingredients копия списка ингредиентов
func (p *Pizza) Ingredients() []*Ingredient {
	return append([]*Ingredient(nil), p.ingredients...)
}

func (p *Pizza) HasIngredient(ing *Ingredient) bool {
	for _, cur := range p.ingredients {
		if cur == ing {
			return true
		}
	}
	return false
}

// HasIngredientNamed без учёта регистра
func (p *Pizza) HasIngredientNamed(name string) bool {
	for _, cur := range p.ingredients {
		if cur.NameIs(name) {
			return true
		}
	}
	return false
}

// AddIngredient отказывает для дубликата и для ингредиента, запрещённого для типа пиццы
func (p *Pizza) AddIngredient(ing *Ingredient) bool {
	if ing == nil || p.HasIngredient(ing) || ing.Forbids(p.kind) {
		return false
	}
	p.ingredients = append(p.ingredients, ing)
	return true
}

func (p *Pizza) RemoveIngredient(ing *Ingredient) bool {
	for i, cur := range p.ingredients {
		if cur == ing {
			p.ingredients = append(p.ingredients[:i], p.ingredients[i+1:]...)
			return true
		}
	}
	return false
}

// Conflicts имена ингредиентов, запрещённых для типа пиццы на текущий момент
func (p *Pizza) Conflicts() []string {
	out := make([]string, 0)
	for _, ing := range p.ingredients {
		if ing.Forbids(p.kind) {
			out = append(out, ing.Name)
		}
	}
	return out
}

func (p *Pizza) MinimumPrice() float64 {
	costs := make([]float64, 0, len(p.ingredients))
	for _, ing := range p.ingredients {
		costs = append(costs, ing.UnitCost)
	}
	return MinimumPriceFor(costs...)
}

// Price ручная цена, если она не ниже минимальной, иначе минимальная
func (p *Pizza) Price() float64 {
	floor := p.MinimumPrice()
	if p.manualPrice != nil && *p.manualPrice >= floor {
		return *p.manualPrice
	}
	return floor
}

func (p *Pizza) ManualPrice() (float64, bool) {
	if p.manualPrice == nil {
		return 0, false
	}
	return *p.manualPrice, true
}

// SetManualPrice принимает цену не ниже минимальной на момент вызова
func (p *Pizza) SetManualPrice(price float64) bool {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < p.MinimumPrice() {
		return false
	}
	p.manualPrice = &price
	return true
}

func (p *Pizza) ClearManualPrice() {
	p.manualPrice = nil
}

// UnitBenefit эффективная цена минус минимальная
func (p *Pizza) UnitBenefit() float64 {
	benefit, _ := decimal.NewFromFloat(p.Price()).Sub(decimal.NewFromFloat(p.MinimumPrice())).Float64()
	return benefit
}

// SetPhoto принимает только ссылки на изображения
func (p *Pizza) SetPhoto(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrInvalidPhoto
	}
	ext := strings.ToLower(path.Ext(ref))
	for _, allowed := range photoExtensions {
		if ext == allowed {
			p.photo = ref
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidPhoto, ref)
}

func (p *Pizza) Evaluations() []Evaluation {
	return append([]Evaluation(nil), p.evaluations...)
}

func (p *Pizza) AddEvaluation(e Evaluation) {
	p.evaluations = append(p.evaluations, e)
}

// AverageRating 0 если оценок нет
func (p *Pizza) AverageRating() float64 {
	if len(p.evaluations) == 0 {
		return 0
	}
	sum := 0
	for _, e := range p.evaluations {
		sum += e.Rating()
	}
	return float64(sum) / float64(len(p.evaluations))
}
