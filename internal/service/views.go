package service

import (
	"time"

	"pizzeria/internal/domain"
)

// Представления строятся под блокировкой каталога и не ссылаются на его объекты

type IngredientView struct {
	Name         string             `json:"name"`
	UnitCost     float64            `json:"unit_cost"`
	ForbiddenFor []domain.PizzaType `json:"forbidden_for"`
}

type EvaluationView struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
	Author  string `json:"author"`
}

type PizzaView struct {
	Name            string           `json:"name"`
	Type            domain.PizzaType `json:"type"`
	Ingredients     []string         `json:"ingredients"`
	MinimumPrice    float64          `json:"minimum_price"`
	Price           float64          `json:"price"`
	ManualPrice     *float64         `json:"manual_price,omitempty"`
	Photo           string           `json:"photo,omitempty"`
	AverageRating   float64          `json:"average_rating"`
	EvaluationCount int              `json:"evaluation_count"`
}

type OrderLineView struct {
	Pizza     string  `json:"pizza"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderView struct {
	ID        string            `json:"id"`
	Owner     string            `json:"owner"`
	State     domain.OrderState `json:"state"`
	Lines     []OrderLineView   `json:"lines"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

type AccountView struct {
	Email    string              `json:"email"`
	Operator bool                `json:"operator"`
	Info     domain.PersonalInfo `json:"info"`
}

type FilterView struct {
	MaxPrice    *float64          `json:"max_price,omitempty"`
	Type        *domain.PizzaType `json:"type,omitempty"`
	Ingredients []string          `json:"ingredients"`
}

func newIngredientView(ing *domain.Ingredient) IngredientView {
	return IngredientView{Name: ing.Name, UnitCost: ing.UnitCost, ForbiddenFor: ing.ForbiddenFor.List()}
}

func newPizzaView(p *domain.Pizza) PizzaView {
	v := PizzaView{
		Name:            p.Name(),
		Type:            p.Type(),
		Ingredients:     make([]string, 0),
		MinimumPrice:    p.MinimumPrice(),
		Price:           p.Price(),
		Photo:           p.Photo(),
		AverageRating:   p.AverageRating(),
		EvaluationCount: len(p.Evaluations()),
	}
	for _, ing := range p.Ingredients() {
		v.Ingredients = append(v.Ingredients, ing.Name)
	}
	if manual, ok := p.ManualPrice(); ok {
		v.ManualPrice = &manual
	}
	return v
}

func newPizzaViews(pizzas []*domain.Pizza) []PizzaView {
	out := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, newPizzaView(p))
	}
	return out
}

func newOrderView(o *domain.Order) OrderView {
	v := OrderView{
		ID:        o.ID(),
		State:     o.State(),
		Lines:     make([]OrderLineView, 0),
		Total:     o.TotalPrice(),
		CreatedAt: o.CreatedAt(),
	}
	if o.Owner() != nil {
		v.Owner = o.Owner().Email()
	}
	for _, l := range o.Lines() {
		v.Lines = append(v.Lines, OrderLineView{Pizza: l.Pizza.Name(), Quantity: l.Quantity, UnitPrice: l.Pizza.Price()})
	}
	return v
}

func newOrderViews(orders []*domain.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderView(o))
	}
	return out
}

func newAccountView(a domain.Account) AccountView {
	_, operator := a.(*domain.OperatorAccount)
	return AccountView{Email: a.Email(), Operator: operator, Info: a.Info()}
}

func newEvaluationViews(evals []domain.Evaluation) []EvaluationView {
	out := make([]EvaluationView, 0, len(evals))
	for _, e := range evals {
		out = append(out, EvaluationView{Rating: e.Rating(), Comment: e.Comment(), Author: e.Author()})
	}
	return out
}
