package service

import (
	"strings"

	"pizzeria/internal/domain"
)

// Filter критерии отбора пицц клиентом.
// Ингредиентный фильтр включающий: пицца проходит, если содержит хотя бы один из ингредиентов.
// Пустой список пропускает всё.
type Filter struct {
	MaxPrice    *float64
	Type        *domain.PizzaType
	Ingredients []string
}

func (f Filter) Matches(p *domain.Pizza) bool {
	if f.MaxPrice != nil && p.Price() > *f.MaxPrice {
		return false
	}
	if f.Type != nil && p.Type() != *f.Type {
		return false
	}
	if len(f.Ingredients) == 0 {
		return true
	}
	for _, name := range f.Ingredients {
		if p.HasIngredientNamed(name) {
			return true
		}
	}
	return false
}

// WithIngredients заменяет список ингредиентов, пустые имена пропускаются
func (f Filter) WithIngredients(names ...string) Filter {
	f.Ingredients = nil
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			f.Ingredients = append(f.Ingredients, n)
		}
	}
	return f
}

func (f Filter) view() FilterView {
	v := FilterView{Ingredients: append([]string{}, f.Ingredients...)}
	if f.MaxPrice != nil {
		limit := *f.MaxPrice
		v.MaxPrice = &limit
	}
	if f.Type != nil {
		kind := *f.Type
		v.Type = &kind
	}
	return v
}
