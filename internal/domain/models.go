package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidState операция недопустима в текущем состоянии заказа
	ErrInvalidState = errors.New("invalid state")
	// ErrBlankName пустое имя пиццы или ингредиента
	ErrBlankName = errors.New("blank name")
	// ErrUnknownPizzaType неизвестный тип пиццы
	ErrUnknownPizzaType = errors.New("unknown pizza type")
	// ErrInvalidPhoto ссылка на фото не является изображением
	ErrInvalidPhoto = errors.New("invalid photo reference")
	// ErrPasswordTooLong bcrypt учитывает не больше 72 байт
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// PizzaType тип пиццы
type PizzaType string

const (
	PizzaVegetarian PizzaType = "vegetarian"
	PizzaMeat       PizzaType = "meat"
	PizzaRegional   PizzaType = "regional"
)

// PizzaTypes известные типы пицц в порядке объявления
var PizzaTypes = []PizzaType{PizzaVegetarian, PizzaMeat, PizzaRegional}

// ParsePizzaType без учёта регистра
func ParsePizzaType(s string) (PizzaType, error) {
	for _, t := range PizzaTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPizzaType, s)
}

// TypeSet множество типов пицц
type TypeSet map[PizzaType]struct{}

func (s TypeSet) Has(t PizzaType) bool {
	_, ok := s[t]
	return ok
}

// List возвращает типы в отсортированном виде
func (s TypeSet) List() []PizzaType {
	out := make([]PizzaType, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Ingredient ингредиент с ценой за единицу и запретами по типам пицц
type Ingredient struct {
	Name         string
	UnitCost     float64
	ForbiddenFor TypeSet
}

func NewIngredient(name string, cost float64) *Ingredient {
	return &Ingredient{Name: name, UnitCost: cost, ForbiddenFor: make(TypeSet)}
}

// Forbids проверяет запрет ингредиента для типа
func (i *Ingredient) Forbids(t PizzaType) bool {
	return i.ForbiddenFor.Has(t)
}

func (i *Ingredient) Forbid(t PizzaType) {
	if i.ForbiddenFor == nil {
		i.ForbiddenFor = make(TypeSet)
	}
	i.ForbiddenFor[t] = struct{}{}
}

// Permit снимает запрет; false если запрета не было
func (i *Ingredient) Permit(t PizzaType) bool {
	if !i.ForbiddenFor.Has(t) {
		return false
	}
	delete(i.ForbiddenFor, t)
	return true
}

func (i *Ingredient) ResetRestrictions() {
	i.ForbiddenFor = make(TypeSet)
}

// NameIs сравнение имени без учёта регистра
func (i *Ingredient) NameIs(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// Evaluation оценка пиццы клиентом, неизменяема после создания
type Evaluation struct {
	rating  int
	comment string
	author  string
}

const (
	MinRating = 0
	MaxRating = 5
)

// NewEvaluation обрезает оценку до диапазона [0,5]
func NewEvaluation(rating int, comment, author string) Evaluation {
	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	return Evaluation{rating: rating, comment: comment, author: author}
}

func (e Evaluation) Rating() int { return e.rating }
func (e Evaluation) Comment() string { return e.comment }
func (e Evaluation) Author() string { return e.author }

// PersonalInfo личные данные владельца учётной записи
type PersonalInfo struct {
	LastName  string `json:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name" yaml:"first_name"`
	Address   string `json:"address" yaml:"address"`
	Age       int    `json:"age" yaml:"age"`
}

func NewPersonalInfo(lastName, firstName, address string, age int) PersonalInfo {
	info := PersonalInfo{LastName: lastName, FirstName: firstName}
	info.SetAddress(address)
	info.SetAge(age)
	return info
}

// SetAge принимает только положительный возраст
func (p *PersonalInfo) SetAge(age int) {
	if age > 0 {
		p.Age = age
	}
}

// SetAddress игнорирует пустой адрес
func (p *PersonalInfo) SetAddress(address string) {
	if address != "" {
		p.Address = address
	}
}

func (p PersonalInfo) String() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
