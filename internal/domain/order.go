package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderState статус заказа
type OrderState string

const (
	OrderCreated   OrderState = "created"
	OrderValidated OrderState = "validated"
	OrderFulfilled OrderState = "fulfilled"
	OrderCancelled OrderState = "cancelled"
)

// Terminal из терминальных состояний переходов нет
func (s OrderState) Terminal() bool {
	return s == OrderFulfilled || s == OrderCancelled
}

// OrderLine позиция заказа
type OrderLine struct {
	Pizza    *Pizza
	Quantity int
}

// Order заказ клиента
type Order struct {
	id        string
	owner     *ClientAccount
	lines     []OrderLine
	state     OrderState
	createdAt time.Time
}

func NewOrder(owner *ClientAccount) *Order {
	return &Order{
		id:        uuid.NewString(),
		owner:     owner,
		state:     OrderCreated,
		createdAt: time.Now().UTC(),
	}
}

// RestoreOrder собирает заказ из снимка
func RestoreOrder(id string, owner *ClientAccount, lines []OrderLine, state OrderState, createdAt time.Time) *Order {
	o := &Order{id: id, owner: owner, state: state, createdAt: createdAt}
	for _, l := range lines {
		o.accumulate(l.Pizza, l.Quantity)
	}
	return o
}

func (o *Order) ID() string { return o.id }
func (o *Order) Owner() *ClientAccount { return o.owner }
func (o *Order) State() OrderState { return o.state }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Lines() []OrderLine { return append([]OrderLine(nil), o.lines...) }
func (o *Order) Empty() bool { return len(o.lines) == 0 }
func (o *Order) Is(state OrderState) bool { return o.state == state }

// AddLine добавляет пиццы в корзину; количество одной пиццы накапливается
func (o *Order) AddLine(p *Pizza, qty int) (bool, error) {
	if o.state != OrderCreated {
		return false, ErrInvalidState
	}
	if p == nil || qty <= 0 {
		return false, nil
	}
	o.accumulate(p, qty)
	return true, nil
}

func (o *Order) accumulate(p *Pizza, qty int) {
	for i := range o.lines {
		if o.lines[i].Pizza == p {
			o.lines[i].Quantity += qty
			return
		}
	}
	o.lines = append(o.lines, OrderLine{Pizza: p, Quantity: qty})
}

// Validate false для пустой корзины или вне состояния created
func (o *Order) Validate() bool {
	if o.state != OrderCreated || len(o.lines) == 0 {
		return false
	}
	o.state = OrderValidated
	return true
}

// Fulfill только из validated
func (o *Order) Fulfill() bool {
	if o.state != OrderValidated {
		return false
	}
	o.state = OrderFulfilled
	return true
}

// Cancel очищает корзину; из терминальных состояний ErrInvalidState
func (o *Order) Cancel() error {
	if o.state != OrderCreated && o.state != OrderValidated {
		return ErrInvalidState
	}
	o.lines = nil
	o.state = OrderCancelled
	return nil
}

// QuantityOf количество данной пиццы в заказе
func (o *Order) QuantityOf(p *Pizza) int {
	for _, l := range o.lines {
		if l.Pizza == p {
			return l.Quantity
		}
	}
	return 0
}

func (o *Order) PizzaCount() int {
	n := 0
	for _, l := range o.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice по текущим ценам пицц
func (o *Order) TotalPrice() float64 {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(decimal.NewFromFloat(l.Pizza.Price()).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := total.Float64()
	return f
}

// Benefit сумма (цена - минимальная цена) * количество
func (o *Order) Benefit() float64 {
	total := decimal.Zero
	for _, l := range o.lines {
		unit := decimal.NewFromFloat(l.Pizza.Price()).Sub(decimal.NewFromFloat(l.Pizza.MinimumPrice()))
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := total.Float64()
	return f
}
