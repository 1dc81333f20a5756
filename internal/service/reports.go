package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

// PizzaBenefit доход с одной пиццы по текущим ценам
type PizzaBenefit struct {
	Pizza        string  `json:"pizza"`
	Price        float64 `json:"price"`
	MinimumPrice float64 `json:"minimum_price"`
	UnitBenefit  float64 `json:"unit_benefit"`
}

// ClientStat агрегаты по обработанным заказам клиента
type ClientStat struct {
	Email      string              `json:"email"`
	Info       domain.PersonalInfo `json:"info"`
	Orders     int                 `json:"orders"`
	PizzaCount int                 `json:"pizza_count"`
	Benefit    float64             `json:"benefit"`
}

// PizzaSales продано пицц в обработанных заказах
type PizzaSales struct {
	Pizza    string `json:"pizza"`
	Quantity int    `json:"quantity"`
}

// BenefitPerPizza доход с единицы для каждой пиццы каталога
func (s *OperatorService) BenefitPerPizza(ctx context.Context) []PizzaBenefit {
	out := make([]PizzaBenefit, 0)
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		for _, p := range s.catalog.Pizzas(ctx) {
			out = append(out, PizzaBenefit{
				Pizza:        p.Name(),
				Price:        p.Price(),
				MinimumPrice: p.MinimumPrice(),
				UnitBenefit:  p.UnitBenefit(),
			})
		}
		return nil
	})
	return out
}

// OrderBenefit доход одного заказа журнала в любом состоянии
func (s *OperatorService) OrderBenefit(ctx context.Context, orderID string) (float64, error) {
	var benefit float64
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		o, err := s.catalog.FindOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("order %s: %w", orderID, err)
		}
		benefit = o.Benefit()
		return nil
	})
	return benefit, err
}

// TotalBenefit сумма доходов по всем обработанным заказам
func (s *OperatorService) TotalBenefit(ctx context.Context) float64 {
	total := decimal.Zero
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		for _, o := range s.fulfilled(ctx) {
			total = total.Add(decimal.NewFromFloat(o.Benefit()))
		}
		return nil
	})
	f, _ := total.Float64()
	return f
}

// ClientStats агрегаты по клиентам, у которых есть обработанные заказы, в порядке первого заказа
func (s *OperatorService) ClientStats(ctx context.Context) []ClientStat {
	out := make([]ClientStat, 0)
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		index := make(map[string]int)
		benefits := make([]decimal.Decimal, 0)
		for _, o := range s.fulfilled(ctx) {
			owner := o.Owner()
			if owner == nil {
				continue
			}
			key := strings.ToLower(owner.Email())
			i, ok := index[key]
			if !ok {
				i = len(out)
				index[key] = i
				out = append(out, ClientStat{Email: owner.Email(), Info: owner.Info()})
				benefits = append(benefits, decimal.Zero)
			}
			out[i].Orders++
			out[i].PizzaCount += o.PizzaCount()
			benefits[i] = benefits[i].Add(decimal.NewFromFloat(o.Benefit()))
		}
		for i := range out {
			out[i].Benefit, _ = benefits[i].Float64()
		}
		return nil
	})
	return out
}

// StatsFor агрегаты одного клиента; нулевые если обработанных заказов нет
func (s *OperatorService) StatsFor(ctx context.Context, email string) (ClientStat, error) {
	var stat ClientStat
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		a, err := s.catalog.FindAccount(ctx, email)
		if err != nil {
			return fmt.Errorf("client %q: %w", email, err)
		}
		if _, ok := a.(*domain.ClientAccount); !ok {
			return fmt.Errorf("client %q: %w", email, repository.ErrNotFound)
		}
		stat = ClientStat{Email: a.Email(), Info: a.Info()}
		for _, cs := range s.ClientStats(ctx) {
			if domain.EmailMatches(a, cs.Email) {
				stat = cs
				break
			}
		}
		return nil
	})
	return stat, err
}

// QuantitySold сколько штук пиццы продано в обработанных заказах
func (s *OperatorService) QuantitySold(ctx context.Context, pizzaName string) (int, error) {
	var sold int
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		for _, o := range s.fulfilled(ctx) {
			sold += o.QuantityOf(p)
		}
		return nil
	})
	return sold, err
}

// PopularityRanking пиццы с продажами по убыванию количества; при равенстве порядок каталога
func (s *OperatorService) PopularityRanking(ctx context.Context) []PizzaSales {
	out := make([]PizzaSales, 0)
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		orders := s.fulfilled(ctx)
		for _, p := range s.catalog.Pizzas(ctx) {
			qty := 0
			for _, o := range orders {
				qty += o.QuantityOf(p)
			}
			if qty > 0 {
				out = append(out, PizzaSales{Pizza: p.Name(), Quantity: qty})
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}
