package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"pizzeria/internal/domain"
	"pizzeria/internal/repository"
)

// OperatorService операции пиццайоло: каталог, обработка заказов, отчёты
type OperatorService struct {
	catalog  repository.Catalog
	tx       repository.TxManager
	sessions *Sessions
	logger   *zap.Logger
}

func NewOperatorService(catalog repository.Catalog, tx repository.TxManager, sessions *Sessions, logger *zap.Logger) *OperatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OperatorService{catalog: catalog, tx: tx, sessions: sessions, logger: logger.Named("operator")}
}

// Login открывает сессию пиццайоло
func (s *OperatorService) Login(ctx context.Context, email, password string) (string, error) {
	var account domain.Account
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		a, err := s.catalog.Authenticate(ctx, email, password)
		if err != nil {
			return ErrInvalidCredentials
		}
		if _, ok := a.(*domain.OperatorAccount); !ok {
			return ErrInvalidCredentials
		}
		account = a
		return nil
	})
	if err != nil {
		s.logger.Debug("operator login rejected", zap.String("email", email))
		return "", err
	}
	sess := s.sessions.Open(account.Email(), true)
	s.logger.Info("operator logged in", zap.String("email", account.Email()))
	return sess.Token(), nil
}

// Authorize ErrNotAuthenticated без сессии, ErrForbidden для клиентской сессии
func (s *OperatorService) Authorize(token string) error {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return err
	}
	if !sess.Operator() {
		return ErrForbidden
	}
	return nil
}

func (s *OperatorService) Logout(token string) error {
	if err := s.sessions.Close(token); err != nil {
		return err
	}
	s.logger.Info("operator logged out", zap.Int("sessions", s.sessions.Len()))
	return nil
}

// CreatePizza ErrBlankName, ErrUnknownPizzaType, ErrDuplicateName
func (s *OperatorService) CreatePizza(ctx context.Context, name string, kind domain.PizzaType) (PizzaView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PizzaView{}, ErrBlankName
	}
	kind, err := domain.ParsePizzaType(string(kind))
	if err != nil {
		return PizzaView{}, err
	}
	p, err := domain.NewPizza(name, kind)
	if err != nil {
		return PizzaView{}, err
	}
	var view PizzaView
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.catalog.AddPizza(ctx, p); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fmt.Errorf("pizza %q: %w", name, ErrDuplicateName)
			}
			return err
		}
		view = newPizzaView(p)
		return nil
	})
	if err != nil {
		return PizzaView{}, err
	}
	s.logger.Info("pizza created", zap.String("pizza", name), zap.String("type", string(kind)))
	return view, nil
}

// RenamePizza ErrBlankName, ErrDuplicateName если имя занято другой пиццей
func (s *OperatorService) RenamePizza(ctx context.Context, pizzaName, newName string) (PizzaView, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return PizzaView{}, ErrBlankName
	}
	var view PizzaView
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		if other, err := s.catalog.FindPizza(ctx, newName); err == nil && other != p {
			return fmt.Errorf("pizza %q: %w", newName, ErrDuplicateName)
		}
		if err := p.SetName(newName); err != nil {
			return err
		}
		view = newPizzaView(p)
		return nil
	})
	if err != nil {
		return PizzaView{}, err
	}
	s.logger.Info("pizza renamed", zap.String("from", pizzaName), zap.String("to", newName))
	return view, nil
}

// CreateIngredient ErrBlankName, ErrNonPositiveCost, ErrDuplicateName в этом порядке
func (s *OperatorService) CreateIngredient(ctx context.Context, name string, cost float64) (IngredientView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return IngredientView{}, ErrBlankName
	}
	if !positive(cost) {
		return IngredientView{}, ErrNonPositiveCost
	}
	ing := domain.NewIngredient(name, cost)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.catalog.AddIngredient(ctx, ing); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fmt.Errorf("ingredient %q: %w", name, ErrDuplicateName)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return IngredientView{}, err
	}
	s.logger.Info("ingredient created", zap.String("ingredient", name), zap.Float64("cost", cost))
	return newIngredientView(ing), nil
}

// ChangeIngredientCost ErrBlankName, ErrNonPositiveCost, repository.ErrNotFound
func (s *OperatorService) ChangeIngredientCost(ctx context.Context, name string, cost float64) (IngredientView, error) {
	if strings.TrimSpace(name) == "" {
		return IngredientView{}, ErrBlankName
	}
	if !positive(cost) {
		return IngredientView{}, ErrNonPositiveCost
	}
	var view IngredientView
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ing, err := findIngredient(ctx, s.catalog, name)
		if err != nil {
			return err
		}
		ing.UnitCost = cost
		view = newIngredientView(ing)
		return nil
	})
	if err != nil {
		return IngredientView{}, err
	}
	s.logger.Info("ingredient cost changed", zap.String("ingredient", view.Name), zap.Float64("cost", cost))
	return view, nil
}

func (s *OperatorService) Ingredients(ctx context.Context) []IngredientView {
	out := make([]IngredientView, 0)
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		for _, ing := range s.catalog.Ingredients(ctx) {
			out = append(out, newIngredientView(ing))
		}
		return nil
	})
	return out
}

// Forbid запрещает ингредиент для типа; пиццы, уже содержащие его, не меняются
func (s *OperatorService) Forbid(ctx context.Context, ingredient string, kind domain.PizzaType) error {
	kind, err := domain.ParsePizzaType(string(kind))
	if err != nil {
		return err
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ing, err := findIngredient(ctx, s.catalog, ingredient)
		if err != nil {
			return err
		}
		ing.Forbid(kind)
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("ingredient forbidden", zap.String("ingredient", ingredient), zap.String("type", string(kind)))
	return nil
}

// Permit false если тип не был запрещён
func (s *OperatorService) Permit(ctx context.Context, ingredient string, kind domain.PizzaType) (bool, error) {
	kind, err := domain.ParsePizzaType(string(kind))
	if err != nil {
		return false, err
	}
	var permitted bool
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ing, err := findIngredient(ctx, s.catalog, ingredient)
		if err != nil {
			return err
		}
		permitted = ing.Permit(kind)
		return nil
	})
	if err != nil {
		return false, err
	}
	if permitted {
		s.logger.Info("ingredient permitted", zap.String("ingredient", ingredient), zap.String("type", string(kind)))
	}
	return permitted, nil
}

func (s *OperatorService) ResetRestrictions(ctx context.Context, ingredient string) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ing, err := findIngredient(ctx, s.catalog, ingredient)
		if err != nil {
			return err
		}
		ing.ResetRestrictions()
		return nil
	})
}

// AddIngredientToPizza false если ингредиент уже есть или запрещён для типа пиццы
func (s *OperatorService) AddIngredientToPizza(ctx context.Context, pizzaName, ingredient string) (bool, error) {
	var added bool
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		ing, err := findIngredient(ctx, s.catalog, ingredient)
		if err != nil {
			return err
		}
		added = p.AddIngredient(ing)
		return nil
	})
	if err != nil {
		return false, err
	}
	if !added {
		s.logger.Debug("ingredient rejected", zap.String("pizza", pizzaName), zap.String("ingredient", ingredient))
		return false, nil
	}
	s.logger.Info("ingredient added", zap.String("pizza", pizzaName), zap.String("ingredient", ingredient))
	return true, nil
}

// RemoveIngredientFromPizza ErrIngredientNotOnPizza если ингредиента нет в пицце
func (s *OperatorService) RemoveIngredientFromPizza(ctx context.Context, pizzaName, ingredient string) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		ing, err := findIngredient(ctx, s.catalog, ingredient)
		if err != nil {
			return err
		}
		if !p.RemoveIngredient(ing) {
			return fmt.Errorf("%q on %q: %w", ingredient, pizzaName, ErrIngredientNotOnPizza)
		}
		return nil
	})
}

// CheckConsistency ингредиенты пиццы, запрещённые для её типа после добавления
func (s *OperatorService) CheckConsistency(ctx context.Context, pizzaName string) ([]string, error) {
	var conflicts []string
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		conflicts = p.Conflicts()
		return nil
	})
	return conflicts, err
}

func (s *OperatorService) SetPhoto(ctx context.Context, pizzaName, ref string) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		return p.SetPhoto(ref)
	})
}

func (s *OperatorService) Price(ctx context.Context, pizzaName string) (float64, error) {
	return s.readPizza(ctx, pizzaName, (*domain.Pizza).Price)
}

func (s *OperatorService) MinimumPrice(ctx context.Context, pizzaName string) (float64, error) {
	return s.readPizza(ctx, pizzaName, (*domain.Pizza).MinimumPrice)
}

func (s *OperatorService) readPizza(ctx context.Context, pizzaName string, fn func(*domain.Pizza) float64) (float64, error) {
	var v float64
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		v = fn(p)
		return nil
	})
	return v, err
}

// SetManualPrice false если цена ниже минимальной
func (s *OperatorService) SetManualPrice(ctx context.Context, pizzaName string, price float64) (bool, error) {
	var accepted bool
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		accepted = p.SetManualPrice(price)
		return nil
	})
	if err != nil {
		return false, err
	}
	if accepted {
		s.logger.Info("manual price set", zap.String("pizza", pizzaName), zap.Float64("price", price))
	} else {
		s.logger.Debug("manual price below minimum", zap.String("pizza", pizzaName), zap.Float64("price", price))
	}
	return accepted, nil
}

// ClearManualPrice возвращает пиццу к минимальной цене
func (s *OperatorService) ClearManualPrice(ctx context.Context, pizzaName string) (PizzaView, error) {
	var view PizzaView
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		p.ClearManualPrice()
		view = newPizzaView(p)
		return nil
	})
	if err != nil {
		return PizzaView{}, err
	}
	s.logger.Info("manual price cleared", zap.String("pizza", pizzaName))
	return view, nil
}

// CollectValidatedOrders переводит все validated заказы журнала в fulfilled и возвращает их
func (s *OperatorService) CollectValidatedOrders(ctx context.Context) []OrderView {
	batch := make([]OrderView, 0)
	_ = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, o := range s.catalog.Orders(ctx) {
			if o.Fulfill() {
				batch = append(batch, newOrderView(o))
			}
		}
		return nil
	})
	s.logger.Info("validated orders collected", zap.Int("count", len(batch)))
	return batch
}

func (s *OperatorService) FulfilledOrders(ctx context.Context) []OrderView {
	var out []OrderView
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		out = newOrderViews(s.fulfilled(ctx))
		return nil
	})
	return out
}

// FulfilledOrdersFor обработанные заказы одного клиента
func (s *OperatorService) FulfilledOrdersFor(ctx context.Context, email string) ([]OrderView, error) {
	var out []OrderView
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		a, err := s.catalog.FindAccount(ctx, email)
		if err != nil {
			return fmt.Errorf("client %q: %w", email, err)
		}
		orders := make([]*domain.Order, 0)
		for _, o := range s.fulfilled(ctx) {
			if o.Owner() != nil && domain.EmailMatches(a, o.Owner().Email()) {
				orders = append(orders, o)
			}
		}
		out = newOrderViews(orders)
		return nil
	})
	return out, err
}

// Clients личные данные всех клиентов
func (s *OperatorService) Clients(ctx context.Context) []AccountView {
	out := make([]AccountView, 0)
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		for _, a := range s.catalog.Accounts(ctx) {
			if _, ok := a.(*domain.ClientAccount); ok {
				out = append(out, newAccountView(a))
			}
		}
		return nil
	})
	return out
}

func (s *OperatorService) fulfilled(ctx context.Context) []*domain.Order {
	out := make([]*domain.Order, 0)
	for _, o := range s.catalog.Orders(ctx) {
		if o.Is(domain.OrderFulfilled) {
			out = append(out, o)
		}
	}
	return out
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
