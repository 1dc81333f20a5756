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

// ClientService операции клиента: регистрация, сессия, заказы, фильтры, оценки
type ClientService struct {
	catalog  repository.Catalog
	tx       repository.TxManager
	sessions *Sessions
	logger   *zap.Logger
}

func NewClientService(catalog repository.Catalog, tx repository.TxManager, sessions *Sessions, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{catalog: catalog, tx: tx, sessions: sessions, logger: logger.Named("client")}
}

// Register ErrMissingArgument при пустых аргументах, ErrEmailTaken если email занят
func (s *ClientService) Register(ctx context.Context, email, password string, info *domain.PersonalInfo) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || info == nil {
		return ErrMissingArgument
	}
	if _, err := s.catalog.FindAccount(ctx, email); err == nil {
		return ErrEmailTaken
	}
	account, err := domain.NewClientAccount(email, password, *info)
	if err != nil {
		return fmt.Errorf("register %s: %w", email, err)
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.catalog.AddAccount(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("client registered", zap.String("email", email))
	return nil
}

// Login открывает клиентскую сессию и возвращает её токен
func (s *ClientService) Login(ctx context.Context, email, password string) (string, error) {
	var account domain.Account
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		a, err := s.catalog.Authenticate(ctx, email, password)
		if err != nil {
			return ErrInvalidCredentials
		}
		if _, ok := a.(*domain.ClientAccount); !ok {
			return ErrInvalidCredentials
		}
		account = a
		return nil
	})
	if err != nil {
		s.logger.Debug("client login rejected", zap.String("email", email))
		return "", err
	}
	sess := s.sessions.Open(account.Email(), false)
	s.logger.Info("client logged in", zap.String("email", account.Email()))
	return sess.Token(), nil
}

func (s *ClientService) Logout(token string) error {
	if err := s.sessions.Close(token); err != nil {
		return err
	}
	s.logger.Debug("client logged out", zap.Int("sessions", s.sessions.Len()))
	return nil
}

// Me учётная запись текущей сессии
func (s *ClientService) Me(ctx context.Context, token string) (AccountView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return AccountView{}, err
	}
	defer unlock()
	var view AccountView
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		c, err := s.clientAccount(ctx, sess)
		if err != nil {
			return err
		}
		view = newAccountView(c)
		return nil
	})
	return view, err
}

func (s *ClientService) clientAccount(ctx context.Context, sess *Session) (*domain.ClientAccount, error) {
	a, err := s.catalog.FindAccount(ctx, sess.email)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	c, ok := a.(*domain.ClientAccount)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return c, nil
}

// BeginOrder создаёт новый текущий заказ сессии
func (s *ClientService) BeginOrder(ctx context.Context, token string) (OrderView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return OrderView{}, err
	}
	defer unlock()
	var view OrderView
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		c, err := s.clientAccount(ctx, sess)
		if err != nil {
			return err
		}
		sess.active = domain.NewOrder(c)
		view = newOrderView(sess.active)
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}
	s.logger.Info("order started", zap.String("email", sess.email), zap.String("order_id", view.ID))
	return view, nil
}

func (s *ClientService) ActiveOrder(ctx context.Context, token string) (OrderView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return OrderView{}, err
	}
	defer unlock()
	if sess.active == nil {
		return OrderView{}, ErrNoActiveOrder
	}
	var view OrderView
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		view = newOrderView(sess.active)
		return nil
	})
	return view, err
}

// AddToOrder false если пицца неизвестна или количество не положительное
func (s *ClientService) AddToOrder(ctx context.Context, token, pizzaName string, qty int) (bool, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return false, err
	}
	defer unlock()
	if sess.active == nil {
		return false, ErrNoActiveOrder
	}
	var added bool
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := s.catalog.FindPizza(ctx, pizzaName)
		if err != nil {
			p = nil
		}
		added, err = sess.active.AddLine(p, qty)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("add to order %s: %w", sess.active.ID(), err)
	}
	if !added {
		s.logger.Debug("order line rejected", zap.String("pizza", pizzaName), zap.Int("quantity", qty))
		return false, nil
	}
	s.logger.Info("order line added", zap.String("order_id", sess.active.ID()), zap.String("pizza", pizzaName), zap.Int("quantity", qty))
	return true, nil
}

// ValidateOrder переводит текущий заказ в validated и записывает его в журнал и историю клиента.
// Пустая корзина: false без изменений.
func (s *ClientService) ValidateOrder(ctx context.Context, token string) (OrderView, bool, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return OrderView{}, false, err
	}
	defer unlock()
	if sess.active == nil {
		return OrderView{}, false, ErrNoActiveOrder
	}
	var (
		view      OrderView
		validated bool
	)
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.clientAccount(ctx, sess)
		if err != nil {
			return err
		}
		order := sess.active
		if !order.Validate() {
			view = newOrderView(order)
			return nil
		}
		if err := s.catalog.AppendOrder(ctx, order); err != nil {
			return err
		}
		c.AppendOrder(order)
		validated = true
		view = newOrderView(order)
		return nil
	})
	if err != nil {
		return OrderView{}, false, err
	}
	if !validated {
		s.logger.Debug("empty order not validated", zap.String("order_id", view.ID))
		return view, false, nil
	}
	sess.active = nil
	s.logger.Info("order validated", zap.String("order_id", view.ID), zap.Float64("total", view.Total))
	return view, true, nil
}

// CancelOrder пустой orderID означает текущий заказ; иначе заказ из истории клиента
func (s *ClientService) CancelOrder(ctx context.Context, token, orderID string) (OrderView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return OrderView{}, err
	}
	defer unlock()
	var view OrderView
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var order *domain.Order
		switch {
		case orderID == "" || (sess.active != nil && sess.active.ID() == orderID):
			if sess.active == nil {
				return ErrNoActiveOrder
			}
			order = sess.active
		default:
			c, err := s.clientAccount(ctx, sess)
			if err != nil {
				return err
			}
			for _, o := range c.History() {
				if o.ID() == orderID {
					order = o
					break
				}
			}
			if order == nil {
				return fmt.Errorf("order %s: %w", orderID, repository.ErrNotFound)
			}
		}
		if err := order.Cancel(); err != nil {
			return fmt.Errorf("cancel order %s: %w", order.ID(), err)
		}
		if sess.active == order {
			sess.active = nil
		}
		view = newOrderView(order)
		return nil
	})
	if err != nil {
		return OrderView{}, err
	}
	s.logger.Info("order cancelled", zap.String("order_id", view.ID))
	return view, nil
}

// PendingOrders validated заказы клиента, ещё не обработанные
func (s *ClientService) PendingOrders(ctx context.Context, token string) ([]OrderView, error) {
	return s.history(ctx, token, func(o *domain.Order) bool { return o.Is(domain.OrderValidated) })
}

// PastOrders вся история клиента
func (s *ClientService) PastOrders(ctx context.Context, token string) ([]OrderView, error) {
	return s.history(ctx, token, func(*domain.Order) bool { return true })
}

func (s *ClientService) history(ctx context.Context, token string, keep func(*domain.Order) bool) ([]OrderView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]OrderView, 0)
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		c, err := s.clientAccount(ctx, sess)
		if err != nil {
			return err
		}
		for _, o := range c.History() {
			if keep(o) {
				out = append(out, newOrderView(o))
			}
		}
		return nil
	})
	return out, err
}

func (s *ClientService) Pizzas(ctx context.Context) []PizzaView {
	var out []PizzaView
	_ = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		out = newPizzaViews(s.catalog.Pizzas(ctx))
		return nil
	})
	return out
}

func (s *ClientService) Pizza(ctx context.Context, name string) (PizzaView, error) {
	var view PizzaView
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, name)
		if err != nil {
			return err
		}
		view = newPizzaView(p)
		return nil
	})
	return view, err
}

// SetMaxPrice фильтр по максимальной цене
func (s *ClientService) SetMaxPrice(token string, price float64) error {
	if math.IsNaN(price) {
		return ErrInvalidInput
	}
	return s.updateFilter(token, func(f Filter) Filter {
		f.MaxPrice = &price
		return f
	})
}

func (s *ClientService) SetTypeFilter(token string, kind domain.PizzaType) error {
	kind, err := domain.ParsePizzaType(string(kind))
	if err != nil {
		return err
	}
	return s.updateFilter(token, func(f Filter) Filter {
		f.Type = &kind
		return f
	})
}

// SetIngredientFilter заменяет список ингредиентов фильтра
func (s *ClientService) SetIngredientFilter(token string, names ...string) error {
	return s.updateFilter(token, func(f Filter) Filter {
		return f.WithIngredients(names...)
	})
}

// FilterUpdate изменения фильтров; nil-поля не трогаются
type FilterUpdate struct {
	MaxPrice    *float64
	Type        *domain.PizzaType
	Ingredients []string
}

// UpdateFilters проверяет все критерии и применяет их вместе либо ни одного
func (s *ClientService) UpdateFilters(token string, u FilterUpdate) (FilterView, error) {
	if u.MaxPrice != nil && math.IsNaN(*u.MaxPrice) {
		return FilterView{}, ErrInvalidInput
	}
	var kind domain.PizzaType
	if u.Type != nil {
		parsed, err := domain.ParsePizzaType(string(*u.Type))
		if err != nil {
			return FilterView{}, err
		}
		kind = parsed
	}
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return FilterView{}, err
	}
	defer unlock()
	f := sess.filter
	if u.MaxPrice != nil {
		limit := *u.MaxPrice
		f.MaxPrice = &limit
	}
	if u.Type != nil {
		f.Type = &kind
	}
	if u.Ingredients != nil {
		f = f.WithIngredients(u.Ingredients...)
	}
	sess.filter = f
	return f.view(), nil
}

func (s *ClientService) ClearFilters(token string) error {
	return s.updateFilter(token, func(Filter) Filter { return Filter{} })
}

func (s *ClientService) Filters(token string) (FilterView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return FilterView{}, err
	}
	defer unlock()
	return sess.filter.view(), nil
}

func (s *ClientService) updateFilter(token string, fn func(Filter) Filter) error {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return err
	}
	defer unlock()
	sess.filter = fn(sess.filter)
	return nil
}

// SelectFiltered пиццы каталога, проходящие все фильтры сессии; пересчитывается при каждом вызове
func (s *ClientService) SelectFiltered(ctx context.Context, token string) ([]PizzaView, error) {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return nil, err
	}
	filter := sess.filter
	unlock()

	out := make([]PizzaView, 0)
	err = s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		for _, p := range s.catalog.Pizzas(ctx) {
			if filter.Matches(p) {
				out = append(out, newPizzaView(p))
			}
		}
		return nil
	})
	return out, err
}

func (s *ClientService) Evaluations(ctx context.Context, pizzaName string) ([]EvaluationView, error) {
	var out []EvaluationView
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		out = newEvaluationViews(p.Evaluations())
		return nil
	})
	return out, err
}

// AverageRating 0 для пиццы без оценок
func (s *ClientService) AverageRating(ctx context.Context, pizzaName string) (float64, error) {
	var avg float64
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		avg = p.AverageRating()
		return nil
	})
	return avg, err
}

// AddEvaluation оценка обрезается до [0,5], автор: клиент сессии
func (s *ClientService) AddEvaluation(ctx context.Context, token, pizzaName string, rating int, comment string) error {
	sess, unlock, err := s.sessions.client(token)
	if err != nil {
		return err
	}
	defer unlock()
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := findPizza(ctx, s.catalog, pizzaName)
		if err != nil {
			return err
		}
		p.AddEvaluation(domain.NewEvaluation(rating, comment, sess.email))
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("evaluation added", zap.String("pizza", pizzaName), zap.String("author", sess.email), zap.Int("rating", rating))
	return nil
}

func findPizza(ctx context.Context, catalog repository.Catalog, name string) (*domain.Pizza, error) {
	p, err := catalog.FindPizza(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("pizza %q: %w", name, err)
	}
	return p, nil
}

func findIngredient(ctx context.Context, catalog repository.Catalog, name string) (*domain.Ingredient, error) {
	ing, err := catalog.FindIngredient(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ingredient %q: %w", name, err)
	}
	return ing, nil
}
