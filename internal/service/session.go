package service

import (
	"sync"

	"github.com/google/uuid"

	"pizzeria/internal/domain"
)

// Session сессия клиента или пиццайоло: фильтры и текущий заказ
type Session struct {
	mu       sync.Mutex
	token    string
	email    string
	operator bool
	filter   Filter
	active   *domain.Order
}

func (s *Session) Token() string { return s.token }
func (s *Session) Email() string { return s.email }
func (s *Session) Operator() bool { return s.operator }

// Sessions реестр сессий по токену
type Sessions struct {
	mu      sync.Mutex
	byToken map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byToken: make(map[string]*Session)}
}

func (r *Sessions) Open(email string, operator bool) *Session {
	s := &Session{token: uuid.NewString(), email: email, operator: operator}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[s.token] = s
	return s
}

// Get ErrNotAuthenticated для неизвестного токена
func (r *Sessions) Get(token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[token]
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// Close завершает сессию
func (r *Sessions) Close(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byToken[token]; !ok {
		return ErrNotAuthenticated
	}
	delete(r.byToken, token)
	return nil
}

// Len число активных сессий
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byToken)
}

// client блокирует клиентскую сессию; вызывающий обязан вызвать unlock
func (r *Sessions) client(token string) (*Session, func(), error) {
	s, err := r.Get(token)
	if err != nil {
		return nil, nil, err
	}
	if s.operator {
		return nil, nil, ErrNotAuthenticated
	}
	s.mu.Lock()
	return s, s.mu.Unlock, nil
}
