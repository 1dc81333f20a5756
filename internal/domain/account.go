package domain

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost стоимость bcrypt для новых паролей
var PasswordCost = bcrypt.DefaultCost

// Account учётная запись: *ClientAccount или *OperatorAccount
type Account interface {
	Email() string
	Info() PersonalInfo
	PasswordHash() string
	CheckPassword(password string) bool
	isAccount()
}

type identity struct {
	email        string
	passwordHash string
	info         PersonalInfo
}

// MaxPasswordBytes предел длины пароля для bcrypt
const MaxPasswordBytes = 72

func newIdentity(email, password string, info PersonalInfo) (identity, error) {
	if len(password) > MaxPasswordBytes {
		return identity{}, ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return identity{}, err
	}
	return identity{email: email, passwordHash: string(hash), info: info}, nil
}

func (i *identity) Email() string { return i.email }
func (i *identity) Info() PersonalInfo { return i.info }
func (i *identity) PasswordHash() string { return i.passwordHash }

// CheckPassword пароль сравнивается с учётом регистра
func (i *identity) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(i.passwordHash), []byte(password)) == nil
}

// EmailMatches сравнение email без учёта регистра
func EmailMatches(a Account, email string) bool {
	return strings.EqualFold(a.Email(), strings.TrimSpace(email))
}

// ClientAccount клиент с историей заказов
type ClientAccount struct {
	identity
	history []*Order
}

func NewClientAccount(email, password string, info PersonalInfo) (*ClientAccount, error) {
	id, err := newIdentity(email, password, info)
	if err != nil {
		return nil, err
	}
	return &ClientAccount{identity: id}, nil
}

// RestoreClientAccount из снимка; история привязывается отдельно
func RestoreClientAccount(email, passwordHash string, info PersonalInfo) *ClientAccount {
	return &ClientAccount{identity: identity{email: email, passwordHash: passwordHash, info: info}}
}

func (*ClientAccount) isAccount() {}

func (c *ClientAccount) History() []*Order {
	return append([]*Order(nil), c.history...)
}

func (c *ClientAccount) AppendOrder(o *Order) {
	c.history = append(c.history, o)
}

// OperatorAccount пиццайоло
type OperatorAccount struct {
	identity
}

func NewOperatorAccount(email, password string, info PersonalInfo) (*OperatorAccount, error) {
	id, err := newIdentity(email, password, info)
	if err != nil {
		return nil, err
	}
	return &OperatorAccount{identity: id}, nil
}

func RestoreOperatorAccount(email, passwordHash string, info PersonalInfo) *OperatorAccount {
	return &OperatorAccount{identity: identity{email: email, passwordHash: passwordHash, info: info}}
}

func (*OperatorAccount) isAccount() {}
