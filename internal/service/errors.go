package service

import (
	"errors"

	"pizzeria/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = domain.ErrInvalidState

	// сессия
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("operator session required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveOrder      = errors.New("no active order")

	// регистрация
	ErrMissingArgument = errors.New("missing argument")
	ErrEmailTaken      = errors.New("email already registered")
	ErrPasswordTooLong = domain.ErrPasswordTooLong

	// каталог
	ErrBlankName            = domain.ErrBlankName
	ErrUnknownPizzaType     = domain.ErrUnknownPizzaType
	ErrInvalidPhoto         = domain.ErrInvalidPhoto
	ErrNonPositiveCost      = errors.New("cost must be positive")
	ErrDuplicateName        = errors.New("name already used")
	ErrIngredientNotOnPizza = errors.New("ingredient is not on pizza")
)
