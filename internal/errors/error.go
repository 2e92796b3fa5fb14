package errors

import (
	"errors"
)

var (
	ErrNoItem             = errors.New("no item stored under key")
	ErrNotFound           = errors.New("entity not found")
	ErrDuplicateItem      = errors.New("duplicate catalog item id")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout is already processing")
	ErrOrderPlaced        = errors.New("order has already been placed")
)
