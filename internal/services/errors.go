package services

import (
	"errors"

	"watchstore/internal/repositories"
)

var (
	ErrNotFound            = repositories.ErrNotFound
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("quantity out of range")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrOrderNotDeletable   = errors.New("only pending orders can be deleted")
)
