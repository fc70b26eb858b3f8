package errors

import "errors"

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)
