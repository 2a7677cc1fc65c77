package entity

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateRequest   = errors.New("idempotent key already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
