package services

import "errors"

var (
	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password, so a
	// login response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
