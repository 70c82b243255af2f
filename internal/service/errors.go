package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registration hits an existing email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrUnauthenticated is returned when an operation that needs a
	// resolved acting user is attempted anonymously.
	ErrUnauthenticated = errors.New("authentication required")
)
