package service

import "errors"

// Error taxonomy shared by all services. Handlers translate these into
// HTTP statuses; anything else is an unexpected storage failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
