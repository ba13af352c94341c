// Package common defines shared sentinel errors and small helpers used across
// the passvault core and its menu. Callers should use errors.Is to match these
// values; causes are attached with %w.
package common

import "errors"

var (
	// Store errors.
	ErrConnection    = errors.New("store connection failed")
	ErrPersistence   = errors.New("persistence error")
	ErrAlreadyExists = errors.New("already exists")

	// Service errors.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInternal             = errors.New("internal error")
	ErrUnsupported          = errors.New("operation not supported")

	// Input errors.
	ErrValidation    = errors.New("validation error")
	ErrInvalidLength = errors.New("invalid password length")
)
