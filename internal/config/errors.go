package config

import "errors"

var (
	// ErrMissingKey is wrapped by every missing required key error
	ErrMissingKey = errors.New("missing required configuration key")
	// ErrInvalidValue is wrapped by every out-of-range value error
	ErrInvalidValue = errors.New("invalid configuration value")
)
