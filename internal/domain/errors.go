package domain

import "errors"

// Domain errors.
var (
	ErrInvalidTime     = errors.New("invalid time specified")
	ErrInvalidDuration = errors.New("chunk duration must be a positive number of seconds")
	ErrInvalidAction   = errors.New("invalid action")
	ErrConfigExists    = errors.New("config file already exists")
	ErrNoConfigDir     = errors.New("config directory not available")
	ErrMalformedLog    = errors.New("malformed completion log line")
)
