package domain

import "errors"

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrMalformedRow    = errors.New("malformed row")
	ErrMalformedCircle = errors.New("malformed circle")
	ErrInvalidConfig   = errors.New("invalid config")
)
