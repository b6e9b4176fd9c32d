package domain

import "errors"

var (
	ErrUnsupportedCoin = errors.New("unsupported coin")
	ErrInvalidQuote    = errors.New("invalid quote")
)
