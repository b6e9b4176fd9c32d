package application

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrInsufficientData = errors.New("insufficient data")
	// ErrFetch aborts a whole import cycle; nothing is saved.
	ErrFetch = errors.New("fetch failed")
	// ErrPersistence marks a single coin whose quote could not be saved.
	ErrPersistence = errors.New("persistence failed")
)
