package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrNoSeats  = errors.New("no seats available")
)
