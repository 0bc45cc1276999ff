package damas

import "errors"

var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrInvalidPosition = errors.New("invalid position")
)
