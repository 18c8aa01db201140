package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyArea    = errors.New("estimate has no volume")
	ErrRender       = errors.New("document render failed")
)
