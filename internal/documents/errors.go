package documents

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientText = errors.New("insufficient text for analysis")
)
