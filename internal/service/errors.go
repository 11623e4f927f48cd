package service

import "errors"

var (
	ErrQueryFailed   = errors.New("query failed")
	ErrInvalidLimit  = errors.New("limit must be >= 0")
	ErrInvalidOffset = errors.New("offset must be >= 0")
	ErrEmptyModule   = errors.New("module is required")
)
