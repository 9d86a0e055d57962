package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrNotFound       = errors.New("record not found")
)
