package types

import "errors"

var (
	ErrDataSource = errors.New("data source unreachable or malformed")
	ErrValidation = errors.New("trip batch failed validation")
	ErrEmptyBatch = errors.New("trip batch is empty")

	ErrNotFound = errors.New("requested item not found")
)
