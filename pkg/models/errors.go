package models

import "errors"

// Query set errors
var (
	ErrUnknownRow         = errors.New("unknown query row")
	ErrUnknownField       = errors.New("unknown query field")
	ErrUnknownFormula     = errors.New("unknown formula row")
	ErrNotCandidate       = errors.New("value is not an available candidate")
	ErrUnknownAggregation = errors.New("unknown aggregation")
	ErrFormulasDisabled   = errors.New("formula rows are disabled")
)
