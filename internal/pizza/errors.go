package pizza

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a puzzle without rows or with an empty row.
	ErrEmptyGrid = errors.New("pizza: empty grid")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("pizza: rows have different lengths")

	// ErrOutOfRange indicates a dimension or limit outside [1,1000].
	ErrOutOfRange = errors.New("pizza: value out of range")

	// ErrTooManyIngredients indicates more distinct cell types than fit in a byte.
	ErrTooManyIngredients = errors.New("pizza: too many distinct ingredients")
)

// ConfigError reports malformed puzzle input. No engine is built when one is
// returned.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pizza config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(field string, err error, format string, args ...any) error {
	return &ConfigError{Field: field, Err: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)}
}
