package session

import (
	"errors"
	"fmt"
)

// Setup precondition violations
var (
	ErrEmptyGrid           = errors.New("grid has no cells")
	ErrOddGrid             = errors.New("grid cell count is odd")
	ErrNoCategories        = errors.New("no categories available")
	ErrNotEnoughCategories = errors.New("not enough categories for grid")
	ErrDuplicateCategory   = errors.New("duplicate category")
)

// ConfigError reports an invalid session configuration
type ConfigError struct {
	Rows, Cols int
	Err        error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("session config %dx%d: %v", e.Rows, e.Cols, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
