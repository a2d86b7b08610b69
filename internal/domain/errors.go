package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("restaurant not found")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// LoadError reports that a snapshot source could not produce a complete
// dataset. No partial data accompanies it.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
