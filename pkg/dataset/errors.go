package dataset

import (
	"errors"
)

var (
	// ErrNotFound classifies loads whose underlying data does not exist.
	// Implementations and delegates wrap it so ExistsViaLoad can tell a
	// missing dataset apart from a failing one.
	ErrNotFound = errors.New("dataset not found")
	// ErrUnsupported classifies operations a dataset was given no
	// implementation for.
	ErrUnsupported = errors.New("dataset operation unsupported")
)

// IsNotFound reports whether err classifies as missing data.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnsupported reports whether err classifies as an operation the dataset
// does not implement.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
