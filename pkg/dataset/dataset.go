// Package dataset defines the uniform capability this library exposes over
// arbitrary data sources: load, save, existence checks, resource release, and
// diagnostics. Leaf implementations live in subpackages and plug concrete
// storage or plain functions into this contract.
package dataset

import "context"

// Loader provides read access to a dataset.
type Loader[T any] interface {
	// Load reads the underlying source and returns the materialized value.
	// Implementations wrap ErrNotFound when the data does not exist.
	Load(ctx context.Context) (T, error)
}

// Saver provides write access to a dataset.
type Saver[T any] interface {
	// Save writes data to the underlying source.
	Save(ctx context.Context, data T) error
}

// Describer exposes a diagnostic description of a dataset.
type Describer interface {
	// Describe returns a rendering of the dataset configuration for logs and
	// error messages. It never fails and the result carries no data.
	Describe() map[string]string
}

// Dataset is the full capability: read, write, existence probing, and release
// of any resources the dataset holds.
type Dataset[T any] interface {
	Loader[T]
	Saver[T]
	Describer

	// Exists reports whether the underlying data is present. Implementations
	// without a cheap existence check may probe via ExistsViaLoad.
	Exists(ctx context.Context) (bool, error)

	// Release frees any resource the dataset holds (caches, handles, staged
	// state). Implementations with nothing to release return nil.
	Release(ctx context.Context) error
}

// LoadFunc is a function form of Loader.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Load implements Loader by invoking the function itself.
func (f LoadFunc[T]) Load(ctx context.Context) (T, error) {
	return f(ctx)
}

// SaveFunc is a function form of Saver.
type SaveFunc[T any] func(ctx context.Context, data T) error

// Save implements Saver by invoking the function itself.
func (f SaveFunc[T]) Save(ctx context.Context, data T) error {
	return f(ctx, data)
}

// ExistsFunc reports whether the underlying data is present.
type ExistsFunc func(ctx context.Context) (bool, error)

// ReleaseFunc frees any resource a dataset holds.
type ReleaseFunc func(ctx context.Context) error

// ExistsViaLoad probes for existence by attempting a load and discarding the
// value. A successful load means the data exists. A load failure wrapping
// ErrNotFound means it does not. Any other load error is returned unmodified
// so callers can tell "absent" from "broken".
func ExistsViaLoad[T any](ctx context.Context, l Loader[T]) (bool, error) {
	if _, err := l.Load(ctx); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
