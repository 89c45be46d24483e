// Package lambda adapts plain functions into the dataset capability. It is
// the escape hatch for sources that do not justify a dedicated dataset
// implementation: hand the adapter a load and/or save function (plus optional
// exists and release functions) and it behaves like any other dataset.
package lambda

import (
	"context"
	"fmt"

	"github.com/sorgente/datakit/pkg/dataset"
	"github.com/sorgente/datakit/pkg/observability/logger"
)

// Config holds the delegate functions and metadata for a callable-backed
// dataset. Every delegate is optional and may independently be nil.
type Config[T any] struct {
	// Load produces the dataset value. When nil, Load fails with
	// dataset.ErrUnsupported.
	Load dataset.LoadFunc[T]

	// Save persists a value. When nil, Save fails with
	// dataset.ErrUnsupported.
	Save dataset.SaveFunc[T]

	// Exists reports whether the underlying data is present. When nil,
	// existence is probed by attempting a load.
	Exists dataset.ExistsFunc

	// Release frees whatever the delegates hold. When nil, Release is a
	// no-op.
	Release dataset.ReleaseFunc

	// Metadata is an arbitrary mapping stored with the dataset. It is kept
	// and returned verbatim, never interpreted.
	Metadata map[string]any
}

// Dataset dispatches the dataset operations to the configured delegate
// functions. The zero slots fall back to the capability defaults: existence
// probing via load, no-op release, and unsupported-operation errors for load
// and save.
//
// The adapter is immutable after construction and adds no synchronization,
// timeouts, or retries of its own; delegates keep their own concurrency and
// cancellation contracts, and their errors pass through unmodified.
type Dataset[T any] struct {
	load     dataset.LoadFunc[T]
	save     dataset.SaveFunc[T]
	exists   dataset.ExistsFunc
	release  dataset.ReleaseFunc
	metadata map[string]any
	logger   logger.Logger
}

var _ dataset.Dataset[any] = (*Dataset[any])(nil)

// New creates a callable-backed dataset from cfg. Construction always
// succeeds: operations whose delegate is absent fail (or fall back) when
// invoked, not here. A nil log falls back to a no-op logger.
func New[T any](cfg Config[T], log logger.Logger) *Dataset[T] {
	if log == nil {
		log = logger.NewNop()
	}

	d := &Dataset[T]{
		load:     cfg.Load,
		save:     cfg.Save,
		exists:   cfg.Exists,
		release:  cfg.Release,
		metadata: cfg.Metadata,
		logger:   log,
	}

	log.Debug("lambda dataset created",
		"load", dataset.FuncName(cfg.Load),
		"save", dataset.FuncName(cfg.Save),
		"exists", dataset.FuncName(cfg.Exists),
		"release", dataset.FuncName(cfg.Release),
	)

	return d
}

// Load invokes the load delegate and returns its result unmodified.
func (d *Dataset[T]) Load(ctx context.Context) (T, error) {
	if d.load == nil {
		var zero T
		return zero, errUnsupported("load")
	}
	return d.load(ctx)
}

// Save invokes the save delegate with data and returns its error unmodified.
func (d *Dataset[T]) Save(ctx context.Context, data T) error {
	if d.save == nil {
		return errUnsupported("save")
	}
	return d.save(ctx, data)
}

// Exists invokes the exists delegate. Without one it probes existence by
// attempting a load: a successful load means the data exists, a not-found
// load error means it does not, and any other load error is returned as is.
func (d *Dataset[T]) Exists(ctx context.Context) (bool, error) {
	if d.exists == nil {
		d.logger.Debug("no exists function provided, probing existence via load")
		return dataset.ExistsViaLoad(ctx, dataset.Loader[T](d))
	}
	return d.exists(ctx)
}

// Release invokes the release delegate exactly once per call. Without one
// there is nothing to release and Release returns nil.
func (d *Dataset[T]) Release(ctx context.Context) error {
	if d.release == nil {
		d.logger.Debug("no release function provided, nothing to release")
		return nil
	}
	return d.release(ctx)
}

// Describe renders the four delegate slots for diagnostics. Absent slots
// render as "<nil>".
func (d *Dataset[T]) Describe() map[string]string {
	return map[string]string{
		"load":    dataset.FuncName(d.load),
		"save":    dataset.FuncName(d.save),
		"exists":  dataset.FuncName(d.exists),
		"release": dataset.FuncName(d.release),
	}
}

// Metadata returns the mapping supplied at construction, verbatim. The
// adapter never reads or modifies it.
func (d *Dataset[T]) Metadata() map[string]any {
	return d.metadata
}

// String returns a one-line rendering of the dataset for logs.
func (d *Dataset[T]) String() string {
	return fmt.Sprintf("lambda dataset (load=%s, save=%s, exists=%s, release=%s)",
		dataset.FuncName(d.load),
		dataset.FuncName(d.save),
		dataset.FuncName(d.exists),
		dataset.FuncName(d.release),
	)
}

func errUnsupported(op string) error {
	return fmt.Errorf("%w: cannot %s: no %s function was provided when the dataset was created",
		dataset.ErrUnsupported, op, op)
}
