// Package memory provides a dataset held entirely in process memory. It is
// the conventional way to pass intermediate results between pipeline stages
// without touching external storage.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sorgente/datakit/pkg/dataset"
	"github.com/sorgente/datakit/pkg/observability/logger"
)

// Config configures an in-memory dataset.
type Config[T any] struct {
	// Clone, when set, is applied on every save and load so callers never
	// alias the stored value. When nil, values are shared by assignment.
	Clone func(T) T

	// Metadata is an arbitrary mapping carried alongside the dataset. It is
	// held as given and never interpreted.
	Metadata map[string]any
}

// Dataset keeps a single value in memory. It is safe for concurrent use.
type Dataset[T any] struct {
	mu       sync.RWMutex
	data     T
	set      bool
	clone    func(T) T
	metadata map[string]any
	logger   logger.Logger
}

var _ dataset.Dataset[any] = (*Dataset[any])(nil)

// New creates an empty in-memory dataset. A nil logger falls back to the
// no-op logger.
func New[T any](cfg Config[T], log logger.Logger) *Dataset[T] {
	if log == nil {
		log = logger.NewNop()
	}
	return &Dataset[T]{
		clone:    cfg.Clone,
		metadata: cfg.Metadata,
		logger:   log,
	}
}

// Load returns the stored value, or a not-found error before the first save.
func (d *Dataset[T]) Load(ctx context.Context) (T, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.set {
		var zero T
		return zero, fmt.Errorf("%w: no data has been saved yet", dataset.ErrNotFound)
	}
	if d.clone != nil {
		return d.clone(d.data), nil
	}
	return d.data, nil
}

// Save stores the given value, replacing any previous one.
func (d *Dataset[T]) Save(ctx context.Context, data T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.clone != nil {
		data = d.clone(data)
	}
	d.data = data
	d.set = true
	return nil
}

// Exists reports whether a value has been saved and not yet released.
func (d *Dataset[T]) Exists(ctx context.Context) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.set, nil
}

// Release drops the stored value so it can be collected.
func (d *Dataset[T]) Release(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	d.data = zero
	d.set = false
	d.logger.Debug("released in-memory data")
	return nil
}

// Describe renders the stored value's type, or <unset> before the first save.
func (d *Dataset[T]) Describe() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.set {
		return map[string]string{"data": "<unset>"}
	}
	return map[string]string{"data": fmt.Sprintf("<%T>", d.data)}
}

// Metadata returns the mapping given at construction, unchanged.
func (d *Dataset[T]) Metadata() map[string]any {
	return d.metadata
}
