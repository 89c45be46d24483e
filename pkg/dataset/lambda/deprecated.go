package lambda

import (
	"sync"

	"github.com/sorgente/datakit/pkg/observability/logger"
)

// LambdaDataset is the original, stuttering name of Dataset.
//
// Deprecated: use Dataset. The alias will be removed in a future release.
type LambdaDataset[T any] = Dataset[T]

var deprecationOnce sync.Once

// NewLambdaDataset creates a callable-backed dataset under the original
// constructor name. It behaves exactly like New and emits a deprecation
// warning through log once per process.
//
// Deprecated: use New. The constructor will be removed in a future release.
func NewLambdaDataset[T any](cfg Config[T], log logger.Logger) *Dataset[T] {
	if log == nil {
		log = logger.NewNop()
	}
	deprecationOnce.Do(func() {
		log.Warn("NewLambdaDataset is deprecated and will be removed in a future release, use New instead")
	})
	return New(cfg, log)
}
