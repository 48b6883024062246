// Package batch accumulates telemetry readings per structure until a fixed
// window size is reached, then hands the full batch to a flush callback.
package batch

import (
	"context"
	"sync"

	"github.com/civicworks/infrapulse/pkg/logger"
	"github.com/civicworks/infrapulse/pkg/metrics"
	"github.com/civicworks/infrapulse/pkg/models"
)

// DefaultSize is the window size the failure-prediction model expects.
const DefaultSize = 6

// FlushFunc receives a full batch for one structure. Implementations own
// their error handling; a failed flush is never re-queued and the readings
// involved are lost to failure prediction.
type FlushFunc func(ctx context.Context, structureID string, readings []models.TelemetryMessage)

// Window is a keyed in-memory accumulator. State is not durable: a consumer
// restart drops partial batches. The mutex serializes append-then-maybe-flush
// across structures so the invariant holds even if multiple subjects deliver
// readings for the same structure concurrently.
type Window struct {
	mu      sync.Mutex
	size    int
	pending map[string][]models.TelemetryMessage
	flush   FlushFunc
	logger  logger.Logger
}

// NewWindow creates a window that flushes batches of the given size. A size
// below one falls back to DefaultSize.
func NewWindow(size int, flush FlushFunc, log logger.Logger) *Window {
	if size < 1 {
		size = DefaultSize
	}

	return &Window{
		size:    size,
		pending: make(map[string][]models.TelemetryMessage),
		flush:   flush,
		logger:  log,
	}
}

// Add appends a reading to the structure's pending list. When the list
// reaches the window size it is atomically swapped out and flushed
// synchronously; the pending list is empty for that key by the time the
// flush callback runs, regardless of the callback's outcome.
func (w *Window) Add(ctx context.Context, structureID string, msg models.TelemetryMessage) {
	w.mu.Lock()

	w.pending[structureID] = append(w.pending[structureID], msg)
	if len(w.pending[structureID]) < w.size {
		metrics.BatchPending.WithLabelValues(structureID).Set(float64(len(w.pending[structureID])))
		w.mu.Unlock()

		return
	}

	readings := w.pending[structureID]
	delete(w.pending, structureID)
	metrics.BatchPending.WithLabelValues(structureID).Set(0)
	w.mu.Unlock()

	w.logger.Debug().
		Str("structure_id", structureID).
		Int("readings", len(readings)).
		Msg("Batch window full, flushing")

	w.flush(ctx, structureID, readings)
}

// Pending returns the number of readings currently buffered for a structure.
func (w *Window) Pending(structureID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.pending[structureID])
}
