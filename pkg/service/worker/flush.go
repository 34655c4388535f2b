package worker

import (
	"context"
	"time"

	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
)

// Flusher retries failed write-throughs of the overlay library
type Flusher interface {
	Flush(ctx context.Context) error
	Dirty() int
}

// FlushWorker periodically retries unsynced records so a transient store
// failure eventually reconciles instead of diverging forever.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type FlushWorker struct {
	flusher  Flusher
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewFlushWorker creates a new worker retrying unsynced writes
func NewFlushWorker(flusher Flusher, interval time.Duration) *FlushWorker {
	return &FlushWorker{
		flusher:  flusher,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background flush loop. It does not block server startup.
func (w *FlushWorker) Start(ctx context.Context) error {
	logging.Default().Info("Flush worker starting", "interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *FlushWorker) Stop() {
	logging.Default().Info("Flush worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Flush worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *FlushWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.flushOnce(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Flush failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Flush worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Flush worker context cancelled")
			return
		}
	}
}

// flushOnce performs a single flush cycle
func (w *FlushWorker) flushOnce(ctx context.Context) error {
	pending := w.flusher.Dirty()
	if pending == 0 {
		return nil
	}

	startTime := time.Now()
	logging.Default().Info("Starting flush of unsynced records", "pending", pending)

	if err := w.flusher.Flush(ctx); err != nil {
		return err
	}

	logging.Default().Info("Flush completed",
		"pending", pending,
		"remaining", w.flusher.Dirty(),
		"duration", time.Since(startTime).String())

	return nil
}
