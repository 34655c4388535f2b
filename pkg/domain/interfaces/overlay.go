package interfaces

import (
	"context"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// OverlayRepository defines the interface for durable Overlay persistence.
// Records are keyed by ID only; there are no secondary indexes or range
// queries because the working set is small and all filtering happens in
// memory upstream.
type OverlayRepository interface {
	// GetAll returns every record currently stored. On the very first call
	// against a store that has never been marked initialized, it writes the
	// configured seed dataset, marks the flag (kept outside the record
	// space) and returns the seeds. Every later call returns whatever is
	// stored, which may legitimately be empty; it never re-seeds.
	// Fails with types.ErrStoreUnavailable if the engine cannot be opened.
	GetAll(ctx context.Context) ([]*model.Overlay, error)

	// Put inserts or fully replaces the record with the matching ID. It
	// returns only after the write is durably committed, not merely queued.
	// Fails with types.ErrWriteFailed on a storage engine error.
	Put(ctx context.Context, overlay *model.Overlay) error

	// PutAll upserts every record. The individual puts are independent so
	// partial application is possible; there is no atomicity across the
	// batch, but PutAll returns only after all constituent writes are
	// committed.
	PutAll(ctx context.Context, overlays []*model.Overlay) error

	// Delete removes the record with the given ID. Deleting a non-existent
	// ID succeeds silently.
	Delete(ctx context.Context, id types.OverlayID) error
}
