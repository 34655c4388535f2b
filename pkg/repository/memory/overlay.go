package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

type overlayRepository struct {
	mu      sync.RWMutex
	records map[types.OverlayID]*model.Overlay
	seed    []*model.Overlay
	seeded  bool
}

var _ interfaces.OverlayRepository = &overlayRepository{}

func newOverlayRepository() *overlayRepository {
	return &overlayRepository{
		records: make(map[types.OverlayID]*model.Overlay),
	}
}

func (r *overlayRepository) GetAll(ctx context.Context) ([]*model.Overlay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.seeded {
		// First call ever: write the seed dataset and mark the store
		// initialized. The flag is set even with an empty seed so a later
		// wipe by the user is not re-seeded.
		for _, o := range r.seed {
			r.records[o.ID] = o.Clone()
		}
		r.seeded = true
	}

	result := make([]*model.Overlay, 0, len(r.records))
	for _, o := range r.records {
		result = append(result, o.Clone())
	}

	return result, nil
}

func (r *overlayRepository) Put(ctx context.Context, overlay *model.Overlay) error {
	if overlay == nil {
		return goerr.New("overlay is nil")
	}
	if overlay.ID == "" {
		return goerr.Wrap(types.ErrWriteFailed, "overlay ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[overlay.ID] = overlay.Clone()
	return nil
}

func (r *overlayRepository) PutAll(ctx context.Context, overlays []*model.Overlay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range overlays {
		if o == nil || o.ID == "" {
			return goerr.Wrap(types.ErrWriteFailed, "overlay ID is required")
		}
		r.records[o.ID] = o.Clone()
	}
	return nil
}

func (r *overlayRepository) Delete(ctx context.Context, id types.OverlayID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Deleting an absent ID succeeds silently
	delete(r.records, id)
	return nil
}
