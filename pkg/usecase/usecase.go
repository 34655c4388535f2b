package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
)

// Library is the single in-memory source of truth the presentation layer
// reads from, and the funnel through which every mutation passes before
// reaching the store. Mutations apply to the in-memory state first and are
// then written through to the repository; when a write fails the in-memory
// change is kept and the record is marked unsynced for a later Flush, never
// reverted.
//
// Two concurrent writers of the same record resolve last-write-wins with no
// conflict detection; this is a known consistency limitation.
type Library struct {
	repo interfaces.Repository

	mu         sync.RWMutex
	overlays   []*model.Overlay // most-recent-first
	categories []string
	previewID  types.OverlayID
	loaded     bool

	dirty           map[types.OverlayID]struct{}
	pendingDeletes  map[types.OverlayID]struct{}
	dirtyCategories bool

	now               func() time.Time
	newID             func() types.OverlayID
	defaultCategories []string
}

type Option func(*Library)

// WithClock overrides the timestamp source, used by tests
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		l.now = now
	}
}

// WithIDGenerator overrides the overlay ID source, used by tests
func WithIDGenerator(newID func() types.OverlayID) Option {
	return func(l *Library) {
		l.newID = newID
	}
}

// WithDefaultCategories sets the category list adopted when the store has
// no persisted list yet.
func WithDefaultCategories(categories []string) Option {
	return func(l *Library) {
		l.defaultCategories = categories
	}
}

func New(repo interfaces.Repository, opts ...Option) *Library {
	l := &Library{
		repo:              repo,
		dirty:             make(map[types.OverlayID]struct{}),
		pendingDeletes:    make(map[types.OverlayID]struct{}),
		now:               time.Now,
		newID:             types.NewOverlayID,
		defaultCategories: model.InitialCategories(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load fetches all records and the category list from the store, replacing
// the in-memory state wholesale. It must run exactly once per session; a
// second call fails with ErrAlreadyLoaded. An unavailable store or a failed
// seed degrades to an empty library instead of failing the session.
func (l *Library) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return goerr.Wrap(ErrAlreadyLoaded, "load must only run once per session")
	}

	overlays, err := l.repo.Overlay().GetAll(ctx)
	if err != nil {
		if errors.Is(err, types.ErrStoreUnavailable) || errors.Is(err, types.ErrSeedFailed) {
			errutil.Handle(ctx, err, "overlay store degraded, starting with an empty library")
			overlays = nil
		} else {
			return goerr.Wrap(err, "failed to load overlays")
		}
	}
	model.SortOverlays(overlays, types.SortNewest)
	l.overlays = overlays

	categories, err := l.repo.Category().Get(ctx)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load categories, falling back to defaults")
		categories = nil
	}
	if len(categories) == 0 {
		categories = append([]string(nil), l.defaultCategories...)
		if err := l.repo.Category().Put(ctx, categories); err != nil {
			l.dirtyCategories = true
			errutil.Handle(ctx, err, "failed to persist default categories")
		}
	}
	l.categories = categories

	l.loaded = true
	return nil
}

// markDirtyLocked records a failed write-through so Flush can retry it.
// Must be called with the mutex held.
func (l *Library) markDirtyLocked(id types.OverlayID) {
	l.dirty[id] = struct{}{}
}

// requireLoadedLocked guards mutations against use before Load.
// Must be called with the mutex held.
func (l *Library) requireLoadedLocked() error {
	if !l.loaded {
		return goerr.Wrap(ErrNotLoaded, "call Load before mutating the library")
	}
	return nil
}

// indexOfLocked returns the position of the record with the given ID, or -1.
// Must be called with the mutex held.
func (l *Library) indexOfLocked(id types.OverlayID) int {
	for i, o := range l.overlays {
		if o.ID == id {
			return i
		}
	}
	return -1
}
