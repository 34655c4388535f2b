package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// Dirty returns the number of pending store operations awaiting retry:
// records whose last write-through failed, records whose store delete
// failed, and the category list (counted as one).
func (l *Library) Dirty() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.dirty) + len(l.pendingDeletes)
	if l.dirtyCategories {
		n++
	}
	return n
}

// Flush retries the write-through of every unsynced record, every failed
// store delete and, if needed, the category list. Successfully committed
// operations are unmarked; those that fail again stay pending for the next
// attempt.
func (l *Library) Flush(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.dirty) == 0 && len(l.pendingDeletes) == 0 && !l.dirtyCategories {
		return nil
	}

	var pending []*model.Overlay
	var ids []types.OverlayID
	for id := range l.dirty {
		idx := l.indexOfLocked(id)
		if idx < 0 {
			// Deleted since it was marked; nothing left to sync
			delete(l.dirty, id)
			continue
		}
		pending = append(pending, l.overlays[idx].Clone())
		ids = append(ids, id)
	}

	var errs []error
	if len(pending) > 0 {
		if err := l.repo.Overlay().PutAll(ctx, pending); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to flush unsynced overlays", goerr.V("count", len(pending))))
		} else {
			for _, id := range ids {
				delete(l.dirty, id)
			}
		}
	}

	for id := range l.pendingDeletes {
		if err := l.repo.Overlay().Delete(ctx, id); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to flush pending delete", goerr.V(OverlayIDKey, id)))
			continue
		}
		delete(l.pendingDeletes, id)
	}

	if l.dirtyCategories {
		if err := l.repo.Category().Put(ctx, l.categories); err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to flush category list"))
		} else {
			l.dirtyCategories = false
		}
	}

	if len(errs) > 0 {
		return goerr.Wrap(errs[0], "flush incomplete", goerr.V("errors", len(errs)))
	}
	return nil
}
