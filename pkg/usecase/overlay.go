package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
)

const fallbackTitle = "Neues Overlay"

// Create builds a new overlay from the given partial fields, filling the
// omitted ones with defaults: first known category (or the fallback
// literal), placeholder preview URL, empty tags, not favorite. The record is
// prepended to the in-memory list (most-recent-first) and written through.
func (l *Library) Create(ctx context.Context, input model.Patch) (*model.Overlay, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return nil, err
	}

	now := l.now().UnixMilli()
	created := &model.Overlay{
		ID:           l.newID(),
		Title:        fallbackTitle,
		Category:     l.defaultCategoryLocked(),
		Tags:         []string{},
		PreviewURL:   model.DefaultPreviewURL,
		CreatedAt:    now,
		LastModified: now,
	}
	input.Apply(created)
	if created.Title == "" {
		created.Title = fallbackTitle
	}
	if created.Category == "" {
		created.Category = l.defaultCategoryLocked()
	}
	if created.PreviewURL == "" {
		created.PreviewURL = model.DefaultPreviewURL
	}

	l.overlays = append([]*model.Overlay{created}, l.overlays...)

	if err := l.repo.Overlay().Put(ctx, created); err != nil {
		l.markDirtyLocked(created.ID)
		errutil.Handle(ctx, err, "failed to persist new overlay, keeping in-memory copy unsynced")
	}

	return created.Clone(), nil
}

// Update merges the patch onto the existing record and stamps LastModified.
// The list position is unchanged. An unknown ID is a no-op returning
// (nil, nil); callers are responsible for only passing known IDs.
func (l *Library) Update(ctx context.Context, id types.OverlayID, patch model.Patch) (*model.Overlay, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return nil, err
	}

	idx := l.indexOfLocked(id)
	if idx < 0 {
		return nil, nil
	}

	updated := l.overlays[idx].Clone()
	patch.Apply(updated)
	if ts := l.now().UnixMilli(); ts > updated.LastModified {
		updated.LastModified = ts
	}
	l.overlays[idx] = updated

	if err := l.repo.Overlay().Put(ctx, updated); err != nil {
		l.markDirtyLocked(id)
		errutil.Handle(ctx, err, "failed to persist overlay update, keeping in-memory copy unsynced")
	}

	return updated.Clone(), nil
}

// ToggleFavorite flips the favorite flag and writes the full record through.
// LastModified is left untouched, a favorite toggle is not an edit.
// An unknown ID is a no-op.
func (l *Library) ToggleFavorite(ctx context.Context, id types.OverlayID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return err
	}

	idx := l.indexOfLocked(id)
	if idx < 0 {
		return nil
	}

	updated := l.overlays[idx].Clone()
	updated.IsFavorite = !updated.IsFavorite
	l.overlays[idx] = updated

	if err := l.repo.Overlay().Put(ctx, updated); err != nil {
		l.markDirtyLocked(id)
		errutil.Handle(ctx, err, "failed to persist favorite toggle, keeping in-memory copy unsynced")
	}

	return nil
}

// Delete removes the record from the in-memory list and the store. Deleting
// the currently previewed record clears the preview state. An unknown ID is
// a no-op. A failed store delete is marked pending and retried by Flush so
// the record does not resurface from the store next session.
func (l *Library) Delete(ctx context.Context, id types.OverlayID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return err
	}

	idx := l.indexOfLocked(id)
	if idx < 0 {
		return nil
	}

	l.overlays = append(l.overlays[:idx], l.overlays[idx+1:]...)
	delete(l.dirty, id)

	if l.previewID == id {
		l.previewID = ""
	}

	if err := l.repo.Overlay().Delete(ctx, id); err != nil {
		l.pendingDeletes[id] = struct{}{}
		errutil.Handle(ctx, goerr.Wrap(err, "failed to delete overlay from store", goerr.V(OverlayIDKey, id)),
			"overlay removed from library but not from store, delete retried by flush")
		return nil
	}
	delete(l.pendingDeletes, id)

	return nil
}
