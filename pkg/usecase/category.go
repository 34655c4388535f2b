package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
)

// defaultCategoryLocked returns the category for a new overlay that omits
// one. Must be called with the mutex held.
func (l *Library) defaultCategoryLocked() string {
	if len(l.categories) > 0 {
		return l.categories[0]
	}
	return model.FallbackCategory
}

// AddCategory appends a new category name to the list. Duplicate names are
// rejected at the list level so rename-by-value can never collide.
func (l *Library) AddCategory(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return err
	}
	if name == "" {
		return goerr.New("category name is required")
	}
	if slices.Contains(l.categories, name) {
		return goerr.Wrap(ErrCategoryExists, "cannot add category", goerr.V(CategoryKey, name))
	}

	l.categories = append(l.categories, name)
	l.persistCategoriesLocked(ctx)
	return nil
}

// RenameCategory rewrites the list entry and then rewrites every overlay
// referencing the old name, persisting each rewritten record individually.
// The records' LastModified timestamps are not bumped: the records' content
// did not change, only the label they point at.
func (l *Library) RenameCategory(ctx context.Context, oldName, newName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return err
	}
	if newName == "" {
		return goerr.New("category name is required")
	}
	idx := slices.Index(l.categories, oldName)
	if idx < 0 {
		return goerr.Wrap(ErrCategoryNotFound, "cannot rename category", goerr.V(CategoryKey, oldName))
	}
	if newName != oldName && slices.Contains(l.categories, newName) {
		return goerr.Wrap(ErrCategoryExists, "cannot rename category", goerr.V(CategoryKey, newName))
	}

	l.categories[idx] = newName
	l.persistCategoriesLocked(ctx)

	for i, o := range l.overlays {
		if o.Category != oldName {
			continue
		}
		updated := o.Clone()
		updated.Category = newName
		l.overlays[i] = updated

		if err := l.repo.Overlay().Put(ctx, updated); err != nil {
			l.markDirtyLocked(updated.ID)
			errutil.Handle(ctx, err, "failed to persist category rename, keeping in-memory copy unsynced")
		}
	}

	return nil
}

// RemoveCategory deletes the name from the list. Overlays referencing it
// keep their category string; there is no referential integrity between the
// two stores.
func (l *Library) RemoveCategory(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLoadedLocked(); err != nil {
		return err
	}
	idx := slices.Index(l.categories, name)
	if idx < 0 {
		return goerr.Wrap(ErrCategoryNotFound, "cannot remove category", goerr.V(CategoryKey, name))
	}

	l.categories = append(l.categories[:idx], l.categories[idx+1:]...)
	l.persistCategoriesLocked(ctx)
	return nil
}

// persistCategoriesLocked writes the category list through, marking it
// unsynced on failure. Must be called with the mutex held.
func (l *Library) persistCategoriesLocked(ctx context.Context) {
	if err := l.repo.Category().Put(ctx, l.categories); err != nil {
		l.dirtyCategories = true
		errutil.Handle(ctx, err, "failed to persist category list, keeping in-memory copy unsynced")
	}
}
