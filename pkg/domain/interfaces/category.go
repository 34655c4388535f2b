package interfaces

import "context"

// CategoryRepository persists the category name list. Categories are plain
// strings kept as a small ordered list in a lightweight store separate from
// the overlay records.
type CategoryRepository interface {
	// Get returns the stored category list. A store that has never been
	// written returns an empty list, not an error.
	Get(ctx context.Context) ([]string, error)

	// Put replaces the whole stored list.
	Put(ctx context.Context, categories []string) error
}
