package memory

import (
	"context"
	"sync"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
)

type categoryRepository struct {
	mu    sync.RWMutex
	names []string
}

var _ interfaces.CategoryRepository = &categoryRepository{}

func newCategoryRepository() *categoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Get(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.names))
	copy(result, r.names)
	return result, nil
}

func (r *categoryRepository) Put(ctx context.Context, categories []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(categories))
	copy(names, categories)
	r.names = names
	return nil
}
