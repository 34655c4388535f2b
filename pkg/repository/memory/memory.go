package memory

import (
	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
)

// Memory is an in-memory repository for development mode and tests. It
// follows the same seeding contract as the durable backend but loses all
// data when the process exits.
type Memory struct {
	overlay  *overlayRepository
	category *categoryRepository
}

var _ interfaces.Repository = &Memory{}

type Option func(*Memory)

// WithSeed sets the dataset written on the first GetAll against the
// uninitialized store.
func WithSeed(seed []*model.Overlay) Option {
	return func(m *Memory) {
		m.overlay.seed = seed
	}
}

func New(opts ...Option) *Memory {
	m := &Memory{
		overlay:  newOverlayRepository(),
		category: newCategoryRepository(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Memory) Overlay() interfaces.OverlayRepository {
	return m.overlay
}

func (m *Memory) Category() interfaces.CategoryRepository {
	return m.category
}

func (m *Memory) Close() error {
	return nil
}
