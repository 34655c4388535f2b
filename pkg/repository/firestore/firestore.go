package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

type Firestore struct {
	client   *firestore.Client
	overlay  *overlayRepository
	category *categoryRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used to isolate test
// runs against a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.overlay.collectionPrefix = prefix
		f.category.collectionPrefix = prefix
	}
}

// WithSeed sets the dataset written on the first GetAll against the
// uninitialized store.
func WithSeed(seed []*model.Overlay) Option {
	return func(f *Firestore) {
		f.overlay.seed = seed
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	client, err := newClient(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
			goerr.V("cause", err))
	}

	f := &Firestore{
		client:   client,
		overlay:  newOverlayRepository(client),
		category: newCategoryRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func newClient(ctx context.Context, projectID, databaseID string) (*firestore.Client, error) {
	if databaseID == "" {
		return firestore.NewClient(ctx, projectID)
	}
	return firestore.NewClientWithDatabase(ctx, projectID, databaseID)
}

func (f *Firestore) Overlay() interfaces.OverlayRepository {
	return f.overlay
}

func (f *Firestore) Category() interfaces.CategoryRepository {
	return f.category
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
