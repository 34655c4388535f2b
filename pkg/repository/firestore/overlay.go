package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
)

// overlaySchemaVersion tags the record collection. Bump it whenever the
// record shape changes incompatibly; a new version starts from an empty
// collection of that version, existing records are not migrated.
const overlaySchemaVersion = 2

const (
	overlaysCollectionBase = "overlays"
	metaCollectionBase     = "meta"
	initFlagDoc            = "initialized"

	// putAllConcurrency caps the parallel writes of a batch upsert
	putAllConcurrency = 8
)

type overlayRepository struct {
	client           *firestore.Client
	collectionPrefix string
	seed             []*model.Overlay
}

var _ interfaces.OverlayRepository = &overlayRepository{}

func newOverlayRepository(client *firestore.Client) *overlayRepository {
	return &overlayRepository{
		client: client,
	}
}

// overlayDoc is the Firestore persistence model
type overlayDoc struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Tags         []string
	IsFavorite   bool
	PreviewURL   string
	CreatedAt    int64
	LastModified int64
}

func toDoc(o *model.Overlay) *overlayDoc {
	return &overlayDoc{
		ID:           o.ID.String(),
		Title:        o.Title,
		Description:  o.Description,
		Category:     o.Category,
		Tags:         o.Tags,
		IsFavorite:   o.IsFavorite,
		PreviewURL:   o.PreviewURL,
		CreatedAt:    o.CreatedAt,
		LastModified: o.LastModified,
	}
}

func (d *overlayDoc) toModel() *model.Overlay {
	return &model.Overlay{
		ID:           types.OverlayID(d.ID),
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Tags:         d.Tags,
		IsFavorite:   d.IsFavorite,
		PreviewURL:   d.PreviewURL,
		CreatedAt:    d.CreatedAt,
		LastModified: d.LastModified,
	}
}

func (r *overlayRepository) overlaysCollection() *firestore.CollectionRef {
	name := fmt.Sprintf("%s_v%d", overlaysCollectionBase, overlaySchemaVersion)
	if r.collectionPrefix != "" {
		name = r.collectionPrefix + "_" + name
	}
	return r.client.Collection(name)
}

// metaCollection holds the seeded flag and the category list, outside the
// record space and independent of the record schema version.
func (r *overlayRepository) metaCollection() *firestore.CollectionRef {
	name := metaCollectionBase
	if r.collectionPrefix != "" {
		name = r.collectionPrefix + "_" + name
	}
	return r.client.Collection(name)
}

// initFlag marks that the store has been seeded once
type initFlag struct {
	Initialized bool
	SeededAt    time.Time
}

func (r *overlayRepository) GetAll(ctx context.Context) ([]*model.Overlay, error) {
	flagRef := r.metaCollection().Doc(initFlagDoc)

	_, err := flagRef.Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			return nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to read init flag", goerr.V("cause", err))
		}

		// First run ever: write the seed dataset and mark the store
		// initialized. The flag is set even with an empty seed so a later
		// wipe by the user is not re-seeded.
		logging.From(ctx).Info("seeding overlay store with initial dataset", "count", len(r.seed))
		if err := r.writeSeed(ctx, flagRef); err != nil {
			return nil, goerr.Wrap(types.ErrSeedFailed, "failed to seed overlay store", goerr.V("cause", err))
		}
		result := make([]*model.Overlay, 0, len(r.seed))
		for _, o := range r.seed {
			result = append(result, o.Clone())
		}
		return result, nil
	}

	iter := r.overlaysCollection().Documents(ctx)
	defer iter.Stop()

	var result []*model.Overlay
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to iterate overlays", goerr.V("cause", err))
		}

		var data overlayDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal overlay", goerr.V("docID", doc.Ref.ID))
		}
		result = append(result, data.toModel())
	}

	if result == nil {
		result = []*model.Overlay{}
	}
	return result, nil
}

func (r *overlayRepository) writeSeed(ctx context.Context, flagRef *firestore.DocumentRef) error {
	for _, o := range r.seed {
		if _, err := r.overlaysCollection().Doc(o.ID.String()).Set(ctx, toDoc(o)); err != nil {
			return goerr.Wrap(err, "failed to write seed record", goerr.V("id", o.ID))
		}
	}

	if _, err := flagRef.Set(ctx, &initFlag{Initialized: true, SeededAt: time.Now().UTC()}); err != nil {
		return goerr.Wrap(err, "failed to mark store initialized")
	}
	return nil
}

func (r *overlayRepository) Put(ctx context.Context, overlay *model.Overlay) error {
	if overlay == nil {
		return goerr.New("overlay is nil")
	}
	if overlay.ID == "" {
		return goerr.Wrap(types.ErrWriteFailed, "overlay ID is required")
	}

	// Set resolves only after the write is committed, never merely queued
	if _, err := r.overlaysCollection().Doc(overlay.ID.String()).Set(ctx, toDoc(overlay)); err != nil {
		return goerr.Wrap(types.ErrWriteFailed, "failed to put overlay",
			goerr.V("id", overlay.ID),
			goerr.V("cause", err))
	}
	return nil
}

func (r *overlayRepository) PutAll(ctx context.Context, overlays []*model.Overlay) error {
	// Each put is independent; a failed write does not undo the committed
	// ones, but PutAll only returns after every write has settled.
	var eg errgroup.Group
	eg.SetLimit(putAllConcurrency)

	for _, o := range overlays {
		eg.Go(func() error {
			return r.Put(ctx, o)
		})
	}

	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to put overlays", goerr.V("count", len(overlays)))
	}
	return nil
}

func (r *overlayRepository) Delete(ctx context.Context, id types.OverlayID) error {
	// Firestore deletes are idempotent; an absent document is not an error
	if _, err := r.overlaysCollection().Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(types.ErrWriteFailed, "failed to delete overlay",
			goerr.V("id", id),
			goerr.V("cause", err))
	}
	return nil
}
