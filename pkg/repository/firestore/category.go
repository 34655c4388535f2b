package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gfx-lab/overlaydeck/pkg/domain/interfaces"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

const categoriesDoc = "categories"

type categoryRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.CategoryRepository = &categoryRepository{}

func newCategoryRepository(client *firestore.Client) *categoryRepository {
	return &categoryRepository{
		client: client,
	}
}

func (r *categoryRepository) metaCollection() *firestore.CollectionRef {
	name := metaCollectionBase
	if r.collectionPrefix != "" {
		name = r.collectionPrefix + "_" + name
	}
	return r.client.Collection(name)
}

// categoryListDoc keeps the whole ordered name list in a single document;
// the list is tiny and always read and written as a unit.
type categoryListDoc struct {
	Names []string
}

func (r *categoryRepository) Get(ctx context.Context) ([]string, error) {
	doc, err := r.metaCollection().Doc(categoriesDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []string{}, nil
		}
		return nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to get category list", goerr.V("cause", err))
	}

	var data categoryListDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal category list")
	}

	if data.Names == nil {
		return []string{}, nil
	}
	return data.Names, nil
}

func (r *categoryRepository) Put(ctx context.Context, categories []string) error {
	if _, err := r.metaCollection().Doc(categoriesDoc).Set(ctx, &categoryListDoc{Names: categories}); err != nil {
		return goerr.Wrap(types.ErrWriteFailed, "failed to put category list",
			goerr.V("count", len(categories)),
			goerr.V("cause", err))
	}
	return nil
}
