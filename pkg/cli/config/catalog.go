package config

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
	"github.com/gfx-lab/overlaydeck/pkg/utils/safe"
)

// Catalog holds the CLI flag pointing at an optional TOML catalog file
// that overrides the built-in category list and seed records.
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog file with categories and seed overlays",
			Sources:     cli.EnvVars("OVERLAYDECK_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Load reads and validates the catalog file. It returns nil when no
// catalog path is configured.
func (c *Catalog) Load() (*CatalogFile, error) {
	if c.path == "" {
		return nil, nil
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open catalog file", goerr.V("path", c.path))
	}
	defer safe.Close(context.Background(), f)

	var catalog CatalogFile
	if err := toml.NewDecoder(f).Decode(&catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", c.path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V("path", c.path))
	}

	return &catalog, nil
}

// CatalogFile is the decoded shape of a catalog TOML file
type CatalogFile struct {
	Categories []string         `toml:"categories"`
	Overlays   []CatalogOverlay `toml:"overlays"`
}

// CatalogOverlay describes one seed record in the catalog file
type CatalogOverlay struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Category    string   `toml:"category"`
	Tags        []string `toml:"tags"`
	PreviewURL  string   `toml:"preview_url"`
	Favorite    bool     `toml:"favorite"`
}

// Validate checks the catalog for entries the library could not load
func (c *CatalogFile) Validate() error {
	seen := make(map[string]struct{}, len(c.Categories))
	for _, name := range c.Categories {
		if name == "" {
			return goerr.New("catalog contains an empty category name")
		}
		if _, ok := seen[name]; ok {
			return goerr.New("catalog contains a duplicate category", goerr.V("category", name))
		}
		seen[name] = struct{}{}
	}

	for i, o := range c.Overlays {
		if o.Title == "" {
			return goerr.New("catalog overlay is missing a title", goerr.V("index", i))
		}
	}

	return nil
}

// Seed converts the catalog overlays into store records. IDs are generated
// and both timestamps are set to now.
func (c *CatalogFile) Seed(now time.Time) []*model.Overlay {
	ms := now.UnixMilli()
	overlays := make([]*model.Overlay, 0, len(c.Overlays))
	for _, entry := range c.Overlays {
		category := entry.Category
		if category == "" {
			category = model.FallbackCategory
		}
		previewURL := entry.PreviewURL
		if previewURL == "" {
			previewURL = model.DefaultPreviewURL
		}
		overlays = append(overlays, &model.Overlay{
			ID:           types.NewOverlayID(),
			Title:        entry.Title,
			Description:  entry.Description,
			Category:     category,
			Tags:         append([]string(nil), entry.Tags...),
			IsFavorite:   entry.Favorite,
			PreviewURL:   previewURL,
			CreatedAt:    ms,
			LastModified: ms,
		})
	}
	return overlays
}
