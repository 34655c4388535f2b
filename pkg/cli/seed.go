package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gfx-lab/overlaydeck/pkg/cli/config"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
)

func cmdSeed() *cli.Command {
	var force bool
	var repoCfg config.Repository
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Write the seed records even when the store already holds data",
			Destination: &force,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Populate the store with demo overlays and the category list",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			seed := model.SeedOverlays(time.Now())
			categories := model.InitialCategories()
			catalog, err := catalogCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			if catalog != nil {
				seed = catalog.Seed(time.Now())
				if len(catalog.Categories) > 0 {
					categories = catalog.Categories
				}
			}

			repo, err := repoCfg.Configure(ctx, seed)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			// First read of an empty store writes the seed set
			overlays, err := repo.Overlay().GetAll(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to read overlay store")
			}

			if force {
				if err := repo.Overlay().PutAll(ctx, seed); err != nil {
					return goerr.Wrap(err, "failed to write seed overlays")
				}
				logger.Info("Seed overlays written", "count", len(seed), "forced", true)
			} else {
				logger.Info("Overlay store ready", "count", len(overlays))
			}

			existing, err := repo.Category().Get(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to read category list")
			}
			if len(existing) == 0 || force {
				if err := repo.Category().Put(ctx, categories); err != nil {
					return goerr.Wrap(err, "failed to write category list")
				}
				logger.Info("Category list written", "count", len(categories))
			} else {
				logger.Info("Category list already present", "count", len(existing))
			}

			return nil
		},
	}
}
