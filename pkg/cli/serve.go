package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gfx-lab/overlaydeck/pkg/cli/config"
	httpctrl "github.com/gfx-lab/overlaydeck/pkg/controller/http"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/service/assist"
	"github.com/gfx-lab/overlaydeck/pkg/service/worker"
	"github.com/gfx-lab/overlaydeck/pkg/usecase"
	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var flushInterval time.Duration
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("OVERLAYDECK_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "flush-interval",
			Usage:       "Interval between retries of unsynced records",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("OVERLAYDECK_FLUSH_INTERVAL"),
			Destination: &flushInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Resolve seed records and default categories, from the catalog
			// file when one is given, otherwise from the built-in demo set
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
				logging.Default().Info("Catalog loaded",
					"categories", len(catalog.Categories),
					"overlays", len(catalog.Overlays),
				)
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx, seed)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			library := usecase.New(repo, usecase.WithDefaultCategories(categories))
			if err := library.Load(ctx); err != nil {
				return goerr.Wrap(err, "failed to load overlay library")
			}

			// Start background retry of failed write-throughs
			flushWorker := worker.NewFlushWorker(library, flushInterval)
			if err := flushWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start flush worker")
			}

			// AI enrichment is optional; overlay CRUD works without it
			httpOpts := []httpctrl.Options{}
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}
			if llmClient != nil {
				assistSvc, err := assist.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize assist service")
				}
				httpOpts = append(httpOpts, httpctrl.WithAssist(assistSvc))
				logging.Default().Info("AI assist enabled")
			} else {
				logging.Default().Info("Gemini project not configured, AI assist endpoints disabled")
			}

			httpHandler := httpctrl.New(library, httpOpts...)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				flushWorker.Stop()
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop the retry loop, then take one last shot at pending writes
				flushWorker.Stop()
				if library.Dirty() > 0 {
					flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					if err := library.Flush(flushCtx); err != nil {
						logging.Default().Error("final flush failed, unsynced records remain",
							"error", err.Error(), "remaining", library.Dirty())
					}
					cancel()
				}

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
