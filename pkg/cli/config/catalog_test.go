package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gfx-lab/overlaydeck/pkg/cli/config"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
)

const testCatalogTOML = `
categories = ["Bauchbinde", "Wetter"]

[[overlays]]
title = "Wetterkarte Nord"
description = "Karte mit Temperaturen für Norddeutschland"
category = "Wetter"
tags = ["wetter", "karte"]
preview_url = "https://example.com/wetter.png"
favorite = true

[[overlays]]
title = "Sparsamer Eintrag"
`

func writeCatalog(t *testing.T, content string) *config.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()

	return config.NewCatalogForTest(path)
}

func TestCatalogLoad(t *testing.T) {
	t.Run("parses categories and overlays", func(t *testing.T) {
		c := writeCatalog(t, testCatalogTOML)

		catalog, err := c.Load()
		gt.NoError(t, err).Required()
		gt.Value(t, catalog).NotNil()

		gt.Array(t, catalog.Categories).Equal([]string{"Bauchbinde", "Wetter"})
		gt.Array(t, catalog.Overlays).Length(2)
		gt.Value(t, catalog.Overlays[0].Title).Equal("Wetterkarte Nord")
		gt.Value(t, catalog.Overlays[0].Favorite).Equal(true)
	})

	t.Run("no path configured returns nil", func(t *testing.T) {
		var c config.Catalog

		catalog, err := c.Load()
		gt.NoError(t, err).Required()
		gt.Value(t, catalog).Nil()
	})

	t.Run("rejects duplicate categories", func(t *testing.T) {
		c := writeCatalog(t, `categories = ["Doppelt", "Doppelt"]`)

		_, err := c.Load()
		gt.Error(t, err)
	})

	t.Run("rejects overlays without title", func(t *testing.T) {
		c := writeCatalog(t, `
[[overlays]]
description = "kein Titel"
`)

		_, err := c.Load()
		gt.Error(t, err)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		c := writeCatalog(t, `categories = [`)

		_, err := c.Load()
		gt.Error(t, err)
	})
}

func TestCatalogSeed(t *testing.T) {
	c := writeCatalog(t, testCatalogTOML)
	catalog, err := c.Load()
	gt.NoError(t, err).Required()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := catalog.Seed(now)
	gt.Array(t, seed).Length(2)

	full := seed[0]
	gt.NoError(t, full.ID.Validate())
	gt.Value(t, full.Title).Equal("Wetterkarte Nord")
	gt.Value(t, full.Category).Equal("Wetter")
	gt.Array(t, full.Tags).Equal([]string{"wetter", "karte"})
	gt.Value(t, full.IsFavorite).Equal(true)
	gt.Value(t, full.PreviewURL).Equal("https://example.com/wetter.png")
	gt.Value(t, full.CreatedAt).Equal(now.UnixMilli())
	gt.Value(t, full.LastModified).Equal(now.UnixMilli())

	// Omitted fields fall back to defaults
	sparse := seed[1]
	gt.Value(t, sparse.Category).Equal(model.FallbackCategory)
	gt.Value(t, sparse.PreviewURL).Equal(model.DefaultPreviewURL)
	gt.Value(t, sparse.ID).NotEqual(full.ID)
}
