package model

import (
	"time"

	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// Defaults applied when a new overlay omits the field.
const (
	FallbackCategory  = "Sonstiges"
	DefaultPreviewURL = "https://picsum.photos/400/225"
)

// InitialCategories returns the category list a fresh installation starts
// with.
func InitialCategories() []string {
	return []string{
		"Bauchbinde",
		"Vollbild",
		"Ticker",
		"Logo",
		"Picture-in-Picture",
		"Sonstiges",
	}
}

// SeedOverlays returns the fixed demo dataset written once into an
// uninitialized store so a fresh installation is not empty on first use.
// Timestamps are derived from now with fixed offsets, matching the spread of
// a library that has been in use for a while.
func SeedOverlays(now time.Time) []*Overlay {
	ms := now.UnixMilli()
	return []*Overlay{
		{
			ID:           types.OverlayID("5f0c2a6e-9a1d-4b31-8f3e-1c2d4e5f6a01"),
			Title:        "Standard News Bauchbinde",
			Description:  "Klassische blaue Bauchbinde für Nachrichten-Segmente mit Platzhalter für Name und Titel.",
			Category:     "Bauchbinde",
			Tags:         []string{"news", "blau", "hd"},
			IsFavorite:   true,
			PreviewURL:   "https://picsum.photos/400/225?random=1",
			CreatedAt:    ms - 10000000,
			LastModified: ms - 100000,
		},
		{
			ID:           types.OverlayID("5f0c2a6e-9a1d-4b31-8f3e-1c2d4e5f6a02"),
			Title:        "Eilmeldung Ticker",
			Description:  "Roter Ticker am unteren Bildrand für dringende Meldungen.",
			Category:     "Ticker",
			Tags:         []string{"alert", "rot", "live"},
			IsFavorite:   false,
			PreviewURL:   "https://picsum.photos/400/225?random=2",
			CreatedAt:    ms - 20000000,
			LastModified: ms - 500000,
		},
		{
			ID:           types.OverlayID("5f0c2a6e-9a1d-4b31-8f3e-1c2d4e5f6a03"),
			Title:        "Sport Scoreboard",
			Description:  "Spielstand-Anzeige oben rechts für Fußballübertragungen.",
			Category:     "Sonstiges",
			Tags:         []string{"sport", "live", "score"},
			IsFavorite:   true,
			PreviewURL:   "https://picsum.photos/400/225?random=3",
			CreatedAt:    ms - 5000000,
			LastModified: ms,
		},
		{
			ID:           types.OverlayID("5f0c2a6e-9a1d-4b31-8f3e-1c2d4e5f6a04"),
			Title:        "Interview Partner Vollbild",
			Description:  "Grafik zur Vorstellung des Gastes vor dem Interview.",
			Category:     "Vollbild",
			Tags:         []string{"interview", "bio", "statisch"},
			IsFavorite:   false,
			PreviewURL:   "https://picsum.photos/400/225?random=4",
			CreatedAt:    ms - 15000000,
			LastModified: ms - 2000000,
		},
		{
			ID:           types.OverlayID("5f0c2a6e-9a1d-4b31-8f3e-1c2d4e5f6a05"),
			Title:        "Sender Logo Transparent",
			Description:  "Wasserzeichen oben rechts, 50% Opazität.",
			Category:     "Logo",
			Tags:         []string{"branding", "permanent"},
			IsFavorite:   false,
			PreviewURL:   "https://picsum.photos/400/225?random=5",
			CreatedAt:    ms - 30000000,
			LastModified: ms - 30000000,
		},
	}
}
