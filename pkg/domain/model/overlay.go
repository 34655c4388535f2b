package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// Overlay represents a single video-production graphic overlay record.
// Timestamps are unix epoch milliseconds. CreatedAt is set once at creation
// and never changes; LastModified is stamped on every save.
type Overlay struct {
	ID           types.OverlayID
	Title        string
	Description  string
	Category     string
	Tags         []string
	IsFavorite   bool
	PreviewURL   string
	CreatedAt    int64
	LastModified int64
}

// Validate checks the record invariants
func (x *Overlay) Validate() error {
	if x.ID == "" {
		return goerr.New("overlay ID is required")
	}
	if x.Title == "" {
		return goerr.New("overlay title is required", goerr.V("id", x.ID))
	}
	if x.CreatedAt > x.LastModified {
		return goerr.New("createdAt must not be after lastModified",
			goerr.V("id", x.ID),
			goerr.V("createdAt", x.CreatedAt),
			goerr.V("lastModified", x.LastModified))
	}
	return nil
}

// Clone returns a deep copy of the overlay
func (x *Overlay) Clone() *Overlay {
	copied := *x
	if x.Tags != nil {
		copied.Tags = make([]string, len(x.Tags))
		copy(copied.Tags, x.Tags)
	}
	return &copied
}

// Patch carries the fields of a partial overlay update. Nil fields are left
// unchanged by the merge.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
	IsFavorite  *bool
	PreviewURL  *string
}

// Apply merges the patch onto the overlay in place. It does not touch
// timestamps; the caller stamps LastModified.
func (p Patch) Apply(x *Overlay) {
	if p.Title != nil {
		x.Title = *p.Title
	}
	if p.Description != nil {
		x.Description = *p.Description
	}
	if p.Category != nil {
		x.Category = *p.Category
	}
	if p.Tags != nil {
		tags := make([]string, len(*p.Tags))
		copy(tags, *p.Tags)
		x.Tags = tags
	}
	if p.IsFavorite != nil {
		x.IsFavorite = *p.IsFavorite
	}
	if p.PreviewURL != nil {
		x.PreviewURL = *p.PreviewURL
	}
}
