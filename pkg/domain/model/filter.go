package model

import (
	"sort"
	"strings"

	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// Filter narrows an overlay listing. Zero value matches everything.
type Filter struct {
	Search        string
	Category      string // empty means all categories
	OnlyFavorites bool
}

// Match reports whether the overlay passes the filter. The search term is a
// case-insensitive substring match; a record matches if any of title,
// description or one of its tags contains the term.
func (f Filter) Match(x *Overlay) bool {
	if f.Category != "" && x.Category != f.Category {
		return false
	}
	if f.OnlyFavorites && !x.IsFavorite {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if strings.Contains(strings.ToLower(x.Title), term) {
			return true
		}
		if strings.Contains(strings.ToLower(x.Description), term) {
			return true
		}
		for _, tag := range x.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
		return false
	}
	return true
}

// SortOverlays orders the slice in place according to the sort option.
// SortNewest/SortOldest order by CreatedAt, name sorts are case-insensitive
// by title. The sort is stable so equal keys keep their relative order.
func SortOverlays(overlays []*Overlay, opt types.SortOption) {
	switch opt.Normalize() {
	case types.SortOldest:
		sort.SliceStable(overlays, func(i, j int) bool {
			return overlays[i].CreatedAt < overlays[j].CreatedAt
		})
	case types.SortNameAsc:
		sort.SliceStable(overlays, func(i, j int) bool {
			return strings.ToLower(overlays[i].Title) < strings.ToLower(overlays[j].Title)
		})
	case types.SortNameDesc:
		sort.SliceStable(overlays, func(i, j int) bool {
			return strings.ToLower(overlays[i].Title) > strings.ToLower(overlays[j].Title)
		})
	default: // SortNewest
		sort.SliceStable(overlays, func(i, j int) bool {
			return overlays[i].CreatedAt > overlays[j].CreatedAt
		})
	}
}
