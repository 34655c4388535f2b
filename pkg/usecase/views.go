package usecase

import (
	"sort"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

// Overlays returns a copy of the full in-memory list in its current order
// (most-recent-first).
func (l *Library) Overlays() []*model.Overlay {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*model.Overlay, 0, len(l.overlays))
	for _, o := range l.overlays {
		result = append(result, o.Clone())
	}
	return result
}

// Get returns a copy of the record with the given ID
func (l *Library) Get(id types.OverlayID) (*model.Overlay, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOfLocked(id)
	if idx < 0 {
		return nil, false
	}
	return l.overlays[idx].Clone(), true
}

// List returns the overlays passing the filter, ordered by the sort option.
// It is a pure derived view with no persistence side effect.
func (l *Library) List(filter model.Filter, opt types.SortOption) []*model.Overlay {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*model.Overlay, 0, len(l.overlays))
	for _, o := range l.overlays {
		if filter.Match(o) {
			result = append(result, o.Clone())
		}
	}
	model.SortOverlays(result, opt)
	return result
}

// Tags returns every distinct tag currently in use, alphabetically ordered
func (l *Library) Tags() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, o := range l.overlays {
		for _, tag := range o.Tags {
			seen[tag] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for tag := range seen {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// Categories returns a copy of the current category list in order
func (l *Library) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]string, len(l.categories))
	copy(result, l.categories)
	return result
}

// SetPreview marks the record with the given ID as currently previewed.
// It reports whether the ID was known; an unknown ID leaves the preview
// state unchanged.
func (l *Library) SetPreview(id types.OverlayID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOfLocked(id) < 0 {
		return false
	}
	l.previewID = id
	return true
}

// Preview returns the currently previewed record ID, if any
func (l *Library) Preview() (types.OverlayID, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.previewID == "" {
		return "", false
	}
	return l.previewID, true
}

// ClearPreview resets the previewed-record state
func (l *Library) ClearPreview() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.previewID = ""
}
