package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
)

func TestOverlayID(t *testing.T) {
	t.Run("generated IDs are valid and unique", func(t *testing.T) {
		a := types.NewOverlayID()
		b := types.NewOverlayID()

		gt.NoError(t, a.Validate())
		gt.NoError(t, b.Validate())
		gt.Value(t, a).NotEqual(b)
	})

	t.Run("empty ID is invalid", func(t *testing.T) {
		gt.Error(t, types.OverlayID("").Validate())
	})

	t.Run("non-UUID ID is invalid", func(t *testing.T) {
		gt.Error(t, types.OverlayID("not-a-uuid").Validate())
	})
}

func TestSortOption(t *testing.T) {
	t.Run("known options are valid", func(t *testing.T) {
		for _, opt := range types.AllSortOptions() {
			gt.Bool(t, opt.IsValid()).True()
		}
	})

	t.Run("unknown option is invalid", func(t *testing.T) {
		gt.Bool(t, types.SortOption("by_mood").IsValid()).False()
		gt.Bool(t, types.SortOption("").IsValid()).False()
	})

	t.Run("normalize treats empty as newest", func(t *testing.T) {
		gt.Value(t, types.SortOption("").Normalize()).Equal(types.SortNewest)
		gt.Value(t, types.SortOldest.Normalize()).Equal(types.SortOldest)
	})

	t.Run("parse accepts valid strings", func(t *testing.T) {
		opt, err := types.ParseSortOption("name_asc")
		gt.NoError(t, err).Required()
		gt.Value(t, opt).Equal(types.SortNameAsc)
	})

	t.Run("parse rejects invalid strings", func(t *testing.T) {
		_, err := types.ParseSortOption("upside_down")
		gt.Error(t, err)
	})
}
