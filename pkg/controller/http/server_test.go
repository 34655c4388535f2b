package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/gfx-lab/overlaydeck/pkg/controller/http"
	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/repository/memory"
	"github.com/gfx-lab/overlaydeck/pkg/usecase"
)

type overlayJSON struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	IsFavorite   bool     `json:"isFavorite"`
	PreviewURL   string   `json:"previewUrl"`
	CreatedAt    int64    `json:"createdAt"`
	LastModified int64    `json:"lastModified"`
}

func setupServer(t *testing.T, seed []*model.Overlay, opts ...httpctrl.Options) http.Handler {
	t.Helper()

	repo := memory.New(memory.WithSeed(seed))
	library := usecase.New(repo)
	gt.NoError(t, library.Load(context.Background())).Required()

	return httpctrl.New(library, opts...)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body)).Required()
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), target)).Required()
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupServer(t, nil)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("OK")
}

func TestOverlayEndpoints(t *testing.T) {
	seed := model.SeedOverlays(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("list returns seeded overlays", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/overlays", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Overlays []overlayJSON `json:"overlays"`
		}
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Overlays).Length(len(seed))
	})

	t.Run("list filters by search, category and favorites", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/overlays?q=eilmeldung", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		var resp struct {
			Overlays []overlayJSON `json:"overlays"`
		}
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Overlays).Length(1)
		gt.Value(t, resp.Overlays[0].Title).Equal("Eilmeldung Ticker")

		rec = doJSON(t, handler, http.MethodGet, "/api/overlays?category=Bauchbinde", nil)
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Overlays).Length(1)

		rec = doJSON(t, handler, http.MethodGet, "/api/overlays?favorites=true", nil)
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Overlays).Length(2)
	})

	t.Run("list sorts by name", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/overlays?sort=name_asc", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Overlays []overlayJSON `json:"overlays"`
		}
		decodeInto(t, rec, &resp)
		gt.Value(t, resp.Overlays[0].Title).Equal("Eilmeldung Ticker")
	})

	t.Run("list rejects unknown sort option", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/overlays?sort=sideways", nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("create applies defaults", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodPost, "/api/overlays", map[string]any{})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var created overlayJSON
		decodeInto(t, rec, &created)
		gt.Value(t, created.Title).Equal("Neues Overlay")
		gt.Value(t, created.PreviewURL).Equal(model.DefaultPreviewURL)
		gt.Value(t, created.CreatedAt).Equal(created.LastModified)
		gt.Array(t, created.Tags).Length(0)
	})

	t.Run("create keeps given fields", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodPost, "/api/overlays", map[string]any{
			"title":    "Wetterkarte",
			"category": "Vollbild",
			"tags":     []string{"wetter"},
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var created overlayJSON
		decodeInto(t, rec, &created)
		gt.Value(t, created.Title).Equal("Wetterkarte")
		gt.Value(t, created.Category).Equal("Vollbild")
		gt.Array(t, created.Tags).Equal([]string{"wetter"})
	})

	t.Run("get returns record or 404", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/overlays/"+seed[0].ID.String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var got overlayJSON
		decodeInto(t, rec, &got)
		gt.Value(t, got.ID).Equal(seed[0].ID.String())

		rec = doJSON(t, handler, http.MethodGet, "/api/overlays/00000000-0000-4000-8000-00000000dead", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("update merges partial body", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodPut, "/api/overlays/"+seed[0].ID.String(), map[string]any{
			"title": "Umbenannt",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var got overlayJSON
		decodeInto(t, rec, &got)
		gt.Value(t, got.Title).Equal("Umbenannt")
		gt.Value(t, got.Description).Equal(seed[0].Description)

		rec = doJSON(t, handler, http.MethodPut, "/api/overlays/00000000-0000-4000-8000-00000000dead", map[string]any{
			"title": "X",
		})
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("delete removes record", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodDelete, "/api/overlays/"+seed[0].ID.String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodGet, "/api/overlays/"+seed[0].ID.String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("favorite toggle returns updated record", func(t *testing.T) {
		handler := setupServer(t, seed)
		target := seed[1] // not a favorite in the seed set

		rec := doJSON(t, handler, http.MethodPost, "/api/overlays/"+target.ID.String()+"/favorite", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var got overlayJSON
		decodeInto(t, rec, &got)
		gt.Value(t, got.IsFavorite).Equal(true)
		gt.Value(t, got.LastModified).Equal(target.LastModified)

		rec = doJSON(t, handler, http.MethodPost, "/api/overlays/00000000-0000-4000-8000-00000000dead/favorite", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("tags lists distinct sorted tags", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodGet, "/api/tags", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Tags []string `json:"tags"`
		}
		decodeInto(t, rec, &resp)
		gt.Bool(t, len(resp.Tags) > 0).True()
		for i := 1; i < len(resp.Tags); i++ {
			gt.Bool(t, resp.Tags[i-1] < resp.Tags[i]).True()
		}
	})
}

func TestPreviewEndpoints(t *testing.T) {
	seed := model.SeedOverlays(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("preview lifecycle", func(t *testing.T) {
		handler := setupServer(t, seed)

		// Nothing previewed initially
		rec := doJSON(t, handler, http.MethodGet, "/api/preview", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		var resp struct {
			Preview *overlayJSON `json:"preview"`
		}
		decodeInto(t, rec, &resp)
		gt.Value(t, resp.Preview).Nil()

		// Select a record
		rec = doJSON(t, handler, http.MethodPost, "/api/overlays/"+seed[0].ID.String()+"/preview", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodGet, "/api/preview", nil)
		decodeInto(t, rec, &resp)
		gt.Value(t, resp.Preview).NotNil()
		gt.Value(t, resp.Preview.ID).Equal(seed[0].ID.String())

		// Clear
		rec = doJSON(t, handler, http.MethodDelete, "/api/preview", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodGet, "/api/preview", nil)
		decodeInto(t, rec, &resp)
		gt.Value(t, resp.Preview).Nil()
	})

	t.Run("previewing unknown record fails", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodPost, "/api/overlays/00000000-0000-4000-8000-00000000dead/preview", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("deleting previewed record clears preview", func(t *testing.T) {
		handler := setupServer(t, seed)

		rec := doJSON(t, handler, http.MethodPost, "/api/overlays/"+seed[0].ID.String()+"/preview", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodDelete, "/api/overlays/"+seed[0].ID.String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodGet, "/api/preview", nil)
		var resp struct {
			Preview *overlayJSON `json:"preview"`
		}
		decodeInto(t, rec, &resp)
		gt.Value(t, resp.Preview).Nil()
	})
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("list returns default categories", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodGet, "/api/categories", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Categories []string `json:"categories"`
		}
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Categories).Equal(model.InitialCategories())
	})

	t.Run("add appends and rejects duplicates", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodPost, "/api/categories", map[string]any{"name": "Wetter"})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		rec = doJSON(t, handler, http.MethodPost, "/api/categories", map[string]any{"name": "Wetter"})
		gt.Value(t, rec.Code).Equal(http.StatusConflict)

		rec = doJSON(t, handler, http.MethodPost, "/api/categories", map[string]any{"name": ""})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("rename rewrites list", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodPut, "/api/categories/Ticker", map[string]any{"name": "Laufband"})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Categories []string `json:"categories"`
		}
		decodeInto(t, rec, &resp)
		gt.Array(t, resp.Categories).Has("Laufband")

		rec = doJSON(t, handler, http.MethodPut, "/api/categories/Unbekannt", map[string]any{"name": "X"})
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)

		rec = doJSON(t, handler, http.MethodPut, "/api/categories/Logo", map[string]any{"name": "Laufband"})
		gt.Value(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("remove deletes from list", func(t *testing.T) {
		handler := setupServer(t, nil)

		rec := doJSON(t, handler, http.MethodDelete, "/api/categories/Logo", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, handler, http.MethodDelete, "/api/categories/Logo", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}
