package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/domain/model"
	"github.com/gfx-lab/overlaydeck/pkg/domain/types"
	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
	"github.com/gfx-lab/overlaydeck/pkg/utils/safe"
)

// overlayResponse is the wire shape of an overlay record
type overlayResponse struct {
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

func toOverlayResponse(o *model.Overlay) overlayResponse {
	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}
	return overlayResponse{
		ID:           o.ID.String(),
		Title:        o.Title,
		Description:  o.Description,
		Category:     o.Category,
		Tags:         tags,
		IsFavorite:   o.IsFavorite,
		PreviewURL:   o.PreviewURL,
		CreatedAt:    o.CreatedAt,
		LastModified: o.LastModified,
	}
}

// overlayRequest carries the partial fields of a create or update. Absent
// fields stay untouched on update and take defaults on create.
type overlayRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	IsFavorite  *bool     `json:"isFavorite"`
	PreviewURL  *string   `json:"previewUrl"`
}

func (req overlayRequest) toPatch() model.Patch {
	return model.Patch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		IsFavorite:  req.IsFavorite,
		PreviewURL:  req.PreviewURL,
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func (s *Server) listOverlays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.Filter{
		Search:        q.Get("q"),
		Category:      q.Get("category"),
		OnlyFavorites: q.Get("favorites") == "true",
	}

	sortOpt := types.SortNewest
	if raw := q.Get("sort"); raw != "" {
		parsed, err := types.ParseSortOption(raw)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		sortOpt = parsed
	}

	overlays := s.library.List(filter, sortOpt)
	resp := make([]overlayResponse, len(overlays))
	for i, o := range overlays {
		resp[i] = toOverlayResponse(o)
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"overlays": resp})
}

func (s *Server) createOverlay(w http.ResponseWriter, r *http.Request) {
	var req overlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	created, err := s.library.Create(r.Context(), req.toPatch())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, toOverlayResponse(created))
}

func (s *Server) getOverlay(w http.ResponseWriter, r *http.Request) {
	id := types.OverlayID(chi.URLParam(r, "id"))

	overlay, ok := s.library.Get(id)
	if !ok {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(types.ErrNotFound, "overlay not found", goerr.V("id", id)), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, toOverlayResponse(overlay))
}

func (s *Server) updateOverlay(w http.ResponseWriter, r *http.Request) {
	id := types.OverlayID(chi.URLParam(r, "id"))

	var req overlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	updated, err := s.library.Update(r.Context(), id, req.toPatch())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if updated == nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(types.ErrNotFound, "overlay not found", goerr.V("id", id)), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, toOverlayResponse(updated))
}

func (s *Server) deleteOverlay(w http.ResponseWriter, r *http.Request) {
	id := types.OverlayID(chi.URLParam(r, "id"))

	if err := s.library.Delete(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := types.OverlayID(chi.URLParam(r, "id"))

	if err := s.library.ToggleFavorite(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	overlay, ok := s.library.Get(id)
	if !ok {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(types.ErrNotFound, "overlay not found", goerr.V("id", id)), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, toOverlayResponse(overlay))
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"tags": s.library.Tags()})
}

func (s *Server) setPreview(w http.ResponseWriter, r *http.Request) {
	id := types.OverlayID(chi.URLParam(r, "id"))

	if !s.library.SetPreview(id) {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(types.ErrNotFound, "overlay not found", goerr.V("id", id)), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPreview(w http.ResponseWriter, r *http.Request) {
	id, ok := s.library.Preview()
	if !ok {
		writeJSON(w, r, http.StatusOK, map[string]any{"preview": nil})
		return
	}

	overlay, found := s.library.Get(id)
	if !found {
		writeJSON(w, r, http.StatusOK, map[string]any{"preview": nil})
		return
	}

	resp := toOverlayResponse(overlay)
	writeJSON(w, r, http.StatusOK, map[string]any{"preview": &resp})
}

func (s *Server) clearPreview(w http.ResponseWriter, r *http.Request) {
	s.library.ClearPreview()
	w.WriteHeader(http.StatusNoContent)
}
