package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/usecase"
	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func categoryStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrCategoryExists):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"categories": s.library.Categories()})
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("category name is required"), http.StatusBadRequest)
		return
	}

	if err := s.library.AddCategory(r.Context(), req.Name); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, categoryStatus(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, map[string]any{"categories": s.library.Categories()})
}

func (s *Server) renameCategory(w http.ResponseWriter, r *http.Request) {
	oldName := chi.URLParam(r, "name")

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("category name is required"), http.StatusBadRequest)
		return
	}

	if err := s.library.RenameCategory(r.Context(), oldName, req.Name); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, categoryStatus(err))
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"categories": s.library.Categories()})
}

func (s *Server) removeCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.library.RemoveCategory(r.Context(), name); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, categoryStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
