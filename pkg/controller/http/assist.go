package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gfx-lab/overlaydeck/pkg/utils/errutil"
)

type describeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type suggestTagsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) generateDescription(w http.ResponseWriter, r *http.Request) {
	if s.assistService == nil {
		errutil.HandleHTTP(r.Context(), w, goerr.New("assist service is not configured"), http.StatusServiceUnavailable)
		return
	}

	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("title is required"), http.StatusBadRequest)
		return
	}

	description, err := s.assistService.GenerateDescription(r.Context(), req.Title, req.Category)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"description": description})
}

func (s *Server) suggestTags(w http.ResponseWriter, r *http.Request) {
	if s.assistService == nil {
		errutil.HandleHTTP(r.Context(), w, goerr.New("assist service is not configured"), http.StatusServiceUnavailable)
		return
	}

	var req suggestTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("title is required"), http.StatusBadRequest)
		return
	}

	tags, err := s.assistService.SuggestTags(r.Context(), req.Title, req.Description)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"tags": tags})
}
