package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gfx-lab/overlaydeck/pkg/service/assist"
	"github.com/gfx-lab/overlaydeck/pkg/usecase"
	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
	"github.com/gfx-lab/overlaydeck/pkg/utils/safe"
)

type Server struct {
	router        *chi.Mux
	library       *usecase.Library
	assistService assist.Service
}

type Options func(*Server)

// WithAssist enables the AI enrichment endpoints. Without it they respond
// 503; overlay CRUD never depends on it.
func WithAssist(svc assist.Service) Options {
	return func(s *Server) {
		s.assistService = svc
	}
}

func New(library *usecase.Library, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		library: library,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/overlays", func(r chi.Router) {
			r.Get("/", s.listOverlays)
			r.Post("/", s.createOverlay)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getOverlay)
				r.Put("/", s.updateOverlay)
				r.Delete("/", s.deleteOverlay)
				r.Post("/favorite", s.toggleFavorite)
				r.Post("/preview", s.setPreview)
			})
		})

		r.Get("/tags", s.listTags)
		r.Get("/preview", s.getPreview)
		r.Delete("/preview", s.clearPreview)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.listCategories)
			r.Post("/", s.addCategory)
			r.Put("/{name}", s.renameCategory)
			r.Delete("/{name}", s.removeCategory)
		})

		r.Route("/assist", func(r chi.Router) {
			r.Post("/description", s.generateDescription)
			r.Post("/tags", s.suggestTags)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte("OK"))
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
