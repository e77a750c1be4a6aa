package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	diaryEntriesPath = "/diary-entries"
	diaryEntryPath   = "/diary-entries/{id}"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(cors.Handler(h.corsOptions()))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		if h.cfg.PublicDiaryMutations {
			h.logger.Warn().Msg("PUT and DELETE on diary entries are served without authorization")
			r.Put(diaryEntryPath, h.replaceDiaryEntry)
			r.Delete(diaryEntryPath, h.deleteDiaryEntry)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(diaryEntriesPath, h.listDiaryEntries)
		r.Post(diaryEntriesPath, h.createDiaryEntry)
		r.Get(diaryEntryPath, h.getDiaryEntry)

		if !h.cfg.PublicDiaryMutations {
			r.Put(diaryEntryPath, h.replaceDiaryEntry)
			r.Delete(diaryEntryPath, h.deleteDiaryEntry)
		}
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
