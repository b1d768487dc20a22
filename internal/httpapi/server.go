package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
)

// maxUploadMemory is the part of a multipart upload kept in memory; the rest spills to disk.
const maxUploadMemory = 32 << 20

type handler struct {
	pipeline pipeline.Pipeline
	tempDir  string
	maxBytes int64
	about    Info
	logger   logger.Logger
}

// Options configures NewRouter.
type Options struct {
	TempDir        string
	MaxUploadBytes int64 // 0 disables the limit
	Info           Info
}

// NewRouter exposes the pipeline over HTTP:
//
//	GET  /api/v1/health
//	GET  /api/v1/info
//	POST /api/v1/summarize  multipart: file, title, save_transcript
func NewRouter(p pipeline.Pipeline, opts Options, log logger.Logger) http.Handler {
	h := &handler{
		pipeline: p,
		tempDir:  opts.TempDir,
		maxBytes: opts.MaxUploadBytes,
		about:    opts.Info,
		logger:   log,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(log))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Get("/health", h.health)
		apiRouter.Get("/info", h.info)
		apiRouter.Post("/summarize", h.summarize)
	})
	return router
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info(r.Context(), "%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
		})
	}
}
