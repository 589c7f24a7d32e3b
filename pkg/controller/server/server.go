package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sujeethshingade/docster/pkg/domain/interfaces"
)

const (
	DefaultFrontendURL       = "http://localhost:3000"
	DefaultGenerationTimeout = 30 * time.Minute
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	frontendURL       string
	generationTimeout time.Duration
}

type Option func(*config)

// WithFrontendURL sets the only origin allowed by CORS and the target of the
// OAuth callback redirect.
func WithFrontendURL(url string) Option {
	return func(cfg *config) {
		cfg.frontendURL = url
	}
}

// WithGenerationTimeout bounds a documentation run. The run is detached from
// the request, so it also finishes when the client goes away.
func WithGenerationTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.generationTimeout = d
	}
}

type handler struct {
	uc  interfaces.UseCase
	cfg *config
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		frontendURL:       DefaultFrontendURL,
		generationTimeout: DefaultGenerationTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	h := &handler{uc: uc, cfg: cfg}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, response{
			"status":  statusSuccess,
			"message": "Docster API is running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/documentation", func(r chi.Router) {
			r.Post("/generate", h.generateDocumentation)
			r.Get("/get/{owner}/{repo}", h.getDocumentation)
			r.Get("/export", h.exportDocumentation)
			r.Post("/export", h.exportDocumentation)
			r.Post("/file", h.generateFileDocumentation)
		})
		r.Route("/chat", func(r chi.Router) {
			r.Post("/query", h.query)
			r.Post("/update", h.requestUpdate)
			r.Post("/context", h.getContext)
			r.Get("/history/{owner}/{repo}", h.history)
		})
		r.Route("/github", func(r chi.Router) {
			r.Post("/connect", h.connectGitHub)
			r.Get("/callback", h.gitHubCallback)
			r.Get("/repositories", h.listRepositories)
			r.Get("/repository/{owner}/{repo}", h.getRepository)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
