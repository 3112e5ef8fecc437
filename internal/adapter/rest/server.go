package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/rs/cors"

	"eval-server/internal/application/port/input"
	"eval-server/internal/application/port/output"
)

type Config struct {
	Addr           string
	RequestTimeout time.Duration
	APIConfigured  bool
}

type Server struct {
	evaluator     input.Evaluator
	transcriber   input.Transcriber
	logger        output.LoggerPort
	apiConfigured bool
	timeout       time.Duration
}

func NewServer(cfg Config, evaluator input.Evaluator, transcriber input.Transcriber, logger output.LoggerPort) *http.Server {
	s := &Server{
		evaluator:     evaluator,
		transcriber:   transcriber,
		logger:        logger,
		apiConfigured: cfg.APIConfigured,
		timeout:       cfg.RequestTimeout,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(httplog.RequestLogger(httplog.NewLogger("eval-server", httplog.Options{
		JSON:    true,
		Concise: true,
	})))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	}).Handler)

	r.Get("/", s.root)
	r.Get("/health", s.health)
	r.Post("/transcribe", s.transcribe)
	r.Post("/evaluate", s.evaluate)

	return &http.Server{Addr: cfg.Addr, Handler: r}
}

// requestContext bounds each upstream call; an unresponsive provider
// must not hang the request forever.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), s.timeout)
}
