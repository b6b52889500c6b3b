package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
)

type Server struct {
	address  string
	handlers *Handlers
	logger   logging.Logger
}

func NewServer(address string, handlers *Handlers, logger logging.Logger) *Server {
	return &Server{
		address:  address,
		handlers: handlers,
		logger:   logger.With("module", "http_server"),
	}
}

// Router builds the chi mux with middleware and all routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handlers.Health)

	r.Get("/user/{code}", s.handlers.GetUser)
	r.Post("/user", s.handlers.CreateUser)
	r.Post("/user/{code}/profile", s.handlers.UploadProfileImage)
	r.Post("/user/{code}/background", s.handlers.UploadBackgroundImage)
	r.Post("/lover/{id}/image", s.handlers.UploadLoverImage)

	r.Get("/media/*", s.handlers.Media)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
