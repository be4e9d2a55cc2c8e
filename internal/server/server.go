package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emergentai/gridhero/internal/config"
	"github.com/emergentai/gridhero/internal/logger"
)

type Server struct {
	cfg  *config.Config
	log  *slog.Logger
	http *http.Server
}

func New(cfg *config.Config, log *slog.Logger, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		log: log.With(logger.Scope("server")),
		http: &http.Server{
			Addr:         cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("addr", s.cfg.Port))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
