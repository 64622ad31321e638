package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/ai"
	"github.com/Vovarama1992/blackbox-ai-bridge/internal/config"
	"github.com/Vovarama1992/blackbox-ai-bridge/internal/relay"
)

// NewRouter wires the relay module behind the shared middleware stack.
func NewRouter(cfg config.Config, h *relay.Handler, logger logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	relay.RegisterRoutes(r, h)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}

// NewHandler builds the full relay stack from configuration.
func NewHandler(cfg config.Config, logger *logrus.Logger) http.Handler {
	aiClient := ai.NewBlackboxClient(ai.ClientConfig{
		BaseURL:   cfg.ChatBaseURL,
		ChatPath:  cfg.ChatPath,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.UpstreamTimeout,
		Logger:    logger,
	})
	svc := relay.NewService(aiClient, logger)
	h := relay.NewHandler(svc, cfg.ImageBaseURL, logger)

	return NewRouter(cfg, h, logger)
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
