package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sensei3747/Market-Intelligence/internal/api/handler"
	"github.com/Sensei3747/Market-Intelligence/internal/api/handler/router"
	"github.com/Sensei3747/Market-Intelligence/internal/config"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
	"github.com/Sensei3747/Market-Intelligence/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Reports  handler.Reporter
	Charts   handler.ChartRenderer
	Insights handler.Insighter
	Chat     handler.Chatter
	Reloader handler.DatasetReloader
	Datasets handler.DatasetProvider
}

type Server struct {
	httpServer *http.Server
}

// New monta o roteador e a cadeia de middlewares. As métricas HTTP e o /metrics usam o registry informado.
func New(cfg *config.Config, services Services, registry *prometheus.Registry) (*Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("api: prometheus registry is required")
	}

	httpMetrics := middleware.NewHTTPMetrics(registry)

	rt := router.New(
		router.WithInstrumentation(httpMetrics.Instrument),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))...),
		router.WithRoutes(handler.Dashboard(services.Reports)...),
		router.WithRoutes(handler.Charts(services.Charts)...),
		router.WithRoutes(handler.Insights(services.Insights)...),
		router.WithRoutes(handler.Chat(services.Chat)...),
		router.WithRoutes(handler.Dataset(services.Reloader, services.Datasets)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server: error while serving")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: interrupt signal received")
	case <-ctx.Done():
		log.L.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: error during shutdown")
		return err
	}

	log.L.Info("server: shutdown completed")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
