package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/andreisalomia/TravelSafe/internal/api/handlers/http/hazards"
	"github.com/andreisalomia/TravelSafe/internal/api/handlers/http/routing"
	"github.com/andreisalomia/TravelSafe/internal/api/handlers/http/system"
	"github.com/andreisalomia/TravelSafe/internal/config"
	"github.com/andreisalomia/TravelSafe/internal/middleware"
	"github.com/andreisalomia/TravelSafe/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	hazardHandler := hazards.NewHandler(logger, svc.HazardService, svc.StatsService)
	routingHandler := routing.NewHandler(logger, svc.RoutingService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(ctx, cfg, hazardHandler, routingHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, hazardHandler *hazards.Handler, routingHandler *routing.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// request_id lands in the chi.Logger line
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	apiKey := middleware.APIKeyMiddleware(cfg.APIKey, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/hazards", func(hr chi.Router) {
			hr.With(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).Post("/", hazardHandler.HazardReport)
			hr.Get("/", hazardHandler.HazardList)
			hr.Get("/statistics", hazardHandler.HazardStatistics)
			hr.Get("/nearby", hazardHandler.HazardNearby)

			hr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", hazardHandler.HazardGet)
				ir.With(apiKey).Put("/", hazardHandler.HazardUpdate)
				ir.With(apiKey).Delete("/", hazardHandler.HazardDelete)
				ir.With(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).Post("/report", hazardHandler.HazardReconfirm)
			})
		})

		api.Route("/routes", func(rr chi.Router) {
			rr.With(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger)).Post("/", routingHandler.RoutePlan)
			rr.Get("/options", routingHandler.RouteOptions)
			rr.Get("/{id}", routingHandler.RouteGet)
		})

		api.Get("/map", hazardHandler.HazardMap)
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
