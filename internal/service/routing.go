package service

import (
	"context"
	"math"
	"time"

	"log/slog"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/internal/scoring"
	"github.com/andreisalomia/TravelSafe/pkg/e"

	"github.com/google/uuid"
	"github.com/twpayne/go-polyline"
)

type routingService struct {
	hazards  HazardRepository
	routes   RouteRepository
	cache    HazardCacheService
	scorer   *scoring.Scorer
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewRoutingService(
	hazards HazardRepository,
	routes RouteRepository,
	cache HazardCacheService,
	scorer *scoring.Scorer,
	logger *slog.Logger,
	cacheTTL time.Duration,
) RoutingService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &routingService{
		hazards:  hazards,
		routes:   routes,
		cache:    cache,
		scorer:   scorer,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (s *routingService) PlanRoute(ctx context.Context, req domain.PlanRouteRequest) (*domain.PlanRouteResponse, error) {
	if req.Start.Lat == nil || req.Start.Lng == nil || req.End.Lat == nil || req.End.Lng == nil {
		return nil, e.ErrInvalidCoordinates
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeCar
	}
	if !mode.Valid() {
		return nil, e.ErrInvalidInput
	}

	paths, err := s.collectPaths(req)
	if err != nil {
		return nil, err
	}
	avoid := domain.NormalizeAvoidKinds(req.AvoidKinds)

	s.logger.Info("route scoring START",
		slog.String("mode", string(mode)),
		slog.Int("paths", len(paths)),
		slog.Any("avoid_kinds", avoid),
	)

	snapshot, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := s.scorer.ScoreRoute(paths, snapshot, avoid)

	plan := &domain.RoutePlan{
		RequesterID: req.RequesterID,
		StartLat:    *req.Start.Lat,
		StartLng:    *req.Start.Lng,
		EndLat:      *req.End.Lat,
		EndLng:      *req.End.Lng,
		Mode:        mode,
		AvoidKinds:  avoid,
	}

	links := make([]domain.ImpactLink, 0, len(result.Impacts))
	for _, imp := range result.Impacts {
		links = append(links, domain.ImpactLink{
			HazardID:    imp.Hazard.ID,
			ImpactScore: imp.ImpactScore,
		})
	}
	route := &domain.ScoredRoute{
		Paths:   paths,
		Score:   result.Score,
		Impacts: links,
	}

	if err := s.routes.SaveRoutePlan(ctx, plan, route); err != nil {
		return nil, err
	}

	impacts := make([]domain.RouteImpact, 0, len(result.Impacts))
	for _, imp := range result.Impacts {
		impacts = append(impacts, domain.RouteImpact{
			HazardID:    imp.Hazard.ID,
			Kind:        imp.Hazard.Kind,
			Severity:    imp.Hazard.Severity,
			DistanceKM:  math.Round(imp.DistanceKm*1000) / 1000,
			ImpactScore: imp.ImpactScore,
		})
	}

	s.logger.Info("route scoring END",
		slog.String("route_id", route.ID.String()),
		slog.Int("score", result.Score),
		slog.Int("impacts", len(impacts)),
	)
	return &domain.PlanRouteResponse{
		RequestID: plan.ID,
		RouteID:   route.ID,
		Score:     result.Score,
		Impacts:   impacts,
	}, nil
}

func (s *routingService) GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error) {
	return s.routes.GetRoute(ctx, id)
}

func (s *routingService) Options(ctx context.Context) (*domain.RouteOptionsResponse, error) {
	kinds, err := s.hazards.Kinds(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[domain.HazardKind]struct{}, len(kinds))
	for _, k := range kinds {
		known[k] = struct{}{}
	}
	defaults := make([]string, 0, 3)
	for _, k := range domain.DefaultAvoidKinds() {
		if _, ok := known[domain.HazardKind(k)]; ok {
			defaults = append(defaults, k)
		}
	}

	return &domain.RouteOptionsResponse{
		TravelModes:       domain.TravelModes(),
		HazardKinds:       kinds,
		DefaultAvoidKinds: defaults,
	}, nil
}

// collectPaths merges the raw paths with any encoded polylines, decoded
// into the same [lon,lat] wire order.
func (s *routingService) collectPaths(req domain.PlanRouteRequest) ([]domain.Path, error) {
	paths := make([]domain.Path, 0, len(req.Paths)+len(req.EncodedPolylines))
	paths = append(paths, req.Paths...)

	for _, enc := range req.EncodedPolylines {
		coords, _, err := polyline.DecodeCoords([]byte(enc))
		if err != nil {
			s.logger.Warn("polyline decode failed", slog.Any("error", err))
			return nil, e.ErrInvalidInput
		}
		path := make(domain.Path, 0, len(coords))
		for _, c := range coords {
			path = append(path, []float64{c[1], c[0]})
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// activeSnapshot serves the scorer's hazard view: cache first, repo on a
// miss, best-effort refill.
func (s *routingService) activeSnapshot(ctx context.Context) ([]domain.Hazard, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("snapshot cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	hazards, err := s.hazards.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, hazards, s.cacheTTL); err != nil {
			s.logger.Warn("snapshot cache write failed", slog.Any("error", err))
		}
	}
	return hazards, nil
}
