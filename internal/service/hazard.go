package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"log/slog"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"

	"github.com/google/uuid"
)

type hazardService struct {
	repo      HazardRepository
	cache     HazardCacheService
	logger    *slog.Logger
	hazardTTL time.Duration
}

func NewHazardService(
	repo HazardRepository,
	cache HazardCacheService,
	logger *slog.Logger,
	hazardTTL time.Duration,
) HazardService {
	if hazardTTL <= 0 {
		hazardTTL = 24 * time.Hour
	}
	return &hazardService{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		hazardTTL: hazardTTL,
	}
}

func (s *hazardService) Report(ctx context.Context, req domain.ReportHazardRequest) (*domain.ReportHazardResponse, error) {
	if req.Lat == nil || req.Lng == nil {
		return nil, e.ErrInvalidCoordinates
	}
	lat, lng := *req.Lat, *req.Lng

	s.logger.Info("hazard report START",
		slog.String("kind", string(req.Kind)),
		slog.Int("severity", req.Severity),
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
	)

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)
		return nil, e.ErrInvalidCoordinates
	}
	if !req.Kind.Valid() {
		s.logger.Warn("unknown kind", slog.String("kind", string(req.Kind)))
		return nil, e.ErrInvalidKind
	}
	if req.Severity < 1 || req.Severity > 5 {
		return nil, e.ErrInvalidInput
	}

	expiresAt := time.Now().UTC().Add(s.hazardTTL)
	hazard := &domain.Hazard{
		Kind:       req.Kind,
		Severity:   req.Severity,
		Lat:        lat,
		Lng:        lng,
		ReporterID: req.ReporterID,
		ExpiresAt:  &expiresAt,
	}

	resolved, duplicate, err := s.repo.ResolveOrCreate(ctx, hazard, domain.DuplicateToleranceDeg)
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx)

	s.logger.Info("hazard report END",
		slog.String("hazard_id", resolved.ID.String()),
		slog.Bool("duplicate", duplicate),
		slog.Int("reports_count", resolved.ReportsCount),
	)
	return &domain.ReportHazardResponse{Hazard: resolved, Duplicate: duplicate}, nil
}

func (s *hazardService) List(ctx context.Context, req domain.ListHazardsRequest) (*domain.ListHazardsResponse, error) {
	if req.Status == "" {
		req.Status = domain.HazardActive
	}

	hazards, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return &domain.ListHazardsResponse{Hazards: hazards, Count: len(hazards)}, nil
}

func (s *hazardService) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.repo.Get(ctx, id)
}

func (s *hazardService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) (*domain.Hazard, error) {
	hazard, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		if !req.Kind.Valid() {
			return nil, e.ErrInvalidKind
		}
		hazard.Kind = *req.Kind
	}
	if req.Severity != nil {
		if *req.Severity < 1 || *req.Severity > 5 {
			return nil, e.ErrInvalidInput
		}
		hazard.Severity = *req.Severity
	}
	if req.Lat != nil {
		if *req.Lat < -90 || *req.Lat > 90 {
			return nil, e.ErrInvalidCoordinates
		}
		hazard.Lat = *req.Lat
	}
	if req.Lng != nil {
		if *req.Lng < -180 || *req.Lng > 180 {
			return nil, e.ErrInvalidCoordinates
		}
		hazard.Lng = *req.Lng
	}
	if req.Status != nil {
		if !hazard.Status.CanTransition(*req.Status) {
			s.logger.Warn("rejected status transition",
				slog.String("hazard_id", id.String()),
				slog.String("from", string(hazard.Status)),
				slog.String("to", string(*req.Status)),
			)
			return nil, e.ErrInvalidTransition
		}
		hazard.Status = *req.Status
	}

	if err := s.repo.Update(ctx, hazard); err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx)
	return hazard, nil
}

func (s *hazardService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *hazardService) Reconfirm(ctx context.Context, id uuid.UUID) (*domain.ReconfirmResponse, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	count, err := s.repo.IncrementReportCount(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("hazard reconfirmed",
		slog.String("hazard_id", id.String()),
		slog.Int("reports_count", count),
	)
	return &domain.ReconfirmResponse{HazardID: id, ReportsCount: count}, nil
}

func (s *hazardService) Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyResponse, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}

	radius := req.RadiusKM
	if radius <= 0 {
		radius = 5.0
	}

	latDelta := radius / 111.0
	lngDelta := radius / (111.0 * math.Abs(req.Lat))

	hazards, err := s.repo.ListInBox(ctx,
		req.Lat-latDelta, req.Lat+latDelta,
		req.Lng-lngDelta, req.Lng+lngDelta,
	)
	if err != nil {
		return nil, err
	}

	return &domain.NearbyResponse{
		Hazards:  hazards,
		Count:    len(hazards),
		Center:   domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		RadiusKM: radius,
	}, nil
}

func (s *hazardService) MapData(ctx context.Context) (*domain.MapDataResponse, error) {
	hazards, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	markers := make([]domain.MapMarker, 0, len(hazards))
	heatmap := make([]domain.HeatPoint, 0, len(hazards))
	for _, h := range hazards {
		markers = append(markers, domain.MapMarker{
			ID:          h.ID,
			Kind:        h.Kind,
			Severity:    h.Severity,
			Lat:         h.Lat,
			Lng:         h.Lng,
			CreatedAt:   h.CreatedAt,
			Description: fmt.Sprintf("%s (severity %d)", h.Kind, h.Severity),
		})
		heatmap = append(heatmap, domain.HeatPoint{Lat: h.Lat, Lng: h.Lng, Weight: h.Severity})
	}

	return &domain.MapDataResponse{Markers: markers, Heatmap: heatmap}, nil
}

func (s *hazardService) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("snapshot invalidation failed", slog.Any("error", err))
	}
}
