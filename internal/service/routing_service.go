package service

import (
	"context"

	"github.com/andreisalomia/TravelSafe/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) PlanRoute(ctx context.Context, req domain.PlanRouteRequest) (*domain.PlanRouteResponse, error) {
	return s.RoutingService.PlanRoute(ctx, req)
}

func (s *Service) GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error) {
	return s.RoutingService.GetRoute(ctx, id)
}

func (s *Service) Options(ctx context.Context) (*domain.RouteOptionsResponse, error) {
	return s.RoutingService.Options(ctx)
}
