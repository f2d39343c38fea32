package service

import (
	"context"

	"github.com/andreisalomia/TravelSafe/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) Report(ctx context.Context, req domain.ReportHazardRequest) (*domain.ReportHazardResponse, error) {
	return s.HazardService.Report(ctx, req)
}

func (s *Service) List(ctx context.Context, req domain.ListHazardsRequest) (*domain.ListHazardsResponse, error) {
	return s.HazardService.List(ctx, req)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.HazardService.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) (*domain.Hazard, error) {
	return s.HazardService.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.HazardService.Delete(ctx, id)
}

func (s *Service) Reconfirm(ctx context.Context, id uuid.UUID) (*domain.ReconfirmResponse, error) {
	return s.HazardService.Reconfirm(ctx, id)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyResponse, error) {
	return s.HazardService.Nearby(ctx, req)
}

func (s *Service) MapData(ctx context.Context) (*domain.MapDataResponse, error) {
	return s.HazardService.MapData(ctx)
}
