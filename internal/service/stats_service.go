package service

import (
	"context"

	"github.com/andreisalomia/TravelSafe/internal/domain"
)

func (s *Service) HazardStats(ctx context.Context) (*domain.HazardStats, error) {
	return s.StatsService.HazardStats(ctx)
}
