package service

import (
	"context"

	"github.com/andreisalomia/TravelSafe/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) HazardStats(ctx context.Context) (*domain.HazardStats, error) {
	return s.repo.HazardStats(ctx)
}
