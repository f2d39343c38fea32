package service

import (
	"context"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type HazardService interface {
	Report(ctx context.Context, req domain.ReportHazardRequest) (*domain.ReportHazardResponse, error)
	List(ctx context.Context, req domain.ListHazardsRequest) (*domain.ListHazardsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) (*domain.Hazard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reconfirm(ctx context.Context, id uuid.UUID) (*domain.ReconfirmResponse, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyResponse, error)
	MapData(ctx context.Context) (*domain.MapDataResponse, error)
}

type HazardRepository interface {
	ResolveOrCreate(ctx context.Context, hazard *domain.Hazard, toleranceDeg float64) (*domain.Hazard, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error)
	ListActive(ctx context.Context) ([]domain.Hazard, error)
	ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]domain.Hazard, error)
	Update(ctx context.Context, hazard *domain.Hazard) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementReportCount(ctx context.Context, id uuid.UUID) (int, error)
	Kinds(ctx context.Context) ([]domain.HazardKind, error)
}

// Route planning and retrieval
type RoutingService interface {
	PlanRoute(ctx context.Context, req domain.PlanRouteRequest) (*domain.PlanRouteResponse, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error)
	Options(ctx context.Context) (*domain.RouteOptionsResponse, error)
}

type RouteRepository interface {
	SaveRoutePlan(ctx context.Context, plan *domain.RoutePlan, route *domain.ScoredRoute) error
	GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error)
}

// Aggregated counters
type StatsService interface {
	HazardStats(ctx context.Context) (*domain.HazardStats, error)
}

type StatsRepository interface {
	HazardStats(ctx context.Context) (*domain.HazardStats, error)
}

type HazardCacheService interface {
	GetActive(ctx context.Context) ([]domain.Hazard, error)
	SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	HazardService  HazardService
	RoutingService RoutingService
	StatsService   StatsService
}

func NewService(
	hazardService HazardService,
	routingService RoutingService,
	statsService StatsService,
) *Service {
	return &Service{
		HazardService:  hazardService,
		RoutingService: routingService,
		StatsService:   statsService,
	}
}
