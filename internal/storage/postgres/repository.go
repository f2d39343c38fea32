package postgres

import (
	"context"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/domain"

	"github.com/google/uuid"
)

type HazardRepository interface {
	// Insert persists a hazard together with its report aggregate
	// (reports_count = 1) in one transaction.
	Insert(ctx context.Context, hazard *domain.Hazard) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error)
	ListActive(ctx context.Context) ([]domain.Hazard, error)
	// ListInBox returns active hazards inside a coordinate box.
	ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]domain.Hazard, error)
	Update(ctx context.Context, hazard *domain.Hazard) error
	// Delete removes the hazard row; the aggregate and any impact
	// links cascade with it.
	Delete(ctx context.Context, id uuid.UUID) error
	// FindActiveNear returns the first active hazard of the same kind
	// whose coordinates both lie within toleranceDeg, or nil when none
	// matches.
	FindActiveNear(ctx context.Context, lat, lng float64, kind domain.HazardKind, toleranceDeg float64) (*domain.Hazard, error)
	// IncrementReportCount bumps the aggregate and returns the new
	// count. A missing aggregate row counts as one implicit report.
	IncrementReportCount(ctx context.Context, id uuid.UUID) (int, error)
	// ResolveOrCreate runs the duplicate check and the resulting
	// increment-or-insert as one atomic unit; concurrent reports for
	// the same kind serialize on an advisory lock.
	ResolveOrCreate(ctx context.Context, hazard *domain.Hazard, toleranceDeg float64) (*domain.Hazard, bool, error)
	// ExpireDue flips active hazards whose expires_at has passed and
	// returns how many rows changed.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	// Kinds returns the distinct kinds present in storage.
	Kinds(ctx context.Context) ([]domain.HazardKind, error)
}

type RouteRepository interface {
	// SaveRoutePlan persists the plan, its scored route and all impact
	// links in one transaction.
	SaveRoutePlan(ctx context.Context, plan *domain.RoutePlan, route *domain.ScoredRoute) error
	GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error)
}

type StatsRepository interface {
	HazardStats(ctx context.Context) (*domain.HazardStats, error)
}

func (p *Postgres) Hazards() HazardRepository { return p.Hazard }
func (p *Postgres) Routes() RouteRepository   { return p.Route }
func (p *Postgres) Stats() StatsRepository    { return p.Stat }
