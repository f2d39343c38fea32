package postgres

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) HazardStats(ctx context.Context) (*domain.HazardStats, error) {
	const op = "postgres.Stats.HazardStats"

	stats := &domain.HazardStats{
		ByKind:     make(map[domain.HazardKind]int64, len(domain.KnownKinds())),
		BySeverity: make(map[string]int64, 5),
	}
	// Zero-fill so every kind and severity shows up even with no rows.
	for _, k := range domain.KnownKinds() {
		stats.ByKind[k] = 0
	}
	for s := 1; s <= 5; s++ {
		stats.BySeverity[strconv.Itoa(s)] = 0
	}

	const totalsQuery = `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'active'),
			   COUNT(*) FILTER (WHERE status = 'resolved')
		FROM hazards
	`

	err := p.pool.QueryRow(ctx, totalsQuery).Scan(&stats.Total, &stats.Active, &stats.Resolved)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const byKindQuery = `
		SELECT kind, COUNT(*)
		FROM hazards
		WHERE status = 'active'
		GROUP BY kind
	`

	rows, err := p.pool.Query(ctx, byKindQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind  domain.HazardKind
			count int64
		)
		if err := rows.Scan(&kind, &count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.ByKind[kind] = count
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const bySeverityQuery = `
		SELECT severity, COUNT(*)
		FROM hazards
		WHERE status = 'active'
		GROUP BY severity
	`

	sevRows, err := p.pool.Query(ctx, bySeverityQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer sevRows.Close()

	for sevRows.Next() {
		var (
			severity int
			count    int64
		)
		if err := sevRows.Scan(&severity, &count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.BySeverity[strconv.Itoa(severity)] = count
	}
	if err := sevRows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
