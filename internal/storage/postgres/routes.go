package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRouteRepo(pool *pgxpool.Pool, logger *slog.Logger) *RouteRepo {
	return &RouteRepo{pool: pool, logger: logger}
}

// SaveRoutePlan persists the request, its scored route and the hazard
// links in one transaction. Either everything lands or nothing does.
func (p *RouteRepo) SaveRoutePlan(ctx context.Context, plan *domain.RoutePlan, route *domain.ScoredRoute) error {
	const op = "postgres.Route.SaveRoutePlan"

	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	route.RequestID = plan.ID

	paths, err := json.Marshal(route.Paths)
	if err != nil {
		p.logger.Error("paths marshal failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const requestQuery = `
		INSERT INTO route_requests (id, requester_id, start_lat, start_lng, end_lat, end_lng, mode, avoid_kinds, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, requestQuery,
		plan.ID,
		plan.RequesterID,
		plan.StartLat,
		plan.StartLng,
		plan.EndLat,
		plan.EndLng,
		plan.Mode,
		strings.Join(plan.AvoidKinds, ","),
		plan.CreatedAt,
	)
	if err != nil {
		p.logger.Error("request insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	const routeQuery = `
		INSERT INTO routes (id, request_id, paths, score)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, routeQuery, route.ID, route.RequestID, string(paths), route.Score)
	if err != nil {
		p.logger.Error("route insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if len(route.Impacts) > 0 {
		const linkQuery = `
			INSERT INTO route_hazard_links (id, event_id, route_id, impact_score)
			VALUES ($1, $2, $3, $4)
		`
		batch := &pgx.Batch{}
		for i := range route.Impacts {
			link := &route.Impacts[i]
			if link.ID == uuid.Nil {
				link.ID = uuid.New()
			}
			link.RouteID = route.ID
			batch.Queue(linkQuery, link.ID, link.HazardID, link.RouteID, link.ImpactScore)
		}

		br := tx.SendBatch(ctx, batch)
		for range route.Impacts {
			if _, err := br.Exec(); err != nil {
				br.Close()
				p.logger.Error("link insert failed", slog.String("op", op), slog.Any("error", err))
				return e.WrapError(ctx, op, err)
			}
		}
		if err := br.Close(); err != nil {
			p.logger.Error("batch close failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *RouteRepo) GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error) {
	const op = "postgres.Route.GetRoute"

	const routeQuery = `
		SELECT id, request_id, paths, score
		FROM routes
		WHERE id = $1
	`

	var (
		route domain.ScoredRoute
		paths string
	)
	err := p.pool.QueryRow(ctx, routeQuery, id).Scan(&route.ID, &route.RequestID, &paths, &route.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if paths != "" {
		if err := json.Unmarshal([]byte(paths), &route.Paths); err != nil {
			p.logger.Error("paths unmarshal failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
			return nil, e.WrapError(ctx, op, err)
		}
	}

	const linkQuery = `
		SELECT id, event_id, route_id, impact_score
		FROM route_hazard_links
		WHERE route_id = $1
		ORDER BY impact_score DESC
	`

	rows, err := p.pool.Query(ctx, linkQuery, id)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var link domain.ImpactLink
		if err := rows.Scan(&link.ID, &link.HazardID, &link.RouteID, &link.ImpactScore); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		route.Impacts = append(route.Impacts, link)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &route, nil
}
