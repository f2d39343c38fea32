package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the hazard
// queries can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const hazardColumns = `
	h.id, h.kind, h.severity, h.lat, h.lng, h.status,
	h.reporter_id, h.expires_at, h.created_at,
	COALESCE(r.reports_count, 1)
`

type HazardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHazardRepo(pool *pgxpool.Pool, logger *slog.Logger) *HazardRepo {
	return &HazardRepo{pool: pool, logger: logger}
}

func scanHazard(row pgx.Row) (*domain.Hazard, error) {
	var h domain.Hazard
	err := row.Scan(
		&h.ID,
		&h.Kind,
		&h.Severity,
		&h.Lat,
		&h.Lng,
		&h.Status,
		&h.ReporterID,
		&h.ExpiresAt,
		&h.CreatedAt,
		&h.ReportsCount,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func collectHazards(rows pgx.Rows) ([]domain.Hazard, error) {
	defer rows.Close()

	hazards := make([]domain.Hazard, 0, 16)
	for rows.Next() {
		h, err := scanHazard(rows)
		if err != nil {
			return nil, err
		}
		hazards = append(hazards, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hazards, nil
}

func (p *HazardRepo) Insert(ctx context.Context, hazard *domain.Hazard) error {
	const op = "postgres.Hazard.Insert"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if err := insertHazard(ctx, tx, hazard); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// insertHazard writes the hazard row and its aggregate inside the
// caller's transaction.
func insertHazard(ctx context.Context, q querier, hazard *domain.Hazard) error {
	if hazard.ID == uuid.Nil {
		hazard.ID = uuid.New()
	}
	if hazard.CreatedAt.IsZero() {
		hazard.CreatedAt = time.Now().UTC()
	}
	if hazard.Status == "" {
		hazard.Status = domain.HazardActive
	}
	if hazard.ReportsCount == 0 {
		hazard.ReportsCount = 1
	}

	const insertQuery = `
		INSERT INTO hazards (id, kind, severity, lat, lng, status, reporter_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, insertQuery,
		hazard.ID,
		hazard.Kind,
		hazard.Severity,
		hazard.Lat,
		hazard.Lng,
		hazard.Status,
		hazard.ReporterID,
		hazard.ExpiresAt,
		hazard.CreatedAt,
	)
	if err != nil {
		return err
	}

	const aggregateQuery = `
		INSERT INTO hazard_reports (hazard_id, reports_count)
		VALUES ($1, $2)
	`
	_, err = q.Exec(ctx, aggregateQuery, hazard.ID, hazard.ReportsCount)
	return err
}

func (p *HazardRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "postgres.Hazard.Get"

	query := `
		SELECT ` + hazardColumns + `
		FROM hazards h
		LEFT JOIN hazard_reports r ON r.hazard_id = h.id
		WHERE h.id = $1
	`

	h, err := scanHazard(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return h, nil
}

func (p *HazardRepo) List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error) {
	const op = "postgres.Hazard.List"

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	query := `
		SELECT ` + hazardColumns + `
		FROM hazards h
		LEFT JOIN hazard_reports r ON r.hazard_id = h.id
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if req.Kind != "" {
		args = append(args, req.Kind)
		query += fmt.Sprintf(" AND h.kind = $%d", len(args))
	}
	if req.Severity != 0 {
		args = append(args, req.Severity)
		query += fmt.Sprintf(" AND h.severity = $%d", len(args))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		query += fmt.Sprintf(" AND h.status = $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY h.created_at DESC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	hazards, err := collectHazards(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return hazards, nil
}

func (p *HazardRepo) ListActive(ctx context.Context) ([]domain.Hazard, error) {
	const op = "postgres.Hazard.ListActive"

	query := `
		SELECT ` + hazardColumns + `
		FROM hazards h
		LEFT JOIN hazard_reports r ON r.hazard_id = h.id
		WHERE h.status = 'active'
		ORDER BY h.created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	hazards, err := collectHazards(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return hazards, nil
}

func (p *HazardRepo) ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]domain.Hazard, error) {
	const op = "postgres.Hazard.ListInBox"

	query := `
		SELECT ` + hazardColumns + `
		FROM hazards h
		LEFT JOIN hazard_reports r ON r.hazard_id = h.id
		WHERE h.status = 'active'
		  AND h.lat BETWEEN $1 AND $2
		  AND h.lng BETWEEN $3 AND $4
		ORDER BY h.created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, minLat, maxLat, minLng, maxLng)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	hazards, err := collectHazards(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return hazards, nil
}

func (p *HazardRepo) Update(ctx context.Context, hazard *domain.Hazard) error {
	const op = "postgres.Hazard.Update"

	const query = `
		UPDATE hazards
		SET kind       = $2,
			severity   = $3,
			lat        = $4,
			lng        = $5,
			status     = $6,
			expires_at = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		hazard.ID,
		hazard.Kind,
		hazard.Severity,
		hazard.Lat,
		hazard.Lng,
		hazard.Status,
		hazard.ExpiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", hazard.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *HazardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Hazard.Delete"

	const query = `DELETE FROM hazards WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *HazardRepo) FindActiveNear(ctx context.Context, lat, lng float64, kind domain.HazardKind, toleranceDeg float64) (*domain.Hazard, error) {
	const op = "postgres.Hazard.FindActiveNear"

	h, err := findActiveNear(ctx, p.pool, lat, lng, kind, toleranceDeg)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return h, nil
}

// findActiveNear implements the duplicate box check: same kind, active,
// both coordinates within toleranceDeg. Returns nil when nothing
// matches.
func findActiveNear(ctx context.Context, q querier, lat, lng float64, kind domain.HazardKind, toleranceDeg float64) (*domain.Hazard, error) {
	query := `
		SELECT ` + hazardColumns + `
		FROM hazards h
		LEFT JOIN hazard_reports r ON r.hazard_id = h.id
		WHERE h.status = 'active'
		  AND h.kind = $3
		  AND h.lat BETWEEN $1 - $4 AND $1 + $4
		  AND h.lng BETWEEN $2 - $4 AND $2 + $4
		ORDER BY h.created_at
		LIMIT 1
	`

	h, err := scanHazard(q.QueryRow(ctx, query, lat, lng, kind, toleranceDeg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}

func (p *HazardRepo) IncrementReportCount(ctx context.Context, id uuid.UUID) (int, error) {
	const op = "postgres.Hazard.IncrementReportCount"

	count, err := incrementReportCount(ctx, p.pool, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}

func incrementReportCount(ctx context.Context, q querier, id uuid.UUID) (int, error) {
	// A hazard without an aggregate row implicitly has one report, so
	// the first increment lands on 2.
	const query = `
		INSERT INTO hazard_reports (hazard_id, reports_count)
		VALUES ($1, 2)
		ON CONFLICT (hazard_id)
		DO UPDATE SET reports_count = hazard_reports.reports_count + 1
		RETURNING reports_count
	`

	var count int
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (p *HazardRepo) ResolveOrCreate(ctx context.Context, hazard *domain.Hazard, toleranceDeg float64) (*domain.Hazard, bool, error) {
	const op = "postgres.Hazard.ResolveOrCreate"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	// Serialize the check-then-act per kind so simultaneous reports of
	// the same hazard converge on one row.
	const lockQuery = `SELECT pg_advisory_xact_lock(hashtext('hazard:report:' || $1))`
	if _, err := tx.Exec(ctx, lockQuery, string(hazard.Kind)); err != nil {
		p.logger.Error("advisory lock failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}

	existing, err := findActiveNear(ctx, tx, hazard.Lat, hazard.Lng, hazard.Kind, toleranceDeg)
	if err != nil {
		p.logger.Error("duplicate lookup failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}

	if existing != nil {
		count, err := incrementReportCount(ctx, tx, existing.ID)
		if err != nil {
			p.logger.Error("report increment failed", slog.String("op", op), slog.Any("error", err))
			return nil, false, e.WrapError(ctx, op, err)
		}
		existing.ReportsCount = count

		if err := tx.Commit(ctx); err != nil {
			p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
			return nil, false, e.WrapError(ctx, op, err)
		}
		return existing, true, nil
	}

	if err := insertHazard(ctx, tx, hazard); err != nil {
		p.logger.Error("insert failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, false, e.WrapError(ctx, op, err)
	}
	return hazard, false, nil
}

func (p *HazardRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	const op = "postgres.Hazard.ExpireDue"

	const query = `
		UPDATE hazards
		SET status = 'expired'
		WHERE status = 'active'
		  AND expires_at IS NOT NULL
		  AND expires_at <= $1
	`

	cmd, err := p.pool.Exec(ctx, query, now)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}

func (p *HazardRepo) Kinds(ctx context.Context) ([]domain.HazardKind, error) {
	const op = "postgres.Hazard.Kinds"

	const query = `SELECT DISTINCT kind FROM hazards ORDER BY kind`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	kinds := make([]domain.HazardKind, 0, 8)
	for rows.Next() {
		var k domain.HazardKind
		if err := rows.Scan(&k); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		kinds = append(kinds, k)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return kinds, nil
}
