package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied on startup with IF NOT EXISTS guards, so a fresh
// database bootstraps itself and an existing one is left alone.
const Schema = `
CREATE TABLE IF NOT EXISTS hazards (
	id          UUID PRIMARY KEY,
	kind        TEXT NOT NULL,
	severity    INT  NOT NULL CHECK (severity BETWEEN 1 AND 5),
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	status      TEXT NOT NULL DEFAULT 'active',
	reporter_id UUID,
	expires_at  TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS hazards_status_idx ON hazards (status);
CREATE INDEX IF NOT EXISTS hazards_box_idx ON hazards (lat, lng);

CREATE TABLE IF NOT EXISTS hazard_reports (
	hazard_id     UUID PRIMARY KEY REFERENCES hazards (id) ON DELETE CASCADE,
	reports_count INT NOT NULL DEFAULT 1 CHECK (reports_count >= 1)
);

CREATE TABLE IF NOT EXISTS route_requests (
	id           UUID PRIMARY KEY,
	requester_id UUID,
	start_lat    DOUBLE PRECISION NOT NULL,
	start_lng    DOUBLE PRECISION NOT NULL,
	end_lat      DOUBLE PRECISION NOT NULL,
	end_lng      DOUBLE PRECISION NOT NULL,
	mode         TEXT NOT NULL DEFAULT 'car',
	avoid_kinds  TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS routes (
	id         UUID PRIMARY KEY,
	request_id UUID NOT NULL UNIQUE REFERENCES route_requests (id) ON DELETE CASCADE,
	paths      TEXT NOT NULL,
	score      INT  NOT NULL DEFAULT 100 CHECK (score BETWEEN 0 AND 100)
);

CREATE TABLE IF NOT EXISTS route_hazard_links (
	id           UUID PRIMARY KEY,
	event_id     UUID NOT NULL REFERENCES hazards (id) ON DELETE CASCADE,
	route_id     UUID NOT NULL REFERENCES routes (id) ON DELETE CASCADE,
	impact_score INT NOT NULL CHECK (impact_score >= 0)
);

CREATE INDEX IF NOT EXISTS route_hazard_links_route_idx ON route_hazard_links (route_id);
`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
