// Package pgx is the PostgreSQL Storage adapter for the console API
// server, backed by a pgxpool.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcml/assetconsole/adapters/apiserver"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ apiserver.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id             TEXT PRIMARY KEY,
	asset_no       TEXT NOT NULL,
	line_no        TEXT NOT NULL DEFAULT '',
	asset_name     TEXT NOT NULL,
	condition      TEXT NOT NULL DEFAULT '',
	category_code  TEXT NOT NULL DEFAULT '',
	project_code   TEXT NOT NULL DEFAULT '',
	location_desc  TEXT NOT NULL DEFAULT '',
	acq_value      DOUBLE PRECISION NOT NULL DEFAULT 0,
	acq_value_idr  DOUBLE PRECISION NOT NULL DEFAULT 0,
	book_value     DOUBLE PRECISION NOT NULL DEFAULT 0,
	accum_depre    DOUBLE PRECISION NOT NULL DEFAULT 0,
	adjusted_depre DOUBLE PRECISION NOT NULL DEFAULT 0,
	ytd_depre      DOUBLE PRECISION NOT NULL DEFAULT 0,
	pis_date       TEXT NOT NULL DEFAULT '',
	trans_date     TEXT NOT NULL DEFAULT '',
	images         TEXT[] NOT NULL DEFAULT '{}',
	version        INTEGER NOT NULL DEFAULT 1,
	is_latest      BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS asset_audits (
	id            TEXT PRIMARY KEY,
	asset_id      TEXT NOT NULL,
	checked_by_id TEXT NOT NULL DEFAULT '',
	check_date    TEXT NOT NULL DEFAULT '',
	location_id   TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	remarks       TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_asset_audits_asset_id ON asset_audits (asset_id);
`

// Migrate creates the adapter's tables if they do not exist.
func (a *Adapter) Migrate(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, schema)
	return err
}
