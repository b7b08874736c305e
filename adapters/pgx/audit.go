package pgx

import (
	"context"

	"github.com/hcml/assetconsole/core"
)

func (a *Adapter) CreateAudit(record *core.AuditRecord) error {
	_, err := a.pool.Exec(context.Background(), `
		INSERT INTO asset_audits (id, asset_id, checked_by_id, check_date, location_id, status, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.AssetID, record.CheckedByID, record.CheckDate,
		record.LocationID, record.Status, record.Remarks, record.CreatedAt,
	)
	return err
}

func (a *Adapter) ListAudits(assetID, status string) ([]*core.AuditRecord, error) {
	rows, err := a.pool.Query(context.Background(), `
		SELECT id, asset_id, checked_by_id, check_date, location_id, status, remarks, created_at
		FROM asset_audits
		WHERE ($1 = '' OR asset_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`,
		assetID, status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*core.AuditRecord, 0)
	for rows.Next() {
		var r core.AuditRecord
		err := rows.Scan(
			&r.ID, &r.AssetID, &r.CheckedByID, &r.CheckDate,
			&r.LocationID, &r.Status, &r.Remarks, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
