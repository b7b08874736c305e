package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hcml/assetconsole/adapters/apiserver"
	"github.com/hcml/assetconsole/core"
)

const assetColumns = `id, asset_no, line_no, asset_name, condition, category_code,
	project_code, location_desc, acq_value, acq_value_idr, book_value,
	accum_depre, adjusted_depre, ytd_depre, pis_date, trans_date, images,
	version, is_latest`

func (a *Adapter) CreateAsset(asset *core.Asset) error {
	_, err := a.pool.Exec(context.Background(), `
		INSERT INTO assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		asset.ID, asset.AssetNo, asset.LineNo, asset.AssetName, asset.Condition,
		asset.CategoryCode, asset.ProjectCode, asset.LocationDesc,
		asset.AcqValue, asset.AcqValueIDR, asset.BookValue,
		asset.AccumDepre, asset.AdjustedDepre, asset.YTDDepre,
		asset.PISDate, asset.TransDate, asset.Images,
		asset.Version, asset.IsLatest,
	)
	return err
}

func (a *Adapter) GetAsset(id string) (*core.Asset, error) {
	row := a.pool.QueryRow(context.Background(),
		`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)

	asset, err := scanAsset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apiserver.ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (a *Adapter) ListAssets() ([]*core.Asset, error) {
	rows, err := a.pool.Query(context.Background(),
		`SELECT `+assetColumns+` FROM assets ORDER BY asset_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*core.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, rows.Err()
}

func (a *Adapter) UpdateAsset(asset *core.Asset) error {
	tag, err := a.pool.Exec(context.Background(), `
		UPDATE assets SET
			asset_no = $2, line_no = $3, asset_name = $4, condition = $5,
			category_code = $6, project_code = $7, location_desc = $8,
			acq_value = $9, acq_value_idr = $10, book_value = $11,
			accum_depre = $12, adjusted_depre = $13, ytd_depre = $14,
			pis_date = $15, trans_date = $16, images = $17,
			version = $18, is_latest = $19
		WHERE id = $1`,
		asset.ID, asset.AssetNo, asset.LineNo, asset.AssetName, asset.Condition,
		asset.CategoryCode, asset.ProjectCode, asset.LocationDesc,
		asset.AcqValue, asset.AcqValueIDR, asset.BookValue,
		asset.AccumDepre, asset.AdjustedDepre, asset.YTDDepre,
		asset.PISDate, asset.TransDate, asset.Images,
		asset.Version, asset.IsLatest,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apiserver.ErrAssetNotFound
	}
	return nil
}

func scanAsset(row pgx.Row) (*core.Asset, error) {
	var asset core.Asset
	err := row.Scan(
		&asset.ID, &asset.AssetNo, &asset.LineNo, &asset.AssetName, &asset.Condition,
		&asset.CategoryCode, &asset.ProjectCode, &asset.LocationDesc,
		&asset.AcqValue, &asset.AcqValueIDR, &asset.BookValue,
		&asset.AccumDepre, &asset.AdjustedDepre, &asset.YTDDepre,
		&asset.PISDate, &asset.TransDate, &asset.Images,
		&asset.Version, &asset.IsLatest,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
