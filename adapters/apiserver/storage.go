package apiserver

import (
	"errors"

	"github.com/hcml/assetconsole/core"
)

var (
	ErrAssetNotFound = errors.New("asset not found") // 404
)

// AssetStorage defines asset persistence for the boundary server.
type AssetStorage interface {
	CreateAsset(a *core.Asset) error

	GetAsset(id string) (*core.Asset, error)
	ListAssets() ([]*core.Asset, error)

	UpdateAsset(a *core.Asset) error
}

// AuditStorage defines inspection-record persistence for the boundary
// server.
type AuditStorage interface {
	CreateAudit(r *core.AuditRecord) error

	// ListAudits filters by asset id and status; empty strings match all.
	// Results come back newest first.
	ListAudits(assetID, status string) ([]*core.AuditRecord, error)
}

// Storage bundles both ports the way adapters implement them.
type Storage interface {
	AssetStorage
	AuditStorage
}
