package apiserver

import (
	"sort"
	"sync"

	"github.com/hcml/assetconsole/core"
)

// MemStore is the in-memory Storage used by tests and the dev backend.
type MemStore struct {
	mu     sync.RWMutex
	assets map[string]*core.Asset
	audits []*core.AuditRecord
}

var _ Storage = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{assets: make(map[string]*core.Asset)}
}

// cloneAsset copies the asset including the Images backing array, so the
// stored record never aliases a slice the caller keeps mutating.
func cloneAsset(a *core.Asset) *core.Asset {
	clone := *a
	if a.Images != nil {
		clone.Images = append([]string(nil), a.Images...)
	}
	return &clone
}

func (m *MemStore) CreateAsset(a *core.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID] = cloneAsset(a)
	return nil
}

func (m *MemStore) GetAsset(id string) (*core.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, ErrAssetNotFound
	}
	return cloneAsset(a), nil
}

func (m *MemStore) ListAssets() ([]*core.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*core.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, cloneAsset(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetNo < out[j].AssetNo })
	return out, nil
}

func (m *MemStore) UpdateAsset(a *core.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[a.ID]; !ok {
		return ErrAssetNotFound
	}
	m.assets[a.ID] = cloneAsset(a)
	return nil
}

func (m *MemStore) CreateAudit(r *core.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *r
	m.audits = append(m.audits, &clone)
	return nil
}

func (m *MemStore) ListAudits(assetID, status string) ([]*core.AuditRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*core.AuditRecord
	for _, r := range m.audits {
		if assetID != "" && r.AssetID != assetID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
