package core

// Ports define interfaces for external dependencies

// ============================================
// STATE STORE PORT (durable client storage)
// ============================================

// StateStore is durable keyed storage for client state, the equivalent of
// the browser's localStorage: one JSON blob per fixed record name.
type StateStore interface {
	Get(name string) ([]byte, error)
	Set(name string, data []byte) error
	Delete(name string) error
	Clear() error
}

// ============================================
// NAVIGATION PORT
// ============================================

// Navigator abstracts the navigable context. CanNavigate reports whether a
// context exists at all; during pre-render it does not, and guards must not
// attempt navigation there.
type Navigator interface {
	CanNavigate() bool
	Navigate(path string) error
}

// ============================================
// API PORTS (remote console backend)
// ============================================

// AssetAPI covers the asset write operations used by the form pipeline.
type AssetAPI interface {
	CreateAsset(values AssetFormValues) (*Asset, error)
	UpdateAsset(id string, values AssetFormValues) (*Asset, error)
}

// AuditAPI covers the inspection/audit recording boundary.
type AuditAPI interface {
	CreateAudit(draft InspectionDraft) (*AuditRecord, error)
	ListAudits(assetID string) ([]*AuditRecord, error)
}

// AuthAPI covers the login/logout boundary.
type AuthAPI interface {
	// LoginURL returns the redirect target for starting a login,
	// as plain text from the auth boundary.
	LoginURL() (string, error)
	Logout() error
}
