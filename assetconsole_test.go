package assetconsole

import (
	"sync"
	"testing"
)

type MockStateStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMockStateStore() *MockStateStore {
	return &MockStateStore{records: make(map[string][]byte)}
}

func (m *MockStateStore) Get(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[name]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return data, nil
}

func (m *MockStateStore) Set(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[name] = data
	return nil
}

func (m *MockStateStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, name)
	return nil
}

func (m *MockStateStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string][]byte)
	return nil
}

type mockAssetAPI struct{ created int }

func (m *mockAssetAPI) CreateAsset(values AssetFormValues) (*Asset, error) {
	m.created++
	return &Asset{ID: "asset-1", AssetName: values.AssetName}, nil
}

func (m *mockAssetAPI) UpdateAsset(id string, values AssetFormValues) (*Asset, error) {
	return &Asset{ID: id, AssetName: values.AssetName}, nil
}

type mockAuditAPI struct{}

func (m *mockAuditAPI) CreateAudit(draft InspectionDraft) (*AuditRecord, error) {
	return &AuditRecord{ID: "audit-1", AssetID: draft.AssetID, Status: draft.Status}, nil
}

func (m *mockAuditAPI) ListAudits(assetID string) ([]*AuditRecord, error) { return nil, nil }

type mockAuthAPI struct{ logouts int }

func (m *mockAuthAPI) LoginURL() (string, error) { return "https://sso.example.com/start", nil }
func (m *mockAuthAPI) Logout() error             { m.logouts++; return nil }

type mockNavigator struct{ paths []string }

func (m *mockNavigator) CanNavigate() bool { return true }
func (m *mockNavigator) Navigate(path string) error {
	m.paths = append(m.paths, path)
	return nil
}

func TestNewShouldValidateRequiredAdapters(t *testing.T) {
	storage := NewMockStateStore()
	assets := &mockAssetAPI{}
	audits := &mockAuditAPI{}

	if _, err := New(Config{AssetAPI: assets, AuditAPI: audits}); err != ErrStateStoreRequired {
		t.Fatalf("expected ErrStateStoreRequired, got %v", err)
	}
	if _, err := New(Config{StateStore: storage, AuditAPI: audits}); err != ErrAssetAPIRequired {
		t.Fatalf("expected ErrAssetAPIRequired, got %v", err)
	}
	if _, err := New(Config{StateStore: storage, AssetAPI: assets}); err != ErrAuditAPIRequired {
		t.Fatalf("expected ErrAuditAPIRequired, got %v", err)
	}
}

func TestNewWiresConsoleEndToEnd(t *testing.T) {
	storage := NewMockStateStore()
	nav := &mockNavigator{}
	auth := &mockAuthAPI{}
	saved := 0

	console, err := New(Config{
		StateStore:   storage,
		AssetAPI:     &mockAssetAPI{},
		AuditAPI:     &mockAuditAPI{},
		AuthAPI:      auth,
		Navigator:    nav,
		OnAssetSaved: func() { saved++ },
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := console.Sessions.Hydrate(); err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}

	// Unauthenticated visit redirects to the login path.
	if state := console.Guard.Check(); state != GuardRedirecting {
		t.Fatalf("expected GuardRedirecting, got %v", state)
	}
	if len(nav.paths) != 1 || nav.paths[0] != "/login" {
		t.Fatalf("expected redirect to /login, got %v", nav.paths)
	}

	console.Sessions.SetUser(UserInput{Email: "ops@hcml.example", Name: "Ops", Role: "admin"})
	if state := console.Guard.Check(); state != GuardAuthorized {
		t.Fatalf("expected GuardAuthorized after login, got %v", state)
	}

	// Form pipeline round-trip.
	console.Forms.StartCreate()
	console.Forms.SetValues(AssetFormValues{AssetNo: "A-001", AssetName: "pump"})
	if err := console.Forms.Submit(); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if saved != 1 {
		t.Fatalf("expected OnAssetSaved once, got %d", saved)
	}

	// Audit pipeline round-trip.
	var recorded *AuditRecord
	err = console.Audits.SubmitInspection(
		InspectionDraft{AssetID: "asset-1", Status: "OK"},
		func(r *AuditRecord) { recorded = r },
	)
	if err != nil {
		t.Fatalf("SubmitInspection failed: %v", err)
	}
	if recorded == nil || recorded.AssetID != "asset-1" {
		t.Fatalf("unexpected audit record: %+v", recorded)
	}

	// Logout clears the session and redirects regardless of selection state.
	if err := console.Auth.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if auth.logouts != 1 {
		t.Fatalf("expected one boundary logout call, got %d", auth.logouts)
	}
	if console.Sessions.Get().IsAuthenticated {
		t.Fatal("expected session cleared after logout")
	}
	if state := console.Guard.Check(); state != GuardRedirecting {
		t.Fatalf("expected GuardRedirecting after logout, got %v", state)
	}
}

func TestNewWithoutAuthAPILeavesAuthNil(t *testing.T) {
	console, err := New(Config{
		StateStore: NewMockStateStore(),
		AssetAPI:   &mockAssetAPI{},
		AuditAPI:   &mockAuditAPI{},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if console.Auth != nil {
		t.Fatal("expected nil Auth without an auth adapter")
	}
}
