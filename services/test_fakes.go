package services

import (
	"sync"

	"github.com/hcml/assetconsole/core"
)

// FakeAssetAPI is a test-only fake implementing core.AssetAPI. It records
// calls and exposes error/blocking fields for behavior injection.
type FakeAssetAPI struct {
	mu        sync.Mutex
	created   []core.AssetFormValues
	updated   map[string]core.AssetFormValues
	createErr error
	updateErr error

	// when set, the fake blocks inside the call until released; used to
	// hold a submission in flight.
	started chan struct{}
	release chan struct{}
}

func NewFakeAssetAPI() *FakeAssetAPI {
	return &FakeAssetAPI{updated: make(map[string]core.AssetFormValues)}
}

func (f *FakeAssetAPI) block() {
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
}

func (f *FakeAssetAPI) CreateAsset(values core.AssetFormValues) (*core.Asset, error) {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, values)
	return &core.Asset{ID: "new-asset", AssetName: values.AssetName}, nil
}

func (f *FakeAssetAPI) UpdateAsset(id string, values core.AssetFormValues) (*core.Asset, error) {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated[id] = values
	return &core.Asset{ID: id, AssetName: values.AssetName}, nil
}

func (f *FakeAssetAPI) CreateCalls() []core.AssetFormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.AssetFormValues(nil), f.created...)
}

func (f *FakeAssetAPI) UpdateCall(id string) (core.AssetFormValues, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.updated[id]
	return v, ok
}

// FakeAuditAPI is a test-only fake implementing core.AuditAPI.
type FakeAuditAPI struct {
	mu        sync.Mutex
	records   []*core.AuditRecord
	createErr error
	listErr   error
}

func NewFakeAuditAPI() *FakeAuditAPI {
	return &FakeAuditAPI{}
}

func (f *FakeAuditAPI) CreateAudit(draft core.InspectionDraft) (*core.AuditRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	record := &core.AuditRecord{
		ID:          "audit-1",
		AssetID:     draft.AssetID,
		CheckedByID: draft.CheckedByID,
		Status:      draft.Status,
		Remarks:     draft.Remarks,
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *FakeAuditAPI) ListAudits(assetID string) ([]*core.AuditRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*core.AuditRecord
	for _, r := range f.records {
		if r.AssetID == assetID {
			out = append(out, r)
		}
	}
	return out, nil
}

// FakeAuthAPI is a test-only fake implementing core.AuthAPI.
type FakeAuthAPI struct {
	loginURL  string
	loginErr  error
	logoutErr error

	mu          sync.Mutex
	logoutCalls int
}

func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{loginURL: "https://sso.example.com/start"}
}

func (f *FakeAuthAPI) LoginURL() (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginURL, nil
}

func (f *FakeAuthAPI) Logout() error {
	f.mu.Lock()
	f.logoutCalls++
	f.mu.Unlock()
	return f.logoutErr
}

func (f *FakeAuthAPI) LogoutCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logoutCalls
}

// fakeStateStore and fakeNavigator mirror the core test fakes for use in
// service-level tests.
type fakeStateStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{records: make(map[string][]byte)}
}

func (f *fakeStateStore) Get(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.records[name]
	if !ok {
		return nil, core.ErrRecordNotFound
	}
	return data, nil
}

func (f *fakeStateStore) Set(name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[name] = data
	return nil
}

func (f *fakeStateStore) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, name)
	return nil
}

func (f *fakeStateStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = make(map[string][]byte)
	return nil
}

type fakeNavigator struct {
	canNavigate bool
	navErr      error
	mu          sync.Mutex
	paths       []string
}

func (f *fakeNavigator) CanNavigate() bool { return f.canNavigate }

func (f *fakeNavigator) Navigate(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return f.navErr
}

func (f *fakeNavigator) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}
