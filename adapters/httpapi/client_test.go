package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hcml/assetconsole/core"
)

func TestClient_CreateAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/assets" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var values core.AssetFormValues
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(core.Asset{
			ID: "asset-1", AssetNo: values.AssetNo, AssetName: values.AssetName,
			Version: 1, IsLatest: true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	asset, err := c.CreateAsset(core.AssetFormValues{AssetNo: "A-001", AssetName: "pump"})
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	if asset.ID != "asset-1" || asset.AssetNo != "A-001" {
		t.Errorf("unexpected asset: %+v", asset)
	}
}

func TestClient_UpdateAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/assets/asset-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(core.Asset{ID: "asset-1", AssetName: "pump mk2", Version: 2})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	asset, err := c.UpdateAsset("asset-1", core.AssetFormValues{AssetNo: "A-001", AssetName: "pump mk2"})
	if err != nil {
		t.Fatalf("UpdateAsset() error = %v", err)
	}
	if asset.Version != 2 {
		t.Errorf("Version = %d, want 2", asset.Version)
	}
}

func TestClient_ServerRejection(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantKind core.Kind
	}{
		{
			name:     "rejection message surfaces verbatim",
			status:   http.StatusBadRequest,
			body:     `{"error":"invalid condition"}`,
			wantMsg:  "invalid condition",
			wantKind: core.KindServerRejection,
		},
		{
			name:     "body without error field",
			status:   http.StatusInternalServerError,
			body:     `{"message":"boom"}`,
			wantMsg:  "Unknown error",
			wantKind: core.KindServerRejection,
		},
		{
			name:     "non-JSON body",
			status:   http.StatusBadGateway,
			body:     "<html>bad gateway</html>",
			wantMsg:  "Unknown error",
			wantKind: core.KindServerRejection,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer srv.Close()

			c := New(srv.URL+"/api", nil)
			_, err := c.CreateAudit(core.InspectionDraft{AssetID: "asset-1", Status: "SHINY"})
			if err == nil {
				t.Fatal("CreateAudit() error = nil, want rejection")
			}

			var coreErr *core.Error
			if !errors.As(err, &coreErr) {
				t.Fatalf("error %v is not a *core.Error", err)
			}
			if coreErr.Kind != test.wantKind {
				t.Errorf("Kind = %v, want %v", coreErr.Kind, test.wantKind)
			}
			if coreErr.Message != test.wantMsg {
				t.Errorf("Message = %q, want %q", coreErr.Message, test.wantMsg)
			}
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL+"/api", nil)
	_, err := c.CreateAsset(core.AssetFormValues{AssetNo: "A-001", AssetName: "pump"})
	if err == nil {
		t.Fatal("CreateAsset() error = nil, want network error")
	}
	if kind := core.ErrorKind(err); kind != core.KindNetwork {
		t.Errorf("ErrorKind = %v, want KindNetwork", kind)
	}
}

func TestClient_ListAudits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("assetId"); got != "asset-1" {
			t.Errorf("assetId query = %q, want %q", got, "asset-1")
		}
		json.NewEncoder(w).Encode([]*core.AuditRecord{
			{ID: "audit-1", AssetID: "asset-1", Status: "OK"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	records, err := c.ListAudits("asset-1")
	if err != nil {
		t.Fatalf("ListAudits() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "audit-1" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestClient_Auth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte("sealed-redirect-target"))
		case "/api/auth/logout":
			json.NewEncoder(w).Encode(map[string]string{"message": "logged out"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	url, err := c.LoginURL()
	if err != nil {
		t.Fatalf("LoginURL() error = %v", err)
	}
	if url != "sealed-redirect-target" {
		t.Errorf("LoginURL() = %q", url)
	}
	if err := c.Logout(); err != nil {
		t.Errorf("Logout() error = %v", err)
	}
}
