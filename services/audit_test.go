package services

import (
	"errors"
	"testing"

	"github.com/hcml/assetconsole/core"
)

// Requirement: the completion callback fires only after the boundary
// confirms success.
func TestAudits_SubmitInspection(t *testing.T) {
	api := NewFakeAuditAPI()
	audits := NewAudits(api, nil)

	var done *core.AuditRecord
	err := audits.SubmitInspection(core.InspectionDraft{
		AssetID: "asset-1", CheckedByID: "u-7", Status: "OK", Remarks: "all good",
	}, func(r *core.AuditRecord) { done = r })

	if err != nil {
		t.Fatalf("SubmitInspection() error = %v", err)
	}
	if done == nil {
		t.Fatal("completion callback not invoked")
	}
	if done.AssetID != "asset-1" || done.Status != "OK" {
		t.Errorf("unexpected record: %+v", done)
	}
}

// Requirement: a server rejection propagates unmodified with the server's
// message, and the callback never fires.
func TestAudits_SubmitInspectionRejected(t *testing.T) {
	tests := []struct {
		name    string
		inject  error
		wantMsg string
		wantK   core.Kind
	}{
		{
			name:    "server message surfaces exactly",
			inject:  core.NewError(core.KindServerRejection, "invalid condition", nil),
			wantMsg: "invalid condition",
			wantK:   core.KindServerRejection,
		},
		{
			name:    "network failure keeps its kind",
			inject:  core.NewError(core.KindNetwork, "request could not complete", errors.New("timeout")),
			wantMsg: "request could not complete",
			wantK:   core.KindNetwork,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := NewFakeAuditAPI()
			api.createErr = test.inject
			audits := NewAudits(api, nil)

			callbackFired := false
			err := audits.SubmitInspection(core.InspectionDraft{AssetID: "asset-1", Status: "BROKEN"},
				func(*core.AuditRecord) { callbackFired = true })

			if err == nil {
				t.Fatal("SubmitInspection() succeeded, want rejection")
			}
			if err.Error() != test.wantMsg {
				t.Errorf("error message = %q, want %q", err.Error(), test.wantMsg)
			}
			if core.ErrorKind(err) != test.wantK {
				t.Errorf("error kind = %v, want %v", core.ErrorKind(err), test.wantK)
			}
			if callbackFired {
				t.Error("completion callback fired on failure")
			}
		})
	}
}

// Requirement: inspections are always scoped to an existing asset.
func TestAudits_SubmitInspectionRequiresAsset(t *testing.T) {
	audits := NewAudits(NewFakeAuditAPI(), nil)
	err := audits.SubmitInspection(core.InspectionDraft{Status: "OK"}, nil)
	if err != core.ErrAssetRequired {
		t.Errorf("SubmitInspection() error = %v, want ErrAssetRequired", err)
	}
}

func TestAudits_History(t *testing.T) {
	api := NewFakeAuditAPI()
	audits := NewAudits(api, nil)

	for _, status := range []string{"OK", "DAMAGED"} {
		if err := audits.SubmitInspection(core.InspectionDraft{AssetID: "asset-1", Status: status}, nil); err != nil {
			t.Fatalf("SubmitInspection() error = %v", err)
		}
	}
	if err := audits.SubmitInspection(core.InspectionDraft{AssetID: "asset-2", Status: "OK"}, nil); err != nil {
		t.Fatalf("SubmitInspection() error = %v", err)
	}

	records, err := audits.History("asset-1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("History() returned %d records, want 2", len(records))
	}

	if _, err := audits.History(""); err != core.ErrAssetRequired {
		t.Errorf("History(\"\") error = %v, want ErrAssetRequired", err)
	}
}
