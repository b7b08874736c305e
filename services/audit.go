package services

import (
	"log/slog"
	"sync"

	"github.com/hcml/assetconsole/core"
)

// Audits drives the inspection/audit half of the form-submission
// pipeline. Drafts arrive already bound to one asset - the embedded entry
// form suppresses its asset selector - and are submitted independently of
// any asset draft.
type Audits struct {
	api core.AuditAPI
	log *slog.Logger

	mu         sync.Mutex
	submitting bool
}

func NewAudits(api core.AuditAPI, log *slog.Logger) *Audits {
	if log == nil {
		log = slog.Default()
	}
	return &Audits{api: api, log: log}
}

// Submitting reports whether an inspection submission is in flight.
func (a *Audits) Submitting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.submitting
}

// SubmitInspection records one inspection against the draft's asset and
// invokes onDone only after the boundary confirms success; the embedder
// uses that to refresh its audit history and close the entry form.
//
// A rejection or network failure is logged once here and then returned
// unmodified as a kind-tagged error - the embedding form owns showing it
// and stays open for correction and retry.
func (a *Audits) SubmitInspection(draft core.InspectionDraft, onDone func(*core.AuditRecord)) error {
	if draft.AssetID == "" {
		return core.ErrAssetRequired
	}

	a.mu.Lock()
	if a.submitting {
		a.mu.Unlock()
		return core.ErrSubmitInFlight
	}
	a.submitting = true
	a.mu.Unlock()

	record, err := a.api.CreateAudit(draft)

	a.mu.Lock()
	a.submitting = false
	a.mu.Unlock()

	if err != nil {
		a.log.Error("error submitting audit", "assetId", draft.AssetID, "kind", core.ErrorKind(err).String(), "error", err)
		return err
	}

	if onDone != nil {
		onDone(record)
	}
	return nil
}

// History fetches the recorded inspections for one asset, newest first,
// as served by the audit boundary.
func (a *Audits) History(assetID string) ([]*core.AuditRecord, error) {
	if assetID == "" {
		return nil, core.ErrAssetRequired
	}
	return a.api.ListAudits(assetID)
}
