package services

import (
	"log/slog"
	"sync"

	"github.com/hcml/assetconsole/core"
)

// AssetForms drives the create/edit half of the form-submission pipeline.
//
// It owns the active FormDraft and the Idle/Submitting state machine.
// Submit while Submitting is suppressed, and a failed submit leaves the
// draft intact so the user can retry without re-entering data. Requests
// are not cancelable once issued; a caller that abandons the form simply
// discards the draft and must tolerate a late onSuccess.
type AssetForms struct {
	api       core.AssetAPI
	onSuccess func()
	log       *slog.Logger

	mu         sync.Mutex
	draft      core.FormDraft
	visible    bool
	submitting bool
}

func NewAssetForms(api core.AssetAPI, onSuccess func(), log *slog.Logger) *AssetForms {
	if log == nil {
		log = slog.Default()
	}
	return &AssetForms{api: api, onSuccess: onSuccess, log: log}
}

// StartCreate opens a fresh draft in create mode.
func (f *AssetForms) StartCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = core.FormDraft{}
	f.visible = true
}

// StartEdit seeds the draft from an existing asset and switches to edit
// mode for that asset's id.
func (f *AssetForms) StartEdit(asset core.Asset) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = core.FormDraft{
		EditingID: asset.ID,
		Values:    asset.FormValues(),
	}
	f.visible = true
}

// SetValues replaces the draft's editable values. The editing mode is
// untouched; field-level merging is the form component's concern.
func (f *AssetForms) SetValues(values core.AssetFormValues) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Values = values
}

// Cancel discards the draft and closes the form. The pipeline has no
// Cancelled state - an in-flight request simply completes unnoticed.
func (f *AssetForms) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = core.FormDraft{}
	f.visible = false
}

// Draft returns a copy of the active draft.
func (f *AssetForms) Draft() core.FormDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Visible reports whether a form session is open.
func (f *AssetForms) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// Submitting reports whether a submission is in flight.
func (f *AssetForms) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit sends the draft to the asset boundary. An empty EditingID routes
// to create, otherwise to update for that id.
//
// Re-entry while a submission is in flight returns ErrSubmitInFlight and
// changes nothing - repeated clicks must not double-write. On success the
// draft is reset, the form closed, and onSuccess invoked. On failure the
// draft survives untouched and the kind-tagged error is returned.
func (f *AssetForms) Submit() error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return core.ErrSubmitInFlight
	}
	if !f.visible {
		f.mu.Unlock()
		return core.ErrNoDraft
	}
	f.submitting = true
	draft := f.draft
	f.mu.Unlock()

	var err error
	if draft.EditingID == "" {
		_, err = f.api.CreateAsset(draft.Values)
	} else {
		_, err = f.api.UpdateAsset(draft.EditingID, draft.Values)
	}

	f.mu.Lock()
	f.submitting = false
	if err == nil {
		f.draft = core.FormDraft{}
		f.visible = false
	}
	f.mu.Unlock()

	if err != nil {
		f.log.Error("failed to save asset", "editingId", draft.EditingID, "error", err)
		return err
	}

	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}
