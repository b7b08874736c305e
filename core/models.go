package core

import "time"

// Session is the authenticated-identity state for the current client.
//
// A session is either the full unauthenticated default tuple or a full
// authenticated tuple - there are no partial states. LastVerified is
// volatile and never written to durable storage.
type Session struct {
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Location        string    `json:"location"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	LastVerified    time.Time `json:"-"`
}

// UserInput carries the identity fields accepted by SetUser.
// IsAuthenticated is derived, never supplied by callers.
type UserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

// Asset is an entity managed by the console.
//
// The selection logic only cares about ID; the rest of the fields travel
// through drafts and the API boundary as opaque domain data.
type Asset struct {
	ID            string   `json:"id"`
	AssetNo       string   `json:"assetNo"`
	LineNo        string   `json:"lineNo"`
	AssetName     string   `json:"assetName"`
	Condition     string   `json:"condition"`
	CategoryCode  string   `json:"categoryCode"`
	ProjectCode   string   `json:"projectCode,omitempty"`
	LocationDesc  string   `json:"locationDesc,omitempty"`
	AcqValue      float64  `json:"acqValue"`
	AcqValueIDR   float64  `json:"acqValueIdr"`
	BookValue     float64  `json:"bookValue"`
	AccumDepre    float64  `json:"accumDepre"`
	AdjustedDepre float64  `json:"adjustedDepre"`
	YTDDepre      float64  `json:"ytdDepre"`
	PISDate       string   `json:"pisDate"`
	TransDate     string   `json:"transDate"`
	Images        []string `json:"images,omitempty"`
	Version       int      `json:"version,omitempty"`
	IsLatest      bool     `json:"isLatest,omitempty"`
}

// AssetFormValues is the editable subset of an Asset carried by a draft.
type AssetFormValues struct {
	AssetNo       string   `json:"assetNo"`
	LineNo        string   `json:"lineNo"`
	AssetName     string   `json:"assetName"`
	Condition     string   `json:"condition"`
	CategoryCode  string   `json:"categoryCode"`
	ProjectCode   string   `json:"projectCode,omitempty"`
	LocationDesc  string   `json:"locationDesc,omitempty"`
	AcqValue      float64  `json:"acqValue"`
	AcqValueIDR   float64  `json:"acqValueIdr"`
	BookValue     float64  `json:"bookValue"`
	AccumDepre    float64  `json:"accumDepre"`
	AdjustedDepre float64  `json:"adjustedDepre"`
	YTDDepre      float64  `json:"ytdDepre"`
	PISDate       string   `json:"pisDate"`
	TransDate     string   `json:"transDate"`
	Images        []string `json:"images,omitempty"`
}

// FormDraft is the in-memory state of an asset being created or edited.
// An empty EditingID means "create"; otherwise the draft edits that asset.
type FormDraft struct {
	EditingID string          `json:"editingId,omitempty"`
	Values    AssetFormValues `json:"values"`
}

// InspectionDraft is an audit/inspection entry scoped to one existing asset.
type InspectionDraft struct {
	AssetID     string `json:"assetId"`
	CheckedByID string `json:"checkedById"`
	CheckDate   string `json:"checkDate,omitempty"`
	LocationID  string `json:"locationId,omitempty"`
	Status      string `json:"status"`
	Remarks     string `json:"remarks,omitempty"`
}

// AuditRecord is a stored inspection as returned by the audit boundary.
type AuditRecord struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"assetId"`
	CheckedByID string    `json:"checkedById"`
	CheckDate   string    `json:"checkDate,omitempty"`
	LocationID  string    `json:"locationId,omitempty"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FormValues converts an Asset into draft values for editing,
// mirroring how the edit flow seeds its form.
func (a *Asset) FormValues() AssetFormValues {
	return AssetFormValues{
		AssetNo:       a.AssetNo,
		LineNo:        a.LineNo,
		AssetName:     a.AssetName,
		Condition:     a.Condition,
		CategoryCode:  a.CategoryCode,
		ProjectCode:   a.ProjectCode,
		LocationDesc:  a.LocationDesc,
		AcqValue:      a.AcqValue,
		AcqValueIDR:   a.AcqValueIDR,
		BookValue:     a.BookValue,
		AccumDepre:    a.AccumDepre,
		AdjustedDepre: a.AdjustedDepre,
		YTDDepre:      a.YTDDepre,
		PISDate:       a.PISDate,
		TransDate:     a.TransDate,
		Images:        a.Images,
	}
}
