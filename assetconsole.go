package assetconsole

import (
	"log/slog"

	"github.com/hcml/assetconsole/core"
	"github.com/hcml/assetconsole/services"
)

// interfaces
type (
	StateStore = core.StateStore
	Navigator  = core.Navigator

	AssetAPI = core.AssetAPI
	AuditAPI = core.AuditAPI
	AuthAPI  = core.AuthAPI
)

// structs
type (
	SessionStore       = core.SessionStore
	SessionStoreConfig = core.SessionStoreConfig
	SelectionStore     = core.SelectionStore
	RouteGuard         = core.RouteGuard

	AssetForms = services.AssetForms
	Audits     = services.Audits
	Auth       = services.Auth
)

type (
	Session         = core.Session
	UserInput       = core.UserInput
	Asset           = core.Asset
	AssetFormValues = core.AssetFormValues
	FormDraft       = core.FormDraft
	InspectionDraft = core.InspectionDraft
	AuditRecord     = core.AuditRecord
	SelectionStats  = core.SelectionStats
	GuardState      = core.GuardState
	Error           = core.Error
	Kind            = core.Kind
)

const (
	GuardUnchecked   = core.GuardUnchecked
	GuardAuthorized  = core.GuardAuthorized
	GuardRedirecting = core.GuardRedirecting
)

const (
	KindUnknown         = core.KindUnknown
	KindValidation      = core.KindValidation
	KindNetwork         = core.KindNetwork
	KindServerRejection = core.KindServerRejection
	KindPersistence     = core.KindPersistence
)

// Constructors & helpers (convenience re-exports)
var (
	NewSelectionStore         = core.NewSelectionStore
	DefaultSessionStoreConfig = core.DefaultSessionStoreConfig
	NewError                  = core.NewError
	ErrorKind                 = core.ErrorKind
)

var (
	ErrRecordNotFound = core.ErrRecordNotFound
	ErrNotHydrated    = core.ErrNotHydrated
)

var (
	ErrSubmitInFlight = core.ErrSubmitInFlight
	ErrNoDraft        = core.ErrNoDraft
	ErrAssetRequired  = core.ErrAssetRequired
)

var (
	ErrStateStoreRequired = core.ErrStateStoreRequired
	ErrAssetAPIRequired   = core.ErrAssetAPIRequired
	ErrAuditAPIRequired   = core.ErrAuditAPIRequired
)

// Config wires a Console. StateStore, AssetAPI and AuditAPI are required;
// everything else has workable defaults.
type Config struct {
	StateStore StateStore
	AssetAPI   AssetAPI
	AuditAPI   AuditAPI

	// AuthAPI enables the login/logout flows; without it Console.Auth is nil.
	AuthAPI AuthAPI

	// Navigator connects guards and logout to the host's routing. A nil
	// Navigator means no navigable context (pre-render), which guards
	// treat as "do nothing yet".
	Navigator Navigator

	// Optional config
	LoginPath     string
	SessionConfig *SessionStoreConfig

	// OnAssetSaved runs after every successful form submission, typically
	// to refresh the asset list.
	OnAssetSaved func()

	Logger *slog.Logger
}

// Console bundles the client-side session and entity-state core: one
// instance per running console.
type Console struct {
	Sessions  *SessionStore
	Selection *SelectionStore
	Guard     *RouteGuard
	Forms     *AssetForms
	Audits    *Audits
	Auth      *Auth
}

func New(config Config) (*Console, error) {
	if config.StateStore == nil {
		return nil, ErrStateStoreRequired
	}
	if config.AssetAPI == nil {
		return nil, ErrAssetAPIRequired
	}
	if config.AuditAPI == nil {
		return nil, ErrAuditAPIRequired
	}

	// Set Defaults

	sessionConfig := config.SessionConfig
	if sessionConfig == nil {
		c := DefaultSessionStoreConfig()
		sessionConfig = &c
	}

	loginPath := config.LoginPath
	if loginPath == "" {
		loginPath = core.DefaultLoginPath
	}

	sessions := core.NewSessionStore(*sessionConfig, config.StateStore, config.Logger)

	console := &Console{
		Sessions:  sessions,
		Selection: core.NewSelectionStore(),
		Guard:     core.NewRouteGuard(sessions, config.Navigator, loginPath, config.Logger),
		Forms:     services.NewAssetForms(config.AssetAPI, config.OnAssetSaved, config.Logger),
		Audits:    services.NewAudits(config.AuditAPI, config.Logger),
	}
	if config.AuthAPI != nil {
		console.Auth = services.NewAuth(config.AuthAPI, sessions, config.Navigator, loginPath, config.Logger)
	}
	return console, nil
}
