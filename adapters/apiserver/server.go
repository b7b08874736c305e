// Package apiserver implements the console's API surface as a small
// fiber app: auth login/logout, asset writes, and audit recording. It is
// the backend the client core integrates against in development and
// tests; production deployments point the client at the real service.
package apiserver

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v3"

	"github.com/hcml/assetconsole/pkg/crypto"
)

const (
	// DefaultBasePath is where the console API is mounted.
	DefaultBasePath = "/api"

	sessionCookie = "hcmlSession"
)

var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
	ErrSealKeyRequired = errors.New("seal key is required")        // 500
)

// Config wires the boundary server.
type Config struct {
	Storage Storage

	// SealKey encrypts the login redirect target (32 bytes).
	SealKey []byte

	// LoginTarget is the upstream SSO entry the login endpoint points
	// clients at.
	LoginTarget string

	// Optional config
	BasePath string
	Logger   *slog.Logger
}

type Server struct {
	storage Storage
	sealer  *crypto.Sealer
	target  string
	log     *slog.Logger

	// issued session token hashes; the raw token lives only in the cookie
	mu       sync.Mutex
	sessions map[string]struct{}
}

// New validates the config and registers the console routes on app.
func New(app *fiber.App, config Config) (*Server, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}
	if len(config.SealKey) == 0 {
		return nil, ErrSealKeyRequired
	}
	sealer, err := crypto.NewSealer(config.SealKey)
	if err != nil {
		return nil, err
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		storage:  config.Storage,
		sealer:   sealer,
		target:   config.LoginTarget,
		log:      log,
		sessions: make(map[string]struct{}),
	}
	s.registerRoutes(app, basePath)
	return s, nil
}

func (s *Server) registerRoutes(app *fiber.App, basePath string) {
	api := app.Group(basePath)

	api.Get("/auth/login", s.login)
	api.Get("/auth/callback", s.callback)
	api.Get("/auth/logout", s.logout)

	api.Get("/assets", s.listAssets)
	api.Get("/assets/:id", s.getAsset)
	api.Post("/assets", s.createAsset)
	api.Put("/assets/:id", s.updateAsset)

	api.Post("/asset-audit", s.createAudit)
	api.Get("/asset-audit", s.listAudits)
}
