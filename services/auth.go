package services

import (
	"log/slog"

	"github.com/hcml/assetconsole/core"
)

// Auth wires the login/logout boundary to the client-side session state.
type Auth struct {
	api       core.AuthAPI
	sessions  *core.SessionStore
	nav       core.Navigator
	loginPath string
	log       *slog.Logger
}

func NewAuth(api core.AuthAPI, sessions *core.SessionStore, nav core.Navigator, loginPath string, log *slog.Logger) *Auth {
	if loginPath == "" {
		loginPath = core.DefaultLoginPath
	}
	if log == nil {
		log = slog.Default()
	}
	return &Auth{api: api, sessions: sessions, nav: nav, loginPath: loginPath, log: log}
}

// LoginURL asks the auth boundary for the redirect target that starts a
// login. On failure the raw login path is returned as a fallback along
// with the error, matching how the login page degrades.
func (a *Auth) LoginURL() (string, error) {
	url, err := a.api.LoginURL()
	if err != nil {
		a.log.Warn("error fetching login URL", "error", err)
		return a.loginPath, err
	}
	return url, nil
}

// Logout terminates the server-side session and always clears client
// state and navigates to the login path, even when the boundary call
// fails - a user is never left half logged out.
func (a *Auth) Logout() error {
	err := a.api.Logout()
	if err != nil {
		a.log.Warn("logout request failed, clearing client state anyway", "error", err)
	}

	a.sessions.ClearUser()

	if a.nav != nil && a.nav.CanNavigate() {
		if navErr := a.nav.Navigate(a.loginPath); navErr != nil {
			a.log.Warn("post-logout redirect failed", "path", a.loginPath, "error", navErr)
		}
	}
	return err
}
