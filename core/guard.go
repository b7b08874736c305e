package core

import "log/slog"

// GuardState is the outcome of one guard evaluation.
type GuardState int

const (
	// GuardUnchecked means no decision was possible - the only way to end
	// here is an unauthenticated session with no navigable context
	// (pre-render), where triggering navigation would be meaningless.
	GuardUnchecked GuardState = iota
	GuardAuthorized
	GuardRedirecting
)

func (s GuardState) String() string {
	switch s {
	case GuardAuthorized:
		return "authorized"
	case GuardRedirecting:
		return "redirecting"
	default:
		return "unchecked"
	}
}

// DefaultLoginPath is where unauthenticated visitors are sent.
const DefaultLoginPath = "/login"

// RouteGuard gates entry to protected pages against the in-memory session.
//
// Check is re-entrant: every protected navigation re-runs the
// decision from scratch, so a session invalidated mid-run is caught on the
// next navigation. The check is synchronous; embedders that want the
// persisted session honored must run SessionStore.Hydrate first.
type RouteGuard struct {
	sessions  *SessionStore
	nav       Navigator
	loginPath string
	log       *slog.Logger
}

func NewRouteGuard(sessions *SessionStore, nav Navigator, loginPath string, log *slog.Logger) *RouteGuard {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	if log == nil {
		log = slog.Default()
	}
	return &RouteGuard{
		sessions:  sessions,
		nav:       nav,
		loginPath: loginPath,
		log:       log,
	}
}

// Check evaluates the guard for one protected navigation attempt.
//
// Authenticated sessions are authorized and never redirected. An
// unauthenticated session with a navigable context triggers navigation to
// the login path and reports GuardRedirecting - the protected render must
// not proceed even if that navigation call fails. Without a navigable
// context the guard is a no-op and reports GuardUnchecked.
func (g *RouteGuard) Check() GuardState {
	if g.sessions.Get().IsAuthenticated {
		return GuardAuthorized
	}

	if g.nav == nil || !g.nav.CanNavigate() {
		return GuardUnchecked
	}

	if err := g.nav.Navigate(g.loginPath); err != nil {
		g.log.Warn("login redirect failed", "path", g.loginPath, "error", err)
	}
	return GuardRedirecting
}
