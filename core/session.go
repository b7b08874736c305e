package core

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultStoreName is the fixed record name for the persisted session.
	DefaultStoreName = "user-auth-storage"

	// DefaultLegacyStoreName is an ad-hoc record older clients wrote;
	// it is removed on ClearUser for compat cleanup.
	DefaultLegacyStoreName = "hcml-session"
)

// SessionStoreConfig configures the persisted session store.
type SessionStoreConfig struct {
	StoreName       string
	LegacyStoreName string
}

func DefaultSessionStoreConfig() SessionStoreConfig {
	return SessionStoreConfig{
		StoreName:       DefaultStoreName,
		LegacyStoreName: DefaultLegacyStoreName,
	}
}

// persistedSession is the whitelisted subset written to durable storage.
// Anything not listed here never reaches the state store.
type persistedSession struct {
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Location        string `json:"location"`
}

// SessionStore holds the authentication identity for the client and keeps
// it durable across restarts through a StateStore.
//
// Reads are always safe: the store starts with the unauthenticated default
// tuple, so Get works before Hydrate has run. Mutation is wholesale - a
// session is replaced or reset, never partially merged. Storage failures
// are absorbed and logged; the in-memory session stays authoritative.
type SessionStore struct {
	config  SessionStoreConfig
	storage StateStore
	log     *slog.Logger

	mu       sync.RWMutex
	session  Session
	hydrated bool

	subMu  sync.Mutex
	subs   map[int]func(Session)
	nextID int
}

func NewSessionStore(config SessionStoreConfig, storage StateStore, log *slog.Logger) *SessionStore {
	if config.StoreName == "" {
		config.StoreName = DefaultStoreName
	}
	if config.LegacyStoreName == "" {
		config.LegacyStoreName = DefaultLegacyStoreName
	}
	if log == nil {
		log = slog.Default()
	}
	return &SessionStore{
		config:  config,
		storage: storage,
		log:     log,
		subs:    make(map[int]func(Session)),
	}
}

// Get returns the current in-memory session. Synchronous and safe before
// hydration completes.
func (s *SessionStore) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Hydrated reports whether Hydrate has completed at least once.
func (s *SessionStore) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Hydrate loads the persisted session record into memory. It is the
// explicit step embedders run before the first guard decision. A missing
// record leaves the defaults in place and is not an error; a corrupt
// record is logged and also leaves the defaults in place.
func (s *SessionStore) Hydrate() error {
	data, err := s.storage.Get(s.config.StoreName)
	if err != nil {
		s.mu.Lock()
		s.hydrated = true
		s.mu.Unlock()
		if err == ErrRecordNotFound {
			return nil
		}
		s.log.Warn("session hydrate failed, keeping defaults", "store", s.config.StoreName, "error", err)
		return NewError(KindPersistence, "failed to read persisted session", err)
	}

	var record persistedSession
	if err := json.Unmarshal(data, &record); err != nil {
		s.mu.Lock()
		s.hydrated = true
		s.mu.Unlock()
		s.log.Warn("persisted session unreadable, keeping defaults", "store", s.config.StoreName, "error", err)
		return NewError(KindPersistence, "persisted session unreadable", err)
	}

	s.mu.Lock()
	s.session = Session{
		Email:           record.Email,
		Name:            record.Name,
		Role:            record.Role,
		Location:        record.Location,
		IsAuthenticated: record.IsAuthenticated,
	}
	s.hydrated = true
	session := s.session
	s.mu.Unlock()

	s.notify(session)
	return nil
}

// SetUser atomically replaces the whole session with the given identity
// and marks it authenticated. The whitelisted subset is persisted; a
// persistence failure is logged and absorbed, never surfaced to callers.
func (s *SessionStore) SetUser(u UserInput) {
	s.mu.Lock()
	s.session = Session{
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Location:        u.Location,
		IsAuthenticated: true,
		LastVerified:    time.Now(),
	}
	session := s.session
	s.mu.Unlock()

	s.persist(session)
	s.notify(session)
}

// ClearUser atomically resets the session to the unauthenticated default
// tuple and removes the persisted record plus the legacy compat record.
// Idempotent: clearing an already-cleared store observes the same result.
func (s *SessionStore) ClearUser() {
	s.mu.Lock()
	s.session = Session{}
	session := s.session
	s.mu.Unlock()

	if err := s.storage.Delete(s.config.StoreName); err != nil && err != ErrRecordNotFound {
		s.log.Warn("failed to remove persisted session", "store", s.config.StoreName, "error", err)
	}
	if err := s.storage.Delete(s.config.LegacyStoreName); err != nil && err != ErrRecordNotFound {
		s.log.Warn("failed to remove legacy session record", "store", s.config.LegacyStoreName, "error", err)
	}

	s.notify(session)
}

// Subscribe registers fn to run after every session change. The returned
// function removes the subscription.
func (s *SessionStore) Subscribe(fn func(Session)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SessionStore) persist(session Session) {
	record := persistedSession{
		Email:           session.Email,
		IsAuthenticated: session.IsAuthenticated,
		Name:            session.Name,
		Role:            session.Role,
		Location:        session.Location,
	}
	data, err := json.Marshal(record)
	if err != nil {
		s.log.Warn("failed to encode session record", "error", err)
		return
	}
	if err := s.storage.Set(s.config.StoreName, data); err != nil {
		s.log.Warn("failed to persist session, in-memory state remains valid", "store", s.config.StoreName, "error", err)
	}
}

func (s *SessionStore) notify(session Session) {
	s.subMu.Lock()
	fns := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}
