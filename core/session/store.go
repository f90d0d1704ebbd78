package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
)

const (
	loginFailedMsg    = "Login failed"
	registerFailedMsg = "Registration failed"
)

type (
	// Storage is the durable client-side session state: exactly two entries,
	// the raw bearer token and the JSON-serialized principal.
	Storage interface {
		ReadToken() (string, error)
		ReadPrincipal() ([]byte, error)
		WriteToken(token string) error
		WritePrincipal(data []byte) error
		// Clear removes both entries; missing entries are not an error.
		Clear() error
	}

	// API is the subset of the portal backend the Store talks to.
	API interface {
		Login(ctx context.Context, email, password string) (token string, p Principal, err error)
		RegisterStudent(ctx context.Context, data NewStudent) error
		RegisterAdmin(ctx context.Context, data NewAdmin) error
	}

	// Store is the single source of truth for "who is logged in and what can
	// they do". Consumers must wait for Loaded() before making authorization
	// decisions; see guard.Check.
	Store struct {
		storage Storage
		api     API
		log     core.Logger

		mu        sync.RWMutex
		token     string
		principal Principal
		loaded    bool
	}
)

func NewStore(storage Storage, api API, log core.Logger) *Store {
	return &Store{storage: storage, api: api, log: log}
}

// Result is the outcome of a login or registration attempt. Failures carry a
// human-readable message instead of an error so forms can render them inline.
type Result struct {
	OK        bool
	Error     string
	Token     string
	Principal Principal
}

func failure(msg string) Result { return Result{Error: msg} }

// Load rehydrates a prior session from durable storage. It runs once at
// startup; the store reports Loaded() even when no session exists so that
// consumers can tell "not signed in" from "not initialized yet".
func (s *Store) Load() {
	token, err := s.storage.ReadToken()
	if err != nil && err != ErrNoSession {
		s.log.Warn("session: reading stored token", err)
	}
	data, err := s.storage.ReadPrincipal()
	if err != nil && err != ErrNoSession {
		s.log.Warn("session: reading stored principal", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if token == "" || len(data) == 0 {
		return
	}
	var p Principal
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("session: corrupt stored principal", err)
		return
	}
	s.token = token
	s.principal = p.withAliases()
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Principal() Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Derived predicates; computed from the current principal, never cached.

func (s *Store) IsAuthenticated() bool { return s.Token() != "" }
func (s *Store) IsAdmin() bool         { return s.Principal().IsAdmin() }
func (s *Store) IsStudent() bool       { return s.Principal().IsStudent() }
func (s *Store) UserType() string      { return s.Principal().UserType }
func (s *Store) Role() string          { return s.Principal().Role }

func (s *Store) HasRole(role string) bool {
	return s.Principal().Role == role
}

// Login authenticates against the backend and, on success, persists the
// session and updates in-memory state. The returned Result carries the same
// fields so callers can branch immediately instead of re-reading the store.
func (s *Store) Login(ctx context.Context, creds Credentials) Result {
	if err := creds.Validate(); err != nil {
		return failure(fieldErrorMessage(err, loginFailedMsg))
	}

	token, p, err := s.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return failure(apiErrorMessage(err, loginFailedMsg))
	}
	p = p.withAliases()

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error("session: serializing principal", errors.Wrap(err, "marshalling"))
		return failure(loginFailedMsg)
	}
	// a storage failure keeps the session for the life of the process only
	if err := s.storage.WriteToken(token); err != nil {
		s.log.Warn("session: persisting token", err)
	}
	if err := s.storage.WritePrincipal(data); err != nil {
		s.log.Warn("session: persisting principal", err)
	}

	s.mu.Lock()
	s.token = token
	s.principal = p
	s.mu.Unlock()

	return Result{OK: true, Token: token, Principal: p}
}

// RegisterStudent registers a student account. Success does not change the
// session; the student is expected to log in next.
func (s *Store) RegisterStudent(ctx context.Context, data NewStudent) Result {
	if err := data.Validate(); err != nil {
		return failure(fieldErrorMessage(err, registerFailedMsg))
	}
	if err := s.api.RegisterStudent(ctx, data); err != nil {
		return failure(apiErrorMessage(err, registerFailedMsg))
	}
	return Result{OK: true}
}

// RegisterAdmin registers an admin account; same contract as RegisterStudent.
func (s *Store) RegisterAdmin(ctx context.Context, data NewAdmin) Result {
	if err := data.Validate(); err != nil {
		return failure(fieldErrorMessage(err, registerFailedMsg))
	}
	if err := s.api.RegisterAdmin(ctx, data); err != nil {
		return failure(apiErrorMessage(err, registerFailedMsg))
	}
	return Result{OK: true}
}

// Logout clears durable storage and in-memory state unconditionally.
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.log.Warn("session: clearing storage", err)
	}
	s.mu.Lock()
	s.token = ""
	s.principal = Principal{}
	s.mu.Unlock()
}

// apiErrorMessage extracts the backend error message, defaulting to fallback.
func apiErrorMessage(err error, fallback string) string {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// fieldErrorMessage surfaces the first field validation error as the result
// message; these never reach the network.
func fieldErrorMessage(err error, fallback string) string {
	flds := core.TranslateValidationErrors(err)
	if len(flds) == 0 {
		return fallback
	}
	if flds[0].Field == "" {
		return flds[0].Error
	}
	return flds[0].Field + ": " + flds[0].Error
}
