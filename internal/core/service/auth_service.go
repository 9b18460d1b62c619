package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
	"github.com/Nowell222/green-path-ai/internal/core/ports"
)

// State is the logical state of the auth service.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

const defaultLoginDelay = 800 * time.Millisecond

// AuthService owns the single session for one browsing context. It is the
// only writer of the session store; guards and handlers read the in-memory
// session through the accessors.
type AuthService struct {
	contextID string
	directory ports.CredentialDirectory
	store     ports.SessionStore
	audit     ports.AuditSink // optional
	delay     time.Duration
	log       zerolog.Logger

	mu       sync.Mutex
	profile  *domain.UserProfile
	inflight int
	loginSeq uint64
	subs     map[uint64]func(domain.Session)
	nextSub  uint64
}

// NewAuthService builds the service and synchronously rehydrates the session
// from the store. A persisted profile is restored verbatim without consulting
// the directory again; a reload does not re-authenticate.
func NewAuthService(
	ctx context.Context,
	contextID string,
	directory ports.CredentialDirectory,
	store ports.SessionStore,
	audit ports.AuditSink,
	delay time.Duration,
	log zerolog.Logger,
) *AuthService {
	if delay < 0 {
		delay = defaultLoginDelay
	}
	s := &AuthService{
		contextID: contextID,
		directory: directory,
		store:     store,
		audit:     audit,
		delay:     delay,
		log:       log,
		subs:      make(map[uint64]func(domain.Session)),
	}
	if profile := store.Load(ctx); profile != nil {
		s.profile = profile
		log.Debug().Str("context_id", contextID).Str("email", profile.Email).Msg("session rehydrated")
	}
	return s
}

// Login authenticates the credentials after a simulated network delay.
//
// Concurrent calls race by design: each call increments a generation counter,
// and a completion whose generation has been overtaken applies nothing and
// returns domain.ErrLoginSuperseded, so a stale result cannot clobber a newer
// one. A failed attempt leaves the session store untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	s.mu.Lock()
	s.inflight++
	s.loginSeq++
	seq := s.loginSeq
	s.mu.Unlock()

	// Simulated network latency. Deliberately not tied to ctx: a caller that
	// navigates away mid-login does not abort the attempt, and the completed
	// state mutation still applies.
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	profile, err := s.directory.Authenticate(email, password)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.mu.Unlock()
		s.record(domain.AuthEventLoginFailed, email, "")
		return nil, err
	}
	if seq != s.loginSeq {
		s.mu.Unlock()
		s.log.Debug().Str("email", profile.Email).Msg("stale login completion discarded")
		return nil, domain.ErrLoginSuperseded
	}
	s.profile = profile
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if err := s.store.Save(ctx, profile); err != nil {
		// Worst case is a session that does not survive a reload.
		s.log.Warn().Err(err).Str("context_id", s.contextID).Msg("failed to persist session")
	}

	s.notify(subs, domain.Session{Profile: profile})
	s.record(domain.AuthEventLoginSucceeded, profile.Email, profile.Role)

	s.log.Info().
		Str("context_id", s.contextID).
		Str("email", profile.Email).
		Str("role", string(profile.Role)).
		Msg("login succeeded")

	return profile, nil
}

// Logout clears the persisted session and transitions to anonymous from any
// prior state. Calling it twice is harmless; subscribers only hear about the
// first transition. The in-memory transition always succeeds: a failure to
// clear the persisted entry is logged but not surfaced, since the caller is
// logged out either way.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	previous := s.profile
	s.profile = nil
	var subs []func(domain.Session)
	if previous != nil {
		subs = s.subscribersLocked()
	}
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Str("context_id", s.contextID).Msg("failed to clear persisted session")
	}

	if previous != nil {
		s.notify(subs, domain.Session{})
		s.record(domain.AuthEventLogout, previous.Email, previous.Role)
		s.log.Info().Str("context_id", s.contextID).Str("email", previous.Email).Msg("logout")
	}
	return nil
}

// Session returns the current session snapshot.
func (s *AuthService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Session{Profile: s.profile}
}

// Authenticated reports whether an identity is established.
func (s *AuthService) Authenticated() bool {
	return s.Session().Authenticated()
}

// Busy reports whether a login call is in flight.
func (s *AuthService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// State reports the logical state: authenticating while a login is in flight,
// otherwise authenticated or anonymous.
func (s *AuthService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.inflight > 0:
		return StateAuthenticating
	case s.profile != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Subscribe registers fn to run after every session change (login success or
// logout). The returned function removes the subscription.
func (s *AuthService) Subscribe(fn func(domain.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *AuthService) subscribersLocked() []func(domain.Session) {
	subs := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (s *AuthService) notify(subs []func(domain.Session), sess domain.Session) {
	for _, fn := range subs {
		fn(sess)
	}
}

// record enqueues an audit event; recording never affects the auth outcome.
func (s *AuthService) record(kind domain.AuthEventKind, email string, role domain.Role) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		ID:        uuid.NewString(),
		ContextID: s.contextID,
		Kind:      kind,
		Email:     email,
		Role:      role,
		Timestamp: time.Now().UTC(),
	})
}
