package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"fgmedic-cli/internal/auth"
	"fgmedic-cli/internal/model"
)

// Authenticator is the slice of the backend the store needs. Satisfied by
// *api.Client.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *model.Identity, error)
	Register(ctx context.Context, name, email, phone, password string) error
}

// Store holds the authenticated identity and bearer credential. It is the
// only writer of session state; every other component reads through it.
type Store struct {
	mu  sync.RWMutex
	api Authenticator
	log zerolog.Logger

	file     *file
	identity *model.Identity
	token    string
}

func New(stateDir string, client Authenticator, log zerolog.Logger) *Store {
	return &Store{
		api:  client,
		log:  log,
		file: newFile(stateDir),
	}
}

// Restore loads the durable session, once, at startup. A stored credential
// whose embedded expiry has passed is discarded without a network call or a
// user-visible error: the user simply starts logged out.
func (s *Store) Restore() {
	p, err := s.file.read()
	if err != nil || p == nil {
		if err != nil {
			s.log.Debug().Err(err).Msg("session file unreadable, discarding")
			s.file.remove()
		}
		return
	}
	if !auth.Valid(p.Token, time.Now()) || p.Identity == nil {
		s.log.Debug().Msg("stored session expired, discarding")
		s.file.remove()
		return
	}
	s.mu.Lock()
	s.identity = p.Identity
	s.token = p.Token
	s.mu.Unlock()
}

// Login authenticates and replaces the session. Any failure leaves the
// prior session untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	token, id, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.identity = id
	s.token = token
	s.mu.Unlock()

	if err := s.file.write(&persisted{Token: token, Identity: id}); err != nil {
		// session is still live in memory; only restart-survival is lost
		s.log.Warn().Err(err).Msg("could not persist session")
	}
	return id, nil
}

// Register creates the account and immediately signs in with the same
// credentials. A registration whose follow-up login fails is an overall
// failure.
func (s *Store) Register(ctx context.Context, name, email, phone, password string) error {
	if err := s.api.Register(ctx, name, email, phone, password); err != nil {
		return err
	}
	if _, err := s.Login(ctx, email, password); err != nil {
		return fmt.Errorf("account created but sign-in failed: %w", err)
	}
	return nil
}

// Logout clears memory and durable state unconditionally. Safe to call when
// already logged out.
func (s *Store) Logout() {
	s.mu.Lock()
	s.identity = nil
	s.token = ""
	s.mu.Unlock()
	s.file.remove()
}

// SetCalendarRef updates the cached identity after the backend accepted a
// calendar change, so the session reflects it without re-authenticating.
func (s *Store) SetCalendarRef(calendarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	s.identity.CalendarID = &calendarID
	s.persistLocked()
}

// SetName mirrors a profile rename into the cached identity.
func (s *Store) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	s.identity.Name = name
	s.persistLocked()
}

func (s *Store) persistLocked() {
	id := *s.identity
	if err := s.file.write(&persisted{Token: s.token, Identity: &id}); err != nil {
		s.log.Warn().Err(err).Msg("could not persist session")
	}
}

// Identity returns a copy of the current profile, or nil when logged out.
func (s *Store) Identity() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Token returns the bearer credential, "" when logged out. Used as the API
// client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.token != ""
}
