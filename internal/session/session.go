// Package session holds the credentials used for calls to the recruiting API.
// A Session is passed explicitly to whatever needs credentials; nothing reads
// tokens from global state.
package session

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// Environment variables that seed tokens without a stored login
const (
	EnvAccessToken  = "HIREPASO_ACCESS_TOKEN"
	EnvRefreshToken = "HIREPASO_REFRESH_TOKEN"
)

// DefaultProfile is the profile used when none is given
const DefaultProfile = "default"

var ErrNoTokens = errors.New("no stored session")

// Tokens is a bearer/refresh token pair issued by the auth service
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Empty reports whether there is no access token
func (t Tokens) Empty() bool {
	return strings.TrimSpace(t.AccessToken) == ""
}

// Store persists tokens per profile. Load returns ErrNoTokens when nothing is stored.
type Store interface {
	Load(ctx context.Context, profile string) (Tokens, error)
	Save(ctx context.Context, profile string, tokens Tokens) error
	Clear(ctx context.Context, profile string) error
}

// Session is the live credential state for one profile
type Session struct {
	mu      sync.RWMutex
	profile string
	tokens  Tokens
	store   Store
	now     func() time.Time
}

// New creates a session for profile backed by store. A nil store keeps tokens in memory only.
func New(profile string, store Store) *Session {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Session{
		profile: profile,
		store:   store,
		now:     time.Now,
	}
}

// Restore loads stored tokens, then lets the environment override them
func (s *Session) Restore(ctx context.Context) error {
	var tokens Tokens
	if s.store != nil {
		stored, err := s.store.Load(ctx, s.profile)
		if err != nil && !errors.Is(err, ErrNoTokens) {
			return err
		}
		tokens = stored
	}

	if access := os.Getenv(EnvAccessToken); access != "" {
		tokens.AccessToken = access
		tokens.RefreshToken = os.Getenv(EnvRefreshToken)
	}

	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()
	return nil
}

func (s *Session) Profile() string {
	return s.profile
}

func (s *Session) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.RefreshToken
}

// LoggedIn reports whether an access token is available
func (s *Session) LoggedIn() bool {
	return !s.Tokens().Empty()
}

// Update replaces the tokens and persists them
func (s *Session) Update(ctx context.Context, tokens Tokens) error {
	tokens.UpdatedAt = s.now().UTC()

	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Save(ctx, s.profile, tokens)
}

// Clear forgets the tokens in memory and in the store
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.tokens = Tokens{}
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx, s.profile)
}

// MemoryStore keeps tokens in a map. Used in tests and when no database is available.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]Tokens
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]Tokens)}
}

func (m *MemoryStore) Load(_ context.Context, profile string) (Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[profile]
	if !ok {
		return Tokens{}, ErrNoTokens
	}
	return t, nil
}

func (m *MemoryStore) Save(_ context.Context, profile string, tokens Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[profile] = tokens
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, profile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, profile)
	return nil
}
