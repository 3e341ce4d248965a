package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/internal/defaults"
)

// Manager keeps one current token: it acquires it from an authorization code,
// refreshes it before expiry, and persists every change to the store.
type Manager struct {
	oauth *OAuth
	store *Store
	skew  time.Duration
	log   zerolog.Logger

	mu    sync.Mutex
	token *Token
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithRefreshSkew sets how long before expiry a token counts as expiring.
func WithRefreshSkew(d time.Duration) ManagerOption {
	return func(m *Manager) { m.skew = d }
}

// WithManagerLogger sets the structured logger; the default discards everything.
func WithManagerLogger(l zerolog.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// NewManager builds a manager and loads any previously stored token.
func NewManager(oauth *OAuth, store *Store, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		oauth: oauth,
		store: store,
		skew:  defaults.TokenRefreshSkew,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if store != nil {
		t, err := store.Load()
		if err != nil {
			return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, err)
		}
		m.token = t
	}
	return m, nil
}

// Token returns the current token, or nil when none is held.
func (m *Manager) Token() *Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// AccessToken returns the current access token string, or "".
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return ""
	}
	return m.token.AccessToken
}

// Acquire exchanges an authorization code and persists the resulting token.
func (m *Manager) Acquire(ctx context.Context, code string) (*Token, error) {
	t, err := m.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := m.install(t); err != nil {
		return nil, err
	}
	m.log.Info().Time("expires_at", t.ExpiresAt()).Msg("token acquired")
	return t, nil
}

// Refresh rotates the current token and persists the replacement.
func (m *Manager) Refresh(ctx context.Context) (*Token, error) {
	m.mu.Lock()
	cur := m.token
	m.mu.Unlock()
	if cur == nil || cur.RefreshToken == "" {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError,
			fmt.Errorf("no refresh token available"))
	}
	t, err := m.oauth.Refresh(ctx, cur.RefreshToken)
	if err != nil {
		return nil, err
	}
	// Some responses omit the rotated refresh token; keep the old one.
	if t.RefreshToken == "" {
		t.RefreshToken = cur.RefreshToken
	}
	if err := m.install(t); err != nil {
		return nil, err
	}
	m.log.Info().Time("expires_at", t.ExpiresAt()).Msg("token refreshed")
	return t, nil
}

// EnsureValid refreshes the token when it is expired or about to expire.
func (m *Manager) EnsureValid(ctx context.Context) error {
	m.mu.Lock()
	cur := m.token
	m.mu.Unlock()
	if cur == nil {
		return cterrors.Wrap(cterrors.StageToken, cterrors.CodeMissingAccessToken,
			fmt.Errorf("no token held"))
	}
	if !cur.Expiring(m.skew) {
		return nil
	}
	_, err := m.Refresh(ctx)
	return err
}

func (m *Manager) install(t *Token) error {
	m.mu.Lock()
	m.token = t
	m.mu.Unlock()
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(t); err != nil {
		return cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, err)
	}
	return nil
}
