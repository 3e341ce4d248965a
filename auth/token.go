package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/paxelcool/ctrader-open-api-async/internal/defaults"
	"github.com/paxelcool/ctrader-open-api-async/internal/securefile"
)

// Token is an issued OAuth2 token pair with its issue time.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	IssuedAt     int64  `json:"issued_at"`
}

// ExpiresAt returns the absolute expiry time.
func (t *Token) ExpiresAt() time.Time {
	return time.Unix(t.IssuedAt+t.ExpiresIn, 0)
}

// Expiring reports whether the token expires within the skew window.
func (t *Token) Expiring(skew time.Duration) bool {
	return !time.Now().Before(t.ExpiresAt().Add(-skew))
}

// ExpiringSoon reports whether the token expires within the default window.
func (t *Token) ExpiringSoon() bool {
	return t.Expiring(defaults.TokenRefreshSkew)
}

// legacyToken is the camelCase shape older installs wrote to disk.
type legacyToken struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
	IssuedAt     int64  `json:"issued_at"`
}

// Store persists one token as JSON on disk.
//
// The canonical on-disk shape is snake_case; Load transparently migrates a
// legacy camelCase file and rewrites it in the canonical shape.
type Store struct {
	path string
}

// NewStore returns a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored token. It returns (nil, nil) when no file exists.
func (s *Store) Load() (*Token, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, err
	}
	if _, legacy := probe["accessToken"]; legacy {
		var lt legacyToken
		if err := json.Unmarshal(b, &lt); err != nil {
			return nil, err
		}
		t := &Token{
			AccessToken:  lt.AccessToken,
			RefreshToken: lt.RefreshToken,
			ExpiresIn:    lt.ExpiresIn,
			TokenType:    tokenTypeOrBearer(lt.TokenType),
			IssuedAt:     lt.IssuedAt,
		}
		if t.IssuedAt == 0 {
			t.IssuedAt = time.Now().Unix()
		}
		// Rewrite in the canonical shape so the migration happens once.
		if err := s.Save(t); err != nil {
			return nil, err
		}
		return t, nil
	}

	var t Token
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	if t.TokenType == "" {
		t.TokenType = "Bearer"
	}
	return &t, nil
}

// Save writes the token atomically with owner-only permissions.
func (s *Store) Save(t *Token) error {
	if err := securefile.MkdirAllOwnerOnly(filepath.Dir(s.path)); err != nil {
		return err
	}
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return securefile.WriteFileAtomic(s.path, append(b, '\n'), 0o600)
}
