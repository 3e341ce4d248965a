package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
)

func tokenServer(t *testing.T, handler func(form url.Values) any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		_ = json.NewEncoder(w).Encode(handler(r.PostForm))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthURI(t *testing.T) {
	o := NewOAuth("my-id", "my-secret", "http://localhost:8080/redirect")
	u, err := url.Parse(o.AuthURI(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("client_id") != "my-id" {
		t.Fatalf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("response_type") != "code" {
		t.Fatalf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("scope") != "trading" {
		t.Fatalf("scope = %q", q.Get("scope"))
	}
	if q.Get("redirect_uri") != "http://localhost:8080/redirect" {
		t.Fatalf("redirect_uri = %q", q.Get("redirect_uri"))
	}
	if q.Get("client_secret") != "" {
		t.Fatalf("secret leaked into auth URI")
	}
}

func TestExchangeCode(t *testing.T) {
	srv := tokenServer(t, func(form url.Values) any {
		if form.Get("grant_type") != "authorization_code" || form.Get("code") != "abc" {
			t.Errorf("unexpected form: %v", form)
		}
		return map[string]any{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"expires_in":    3600,
			"token_type":    "Bearer",
		}
	})
	o := NewOAuth("id", "secret", "http://localhost/redirect", WithTokenURI(srv.URL))
	tok, err := o.ExchangeCode(context.Background(), "abc")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if tok.AccessToken != "at-1" || tok.RefreshToken != "rt-1" || tok.ExpiresIn != 3600 {
		t.Fatalf("token = %+v", tok)
	}
	if tok.IssuedAt == 0 {
		t.Fatalf("issued_at not stamped")
	}
}

func TestTokenEndpointError(t *testing.T) {
	srv := tokenServer(t, func(url.Values) any {
		return map[string]any{"errorCode": "INVALID_GRANT", "description": "code expired"}
	})
	o := NewOAuth("id", "secret", "http://localhost/redirect", WithTokenURI(srv.URL))
	_, err := o.ExchangeCode(context.Background(), "stale")
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeTokenError {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestTokenResponseWithoutAccessToken(t *testing.T) {
	srv := tokenServer(t, func(url.Values) any {
		return map[string]any{"token_type": "Bearer"}
	})
	o := NewOAuth("id", "secret", "http://localhost/redirect", WithTokenURI(srv.URL))
	_, err := o.ExchangeCode(context.Background(), "abc")
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeMissingAccessToken {
		t.Fatalf("expected missing access token, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	s := NewStore(path)

	if tok, err := s.Load(); err != nil || tok != nil {
		t.Fatalf("load empty = %v, %v", tok, err)
	}

	in := &Token{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600, TokenType: "Bearer", IssuedAt: 1700000000}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip: %+v != %+v", out, in)
	}
}

func TestStoreMigratesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	legacy := []byte(`{"accessToken":"at-old","refreshToken":"rt-old","expiresIn":2628000}`)
	if err := os.WriteFile(path, legacy, 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStore(path)
	tok, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok.AccessToken != "at-old" || tok.RefreshToken != "rt-old" || tok.ExpiresIn != 2628000 {
		t.Fatalf("migrated token = %+v", tok)
	}
	if tok.TokenType != "Bearer" || tok.IssuedAt == 0 {
		t.Fatalf("migration defaults missing: %+v", tok)
	}

	// The file must now be canonical snake_case.
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("reread parse: %v", err)
	}
	if _, ok := raw["accessToken"]; ok {
		t.Fatalf("legacy keys still present after migration")
	}
	if _, ok := raw["access_token"]; !ok {
		t.Fatalf("canonical keys missing after migration")
	}
}

func TestTokenExpiring(t *testing.T) {
	fresh := &Token{ExpiresIn: 3600, IssuedAt: time.Now().Unix()}
	if fresh.Expiring(5 * time.Minute) {
		t.Fatalf("fresh token reported expiring")
	}
	near := &Token{ExpiresIn: 3600, IssuedAt: time.Now().Add(-56 * time.Minute).Unix()}
	if !near.Expiring(5 * time.Minute) {
		t.Fatalf("near-expiry token not reported expiring")
	}
}

func TestManagerEnsureValidRefreshes(t *testing.T) {
	refreshed := false
	srv := tokenServer(t, func(form url.Values) any {
		if form.Get("grant_type") != "refresh_token" || form.Get("refresh_token") != "rt-old" {
			t.Errorf("unexpected form: %v", form)
		}
		refreshed = true
		return map[string]any{"access_token": "at-new", "expires_in": 3600}
	})
	path := filepath.Join(t.TempDir(), "tokens.json")
	s := NewStore(path)
	old := &Token{AccessToken: "at-old", RefreshToken: "rt-old", ExpiresIn: 60, IssuedAt: time.Now().Unix()}
	if err := s.Save(old); err != nil {
		t.Fatalf("seed: %v", err)
	}

	o := NewOAuth("id", "secret", "http://localhost/redirect", WithTokenURI(srv.URL))
	m, err := NewManager(o, s)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if err := m.EnsureValid(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !refreshed {
		t.Fatalf("refresh not performed for expiring token")
	}
	if m.AccessToken() != "at-new" {
		t.Fatalf("access token = %q", m.AccessToken())
	}
	// The response omitted refresh_token; the old one must survive.
	if m.Token().RefreshToken != "rt-old" {
		t.Fatalf("refresh token = %q", m.Token().RefreshToken)
	}

	// And the rotation must be on disk.
	stored, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.AccessToken != "at-new" {
		t.Fatalf("stored access token = %q", stored.AccessToken)
	}
}

func TestManagerEnsureValidSkipsFreshToken(t *testing.T) {
	srv := tokenServer(t, func(url.Values) any {
		t.Errorf("unexpected token request")
		return nil
	})
	o := NewOAuth("id", "secret", "http://localhost/redirect", WithTokenURI(srv.URL))
	m, err := NewManager(o, nil)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	m.mu.Lock()
	m.token = &Token{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600, IssuedAt: time.Now().Unix()}
	m.mu.Unlock()
	if err := m.EnsureValid(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
}

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	data := []byte(`{"clientId":"app-1","Secret":"s3cret","Host":"Live"}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	c, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ClientID != "app-1" || c.ClientSecret != "s3cret" || c.HostType != "live" {
		t.Fatalf("credentials = %+v", c)
	}
}

func TestLoadCredentialsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(`{"Host":"demo"}`), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := LoadCredentials(path)
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeMissingCredentials {
		t.Fatalf("expected missing credentials, got %v", err)
	}
}
