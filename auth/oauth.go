// Package auth implements the OAuth2 side of the Open API: the authorization
// URL, code exchange, token refresh, and persistent token storage.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/endpoints"
	"github.com/paxelcool/ctrader-open-api-async/internal/defaults"
)

// OAuth exchanges authorization codes and refresh tokens for access tokens.
type OAuth struct {
	clientID     string
	clientSecret string
	redirectURI  string

	authURI  string
	tokenURI string

	http *http.Client
	log  zerolog.Logger
}

// OAuthOption customizes an OAuth client.
type OAuthOption func(*OAuth)

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(o *OAuth) { o.http = c }
}

// WithTokenURI overrides the token endpoint, for tests.
func WithTokenURI(uri string) OAuthOption {
	return func(o *OAuth) { o.tokenURI = uri }
}

// WithAuthURI overrides the authorization UI base.
func WithAuthURI(uri string) OAuthOption {
	return func(o *OAuth) { o.authURI = uri }
}

// WithOAuthLogger sets the structured logger; the default discards everything.
func WithOAuthLogger(l zerolog.Logger) OAuthOption {
	return func(o *OAuth) { o.log = l }
}

// NewOAuth builds an OAuth client for an application's credential pair.
func NewOAuth(clientID, clientSecret, redirectURI string, opts ...OAuthOption) *OAuth {
	o := &OAuth{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authURI:      endpoints.AuthURI,
		tokenURI:     endpoints.TokenURI,
		http:         &http.Client{Timeout: 30 * time.Second},
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AuthURI returns the browser URL a user visits to grant access. An empty
// scope requests "trading".
func (o *OAuth) AuthURI(scope string) string {
	if scope == "" {
		scope = defaults.OAuthScope
	}
	q := url.Values{}
	q.Set("client_id", o.clientID)
	q.Set("redirect_uri", o.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", scope)
	return o.authURI + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for a token.
func (o *OAuth) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", o.redirectURI)
	form.Set("client_id", o.clientID)
	form.Set("client_secret", o.clientSecret)
	return o.tokenRequest(ctx, form)
}

// Refresh trades a refresh token for a new token.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", o.clientID)
	form.Set("client_secret", o.clientSecret)
	return o.tokenRequest(ctx, form)
}

// tokenResponse is the token endpoint's JSON shape. Errors arrive as
// errorCode/description rather than the RFC 6749 "error" member.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`

	ErrorCode   *string `json:"errorCode"`
	Description string  `json:"description"`
}

func (o *OAuth) tokenRequest(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.tokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, err)
	}
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError,
			fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}
	if tr.ErrorCode != nil {
		desc := tr.Description
		if desc == "" {
			desc = *tr.ErrorCode
		}
		o.log.Debug().Str("error_code", *tr.ErrorCode).Msg("token request rejected")
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeTokenError, fmt.Errorf("%s", desc))
	}
	if tr.AccessToken == "" {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeMissingAccessToken,
			fmt.Errorf("token response without access_token"))
	}
	return &Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresIn:    tr.ExpiresIn,
		TokenType:    tokenTypeOrBearer(tr.TokenType),
		IssuedAt:     time.Now().Unix(),
	}, nil
}

func tokenTypeOrBearer(t string) string {
	if t == "" {
		return "Bearer"
	}
	return t
}
