package mof

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/config"
	"github.com/mn-frappe/ebalance/internal/logger"
	"go.uber.org/zap"
)

// OAuth2 constants of the ITC identity realm. The client id is shared with
// the other regulator integrations.
const (
	oauthClientID  = "vatps"
	oauthGrantType = "password"
)

var authBaseURLs = map[config.Environment]string{
	config.EnvStaging:    "https://st.auth.itc.gov.mn/auth/realms/Staging",
	config.EnvProduction: "https://auth.itc.gov.mn/auth/realms/ITC",
}

// TokenManager caches one OAuth2 session per process for the configured
// environment. Refreshing is mutually exclusive; callers inside the safety
// window trigger exactly one refresh.
type TokenManager struct {
	cfg   config.Config
	log   *zap.Logger
	clock clock.Clock
	http  *http.Client

	mu      sync.Mutex
	session *Session
}

func NewTokenManager(cfg config.Config, log *zap.Logger, clk clock.Clock) *TokenManager {
	return &TokenManager{
		cfg:   cfg,
		log:   log.Named("mof.auth"),
		clock: clk,
		http:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (m *TokenManager) tokenEndpoint() string {
	base := m.cfg.AuthBaseURL
	if base == "" {
		base = authBaseURLs[m.cfg.Environment]
	}
	return strings.TrimRight(base, "/") + "/protocol/openid-connect/token"
}

// Token returns a bearer token, refreshing first when the cached one is
// missing or inside the safety window of its expiry.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && m.clock.Now().Before(m.session.ExpiresAt.Add(-m.cfg.TokenSafetyWindow)) {
		return m.session.AccessToken, nil
	}
	if err := m.refreshLocked(ctx); err != nil {
		return "", err
	}
	return m.session.AccessToken, nil
}

// Invalidate drops the cached session so the next Token call performs a
// fresh exchange. Used after a business-endpoint 401.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
}

func (m *TokenManager) refreshLocked(ctx context.Context) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return &AuthError{Message: "username or password not configured"}
	}

	form := url.Values{
		"grant_type": {oauthGrantType},
		"client_id":  {oauthClientID},
		"username":   {m.cfg.Username},
		"password":   {m.cfg.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenEndpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	m.log.Debug("requesting token", zap.Any("form", logger.MaskFormValues(form)))

	resp, err := m.http.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: "token", Attempts: 1, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{Message: "invalid username or password"}
	default:
		return &AuthError{Message: fmt.Sprintf("auth server returned %d", resp.StatusCode)}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return &AuthError{Message: fmt.Sprintf("malformed token response: %v", err)}
	}
	if token.AccessToken == "" {
		return &AuthError{Message: "token response carries no access token"}
	}
	if token.ExpiresIn <= 0 {
		token.ExpiresIn = 3600
	}

	m.session = &Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    m.clock.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
		Environment:  m.cfg.Environment,
	}
	m.log.Info("oauth session refreshed",
		zap.String("environment", string(m.cfg.Environment)),
		zap.Time("expires_at", m.session.ExpiresAt),
	)
	return nil
}
