// Package supabase resuelve sesiones de admin contra el proveedor de auth hospedado.
// El access token se verifica localmente (HS256 con el JWT secret del proyecto);
// solo el refresh, login y logout salen por red.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/platform/httpclient"
	"cattery-storefront/internal/ports/auth"
)

const (
	AccessCookie  = "sb-access-token"
	RefreshCookie = "sb-refresh-token"

	refreshCookieTTL = 30 * 24 * time.Hour
)

type Config struct {
	URL          string
	AnonKey      string
	JWTSecret    string
	CookieSecure bool
	Timeout      time.Duration
}

type Client struct {
	http      *httpclient.Client
	anonKey   string
	jwtSecret []byte
	secure    bool
	now       func() time.Time
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" || strings.TrimSpace(cfg.AnonKey) == "" || strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("supabase: %w", errs.ErrNotConfigured)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.URL), timeout)
	if err != nil {
		return nil, fmt.Errorf("supabase: %w", err)
	}
	return &Client{
		http:      hc,
		anonKey:   strings.TrimSpace(cfg.AnonKey),
		jwtSecret: []byte(cfg.JWTSecret),
		secure:    cfg.CookieSecure,
		now:       time.Now,
	}, nil
}

var _ auth.Authenticator = (*Client)(nil)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// grant llama al endpoint de tokens. Un 4xx es rechazo (ErrUnauthorized);
// red caída o 5xx es falla del proveedor.
func (c *Client) grant(ctx context.Context, grantType string, body any) (tokenResponse, error) {
	var out tokenResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type="+grantType, c.headers(""), body, &out)
	if err != nil {
		if code := httpclient.StatusCode(err); code >= 400 && code < 500 && code != http.StatusTooManyRequests {
			return tokenResponse{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
		}
		return tokenResponse{}, &errs.AuthGateError{Err: err}
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return tokenResponse{}, &errs.AuthGateError{Err: errors.New("token response without tokens")}
	}
	return out, nil
}

func (c *Client) headers(bearer string) map[string]string {
	h := map[string]string{"apikey": c.anonKey}
	if bearer != "" {
		h["Authorization"] = "Bearer " + bearer
	}
	return h
}

func (c *Client) SignIn(ctx context.Context, in auth.Credentials) (auth.LookupResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return auth.LookupResult{}, errs.ErrUnauthorized
	}
	tok, err := c.grant(ctx, "password", map[string]string{"email": email, "password": in.Password})
	if err != nil {
		return auth.LookupResult{}, err
	}
	return c.fromTokens(tok), nil
}

// SignOut siempre devuelve los borrados de cookies; el error es solo informativo
// (el logout remoto es best-effort).
func (c *Client) SignOut(ctx context.Context, cookies []*http.Cookie) ([]auth.CookieMutation, error) {
	removals := c.removeAll()
	access := cookieValue(cookies, AccessCookie)
	if access == "" {
		return removals, nil
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/v1/logout", c.headers(access), nil, nil); err != nil {
		return removals, fmt.Errorf("supabase logout: %w", err)
	}
	return removals, nil
}

func (c *Client) fromTokens(tok tokenResponse) auth.LookupResult {
	now := c.now()
	exp := time.Unix(tok.ExpiresAt, 0)
	if tok.ExpiresAt == 0 {
		exp = now.Add(time.Duration(tok.ExpiresIn) * time.Second)
	}
	accessTTL := int(exp.Sub(now).Seconds())
	if accessTTL <= 0 {
		accessTTL = 1
	}

	return auth.LookupResult{
		Session: &auth.Session{UserID: tok.User.ID, Email: tok.User.Email, ExpiresAt: exp},
		Cookies: []auth.CookieMutation{
			{Name: AccessCookie, Value: tok.AccessToken, MaxAge: accessTTL, Secure: c.secure},
			{Name: RefreshCookie, Value: tok.RefreshToken, MaxAge: int(refreshCookieTTL.Seconds()), Secure: c.secure},
		},
	}
}

func (c *Client) removeAll() []auth.CookieMutation {
	return []auth.CookieMutation{
		{Name: AccessCookie, MaxAge: -1, Secure: c.secure},
		{Name: RefreshCookie, MaxAge: -1, Secure: c.secure},
	}
}

func cookieValue(cookies []*http.Cookie, name string) string {
	for _, ck := range cookies {
		if ck != nil && ck.Name == name {
			return strings.TrimSpace(ck.Value)
		}
	}
	return ""
}
