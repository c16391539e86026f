package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

var testNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func signAccess(t *testing.T, secret, sub, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email: sub + "@cattery.test",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// provider simula /auth/v1/token y /auth/v1/logout.
type provider struct {
	status   int
	grants   []string
	bodies   []map[string]string
	logouts  int
	response tokenResponse
}

func (p *provider) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "anon-key" {
			http.Error(w, "no apikey", http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/auth/v1/logout":
			p.logouts++
			w.WriteHeader(http.StatusNoContent)
			return
		case "/auth/v1/token":
		default:
			http.NotFound(w, r)
			return
		}

		p.grants = append(p.grants, r.URL.Query().Get("grant_type"))
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		p.bodies = append(p.bodies, body)

		if p.status != 0 {
			http.Error(w, `{"error":"invalid_grant"}`, p.status)
			return
		}
		_ = json.NewEncoder(w).Encode(p.response)
	})
}

func newTestClient(t *testing.T, p *provider) *Client {
	t.Helper()
	srv := httptest.NewServer(p.handler(t))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{URL: srv.URL, AnonKey: "anon-key", JWTSecret: testSecret, CookieSecure: true})
	require.NoError(t, err)
	c.now = func() time.Time { return testNow }
	return c
}

func freshTokens() tokenResponse {
	var tr tokenResponse
	tr.AccessToken = "new-access"
	tr.RefreshToken = "new-refresh"
	tr.ExpiresIn = 3600
	tr.ExpiresAt = testNow.Add(time.Hour).Unix()
	tr.User.ID = "user-1"
	tr.User.Email = "owner@cattery.test"
	return tr
}

func cookies(kv ...string) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, &http.Cookie{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{URL: "https://x.supabase.co"})
	require.ErrorIs(t, err, errs.ErrNotConfigured)
}

func TestLookup_ValidAccessTokenNeedsNoNetwork(t *testing.T) {
	p := &provider{}
	c := newTestClient(t, p)

	access := signAccess(t, testSecret, "user-1", "authenticated", testNow.Add(10*time.Minute))
	res, err := c.Lookup(context.Background(), cookies(AccessCookie, access))
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	require.Equal(t, "user-1", res.Session.UserID)
	require.Empty(t, res.Cookies)
	require.Empty(t, p.grants)
}

func TestLookup_NoCookiesIsNoSession(t *testing.T) {
	c := newTestClient(t, &provider{})
	res, err := c.Lookup(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, res.Session)
	require.Empty(t, res.Cookies)
}

func TestLookup_ExpiredAccessRefreshes(t *testing.T) {
	p := &provider{response: freshTokens()}
	c := newTestClient(t, p)

	expired := signAccess(t, testSecret, "user-1", "authenticated", testNow.Add(-time.Hour))
	res, err := c.Lookup(context.Background(), cookies(AccessCookie, expired, RefreshCookie, "old-refresh"))
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	require.Equal(t, "owner@cattery.test", res.Session.Email)

	require.Equal(t, []string{"refresh_token"}, p.grants)
	require.Equal(t, "old-refresh", p.bodies[0]["refresh_token"])

	require.Len(t, res.Cookies, 2)
	require.Equal(t, auth.CookieMutation{Name: AccessCookie, Value: "new-access", MaxAge: 3600, Secure: true}, res.Cookies[0])
	require.Equal(t, "new-refresh", res.Cookies[1].Value)
}

func TestLookup_RejectedRefreshClearsCookies(t *testing.T) {
	p := &provider{status: http.StatusBadRequest}
	c := newTestClient(t, p)

	res, err := c.Lookup(context.Background(), cookies(RefreshCookie, "revoked"))
	require.NoError(t, err)
	require.Nil(t, res.Session)
	require.Len(t, res.Cookies, 2)
	for _, m := range res.Cookies {
		require.True(t, m.Remove())
	}
}

func TestLookup_ProviderDownIsGateError(t *testing.T) {
	p := &provider{status: http.StatusServiceUnavailable}
	c := newTestClient(t, p)

	_, err := c.Lookup(context.Background(), cookies(RefreshCookie, "r"))
	var ge *errs.AuthGateError
	require.ErrorAs(t, err, &ge)
}

func TestLookup_ForgedTokenWithoutRefresh(t *testing.T) {
	c := newTestClient(t, &provider{})

	forged := signAccess(t, "another-secret-another-secret-another", "user-1", "authenticated", testNow.Add(time.Hour))
	res, err := c.Lookup(context.Background(), cookies(AccessCookie, forged))
	require.NoError(t, err)
	require.Nil(t, res.Session)
	require.Len(t, res.Cookies, 2)

	anon := signAccess(t, testSecret, "user-1", "anon", testNow.Add(time.Hour))
	res, err = c.Lookup(context.Background(), cookies(AccessCookie, anon))
	require.NoError(t, err)
	require.Nil(t, res.Session)
}

func TestSignIn(t *testing.T) {
	p := &provider{response: freshTokens()}
	c := newTestClient(t, p)

	res, err := c.SignIn(context.Background(), auth.Credentials{Email: " owner@cattery.test ", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	require.Equal(t, []string{"password"}, p.grants)
	require.Equal(t, "owner@cattery.test", p.bodies[0]["email"])
	require.Len(t, res.Cookies, 2)

	p.status = http.StatusBadRequest
	_, err = c.SignIn(context.Background(), auth.Credentials{Email: "owner@cattery.test", Password: "wrong"})
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = c.SignIn(context.Background(), auth.Credentials{})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSignOut(t *testing.T) {
	p := &provider{}
	c := newTestClient(t, p)

	muts, err := c.SignOut(context.Background(), cookies(AccessCookie, "a"))
	require.NoError(t, err)
	require.Equal(t, 1, p.logouts)
	require.Len(t, muts, 2)

	muts, err = c.SignOut(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, muts, 2)
	require.Equal(t, 1, p.logouts)
}
