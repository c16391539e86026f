package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLookup struct {
	res   auth.LookupResult
	err   error
	calls int
}

func (s *stubLookup) Lookup(context.Context, []*http.Cookie) (auth.LookupResult, error) {
	s.calls++
	return s.res, s.err
}

// echo responde 200 con las cookies que le llegaron y la sesión del contexto.
type echo struct {
	served  bool
	cookies map[string]string
	session *auth.Session
}

func (e *echo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.served = true
	e.cookies = map[string]string{}
	for _, c := range r.Cookies() {
		e.cookies[c.Name] = c.Value
	}
	if s, ok := GetSession(r.Context()); ok {
		e.session = &s
	}
	w.WriteHeader(http.StatusOK)
}

func gate(l auth.SessionLookup, next http.Handler) http.Handler {
	return SessionGate(l, GateConfig{AdminPrefix: "/admin", LoginPath: "/auth/login"}, zap.NewNop())(next)
}

var session = &auth.Session{UserID: "u1", Email: "owner@cattery.test"}

func TestSessionGate_AdminWithoutSessionRedirectsToLogin(t *testing.T) {
	l := &stubLookup{}
	e := &echo{}
	rec := httptest.NewRecorder()
	gate(l, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/kittens", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/auth/login?redirect=%2Fadmin%2Fkittens", rec.Header().Get("Location"))
	require.False(t, e.served)
}

func TestSessionGate_AdminWithSessionForwards(t *testing.T) {
	l := &stubLookup{res: auth.LookupResult{Session: session}}
	e := &echo{}
	rec := httptest.NewRecorder()
	gate(l, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, e.served)
	require.NotNil(t, e.session)
	require.Equal(t, "u1", e.session.UserID)
}

func TestSessionGate_LoginWithSessionRedirectsToAdmin(t *testing.T) {
	l := &stubLookup{res: auth.LookupResult{Session: session}}
	e := &echo{}
	rec := httptest.NewRecorder()
	gate(l, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	require.False(t, e.served)
}

func TestSessionGate_LoginWithoutSessionForwards(t *testing.T) {
	e := &echo{}
	rec := httptest.NewRecorder()
	gate(&stubLookup{}, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	require.True(t, e.served)
	require.Nil(t, e.session)
}

func TestSessionGate_OtherPathsSkipLookup(t *testing.T) {
	l := &stubLookup{err: errors.New("must not be called")}
	for _, p := range []string{"/", "/api/kittens", "/auth/logout", "/health"} {
		e := &echo{}
		rec := httptest.NewRecorder()
		gate(l, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusOK, rec.Code, p)
		require.True(t, e.served, p)
	}
	require.Zero(t, l.calls)
}

func TestSessionGate_LookupFailureFailsClosed(t *testing.T) {
	l := &stubLookup{err: &errs.AuthGateError{Err: errors.New("provider timeout")}}
	e := &echo{}
	rec := httptest.NewRecorder()
	gate(l, e).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/kittens", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.False(t, e.served)
}

func TestSessionGate_NoCachingAcrossRequests(t *testing.T) {
	l := &stubLookup{res: auth.LookupResult{Session: session}}
	h := gate(l, &echo{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	l.res = auth.LookupResult{}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, 2, l.calls)
}

func TestSessionGate_CookieMutationsReachRequestAndResponse(t *testing.T) {
	l := &stubLookup{res: auth.LookupResult{
		Session: session,
		Cookies: []auth.CookieMutation{
			{Name: "sb-access-token", Value: "rotated", MaxAge: 3600},
			{Name: "stale", MaxAge: -1},
		},
	}}
	e := &echo{}
	req := httptest.NewRequest(http.MethodGet, "/admin/breeds", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "old"})
	req.AddCookie(&http.Cookie{Name: "stale", Value: "x"})
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

	rec := httptest.NewRecorder()
	gate(l, e).ServeHTTP(rec, req)

	require.True(t, e.served)
	require.Equal(t, map[string]string{"sb-access-token": "rotated", "theme": "dark"}, e.cookies)

	// el request original no se toca
	c, err := req.Cookie("sb-access-token")
	require.NoError(t, err)
	require.Equal(t, "old", c.Value)

	set := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		set[c.Name] = c
	}
	require.Equal(t, "rotated", set["sb-access-token"].Value)
	require.True(t, set["sb-access-token"].HttpOnly)
	require.Less(t, set["stale"].MaxAge, 0)
}

func TestSessionGate_CookieRemovalAppliedOnRedirect(t *testing.T) {
	l := &stubLookup{res: auth.LookupResult{
		Cookies: []auth.CookieMutation{{Name: "sb-refresh-token", MaxAge: -1}},
	}}
	rec := httptest.NewRecorder()
	gate(l, &echo{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sb-refresh-token", cookies[0].Name)
	require.Less(t, cookies[0].MaxAge, 0)
}
