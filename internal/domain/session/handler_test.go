package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	signInErr  error
	signOutErr error
}

func (f *fakeAuth) Lookup(context.Context, []*http.Cookie) (auth.LookupResult, error) {
	return auth.LookupResult{}, nil
}

func (f *fakeAuth) SignIn(_ context.Context, in auth.Credentials) (auth.LookupResult, error) {
	if f.signInErr != nil {
		return auth.LookupResult{}, f.signInErr
	}
	if in.Password != "meow" {
		return auth.LookupResult{}, errs.ErrUnauthorized
	}
	return auth.LookupResult{
		Session: &auth.Session{UserID: "u1"},
		Cookies: []auth.CookieMutation{{Name: "sb-access-token", Value: "tok", MaxAge: 3600}},
	}, nil
}

func (f *fakeAuth) SignOut(context.Context, []*http.Cookie) ([]auth.CookieMutation, error) {
	return []auth.CookieMutation{{Name: "sb-access-token", MaxAge: -1}}, f.signOutErr
}

func router(a auth.Authenticator) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, a, Paths{}, nil)
	return r
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestLogin(t *testing.T) {
	h := router(&fakeAuth{})

	rec := post(h, "/auth/login", `{"email":"owner@cattery.test","password":"meow","redirect":"/admin/kittens"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"redirect":"/admin/kittens"}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "tok", cookies[0].Value)

	rec = post(h, "/auth/login?redirect=https://evil.test/", `{"email":"owner@cattery.test","password":"meow"}`)
	require.JSONEq(t, `{"redirect":"/admin"}`, rec.Body.String())

	rec = post(h, "/auth/login", `{"email":"owner@cattery.test","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())

	rec = post(h, "/auth/login", `nope`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_ProviderDown(t *testing.T) {
	h := router(&fakeAuth{signInErr: &errs.AuthGateError{Err: errors.New("timeout")}})
	rec := post(h, "/auth/login", `{"email":"a@b.c","password":"meow"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogout_ClearsCookiesEvenIfRemoteFails(t *testing.T) {
	h := router(&fakeAuth{signOutErr: errors.New("remote down")})
	rec := post(h, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"redirect":"/auth/login"}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestLoginPage(t *testing.T) {
	rec := httptest.NewRecorder()
	router(&fakeAuth{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login?redirect=%2Fadmin%2Fbreeds", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"redirect":"/admin/breeds"}`, rec.Body.String())
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                   "/admin",
		"/admin/kittens?x=1": "/admin/kittens?x=1",
		"//evil.test/admin":  "/admin",
		"https://evil.test":  "/admin",
		"admin":              "/admin",
		`/\evil.test`:        "/admin",
		"/kittens":           "/kittens",
	}
	for in, want := range cases {
		require.Equal(t, want, SafeRedirect(in, "/admin"), in)
	}
}
