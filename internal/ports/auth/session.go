package auth

import (
	"context"
	"net/http"
)

// SessionLookup resuelve la sesión a partir de las cookies del request.
// Un error significa que el lookup en sí falló (no "sin sesión").
type SessionLookup interface {
	Lookup(ctx context.Context, cookies []*http.Cookie) (LookupResult, error)
}

// Authenticator abre y cierra sesiones (login/logout del admin).
type Authenticator interface {
	SessionLookup

	SignIn(ctx context.Context, in Credentials) (LookupResult, error)
	SignOut(ctx context.Context, cookies []*http.Cookie) ([]CookieMutation, error)
}
