// Package local es el autenticador de desarrollo: un único admin configurado
// (email + hash bcrypt) y una cookie de sesión JWT firmada por el propio servicio.
package local

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookie = "cattery-session"
	issuer        = "cattery-storefront"
	DefaultTTL    = 12 * time.Hour
)

type Config struct {
	AdminEmail        string
	AdminPasswordHash string
	SigningKey        string
	TTL               time.Duration
	CookieSecure      bool
}

type Authenticator struct {
	email  string
	hash   []byte
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func New(cfg Config) (*Authenticator, error) {
	if strings.TrimSpace(cfg.AdminEmail) == "" || strings.TrimSpace(cfg.AdminPasswordHash) == "" {
		return nil, fmt.Errorf("local auth admin: %w", errs.ErrNotConfigured)
	}
	if len(cfg.SigningKey) < 32 {
		return nil, errors.New("local auth: signing key must be at least 32 bytes")
	}
	if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
		return nil, fmt.Errorf("local auth: admin password hash: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Authenticator{
		email:  strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		hash:   []byte(cfg.AdminPasswordHash),
		key:    []byte(cfg.SigningKey),
		ttl:    ttl,
		secure: cfg.CookieSecure,
		now:    time.Now,
	}, nil
}

var _ auth.Authenticator = (*Authenticator)(nil)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (a *Authenticator) SignIn(_ context.Context, in auth.Credentials) (auth.LookupResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	// se compara el hash igual para no filtrar por tiempo si el email existe
	hashErr := bcrypt.CompareHashAndPassword(a.hash, []byte(in.Password))
	if email != a.email || hashErr != nil {
		return auth.LookupResult{}, errs.ErrUnauthorized
	}
	return a.issue(email)
}

// Lookup: token inválido o vencido => sin sesión y se borra la cookie.
// Pasada la mitad del TTL se re-emite (sesión deslizante).
func (a *Authenticator) Lookup(_ context.Context, cookies []*http.Cookie) (auth.LookupResult, error) {
	raw := ""
	for _, c := range cookies {
		if c != nil && c.Name == SessionCookie {
			raw = strings.TrimSpace(c.Value)
			break
		}
	}
	if raw == "" {
		return auth.LookupResult{}, nil
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return a.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !strings.EqualFold(claims.Email, a.email) {
		return auth.LookupResult{Cookies: []auth.CookieMutation{a.removal()}}, nil
	}

	exp := claims.ExpiresAt.Time
	if exp.Sub(a.now()) < a.ttl/2 {
		return a.issue(claims.Email)
	}
	return auth.LookupResult{
		Session: &auth.Session{UserID: claims.Subject, Email: claims.Email, ExpiresAt: exp},
	}, nil
}

func (a *Authenticator) SignOut(context.Context, []*http.Cookie) ([]auth.CookieMutation, error) {
	return []auth.CookieMutation{a.removal()}, nil
}

func (a *Authenticator) issue(email string) (auth.LookupResult, error) {
	now := a.now()
	exp := now.Add(a.ttl)
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
	if err != nil {
		return auth.LookupResult{}, &errs.AuthGateError{Err: err}
	}
	return auth.LookupResult{
		Session: &auth.Session{UserID: "admin", Email: email, ExpiresAt: exp},
		Cookies: []auth.CookieMutation{{
			Name:   SessionCookie,
			Value:  signed,
			MaxAge: int(a.ttl.Seconds()),
			Secure: a.secure,
		}},
	}, nil
}

func (a *Authenticator) removal() auth.CookieMutation {
	return auth.CookieMutation{Name: SessionCookie, MaxAge: -1, Secure: a.secure}
}
