package supabase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Lookup: access token válido => sesión. Si no sirve y hay refresh token se
// intenta rotar. Un refresh rechazado es "sin sesión" y borra las cookies;
// un proveedor caído es error (el gate cierra).
func (c *Client) Lookup(ctx context.Context, cookies []*http.Cookie) (auth.LookupResult, error) {
	access := cookieValue(cookies, AccessCookie)
	refresh := cookieValue(cookies, RefreshCookie)

	if access != "" {
		if s, err := c.verify(access); err == nil {
			return auth.LookupResult{Session: s}, nil
		}
	}

	if refresh == "" {
		if access == "" {
			return auth.LookupResult{}, nil
		}
		return auth.LookupResult{Cookies: c.removeAll()}, nil
	}

	tok, err := c.grant(ctx, "refresh_token", map[string]string{"refresh_token": refresh})
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return auth.LookupResult{Cookies: c.removeAll()}, nil
		}
		return auth.LookupResult{}, err
	}
	return c.fromTokens(tok), nil
}

func (c *Client) verify(token string) (*auth.Session, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return c.jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.Role != "authenticated" {
		return nil, errors.New("token is not an authenticated user session")
	}

	s := &auth.Session{UserID: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
