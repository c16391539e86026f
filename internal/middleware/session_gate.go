package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"cattery-storefront/internal/ports/auth"

	"go.uber.org/zap"
)

type ctxKey string

const sessionKey ctxKey = "session"

type GateConfig struct {
	AdminPrefix string // "/admin"
	LoginPath   string // "/auth/login"
}

// SessionGate protege el área admin:
//   - path bajo AdminPrefix sin sesión => 302 a LoginPath?redirect=<path>
//   - path bajo LoginPath con sesión => 302 a AdminPrefix
//   - cualquier otro path pasa sin consultar sesión
//
// Las mutaciones de cookies del lookup se aplican al request reenviado y a la
// respuesta, también cuando se redirige. Si el lookup falla se responde 503:
// nunca se sirve una página admin sin sesión confirmada.
func SessionGate(lookup auth.SessionLookup, cfg GateConfig, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("gate")
	admin := strings.TrimRight(cfg.AdminPrefix, "/")
	if admin == "" {
		admin = "/admin"
	}
	login := strings.TrimRight(cfg.LoginPath, "/")
	if login == "" {
		login = "/auth/login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			isAdmin := strings.HasPrefix(path, admin)
			isLogin := strings.HasPrefix(path, login)
			if !isAdmin && !isLogin {
				next.ServeHTTP(w, r)
				return
			}

			res, err := lookup.Lookup(r.Context(), r.Cookies())
			if err != nil {
				log.Error("session lookup failed", zap.String("path", path), zap.Error(err))
				http.Error(w, "session service unavailable", http.StatusServiceUnavailable)
				return
			}

			r = withCookieMutations(r, res.Cookies)
			for _, m := range res.Cookies {
				http.SetCookie(w, m.Cookie())
			}

			switch {
			case isAdmin && res.Session == nil:
				target := login + "?" + url.Values{"redirect": {path}}.Encode()
				http.Redirect(w, r, target, http.StatusFound)
				return
			case isLogin && res.Session != nil:
				http.Redirect(w, r, admin, http.StatusFound)
				return
			}

			if res.Session != nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, *res.Session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSession devuelve la sesión que dejó el gate (solo en rutas gateadas).
func GetSession(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(sessionKey).(auth.Session)
	return s, ok
}

// withCookieMutations devuelve una copia del request con el header Cookie
// reescrito: las cookies mutadas se reemplazan o se quitan.
func withCookieMutations(r *http.Request, muts []auth.CookieMutation) *http.Request {
	if len(muts) == 0 {
		return r
	}

	final := make(map[string]auth.CookieMutation, len(muts))
	order := make([]string, 0, len(muts))
	for _, m := range muts {
		if _, seen := final[m.Name]; !seen {
			order = append(order, m.Name)
		}
		final[m.Name] = m
	}

	out := r.Clone(r.Context())
	out.Header.Del("Cookie")
	for _, c := range r.Cookies() {
		if _, mutated := final[c.Name]; !mutated {
			out.AddCookie(c)
		}
	}
	for _, name := range order {
		if m := final[name]; !m.Remove() {
			out.AddCookie(&http.Cookie{Name: m.Name, Value: m.Value})
		}
	}
	return out
}
