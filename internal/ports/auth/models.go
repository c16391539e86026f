package auth

import (
	"net/http"
	"time"
)

// Session es la prueba opaca de que el request viene de un admin autenticado.
// El gate solo pregunta si existe; no inspecciona claims más allá de eso.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// CookieMutation es un cambio de cookie pedido por el lookup (rotación o borrado).
// Quien hace el lookup debe aplicarlo al request reenviado y a la respuesta.
type CookieMutation struct {
	Name    string
	Value   string
	Path    string
	MaxAge  int // <0 = borrar
	Expires time.Time
	Secure  bool
}

// Remove indica si la mutación borra la cookie.
func (m CookieMutation) Remove() bool { return m.MaxAge < 0 }

// Cookie arma la cookie de respuesta para esta mutación.
func (m CookieMutation) Cookie() *http.Cookie {
	path := m.Path
	if path == "" {
		path = "/"
	}
	return &http.Cookie{
		Name:     m.Name,
		Value:    m.Value,
		Path:     path,
		MaxAge:   m.MaxAge,
		Expires:  m.Expires,
		Secure:   m.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LookupResult: Session == nil significa "no hay sesión".
// Cookies lleva las mutaciones que el caller tiene que aplicar.
type LookupResult struct {
	Session *Session
	Cookies []CookieMutation
}

// Credentials es lo que manda el form de login.
type Credentials struct {
	Email    string
	Password string
}
