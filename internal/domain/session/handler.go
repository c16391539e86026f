package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Paths struct {
	AdminRoot string
	LoginPath string
}

// RegisterRoutes monta login/logout. GET/POST sobre LoginPath ya pasan por el
// gate: con sesión nunca llegan acá.
func RegisterRoutes(r chi.Router, authn auth.Authenticator, p Paths, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("session")
	if p.AdminRoot == "" {
		p.AdminRoot = "/admin"
	}
	if p.LoginPath == "" {
		p.LoginPath = "/auth/login"
	}

	r.Get(p.LoginPath, loginPageHandler(p))
	r.Post(p.LoginPath, loginHandler(authn, p, log))
	r.Post("/auth/logout", logoutHandler(authn, p, log))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Redirect string `json:"redirect"`
}

type redirectResponse struct {
	Redirect string `json:"redirect"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// loginPageHandler godoc
// @Summary Descriptor de login
// @Description Indica a dónde volver después del login. Con sesión activa el gate redirige a /admin.
// @Tags auth
// @Produce json
// @Param redirect query string false "Path al que volver (solo mismo sitio)"
// @Success 200 {object} redirectResponse
// @Failure 302 {string} string "ya autenticado"
// @Router /auth/login [get]
func loginPageHandler(p Paths) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, redirectResponse{Redirect: SafeRedirect(r.URL.Query().Get("redirect"), p.AdminRoot)})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión admin
// @Description Valida email y password contra el proveedor de auth y deja las cookies de sesión.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales; redirect opcional"
// @Success 200 {object} redirectResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Failure 401 {object} errorResponse "Invalid email or password"
// @Failure 503 {object} errorResponse "auth provider unavailable"
// @Router /auth/login [post]
func loginHandler(authn auth.Authenticator, p Paths, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		res, err := authn.SignIn(r.Context(), auth.Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				log.Info("login rejected", zap.String("email", strings.TrimSpace(req.Email)))
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
				return
			}
			log.Error("login failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "auth provider unavailable"})
			return
		}

		for _, m := range res.Cookies {
			http.SetCookie(w, m.Cookie())
		}
		if res.Session != nil {
			log.Info("login", zap.String("user_id", res.Session.UserID))
		}

		target := req.Redirect
		if target == "" {
			target = r.URL.Query().Get("redirect")
		}
		writeJSON(w, http.StatusOK, redirectResponse{Redirect: SafeRedirect(target, p.AdminRoot)})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión admin
// @Tags auth
// @Produce json
// @Success 200 {object} redirectResponse
// @Router /auth/logout [post]
func logoutHandler(authn auth.Authenticator, p Paths, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		muts, err := authn.SignOut(r.Context(), r.Cookies())
		if err != nil {
			// las cookies se borran igual
			log.Warn("remote sign out failed", zap.Error(err))
		}
		for _, m := range muts {
			http.SetCookie(w, m.Cookie())
		}
		writeJSON(w, http.StatusOK, redirectResponse{Redirect: p.LoginPath})
	}
}

// SafeRedirect acepta solo paths del mismo sitio ("/x"); cualquier otra cosa
// (URL absoluta, "//host", vacío) cae en fallback.
func SafeRedirect(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return u.RequestURI()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
