package uploads

import (
	"encoding/json"
	"errors"
	"net/http"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/media"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes expone la autorización firmada para subir imágenes desde el browser.
func RegisterRoutes(r chi.Router, up media.Uploader, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.Get("/api/imagekit-auth", authParamsHandler(up, log.Named("uploads")))
}

type errorResponse struct {
	Error string `json:"error"`
}

// authParamsHandler godoc
// @Summary Parámetros de subida a ImageKit
// @Description Devuelve token, expire (unix, +30 min) y signature HMAC-SHA1 junto con la public key, para subir imágenes directo al CDN.
// @Tags uploads
// @Produce json
// @Success 200 {object} media.UploadAuth
// @Failure 500 {object} errorResponse "ImageKit not configured"
// @Router /api/imagekit-auth [get]
func authParamsHandler(up media.Uploader, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if up == nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ImageKit not configured"})
			return
		}
		auth, err := up.AuthParams(r.Context())
		if err != nil {
			if !errors.Is(err, errs.ErrNotConfigured) {
				log.Error("imagekit auth params", zap.Error(err))
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ImageKit not configured"})
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, auth)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
