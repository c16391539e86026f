package inquiries

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cattery-storefront/internal/errs"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el formulario de contacto público.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/contact", submitInquiryHandler(svc))
}

// RegisterAdminRoutes va dentro del prefijo admin (con sesión).
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/api/inquiries", func(ar chi.Router) {
		ar.Get("/", listInquiriesHandler(svc))
		ar.Get("/export", exportInquiriesHandler(svc))
	})
}

type submitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Breed   string `json:"breed"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// submitInquiryHandler godoc
// @Summary Enviar consulta de contacto
// @Description Valida nombre, email y mensaje, guarda la consulta y avisa al operador por email. Si el email falla la consulta igual queda guardada y se responde éxito.
// @Tags contact
// @Accept json
// @Produce json
// @Param payload body submitInquiryRequest true "Consulta; phone y breed son opcionales"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errorResponse "Missing required fields / Invalid email address"
// @Failure 500 {object} errorResponse "Failed to save inquiry / Invalid request"
// @Router /api/contact [post]
func submitInquiryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitInquiryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Invalid request"})
			return
		}

		_, err := svc.Submit(r.Context(), SubmitInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Breed:   req.Breed,
			Message: req.Message,
		})
		if err != nil {
			var ve *errs.ValidationError
			var pe *errs.PersistenceError
			switch {
			case errors.Is(err, ErrInvalidEmail):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid email address", Fields: []string{"email"}})
			case errors.As(err, &ve):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields", Fields: ve.Fields})
			case errors.As(err, &pe):
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save inquiry"})
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Invalid request"})
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// listInquiriesHandler godoc
// @Summary Listar consultas (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Máximo de consultas, por defecto 100"
// @Success 200 {array} Inquiry
// @Failure 500 {string} string "internal error"
// @Router /admin/api/inquiries [get]
func listInquiriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		items, err := svc.List(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// exportInquiriesHandler godoc
// @Summary Exportar consultas a XLSX (admin)
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {string} string "internal error"
// @Router /admin/api/inquiries/export [get]
func exportInquiriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), 0)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// se arma en memoria para poder responder 500 si falla a mitad
		var buf bytes.Buffer
		if err := WriteXLSX(&buf, items); err != nil {
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=\"inquiries_%s.xlsx\"", time.Now().Format("20060102")))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
