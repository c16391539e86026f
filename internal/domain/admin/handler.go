package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"cattery-storefront/internal/domain/catalog"
	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/middleware"
	"cattery-storefront/internal/ports/media"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// tope del form multipart en memoria; lo que sobra va a disco temporal.
const maxFormMemory = 10 << 20

// RegisterRoutes monta el back-office relativo al prefijo admin. El gate ya
// garantizó sesión antes de llegar acá.
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("admin.http")

	r.Get("/", dashboardHandler(svc))

	r.Route("/api/kittens", func(kr chi.Router) {
		kr.Get("/", listKittensHandler(svc))
		kr.Post("/", createKittenHandler(svc, log))
		kr.Get("/{id}", getKittenHandler(svc))
		kr.Put("/{id}", updateKittenHandler(svc, log))
		kr.Delete("/{id}", deleteKittenHandler(svc, log))
	})

	r.Route("/api/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc, log))
		br.Get("/{id}", getBreedHandler(svc))
		br.Put("/{id}", updateBreedHandler(svc, log))
		br.Delete("/{id}", deleteBreedHandler(svc, log))
	})

	r.Route("/api/testimonials", func(tr chi.Router) {
		tr.Get("/", listTestimonialsHandler(svc))
		tr.Post("/", createTestimonialHandler(svc, log))
		tr.Get("/{id}", getTestimonialHandler(svc))
		tr.Put("/{id}", updateTestimonialHandler(svc, log))
		tr.Delete("/{id}", deleteTestimonialHandler(svc, log))
	})
}

// listKittensHandler godoc
// @Summary Listar gatitos (admin)
// @Description Todos los gatitos, disponibles o no, más nuevos primero.
// @Tags admin
// @Produce json
// @Success 200 {object} listResponse[catalog.Kitten]
// @Router /admin/api/kittens [get]
func listKittensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, svc.catalog.ListKittens(r.Context(), catalog.ListOptions{}))
	}
}

// getKittenHandler godoc
// @Summary Detalle de gatito (admin)
// @Tags admin
// @Produce json
// @Param id path string true "ID del gatito"
// @Success 200 {object} catalog.Kitten
// @Failure 404 {object} map[string]string
// @Router /admin/api/kittens/{id} [get]
func getKittenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, err := svc.catalog.GetKitten(r.Context(), chi.URLParam(r, "id"))
		writeResult(w, http.StatusOK, k, err)
	}
}

// deleteKittenHandler godoc
// @Summary Baja de gatito
// @Description Borra la fila. La imagen queda en el CDN.
// @Tags admin
// @Param id path string true "ID del gatito"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/api/kittens/{id} [delete]
func deleteKittenHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return deleteHandler(svc.DeleteKitten, "kitten", log)
}

// listBreedsHandler godoc
// @Summary Listar razas (admin)
// @Description Cada raza con la cantidad de gatitos y de disponibles.
// @Tags admin
// @Produce json
// @Success 200 {object} listResponse[catalog.BreedSummary]
// @Router /admin/api/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, svc.catalog.BreedSummaries(r.Context()))
	}
}

// createBreedHandler godoc
// @Summary Alta de raza
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body BreedInput true "Raza; description opcional"
// @Success 201 {object} catalog.Breed
// @Failure 400 {object} map[string]any
// @Router /admin/api/breeds [post]
func createBreedHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in BreedInput
		if !decodeJSON(w, r, &in) {
			return
		}
		b, err := svc.CreateBreed(r.Context(), in)
		audit(log, r, "breed created", err)
		writeResult(w, http.StatusCreated, b, err)
	}
}

// getBreedHandler godoc
// @Summary Detalle de raza (admin)
// @Tags admin
// @Produce json
// @Param id path string true "ID de la raza"
// @Success 200 {object} catalog.Breed
// @Failure 404 {object} map[string]string
// @Router /admin/api/breeds/{id} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.catalog.GetBreed(r.Context(), chi.URLParam(r, "id"))
		writeResult(w, http.StatusOK, b, err)
	}
}

// updateBreedHandler godoc
// @Summary Edición de raza
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID de la raza"
// @Param payload body BreedInput true "Raza completa"
// @Success 200 {object} catalog.Breed
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/api/breeds/{id} [put]
func updateBreedHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in BreedInput
		if !decodeJSON(w, r, &in) {
			return
		}
		b, err := svc.UpdateBreed(r.Context(), chi.URLParam(r, "id"), in)
		audit(log, r, "breed updated", err)
		writeResult(w, http.StatusOK, b, err)
	}
}

// deleteBreedHandler godoc
// @Summary Baja de raza
// @Tags admin
// @Param id path string true "ID de la raza"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/api/breeds/{id} [delete]
func deleteBreedHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return deleteHandler(svc.DeleteBreed, "breed", log)
}

// listTestimonialsHandler godoc
// @Summary Listar testimonios (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} listResponse[catalog.Testimonial]
// @Router /admin/api/testimonials [get]
func listTestimonialsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeList(w, svc.catalog.ListTestimonials(r.Context()))
	}
}

// createTestimonialHandler godoc
// @Summary Alta de testimonio
// @Description rating entre 1 y 5; avatar y kittenName vacíos se guardan como NULL.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body TestimonialInput true "Testimonio"
// @Success 201 {object} catalog.Testimonial
// @Failure 400 {object} map[string]any
// @Router /admin/api/testimonials [post]
func createTestimonialHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in TestimonialInput
		if !decodeJSON(w, r, &in) {
			return
		}
		t, err := svc.CreateTestimonial(r.Context(), in)
		audit(log, r, "testimonial created", err)
		writeResult(w, http.StatusCreated, t, err)
	}
}

// getTestimonialHandler godoc
// @Summary Detalle de testimonio (admin)
// @Tags admin
// @Produce json
// @Param id path string true "ID del testimonio"
// @Success 200 {object} catalog.Testimonial
// @Failure 404 {object} map[string]string
// @Router /admin/api/testimonials/{id} [get]
func getTestimonialHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.catalog.GetTestimonial(r.Context(), chi.URLParam(r, "id"))
		writeResult(w, http.StatusOK, t, err)
	}
}

// updateTestimonialHandler godoc
// @Summary Edición de testimonio
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID del testimonio"
// @Param payload body TestimonialInput true "Testimonio completo"
// @Success 200 {object} catalog.Testimonial
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/api/testimonials/{id} [put]
func updateTestimonialHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in TestimonialInput
		if !decodeJSON(w, r, &in) {
			return
		}
		t, err := svc.UpdateTestimonial(r.Context(), chi.URLParam(r, "id"), in)
		audit(log, r, "testimonial updated", err)
		writeResult(w, http.StatusOK, t, err)
	}
}

// deleteTestimonialHandler godoc
// @Summary Baja de testimonio
// @Tags admin
// @Param id path string true "ID del testimonio"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/api/testimonials/{id} [delete]
func deleteTestimonialHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return deleteHandler(svc.DeleteTestimonial, "testimonial", log)
}

// dashboardHandler godoc
// @Summary Dashboard del back-office
// @Tags admin
// @Produce json
// @Success 200 {object} Stats
// @Failure 500 {object} map[string]string
// @Router /admin [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Dashboard(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// createKittenHandler godoc
// @Summary Alta de gatito
// @Description Form multipart. La imagen se sube al CDN antes de insertar la fila.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagen principal"
// @Param name formData string true "Nombre"
// @Param breed formData string true "Raza"
// @Param gender formData string true "male o female"
// @Param age_weeks formData int false "Edad en semanas"
// @Param price formData number false "Precio"
// @Param description formData string true "Descripción"
// @Param is_available formData bool false "Disponible"
// @Param extra_image_urls formData []string false "URLs adicionales"
// @Success 201 {object} catalog.Kitten
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]string
// @Router /admin/api/kittens [post]
func createKittenHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, image, ok := parseKittenForm(w, r)
		if !ok {
			return
		}
		if image != nil {
			defer image.close()
		}
		k, err := svc.CreateKitten(r.Context(), in, image.file())
		audit(log, r, "kitten created", err)
		writeResult(w, http.StatusCreated, k, err)
	}
}

// updateKittenHandler godoc
// @Summary Edición de gatito
// @Description Reemplaza los campos editables. Sin `image` se conserva la imagen actual.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID del gatito"
// @Param image formData file false "Nueva imagen principal"
// @Success 200 {object} catalog.Kitten
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /admin/api/kittens/{id} [put]
func updateKittenHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, image, ok := parseKittenForm(w, r)
		if !ok {
			return
		}
		if image != nil {
			defer image.close()
		}
		k, err := svc.UpdateKitten(r.Context(), chi.URLParam(r, "id"), in, image.file())
		audit(log, r, "kitten updated", err)
		writeResult(w, http.StatusOK, k, err)
	}
}

func deleteHandler(del func(ctx context.Context, id string) error, kind string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := del(r.Context(), chi.URLParam(r, "id"))
		audit(log, r, kind+" deleted", err)
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type upload struct {
	f    multipart.File
	name string
}

func (u *upload) file() *media.File {
	if u == nil {
		return nil
	}
	return &media.File{Name: u.name, Content: u.f}
}

func (u *upload) close() { _ = u.f.Close() }

func parseKittenForm(w http.ResponseWriter, r *http.Request) (KittenInput, *upload, bool) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return KittenInput{}, nil, false
	}

	age, err := formInt(r.FormValue("age_weeks"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid field", "fields": []string{"age_weeks"}})
		return KittenInput{}, nil, false
	}
	price, err := formFloat(r.FormValue("price"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid field", "fields": []string{"price"}})
		return KittenInput{}, nil, false
	}
	avail, _ := strconv.ParseBool(strings.TrimSpace(r.FormValue("is_available")))

	in := KittenInput{
		Name:           r.FormValue("name"),
		Breed:          r.FormValue("breed"),
		Gender:         r.FormValue("gender"),
		AgeWeeks:       age,
		Price:          price,
		Description:    r.FormValue("description"),
		IsAvailable:    avail,
		ExtraImageURLs: r.MultipartForm.Value["extra_image_urls"],
	}

	f, hdr, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return in, nil, true
	case err != nil:
		http.Error(w, "invalid image", http.StatusBadRequest)
		return KittenInput{}, nil, false
	}
	if hdr.Size == 0 {
		_ = f.Close()
		return in, nil, true
	}
	return in, &upload{f: f, name: hdr.Filename}, true
}

func formInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func formFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func audit(log *zap.Logger, r *http.Request, msg string, err error) {
	if err != nil {
		return
	}
	fields := []zap.Field{zap.String("path", r.URL.Path)}
	if id := chi.URLParam(r, "id"); id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if s, ok := middleware.GetSession(r.Context()); ok {
		fields = append(fields, zap.String("admin", s.Email))
	}
	log.Info(msg, fields...)
}

type listResponse[T any] struct {
	Items      []T  `json:"items"`
	LoadFailed bool `json:"load_failed"`
}

func writeList[T any](w http.ResponseWriter, res catalog.Result[T]) {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse[T]{Items: items, LoadFailed: res.Failed()})
}

func writeResult(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, v)
}

func writeError(w http.ResponseWriter, err error) {
	var ve *errs.ValidationError
	var ue *errs.UploadError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing or invalid fields", "fields": ve.Fields})
	case errors.Is(err, errs.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, errs.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "ImageKit not configured"})
	case errors.As(err, &ue):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Image upload failed"})
	case errors.As(err, new(*errs.PersistenceError)):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
