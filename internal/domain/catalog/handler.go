package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cattery-storefront/internal/errs"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo público. Sin sesión.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/kittens", func(kr chi.Router) {
		kr.Get("/", listKittensHandler(svc))
		kr.Get("/featured", featuredKittensHandler(svc))
		kr.Get("/{kittenID}", getKittenHandler(svc))
	})
	r.Get("/api/breeds", listBreedsHandler(svc))
	r.Get("/api/testimonials", listTestimonialsHandler(svc))
}

// listResponse: load_failed distingue "no se pudo cargar" de "no hay nada".
type listResponse[T any] struct {
	Items      []T  `json:"items"`
	LoadFailed bool `json:"load_failed"`
}

func toListResponse[T any](res Result[T]) listResponse[T] {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, LoadFailed: res.Failed()}
}

// listKittensHandler godoc
// @Summary Listar gatitos
// @Description Lista los gatitos del catálogo, más nuevos primero. Los filtros se combinan con AND; `all` o vacío no filtra. La raza se compara sin distinguir mayúsculas contra las razas cargadas. Una raza que no coincide con ninguna desactiva el filtro de raza y se listan todas. Si las razas no se pudieron cargar se filtra por el valor recibido y la respuesta lleva load_failed.
// @Tags catalog
// @Produce json
// @Param breed query string false "Nombre de raza o all; una raza desconocida no filtra"
// @Param gender query string false "male, female o all"
// @Param available query bool false "Solo disponibles"
// @Param limit query int false "Máximo de filas a traer del store"
// @Success 200 {object} listResponse[Kitten]
// @Failure 400 {string} string "limit inválido"
// @Router /api/kittens [get]
func listKittensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit, err := parseLimit(q.Get("limit"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f := Filter{
			Gender:        strings.TrimSpace(q.Get("gender")),
			AvailableOnly: parseBool(q.Get("available")),
		}
		var breedErr error
		if breed := q.Get("breed"); !unset(breed) {
			breeds := svc.ListBreeds(r.Context())
			breedErr = breeds.Err
			if breeds.Err != nil && len(breeds.Items) == 0 {
				// sin razas no hay contra qué resolver: se filtra por el valor tal cual
				f.Breed = strings.TrimSpace(breed)
			} else {
				f.Breed = ResolveBreed(breeds.Items, breed)
			}
		}

		res := svc.ListKittens(r.Context(), ListOptions{Limit: limit, Filter: f})
		res.Err = errors.Join(res.Err, breedErr)
		writeJSON(w, http.StatusOK, toListResponse(res))
	}
}

// featuredKittensHandler godoc
// @Summary Gatitos destacados
// @Description Los gatitos disponibles más recientes para la home (3 por defecto).
// @Tags catalog
// @Produce json
// @Param limit query int false "Cantidad a devolver"
// @Success 200 {object} listResponse[Kitten]
// @Failure 400 {string} string "limit inválido"
// @Router /api/kittens/featured [get]
func featuredKittensHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toListResponse(svc.FeaturedKittens(r.Context(), n)))
	}
}

// getKittenHandler godoc
// @Summary Detalle de gatito
// @Tags catalog
// @Produce json
// @Param kittenID path string true "ID del gatito"
// @Success 200 {object} Kitten
// @Failure 404 {string} string "kitten not found"
// @Failure 500 {string} string "internal error"
// @Router /api/kittens/{kittenID} [get]
func getKittenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, err := svc.GetKitten(r.Context(), chi.URLParam(r, "kittenID"))
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				http.Error(w, "kitten not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, k)
	}
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Tags catalog
// @Produce json
// @Success 200 {object} listResponse[Breed]
// @Router /api/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toListResponse(svc.ListBreeds(r.Context())))
	}
}

// listTestimonialsHandler godoc
// @Summary Listar testimonios
// @Tags catalog
// @Produce json
// @Success 200 {object} listResponse[Testimonial]
// @Router /api/testimonials [get]
func listTestimonialsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toListResponse(svc.ListTestimonials(r.Context())))
	}
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 200 {
		return 0, errors.New("limit must be an integer between 0 and 200")
	}
	return n, nil
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
