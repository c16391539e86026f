package catalog

import "strings"

// All es el valor "sin filtro" que manda la UI.
const All = "all"

// Filter son los predicados del listado público. Se combinan con AND y se
// aplican sobre view-models ya mapeados, nunca en el store.
type Filter struct {
	Breed         string
	Gender        string
	AvailableOnly bool
}

func unset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == All
}

func (f Filter) IsZero() bool {
	return unset(f.Breed) && unset(f.Gender) && !f.AvailableOnly
}

func (f Filter) Match(k Kitten) bool {
	if !unset(f.Breed) && !strings.EqualFold(k.Breed, strings.TrimSpace(f.Breed)) {
		return false
	}
	if !unset(f.Gender) && string(k.Gender) != f.Gender {
		return false
	}
	if f.AvailableOnly && !k.IsAvailable {
		return false
	}
	return true
}

// Apply filtra preservando el orden relativo. Siempre devuelve slice no-nil.
func Apply(items []Kitten, f Filter) []Kitten {
	out := make([]Kitten, 0, len(items))
	for _, k := range items {
		if f.Match(k) {
			out = append(out, k)
		}
	}
	return out
}

// ResolveBreed matchea el parámetro ?breed= contra los nombres de raza sin
// distinguir mayúsculas. Si no hay match devuelve All: una raza desconocida
// desactiva el filtro en vez de dejar el listado vacío.
func ResolveBreed(breeds []Breed, param string) string {
	param = strings.TrimSpace(param)
	if unset(param) {
		return All
	}
	for _, b := range breeds {
		if strings.EqualFold(b.Name, param) {
			return b.Name
		}
	}
	return All
}
