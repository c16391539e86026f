// Package store define la capacidad de persistencia por tipo de recurso.
// Los registros son mapas sueltos tal como los devuelve el driver; el mapeo a
// tipos lo hace cada dominio.
package store

import (
	"context"
	"fmt"
	"strings"
)

type Resource string

const (
	Kittens      Resource = "kittens"
	Breeds       Resource = "breeds"
	Testimonials Resource = "testimonials"
	Inquiries    Resource = "inquiries"
)

// Record es una fila cruda: columna -> valor del driver.
type Record map[string]any

type Order struct {
	Column     string
	Descending bool
}

func (o Order) IsZero() bool { return strings.TrimSpace(o.Column) == "" }

func OrderBy(column string) Order     { return Order{Column: column} }
func OrderByDesc(column string) Order { return Order{Column: column, Descending: true} }

// Query: orden y límite que sí se empujan al store. Limit <= 0 = sin límite.
// Los filtros de catálogo no van acá: se aplican después de mapear.
type Query struct {
	Order Order
	Limit int
}

type RecordStore interface {
	FetchAll(ctx context.Context, res Resource, q Query) ([]Record, error)
	FetchByID(ctx context.Context, res Resource, id string) (Record, error)
	Insert(ctx context.Context, res Resource, rec Record) (Record, error)
	UpdateByID(ctx context.Context, res Resource, id string, rec Record) (Record, error)
	DeleteByID(ctx context.Context, res Resource, id string) error
	Count(ctx context.Context, res Resource) (int, error)
}

// columns es la whitelist de columnas escribibles/ordenables por recurso.
// Nada fuera de acá se interpola en SQL.
var columns = map[Resource][]string{
	Breeds: {
		"id", "name", "description", "created_at", "updated_at",
	},
	Kittens: {
		"id", "name", "breed", "gender", "age_weeks", "price", "description",
		"main_image_url", "extra_image_urls", "is_available", "created_at", "updated_at",
	},
	Testimonials: {
		"id", "name", "location", "rating", "text", "avatar", "kitten_name",
		"created_at", "updated_at",
	},
	Inquiries: {
		"id", "name", "email", "phone", "breed_interest", "message", "created_at",
	},
}

// Columns devuelve las columnas conocidas del recurso (nil si no existe).
func Columns(res Resource) []string {
	return columns[res]
}

func HasColumn(res Resource, col string) bool {
	for _, c := range columns[res] {
		if c == col {
			return true
		}
	}
	return false
}

// Validate verifica recurso, columnas del registro y de la query.
func Validate(res Resource, rec Record, q Query) error {
	if _, ok := columns[res]; !ok {
		return fmt.Errorf("unknown resource %q", res)
	}
	for col := range rec {
		if !HasColumn(res, col) {
			return fmt.Errorf("unknown column %q for %s", col, res)
		}
	}
	if !q.Order.IsZero() && !HasColumn(res, q.Order.Column) {
		return fmt.Errorf("unknown order column %q for %s", q.Order.Column, res)
	}
	return nil
}
