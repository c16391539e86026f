package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cattery-storefront/internal/ports/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrMalformedRecord: una fila del store no se puede proyectar (p.ej. is_available no booleano).
var ErrMalformedRecord = errors.New("malformed record")

func malformed(col string, v any) error {
	return fmt.Errorf("%w: column %s has %T", ErrMalformedRecord, col, v)
}

// MapKitten cubre todas las columnas de kittens; nada sin mapear sale de acá.
func MapKitten(rec store.Record) (Kitten, error) {
	id, err := CoerceID(rec["id"])
	if err != nil {
		return Kitten{}, err
	}
	age, err := intValue(rec["age_weeks"])
	if err != nil {
		return Kitten{}, malformed("age_weeks", rec["age_weeks"])
	}
	price, err := number(rec["price"])
	if err != nil {
		return Kitten{}, malformed("price", rec["price"])
	}
	// solo booleano nativo; cualquier otra codificación es un error
	avail, ok := rec["is_available"].(bool)
	if !ok {
		return Kitten{}, malformed("is_available", rec["is_available"])
	}

	return Kitten{
		ID:             id,
		Name:           text(rec["name"]),
		Breed:          text(rec["breed"]),
		Gender:         Gender(text(rec["gender"])),
		AgeWeeks:       age,
		Price:          price,
		Description:    text(rec["description"]),
		MainImageURL:   text(rec["main_image_url"]),
		ExtraImageURLs: stringList(rec["extra_image_urls"]),
		IsAvailable:    avail,
	}, nil
}

func MapBreed(rec store.Record) (Breed, error) {
	id, err := CoerceID(rec["id"])
	if err != nil {
		return Breed{}, err
	}
	return Breed{
		ID:          id,
		Name:        text(rec["name"]),
		Description: text(rec["description"]),
	}, nil
}

func MapTestimonial(rec store.Record) (Testimonial, error) {
	id, err := CoerceID(rec["id"])
	if err != nil {
		return Testimonial{}, err
	}
	rating, err := intValue(rec["rating"])
	if err != nil {
		return Testimonial{}, malformed("rating", rec["rating"])
	}
	return Testimonial{
		ID:         id,
		Name:       text(rec["name"]),
		Location:   text(rec["location"]),
		Rating:     rating,
		Text:       text(rec["text"]),
		Avatar:     optText(rec["avatar"]),
		KittenName: optText(rec["kitten_name"]),
	}, nil
}

// CoerceID lleva cualquier id nativo del store (uuid, entero, string) a string canónico.
func CoerceID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", malformed("id", v)
	case string:
		return id, nil
	case [16]byte:
		return uuid.UUID(id).String(), nil
	case uuid.UUID:
		return id.String(), nil
	case pgtype.UUID:
		if !id.Valid {
			return "", malformed("id", v)
		}
		return uuid.UUID(id.Bytes).String(), nil
	case []byte:
		if len(id) == 16 {
			return uuid.UUID(id).String(), nil
		}
		return string(id), nil
	case int:
		return strconv.Itoa(id), nil
	case int32:
		return strconv.FormatInt(int64(id), 10), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case uint64:
		return strconv.FormatUint(id, 10), nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case json.Number:
		return id.String(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

// text: ausente o NULL => "".
func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// optText: ausente, NULL o vacío => nil (null en JSON).
func optText(v any) *string {
	s := strings.TrimSpace(text(v))
	if s == "" {
		return nil
	}
	return &s
}

// stringList: cualquier cosa que no sea lista => lista vacía (no nil).
func stringList(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case pgtype.FlatArray[string]:
		out = append(out, list...)
	}
	return out
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case pgtype.Numeric:
		if !n.Valid {
			return 0, nil
		}
		f, err := n.Float64Value()
		if err != nil {
			return 0, err
		}
		return f.Float64, nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func intValue(v any) (int, error) {
	f, err := number(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	return int(f), nil
}
