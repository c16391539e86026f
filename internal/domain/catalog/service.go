package catalog

import (
	"context"
	"errors"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/store"

	"go.uber.org/zap"
)

const DefaultFeatured = 3

// Result: Items nunca es nil. Err != nil distingue "falló la carga" de "no hay filas";
// puede venir junto con Items cuando solo algunas filas estaban mal formadas.
type Result[T any] struct {
	Items []T
	Err   error
}

func (r Result[T]) Failed() bool { return r.Err != nil }

type ListOptions struct {
	Order  store.Order
	Limit  int
	Filter Filter
}

type Service struct {
	store store.RecordStore
	log   *zap.Logger
}

func NewService(st store.RecordStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log.Named("catalog")}
}

// ListKittens: fetch -> map -> filter, en ese orden.
func (s *Service) ListKittens(ctx context.Context, opts ListOptions) Result[Kitten] {
	if opts.Order.IsZero() {
		opts.Order = store.OrderByDesc("created_at")
	}
	res := project(ctx, s, store.Kittens, store.Query{Order: opts.Order, Limit: opts.Limit}, MapKitten)
	res.Items = Apply(res.Items, opts.Filter)
	return res
}

// FeaturedKittens: los n disponibles más recientes (home).
func (s *Service) FeaturedKittens(ctx context.Context, n int) Result[Kitten] {
	if n <= 0 {
		n = DefaultFeatured
	}
	res := s.ListKittens(ctx, ListOptions{Filter: Filter{AvailableOnly: true}})
	if len(res.Items) > n {
		res.Items = res.Items[:n]
	}
	return res
}

func (s *Service) GetKitten(ctx context.Context, id string) (Kitten, error) {
	return get(ctx, s, store.Kittens, id, MapKitten)
}

func (s *Service) ListBreeds(ctx context.Context) Result[Breed] {
	return project(ctx, s, store.Breeds, store.Query{Order: store.OrderBy("name")}, MapBreed)
}

func (s *Service) GetBreed(ctx context.Context, id string) (Breed, error) {
	return get(ctx, s, store.Breeds, id, MapBreed)
}

func (s *Service) ListTestimonials(ctx context.Context) Result[Testimonial] {
	return project(ctx, s, store.Testimonials, store.Query{Order: store.OrderByDesc("created_at")}, MapTestimonial)
}

func (s *Service) GetTestimonial(ctx context.Context, id string) (Testimonial, error) {
	return get(ctx, s, store.Testimonials, id, MapTestimonial)
}

// BreedSummaries cuenta gatitos por nombre de raza (match por string, no FK).
func (s *Service) BreedSummaries(ctx context.Context) Result[BreedSummary] {
	breeds := s.ListBreeds(ctx)
	kittens := project(ctx, s, store.Kittens, store.Query{}, MapKitten)

	total := map[string]int{}
	avail := map[string]int{}
	for _, k := range kittens.Items {
		total[k.Breed]++
		if k.IsAvailable {
			avail[k.Breed]++
		}
	}

	out := make([]BreedSummary, 0, len(breeds.Items))
	for _, b := range breeds.Items {
		out = append(out, BreedSummary{
			Breed:          b,
			KittenCount:    total[b.Name],
			AvailableCount: avail[b.Name],
		})
	}
	return Result[BreedSummary]{Items: out, Err: errors.Join(breeds.Err, kittens.Err)}
}

// project trae las filas y las mapea. Un fallo de fetch deja Items vacío y
// se reporta en Err; filas mal formadas se descartan y también se reportan.
func project[T any](ctx context.Context, s *Service, res store.Resource, q store.Query, mapFn func(store.Record) (T, error)) Result[T] {
	recs, err := s.store.FetchAll(ctx, res, q)
	if err != nil {
		s.log.Error("fetch failed", zap.String("resource", string(res)), zap.Error(err))
		return Result[T]{Items: []T{}, Err: &errs.PersistenceError{Op: "fetch " + string(res), Err: err}}
	}

	out := make([]T, 0, len(recs))
	var bad []error
	for _, rec := range recs {
		item, err := mapFn(rec)
		if err != nil {
			s.log.Warn("dropping malformed record",
				zap.String("resource", string(res)),
				zap.Any("id", rec["id"]),
				zap.Error(err),
			)
			bad = append(bad, err)
			continue
		}
		out = append(out, item)
	}
	return Result[T]{Items: out, Err: errors.Join(bad...)}
}

func get[T any](ctx context.Context, s *Service, res store.Resource, id string, mapFn func(store.Record) (T, error)) (T, error) {
	var zero T
	rec, err := s.store.FetchByID(ctx, res, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return zero, errs.ErrNotFound
		}
		s.log.Error("fetch by id failed", zap.String("resource", string(res)), zap.String("id", id), zap.Error(err))
		return zero, &errs.PersistenceError{Op: "fetch " + string(res), Err: err}
	}
	return mapFn(rec)
}
