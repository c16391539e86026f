package catalog

import (
	"context"
	"errors"
	"testing"

	"cattery-storefront/internal/errs"
	"cattery-storefront/internal/ports/store"

	"github.com/stretchr/testify/require"
)

// fakeStore devuelve filas fijas por recurso, o un error de fetch.
type fakeStore struct {
	rows    map[store.Resource][]store.Record
	fail    map[store.Resource]error
	queries []store.Query
}

func (f *fakeStore) FetchAll(_ context.Context, res store.Resource, q store.Query) ([]store.Record, error) {
	f.queries = append(f.queries, q)
	if err := f.fail[res]; err != nil {
		return nil, err
	}
	out := f.rows[res]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeStore) FetchByID(_ context.Context, res store.Resource, id string) (store.Record, error) {
	if err := f.fail[res]; err != nil {
		return nil, err
	}
	for _, rec := range f.rows[res] {
		if rec["id"] == id {
			return rec, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeStore) Insert(context.Context, store.Resource, store.Record) (store.Record, error) {
	return nil, errors.New("read-only")
}

func (f *fakeStore) UpdateByID(context.Context, store.Resource, string, store.Record) (store.Record, error) {
	return nil, errors.New("read-only")
}

func (f *fakeStore) DeleteByID(context.Context, store.Resource, string) error {
	return errors.New("read-only")
}

func (f *fakeStore) Count(_ context.Context, res store.Resource) (int, error) {
	return len(f.rows[res]), nil
}

func kittenRow(id, breed, gender string, available any) store.Record {
	return store.Record{"id": id, "name": "k" + id, "breed": breed, "gender": gender, "is_available": available}
}

func TestListKittens_FetchFailureIsDistinctFromEmpty(t *testing.T) {
	st := &fakeStore{fail: map[store.Resource]error{store.Kittens: errors.New("connection refused")}}
	svc := NewService(st, nil)

	res := svc.ListKittens(context.Background(), ListOptions{})
	require.NotNil(t, res.Items)
	require.Empty(t, res.Items)
	require.True(t, res.Failed())

	var pe *errs.PersistenceError
	require.ErrorAs(t, res.Err, &pe)

	empty := NewService(&fakeStore{}, nil).ListKittens(context.Background(), ListOptions{})
	require.NotNil(t, empty.Items)
	require.Empty(t, empty.Items)
	require.False(t, empty.Failed())
}

func TestListKittens_DefaultsToNewestFirst(t *testing.T) {
	st := &fakeStore{}
	NewService(st, nil).ListKittens(context.Background(), ListOptions{Limit: 5})

	require.Len(t, st.queries, 1)
	require.Equal(t, store.OrderByDesc("created_at"), st.queries[0].Order)
	require.Equal(t, 5, st.queries[0].Limit)
}

func TestListKittens_FiltersAfterMappingAndDropsMalformed(t *testing.T) {
	st := &fakeStore{rows: map[store.Resource][]store.Record{
		store.Kittens: {
			kittenRow("1", "Ragdoll", "male", true),
			kittenRow("2", "Ragdoll", "female", false),
			kittenRow("3", "Persian", "male", true),
			kittenRow("4", "Ragdoll", "male", "yes"),
		},
	}}
	svc := NewService(st, nil)

	res := svc.ListKittens(context.Background(), ListOptions{
		Filter: Filter{Breed: "Ragdoll", Gender: All, AvailableOnly: true},
	})
	require.Equal(t, []string{"1"}, ids(res.Items))
	require.ErrorIs(t, res.Err, ErrMalformedRecord)

	all := svc.ListKittens(context.Background(), ListOptions{})
	require.Equal(t, []string{"1", "2", "3"}, ids(all.Items))
}

func TestFeaturedKittens_AvailableOnlyAndTruncated(t *testing.T) {
	st := &fakeStore{rows: map[store.Resource][]store.Record{
		store.Kittens: {
			kittenRow("1", "Ragdoll", "male", false),
			kittenRow("2", "Ragdoll", "female", true),
			kittenRow("3", "Persian", "male", true),
			kittenRow("4", "Persian", "female", true),
			kittenRow("5", "Sphynx", "male", true),
		},
	}}
	svc := NewService(st, nil)

	res := svc.FeaturedKittens(context.Background(), 0)
	require.False(t, res.Failed())
	require.Equal(t, []string{"2", "3", "4"}, ids(res.Items))

	res = svc.FeaturedKittens(context.Background(), 1)
	require.Equal(t, []string{"2"}, ids(res.Items))

	// el filtro de disponibilidad nunca baja al store
	for _, q := range st.queries {
		require.Zero(t, q.Limit)
	}
}

func TestGetKitten(t *testing.T) {
	st := &fakeStore{rows: map[store.Resource][]store.Record{
		store.Kittens: {kittenRow("1", "Ragdoll", "male", true)},
	}}
	svc := NewService(st, nil)

	k, err := svc.GetKitten(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "Ragdoll", k.Breed)

	_, err = svc.GetKitten(context.Background(), "nope")
	require.ErrorIs(t, err, errs.ErrNotFound)

	st.fail = map[store.Resource]error{store.Kittens: errors.New("timeout")}
	_, err = svc.GetKitten(context.Background(), "1")
	var pe *errs.PersistenceError
	require.ErrorAs(t, err, &pe)
}

func TestBreedSummaries_CountsByBreedName(t *testing.T) {
	st := &fakeStore{rows: map[store.Resource][]store.Record{
		store.Breeds: {
			{"id": "b1", "name": "Persian"},
			{"id": "b2", "name": "Ragdoll"},
			{"id": "b3", "name": "Sphynx"},
		},
		store.Kittens: {
			kittenRow("1", "Ragdoll", "male", true),
			kittenRow("2", "Ragdoll", "female", false),
			kittenRow("3", "Persian", "male", true),
		},
	}}

	res := NewService(st, nil).BreedSummaries(context.Background())
	require.NoError(t, res.Err)
	require.Len(t, res.Items, 3)
	require.Equal(t, 1, res.Items[0].KittenCount)
	require.Equal(t, 2, res.Items[1].KittenCount)
	require.Equal(t, 1, res.Items[1].AvailableCount)
	require.Equal(t, 0, res.Items[2].KittenCount)
}

func TestBreedSummaries_ReportsKittenFailure(t *testing.T) {
	st := &fakeStore{
		rows: map[store.Resource][]store.Record{store.Breeds: {{"id": "b1", "name": "Persian"}}},
		fail: map[store.Resource]error{store.Kittens: errors.New("down")},
	}
	res := NewService(st, nil).BreedSummaries(context.Background())
	require.True(t, res.Failed())
	require.Len(t, res.Items, 1)
	require.Zero(t, res.Items[0].KittenCount)
}

func TestListTestimonials_Order(t *testing.T) {
	st := &fakeStore{}
	res := NewService(st, nil).ListTestimonials(context.Background())
	require.NotNil(t, res.Items)
	require.Equal(t, store.OrderByDesc("created_at"), st.queries[0].Order)
}
