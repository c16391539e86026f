package catalog

import (
	"testing"

	"cattery-storefront/internal/ports/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestMapKitten_CoercesIDsAndNormalizesLists(t *testing.T) {
	u := uuid.MustParse("6f1c2e8a-7f43-4a51-9d43-0c2b3b8f3a10")

	cases := []struct {
		name string
		id   any
		want string
	}{
		{"string", "abc", "abc"},
		{"int64", int64(42), "42"},
		{"int", 7, "7"},
		{"uuid bytes", [16]byte(u), u.String()},
		{"uuid", u, u.String()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := MapKitten(store.Record{"id": tc.id, "is_available": true})
			require.NoError(t, err)
			require.Equal(t, tc.want, k.ID)
			require.NotNil(t, k.ExtraImageURLs)
			require.Empty(t, k.ExtraImageURLs)
		})
	}
}

func TestMapKitten_FullRow(t *testing.T) {
	var price pgtype.Numeric
	require.NoError(t, price.Scan("1250.50"))

	k, err := MapKitten(store.Record{
		"id":               int64(3),
		"name":             "Luna",
		"breed":            "Ragdoll",
		"gender":           "female",
		"age_weeks":        int32(12),
		"price":            price,
		"description":      "sweet",
		"main_image_url":   "https://ik.imagekit.io/demo/luna.jpg",
		"extra_image_urls": []any{"a.jpg", 5, "b.jpg"},
		"is_available":     false,
	})
	require.NoError(t, err)
	require.Equal(t, Kitten{
		ID:             "3",
		Name:           "Luna",
		Breed:          "Ragdoll",
		Gender:         GenderFemale,
		AgeWeeks:       12,
		Price:          1250.5,
		Description:    "sweet",
		MainImageURL:   "https://ik.imagekit.io/demo/luna.jpg",
		ExtraImageURLs: []string{"a.jpg", "b.jpg"},
		IsAvailable:    false,
	}, k)
}

func TestMapKitten_RejectsNonBooleanAvailability(t *testing.T) {
	for _, v := range []any{"true", 1, nil} {
		_, err := MapKitten(store.Record{"id": "x", "is_available": v})
		require.ErrorIs(t, err, ErrMalformedRecord)
	}
}

func TestMapKitten_NonListImagesBecomeEmpty(t *testing.T) {
	k, err := MapKitten(store.Record{"id": "x", "is_available": true, "extra_image_urls": "a.jpg"})
	require.NoError(t, err)
	require.Equal(t, []string{}, k.ExtraImageURLs)
}

func TestMapBreed_MissingDescriptionIsEmpty(t *testing.T) {
	b, err := MapBreed(store.Record{"id": int64(1), "name": "Persian", "description": nil})
	require.NoError(t, err)
	require.Equal(t, Breed{ID: "1", Name: "Persian", Description: ""}, b)

	_, err = MapBreed(store.Record{"name": "no id"})
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestMapTestimonial_OptionalFieldsAreNull(t *testing.T) {
	tm, err := MapTestimonial(store.Record{
		"id":          "t1",
		"name":        "Ana",
		"location":    "Austin, TX",
		"rating":      int32(5),
		"text":        "Lovely kitten",
		"avatar":      "",
		"kitten_name": nil,
	})
	require.NoError(t, err)
	require.Nil(t, tm.Avatar)
	require.Nil(t, tm.KittenName)
	require.Equal(t, 5, tm.Rating)

	tm, err = MapTestimonial(store.Record{"id": "t2", "rating": 4, "kitten_name": "Milo"})
	require.NoError(t, err)
	require.NotNil(t, tm.KittenName)
	require.Equal(t, "Milo", *tm.KittenName)

	_, err = MapTestimonial(store.Record{"id": "t3", "rating": 4.5})
	require.ErrorIs(t, err, ErrMalformedRecord)
}
