package marketplace

import (
	"testing"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(f float64) *float64 { return &f }

func titles(posts []*entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}

	return out
}

func sampleListings() []*entity.Post {
	return []*entity.Post{
		{
			Title:           "Fresh Tomatoes",
			Description:     "Heirloom varieties picked this morning",
			Type:            entity.PostTypeProduce,
			County:          "king",
			Price:           price(4),
			PickupAvailable: true,
			Seller:          &entity.Profile{Name: "Ana", FarmName: "Sunny Acres"},
		},
		{
			Title:             "Pasture Raised Eggs",
			Description:       "A dozen brown eggs",
			Type:              entity.PostTypeProduce,
			County:            "pierce",
			Tags:              []string{"poultry"},
			SubProducts:       []entity.SubProduct{{Name: "dozen", Price: price(30)}, {Name: "flat", Price: price(80)}},
			DeliveryAvailable: true,
			Seller:            &entity.Profile{Name: "Ben"},
		},
		{
			Title:       "Used Tractor",
			Description: "Runs well",
			Type:        entity.PostTypeEquipment,
			County:      "king",
			Category:    "machinery",
			Price:       price(4500),
			Seller:      &entity.Profile{Name: "Cara", FarmName: "Honey Hill"},
		},
		{
			Title:       "Compost swap",
			Description: "Free horse manure",
			Type:        entity.PostTypeResource,
			County:      "spokane",
		},
	}
}

func TestApply_TextMatch(t *testing.T) {
	listings := sampleListings()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches everything", "", []string{"Fresh Tomatoes", "Pasture Raised Eggs", "Used Tractor", "Compost swap"}},
		{"whitespace only matches everything", "   ", []string{"Fresh Tomatoes", "Pasture Raised Eggs", "Used Tractor", "Compost swap"}},
		{"title match is case insensitive", "TOMATOES", []string{"Fresh Tomatoes"}},
		{"tomatoes does not find eggs", "tomatoes", []string{"Fresh Tomatoes"}},
		{"tokens are OR-ed", "tomatoes eggs", []string{"Fresh Tomatoes", "Pasture Raised Eggs"}},
		{"seller farm name", "honey", []string{"Used Tractor"}},
		{"category", "machinery", []string{"Used Tractor"}},
		{"tags", "poultry", []string{"Pasture Raised Eggs"}},
		{"substring", "manur", []string{"Compost swap"}},
		{"no match", "goats", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(listings, tt.query, FilterSet{})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestApply_PriceBuckets(t *testing.T) {
	listings := sampleListings()

	tests := []struct {
		bucket PriceBucket
		want   []string
	}{
		// Compost swap has no price and lands in under-25 only.
		{PriceUnder25, []string{"Fresh Tomatoes", "Compost swap"}},
		// Eggs are priced by their cheapest sub-product.
		{Price25To100, []string{"Pasture Raised Eggs"}},
		{PriceOver100, []string{"Used Tractor"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			got := Apply(listings, "", FilterSet{PriceBucket: tt.bucket})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestPriceBucket_Boundaries(t *testing.T) {
	assert.True(t, Price25To100.Contains(price(25)))
	assert.True(t, Price25To100.Contains(price(100)))
	assert.False(t, PriceUnder25.Contains(price(25)))
	assert.False(t, PriceOver100.Contains(price(100)))
	assert.True(t, PriceUnder25.Contains(nil))
	assert.False(t, Price25To100.Contains(nil))
	assert.False(t, PriceOver100.Contains(nil))
	assert.True(t, PriceAny.Contains(nil))
}

func TestApply_CategoricalFilters(t *testing.T) {
	listings := sampleListings()

	t.Run("post type", func(t *testing.T) {
		got := Apply(listings, "", FilterSet{PostType: entity.PostTypeProduce})
		assert.Equal(t, []string{"Fresh Tomatoes", "Pasture Raised Eggs"}, titles(got))
	})

	t.Run("county", func(t *testing.T) {
		got := Apply(listings, "", FilterSet{County: "king"})
		assert.Equal(t, []string{"Fresh Tomatoes", "Used Tractor"}, titles(got))
	})

	t.Run("pickup", func(t *testing.T) {
		got := Apply(listings, "", FilterSet{Delivery: DeliveryPickup})
		assert.Equal(t, []string{"Fresh Tomatoes"}, titles(got))
	})

	t.Run("delivery", func(t *testing.T) {
		got := Apply(listings, "", FilterSet{Delivery: DeliveryDelivery})
		assert.Equal(t, []string{"Pasture Raised Eggs"}, titles(got))
	})

	t.Run("filters AND with the text match", func(t *testing.T) {
		got := Apply(listings, "tomatoes eggs", FilterSet{County: "pierce", Delivery: DeliveryDelivery})
		assert.Equal(t, []string{"Pasture Raised Eggs"}, titles(got))
	})
}

func TestApply_PreservesOrderAndSkipsNil(t *testing.T) {
	listings := sampleListings()
	reversed := []*entity.Post{listings[3], nil, listings[2], listings[1], listings[0]}

	got := Apply(reversed, "", FilterSet{})

	assert.Equal(t, []string{"Compost swap", "Used Tractor", "Pasture Raised Eggs", "Fresh Tomatoes"}, titles(got))
}

func TestParseFilters(t *testing.T) {
	bucket, err := ParsePriceBucket("25-100")
	require.NoError(t, err)
	assert.Equal(t, Price25To100, bucket)

	bucket, err = ParsePriceBucket("")
	require.NoError(t, err)
	assert.Equal(t, PriceAny, bucket)

	_, err = ParsePriceBucket("cheap")
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())

	method, err := ParseDeliveryMethod("pickup")
	require.NoError(t, err)
	assert.Equal(t, DeliveryPickup, method)

	_, err = ParseDeliveryMethod("drone")
	assert.Error(t, err)
}

func TestMatchProfile(t *testing.T) {
	profile := &entity.Profile{
		Name:     "Dana",
		FarmName: "Cedar Creek",
		Bio:      "Small orchard",
		City:     "Wenatchee",
		GrowTags: []string{"apples", "pears"},
	}

	assert.True(t, MatchProfile(profile, Tokenize("")))
	assert.True(t, MatchProfile(profile, Tokenize("cedar")))
	assert.True(t, MatchProfile(profile, Tokenize("plums pears")))
	assert.True(t, MatchProfile(profile, Tokenize("wenatchee")))
	assert.False(t, MatchProfile(profile, Tokenize("goats")))
}
