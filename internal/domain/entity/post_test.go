package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestPost_EffectivePrice(t *testing.T) {
	t.Run("listing price wins", func(t *testing.T) {
		post := &Post{Price: ptr(12), SubProducts: []SubProduct{{Name: "a", Price: ptr(3)}}}
		require.NotNil(t, post.EffectivePrice())
		assert.InDelta(t, 12.0, *post.EffectivePrice(), 0.0001)
	})

	t.Run("lowest sub-product price", func(t *testing.T) {
		post := &Post{SubProducts: []SubProduct{
			{Name: "a", Price: ptr(30)},
			{Name: "b"},
			{Name: "c", Price: ptr(8.5)},
		}}
		require.NotNil(t, post.EffectivePrice())
		assert.InDelta(t, 8.5, *post.EffectivePrice(), 0.0001)
	})

	t.Run("no price anywhere", func(t *testing.T) {
		post := &Post{SubProducts: []SubProduct{{Name: "a"}}}
		assert.Nil(t, post.EffectivePrice())
	})
}

func TestPost_SellerName(t *testing.T) {
	assert.Empty(t, (&Post{}).SellerName())
	assert.Equal(t, "Green Acres", (&Post{Seller: &Profile{Name: "Sam", FarmName: "Green Acres"}}).SellerName())
	assert.Equal(t, "Sam", (&Post{Seller: &Profile{Name: "Sam"}}).SellerName())
}
