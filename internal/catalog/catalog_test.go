package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityPrice(t *testing.T) {
	cat := Default(false)

	t.Run("Known Activity And Option", func(t *testing.T) {
		price, err := cat.ActivityPrice("Team Building", "With Facilitator")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), price)

		price, err = cat.ActivityPrice("Bike Riding", "Adult")
		require.NoError(t, err)
		assert.Equal(t, int64(500), price)
	})

	t.Run("Unknown Activity", func(t *testing.T) {
		_, err := cat.ActivityPrice("Skydiving", "Adult")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("Unknown Option", func(t *testing.T) {
		_, err := cat.ActivityPrice("Team Building", "Quarter Day")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("Lenient Catalog Prices Unknown At Zero", func(t *testing.T) {
		lenient := Default(true)
		price, err := lenient.ActivityPrice("Skydiving", "Adult")
		require.NoError(t, err)
		assert.Equal(t, int64(0), price)
	})
}

func TestFoodAndDrinkPrices(t *testing.T) {
	cat := Default(false)

	price, err := cat.FoodPrice("Snacks")
	require.NoError(t, err)
	assert.Equal(t, int64(800), price)

	price, err = cat.DrinkPrice("Soft Drinks")
	require.NoError(t, err)
	assert.Equal(t, int64(300), price)

	_, err = cat.FoodPrice("Afternoon Tea")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestMenuPrice(t *testing.T) {
	cat := Default(false)

	t.Run("Known Item", func(t *testing.T) {
		price, err := cat.MenuPrice("Chapati")
		require.NoError(t, err)
		assert.Equal(t, int64(150), price)

		price, err = cat.MenuPrice("Beef Burger with Chips")
		require.NoError(t, err)
		assert.Equal(t, int64(550), price)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		_, err := cat.MenuPrice("Unicorn Steak")
		assert.ErrorIs(t, err, ErrUnknownKey)
	})
}

func TestAccommodationPriceKeyRules(t *testing.T) {
	cat := Default(false)

	t.Run("Pax And Bedding", func(t *testing.T) {
		price, err := cat.AccommodationPrice("Camping", true, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), price)

		price, err = cat.AccommodationPrice("Camping", false, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), price)
	})

	t.Run("Bedding Only", func(t *testing.T) {
		// Big Tent Sharing ignores pax entirely
		withBedding, err := cat.AccommodationPrice("Big Tent Sharing", true, 1)
		require.NoError(t, err)
		alsoWithBedding, err := cat.AccommodationPrice("Big Tent Sharing", true, 8)
		require.NoError(t, err)
		assert.Equal(t, withBedding, alsoWithBedding)
		assert.Equal(t, int64(1500), withBedding)

		without, err := cat.AccommodationPrice("Big Tent Sharing", false, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), without)
	})

	t.Run("Fixed Key", func(t *testing.T) {
		// Cabins price the same regardless of bedding and pax
		a, err := cat.AccommodationPrice("Cabins", true, 2)
		require.NoError(t, err)
		b, err := cat.AccommodationPrice("Cabins", false, 6)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, int64(3000), a)
	})

	t.Run("Unknown Variant", func(t *testing.T) {
		_, err := cat.AccommodationPrice("Camping", true, 7)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		_, err := cat.AccommodationPrice("Igloo", true, 2)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})
}

func TestAccommodationTypesSorted(t *testing.T) {
	cat := Default(false)
	types := cat.AccommodationTypes()

	require.NotEmpty(t, types)
	assert.Contains(t, types, "Camping")
	assert.Contains(t, types, "Cabins")
	assert.IsIncreasing(t, types)
}

func TestHasGround(t *testing.T) {
	cat := Default(false)

	assert.True(t, cat.HasGround("Tulia"))
	assert.True(t, cat.HasGround("Zohari"))
	assert.False(t, cat.HasGround("Central Park"))
}

func TestPriceKey(t *testing.T) {
	paxBedding := AccommodationType{Rule: KeyPaxBedding}
	assert.Equal(t, "2 Pax With Bedding", paxBedding.PriceKey(true, 2))
	assert.Equal(t, "1 Pax Without Bedding", paxBedding.PriceKey(false, 1))

	beddingOnly := AccommodationType{Rule: KeyBedding}
	assert.Equal(t, "With Bedding", beddingOnly.PriceKey(true, 5))
	assert.Equal(t, "Without Bedding", beddingOnly.PriceKey(false, 5))

	fixed := AccommodationType{Rule: KeyFixed, FixedKey: "Standard"}
	assert.Equal(t, "Standard", fixed.PriceKey(true, 2))
	assert.Equal(t, "Standard", fixed.PriceKey(false, 9))
}
