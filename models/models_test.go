package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	for _, bad := range []string{"", "Admin", "vendor", " customer"} {
		_, err := ParseRole(bad)
		assert.ErrorIs(t, err, ErrInvalidRole, bad)
	}
}

func TestParseServiceTab(t *testing.T) {
	got, err := ParseServiceTab("handyman")
	require.NoError(t, err)
	assert.Equal(t, TabHandyman, got)

	_, err = ParseServiceTab("pharmacy")
	assert.ErrorIs(t, err, ErrInvalidTab)
}

func TestDefaultUIState(t *testing.T) {
	ui := DefaultUIState()
	assert.Equal(t, TabGrocery, ui.ServiceTab)
	assert.False(t, ui.MenuOpen)
	assert.Equal(t, CabForm{}, ui.Cab)
}

func TestStoreIsGroceryIsExact(t *testing.T) {
	assert.True(t, Store{Category: "grocery"}.IsGrocery())
	assert.False(t, Store{Category: "Grocery"}.IsGrocery())
	assert.False(t, Store{Category: "grocery "}.IsGrocery())
	assert.False(t, Store{}.IsGrocery())
}

func TestProductLowStockAndCover(t *testing.T) {
	assert.True(t, Product{Stock: 9}.LowStock())
	assert.False(t, Product{Stock: 10}.LowStock())
	assert.Equal(t, PlaceholderImage, Product{}.CoverImage())
	assert.Equal(t, "x.jpg", Product{Images: []string{"x.jpg", "y.jpg"}}.CoverImage())
}

func TestEstimateFare(t *testing.T) {
	c := CabService{BaseFare: 50, PricePerKm: 12}
	assert.InDelta(t, 110, c.EstimateFare(5), 1e-9)
	assert.InDelta(t, 50, c.EstimateFare(-3), 1e-9)
}

func TestSnapshotIsEmpty(t *testing.T) {
	assert.True(t, Snapshot{}.IsEmpty())
	assert.True(t, Snapshot{Products: []Product{{ID: "p"}}}.IsEmpty())
	assert.False(t, Snapshot{FetchedAt: time.Now()}.IsEmpty())
}
