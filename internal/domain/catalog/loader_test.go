package catalog

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReaderDefaults(t *testing.T) {
	data := `[
		{"id": "a", "name": "Test Dram", "brand": "Testco", "price": "$49.99"},
		{"id": "b", "name": "Sold Out Dram", "brand": "Testco", "price": "$19.99", "inStock": false, "productType": "Rye"}
	]`

	c, err := LoadReader(strings.NewReader(data), nil)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	a, ok := c.ByID("a")
	require.True(t, ok)
	assert.Equal(t, DefaultProductType, a.ProductType)
	assert.True(t, a.InStock)
	assert.Equal(t, int64(4999), a.PriceCents)

	b, ok := c.ByID("b")
	require.True(t, ok)
	assert.Equal(t, "Rye", b.ProductType)
	assert.False(t, b.InStock)
}

func TestLoadReaderUnparseablePrice(t *testing.T) {
	data := `[{"id": "a", "name": "Mystery Dram", "brand": "Testco", "price": "Call for price"}]`

	c, err := LoadReader(strings.NewReader(data), logrus.New())
	require.NoError(t, err)

	p, ok := c.ByID("a")
	require.True(t, ok)
	assert.Equal(t, int64(0), p.PriceCents)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{
		{ID: "a", Name: "First"},
		{ID: "a", Name: "Second"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New([]Product{{Name: "No ID"}})
	require.Error(t, err)
}

func TestBrandsSortedUnique(t *testing.T) {
	c, err := New([]Product{
		{ID: "1", Brand: "Zeta"},
		{ID: "2", Brand: "Alpha"},
		{ID: "3", Brand: "Zeta"},
		{ID: "4", Brand: ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "Zeta"}, c.Brands())
}

func TestFacetCountsCoverWholeCatalog(t *testing.T) {
	c, err := New([]Product{
		{ID: "1", Brand: "A", ProductType: "Bourbon", InStock: true},
		{ID: "2", Brand: "A", ProductType: "Scotch", InStock: false},
		{ID: "3", Brand: "B", ProductType: "Bourbon", InStock: true},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Bourbon": 2, "Scotch": 1}, c.TypeCounts())
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, c.BrandCounts())
}

func TestHasDiscount(t *testing.T) {
	assert.True(t, Product{RegularPrice: "$64.99"}.HasDiscount())
	assert.False(t, Product{}.HasDiscount())
}
