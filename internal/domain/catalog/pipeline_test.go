package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Product{
		{ID: "1", Name: "Angel Hill Bourbon", Brand: "Angel Hill", ProductType: "Bourbon", PriceCents: 2999, InStock: true},
		{ID: "2", Name: "Coastal Peat Single Malt", Brand: "Coastal", ProductType: "Scotch", PriceCents: 10999, InStock: true},
		{ID: "3", Name: "Barrel House Rye", Brand: "Barrel House", ProductType: "Rye", PriceCents: 3999, InStock: false},
		{ID: "4", Name: "Angel Hill Reserve", Brand: "Angel Hill", ProductType: "Bourbon", PriceCents: 7999, InStock: true},
		{ID: "5", Name: "Drumlin 12 Year", Brand: "Drumlin", ProductType: "Scotch", PriceCents: 5499, InStock: true},
		{ID: "6", Name: "Drumlin 18 Year", Brand: "Drumlin", ProductType: "Scotch", PriceCents: 18999, InStock: false},
	})
	require.NoError(t, err)
	return c
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestPaginateNoFilters(t *testing.T) {
	c := testCatalog(t)

	result := c.Paginate(FilterState{Page: 1})

	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(result.Products))
	assert.False(t, result.HasNext())
	assert.False(t, result.HasPrev())
}

func TestPaginateFilters(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{
			name:  "single type",
			state: FilterState{Types: []string{"Bourbon"}, Page: 1},
			want:  []string{"1", "4"},
		},
		{
			name:  "values within a facet are OR'd",
			state: FilterState{Types: []string{"Bourbon", "Rye"}, Page: 1},
			want:  []string{"1", "3", "4"},
		},
		{
			name:  "facets are AND'd",
			state: FilterState{Types: []string{"Scotch"}, Brands: []string{"Drumlin"}, Page: 1},
			want:  []string{"5", "6"},
		},
		{
			name:  "price bounds are inclusive",
			state: FilterState{MinPriceCents: 3999, MaxPriceCents: 7999, Page: 1},
			want:  []string{"3", "4", "5"},
		},
		{
			name:  "in stock only",
			state: FilterState{InStockOnly: true, Page: 1},
			want:  []string{"1", "2", "4", "5"},
		},
		{
			name:  "all facets combined",
			state: FilterState{Types: []string{"Scotch"}, MaxPriceCents: 6000, InStockOnly: true, Page: 1},
			want:  []string{"5"},
		},
		{
			name:  "no matches",
			state: FilterState{Brands: []string{"Nonexistent"}, Page: 1},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Paginate(tt.state)
			assert.Equal(t, tt.want, func() []string {
				if len(result.Products) == 0 {
					return nil
				}
				return ids(result.Products)
			}())
			assert.Equal(t, len(tt.want), result.Total)
		})
	}
}

func TestPaginateSorting(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		sort SortKey
		want []string
	}{
		{SortFeatured, []string{"1", "2", "3", "4", "5", "6"}},
		{SortPriceLow, []string{"1", "3", "5", "4", "2", "6"}},
		{SortPriceHigh, []string{"6", "2", "4", "5", "3", "1"}},
		{SortNameAsc, []string{"1", "4", "3", "2", "5", "6"}},
		{SortNameDesc, []string{"6", "5", "2", "3", "4", "1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			result := c.Paginate(FilterState{Sort: tt.sort, Page: 1})
			assert.Equal(t, tt.want, ids(result.Products))
		})
	}
}

func TestPaginateStableSortKeepsCatalogOrderOnTies(t *testing.T) {
	c, err := New([]Product{
		{ID: "a", Name: "Same Price A", PriceCents: 5000, InStock: true},
		{ID: "b", Name: "Same Price B", PriceCents: 5000, InStock: true},
		{ID: "c", Name: "Same Price C", PriceCents: 5000, InStock: true},
	})
	require.NoError(t, err)

	result := c.Paginate(FilterState{Sort: SortPriceLow, Page: 1})
	assert.Equal(t, []string{"a", "b", "c"}, ids(result.Products))
}

func TestPaginatePaging(t *testing.T) {
	products := make([]Product, 30)
	for i := range products {
		products[i] = Product{
			ID:         fmt.Sprintf("p%02d", i),
			Name:       fmt.Sprintf("Bottle %02d", i),
			PriceCents: int64(1000 + i),
			InStock:    true,
		}
	}
	c, err := New(products)
	require.NoError(t, err)

	page1 := c.Paginate(FilterState{Page: 1})
	assert.Equal(t, PageSize, len(page1.Products))
	assert.Equal(t, 30, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.True(t, page1.HasNext())
	assert.False(t, page1.HasPrev())
	assert.Equal(t, "p00", page1.Products[0].ID)

	page2 := c.Paginate(FilterState{Page: 2})
	assert.Equal(t, 6, len(page2.Products))
	assert.Equal(t, "p24", page2.Products[0].ID)
	assert.False(t, page2.HasNext())
	assert.True(t, page2.HasPrev())

	// Out-of-range pages are never clamped; they return an empty page with
	// the same totals.
	page9 := c.Paginate(FilterState{Page: 9})
	assert.Empty(t, page9.Products)
	assert.Equal(t, 30, page9.Total)
	assert.Equal(t, 2, page9.TotalPages)
	assert.Equal(t, 9, page9.Page)
}

func TestPaginateIsPure(t *testing.T) {
	c := testCatalog(t)
	state := FilterState{Types: []string{"Scotch"}, Sort: SortPriceLow, Page: 1}

	first := c.Paginate(state)
	second := c.Paginate(state)
	assert.Equal(t, ids(first.Products), ids(second.Products))

	// Sorting a filtered page must not reorder the underlying catalog
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(c.Products()))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortNameDesc, ParseSortKey("name-desc"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("garbage"))
}
