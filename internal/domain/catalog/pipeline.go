// internal/domain/catalog/pipeline.go
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of products per collection page
const PageSize = 24

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a query-string value onto a sort key, falling back to
// featured order for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// FilterState captures the collection page's facet selections. Values within
// a facet are OR'd; facets are AND'd against each other. Price bounds are
// inclusive and expressed in cents; a zero MaxPriceCents means unbounded.
// Page is 1-based; callers reset it to 1 whenever any other field changes.
type FilterState struct {
	Types         []string
	Brands        []string
	MinPriceCents int64
	MaxPriceCents int64
	InStockOnly   bool
	Sort          SortKey
	Page          int
}

// PageResult is one page of the filtered, sorted catalog plus its totals
type PageResult struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// HasNext reports whether a later page exists
func (r PageResult) HasNext() bool { return r.Page < r.TotalPages }

// HasPrev reports whether an earlier page exists
func (r PageResult) HasPrev() bool { return r.Page > 1 }

// Paginate applies the filter state to the catalog and returns the requested
// page. The pipeline is a pure function of (catalog, state): filtering order
// is irrelevant because every predicate is independent, sorting is stable so
// equal keys keep catalog order, and an out-of-range page yields an empty
// slice with correct totals rather than an error. The pipeline never clamps
// the page number.
func (c *Catalog) Paginate(state FilterState) PageResult {
	filtered := c.filter(state)
	sortProducts(filtered, state.Sort)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := state.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult{
		Products:   filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   PageSize,
	}
}

func (c *Catalog) filter(state FilterState) []Product {
	types := toSet(state.Types)
	brands := toSet(state.Brands)

	var filtered []Product
	for _, p := range c.products {
		if len(types) > 0 {
			if _, ok := types[p.ProductType]; !ok {
				continue
			}
		}

		if len(brands) > 0 {
			if _, ok := brands[p.Brand]; !ok {
				continue
			}
		}

		if p.PriceCents < state.MinPriceCents {
			continue
		}
		if state.MaxPriceCents > 0 && p.PriceCents > state.MaxPriceCents {
			continue
		}

		if state.InStockOnly && !p.InStock {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	case SortNameAsc:
		cl := collate.New(language.AmericanEnglish)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		cl := collate.New(language.AmericanEnglish)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) > 0
		})
	default:
		// featured: catalog insertion order preserved
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
