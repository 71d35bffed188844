// internal/domain/catalog/loader.go
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/sirupsen/logrus"
)

// Catalog is the static, read-only ordered sequence of products loaded once
// per process. It is never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// rawProduct mirrors the JSON catalog file, where inStock and productType may
// be absent entirely. Absence of inStock counts as in stock.
type rawProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Price        string `json:"price"`
	RegularPrice string `json:"regularPrice"`
	ProductType  string `json:"productType"`
	InStock      *bool  `json:"inStock"`
	Description  string `json:"description"`
	Highlights   string `json:"highlights"`
	TastingNotes string `json:"tastingNotes"`
	ABV          string `json:"abv"`
	Volume       string `json:"volume"`
	Distillery   string `json:"distillery"`
	ImageURL     string `json:"imageUrl"`
	Link         string `json:"link"`
}

// Load reads the catalog JSON file at path
func Load(path string, log *logrus.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	catalog, err := LoadReader(f, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	return catalog, nil
}

// LoadReader decodes a catalog from JSON, applies field defaults, normalizes
// display prices to cents and verifies ID uniqueness. Unparseable prices
// degrade to 0 with a warning; they are a known upstream data-quality issue
// and must stay visible, not be silently repaired.
func LoadReader(r io.Reader, log *logrus.Logger) (*Catalog, error) {
	var raw []rawProduct
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}

	products := make([]Product, 0, len(raw))
	for _, rp := range raw {
		p := Product{
			ID:           rp.ID,
			Name:         rp.Name,
			Brand:        rp.Brand,
			Price:        rp.Price,
			RegularPrice: rp.RegularPrice,
			ProductType:  rp.ProductType,
			InStock:      rp.InStock == nil || *rp.InStock,
			Description:  rp.Description,
			Highlights:   rp.Highlights,
			TastingNotes: rp.TastingNotes,
			ABV:          rp.ABV,
			Volume:       rp.Volume,
			Distillery:   rp.Distillery,
			ImageURL:     rp.ImageURL,
			Link:         rp.Link,
		}

		if p.ProductType == "" {
			p.ProductType = DefaultProductType
		}

		p.PriceCents = pricing.ParseCents(p.Price)
		if p.PriceCents == 0 && log != nil {
			log.WithFields(logrus.Fields{
				"product_id": p.ID,
				"price":      p.Price,
			}).Warn("Product price did not parse to a usable amount")
		}

		products = append(products, p)
	}

	return New(products)
}

// New builds a catalog from already-normalized products
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog", p.ID)
		}
		byID[p.ID] = i
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Products returns the catalog in insertion ("featured") order. Callers must
// not modify the returned slice.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product by its identifier
func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Brands returns the sorted set of distinct brands in the catalog
func (c *Catalog) Brands() []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, p := range c.products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

// TypeCounts returns product counts per type over the whole catalog. Facet
// labels always reflect the unfiltered catalog, not the current result set.
func (c *Catalog) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.products {
		counts[p.ProductType]++
	}
	return counts
}

// BrandCounts returns product counts per brand over the whole catalog
func (c *Catalog) BrandCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.products {
		if p.Brand != "" {
			counts[p.Brand]++
		}
	}
	return counts
}
