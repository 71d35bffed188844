// internal/domain/catalog/entity.go
package catalog

// DefaultProductType is assumed when a catalog record carries no type tag.
const DefaultProductType = "Whiskey"

// Product represents one immutable catalog record. Price keeps the scraped
// display string; PriceCents is normalized from it once at load time and is
// what every comparison and sum uses.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Price        string `json:"price"`
	RegularPrice string `json:"regularPrice,omitempty"` // presence signals an active discount
	ProductType  string `json:"productType,omitempty"`
	InStock      bool   `json:"inStock"`
	Description  string `json:"description,omitempty"`
	Highlights   string `json:"highlights,omitempty"`
	TastingNotes string `json:"tastingNotes,omitempty"`
	ABV          string `json:"abv,omitempty"`
	Volume       string `json:"volume,omitempty"`
	Distillery   string `json:"distillery,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Link         string `json:"link,omitempty"`

	PriceCents int64 `json:"price_cents"`
}

// HasDiscount reports whether the record carries a regular price, which the
// storefront treats as an active markdown.
func (p Product) HasDiscount() bool {
	return p.RegularPrice != ""
}
