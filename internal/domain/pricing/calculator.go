// internal/domain/pricing/calculator.go
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Per-line add-on surcharges in cents. Gift messages are free.
const (
	GiftWrappingCents    int64 = 599
	EngravingCents       int64 = 1599
	InsuranceCents       int64 = 299
	ExpressShippingCents int64 = 999
)

// Options represents the independent add-ons a customer can select per line item
type Options struct {
	GiftWrapping    bool `json:"giftWrapping,omitempty"`
	GiftMessage     bool `json:"giftMessage,omitempty"`
	Engraving       bool `json:"engraving,omitempty"`
	Insurance       bool `json:"insurance,omitempty"`
	ExpressShipping bool `json:"expressShipping,omitempty"`
}

// SurchargeCents returns the total add-on surcharge for the selected options
func (o Options) SurchargeCents() int64 {
	var total int64
	if o.GiftWrapping {
		total += GiftWrappingCents
	}
	if o.Engraving {
		total += EngravingCents
	}
	if o.Insurance {
		total += InsuranceCents
	}
	if o.ExpressShipping {
		total += ExpressShippingCents
	}
	return total
}

// ParseCents extracts a price in cents from a display string such as "$49.99".
// Every character except digits and '.' is stripped before parsing. Strings
// that yield no number degrade to 0; catalog display strings are the sole
// source of truth for price, so the same rule applies wherever a price is
// compared or summed. A "Save $150" style label parses to a non-representative
// number; that is upstream data quality, not something this function repairs.
func ParseCents(display string) int64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}

	return int64(math.Round(value * 100))
}

// LineTotalCents computes (unit price + selected surcharges) * quantity
func LineTotalCents(unitCents int64, opts Options, quantity int) int64 {
	return (unitCents + opts.SurchargeCents()) * int64(quantity)
}

// FormatCents renders a cent amount as a dollar display string, e.g. "$131.96"
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
