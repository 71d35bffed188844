package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    int64
	}{
		{"plain dollar price", "$49.99", 4999},
		{"thousands separator", "$1,049.99", 104999},
		{"whole dollars", "$130", 13000},
		{"no currency symbol", "27.99", 2799},
		{"surrounding text", "Now only $15.49!", 1549},
		{"empty string", "", 0},
		{"no digits at all", "Call for price", 0},
		{"save label parses to its number", "Save $150", 15000},
		{"zero", "$0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCents(tt.display))
		})
	}
}

func TestSurchargeCents(t *testing.T) {
	assert.Equal(t, int64(0), Options{}.SurchargeCents())

	// Gift messages never cost anything
	assert.Equal(t, int64(0), Options{GiftMessage: true}.SurchargeCents())

	assert.Equal(t, GiftWrappingCents, Options{GiftWrapping: true}.SurchargeCents())
	assert.Equal(t, EngravingCents, Options{Engraving: true}.SurchargeCents())
	assert.Equal(t, InsuranceCents, Options{Insurance: true}.SurchargeCents())
	assert.Equal(t, ExpressShippingCents, Options{ExpressShipping: true}.SurchargeCents())

	all := Options{
		GiftWrapping:    true,
		GiftMessage:     true,
		Engraving:       true,
		Insurance:       true,
		ExpressShipping: true,
	}
	assert.Equal(t, int64(599+1599+299+999), all.SurchargeCents())
}

func TestLineTotalCents(t *testing.T) {
	// Bare bottle
	assert.Equal(t, int64(4999), LineTotalCents(4999, Options{}, 1))

	// Surcharges multiply with quantity: ($49.99 + $15.99) * 2 = $131.96
	total := LineTotalCents(4999, Options{Engraving: true}, 2)
	assert.Equal(t, int64(13196), total)
	assert.Equal(t, "$131.96", FormatCents(total))

	// Large quantities stay exact in integer cents
	assert.Equal(t, int64(100*(2799+599)), LineTotalCents(2799, Options{GiftWrapping: true}, 100))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$27.99", FormatCents(2799))
	assert.Equal(t, "$1049.99", FormatCents(104999))
}
