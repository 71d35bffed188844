// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
)

// Customer holds the contact and shipping fields from the checkout form
type Customer struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zip_code"`
	Country             string `json:"country"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Order is a submitted order: the cart's line items frozen at submission time
// plus the computed total and customer details.
type Order struct {
	Number     string          `json:"number"`
	Customer   Customer        `json:"customer"`
	Items      []cart.LineItem `json:"items"`
	TotalCents int64           `json:"total_cents"`
	CreatedAt  time.Time       `json:"created_at"`
}
