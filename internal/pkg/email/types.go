// internal/pkg/email/types.go
package email

// Email represents one outbound message
type Email struct {
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"html_content"`
}

// OrderItemLine is one rendered row of an order email's item table
type OrderItemLine struct {
	Name      string
	Brand     string
	Quantity  int
	LineTotal string
}

// OrderEmailData feeds the order confirmation and store notification templates
type OrderEmailData struct {
	SiteName            string
	OrderNumber         string
	OrderDate           string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Address             string
	City                string
	State               string
	ZipCode             string
	Country             string
	SpecialInstructions string
	Items               []OrderItemLine
	Total               string
	SupportEmail        string
	Year                int
}
