package entity

// Product is one normalized catalog row. The catalog loader owns all coercion:
// by the time a Product exists, Price and Quantity are guaranteed non-negative.
type Product struct {
	Id           string
	Name         string
	Description  string
	Price        int
	Quantity     int
	CategoryPath string
	ProductURL   string
	ImageURL     string

	// SearchText is Name + Description, precomputed once at load time.
	// All keyword and vocabulary matching runs against this field.
	SearchText string
}
