package domain

import "github.com/shopspring/decimal"

// Product as listed by the product service. Only ID and Price participate in
// cart arithmetic; the remaining fields are display data passed through to
// views untouched.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Route       string          `json:"route"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
