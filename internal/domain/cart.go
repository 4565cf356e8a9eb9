package domain

import (
	"github.com/shopspring/decimal"
)

// Cart is the shared shopping cart entity as returned by the cart service.
// A fresh, never-persisted cart has a nil ID and an empty Token; the remote
// service assigns both together on the first successful mutation.
type Cart struct {
	ID       *int64        `json:"id"`
	Token    string        `json:"token"`
	Products []CartProduct `json:"cartProducts"`
}

// CartProduct is one line item: a product reference with a quantity.
type CartProduct struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// EmptyCart returns the default state used before any cart exists.
func EmptyCart() Cart {
	return Cart{ID: nil, Token: "", Products: []CartProduct{}}
}

// TotalPrice sums price × quantity over all line items. It is recomputed on
// every call and never stored, so it cannot drift from the line items.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Products {
		total = total.Add(p.Product.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// ItemCount is the number of distinct line items, not the sum of quantities.
func (c Cart) ItemCount() int {
	return len(c.Products)
}

// Clean returns a copy with zero-quantity line items dropped. Applied when a
// server snapshot replaces the local one: quantity 0 means "removed" and must
// not survive reconciliation.
func (c Cart) Clean() Cart {
	products := make([]CartProduct, 0, len(c.Products))
	for _, p := range c.Products {
		if p.Quantity > 0 {
			products = append(products, p)
		}
	}
	c.Products = products
	return c
}
