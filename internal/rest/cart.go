package rest

import (
	"context"
	"fmt"

	"github.com/minshop/storefront/internal/domain"
)

// CartClient talks to the cart service under {origin}/cart. Every mutation
// returns the entire updated cart; there are no delta responses.
type CartClient struct {
	c caller
}

func NewCart(cfg Config) (*CartClient, error) {
	c, err := cfg.caller("/cart")
	if err != nil {
		return nil, fmt.Errorf("cfg.caller: %w", err)
	}

	return &CartClient{c: c}, nil
}

type cartLookup struct {
	Token string `json:"token"`
}

type cartMutation struct {
	Token     string `json:"token"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (cc *CartClient) GetCart(ctx context.Context, token string) (domain.Cart, error) {
	if token == "" {
		return domain.Cart{}, fmt.Errorf("token is empty")
	}

	var cart domain.Cart
	if err := cc.c.post(ctx, "/get", cartLookup{Token: token}, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("c.post: %w", err)
	}

	return cart, nil
}

// AddProduct adds quantity units of a product. An empty token is permitted:
// the service allocates a new cart and returns its token.
func (cc *CartClient) AddProduct(ctx context.Context, token, productID string, quantity int) (domain.Cart, error) {
	if productID == "" {
		return domain.Cart{}, fmt.Errorf("productID is empty")
	}
	if quantity <= 0 {
		return domain.Cart{}, fmt.Errorf("quantity[%d] is not positive", quantity)
	}

	var cart domain.Cart
	req := cartMutation{Token: token, ProductID: productID, Quantity: quantity}
	if err := cc.c.post(ctx, "/addProduct", req, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("c.post: %w", err)
	}

	return cart, nil
}

// UpdateProduct sets a line item's quantity. Quantity 0 removes the line
// item server-side.
func (cc *CartClient) UpdateProduct(ctx context.Context, token, productID string, quantity int) (domain.Cart, error) {
	if token == "" {
		return domain.Cart{}, fmt.Errorf("token is empty")
	}
	if productID == "" {
		return domain.Cart{}, fmt.Errorf("productID is empty")
	}
	if quantity < 0 {
		return domain.Cart{}, fmt.Errorf("quantity[%d] is negative", quantity)
	}

	var cart domain.Cart
	req := cartMutation{Token: token, ProductID: productID, Quantity: quantity}
	if err := cc.c.put(ctx, "/updateQuantity", req, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("c.put: %w", err)
	}

	return cart, nil
}
