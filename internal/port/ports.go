package port

import (
	"context"

	"github.com/minshop/storefront/internal/domain"
)

// CartService is the remote cart endpoint surface consumed by the cart store.
// Mutations return the entire updated cart, never a delta; quantity 0 on
// UpdateProduct removes the line item server-side.
type CartService interface {
	GetCart(ctx context.Context, token string) (domain.Cart, error)
	AddProduct(ctx context.Context, token, productID string, quantity int) (domain.Cart, error)
	UpdateProduct(ctx context.Context, token, productID string, quantity int) (domain.Cart, error)
}

// OrderService covers checkout and order lookup.
type OrderService interface {
	UsableOptions(ctx context.Context) (domain.CheckoutOptions, error)
	ComputeCartPrice(ctx context.Context, token string, paymentID, logisticsID int64) (domain.PriceBreakdown, error)
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.OrderRef, error)
	GetOrder(ctx context.Context, orderNumber string) (domain.Order, error)
}

// ProductService is the read-only catalogue surface.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, route string) (domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
