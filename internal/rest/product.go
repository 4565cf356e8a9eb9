package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/minshop/storefront/internal/domain"
)

// ProductClient is the read-only catalogue client. Product lookups are keyed
// by a human-readable route slug rather than a numeric id.
type ProductClient struct {
	c caller
}

func NewProduct(cfg Config) (*ProductClient, error) {
	c, err := cfg.caller("")
	if err != nil {
		return nil, fmt.Errorf("cfg.caller: %w", err)
	}

	return &ProductClient{c: c}, nil
}

func (pc *ProductClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := pc.c.get(ctx, "/product", &products); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	return products, nil
}

func (pc *ProductClient) GetProduct(ctx context.Context, route string) (domain.Product, error) {
	if route == "" {
		return domain.Product{}, fmt.Errorf("route is empty")
	}

	var product domain.Product
	if err := pc.c.get(ctx, "/product/"+url.PathEscape(route), &product); err != nil {
		return domain.Product{}, fmt.Errorf("c.get: %w", err)
	}

	return product, nil
}

func (pc *ProductClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := pc.c.get(ctx, "/product/categories", &categories); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	return categories, nil
}

func (pc *ProductClient) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("category is empty")
	}

	var products []domain.Product
	if err := pc.c.get(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	return products, nil
}
