package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minshop/storefront/internal/domain"
)

// OrderClient talks to the order service under {origin}/order.
type OrderClient struct {
	c caller
}

func NewOrder(cfg Config) (*OrderClient, error) {
	c, err := cfg.caller("/order")
	if err != nil {
		return nil, fmt.Errorf("cfg.caller: %w", err)
	}

	return &OrderClient{c: c}, nil
}

func (oc *OrderClient) UsableOptions(ctx context.Context) (domain.CheckoutOptions, error) {
	var options domain.CheckoutOptions
	if err := oc.c.post(ctx, "/check/getUsablePaymentAndLogistics", nil, &options); err != nil {
		return domain.CheckoutOptions{}, fmt.Errorf("c.post: %w", err)
	}

	return options, nil
}

type computePriceRequest struct {
	Token       string `json:"token"`
	PaymentID   int64  `json:"paymentId"`
	LogisticsID int64  `json:"logisticsId"`
}

type priceBreakdownRow struct {
	ItemsTotal   decimal.Decimal `json:"itemsTotal"`
	PaymentFee   decimal.Decimal `json:"paymentFee"`
	LogisticsFee decimal.Decimal `json:"logisticsFee"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
}

// ComputeCartPrice asks the order service what the cart costs including the
// fees of the chosen payment and logistics options.
func (oc *OrderClient) ComputeCartPrice(ctx context.Context, token string, paymentID, logisticsID int64) (domain.PriceBreakdown, error) {
	if token == "" {
		return domain.PriceBreakdown{}, fmt.Errorf("token is empty")
	}

	var row priceBreakdownRow
	req := computePriceRequest{Token: token, PaymentID: paymentID, LogisticsID: logisticsID}
	if err := oc.c.post(ctx, "/check/computeCartPrice", req, &row); err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("c.post: %w", err)
	}

	breakdown, err := mapPriceBreakdownToDomain(row)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("mapPriceBreakdownToDomain: %w", err)
	}

	return breakdown, nil
}

func (oc *OrderClient) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.OrderRef, error) {
	if draft.Token == "" {
		return domain.OrderRef{}, fmt.Errorf("draft token is empty")
	}

	var ref domain.OrderRef
	if err := oc.c.post(ctx, "/create", draft, &ref); err != nil {
		return domain.OrderRef{}, fmt.Errorf("c.post: %w", err)
	}

	return ref, nil
}

type orderRow struct {
	OrderNumber string               `json:"orderNumber"`
	Status      string               `json:"status"`
	Name        string               `json:"name"`
	Address     string               `json:"address"`
	Products    []domain.CartProduct `json:"orderProducts"`
	Total       decimal.Decimal      `json:"total"`
	Currency    string               `json:"currency"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func (oc *OrderClient) GetOrder(ctx context.Context, orderNumber string) (domain.Order, error) {
	if orderNumber == "" {
		return domain.Order{}, fmt.Errorf("orderNumber is empty")
	}

	var row orderRow
	if err := oc.c.get(ctx, "/get/"+url.PathEscape(orderNumber), &row); err != nil {
		return domain.Order{}, fmt.Errorf("c.get: %w", err)
	}

	order, err := mapOrderRowToDomain(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderRowToDomain: %w", err)
	}

	return order, nil
}

func mapPriceBreakdownToDomain(row priceBreakdownRow) (domain.PriceBreakdown, error) {
	amounts := []decimal.Decimal{row.ItemsTotal, row.PaymentFee, row.LogisticsFee, row.Total}
	monies := make([]domain.Money, 0, len(amounts))

	for _, amount := range amounts {
		money, err := domain.NewMoney(amount, row.Currency)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("domain.NewMoney: %w", err)
		}
		monies = append(monies, money)
	}

	return domain.PriceBreakdown{
		ItemsTotal:   monies[0],
		PaymentFee:   monies[1],
		LogisticsFee: monies[2],
		Total:        monies[3],
	}, nil
}

func mapOrderRowToDomain(row orderRow) (domain.Order, error) {
	total, err := domain.NewMoney(row.Total, row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.NewMoney: %w", err)
	}

	return domain.Order{
		OrderNumber: row.OrderNumber,
		Status:      row.Status,
		Name:        row.Name,
		Address:     row.Address,
		Products:    row.Products,
		Total:       total,
		CreatedAt:   row.CreatedAt,
	}, nil
}
