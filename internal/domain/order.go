package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOption is one usable payment method offered at checkout.
type PaymentOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LogisticsOption is one usable shipping method offered at checkout.
// IsCVS marks convenience-store pickup, which requires a store selection via
// the logistics service's CVS map.
type LogisticsOption struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Fee   decimal.Decimal `json:"fee"`
	IsCVS bool            `json:"isCvs"`
}

// CheckoutOptions pairs the payment and logistics choices currently usable
// for an order.
type CheckoutOptions struct {
	Payments  []PaymentOption   `json:"payments"`
	Logistics []LogisticsOption `json:"logistics"`
}

// PriceBreakdown is the order service's answer to "what would this cart cost
// with these payment and logistics choices".
type PriceBreakdown struct {
	ItemsTotal   Money
	PaymentFee   Money
	LogisticsFee Money
	Total        Money
}

// OrderDraft is the payload sent to create an order from the current cart.
type OrderDraft struct {
	Token       string `json:"token"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PaymentID   int64  `json:"paymentId"`
	LogisticsID int64  `json:"logisticsId"`
	// CVSStoreID is set only for convenience-store pickup.
	CVSStoreID string `json:"cvsStoreId,omitempty"`
}

// OrderRef identifies a freshly created order.
type OrderRef struct {
	OrderNumber string `json:"orderNumber"`
}

// Order is the detail view returned by order lookup.
type Order struct {
	OrderNumber string        `json:"orderNumber"`
	Status      string        `json:"status"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Products    []CartProduct `json:"orderProducts"`
	Total       Money
	CreatedAt   time.Time `json:"createdAt"`
}
