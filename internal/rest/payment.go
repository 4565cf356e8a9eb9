package rest

import (
	"fmt"
	"net/url"
	"strings"
)

// PaymentClient covers the payment service under {origin}/pay. Its only
// operation builds a browser redirect URL; no request is issued from here —
// the user agent is sent to the third-party payment page directly.
type PaymentClient struct {
	base string
}

func NewPayment(cfg Config) (*PaymentClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is empty")
	}

	return &PaymentClient{base: strings.TrimSuffix(cfg.BaseURL, "/") + "/pay"}, nil
}

// PaymentPagePath returns the path a browser should be sent to in order to
// pay the given order through the third-party gateway.
func (pc *PaymentClient) PaymentPagePath(orderNumber string) (string, error) {
	if orderNumber == "" {
		return "", fmt.Errorf("orderNumber is empty")
	}

	return pc.base + "/toPaymentHtml/" + url.PathEscape(orderNumber), nil
}
