package rest

import (
	"fmt"
	"strconv"
	"strings"
)

// LogisticsClient covers the logistics service under {origin}/log. As with
// payment, its operation builds a redirect URL: the ECPay convenience-store
// map is a hosted page, not an API response.
type LogisticsClient struct {
	base string
}

func NewLogistics(cfg Config) (*LogisticsClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is empty")
	}

	return &LogisticsClient{base: strings.TrimSuffix(cfg.BaseURL, "/") + "/log"}, nil
}

// CVSMapPath returns the path of the ECPay store-selection map for the given
// logistics option.
func (lc *LogisticsClient) CVSMapPath(logID int64) (string, error) {
	if logID <= 0 {
		return "", fmt.Errorf("logID[%d] is not positive", logID)
	}

	return lc.base + "/ecpay/selectCvsMap/" + strconv.FormatInt(logID, 10), nil
}
