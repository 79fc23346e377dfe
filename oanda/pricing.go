package oanda

import (
	"context"
	"errors"
	"strings"
)

// PriceBucket is one depth level of a client price.
type PriceBucket struct {
	Price     string `json:"price"`
	Liquidity int64  `json:"liquidity"`
}

// ClientPrice is the current price of one instrument as quoted to the
// account.
type ClientPrice struct {
	Instrument  string        `json:"instrument"`
	Time        string        `json:"time"`
	Tradeable   bool          `json:"tradeable"`
	Bids        []PriceBucket `json:"bids"`
	Asks        []PriceBucket `json:"asks"`
	CloseoutBid string        `json:"closeoutBid"`
	CloseoutAsk string        `json:"closeoutAsk"`
}

type pricingResponse struct {
	Prices []ClientPrice `json:"prices"`
}

// GetPricing returns a pricing snapshot for the given instruments.
func (c *Client) GetPricing(ctx context.Context, accountID string, instruments []string) ([]ClientPrice, error) {
	if accountID == "" {
		return nil, errors.New("account id is required")
	}
	if len(instruments) == 0 {
		return nil, errors.New("at least one instrument is required")
	}

	opts := map[string]string{
		"instruments": strings.Join(instruments, ","),
	}
	var resp pricingResponse
	if err := c.get(ctx, "/v3/accounts/"+accountID+"/pricing", opts, &resp); err != nil {
		return nil, err
	}
	return resp.Prices, nil
}
