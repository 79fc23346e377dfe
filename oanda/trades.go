package oanda

import (
	"context"
	"errors"
)

// TradeRecord is an open trade exactly as the API returned it. The field
// names in trade payloads are not stable across serializers (currentUnits
// vs units, unrealizedPL vs unrealized_pl), so trades are surfaced as raw
// mappings and normalized downstream.
type TradeRecord map[string]any

type openTradesResponse struct {
	Trades            []TradeRecord `json:"trades"`
	LastTransactionID string        `json:"lastTransactionID"`
}

// GetOpenTrades returns the account's open trades in the order the API
// lists them.
func (c *Client) GetOpenTrades(ctx context.Context, accountID string) ([]TradeRecord, error) {
	if accountID == "" {
		return nil, errors.New("account id is required")
	}
	var resp openTradesResponse
	if err := c.get(ctx, "/v3/accounts/"+accountID+"/openTrades", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Trades, nil
}
