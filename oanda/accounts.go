package oanda

import (
	"context"
	"errors"
)

// AccountProperties is one entry from the GET /v3/accounts listing.
type AccountProperties struct {
	ID           string   `json:"id"`
	MT4AccountID int      `json:"mt4AccountID,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type accountsResponse struct {
	Accounts []AccountProperties `json:"accounts"`
}

// ListAccounts returns the accounts the token is authorized for.
func (c *Client) ListAccounts(ctx context.Context) ([]AccountProperties, error) {
	var resp accountsResponse
	if err := c.get(ctx, "/v3/accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// AccountSummary mirrors the v20 account summary payload. Decimal fields
// stay as the API's strings; callers parse what they need.
type AccountSummary struct {
	ID                string `json:"id"`
	Alias             string `json:"alias"`
	Currency          string `json:"currency"`
	Balance           string `json:"balance"`
	NAV               string `json:"NAV"`
	UnrealizedPL      string `json:"unrealizedPL"`
	MarginUsed        string `json:"marginUsed"`
	MarginAvailable   string `json:"marginAvailable"`
	OpenTradeCount    int    `json:"openTradeCount"`
	OpenPositionCount int    `json:"openPositionCount"`
	PendingOrderCount int    `json:"pendingOrderCount"`
}

type accountSummaryResponse struct {
	Account           AccountSummary `json:"account"`
	LastTransactionID string         `json:"lastTransactionID"`
}

// GetAccountSummary returns the summary for one account.
func (c *Client) GetAccountSummary(ctx context.Context, accountID string) (AccountSummary, error) {
	if accountID == "" {
		return AccountSummary{}, errors.New("account id is required")
	}
	var resp accountSummaryResponse
	if err := c.get(ctx, "/v3/accounts/"+accountID+"/summary", nil, &resp); err != nil {
		return AccountSummary{}, err
	}
	return resp.Account, nil
}
