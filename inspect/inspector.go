package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fxwatch/fxwatch/oanda"
)

// TradesSource is the account-client surface the inspector needs.
type TradesSource interface {
	GetOpenTrades(ctx context.Context, accountID string) ([]oanda.TradeRecord, error)
}

// PricingSource optionally supplies current prices for the report.
type PricingSource interface {
	GetPricing(ctx context.Context, accountID string, instruments []string) ([]oanda.ClientPrice, error)
}

// Inspector fetches an account's open trades and renders a report of
// their attached take-profit/stop-loss orders.
type Inspector struct {
	Source  TradesSource
	Pricing PricingSource // nil skips pricing enrichment
	Out     io.Writer     // nil defaults to stdout
	Log     *logrus.Logger
}

func (ins *Inspector) logger() *logrus.Logger {
	if ins.Log != nil {
		return ins.Log
	}
	return logrus.StandardLogger()
}

// InspectAll fetches the open trades on accountID, renders the report to
// Out, and returns it for journaling. Fetch failures are returned
// annotated but unhandled; there is no retry.
func (ins *Inspector) InspectAll(ctx context.Context, accountID string) (*Report, error) {
	records, err := ins.Source.GetOpenTrades(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("fetch open trades: %w", err)
	}
	ins.logger().WithFields(logrus.Fields{
		"account": accountID,
		"trades":  len(records),
	}).Debug("open trades fetched")

	rep := &Report{
		RunID:     newRunID(),
		AccountID: accountID,
		Time:      time.Now().UTC(),
		Trades:    make([]Trade, 0, len(records)),
	}
	for _, rec := range records {
		rep.Trades = append(rep.Trades, Normalize(rec))
	}

	if ins.Pricing != nil && len(rep.Trades) > 0 {
		if err := ins.attachPrices(ctx, accountID, rep); err != nil {
			return nil, err
		}
	}

	out := ins.Out
	if out == nil {
		out = os.Stdout
	}
	if err := rep.Render(out); err != nil {
		return nil, err
	}
	return rep, nil
}

func (ins *Inspector) attachPrices(ctx context.Context, accountID string, rep *Report) error {
	instruments := make([]string, 0, len(rep.Trades))
	seen := make(map[string]bool)
	for _, t := range rep.Trades {
		if t.Instrument == "" || seen[t.Instrument] {
			continue
		}
		seen[t.Instrument] = true
		instruments = append(instruments, t.Instrument)
	}

	prices, err := ins.Pricing.GetPricing(ctx, accountID, instruments)
	if err != nil {
		return fmt.Errorf("fetch pricing: %w", err)
	}

	rep.Prices = make(map[string]Quote, len(prices))
	for _, p := range prices {
		var q Quote
		if len(p.Bids) > 0 {
			q.Bid = parseDecimal(p.Bids[0].Price)
		}
		if len(p.Asks) > 0 {
			q.Ask = parseDecimal(p.Asks[0].Price)
		}
		rep.Prices[p.Instrument] = q
	}
	return nil
}
