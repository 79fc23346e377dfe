package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	okMark   = "✓"
	missMark = "✗"
)

var separator = strings.Repeat("-", 40)

// Quote is a bid/ask snapshot for one instrument.
type Quote struct {
	Bid float64
	Ask float64
}

// Report is the result of one inspection run.
type Report struct {
	RunID     string
	AccountID string
	Time      time.Time
	Trades    []Trade

	// Prices is optional pricing enrichment keyed by instrument.
	Prices map[string]Quote
}

// Render writes the human-readable report. Trades appear in slice order;
// an empty report is exactly the no-trades notice.
func (r *Report) Render(w io.Writer) error {
	if len(r.Trades) == 0 {
		_, err := fmt.Fprintln(w, "No open trades.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Open trades for account %s\n%s\n", r.AccountID, separator); err != nil {
		return err
	}

	for _, t := range r.Trades {
		if t.Raw != nil {
			raw, err := json.Marshal(t.Raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(raw))
		}

		fmt.Fprintf(w, "Trade ID: %s\n", t.ID)
		fmt.Fprintf(w, "Instrument: %s\n", t.Instrument)
		fmt.Fprintf(w, "Units: %s\n", formatNum(t.Units))
		fmt.Fprintf(w, "Entry Price: %s\n", formatNum(t.Price))
		fmt.Fprintf(w, "Unrealized P/L: %s\n", formatNum(t.UnrealizedPL))
		if t.OpenTime != "" {
			fmt.Fprintf(w, "Open Time: %s\n", t.OpenTime)
		}
		if q, ok := r.Prices[t.Instrument]; ok {
			fmt.Fprintf(w, "Current Price: %s / %s (bid/ask)\n", formatNum(q.Bid), formatNum(q.Ask))
		}

		renderOrder(w, "Take Profit", t.TakeProfit)
		renderOrder(w, "Stop Loss", t.StopLoss)

		if _, err := fmt.Fprintln(w, separator); err != nil {
			return err
		}
	}
	return nil
}

func renderOrder(w io.Writer, label string, o *AttachedOrder) {
	if o == nil {
		fmt.Fprintf(w, "  %s No %s set\n", missMark, label)
		return
	}
	fmt.Fprintf(w, "  %s %s @ %s (order %s)\n", okMark, label, formatNum(o.Price), o.ID)
}

// formatNum prints a float with the fewest digits that round-trip, so
// 1.0900 renders as 1.09 and 1000 stays 1000.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
