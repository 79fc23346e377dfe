package inspect

import (
	"encoding/json"
	"strconv"

	"github.com/fxwatch/fxwatch/oanda"
)

// Candidate keys per logical field. Trade payloads are not consistent
// across serializers; the first present key wins.
var (
	unitsKeys        = []string{"currentUnits", "units"}
	unrealizedPLKeys = []string{"unrealizedPL", "unrealized_pl"}
)

// AttachedOrder is a take-profit or stop-loss order attached to a trade.
type AttachedOrder struct {
	ID    string
	Price float64
}

// Trade is the normalized view of one open trade.
type Trade struct {
	ID           string
	Instrument   string
	Units        float64
	Price        float64
	UnrealizedPL float64
	OpenTime     string
	TakeProfit   *AttachedOrder
	StopLoss     *AttachedOrder
	Raw          oanda.TradeRecord
}

// Normalize resolves a raw trade mapping into a Trade, applying the
// candidate-key fallbacks.
func Normalize(rec oanda.TradeRecord) Trade {
	return Trade{
		ID:           stringField(rec, "id"),
		Instrument:   stringField(rec, "instrument"),
		Units:        numberField(rec, unitsKeys...),
		Price:        numberField(rec, "price"),
		UnrealizedPL: numberField(rec, unrealizedPLKeys...),
		OpenTime:     stringField(rec, "openTime"),
		TakeProfit:   orderField(rec, "takeProfitOrder"),
		StopLoss:     orderField(rec, "stopLossOrder"),
		Raw:          rec,
	}
}

func stringField(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := rec[k].(type) {
		case string:
			return v
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// numberField returns the first candidate key's value as a float64. The
// v20 API encodes decimals as strings; decoded JSON may also carry plain
// numbers. Unparseable or absent values yield 0.
func numberField(rec map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// parseDecimal parses one of the API's string-encoded decimals, yielding
// 0 on malformed input.
func parseDecimal(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// orderField returns the attached order under key, or nil when the key is
// absent or maps to an empty object. Both count as "not set".
func orderField(rec map[string]any, key string) *AttachedOrder {
	m, ok := rec[key].(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	return &AttachedOrder{
		ID:    stringField(m, "id"),
		Price: numberField(m, "price"),
	}
}
