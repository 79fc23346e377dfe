package inspect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxwatch/fxwatch/oanda"
)

func TestNormalize_FieldFallbacks(t *testing.T) {
	t.Run("currentUnits preferred", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"currentUnits": "1000", "units": "5"})
		assert.Equal(t, 1000.0, tr.Units)
	})

	t.Run("units fallback", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"units": 250.0})
		assert.Equal(t, 250.0, tr.Units)
	})

	t.Run("unrealizedPL preferred", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"unrealizedPL": "12.5", "unrealized_pl": "99"})
		assert.Equal(t, 12.5, tr.UnrealizedPL)
	})

	t.Run("unrealized_pl fallback", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"unrealized_pl": -3.1})
		assert.Equal(t, -3.1, tr.UnrealizedPL)
	})

	t.Run("absent fields yield zero values", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{})
		assert.Empty(t, tr.ID)
		assert.Zero(t, tr.Units)
		assert.Zero(t, tr.UnrealizedPL)
	})
}

func TestNormalize_ValueKinds(t *testing.T) {
	// Decimals arrive as strings from the v20 API but as numbers from
	// other serializers; both must parse.
	t.Run("string decimals", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"price": "1.0850", "currentUnits": "-2500"})
		assert.Equal(t, 1.085, tr.Price)
		assert.Equal(t, -2500.0, tr.Units)
	})

	t.Run("json numbers", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"price": json.Number("1.0850"), "id": json.Number("37")})
		assert.Equal(t, 1.085, tr.Price)
		assert.Equal(t, "37", tr.ID)
	})

	t.Run("unparseable string", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"price": "n/a"})
		assert.Zero(t, tr.Price)
	})
}

func TestNormalize_AttachedOrders(t *testing.T) {
	t.Run("present take profit", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{
			"takeProfitOrder": map[string]any{"id": "101", "price": "1.0900"},
		})
		require.NotNil(t, tr.TakeProfit)
		assert.Equal(t, "101", tr.TakeProfit.ID)
		assert.Equal(t, 1.09, tr.TakeProfit.Price)
		assert.Nil(t, tr.StopLoss)
	})

	t.Run("absent key means not set", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{"id": "1"})
		assert.Nil(t, tr.TakeProfit)
		assert.Nil(t, tr.StopLoss)
	})

	t.Run("empty mapping means not set", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{
			"takeProfitOrder": map[string]any{},
			"stopLossOrder":   map[string]any{},
		})
		assert.Nil(t, tr.TakeProfit)
		assert.Nil(t, tr.StopLoss)
	})

	t.Run("stop loss", func(t *testing.T) {
		tr := Normalize(oanda.TradeRecord{
			"stopLossOrder": map[string]any{"id": "102", "price": 1.0800},
		})
		require.NotNil(t, tr.StopLoss)
		assert.Equal(t, 1.08, tr.StopLoss.Price)
	})
}

func TestParseDecimal(t *testing.T) {
	assert.Equal(t, 1.085, parseDecimal("1.0850"))
	assert.Zero(t, parseDecimal(""))
	assert.Zero(t, parseDecimal("abc"))
}
