package bingxapi

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParams_Encode(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		p := NewParams().
			Add("symbol", "BTC-USDT").
			Add("side", SideTypeBuy).
			Add("timestamp", int64(1700000000000))
		assert.Equal(t, "symbol=BTC-USDT&side=BUY&timestamp=1700000000000", p.Encode())
	})

	t.Run("absent values are dropped", func(t *testing.T) {
		var limit *int
		var clientOrderID *string
		var price *decimal.Decimal
		var tp *TakeProfitStopLoss

		p := NewParams().
			Add("limit", limit).
			Add("symbol", "ETH-USDT").
			Add("clientOrderID", clientOrderID).
			Add("price", price).
			Add("takeProfit", tp).
			Add("nothing", nil)
		assert.Equal(t, "symbol=ETH-USDT", p.Encode())
		assert.Equal(t, 1, p.Len())
	})

	t.Run("zero values are kept", func(t *testing.T) {
		p := NewParams().
			Add("currency", "").
			Add("limit", 0).
			Add("flag", false).
			Add("amount", "0")
		assert.Equal(t, "currency=&limit=0&flag=false&amount=0", p.Encode())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", NewParams().Encode())
		assert.Equal(t, "", NewParams().Add("a", nil).Encode())
	})

	t.Run("pointers are dereferenced", func(t *testing.T) {
		limit := 100
		startTime := int64(1700000000000)
		workingType := WorkingTypeMarkPrice
		price := decimal.RequireFromString("37215.50")

		p := NewParams().
			Add("limit", &limit).
			Add("startTime", &startTime).
			Add("workingType", &workingType).
			Add("price", &price)
		assert.Equal(t, "limit=100&startTime=1700000000000&workingType=MARK_PRICE&price=37215.5", p.Encode())
	})
}

func TestParams_Extend(t *testing.T) {
	p := NewParams().Extend("symbol=BTC-USDT&timestamp=1").Add("signature", "abc")
	assert.Equal(t, "symbol=BTC-USDT&timestamp=1&signature=abc", p.Encode())

	// a trailing separator of the existing string is not doubled
	p = NewParams().Extend("symbol=BTC-USDT&").Add("limit", 5)
	assert.Equal(t, "symbol=BTC-USDT&limit=5", p.Encode())

	// nothing to append
	p = NewParams().Extend("symbol=BTC-USDT").Add("limit", nil)
	assert.Equal(t, "symbol=BTC-USDT", p.Encode())

	assert.Equal(t, "a=1&b=2&c=3", EncodeParams("a=1", Param{Key: "b", Value: "2"}, Param{Key: "c", Value: "3"}))
	assert.Equal(t, "b=2", EncodeParams("", Param{Key: "b", Value: "2"}))
}

func TestParams_Prepend(t *testing.T) {
	p := NewParams().Add("currency", "USDT").Add("timestamp", 1)
	p.Prepend("apiKey", "key")
	assert.Equal(t, "apiKey=key&currency=USDT&timestamp=1", p.Encode())

	v, ok := p.Get("currency")
	assert.True(t, ok)
	assert.Equal(t, "USDT", v)

	_, ok = p.Get("signature")
	assert.False(t, ok)
}

func TestParams_Clone(t *testing.T) {
	p := NewParams().Add("symbol", "BTC-USDT")
	c := p.Clone().Add("timestamp", 1)

	assert.Equal(t, "symbol=BTC-USDT", p.Encode())
	assert.Equal(t, "symbol=BTC-USDT&timestamp=1", c.Encode())
}

func TestParams_NoEmptySegments(t *testing.T) {
	var absent *string
	values := []interface{}{absent, "x", nil, 0, absent, "", nil}

	p := NewParams().Extend("k=v")
	for i, v := range values {
		p.Add(string(rune('a'+i)), v)
	}

	s := p.Encode()
	assert.NotContains(t, s, "&&")
	assert.False(t, strings.HasSuffix(s, "&"))
	assert.False(t, strings.HasPrefix(s, "&"))
	assert.Equal(t, "k=v&b=x&d=0&f=", s)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"int", 10000, "10000"},
		{"int64", int64(1700000000000), "1700000000000"},
		{"uint", uint(7), "7"},
		{"float without fraction", 100.0, "100"},
		{"float", 0.001, "0.001"},
		{"small float", 0.00000123, "0.00000123"},
		{"large float", 1e21, "1000000000000000000000"},
		{"bool", true, "true"},
		{"decimal", decimal.RequireFromString("0.0100"), "0.01"},
		{"enum", OrderTypeTrailingStopMarket, "TRAILING_STOP_MARKET"},
		{"int enum", MarginAdjustmentReduce, "2"},
		{"interval", Interval("1M"), "1M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatValue(tt.value)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := FormatValue(nil)
	assert.False(t, ok)
}
