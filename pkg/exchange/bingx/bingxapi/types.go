package bingxapi

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type PositionSide string

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
	PositionSideBoth  PositionSide = "BOTH"
)

var positionSideAliases = map[string]PositionSide{
	"LONG": PositionSideLong,
	"Long": PositionSideLong,
	"long": PositionSideLong,
	"BID":  PositionSideLong,
	"Bid":  PositionSideLong,
	"bid":  PositionSideLong,

	"SHORT": PositionSideShort,
	"Short": PositionSideShort,
	"short": PositionSideShort,
	"ASK":   PositionSideShort,
	"Ask":   PositionSideShort,
	"ask":   PositionSideShort,
}

// NormalizePositionSide maps the accepted aliases (long/Long/LONG/bid/Bid/BID and
// the short/ask counterparts) to LONG or SHORT.
func NormalizePositionSide(s string) (PositionSide, error) {
	if side, ok := positionSideAliases[s]; ok {
		return side, nil
	}

	return "", newValidationError("positionSide", s, "expecting one of LONG, SHORT, BID, ASK")
}

// OpenSide is the order side that opens (or adds to) a position on this side.
func (s PositionSide) OpenSide() SideType {
	if s == PositionSideShort {
		return SideTypeSell
	}
	return SideTypeBuy
}

// CloseSide is the order side that reduces a position on this side.
func (s PositionSide) CloseSide() SideType {
	if s == PositionSideShort {
		return SideTypeBuy
	}
	return SideTypeSell
}

type SideType string

const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"
)

func ParseSideType(s string) (SideType, error) {
	switch SideType(strings.ToUpper(s)) {
	case SideTypeBuy:
		return SideTypeBuy, nil
	case SideTypeSell:
		return SideTypeSell, nil
	}

	return "", newValidationError("side", s, "expecting BUY or SELL")
}

type OrderType string

const (
	OrderTypeMarket             OrderType = "MARKET"
	OrderTypeLimit              OrderType = "LIMIT"
	OrderTypeTriggerMarket      OrderType = "TRIGGER_MARKET"
	OrderTypeTriggerLimit       OrderType = "TRIGGER_LIMIT"
	OrderTypeTrailingStopMarket OrderType = "TRAILING_STOP_MARKET"
	OrderTypeTakeProfitMarket   OrderType = "TAKE_PROFIT_MARKET"
	OrderTypeTakeProfit         OrderType = "TAKE_PROFIT"
	OrderTypeStopMarket         OrderType = "STOP_MARKET"
	OrderTypeStop               OrderType = "STOP"
)

type WorkingType string

const (
	WorkingTypeMarkPrice     WorkingType = "MARK_PRICE"
	WorkingTypeContractPrice WorkingType = "CONTRACT_PRICE"
	WorkingTypeIndexPrice    WorkingType = "INDEX_PRICE"
)

type TimeInForce string

const (
	TimeInForcePostOnly TimeInForce = "PostOnly"
	TimeInForceGTC      TimeInForce = "GTC"
	TimeInForceIOC      TimeInForce = "IOC"
	TimeInForceFOK      TimeInForce = "FOK"
)

type MarginType string

const (
	MarginTypeIsolated MarginType = "ISOLATED"
	MarginTypeCrossed  MarginType = "CROSSED"
)

func ParseMarginType(s string) (MarginType, error) {
	switch MarginType(s) {
	case MarginTypeIsolated, MarginTypeCrossed:
		return MarginType(s), nil
	}

	return "", newValidationError("marginType", s, "expecting ISOLATED or CROSSED")
}

type AutoCloseType string

const (
	AutoCloseTypeLiquidation AutoCloseType = "LIQUIDATION"
	AutoCloseTypeADL         AutoCloseType = "ADL"
)

// MarginAdjustment is the direction of an isolated margin change.
type MarginAdjustment int

const (
	MarginAdjustmentAdd    MarginAdjustment = 1
	MarginAdjustmentReduce MarginAdjustment = 2
)

type Interval string

var SupportedIntervals = []Interval{
	"1m", "3m", "5m", "15m", "30m",
	"1h", "2h", "4h", "6h", "8h", "12h",
	"1d", "3d", "1w", "1M",
}

// ParseInterval checks s against the kline intervals the exchange serves.
func ParseInterval(s string) (Interval, error) {
	for _, i := range SupportedIntervals {
		if string(i) == s {
			return i, nil
		}
	}

	return "", newValidationError("interval", s, "supported intervals are %v", SupportedIntervals)
}

// TakeProfitStopLoss is the nested order sent as the takeProfit / stopLoss field. The
// exchange expects it as a JSON document embedded in the parameter value.
type TakeProfitStopLoss struct {
	Type        OrderType
	Quantity    decimal.Decimal
	StopPrice   decimal.Decimal
	Price       decimal.Decimal
	WorkingType WorkingType
}

// NewTakeProfit creates a market take-profit triggered (and priced) at price.
func NewTakeProfit(quantity, price decimal.Decimal) *TakeProfitStopLoss {
	return &TakeProfitStopLoss{
		Type:        OrderTypeTakeProfitMarket,
		Quantity:    quantity,
		StopPrice:   price,
		Price:       price,
		WorkingType: WorkingTypeMarkPrice,
	}
}

// NewStopLoss creates a market stop-loss triggered (and priced) at price.
func NewStopLoss(quantity, price decimal.Decimal) *TakeProfitStopLoss {
	return &TakeProfitStopLoss{
		Type:        OrderTypeStopMarket,
		Quantity:    quantity,
		StopPrice:   price,
		Price:       price,
		WorkingType: WorkingTypeMarkPrice,
	}
}

func (t TakeProfitStopLoss) MarshalJSON() ([]byte, error) {
	workingType := t.WorkingType
	if workingType == "" {
		workingType = WorkingTypeMarkPrice
	}

	// numbers are sent unquoted
	return json.Marshal(struct {
		Type        OrderType   `json:"type"`
		Quantity    json.Number `json:"quantity"`
		StopPrice   json.Number `json:"stopPrice"`
		Price       json.Number `json:"price"`
		WorkingType WorkingType `json:"workingType"`
	}{
		Type:        t.Type,
		Quantity:    json.Number(t.Quantity.String()),
		StopPrice:   json.Number(t.StopPrice.String()),
		Price:       json.Number(t.Price.String()),
		WorkingType: workingType,
	})
}

// String returns the JSON document, it implements fmt.Stringer so the value can be
// added to Params directly.
func (t *TakeProfitStopLoss) String() string {
	data, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return string(data)
}

func (t *TakeProfitStopLoss) validate(field string) error {
	switch t.Type {
	case OrderTypeTakeProfitMarket, OrderTypeTakeProfit, OrderTypeStopMarket, OrderTypeStop:
	default:
		return newValidationError(field+".type", t.Type, "unsupported order type")
	}

	if t.StopPrice.Sign() <= 0 {
		return newValidationError(field+".stopPrice", t.StopPrice, "must be positive")
	}

	return nil
}

// PriceVolume is a [price, volume] pair of an order book side.
type PriceVolume struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
}

func (p *PriceVolume) UnmarshalJSON(data []byte) error {
	var pair []decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return errors.Errorf("unexpected price volume pair: %s", data)
	}

	p.Price, p.Volume = pair[0], pair[1]
	return nil
}
