package bingxapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const maxBatchSize = 10

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELLED"
	OrderStatusFailed          OrderStatus = "FAILED"
)

type Order struct {
	Symbol        string          `json:"symbol"`
	OrderID       int64           `json:"orderId"`
	ClientOrderID string          `json:"clientOrderId"`
	Side          SideType        `json:"side"`
	PositionSide  PositionSide    `json:"positionSide"`
	Type          OrderType       `json:"type"`
	Status        OrderStatus     `json:"status"`
	Price         decimal.Decimal `json:"price"`
	OrigQty       decimal.Decimal `json:"origQty"`
	ExecutedQty   decimal.Decimal `json:"executedQty"`
	AvgPrice      decimal.Decimal `json:"avgPrice"`
	CumQuote      decimal.Decimal `json:"cumQuote"`
	StopPrice     decimal.Decimal `json:"stopPrice"`
	Profit        decimal.Decimal `json:"profit"`
	Commission    decimal.Decimal `json:"commission"`
	WorkingType   WorkingType     `json:"workingType"`
	TimeInForce   TimeInForce     `json:"timeInForce"`
	Time          int64           `json:"time"`
	UpdateTime    int64           `json:"updateTime"`
}

// PlaceOrderRequest places a perpetual order. The order type decides which of the
// price fields are required:
//
//	MARKET                 -
//	LIMIT                  price (or BestPrice)
//	TRIGGER_MARKET         stopPrice
//	TRIGGER_LIMIT          price, stopPrice
//	TRAILING_STOP_MARKET   price or priceRate
type PlaceOrderRequest struct {
	client SignedAPIClient

	path string

	symbol       string
	orderType    OrderType
	side         *SideType
	positionSide string

	price     *decimal.Decimal
	bestPrice bool
	quantity  decimal.Decimal
	stopPrice *decimal.Decimal
	priceRate *decimal.Decimal

	workingType   *WorkingType
	takeProfit    *TakeProfitStopLoss
	stopLoss      *TakeProfitStopLoss
	clientOrderID *string
	timeInForce   *TimeInForce

	// open or close, resolved into side when side is not given
	direction func(PositionSide) SideType
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c, path: "/openApi/swap/v2/trade/order"}
}

// NewPlaceTestOrderRequest takes the same parameters as NewPlaceOrderRequest, the
// exchange validates the order and returns a fake one without placing it.
func (c *RestClient) NewPlaceTestOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c, path: "/openApi/swap/v2/trade/order/test"}
}

func (r *PlaceOrderRequest) Symbol(symbol string) *PlaceOrderRequest {
	r.symbol = symbol
	return r
}

func (r *PlaceOrderRequest) OrderType(orderType OrderType) *PlaceOrderRequest {
	r.orderType = orderType
	return r
}

func (r *PlaceOrderRequest) Side(side SideType) *PlaceOrderRequest {
	r.side = &side
	return r
}

// PositionSide accepts LONG/SHORT and their aliases, see NormalizePositionSide.
func (r *PlaceOrderRequest) PositionSide(positionSide string) *PlaceOrderRequest {
	r.positionSide = positionSide
	return r
}

// Open derives the side from the position side: BUY for LONG, SELL for SHORT.
func (r *PlaceOrderRequest) Open() *PlaceOrderRequest {
	r.direction = PositionSide.OpenSide
	return r
}

// Close derives the side from the position side: SELL for LONG, BUY for SHORT.
func (r *PlaceOrderRequest) Close() *PlaceOrderRequest {
	r.direction = PositionSide.CloseSide
	return r
}

func (r *PlaceOrderRequest) Price(price decimal.Decimal) *PlaceOrderRequest {
	r.price = &price
	r.bestPrice = false
	return r
}

// BestPrice prices the order at the best offer (BUY) or the best bid (SELL), the
// book ticker is queried right before the order is sent.
func (r *PlaceOrderRequest) BestPrice() *PlaceOrderRequest {
	r.price = nil
	r.bestPrice = true
	return r
}

func (r *PlaceOrderRequest) Quantity(quantity decimal.Decimal) *PlaceOrderRequest {
	r.quantity = quantity
	return r
}

func (r *PlaceOrderRequest) StopPrice(stopPrice decimal.Decimal) *PlaceOrderRequest {
	r.stopPrice = &stopPrice
	return r
}

// PriceRate is the callback rate of a trailing stop order, e.g. 0.01 for 1%.
func (r *PlaceOrderRequest) PriceRate(priceRate decimal.Decimal) *PlaceOrderRequest {
	r.priceRate = &priceRate
	return r
}

func (r *PlaceOrderRequest) WorkingType(workingType WorkingType) *PlaceOrderRequest {
	r.workingType = &workingType
	return r
}

func (r *PlaceOrderRequest) TakeProfit(takeProfit *TakeProfitStopLoss) *PlaceOrderRequest {
	r.takeProfit = takeProfit
	return r
}

func (r *PlaceOrderRequest) StopLoss(stopLoss *TakeProfitStopLoss) *PlaceOrderRequest {
	r.stopLoss = stopLoss
	return r
}

func (r *PlaceOrderRequest) ClientOrderID(clientOrderID string) *PlaceOrderRequest {
	r.clientOrderID = &clientOrderID
	return r
}

func (r *PlaceOrderRequest) TimeInForce(timeInForce TimeInForce) *PlaceOrderRequest {
	r.timeInForce = &timeInForce
	return r
}

// resolve validates the request and returns the normalized position side and side.
func (r *PlaceOrderRequest) resolve() (PositionSide, SideType, error) {
	if r.symbol == "" {
		return "", "", newValidationError("symbol", r.symbol, "symbol is required")
	}

	positionSide, err := NormalizePositionSide(r.positionSide)
	if err != nil {
		return "", "", err
	}

	var side SideType
	switch {
	case r.side != nil:
		if side, err = ParseSideType(string(*r.side)); err != nil {
			return "", "", err
		}
	case r.direction != nil:
		side = r.direction(positionSide)
	default:
		return "", "", newValidationError("side", nil, "side is required")
	}

	if r.quantity.Sign() <= 0 {
		return "", "", newValidationError("quantity", r.quantity, "must be positive")
	}

	hasPrice := r.price != nil || r.bestPrice

	switch r.orderType {
	case OrderTypeMarket:
	case OrderTypeLimit:
		if !hasPrice {
			return "", "", newValidationError("price", nil, "price is required for %s orders", r.orderType)
		}
	case OrderTypeTriggerMarket:
		if r.stopPrice == nil {
			return "", "", newValidationError("stopPrice", nil, "stop price is required for %s orders", r.orderType)
		}
	case OrderTypeTriggerLimit:
		if !hasPrice || r.stopPrice == nil {
			return "", "", newValidationError("price", nil, "price and stop price are required for %s orders", r.orderType)
		}
	case OrderTypeTrailingStopMarket:
		if !hasPrice && r.priceRate == nil {
			return "", "", newValidationError("price", nil, "either price or priceRate must be set for %s orders", r.orderType)
		}
	case OrderTypeTakeProfitMarket, OrderTypeTakeProfit, OrderTypeStopMarket, OrderTypeStop:
		if r.stopPrice == nil {
			return "", "", newValidationError("stopPrice", nil, "stop price is required for %s orders", r.orderType)
		}
	default:
		return "", "", newValidationError("type", r.orderType, "unsupported order type")
	}

	if r.takeProfit != nil {
		if err := r.takeProfit.validate("takeProfit"); err != nil {
			return "", "", err
		}
	}

	if r.stopLoss != nil {
		if err := r.stopLoss.validate("stopLoss"); err != nil {
			return "", "", err
		}
	}

	return positionSide, side, nil
}

func (r *PlaceOrderRequest) resolveBestPrice(ctx context.Context, side SideType) (*decimal.Decimal, error) {
	ticker, apiResponse, err := (&GetBookTickerRequest{client: r.client}).Symbol(r.symbol).do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to query the best price of %s", r.symbol)
	}

	price := ticker.BestPrice(side)
	if price.Sign() <= 0 {
		field := "data.book_ticker.bid_price"
		if side == SideTypeBuy {
			field = "data.book_ticker.ask_price"
		}
		return nil, apiResponse.rejection(field)
	}

	return &price, nil
}

func (r *PlaceOrderRequest) getParameters(positionSide PositionSide, side SideType, price *decimal.Decimal) *Params {
	return NewParams().
		Add("symbol", r.symbol).
		Add("type", r.orderType).
		Add("side", side).
		Add("positionSide", positionSide).
		Add("price", price).
		Add("quantity", r.quantity).
		Add("stopPrice", r.stopPrice).
		Add("priceRate", r.priceRate).
		Add("workingType", r.workingType).
		Add("takeProfit", r.takeProfit).
		Add("stopLoss", r.stopLoss).
		Add("clientOrderID", r.clientOrderID).
		Add("timeInForce", r.timeInForce)
}

func (r *PlaceOrderRequest) Do(ctx context.Context) (*Order, error) {
	positionSide, side, err := r.resolve()
	if err != nil {
		return nil, err
	}

	price := r.price
	if r.bestPrice {
		if price, err = r.resolveBestPrice(ctx, side); err != nil {
			return nil, err
		}
	}

	params := r.getParameters(positionSide, side, price)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, r.path, params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var order Order
	if err := apiResponse.DecodeData("order", &order); err != nil {
		return nil, err
	}

	return &order, nil
}

type batchOrder struct {
	Symbol        string       `json:"symbol"`
	Type          OrderType    `json:"type"`
	Side          SideType     `json:"side"`
	PositionSide  PositionSide `json:"positionSide"`
	Price         json.Number  `json:"price,omitempty"`
	Quantity      json.Number  `json:"quantity"`
	StopPrice     json.Number  `json:"stopPrice,omitempty"`
	PriceRate     json.Number  `json:"priceRate,omitempty"`
	WorkingType   WorkingType  `json:"workingType,omitempty"`
	TakeProfit    string       `json:"takeProfit,omitempty"`
	StopLoss      string       `json:"stopLoss,omitempty"`
	ClientOrderID string       `json:"clientOrderID,omitempty"`
	TimeInForce   TimeInForce  `json:"timeInForce,omitempty"`
}

func decimalNumber(d *decimal.Decimal) json.Number {
	if d == nil {
		return ""
	}
	return json.Number(d.String())
}

func (r *PlaceOrderRequest) toBatchOrder() (*batchOrder, error) {
	positionSide, side, err := r.resolve()
	if err != nil {
		return nil, err
	}

	if r.bestPrice {
		return nil, newValidationError("price", "BBO", "best price is not supported in batch orders")
	}

	o := &batchOrder{
		Symbol:       r.symbol,
		Type:         r.orderType,
		Side:         side,
		PositionSide: positionSide,
		Price:        decimalNumber(r.price),
		Quantity:     json.Number(r.quantity.String()),
		StopPrice:    decimalNumber(r.stopPrice),
		PriceRate:    decimalNumber(r.priceRate),
	}

	if r.workingType != nil {
		o.WorkingType = *r.workingType
	}
	if r.takeProfit != nil {
		o.TakeProfit = r.takeProfit.String()
	}
	if r.stopLoss != nil {
		o.StopLoss = r.stopLoss.String()
	}
	if r.clientOrderID != nil {
		o.ClientOrderID = *r.clientOrderID
	}
	if r.timeInForce != nil {
		o.TimeInForce = *r.timeInForce
	}

	return o, nil
}

// PlaceBatchOrdersRequest places up to 10 orders at once. The orders are built with
// NewPlaceOrderRequest and validated together before anything is sent.
type PlaceBatchOrdersRequest struct {
	client SignedAPIClient

	orders []*PlaceOrderRequest
}

func (c *RestClient) NewPlaceBatchOrdersRequest() *PlaceBatchOrdersRequest {
	return &PlaceBatchOrdersRequest{client: c}
}

func (r *PlaceBatchOrdersRequest) Add(orders ...*PlaceOrderRequest) *PlaceBatchOrdersRequest {
	r.orders = append(r.orders, orders...)
	return r
}

func (r *PlaceBatchOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	if len(r.orders) == 0 || len(r.orders) > maxBatchSize {
		return nil, newValidationError("batchOrders", len(r.orders), "expecting 1 to %d orders", maxBatchSize)
	}

	var batch []*batchOrder
	var errs error
	for i, order := range r.orders {
		o, err := order.toBatchOrder()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "order #%d", i))
			continue
		}

		batch = append(batch, o)
	}

	if errs != nil {
		return nil, errs
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}

	params := NewParams().Add("batchOrders", string(payload))
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, "/openApi/swap/v2/trade/batchOrders", params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := apiResponse.DecodeData("orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// CloseAllPositionsResult lists the ids of the closing orders.
type CloseAllPositionsResult struct {
	Success []int64 `json:"success"`
	Failed  []int64 `json:"failed"`
}

// CloseAllPositionsRequest closes every open position at market price.
type CloseAllPositionsRequest struct {
	client SignedAPIClient
}

func (c *RestClient) NewCloseAllPositionsRequest() *CloseAllPositionsRequest {
	return &CloseAllPositionsRequest{client: c}
}

func (r *CloseAllPositionsRequest) Do(ctx context.Context) (*CloseAllPositionsResult, error) {
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, "/openApi/swap/v2/trade/closeAllPositions", nil, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var result CloseAllPositionsResult
	if err := apiResponse.DecodeData("", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type CancelOrderRequest struct {
	client SignedAPIClient

	symbol        string
	orderID       *int64
	clientOrderID *string
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) Symbol(symbol string) *CancelOrderRequest {
	r.symbol = symbol
	return r
}

func (r *CancelOrderRequest) OrderID(orderID int64) *CancelOrderRequest {
	r.orderID = &orderID
	return r
}

func (r *CancelOrderRequest) ClientOrderID(clientOrderID string) *CancelOrderRequest {
	r.clientOrderID = &clientOrderID
	return r
}

func (r *CancelOrderRequest) Do(ctx context.Context) (*Order, error) {
	if r.orderID == nil && r.clientOrderID == nil {
		return nil, newValidationError("orderId", nil, "either orderId or clientOrderID is required")
	}

	params := NewParams().
		Add("orderId", r.orderID).
		Add("symbol", r.symbol).
		Add("clientOrderID", r.clientOrderID)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodDelete, "/openApi/swap/v2/trade/order", params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var order Order
	if err := apiResponse.DecodeData("order", &order); err != nil {
		return nil, err
	}

	return &order, nil
}

type FailedOrder struct {
	OrderID   int64  `json:"orderId"`
	ErrorCode int    `json:"errorCode"`
	ErrorMsg  string `json:"errorMessage"`
}

type CancelOrdersResult struct {
	Success []Order       `json:"success"`
	Failed  []FailedOrder `json:"failed"`
}

// CancelAllOrdersRequest cancels every open order of a symbol.
type CancelAllOrdersRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewCancelAllOrdersRequest() *CancelAllOrdersRequest {
	return &CancelAllOrdersRequest{client: c}
}

func (r *CancelAllOrdersRequest) Symbol(symbol string) *CancelAllOrdersRequest {
	r.symbol = symbol
	return r
}

func (r *CancelAllOrdersRequest) Do(ctx context.Context) (*CancelOrdersResult, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodDelete, "/openApi/swap/v2/trade/allOpenOrders", params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var result CancelOrdersResult
	if err := apiResponse.DecodeData("", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type CancelBatchOrdersRequest struct {
	client SignedAPIClient

	symbol            string
	orderIDList       []int64
	clientOrderIDList []string
}

func (c *RestClient) NewCancelBatchOrdersRequest() *CancelBatchOrdersRequest {
	return &CancelBatchOrdersRequest{client: c}
}

func (r *CancelBatchOrdersRequest) Symbol(symbol string) *CancelBatchOrdersRequest {
	r.symbol = symbol
	return r
}

func (r *CancelBatchOrdersRequest) OrderIDs(ids ...int64) *CancelBatchOrdersRequest {
	r.orderIDList = append(r.orderIDList, ids...)
	return r
}

func (r *CancelBatchOrdersRequest) ClientOrderIDs(ids ...string) *CancelBatchOrdersRequest {
	r.clientOrderIDList = append(r.clientOrderIDList, ids...)
	return r
}

// jsonList encodes a list parameter as a JSON array, an empty list is absent.
func jsonList[T any](list []T) (*string, error) {
	if len(list) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}

	s := string(data)
	return &s, nil
}

func (r *CancelBatchOrdersRequest) Do(ctx context.Context) (*CancelOrdersResult, error) {
	n := len(r.orderIDList) + len(r.clientOrderIDList)
	if n == 0 {
		return nil, newValidationError("orderIdList", nil, "either orderIdList or clientOrderIDList is required")
	}

	if len(r.orderIDList) > maxBatchSize || len(r.clientOrderIDList) > maxBatchSize {
		return nil, newValidationError("orderIdList", n, "at most %d orders can be canceled at once", maxBatchSize)
	}

	clientOrderIDList, err := jsonList(r.clientOrderIDList)
	if err != nil {
		return nil, err
	}

	orderIDList, err := jsonList(r.orderIDList)
	if err != nil {
		return nil, err
	}

	params := NewParams().
		Add("clientOrderIDList", clientOrderIDList).
		Add("orderIdList", orderIDList).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodDelete, "/openApi/swap/v2/trade/batchOrders", params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var result CancelOrdersResult
	if err := apiResponse.DecodeData("", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type GetOpenOrdersRequest struct {
	client SignedAPIClient

	symbol *string
}

func (c *RestClient) NewGetOpenOrdersRequest() *GetOpenOrdersRequest {
	return &GetOpenOrdersRequest{client: c}
}

func (r *GetOpenOrdersRequest) Symbol(symbol string) *GetOpenOrdersRequest {
	r.symbol = &symbol
	return r
}

func (r *GetOpenOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/openOrders", params)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := apiResponse.DecodeData("orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

type GetOrderRequest struct {
	client SignedAPIClient

	symbol        string
	orderID       *int64
	clientOrderID *string
}

func (c *RestClient) NewGetOrderRequest() *GetOrderRequest {
	return &GetOrderRequest{client: c}
}

func (r *GetOrderRequest) Symbol(symbol string) *GetOrderRequest {
	r.symbol = symbol
	return r
}

func (r *GetOrderRequest) OrderID(orderID int64) *GetOrderRequest {
	r.orderID = &orderID
	return r
}

func (r *GetOrderRequest) ClientOrderID(clientOrderID string) *GetOrderRequest {
	r.clientOrderID = &clientOrderID
	return r
}

func (r *GetOrderRequest) Do(ctx context.Context) (*Order, error) {
	if r.orderID == nil && r.clientOrderID == nil {
		return nil, newValidationError("orderId", nil, "either orderId or clientOrderID is required")
	}

	params := NewParams().
		Add("clientOrderID", r.clientOrderID).
		Add("orderId", r.orderID).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/order", params)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := apiResponse.DecodeData("order", &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// GetForceOrdersRequest queries liquidation and ADL orders. Without a start time
// only the 7 days before the end time are returned.
type GetForceOrdersRequest struct {
	client SignedAPIClient

	symbol        string
	autoCloseType *AutoCloseType
	startTime     *int64
	endTime       *int64
	limit         *int
}

func (c *RestClient) NewGetForceOrdersRequest() *GetForceOrdersRequest {
	return &GetForceOrdersRequest{client: c}
}

func (r *GetForceOrdersRequest) Symbol(symbol string) *GetForceOrdersRequest {
	r.symbol = symbol
	return r
}

func (r *GetForceOrdersRequest) AutoCloseType(autoCloseType AutoCloseType) *GetForceOrdersRequest {
	r.autoCloseType = &autoCloseType
	return r
}

func (r *GetForceOrdersRequest) StartTime(startTime int64) *GetForceOrdersRequest {
	r.startTime = &startTime
	return r
}

func (r *GetForceOrdersRequest) EndTime(endTime int64) *GetForceOrdersRequest {
	r.endTime = &endTime
	return r
}

func (r *GetForceOrdersRequest) Limit(limit int) *GetForceOrdersRequest {
	r.limit = &limit
	return r
}

func (r *GetForceOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	params := NewParams().
		Add("autoCloseType", r.autoCloseType).
		Add("endTime", r.endTime).
		Add("limit", r.limit).
		Add("startTime", r.startTime).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/forceOrders", params)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := apiResponse.DecodeData("orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

const defaultOrderHistoryLimit = 500

// GetOrderHistoryRequest queries at most 7 days of orders, the last 7 days by
// default. The limit defaults to 500, the maximum is 1000.
type GetOrderHistoryRequest struct {
	client SignedAPIClient

	symbol    string
	orderID   *int64
	startTime *int64
	endTime   *int64
	limit     int
}

func (c *RestClient) NewGetOrderHistoryRequest() *GetOrderHistoryRequest {
	return &GetOrderHistoryRequest{client: c, limit: defaultOrderHistoryLimit}
}

func (r *GetOrderHistoryRequest) Symbol(symbol string) *GetOrderHistoryRequest {
	r.symbol = symbol
	return r
}

func (r *GetOrderHistoryRequest) OrderID(orderID int64) *GetOrderHistoryRequest {
	r.orderID = &orderID
	return r
}

func (r *GetOrderHistoryRequest) StartTime(startTime int64) *GetOrderHistoryRequest {
	r.startTime = &startTime
	return r
}

func (r *GetOrderHistoryRequest) EndTime(endTime int64) *GetOrderHistoryRequest {
	r.endTime = &endTime
	return r
}

func (r *GetOrderHistoryRequest) Limit(limit int) *GetOrderHistoryRequest {
	r.limit = limit
	return r
}

func (r *GetOrderHistoryRequest) Do(ctx context.Context) ([]Order, error) {
	params := NewParams().
		Add("endTime", r.endTime).
		Add("limit", r.limit).
		Add("orderId", r.orderID).
		Add("startTime", r.startTime).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/allOrders", params)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := apiResponse.DecodeData("orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

type TradingUnit string

const (
	TradingUnitCoin     TradingUnit = "COIN"
	TradingUnitContract TradingUnit = "CONT"
)

type FillOrder struct {
	Symbol       string          `json:"symbol"`
	OrderID      string          `json:"orderId"`
	FilledTm     string          `json:"filledTm"`
	Side         SideType        `json:"side"`
	PositionSide PositionSide    `json:"positionSide"`
	Volume       decimal.Decimal `json:"volume"`
	Price        decimal.Decimal `json:"price"`
	Amount       decimal.Decimal `json:"amount"`
	Commission   decimal.Decimal `json:"commission"`
	CurrencyName string          `json:"currency"`
}

// GetFillOrdersRequest queries the transaction details (fills) of the account.
type GetFillOrdersRequest struct {
	client SignedAPIClient

	tradingUnit TradingUnit
	orderID     *int64
	startTs     *int64
	endTs       *int64
}

func (c *RestClient) NewGetFillOrdersRequest() *GetFillOrdersRequest {
	return &GetFillOrdersRequest{client: c, tradingUnit: TradingUnitContract}
}

func (r *GetFillOrdersRequest) TradingUnit(tradingUnit TradingUnit) *GetFillOrdersRequest {
	r.tradingUnit = tradingUnit
	return r
}

func (r *GetFillOrdersRequest) OrderID(orderID int64) *GetFillOrdersRequest {
	r.orderID = &orderID
	return r
}

func (r *GetFillOrdersRequest) StartTime(startTs int64) *GetFillOrdersRequest {
	r.startTs = &startTs
	return r
}

func (r *GetFillOrdersRequest) EndTime(endTs int64) *GetFillOrdersRequest {
	r.endTs = &endTs
	return r
}

func (r *GetFillOrdersRequest) Do(ctx context.Context) ([]FillOrder, error) {
	params := NewParams().
		Add("tradingUnit", r.tradingUnit).
		Add("orderId", r.orderID).
		Add("startTs", r.startTs).
		Add("endTs", r.endTs)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/allFillOrders", params)
	if err != nil {
		return nil, err
	}

	var fills []FillOrder
	if err := apiResponse.DecodeData("fill_orders", &fills); err != nil {
		return nil, err
	}

	return fills, nil
}
