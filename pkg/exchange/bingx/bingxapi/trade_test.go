package bingxapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bingx/pkg/testing/httptesting"
)

// parseSignedBody decodes a signed body and checks that its signature matches the
// signed part.
func parseSignedBody(t *testing.T, body string) url.Values {
	values, err := url.ParseQuery(body)
	require.NoError(t, err)

	idx := len(body) - len("&signature=") - len(values.Get("signature"))
	require.True(t, idx > 0)

	signature, err := Sign("s3cr3t", body[:idx], SignatureSchemeHex)
	require.NoError(t, err)
	assert.Equal(t, signature, values.Get("signature"))
	return values
}

func TestPlaceOrderRequest_Limit(t *testing.T) {
	var body string

	transport := &httptesting.MockTransport{}
	transport.POST("/openApi/swap/v2/trade/order", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadBody(req)
		return replyFile(t, "testdata/place_order.json")(req)
	})

	client := newTestClient(OpenAPIDialect, transport)
	order, err := client.NewPlaceOrderRequest().
		Symbol("BTC-USDT").
		OrderType(OrderTypeLimit).
		PositionSide("long").
		Open().
		Price(decimal.RequireFromString("37000")).
		Quantity(decimal.RequireFromString("0.01")).
		ClientOrderID("my-order-1").
		TakeProfit(NewTakeProfit(decimal.RequireFromString("0.01"), decimal.RequireFromString("40000"))).
		StopLoss(NewStopLoss(decimal.RequireFromString("0.01"), decimal.RequireFromString("35000"))).
		Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1735950529123455000), order.OrderID)
	assert.Equal(t, "my-order-1", order.ClientOrderID)

	assert.Equal(t, "symbol=BTC-USDT&type=LIMIT&side=BUY&positionSide=LONG&price=37000&quantity=0.01"+
		`&takeProfit={"type":"TAKE_PROFIT_MARKET","quantity":0.01,"stopPrice":40000,"price":40000,"workingType":"MARK_PRICE"}`+
		`&stopLoss={"type":"STOP_MARKET","quantity":0.01,"stopPrice":35000,"price":35000,"workingType":"MARK_PRICE"}`+
		"&clientOrderID=my-order-1&timestamp=1700000000000&recvWindow=10000&signature=", body[:len(body)-64])

	values := parseSignedBody(t, body)
	assert.Equal(t, "10000", values.Get("recvWindow"))
}

func TestPlaceOrderRequest_CloseMarket(t *testing.T) {
	var body string

	transport := &httptesting.MockTransport{}
	transport.POST("/openApi/swap/v2/trade/order", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadBody(req)
		return httptesting.BuildResponseString(http.StatusOK, `{"code":0,"msg":"","data":{"order":{"symbol":"ETH-USDT","orderId":1,"side":"BUY","positionSide":"SHORT","type":"MARKET"}}}`), nil
	})

	client := newTestClient(OpenAPIDialect, transport)
	order, err := client.NewPlaceOrderRequest().
		Symbol("ETH-USDT").
		OrderType(OrderTypeMarket).
		PositionSide("Ask").
		Close().
		Quantity(decimal.RequireFromString("1.5")).
		Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SideTypeBuy, order.Side)

	values := parseSignedBody(t, body)
	assert.Equal(t, "BUY", values.Get("side"))
	assert.Equal(t, "SHORT", values.Get("positionSide"))
	assert.Equal(t, "MARKET", values.Get("type"))
	assert.False(t, values.Has("price"))
	assert.False(t, values.Has("takeProfit"))
	assert.False(t, values.Has("clientOrderID"))
}

func TestPlaceOrderRequest_BestPrice(t *testing.T) {
	for _, tc := range []struct {
		positionSide string
		want         string
	}{
		// the best offer for BUY, the best bid for SELL
		{"LONG", "37211"},
		{"SHORT", "37210.5"},
	} {
		t.Run(tc.positionSide, func(t *testing.T) {
			var body string

			transport := &httptesting.MockTransport{}
			transport.GET("/openApi/swap/v2/quote/bookTicker", replyString(`{"code":0,"msg":"","data":{"book_ticker":{"symbol":"BTC-USDT","bid_price":37210.5,"bid_qty":1.5,"ask_price":37211.0,"ask_qty":0.8}}}`))
			transport.POST("/openApi/swap/v2/trade/order", func(req *http.Request) (*http.Response, error) {
				body = httptesting.ReadBody(req)
				return replyFile(t, "testdata/place_order.json")(req)
			})

			client := newTestClient(OpenAPIDialect, transport)
			_, err := client.NewPlaceOrderRequest().
				Symbol("BTC-USDT").
				OrderType(OrderTypeLimit).
				PositionSide(tc.positionSide).
				Open().
				BestPrice().
				Quantity(decimal.RequireFromString("0.01")).
				Do(context.Background())
			require.NoError(t, err)

			require.Len(t, transport.Requests, 2)
			assert.Equal(t, "/openApi/swap/v2/quote/bookTicker", transport.Requests[0].URL.Path)

			values := parseSignedBody(t, body)
			assert.Equal(t, tc.want, values.Get("price"))
		})
	}
}

func TestPlaceOrderRequest_BestPriceRejected(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/quote/bookTicker", replyString(`{"code":109400,"msg":"symbol not exist"}`))

	client := newTestClient(OpenAPIDialect, transport)
	_, err := client.NewPlaceOrderRequest().
		Symbol("FOO-USDT").
		OrderType(OrderTypeLimit).
		PositionSide("LONG").
		Open().
		BestPrice().
		Quantity(decimal.RequireFromString("1")).
		Do(context.Background())

	_, ok := IsRemoteRejection(err)
	assert.True(t, ok)
	assert.Len(t, transport.Requests, 1)
}

func TestPlaceOrderRequest_BestPriceMissing(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/quote/bookTicker", replyString(`{"code":0,"msg":"","data":{"book_ticker":{"symbol":"BTC-USDT","bid_price":37210.5}}}`))

	client := newTestClient(OpenAPIDialect, transport)
	_, err := client.NewPlaceOrderRequest().
		Symbol("BTC-USDT").
		OrderType(OrderTypeLimit).
		PositionSide("LONG").
		Open().
		BestPrice().
		Quantity(decimal.RequireFromString("0.01")).
		Do(context.Background())

	rejection, ok := IsRemoteRejection(err)
	require.True(t, ok)
	assert.Equal(t, "data.book_ticker.ask_price", rejection.Field)
	assert.Contains(t, string(rejection.Envelope), "book_ticker")

	// no order is sent with a zero price
	require.Len(t, transport.Requests, 1)
	assert.Equal(t, "/openApi/swap/v2/quote/bookTicker", transport.Requests[0].URL.Path)
}

func TestPlaceOrderRequest_Validation(t *testing.T) {
	client := newTestClient(OpenAPIDialect, &httptesting.MockTransport{})
	one := decimal.NewFromInt(1)

	tests := []struct {
		name  string
		req   *PlaceOrderRequest
		field string
	}{
		{
			name:  "missing symbol",
			req:   client.NewPlaceOrderRequest().OrderType(OrderTypeMarket).PositionSide("LONG").Open().Quantity(one),
			field: "symbol",
		},
		{
			name:  "unknown position side",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("up").Open().Quantity(one),
			field: "positionSide",
		},
		{
			name:  "missing side",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("LONG").Quantity(one),
			field: "side",
		},
		{
			name:  "zero quantity",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("LONG").Open(),
			field: "quantity",
		},
		{
			name:  "limit without price",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeLimit).PositionSide("LONG").Open().Quantity(one),
			field: "price",
		},
		{
			name:  "trigger without stop price",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeTriggerMarket).PositionSide("LONG").Side(SideTypeBuy).Quantity(one),
			field: "stopPrice",
		},
		{
			name:  "trailing stop without price or price rate",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeTrailingStopMarket).PositionSide("LONG").Side(SideTypeSell).Quantity(one),
			field: "price",
		},
		{
			name:  "unknown order type",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType("ICEBERG").PositionSide("LONG").Open().Quantity(one),
			field: "type",
		},
		{
			name:  "invalid stop loss",
			req:   client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("LONG").Open().Quantity(one).StopLoss(NewStopLoss(one, decimal.Zero)),
			field: "stopLoss.stopPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Do(context.Background())

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestPlaceOrderRequest_TrailingStop(t *testing.T) {
	var body string

	transport := &httptesting.MockTransport{}
	transport.POST("/openApi/swap/v2/trade/order/test", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadBody(req)
		return replyFile(t, "testdata/place_order.json")(req)
	})

	client := newTestClient(OpenAPIDialect, transport)
	_, err := client.NewPlaceTestOrderRequest().
		Symbol("BTC-USDT").
		OrderType(OrderTypeTrailingStopMarket).
		Side(SideTypeSell).
		PositionSide("LONG").
		Quantity(decimal.RequireFromString("0.01")).
		PriceRate(decimal.RequireFromString("0.005")).
		TimeInForce(TimeInForceGTC).
		Do(context.Background())
	require.NoError(t, err)

	values := parseSignedBody(t, body)
	assert.Equal(t, "0.005", values.Get("priceRate"))
	assert.Equal(t, "TRAILING_STOP_MARKET", values.Get("type"))
	assert.Equal(t, "GTC", values.Get("timeInForce"))
	assert.False(t, values.Has("price"))
}

func TestPlaceBatchOrdersRequest(t *testing.T) {
	var body string

	transport := &httptesting.MockTransport{}
	transport.POST("/openApi/swap/v2/trade/batchOrders", func(req *http.Request) (*http.Response, error) {
		body = httptesting.ReadBody(req)
		return httptesting.BuildResponseString(http.StatusOK, `{"code":0,"msg":"","data":{"orders":[{"symbol":"BTC-USDT","orderId":1},{"symbol":"BTC-USDT","orderId":2}]}}`), nil
	})

	client := newTestClient(OpenAPIDialect, transport)
	orders, err := client.NewPlaceBatchOrdersRequest().
		Add(
			client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeLimit).PositionSide("LONG").Open().
				Price(decimal.RequireFromString("36000")).Quantity(decimal.RequireFromString("0.01")),
			client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeLimit).PositionSide("LONG").Open().
				Price(decimal.RequireFromString("35000")).Quantity(decimal.RequireFromString("0.02")),
		).
		Do(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	values := parseSignedBody(t, body)
	assert.JSONEq(t, `[
		{"symbol":"BTC-USDT","type":"LIMIT","side":"BUY","positionSide":"LONG","price":36000,"quantity":0.01},
		{"symbol":"BTC-USDT","type":"LIMIT","side":"BUY","positionSide":"LONG","price":35000,"quantity":0.02}
	]`, values.Get("batchOrders"))
}

func TestPlaceBatchOrdersRequest_Validation(t *testing.T) {
	transport := &httptesting.MockTransport{}
	client := newTestClient(OpenAPIDialect, transport)

	_, err := client.NewPlaceBatchOrdersRequest().
		Add(
			client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeLimit).PositionSide("LONG").Open().Quantity(decimal.NewFromInt(1)),
			client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("sideways").Open().Quantity(decimal.NewFromInt(1)),
			client.NewPlaceOrderRequest().Symbol("BTC-USDT").OrderType(OrderTypeMarket).PositionSide("SHORT").Open().Quantity(decimal.NewFromInt(1)),
		).
		Do(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order #0")
	assert.Contains(t, err.Error(), "order #1")
	assert.NotContains(t, err.Error(), "order #2")
	assert.Empty(t, transport.Requests)

	_, err = client.NewPlaceBatchOrdersRequest().Do(context.Background())
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCancelOrderRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.DELETE("/openApi/swap/v2/trade/order", replyString(`{"code":0,"msg":"","data":{"order":{"symbol":"BTC-USDT","orderId":123,"status":"CANCELLED"}}}`))

	client := newTestClient(OpenAPIDialect, transport)
	order, err := client.NewCancelOrderRequest().Symbol("BTC-USDT").OrderID(123).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCanceled, order.Status)

	req := transport.Requests[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "orderId=123&symbol=BTC-USDT&timestamp=1700000000000&recvWindow=10000&signature=a039318ccf34e5d64e6dadc92ff42a92eeea6fa1318a9989cce4b0d1c9f1b6e8", req.URL.RawQuery)

	_, err = client.NewCancelOrderRequest().Symbol("BTC-USDT").Do(context.Background())
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCancelBatchOrdersRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.DELETE("/openApi/swap/v2/trade/batchOrders", replyString(`{"code":0,"msg":"","data":{"success":[{"symbol":"BTC-USDT","orderId":1}],"failed":[{"orderId":2,"errorCode":80018,"errorMessage":"order not exist"}]}}`))

	client := newTestClient(OpenAPIDialect, transport)
	result, err := client.NewCancelBatchOrdersRequest().Symbol("BTC-USDT").OrderIDs(1, 2).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Success, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "order not exist", result.Failed[0].ErrorMsg)

	values, err := url.ParseQuery(transport.Requests[0].URL.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", values.Get("orderIdList"))
	assert.False(t, values.Has("clientOrderIDList"))

	_, err = client.NewCancelBatchOrdersRequest().Symbol("BTC-USDT").Do(context.Background())
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetOrderHistoryRequest_DefaultLimit(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/trade/allOrders", replyString(`{"code":0,"msg":"","data":{"orders":[]}}`))

	client := newTestClient(OpenAPIDialect, transport)
	orders, err := client.NewGetOrderHistoryRequest().Symbol("BTC-USDT").Do(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	values, err := url.ParseQuery(transport.Requests[0].URL.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "500", values.Get("limit"))
}

func TestCloseAllPositionsRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/openApi/swap/v2/trade/closeAllPositions", replyString(`{"code":0,"msg":"","data":{"success":[1735950529123455000],"failed":null}}`))

	client := newTestClient(OpenAPIDialect, transport)
	result, err := client.NewCloseAllPositionsRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1735950529123455000}, result.Success)
	assert.Empty(t, result.Failed)
}
