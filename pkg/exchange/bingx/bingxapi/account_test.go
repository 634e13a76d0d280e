package bingxapi

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bingx/pkg/testing/httptesting"
	"github.com/c9s/bingx/pkg/testutil"
)

func TestGetBalanceRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/user/balance", replyString(`{"code":0,"msg":"","data":{"balance":{"userId":"116***295","asset":"USDT","balance":"194.8212","equity":"196.7431","unrealizedProfit":"1.9219","realisedProfit":"-109.2504","availableMargin":"193.7609","usedMargin":"1.0602","freezedMargin":"0.0000"}}}`))

	client := newTestClient(OpenAPIDialect, transport)
	balance, err := client.NewGetBalanceRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USDT", balance.Asset)
	assert.True(t, balance.Equity.Equal(decimal.RequireFromString("196.7431")))

	req := transport.Requests[0]
	assert.Equal(t, "timestamp=1700000000000&signature=f46ab3ba35e725ca68d5a9bcd2499ff88a48f3c14e899a8c047f7b6cf82b6adf", req.URL.RawQuery)
	assert.Equal(t, "key", req.Header.Get("X-BX-APIKEY"))
}

func TestGetBalanceRequest_Rejected(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/user/balance", replyString(`{"code":100413,"msg":"Incorrect apiKey"}`))

	client := newTestClient(OpenAPIDialect, transport)
	_, err := client.NewGetBalanceRequest().Do(context.Background())
	rejection, ok := IsRemoteRejection(err)
	require.True(t, ok)
	assert.Equal(t, ResponseCode("100413"), rejection.Code)
}

func TestGetPositionsRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/user/positions", replyFile(t, "testdata/positions.json"))

	client := newTestClient(OpenAPIDialect, transport)
	positions, err := client.NewGetPositionsRequest().Symbol("BTC-USDT").Do(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)

	p := positions[0]
	assert.Equal(t, PositionSideLong, p.PositionSide)
	assert.True(t, p.Isolated)
	assert.Equal(t, 10, p.Leverage)
	assert.Equal(t, "33500.5", p.LiquidationPrice.String())
	assert.Equal(t, "symbol=BTC-USDT&timestamp=1700000000000&signature=1b6fe3bf9023571c440bafe04dfbb5c032537306917b1eda723654fae0ef1a4f", transport.Requests[0].URL.RawQuery)
}

func TestGetIncomeRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/user/income", replyString(`{"code":0,"msg":"","data":[{"symbol":"BTC-USDT","incomeType":"FUNDING_FEE","income":"-0.0123","asset":"USDT","info":"Funding Fee","time":1700000000000,"tranId":"9","tradeId":""}]}`))

	client := newTestClient(OpenAPIDialect, transport)
	incomes, err := client.NewGetIncomeRequest().IncomeType(IncomeTypeFundingFee).Limit(10).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, IncomeTypeFundingFee, incomes[0].IncomeType)
	assert.Equal(t, "-0.0123", incomes[0].Income.String())
	assert.Contains(t, transport.Requests[0].URL.RawQuery, "incomeType=FUNDING_FEE&limit=10&timestamp=")
}

func TestGetCommissionRateRequest(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/openApi/swap/v2/user/commissionRate", replyString(`{"code":0,"msg":"","data":{"commission":{"takerCommissionRate":0.0005,"makerCommissionRate":0.0002}}}`))

	client := newTestClient(OpenAPIDialect, transport)
	rate, err := client.NewGetCommissionRateRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.0005", rate.TakerCommissionRate.String())
	assert.Equal(t, "0.0002", rate.MakerCommissionRate.String())

	// the commission rate route is signed as well
	assert.Contains(t, transport.Requests[0].URL.RawQuery, "&signature=")
}

func TestClient_Integration(t *testing.T) {
	key, secret, ok := testutil.IntegrationTestConfigured(t, "BINGX")
	if !ok {
		t.Skip("BINGX_* env vars are not configured")
		return
	}

	client := NewClient()
	client.Auth(key, secret)

	ctx := context.Background()

	t.Run("server time", func(t *testing.T) {
		ms, err := client.ServerTime(ctx)
		require.NoError(t, err)
		assert.NotZero(t, ms)
	})

	t.Run("balance", func(t *testing.T) {
		balance, err := client.NewGetBalanceRequest().Do(ctx)
		require.NoError(t, err)
		t.Logf("balance: %+v", balance)
	})

	t.Run("positions", func(t *testing.T) {
		positions, err := client.NewGetPositionsRequest().Do(ctx)
		require.NoError(t, err)
		t.Logf("positions: %+v", positions)
	})

	t.Run("server timestamp mode", func(t *testing.T) {
		require.NoError(t, client.SetTimestampMode(TimestampModeServer))
		defer client.SetTimestampMode(TimestampModeLocal)

		_, err := client.NewGetOpenOrdersRequest().Do(ctx)
		require.NoError(t, err)
	})
}
