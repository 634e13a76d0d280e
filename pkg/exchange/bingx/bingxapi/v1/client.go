// Package v1 is the legacy swap API (api-swap-rest.bingbon.pro). Requests are signed
// with the base64 scheme over METHOD + PATH + params and the api key is sent as the
// first signed parameter.
package v1

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
)

type Client struct {
	*bingxapi.RestClient
}

func NewClient() *Client {
	return &Client{RestClient: bingxapi.NewClientWithDialect(bingxapi.LegacyDialect)}
}

// NewClientWithRestClient wraps a client that was built with the legacy dialect.
func NewClientWithRestClient(client *bingxapi.RestClient) *Client {
	return &Client{RestClient: client}
}

type Account struct {
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	Equity           decimal.Decimal `json:"equity"`
	AvailableMargin  decimal.Decimal `json:"availableMargin"`
	UsedMargin       decimal.Decimal `json:"usedMargin"`
	FreezedMargin    decimal.Decimal `json:"freezedMargin"`
	UnrealizedProfit decimal.Decimal `json:"unrealizedProfit"`
	RealisedProfit   decimal.Decimal `json:"realisedProfit"`
	LongSideLeverage decimal.Decimal `json:"longSideLeverage,omitempty"`
	ShortLeverage    decimal.Decimal `json:"shortSideLeverage,omitempty"`
}

// GetBalance queries the account of the currency. The currency field is always
// signed, an empty currency included.
func (c *Client) GetBalance(ctx context.Context, currency string) (*Account, error) {
	params := bingxapi.NewParams().Add("currency", currency)

	req, err := c.NewSignedRequest(ctx, http.MethodPost, "/api/v1/user/getBalance", params)
	if err != nil {
		return nil, err
	}

	apiResponse, err := bingxapi.SendAPIRequest(c, req)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := apiResponse.DecodeData("account", &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetLatestPrice returns the last trade price of the symbol.
func (c *Client) GetLatestPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	params := bingxapi.NewParams().Add("symbol", symbol)

	req, err := c.NewPublicRequest(ctx, http.MethodGet, "/api/v1/market/getLatestPrice", params)
	if err != nil {
		return decimal.Zero, err
	}

	apiResponse, err := bingxapi.SendAPIRequest(c, req)
	if err != nil {
		return decimal.Zero, err
	}

	var price decimal.Decimal
	if err := apiResponse.DecodeData("tradePrice", &price); err != nil {
		return decimal.Zero, err
	}

	return price, nil
}
