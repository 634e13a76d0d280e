package bingxapi

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type GetMarginTypeRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetMarginTypeRequest() *GetMarginTypeRequest {
	return &GetMarginTypeRequest{client: c}
}

func (r *GetMarginTypeRequest) Symbol(symbol string) *GetMarginTypeRequest {
	r.symbol = symbol
	return r
}

func (r *GetMarginTypeRequest) Do(ctx context.Context) (MarginType, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/marginType", params)
	if err != nil {
		return "", err
	}

	var marginType MarginType
	if err := apiResponse.DecodeData("marginType", &marginType); err != nil {
		return "", err
	}

	return marginType, nil
}

// SetMarginTypeRequest switches a symbol between isolated and cross margin. The
// change affects every position of the symbol.
type SetMarginTypeRequest struct {
	client SignedAPIClient

	symbol     string
	marginType string
}

func (c *RestClient) NewSetMarginTypeRequest() *SetMarginTypeRequest {
	return &SetMarginTypeRequest{client: c}
}

func (r *SetMarginTypeRequest) Symbol(symbol string) *SetMarginTypeRequest {
	r.symbol = symbol
	return r
}

func (r *SetMarginTypeRequest) MarginType(marginType string) *SetMarginTypeRequest {
	r.marginType = marginType
	return r
}

func (r *SetMarginTypeRequest) Do(ctx context.Context) error {
	marginType, err := ParseMarginType(r.marginType)
	if err != nil {
		return err
	}

	params := NewParams().
		Add("marginType", marginType).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, "/openApi/swap/v2/trade/marginType", params, WithRecvWindow())
	if err != nil {
		return err
	}

	return apiResponse.Validate()
}

type Leverage struct {
	LongLeverage     int `json:"longLeverage"`
	ShortLeverage    int `json:"shortLeverage"`
	MaxLongLeverage  int `json:"maxLongLeverage"`
	MaxShortLeverage int `json:"maxShortLeverage"`
}

type GetLeverageRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetLeverageRequest() *GetLeverageRequest {
	return &GetLeverageRequest{client: c}
}

func (r *GetLeverageRequest) Symbol(symbol string) *GetLeverageRequest {
	r.symbol = symbol
	return r
}

func (r *GetLeverageRequest) Do(ctx context.Context) (*Leverage, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/trade/leverage", params)
	if err != nil {
		return nil, err
	}

	var leverage Leverage
	if err := apiResponse.DecodeData("", &leverage); err != nil {
		return nil, err
	}

	return &leverage, nil
}

type SetLeverageResult struct {
	Leverage int    `json:"leverage"`
	Symbol   string `json:"symbol"`
}

type SetLeverageRequest struct {
	client SignedAPIClient

	symbol   string
	side     string
	leverage int
}

func (c *RestClient) NewSetLeverageRequest() *SetLeverageRequest {
	return &SetLeverageRequest{client: c}
}

func (r *SetLeverageRequest) Symbol(symbol string) *SetLeverageRequest {
	r.symbol = symbol
	return r
}

// Side accepts LONG/SHORT and their aliases, see NormalizePositionSide.
func (r *SetLeverageRequest) Side(side string) *SetLeverageRequest {
	r.side = side
	return r
}

func (r *SetLeverageRequest) Leverage(leverage int) *SetLeverageRequest {
	r.leverage = leverage
	return r
}

func (r *SetLeverageRequest) Do(ctx context.Context) (*SetLeverageResult, error) {
	side, err := NormalizePositionSide(r.side)
	if err != nil {
		return nil, err
	}

	if r.leverage <= 0 {
		return nil, newValidationError("leverage", r.leverage, "must be positive")
	}

	params := NewParams().
		Add("leverage", r.leverage).
		Add("side", side).
		Add("symbol", r.symbol)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, "/openApi/swap/v2/trade/leverage", params, WithRecvWindow())
	if err != nil {
		return nil, err
	}

	var result SetLeverageResult
	if err := apiResponse.DecodeData("", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AdjustPositionMarginRequest adds margin to, or removes margin from, an isolated
// position.
type AdjustPositionMarginRequest struct {
	client SignedAPIClient

	symbol       string
	amount       decimal.Decimal
	adjustment   MarginAdjustment
	positionSide *string
}

func (c *RestClient) NewAdjustPositionMarginRequest() *AdjustPositionMarginRequest {
	return &AdjustPositionMarginRequest{client: c}
}

func (r *AdjustPositionMarginRequest) Symbol(symbol string) *AdjustPositionMarginRequest {
	r.symbol = symbol
	return r
}

func (r *AdjustPositionMarginRequest) Amount(amount decimal.Decimal) *AdjustPositionMarginRequest {
	r.amount = amount
	return r
}

func (r *AdjustPositionMarginRequest) Adjustment(adjustment MarginAdjustment) *AdjustPositionMarginRequest {
	r.adjustment = adjustment
	return r
}

func (r *AdjustPositionMarginRequest) PositionSide(positionSide string) *AdjustPositionMarginRequest {
	r.positionSide = &positionSide
	return r
}

func (r *AdjustPositionMarginRequest) Do(ctx context.Context) error {
	if r.amount.Sign() <= 0 {
		return newValidationError("amount", r.amount, "must be positive")
	}

	if r.adjustment != MarginAdjustmentAdd && r.adjustment != MarginAdjustmentReduce {
		return newValidationError("type", r.adjustment, "expecting 1 (add) or 2 (reduce)")
	}

	var positionSide *PositionSide
	if r.positionSide != nil {
		side, err := NormalizePositionSide(*r.positionSide)
		if err != nil {
			return err
		}
		positionSide = &side
	}

	params := NewParams().
		Add("symbol", r.symbol).
		Add("amount", r.amount).
		Add("type", r.adjustment).
		Add("positionSide", positionSide)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodPost, "/openApi/swap/v2/trade/positionMargin", params, WithRecvWindow())
	if err != nil {
		return err
	}

	return apiResponse.Validate()
}
