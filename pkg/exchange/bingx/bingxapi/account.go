package bingxapi

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type Balance struct {
	UserID           string          `json:"userId"`
	Asset            string          `json:"asset"`
	Balance          decimal.Decimal `json:"balance"`
	Equity           decimal.Decimal `json:"equity"`
	UnrealizedProfit decimal.Decimal `json:"unrealizedProfit"`
	RealisedProfit   decimal.Decimal `json:"realisedProfit"`
	AvailableMargin  decimal.Decimal `json:"availableMargin"`
	UsedMargin       decimal.Decimal `json:"usedMargin"`
	FreezedMargin    decimal.Decimal `json:"freezedMargin"`
}

// GetBalanceRequest queries the asset information of the perpetual account.
type GetBalanceRequest struct {
	client SignedAPIClient
}

func (c *RestClient) NewGetBalanceRequest() *GetBalanceRequest {
	return &GetBalanceRequest{client: c}
}

func (r *GetBalanceRequest) Do(ctx context.Context) (*Balance, error) {
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/user/balance", nil)
	if err != nil {
		return nil, err
	}

	var balance Balance
	if err := apiResponse.DecodeData("balance", &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

type Position struct {
	Symbol             string          `json:"symbol"`
	PositionID         string          `json:"positionId"`
	PositionSide       PositionSide    `json:"positionSide"`
	Isolated           bool            `json:"isolated"`
	PositionAmt        decimal.Decimal `json:"positionAmt"`
	AvailableAmt       decimal.Decimal `json:"availableAmt"`
	UnrealizedProfit   decimal.Decimal `json:"unrealizedProfit"`
	RealisedProfit     decimal.Decimal `json:"realisedProfit"`
	InitialMargin      decimal.Decimal `json:"initialMargin"`
	AvgPrice           decimal.Decimal `json:"avgPrice"`
	LiquidationPrice   decimal.Decimal `json:"liquidationPrice"`
	Leverage           int             `json:"leverage"`
	PositionValue      decimal.Decimal `json:"positionValue"`
	MarkPrice          decimal.Decimal `json:"markPrice"`
	RiskRate           decimal.Decimal `json:"riskRate"`
	MaxMarginReduction decimal.Decimal `json:"maxMarginReduction"`
}

type GetPositionsRequest struct {
	client SignedAPIClient

	symbol *string
}

func (c *RestClient) NewGetPositionsRequest() *GetPositionsRequest {
	return &GetPositionsRequest{client: c}
}

// Symbol limits the result to one symbol, all positions are returned otherwise.
func (r *GetPositionsRequest) Symbol(symbol string) *GetPositionsRequest {
	r.symbol = &symbol
	return r
}

func (r *GetPositionsRequest) Do(ctx context.Context) ([]Position, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/user/positions", params)
	if err != nil {
		return nil, err
	}

	var positions []Position
	if err := apiResponse.DecodeData("", &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

type IncomeType string

const (
	IncomeTypeTransfer        IncomeType = "TRANSFER"
	IncomeTypeRealizedPnL     IncomeType = "REALIZED_PNL"
	IncomeTypeFundingFee      IncomeType = "FUNDING_FEE"
	IncomeTypeTradingFee      IncomeType = "TRADING_FEE"
	IncomeTypeInsuranceClear  IncomeType = "INSURANCE_CLEAR"
	IncomeTypeTrialFund       IncomeType = "TRIAL_FUND"
	IncomeTypeADL             IncomeType = "ADL"
	IncomeTypeSystemDeduction IncomeType = "SYSTEM_DEDUCTION"
)

// Income is one capital flow record of the perpetual account.
type Income struct {
	Symbol     string          `json:"symbol"`
	IncomeType IncomeType      `json:"incomeType"`
	Income     decimal.Decimal `json:"income"`
	Asset      string          `json:"asset"`
	Info       string          `json:"info"`
	Time       int64           `json:"time"`
	TranID     string          `json:"tranId"`
	TradeID    string          `json:"tradeId"`
}

type GetIncomeRequest struct {
	client SignedAPIClient

	symbol     *string
	incomeType *IncomeType
	startTime  *int64
	endTime    *int64
	limit      *int
}

func (c *RestClient) NewGetIncomeRequest() *GetIncomeRequest {
	return &GetIncomeRequest{client: c}
}

func (r *GetIncomeRequest) Symbol(symbol string) *GetIncomeRequest {
	r.symbol = &symbol
	return r
}

func (r *GetIncomeRequest) IncomeType(incomeType IncomeType) *GetIncomeRequest {
	r.incomeType = &incomeType
	return r
}

func (r *GetIncomeRequest) StartTime(startTime int64) *GetIncomeRequest {
	r.startTime = &startTime
	return r
}

func (r *GetIncomeRequest) EndTime(endTime int64) *GetIncomeRequest {
	r.endTime = &endTime
	return r
}

func (r *GetIncomeRequest) Limit(limit int) *GetIncomeRequest {
	r.limit = &limit
	return r
}

func (r *GetIncomeRequest) Do(ctx context.Context) ([]Income, error) {
	params := NewParams().
		Add("symbol", r.symbol).
		Add("incomeType", r.incomeType).
		Add("startTime", r.startTime).
		Add("endTime", r.endTime).
		Add("limit", r.limit)

	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/user/income", params)
	if err != nil {
		return nil, err
	}

	var incomes []Income
	if err := apiResponse.DecodeData("", &incomes); err != nil {
		return nil, err
	}

	return incomes, nil
}

type CommissionRate struct {
	TakerCommissionRate decimal.Decimal `json:"takerCommissionRate"`
	MakerCommissionRate decimal.Decimal `json:"makerCommissionRate"`
}

type GetCommissionRateRequest struct {
	client SignedAPIClient
}

func (c *RestClient) NewGetCommissionRateRequest() *GetCommissionRateRequest {
	return &GetCommissionRateRequest{client: c}
}

func (r *GetCommissionRateRequest) Do(ctx context.Context) (*CommissionRate, error) {
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/user/commissionRate", nil)
	if err != nil {
		return nil, err
	}

	var rate CommissionRate
	if err := apiResponse.DecodeData("commission", &rate); err != nil {
		return nil, err
	}

	return &rate, nil
}
