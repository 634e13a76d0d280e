package bingxapi

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type Contract struct {
	ContractID        string          `json:"contractId"`
	Symbol            string          `json:"symbol"`
	Size              decimal.Decimal `json:"size"`
	QuantityPrecision int             `json:"quantityPrecision"`
	PricePrecision    int             `json:"pricePrecision"`
	FeeRate           decimal.Decimal `json:"feeRate"`
	TradeMinLimit     decimal.Decimal `json:"tradeMinLimit"`
	Currency          string          `json:"currency"`
	Asset             string          `json:"asset"`
	Status            int             `json:"status"`
	ApiStateOpen      string          `json:"apiStateOpen"`
	ApiStateClose     string          `json:"apiStateClose"`
}

type GetContractsRequest struct {
	client SignedAPIClient
}

func (c *RestClient) NewGetContractsRequest() *GetContractsRequest {
	return &GetContractsRequest{client: c}
}

func (r *GetContractsRequest) Do(ctx context.Context) ([]Contract, error) {
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/contracts", nil)
	if err != nil {
		return nil, err
	}

	var contracts []Contract
	if err := apiResponse.DecodeData("", &contracts); err != nil {
		return nil, err
	}

	return contracts, nil
}

type LatestPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
	Time   int64           `json:"time"`
}

type GetLatestPriceRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetLatestPriceRequest() *GetLatestPriceRequest {
	return &GetLatestPriceRequest{client: c}
}

func (r *GetLatestPriceRequest) Symbol(symbol string) *GetLatestPriceRequest {
	r.symbol = symbol
	return r
}

func (r *GetLatestPriceRequest) Do(ctx context.Context) (*LatestPrice, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/price", params)
	if err != nil {
		return nil, err
	}

	// probe the price field so that an empty data object is reported as missing
	if err := apiResponse.DecodeData("price", nil); err != nil {
		return nil, err
	}

	var price LatestPrice
	if err := apiResponse.DecodeData("", &price); err != nil {
		return nil, err
	}

	return &price, nil
}

type Depth struct {
	Time int64         `json:"T"`
	Bids []PriceVolume `json:"bids"`
	Asks []PriceVolume `json:"asks"`
}

type GetDepthRequest struct {
	client SignedAPIClient

	symbol string
	limit  *int
}

func (c *RestClient) NewGetDepthRequest() *GetDepthRequest {
	return &GetDepthRequest{client: c}
}

func (r *GetDepthRequest) Symbol(symbol string) *GetDepthRequest {
	r.symbol = symbol
	return r
}

func (r *GetDepthRequest) Limit(limit int) *GetDepthRequest {
	r.limit = &limit
	return r
}

func (r *GetDepthRequest) Do(ctx context.Context) (*Depth, error) {
	params := NewParams().
		Add("symbol", r.symbol).
		Add("limit", r.limit)

	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/depth", params)
	if err != nil {
		return nil, err
	}

	var depth Depth
	if err := apiResponse.DecodeData("", &depth); err != nil {
		return nil, err
	}

	return &depth, nil
}

type Trade struct {
	Time         int64           `json:"time"`
	IsBuyerMaker bool            `json:"isBuyerMaker"`
	Price        decimal.Decimal `json:"price"`
	Qty          decimal.Decimal `json:"qty"`
	QuoteQty     decimal.Decimal `json:"quoteQty"`
}

type GetLatestTradesRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetLatestTradesRequest() *GetLatestTradesRequest {
	return &GetLatestTradesRequest{client: c}
}

func (r *GetLatestTradesRequest) Symbol(symbol string) *GetLatestTradesRequest {
	r.symbol = symbol
	return r
}

func (r *GetLatestTradesRequest) Do(ctx context.Context) ([]Trade, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/trades", params)
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := apiResponse.DecodeData("", &trades); err != nil {
		return nil, err
	}

	return trades, nil
}

// PremiumIndex carries the mark price, the index price and the funding rate.
type PremiumIndex struct {
	Symbol          string          `json:"symbol"`
	MarkPrice       decimal.Decimal `json:"markPrice"`
	IndexPrice      decimal.Decimal `json:"indexPrice"`
	LastFundingRate decimal.Decimal `json:"lastFundingRate"`
	NextFundingTime int64           `json:"nextFundingTime"`
}

type GetPremiumIndexRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetPremiumIndexRequest() *GetPremiumIndexRequest {
	return &GetPremiumIndexRequest{client: c}
}

func (r *GetPremiumIndexRequest) Symbol(symbol string) *GetPremiumIndexRequest {
	r.symbol = symbol
	return r
}

func (r *GetPremiumIndexRequest) Do(ctx context.Context) (*PremiumIndex, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/premiumIndex", params)
	if err != nil {
		return nil, err
	}

	for _, field := range []string{"markPrice", "indexPrice", "lastFundingRate"} {
		if err := apiResponse.DecodeData(field, nil); err != nil {
			return nil, err
		}
	}

	var index PremiumIndex
	if err := apiResponse.DecodeData("", &index); err != nil {
		return nil, err
	}

	return &index, nil
}

type FundingRate struct {
	Symbol      string          `json:"symbol"`
	FundingRate decimal.Decimal `json:"fundingRate"`
	FundingTime int64           `json:"fundingTime"`
}

type GetFundingRateHistoryRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetFundingRateHistoryRequest() *GetFundingRateHistoryRequest {
	return &GetFundingRateHistoryRequest{client: c}
}

func (r *GetFundingRateHistoryRequest) Symbol(symbol string) *GetFundingRateHistoryRequest {
	r.symbol = symbol
	return r
}

func (r *GetFundingRateHistoryRequest) Do(ctx context.Context) ([]FundingRate, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/fundingRate", params)
	if err != nil {
		return nil, err
	}

	var rates []FundingRate
	if err := apiResponse.DecodeData("", &rates); err != nil {
		return nil, err
	}

	return rates, nil
}

type KLine struct {
	Open   decimal.Decimal `json:"open"`
	Close  decimal.Decimal `json:"close"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Volume decimal.Decimal `json:"volume"`
	Time   int64           `json:"time"`
}

// GetKLinesRequest returns 500 candles when neither start nor end time is given,
// the maximum limit is 1440.
type GetKLinesRequest struct {
	client SignedAPIClient

	symbol    string
	interval  string
	startTime *int64
	endTime   *int64
	limit     *int
}

func (c *RestClient) NewGetKLinesRequest() *GetKLinesRequest {
	return &GetKLinesRequest{client: c}
}

func (r *GetKLinesRequest) Symbol(symbol string) *GetKLinesRequest {
	r.symbol = symbol
	return r
}

func (r *GetKLinesRequest) Interval(interval string) *GetKLinesRequest {
	r.interval = interval
	return r
}

// StartTime is in epoch milliseconds.
func (r *GetKLinesRequest) StartTime(startTime int64) *GetKLinesRequest {
	r.startTime = &startTime
	return r
}

// EndTime is in epoch milliseconds.
func (r *GetKLinesRequest) EndTime(endTime int64) *GetKLinesRequest {
	r.endTime = &endTime
	return r
}

func (r *GetKLinesRequest) Limit(limit int) *GetKLinesRequest {
	r.limit = &limit
	return r
}

func (r *GetKLinesRequest) Do(ctx context.Context) ([]KLine, error) {
	interval, err := ParseInterval(r.interval)
	if err != nil {
		return nil, err
	}

	params := NewParams().
		Add("symbol", r.symbol).
		Add("interval", interval).
		Add("startTime", r.startTime).
		Add("endTime", r.endTime).
		Add("limit", r.limit)

	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v3/quote/klines", params)
	if err != nil {
		return nil, err
	}

	var klines []KLine
	if err := apiResponse.DecodeData("", &klines); err != nil {
		return nil, err
	}

	return klines, nil
}

type OpenInterest struct {
	OpenInterest decimal.Decimal `json:"openInterest"`
	Symbol       string          `json:"symbol"`
	Time         int64           `json:"time"`
}

// GetOpenInterestRequest queries the open interest of the whole market on a symbol,
// not only the positions of the account.
type GetOpenInterestRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetOpenInterestRequest() *GetOpenInterestRequest {
	return &GetOpenInterestRequest{client: c}
}

func (r *GetOpenInterestRequest) Symbol(symbol string) *GetOpenInterestRequest {
	r.symbol = symbol
	return r
}

func (r *GetOpenInterestRequest) Do(ctx context.Context) (*OpenInterest, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/openInterest", params)
	if err != nil {
		return nil, err
	}

	var openInterest OpenInterest
	if err := apiResponse.DecodeData("", &openInterest); err != nil {
		return nil, err
	}

	return &openInterest, nil
}

type Ticker struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent string          `json:"priceChangePercent"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LastQty            decimal.Decimal `json:"lastQty"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	Volume             decimal.Decimal `json:"volume"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	OpenPrice          decimal.Decimal `json:"openPrice"`
	OpenTime           int64           `json:"openTime"`
	CloseTime          int64           `json:"closeTime"`
}

type GetTickerRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetTickerRequest() *GetTickerRequest {
	return &GetTickerRequest{client: c}
}

func (r *GetTickerRequest) Symbol(symbol string) *GetTickerRequest {
	r.symbol = symbol
	return r
}

func (r *GetTickerRequest) Do(ctx context.Context) (*Ticker, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doPublicRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/ticker", params)
	if err != nil {
		return nil, err
	}

	var ticker Ticker
	if err := apiResponse.DecodeData("", &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

type BookTicker struct {
	Symbol   string          `json:"symbol"`
	BidPrice decimal.Decimal `json:"bid_price"`
	BidQty   decimal.Decimal `json:"bid_qty"`
	AskPrice decimal.Decimal `json:"ask_price"`
	AskQty   decimal.Decimal `json:"ask_qty"`
}

// BestPrice returns the price an order of the given side is matched at: the best
// offer for BUY and the best bid for SELL.
func (t BookTicker) BestPrice(side SideType) decimal.Decimal {
	if side == SideTypeBuy {
		return t.AskPrice
	}
	return t.BidPrice
}

// GetBookTickerRequest queries the best bid and offer, the route is signed.
type GetBookTickerRequest struct {
	client SignedAPIClient

	symbol string
}

func (c *RestClient) NewGetBookTickerRequest() *GetBookTickerRequest {
	return &GetBookTickerRequest{client: c}
}

func (r *GetBookTickerRequest) Symbol(symbol string) *GetBookTickerRequest {
	r.symbol = symbol
	return r
}

func (r *GetBookTickerRequest) Do(ctx context.Context) (*BookTicker, error) {
	ticker, _, err := r.do(ctx)
	return ticker, err
}

func (r *GetBookTickerRequest) do(ctx context.Context) (*BookTicker, *APIResponse, error) {
	params := NewParams().Add("symbol", r.symbol)
	apiResponse, err := doSignedRequest(ctx, r.client, http.MethodGet, "/openApi/swap/v2/quote/bookTicker", params)
	if err != nil {
		return nil, nil, err
	}

	var ticker BookTicker
	if err := apiResponse.DecodeData("book_ticker", &ticker); err != nil {
		return nil, nil, err
	}

	return &ticker, apiResponse, nil
}
