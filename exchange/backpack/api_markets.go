package backpack

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/lukehollenback/bpx/exchange"
)

func (o *Client) GetAssets(ctx context.Context) ([]Asset, error) {
	var assets []Asset

	if err := o.Get(ctx, APIAssets, nil, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

//
// GetMarkets lists markets, optionally restricted to the given market types.
//
func (o *Client) GetMarkets(ctx context.Context, marketTypes ...MarketType) ([]Market, error) {
	query := url.Values{}
	for _, t := range marketTypes {
		query.Add("marketType", string(t))
	}

	var markets []Market

	if err := o.Get(ctx, APIMarkets, query, &markets); err != nil {
		return nil, err
	}

	return markets, nil
}

func (o *Client) GetTicker(ctx context.Context, symbol string) (*Ticker, error) {
	var ticker Ticker

	if err := o.Get(ctx, APITicker, url.Values{"symbol": {symbol}}, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

func (o *Client) GetTickers(ctx context.Context) ([]Ticker, error) {
	var tickers []Ticker

	if err := o.Get(ctx, APITickers, nil, &tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}

//
// GetOrderBookDepth returns the order book of symbol. An empty limit uses the exchange default.
//
func (o *Client) GetOrderBookDepth(ctx context.Context, symbol string, limit DepthLimit) (*OrderBookDepth, error) {
	query := url.Values{"symbol": {symbol}}
	if limit != "" {
		query.Set("limit", string(limit))
	}

	var depth OrderBookDepth

	if err := o.Get(ctx, APIDepth, query, &depth); err != nil {
		return nil, err
	}

	return &depth, nil
}

//
// GetKlines returns the candles of symbol starting at start. The exchange takes both bounds in
// seconds; a zero end leaves the range open.
//
func (o *Client) GetKlines(ctx context.Context, symbol string, interval exchange.Interval, start time.Time, end time.Time) ([]Kline, error) {
	query := url.Values{
		"symbol":    {symbol},
		"interval":  {interval.String()},
		"startTime": {strconv.FormatInt(start.Unix(), 10)},
	}

	if !end.IsZero() {
		query.Set("endTime", strconv.FormatInt(end.Unix(), 10))
	}

	var klines []Kline

	if err := o.Get(ctx, APIKlines, query, &klines); err != nil {
		return nil, err
	}

	return klines, nil
}

//
// RetrieveCandles implements the exchange.CandleSource interface on top of GetKlines.
//
func (o *Client) RetrieveCandles(ctx context.Context, symbol string, interval exchange.Interval, start time.Time, end time.Time) ([]exchange.Candle, error) {
	klines, err := o.GetKlines(ctx, symbol, interval, start, end)
	if err != nil {
		return nil, err
	}

	candles := make([]exchange.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, &candle{kline: k, interval: interval})
	}

	return candles, nil
}

func (o *Client) GetFundingIntervalRates(ctx context.Context, symbol string) ([]FundingRate, error) {
	var rates []FundingRate

	if err := o.Get(ctx, APIFundingRates, url.Values{"symbol": {symbol}}, &rates); err != nil {
		return nil, err
	}

	return rates, nil
}

func (o *Client) GetMarkPrices(ctx context.Context) ([]MarkPrice, error) {
	var prices []MarkPrice

	if err := o.Get(ctx, APIMarkPrices, nil, &prices); err != nil {
		return nil, err
	}

	return prices, nil
}

//
// GetRecentTrades returns the latest public trades of symbol. A zero limit uses the exchange
// default.
//
func (o *Client) GetRecentTrades(ctx context.Context, symbol string, limit int) ([]Trade, error) {
	query := url.Values{"symbol": {symbol}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var trades []Trade

	if err := o.Get(ctx, APITrades, query, &trades); err != nil {
		return nil, err
	}

	return trades, nil
}

func (o *Client) GetHistoricalTrades(ctx context.Context, symbol string, limit int, offset int) ([]Trade, error) {
	query := url.Values{"symbol": {symbol}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var trades []Trade

	if err := o.Get(ctx, APITradesHistory, query, &trades); err != nil {
		return nil, err
	}

	return trades, nil
}
