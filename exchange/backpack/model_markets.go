package backpack

import (
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/shopspring/decimal"
)

type Asset struct {
	Symbol string  `json:"symbol"`
	Tokens []Token `json:"tokens"`
}

type Token struct {
	Blockchain        Blockchain       `json:"blockchain"`
	DepositEnabled    bool             `json:"depositEnabled"`
	MinimumDeposit    decimal.Decimal  `json:"minimumDeposit"`
	WithdrawEnabled   bool             `json:"withdrawEnabled"`
	MinimumWithdrawal decimal.Decimal  `json:"minimumWithdrawal"`
	MaximumWithdrawal *decimal.Decimal `json:"maximumWithdrawal,omitempty"`
	WithdrawalFee     decimal.Decimal  `json:"withdrawalFee"`
}

type Market struct {
	Symbol      string        `json:"symbol"`
	BaseSymbol  string        `json:"baseSymbol"`
	QuoteSymbol string        `json:"quoteSymbol"`
	MarketType  MarketType    `json:"marketType,omitempty"`
	Filters     MarketFilters `json:"filters"`
}

//
// PriceDecimalPlaces returns how many decimal places the market accepts on prices. Orders with a
// more precise price are rejected by the exchange.
//
func (o *Market) PriceDecimalPlaces() int32 {
	return decimalPlaces(o.Filters.Price.TickSize)
}

//
// QuantityDecimalPlaces returns how many decimal places the market accepts on quantities.
//
func (o *Market) QuantityDecimalPlaces() int32 {
	return decimalPlaces(o.Filters.Quantity.StepSize)
}

func decimalPlaces(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}

	return 0
}

type MarketFilters struct {
	Price    PriceFilters     `json:"price"`
	Quantity QuantityFilters  `json:"quantity"`
	Leverage *LeverageFilters `json:"leverage,omitempty"`
}

type PriceFilters struct {
	MinPrice decimal.Decimal  `json:"minPrice"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`
	TickSize decimal.Decimal  `json:"tickSize"`
}

type QuantityFilters struct {
	MinQuantity decimal.Decimal  `json:"minQuantity"`
	MaxQuantity *decimal.Decimal `json:"maxQuantity,omitempty"`
	StepSize    decimal.Decimal  `json:"stepSize"`
}

type LeverageFilters struct {
	MinLeverage decimal.Decimal `json:"minLeverage"`
	MaxLeverage decimal.Decimal `json:"maxLeverage"`
	StepSize    decimal.Decimal `json:"stepSize"`
}

type Ticker struct {
	Symbol             string          `json:"symbol"`
	FirstPrice         decimal.Decimal `json:"firstPrice"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	High               decimal.Decimal `json:"high"`
	Low                decimal.Decimal `json:"low"`
	Volume             decimal.Decimal `json:"volume"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	Trades             FlexInt64       `json:"trades"`
}

//
// PriceLevel is a [price, quantity] pair of an order book side.
//
type PriceLevel [2]decimal.Decimal

func (o PriceLevel) Price() decimal.Decimal {
	return o[0]
}

func (o PriceLevel) Quantity() decimal.Decimal {
	return o[1]
}

type OrderBookDepth struct {
	Asks         []PriceLevel `json:"asks"`
	Bids         []PriceLevel `json:"bids"`
	LastUpdateID FlexInt64    `json:"lastUpdateId"`
	Timestamp    Timestamp    `json:"timestamp,omitempty"`
}

//
// Kline is a historical candle. It satisfies exchange.Candle once its span is known, see
// RetrieveCandles.
//
type Kline struct {
	Start       Timestamp        `json:"start"`
	End         *Timestamp       `json:"end,omitempty"`
	OpenPrice   *decimal.Decimal `json:"open,omitempty"`
	HighPrice   *decimal.Decimal `json:"high,omitempty"`
	LowPrice    *decimal.Decimal `json:"low,omitempty"`
	ClosePrice  *decimal.Decimal `json:"close,omitempty"`
	BaseVolume  decimal.Decimal  `json:"volume"`
	QuoteVolume *decimal.Decimal `json:"quoteVolume,omitempty"`
	Trades      FlexInt64        `json:"trades"`
}

//
// candle adapts a Kline to exchange.Candle. Empty klines carry no prices; they are reported as
// zero.
//
type candle struct {
	kline    Kline
	interval exchange.Interval
}

var _ exchange.Candle = (*candle)(nil)

func (o *candle) StartTime() time.Time {
	return o.kline.Start.Time()
}

func (o *candle) EndTime() time.Time {
	if o.kline.End != nil {
		return o.kline.End.Time()
	}

	return o.StartTime().Add(o.interval.Duration())
}

func (o *candle) Open() decimal.Decimal   { return orZero(o.kline.OpenPrice) }
func (o *candle) High() decimal.Decimal   { return orZero(o.kline.HighPrice) }
func (o *candle) Low() decimal.Decimal    { return orZero(o.kline.LowPrice) }
func (o *candle) Close() decimal.Decimal  { return orZero(o.kline.ClosePrice) }
func (o *candle) Volume() decimal.Decimal { return o.kline.BaseVolume }
func (o *candle) Count() int              { return int(o.kline.Trades) }

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	return *d
}

type FundingRate struct {
	Symbol               string          `json:"symbol"`
	IntervalEndTimestamp Timestamp       `json:"intervalEndTimestamp"`
	FundingRate          decimal.Decimal `json:"fundingRate"`
}

type MarkPrice struct {
	Symbol               string          `json:"symbol"`
	FundingRate          decimal.Decimal `json:"fundingRate"`
	IndexPrice           decimal.Decimal `json:"indexPrice"`
	MarkPrice            decimal.Decimal `json:"markPrice"`
	NextFundingTimestamp Timestamp       `json:"nextFundingTimestamp"`
}

type Trade struct {
	ID            string          `json:"id"`
	Price         decimal.Decimal `json:"price"`
	Quantity      decimal.Decimal `json:"quantity"`
	QuoteQuantity decimal.Decimal `json:"quoteQuantity"`
	Timestamp     Timestamp       `json:"timestamp"`
	IsBuyerMaker  bool            `json:"isBuyerMaker"`
}
