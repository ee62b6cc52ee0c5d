package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Candle generically provides an interface to objects that represent candlesticks (a.k.a. klines)
// provided in a response from a call to an exchange's API endpoint.
//
type Candle interface {

	//
	// StartTime returns the opening instant of the candle.
	//
	StartTime() time.Time

	//
	// EndTime returns the closing instant of the candle. As an example, a one minute candle might
	// start at 2020/8/25 00:00:00 and end at 2020/8/25 00:01:00.
	//
	EndTime() time.Time

	Open() decimal.Decimal
	High() decimal.Decimal
	Low() decimal.Decimal
	Close() decimal.Decimal

	//
	// Volume returns the traded base quantity of the candle.
	//
	Volume() decimal.Decimal

	//
	// Count returns the number of trades that make up the candle.
	//
	Count() int
}
