package exchange

import (
	"context"
	"time"
)

//
// CandleSource generically provides an interface to an object that can load historical candles
// from a cryptocurrency exchange's regular REST API.
//
// Whenever the call fails – whether due to a transport failure or an API rejection – the error
// will be non-nil and no candles will be returned.
//
type CandleSource interface {

	//
	// RetrieveCandles retrieves candles of the specified interval for the specified ticker symbol
	// within the specified time range.
	//
	RetrieveCandles(ctx context.Context, symbol string, interval Interval, start time.Time, end time.Time) ([]Candle, error)
}
