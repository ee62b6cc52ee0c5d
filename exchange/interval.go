package exchange

import (
	"fmt"
	"time"
)

//
// Interval is an enum that represents various kline/candlestick intervals that can be retrieved
// from an exchange's historical data endpoints.
//
type Interval int

const (
	OneMinute Interval = iota
	ThreeMinute
	FiveMinute
	FifteenMinute
	ThirtyMinute
	OneHour
	TwoHour
	FourHour
	SixHour
	EightHour
	TwelveHour
	OneDay
	ThreeDay
	OneWeek
	OneMonth
)

var intervalNames = [...]string{
	"1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "8h", "12h", "1d", "3d", "1w", "1month",
}

var intervalDurations = [...]time.Duration{
	time.Minute,
	3 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	2 * time.Hour,
	4 * time.Hour,
	6 * time.Hour,
	8 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	30 * 24 * time.Hour,
}

func (o Interval) String() string {
	return intervalNames[o]
}

//
// Duration returns the nominal span of a candle of the interval. Months are treated as thirty
// days.
//
func (o Interval) Duration() time.Duration {
	return intervalDurations[o]
}

//
// ParseInterval maps the exchange's textual interval names (e.g. "15m", "1month") back onto the
// enum.
//
func ParseInterval(s string) (Interval, error) {
	for i, name := range intervalNames {
		if name == s {
			return Interval(i), nil
		}
	}

	return 0, fmt.Errorf("unknown candle interval %q", s)
}
