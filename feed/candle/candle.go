package candle

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/shopspring/decimal"
)

//
// ErrOutsideCandle is returned when a trade is appended to a candle whose span does not contain
// it.
//
var ErrOutsideCandle = errors.New("trade falls outside of the candle")

//
// Candle aggregates the trades of a fixed span of time, [start, start+duration).
//
type Candle struct {
	mu       *sync.Mutex
	start    time.Time
	duration time.Duration
	open     decimal.Decimal
	close    decimal.Decimal
	high     decimal.Decimal
	low      decimal.Decimal
	volume   decimal.Decimal
	notional decimal.Decimal
	cnt      int
}

var _ exchange.Candle = (*Candle)(nil)

//
// New instantiates a candle from its first trade.
//
func New(start time.Time, duration time.Duration, price decimal.Decimal, quantity decimal.Decimal) *Candle {
	return &Candle{
		mu:       &sync.Mutex{},
		start:    start,
		duration: duration,
		open:     price,
		close:    price,
		high:     price,
		low:      price,
		volume:   quantity,
		notional: price.Mul(quantity),
		cnt:      1,
	}
}

//
// FromExchange copies a closed historical candle.
//
func FromExchange(c exchange.Candle) *Candle {
	o := &Candle{
		mu:       &sync.Mutex{},
		start:    c.StartTime(),
		duration: c.EndTime().Sub(c.StartTime()),
		open:     c.Open(),
		close:    c.Close(),
		high:     c.High(),
		low:      c.Low(),
		volume:   c.Volume(),
		cnt:      c.Count(),
	}

	//
	// Historical candles carry no notional, so the average price is approximated by the typical
	// price.
	//
	o.notional = o.high.Add(o.low).Add(o.close).Div(decimal.NewFromInt(3)).Mul(o.volume)

	return o
}

//
// Append calculates a trade into the candle. Trades outside of the candle's span are rejected with
// ErrOutsideCandle.
//
func (o *Candle) Append(at time.Time, price decimal.Decimal, quantity decimal.Decimal) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if at.Before(o.start) || !at.Before(o.start.Add(o.duration)) {
		return fmt.Errorf("%w: trade at %s, %s candle starting at %s", ErrOutsideCandle, at, o.duration, o.start)
	}

	o.close = price

	if price.GreaterThan(o.high) {
		o.high = price
	}

	if price.LessThan(o.low) {
		o.low = price
	}

	o.volume = o.volume.Add(quantity)
	o.notional = o.notional.Add(price.Mul(quantity))
	o.cnt++

	return nil
}

func (o *Candle) StartTime() time.Time {
	return o.start
}

func (o *Candle) EndTime() time.Time {
	return o.start.Add(o.duration)
}

func (o *Candle) Duration() time.Duration {
	return o.duration
}

func (o *Candle) Open() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.open
}

func (o *Candle) High() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.high
}

func (o *Candle) Low() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.low
}

func (o *Candle) Close() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.close
}

func (o *Candle) Volume() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.volume
}

func (o *Candle) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.cnt
}

//
// Average returns the volume weighted average price of the candle, or its close when no volume
// was traded.
//
func (o *Candle) Average() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.volume.IsZero() {
		return o.close
	}

	return o.notional.Div(o.volume)
}

func (o *Candle) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return fmt.Sprintf(
		"%s O:%s H:%s L:%s C:%s V:%s N:%d",
		o.start.UTC().Format(time.RFC3339), o.open, o.high, o.low, o.close, o.volume, o.cnt,
	)
}
