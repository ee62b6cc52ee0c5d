package indicator

import (
	"fmt"

	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/structs/evictingqueue"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

//
// average is a moving average of one length, simple or exponential.
//
type average struct {
	length    int
	smoothing decimal.Decimal
	value     decimal.Decimal
	prev      decimal.Decimal
	samples   int
}

func newAverage(length int) *average {
	//
	// EMA Smoothing Factor = 2 ÷ (number of time periods + 1)
	//
	return &average{
		length:    length,
		smoothing: two.Div(decimal.NewFromInt(int64(length)).Add(constants.One())),
	}
}

//
// Crossover tracks a short and a long moving average over candle closes and reports when the short
// one crosses the long one.
//
type Crossover struct {
	closes      *evictingqueue.EvictingQueue[decimal.Decimal]
	short       *average
	long        *average
	exponential bool
	last        Signal
}

//
// NewCrossover instantiates a crossover of the given lengths, in periods. Exponential averages are
// primed with the simple average of their first full window.
//
func NewCrossover(shortLen int, longLen int, exponential bool) (*Crossover, error) {
	if shortLen < 1 || longLen <= shortLen {
		return nil, fmt.Errorf("invalid moving average lengths (short: %d, long: %d)", shortLen, longLen)
	}

	return &Crossover{
		closes:      evictingqueue.New[decimal.Decimal](longLen),
		short:       newAverage(shortLen),
		long:        newAverage(longLen),
		exponential: exponential,
	}, nil
}

//
// Update calculates a newly closed period into both averages and returns the resulting signal.
// None is returned until both averages have a current and a previous value and whenever no
// crossover happened.
//
func (o *Crossover) Update(closePrice decimal.Decimal) Signal {
	o.closes.Add(closePrice)

	o.advance(o.short, closePrice)
	o.advance(o.long, closePrice)

	if !o.Warm() {
		return None
	}

	shortAbove := o.short.value.GreaterThan(o.long.value)
	shortAbovePrev := o.short.prev.GreaterThan(o.long.prev)
	shortBelow := o.short.value.LessThan(o.long.value)
	shortBelowPrev := o.short.prev.LessThan(o.long.prev)

	signal := None

	switch {
	case shortAbove && !shortAbovePrev:
		signal = UptrendDetected
	case shortBelow && !shortBelowPrev:
		signal = DowntrendDetected
	}

	if signal != None {
		o.last = signal
	}

	return signal
}

func (o *Crossover) advance(avg *average, closePrice decimal.Decimal) {
	if o.closes.Len() < avg.length {
		return
	}

	var next decimal.Decimal

	if o.exponential && avg.samples > 0 {
		// EMA = (close - previous EMA) × smoothing factor + previous EMA
		next = closePrice.Sub(avg.value).Mul(avg.smoothing).Add(avg.value)
	} else {
		next = o.simpleAverage(avg.length)
	}

	avg.prev = avg.value
	avg.value = next
	avg.samples++
}

//
// simpleAverage averages the most recent lookback closes.
//
func (o *Crossover) simpleAverage(lookback int) decimal.Decimal {
	closes := o.closes.Slice()

	sum := decimal.Zero
	for _, c := range closes[len(closes)-lookback:] {
		sum = sum.Add(c)
	}

	return sum.Div(decimal.NewFromInt(int64(lookback)))
}

//
// Warm reports whether enough periods have been seen for signals to be emitted.
//
func (o *Crossover) Warm() bool {
	return o.short.samples > 1 && o.long.samples > 1
}

func (o *Crossover) Short() decimal.Decimal {
	return o.short.value
}

func (o *Crossover) Long() decimal.Decimal {
	return o.long.value
}

//
// Spread returns how far the short average sits above the long one, in percent of the long one.
//
func (o *Crossover) Spread() decimal.Decimal {
	if o.long.value.IsZero() {
		return decimal.Zero
	}

	return o.short.value.Sub(o.long.value).Div(o.long.value).Mul(constants.Hundred())
}

//
// LastSignal returns the most recent signal other than None.
//
func (o *Crossover) LastSignal() Signal {
	return o.last
}
