package candle

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/structs/evictingqueue"
	"github.com/shopspring/decimal"
)

//
// ErrClosedCandle is returned when a trade belongs to a candle that has already been closed out.
//
var ErrClosedCandle = errors.New("cannot modify closed-out candles")

//
// Store holds the candles of a single interval: the one currently being built and a bounded
// history of closed ones. For example, one might instantiate a 1-minute store and a 15-minute
// store for the same trade feed.
//
type Store struct {
	mu       *sync.Mutex
	interval exchange.Interval
	current  *Candle
	history  *evictingqueue.EvictingQueue[*Candle]
}

//
// NewStore instantiates an empty store that remembers up to depth closed candles.
//
func NewStore(interval exchange.Interval, depth int) *Store {
	return &Store{
		mu:       &sync.Mutex{},
		interval: interval,
		history:  evictingqueue.New[*Candle](depth),
	}
}

func (o *Store) Interval() exchange.Interval {
	return o.interval
}

//
// Seed adds an already closed candle to the history, e.g. one loaded from the exchange's kline
// endpoint. Candles must be seeded in chronological order and before any trade is appended.
//
func (o *Store) Seed(c exchange.Candle) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		return errors.New("cannot seed a store that is already aggregating trades")
	}

	//
	// Calendar months vary in length, so only their direction is checked.
	//
	d := c.EndTime().Sub(c.StartTime())
	if d <= 0 || (o.interval != exchange.OneMonth && d != o.interval.Duration()) {
		return fmt.Errorf("cannot seed candle of duration %s into a store of %s candles", d, o.interval)
	}

	if last, ok := o.history.Newest(); ok && c.StartTime().Before(last.EndTime()) {
		return fmt.Errorf("candle starting at %s overlaps the previous one", c.StartTime())
	}

	o.history.Add(FromExchange(c))

	return nil
}

//
// Append calculates a trade into the store. If the trade starts a new candle, the candle it closes
// out is returned. Intervals in which nothing traded produce no candle.
//
func (o *Store) Append(at time.Time, price decimal.Decimal, quantity decimal.Decimal) (*Candle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	start := at.Truncate(o.interval.Duration())

	//
	// Reject trades that belong to the history.
	//
	if o.current == nil {
		if last, ok := o.history.Newest(); ok && at.Before(last.EndTime()) {
			return nil, fmt.Errorf("%w: trade at %s", ErrClosedCandle, at)
		}

		o.current = New(start, o.interval.Duration(), price, quantity)

		return nil, nil
	}

	if at.Before(o.current.StartTime()) {
		return nil, fmt.Errorf("%w: trade at %s", ErrClosedCandle, at)
	}

	if at.Before(o.current.EndTime()) {
		return nil, o.current.Append(at, price, quantity)
	}

	//
	// Close out the current candle and start the next one.
	//
	closed := o.current

	o.history.Add(closed)
	o.current = New(start, o.interval.Duration(), price, quantity)

	return closed, nil
}

//
// Current returns the candle being built, if any.
//
func (o *Store) Current() *Candle {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.current
}

//
// History returns the remembered closed candles, oldest first.
//
func (o *Store) History() []*Candle {
	return o.history.Slice()
}
