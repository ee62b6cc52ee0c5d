package candle

import (
	"sort"
	"sync"
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/shopspring/decimal"
)

//
// Closed holds the candles closed out by a single trade, keyed by interval.
//
type Closed map[exchange.Interval]*Candle

//
// Aggregator fans each trade out to one store per interval.
//
type Aggregator struct {
	mu        *sync.Mutex
	intervals []exchange.Interval
	stores    map[exchange.Interval]*Store
}

//
// NewAggregator instantiates a store for every distinct interval, each remembering up to depth
// closed candles.
//
func NewAggregator(depth int, intervals ...exchange.Interval) *Aggregator {
	o := &Aggregator{
		mu:     &sync.Mutex{},
		stores: make(map[exchange.Interval]*Store),
	}

	for _, interval := range intervals {
		if _, ok := o.stores[interval]; ok {
			continue
		}

		o.stores[interval] = NewStore(interval, depth)
		o.intervals = append(o.intervals, interval)
	}

	sort.Slice(o.intervals, func(i, j int) bool { return o.intervals[i] < o.intervals[j] })

	return o
}

//
// Intervals lists the aggregated intervals, shortest first.
//
func (o *Aggregator) Intervals() []exchange.Interval {
	return append([]exchange.Interval(nil), o.intervals...)
}

func (o *Aggregator) Store(interval exchange.Interval) (*Store, bool) {
	s, ok := o.stores[interval]

	return s, ok
}

//
// Append adds the trade to every store. The first error stops the fan out.
//
func (o *Aggregator) Append(at time.Time, price decimal.Decimal, quantity decimal.Decimal) (Closed, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	closed := make(Closed)

	for _, interval := range o.intervals {
		c, err := o.stores[interval].Append(at, price, quantity)
		if err != nil {
			return closed, err
		}

		if c != nil {
			closed[interval] = c
		}
	}

	return closed, nil
}
