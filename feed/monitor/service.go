package monitor

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/exchange/backpack"
	"github.com/lukehollenback/bpx/feed/candle"
	"github.com/sirupsen/logrus"
)

const (
	Name = "≪monitor-service≫"

	tradeBuffer = 256
)

//
// Config describes what the monitor aggregates.
//
type Config struct {
	Symbol    string
	Intervals []exchange.Interval

	// Depth is how many closed candles every store remembers.
	Depth int

	// Backfill, when positive, seeds the stores with that much kline history before streaming.
	Backfill time.Duration
}

//
// Service turns the public trade stream of one market into candles and hands every closed candle
// to the registered handlers.
//
type Service struct {
	mu        *sync.Mutex
	client    *backpack.Client
	source    exchange.CandleSource
	logger    logrus.FieldLogger
	cfg       Config
	candles   *candle.Aggregator
	state     state
	cancel    context.CancelFunc
	chStopped chan bool
	err       error

	onIntervalCloseHandlers map[exchange.Interval][]func(*candle.Candle)
	onCandleCloseHandlers   []func(candle.Closed)
}

//
// New instantiates a monitor that streams from client. Backfill history is loaded through the
// same client.
//
func New(client *backpack.Client, cfg Config, logger logrus.FieldLogger) (*Service, error) {
	if cfg.Symbol == "" {
		return nil, errors.New("a market symbol is required")
	}

	if len(cfg.Intervals) == 0 {
		cfg.Intervals = []exchange.Interval{exchange.OneMinute}
	}

	if cfg.Depth < 1 {
		cfg.Depth = 1
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		mu:      &sync.Mutex{},
		client:  client,
		source:  client,
		logger:  logger.WithFields(logrus.Fields{constants.ComponentKey: Name, "symbol": cfg.Symbol}),
		cfg:     cfg,
		candles: candle.NewAggregator(cfg.Depth, cfg.Intervals...),
		state:   stopped,

		onIntervalCloseHandlers: make(map[exchange.Interval][]func(*candle.Candle)),
	}, nil
}

//
// SetCandleSource replaces where backfill history is loaded from.
//
func (o *Service) SetCandleSource(source exchange.CandleSource) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.source = source
}

//
// RegisterIntervalCloseHandler registers a handler to be executed whenever a candle of interval
// closes out.
//
func (o *Service) RegisterIntervalCloseHandler(interval exchange.Interval, handler func(*candle.Candle)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.onIntervalCloseHandlers[interval] = append(o.onIntervalCloseHandlers[interval], handler)
}

//
// RegisterCandleCloseHandler registers a handler to be executed whenever any candles close out,
// after the interval handlers have run.
//
func (o *Service) RegisterCandleCloseHandler(handler func(candle.Closed)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.onCandleCloseHandlers = append(o.onCandleCloseHandlers, handler)
}

//
// Candles exposes the underlying stores.
//
func (o *Service) Candles() *candle.Aggregator {
	return o.candles
}

//
// Err returns the error that ended the last run, if any. A run ended by Stop has none.
//
func (o *Service) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.err
}

//
// Start implements the feed.Service interface.
//
func (o *Service) Start() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != stopped || o.chStopped != nil {
		return nil, errors.New("the monitor service is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())

	o.cancel = cancel
	o.chStopped = make(chan bool, 1)
	o.err = nil

	o.state = streaming
	if o.cfg.Backfill > 0 {
		o.state = backfilling
	}

	go o.service(ctx, o.chStopped)

	chStarted := make(chan bool, 1)
	chStarted <- true

	o.logger.Info("Started.")

	return chStarted, nil
}

//
// Stop implements the feed.Service interface. It is safe to call after the service stopped on its
// own.
//
func (o *Service) Stop() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.chStopped == nil {
		return nil, errors.New("the monitor service is not running")
	}

	o.logger.WithField("state", o.state.String()).Info("Stopping...")

	o.cancel()

	chStopped := o.chStopped
	o.chStopped = nil

	return chStopped, nil
}

//
// service executes the top-level logic of the service. It is intended to be spun off into its own
// goroutine when the service is started.
//
func (o *Service) service(ctx context.Context, chStopped chan<- bool) {
	err := o.run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if err != nil {
		o.logger.WithError(err).Error("The trade feed failed.")
	}

	o.mu.Lock()
	o.err = err
	o.state = stopped
	o.mu.Unlock()

	chStopped <- true
}

func (o *Service) run(ctx context.Context) error {
	if o.cfg.Backfill > 0 {
		if err := o.backfill(ctx, time.Now()); err != nil {
			return err
		}
	}

	//
	// Relay trades from the subscription into the candle stores until either side gives up.
	//
	trades := make(chan backpack.TradeUpdate, tradeBuffer)
	subscribed := make(chan error, 1)

	go func() {
		subscribed <- o.client.SubscribeTrades(ctx, trades, o.cfg.Symbol)
	}()

	o.setState(streaming)

	for {
		select {
		case trade := <-trades:
			o.handleTrade(trade)

		case err := <-subscribed:
			//
			// Drain whatever was relayed before the subscription ended.
			//
			for {
				select {
				case trade := <-trades:
					o.handleTrade(trade)
				default:
					if err == nil {
						o.logger.Info("The exchange ended the trade stream.")
					}

					return err
				}
			}
		}
	}
}

func (o *Service) handleTrade(trade backpack.TradeUpdate) {
	at := time.UnixMicro(trade.Timestamp).UTC()

	closed, err := o.candles.Append(at, trade.Price, trade.Quantity)
	if err != nil {
		o.logger.WithError(err).WithField("trade_id", trade.TradeID).Warn("Dropping trade.")
	}

	if len(closed) > 0 {
		o.processClosedCandles(closed)
	}
}

//
// backfill seeds every store with the closed klines of the configured history, walking the range
// in twelve hour windows.
//
func (o *Service) backfill(ctx context.Context, now time.Time) error {
	o.mu.Lock()
	source := o.source
	o.mu.Unlock()

	for _, interval := range o.candles.Intervals() {
		store, _ := o.candles.Store(interval)
		seeded := 0

		from := now.Add(-o.cfg.Backfill)

		var prev *time.Time

		for {
			start, end, more := obtainCursors(from, now, prev)

			candles, err := source.RetrieveCandles(ctx, o.cfg.Symbol, interval, start, end)
			if err != nil {
				return err
			}

			for _, k := range candles {
				//
				// The last kline is usually still open, and windows may overlap on their boundary.
				//
				if k.EndTime().After(now) {
					continue
				}

				if last := store.History(); len(last) > 0 && k.StartTime().Before(last[len(last)-1].EndTime()) {
					continue
				}

				if err := store.Seed(k); err != nil {
					return err
				}

				seeded++
			}

			if !more {
				break
			}

			prev = &start
		}

		o.logger.WithFields(logrus.Fields{"interval": interval.String(), "candles": seeded}).Info("Backfilled.")
	}

	return nil
}

//
// obtainCursors initializes or slides the start and end of the window used to retrieve historical
// candles. Each call slides the window by twelve hours and reports whether another window
// follows.
//
func obtainCursors(from time.Time, to time.Time, prevStart *time.Time) (time.Time, time.Time, bool) {
	start := from
	if prevStart != nil {
		start = prevStart.Add(constants.TwelveHours)
	}

	end := start.Add(constants.TwelveHours)
	if !end.Before(to) {
		return start, to, false
	}

	return start, end, true
}

//
// processClosedCandles fires off the handlers for the closed candles provided.
//
func (o *Service) processClosedCandles(closed candle.Closed) {
	//
	// Handlers run without the lock held so that they may call back into the service.
	//
	o.mu.Lock()
	perInterval := make(map[exchange.Interval][]func(*candle.Candle), len(o.onIntervalCloseHandlers))
	for interval, handlers := range o.onIntervalCloseHandlers {
		perInterval[interval] = slices.Clone(handlers)
	}
	onClose := slices.Clone(o.onCandleCloseHandlers)
	o.mu.Unlock()

	for _, interval := range o.candles.Intervals() {
		c, ok := closed[interval]
		if !ok {
			continue
		}

		o.logger.WithField("interval", interval.String()).Debugf("Closed %s", c)

		for _, handler := range perInterval[interval] {
			handler(c)
		}
	}

	for _, handler := range onClose {
		handler(closed)
	}
}

func (o *Service) setState(s state) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = s
}
