package monitor

type state int

const (
	stopped     state = iota // The monitor service is not running.
	backfilling              // The monitor service is seeding its candle stores from the exchange's kline endpoint.
	streaming                // The monitor service is subscribed to the trade stream and aggregating trades.
)

func (o state) String() string {
	return [...]string{"stopped", "backfilling", "streaming"}[o]
}
