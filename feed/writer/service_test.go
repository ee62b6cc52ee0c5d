package writer

import (
	"encoding/csv"
	"io"
	"os"
	"testing"
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/feed/candle"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOutputsCandles(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	o := New(t.TempDir(), "SOL_USDC", logger)

	started, err := o.Start()
	require.NoError(t, err)
	<-started

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := candle.New(start, time.Minute, decimal.NewFromInt(10), decimal.NewFromInt(2))
	require.NoError(t, c.Append(start.Add(time.Second), decimal.NewFromInt(12), decimal.NewFromInt(2)))

	require.NoError(t, o.Write(exchange.OneMinute, c))

	stopped, err := o.Stop()
	require.NoError(t, err)
	<-stopped

	f, err := os.Open(o.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"StartTime", "Interval", "Open", "High", "Low", "Close", "Volume", "Count", "Average"}, rows[0])
	assert.Equal(t, []string{"2024-01-01T00:00:00Z", "1m", "10", "12", "10", "12", "4", "2", "11.00000000"}, rows[1])
	assert.Equal(t, "Close", Close.String())
}

func TestWriterRequiresStart(t *testing.T) {
	o := New(t.TempDir(), "SOL_USDC", nil)

	c := candle.New(time.Now(), time.Minute, decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.Error(t, o.Write(exchange.OneMinute, c))

	stopped, err := o.Stop()
	require.NoError(t, err)
	assert.True(t, <-stopped)
}
