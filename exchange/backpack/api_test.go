package backpack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/lukehollenback/bpx/exchange"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteOrdersSignsBatchInOrder(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, APIOrders, r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var payloads []map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &payloads))
		assert.Len(t, payloads, 2)

		verifySignature(t, r,
			"instruction=orderExecute&orderType=Limit&postOnly=true&price=10&quantity=1&side=Bid&symbol=SOL_USDC"+
				"&instruction=orderExecute&orderType=Limit&price=12&quantity=2&side=Ask&symbol=SOL_USDC",
		)

		_, _ = io.WriteString(w, `[
			{"orderType":"Limit","id":"a","symbol":"SOL_USDC","side":"Bid","quantity":"1","price":"10","postOnly":true,"status":"New","createdAt":1},
			{"orderType":"Limit","id":"b","symbol":"SOL_USDC","side":"Ask","quantity":"2","price":"12","status":"New","createdAt":2}
		]`)
	})

	postOnly := true
	ten, twelve := decimal.RequireFromString("10"), decimal.RequireFromString("12")
	one, two := decimal.RequireFromString("1"), decimal.RequireFromString("2")

	orders, err := client.ExecuteOrders(context.Background(), []ExecuteOrderPayload{
		{OrderType: OrderTypeLimit, Side: Bid, Symbol: "SOL_USDC", Price: &ten, Quantity: &one, PostOnly: &postOnly},
		{OrderType: OrderTypeLimit, Side: Ask, Symbol: "SOL_USDC", Price: &twelve, Quantity: &two},
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, "a", orders[0].ID())
	assert.Equal(t, "b", orders[1].ID())
}

func TestGetKlinesSendsSeconds(t *testing.T) {
	start := time.Unix(1700000000, 0)
	end := start.Add(time.Hour)

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		assert.Equal(t, "SOL_USDC", q.Get("symbol"))
		assert.Equal(t, "1h", q.Get("interval"))
		assert.Equal(t, "1700000000", q.Get("startTime"))
		assert.Equal(t, "1700003600", q.Get("endTime"))

		_, _ = io.WriteString(w, `[
			{"start":"2023-11-14 22:00:00","end":"2023-11-14 23:00:00","open":"10","high":"12","low":"9","close":"11","volume":"100","quoteVolume":"1050","trades":"42"},
			{"start":"2023-11-14 23:00:00","volume":"0","trades":"0"}
		]`)
	})

	klines, err := client.GetKlines(context.Background(), "SOL_USDC", exchange.OneHour, start, end)
	require.NoError(t, err)
	require.Len(t, klines, 2)

	candles, err := client.RetrieveCandles(context.Background(), "SOL_USDC", exchange.OneHour, start, end)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	first := candles[0]
	assert.Equal(t, time.Date(2023, 11, 14, 22, 0, 0, 0, time.UTC), first.StartTime())
	assert.Equal(t, time.Date(2023, 11, 14, 23, 0, 0, 0, time.UTC), first.EndTime())
	assert.Equal(t, "11", first.Close().String())
	assert.Equal(t, 42, first.Count())

	empty := candles[1]
	assert.True(t, empty.Open().IsZero())
	assert.Equal(t, empty.StartTime().Add(time.Hour), empty.EndTime())
}

func TestGetKlinesOpenEnded(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["endTime"]
		assert.False(t, present)

		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.GetKlines(context.Background(), "SOL_USDC", exchange.OneMinute, time.Unix(1700000000, 0), time.Time{})
	require.NoError(t, err)
}

func TestGetFillHistoryQuery(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		assert.Equal(t, "SOL_USDC", q.Get("symbol"))
		assert.Equal(t, "100", q.Get("from"))
		assert.Equal(t, "50", q.Get("limit"))
		assert.Equal(t, "Desc", q.Get("sortDirection"))

		verifySignature(t, r, "instruction=fillHistoryQueryAll&from=100&limit=50&sortDirection=Desc&symbol=SOL_USDC")

		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.GetFillHistory(context.Background(), FillHistoryParams{
		Symbol:        "SOL_USDC",
		From:          100,
		Limit:         50,
		SortDirection: Desc,
	})
	require.NoError(t, err)
}

func TestGetMarketsRepeatsMarketType(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"SPOT", "PERP"}, r.URL.Query()["marketType"])

		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.GetMarkets(context.Background(), Spot, Perp)
	require.NoError(t, err)
}

func TestRequestsAreCounted(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == APITicker {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		_, _ = io.WriteString(w, `[]`)
	}, WithMetrics(metrics), WithRateLimit(1000, 10))

	_, err := client.GetTickers(context.Background())
	require.NoError(t, err)

	_, err = client.GetTicker(context.Background(), "SOL_USDC")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, APITickers, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, APITicker, "400")))
}
