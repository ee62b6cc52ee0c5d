package backpack

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamNames(t *testing.T) {
	assert.Equal(t, "ticker.SOL_USDC", TickerStream("SOL_USDC"))
	assert.Equal(t, "depth.SOL_USDC", DepthStream("SOL_USDC"))
	assert.Equal(t, "trade.SOL_USDC", TradeStream("SOL_USDC"))
	assert.Equal(t, "markPrice.SOL_USDC", MarkPriceStream("SOL_USDC"))
	assert.Equal(t, "account.orderUpdate", OrderUpdateStream(""))
	assert.Equal(t, "account.orderUpdate.SOL_USDC", OrderUpdateStream("SOL_USDC"))
	assert.Equal(t, "account.rfqUpdate", RFQUpdateStream())

	assert.True(t, IsPrivateStream(PositionUpdateStream("")))
	assert.False(t, IsPrivateStream("ticker.account"))
}

func TestSubscriptionFrameSignsPrivateStreams(t *testing.T) {
	client := newTestClient(t, WithSecret(testSecret()))

	raw, err := client.SubscriptionFrame("ticker.BTC_USDC", "account.orderUpdate")
	require.NoError(t, err)

	var frame subscription
	require.NoError(t, json.Unmarshal(raw, &frame))

	assert.Equal(t, "SUBSCRIBE", frame.Method)
	assert.Equal(t, []string{"ticker.BTC_USDC", "account.orderUpdate"}, frame.Params)
	require.Len(t, frame.Signature, 4)

	assert.Equal(t, client.VerifyingKey(), frame.Signature[0])
	assert.Equal(t, "1700000000000", frame.Signature[2])
	assert.Equal(t, "5000", frame.Signature[3])

	key, err := base64.StdEncoding.DecodeString(frame.Signature[0])
	require.NoError(t, err)

	sig, err := base64.StdEncoding.DecodeString(frame.Signature[1])
	require.NoError(t, err)

	assert.True(t, ed25519.Verify(key, []byte(SubscriptionSignee(1700000000000, 5000)), sig))
}

func TestSubscriptionFrameOmitsSignatureForPublicStreams(t *testing.T) {
	client := newTestClient(t, WithSecret(testSecret()))

	raw, err := client.SubscriptionFrame("ticker.BTC_USDC", "depth.BTC_USDC")
	require.NoError(t, err)

	assert.JSONEq(t, `{"method":"SUBSCRIBE","params":["ticker.BTC_USDC","depth.BTC_USDC"]}`, string(raw))
	assert.NotContains(t, string(raw), "signature")
}

func TestSubscriptionFrameWithoutKeys(t *testing.T) {
	client := newTestClient(t)

	_, err := client.SubscriptionFrame("ticker.BTC_USDC", "account.orderUpdate")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, []string{"account.orderUpdate"}, authErr.Streams)
	assert.Contains(t, err.Error(), "account.orderUpdate")
	assert.True(t, errors.Is(err, ErrNotAuthenticated))

	_, err = client.SubscriptionFrame()

	var reqErr *InvalidRequestError
	assert.True(t, errors.As(err, &reqErr))
}

//
// newStreamServer runs handler against every upgraded connection, after reading the subscription
// frame into the returned channel.
//
func newStreamServer(t *testing.T, handler func(conn *ws.Conn)) (string, <-chan subscription) {
	t.Helper()

	frames := make(chan subscription, 1)
	upgrader := ws.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		var frame subscription
		if !assert.NoError(t, conn.ReadJSON(&frame)) {
			return
		}

		frames <- frame

		handler(conn)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http"), frames
}

func TestSubscribeRelaysDataFrames(t *testing.T) {
	wsURL, frames := newStreamServer(t, func(conn *ws.Conn) {
		for _, msg := range []string{
			`not json`,
			`{"error":{"code":4005,"message":"Invalid stream"}}`,
			`{"stream":"ticker.SOL_USDC","data":{"e":"ticker","E":1694687692980000,"s":"SOL_USDC","a":"18.70","A":"1.000","b":"18.67","B":"2.000","u":"111063070","T":1694687692980000}}`,
			`{"stream":"ticker.SOL_USDC","data":{"E":"not a number"}}`,
			`{"result":null,"id":1}`,
			`{"stream":"ticker.SOL_USDC","data":{"e":"ticker","s":"SOL_USDC","a":"18.80","A":"3","b":"18.77","B":"4","u":111063071,"T":1694687693980000}}`,
		} {
			_ = conn.WriteMessage(ws.TextMessage, []byte(msg))
		}

		_ = conn.WriteMessage(ws.CloseMessage, ws.FormatCloseMessage(ws.CloseNormalClosure, "bye"))
	})

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	client := newTestClient(t, WithWSURL(wsURL), WithMetrics(metrics))

	out := make(chan TickerUpdate, 8)

	err := client.SubscribeTickers(context.Background(), out, "SOL_USDC")
	require.NoError(t, err)

	frame := <-frames
	assert.Equal(t, []string{"ticker.SOL_USDC"}, frame.Params)
	assert.Empty(t, frame.Signature)

	close(out)

	var updates []TickerUpdate
	for u := range out {
		updates = append(updates, u)
	}

	require.Len(t, updates, 2)
	assert.Equal(t, "SOL_USDC", updates[0].Symbol)
	assert.Equal(t, "18.7", updates[0].AskPrice.String())
	assert.Equal(t, "1", updates[0].AskQuantity.String())
	assert.Equal(t, FlexInt64(111063070), updates[0].UpdateID)
	assert.Equal(t, FlexInt64(111063071), updates[1].UpdateID)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.streamFrames.WithLabelValues("data")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.streamFrames.WithLabelValues("malformed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.streamFrames.WithLabelValues("error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.streamFrames.WithLabelValues("undecodable")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.streamFrames.WithLabelValues("other")))
}

func TestSubscribeSignsPrivateSubscriptions(t *testing.T) {
	wsURL, frames := newStreamServer(t, func(conn *ws.Conn) {
		_ = conn.WriteMessage(ws.TextMessage, []byte(`{"stream":"account.orderUpdate","data":{"e":"orderAccepted","E":1694687692980000,"s":"SOL_USD","c":123,"S":"Bid","o":"LIMIT","f":"GTC","q":"32123","Q":"32123","p":"20","X":"New","i":"1111343026172067","T":1694687692989999,"z":"0","Z":"0","V":"RejectTaker"}}`))
		_ = conn.WriteMessage(ws.CloseMessage, ws.FormatCloseMessage(ws.CloseNormalClosure, ""))
	})

	client := newTestClient(t, WithWSURL(wsURL), WithSecret(testSecret()))

	out := make(chan OrderUpdate, 1)

	require.NoError(t, client.SubscribeOrderUpdates(context.Background(), out, ""))

	frame := <-frames
	assert.Equal(t, []string{"account.orderUpdate"}, frame.Params)
	assert.Len(t, frame.Signature, 4)

	update := <-out
	assert.Equal(t, EventOrderAccepted, update.EventType)
	assert.Equal(t, OrderTypeLimit, update.OrderType)
	assert.Equal(t, OrderNew, update.Status)
	assert.Equal(t, int64(1694687692989999), update.Timestamp)
	require.NotNil(t, update.ClientOrderID)
	assert.Equal(t, uint64(123), *update.ClientOrderID)
}

func TestSubscribeReturnsOnCancellation(t *testing.T) {
	wsURL, _ := newStreamServer(t, func(conn *ws.Conn) {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	client := newTestClient(t, WithWSURL(wsURL))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- client.SubscribeTrades(ctx, make(chan TradeUpdate), "SOL_USDC")
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("subscription did not stop after cancellation")
	}
}

func TestSubscribeDialFailure(t *testing.T) {
	client := newTestClient(t, WithWSURL("ws://127.0.0.1:1"))

	err := client.SubscribeTickers(context.Background(), make(chan TickerUpdate), "SOL_USDC")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "got %v", err)
	assert.Equal(t, "dial", transportErr.Op)
}
