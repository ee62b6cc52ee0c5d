package backpack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	PrivateStreamPrefix = "account."

	subscribeMethod = "SUBSCRIBE"
	closeGrace      = time.Second
)

//
// IsPrivateStream reports whether subscribing to the stream requires a signature.
//
func IsPrivateStream(stream string) bool {
	return strings.HasPrefix(stream, PrivateStreamPrefix)
}

func TickerStream(symbol string) string {
	return "ticker." + symbol
}

func DepthStream(symbol string) string {
	return "depth." + symbol
}

func TradeStream(symbol string) string {
	return "trade." + symbol
}

func KlineStream(interval exchange.Interval, symbol string) string {
	return "kline." + interval.String() + "." + symbol
}

func MarkPriceStream(symbol string) string {
	return "markPrice." + symbol
}

//
// OrderUpdateStream names the private order update stream, for all markets when symbol is empty.
//
func OrderUpdateStream(symbol string) string {
	return privateStream("orderUpdate", symbol)
}

func PositionUpdateStream(symbol string) string {
	return privateStream("positionUpdate", symbol)
}

func RFQUpdateStream() string {
	return privateStream("rfqUpdate", "")
}

func privateStream(name string, symbol string) string {
	if symbol == "" {
		return PrivateStreamPrefix + name
	}

	return PrivateStreamPrefix + name + "." + symbol
}

//
// subscription is the control frame sent right after the socket opens.
//
type subscription struct {
	Method    string   `json:"method"`
	Params    []string `json:"params"`
	Signature []string `json:"signature,omitempty"`
}

//
// SubscriptionFrame renders the frame that subscribes to streams. It carries a signature only if
// at least one of the streams is private.
//
func (o *Client) SubscriptionFrame(streams ...string) ([]byte, error) {
	frame, err := o.subscriptionFrame(streams)
	if err != nil {
		return nil, err
	}

	return json.Marshal(frame)
}

func (o *Client) subscriptionFrame(streams []string) (*subscription, error) {
	if len(streams) == 0 {
		return nil, &InvalidRequestError{Reason: "at least one stream is required"}
	}

	var private []string

	for _, stream := range streams {
		if IsPrivateStream(stream) {
			private = append(private, stream)
		}
	}

	frame := &subscription{
		Method: subscribeMethod,
		Params: streams,
	}

	if len(private) == 0 {
		return frame, nil
	}

	if o.keys == nil {
		return nil, &AuthError{Streams: private}
	}

	timestamp := o.timestamp()

	frame.Signature = []string{
		o.keys.VerifyingKeyBase64(),
		o.keys.signBase64(SubscriptionSignee(timestamp, o.window)),
		strconv.FormatInt(timestamp, 10),
		strconv.FormatInt(o.window, 10),
	}

	return frame, nil
}

//
// Subscribe opens a websocket to the client's streaming URL, subscribes to streams, and relays the
// "data" payload of every inbound frame to out, decoded as T. Frames that are not JSON, error
// frames, and payloads that do not decode into T are logged and skipped.
//
// Subscribe blocks until the exchange closes the connection (nil is returned), the connection
// fails (a *TransportError), or ctx is done (ctx.Err()). It never reconnects. Sends on out block,
// so the capacity of out decides how much the feed may run ahead of its consumer.
//
func Subscribe[T any](ctx context.Context, client *Client, out chan<- T, streams ...string) error {
	frame, err := client.subscriptionFrame(streams)
	if err != nil {
		return err
	}

	logger := client.logger.WithField("streams", strings.Join(streams, ","))

	//
	// Connect and subscribe.
	//
	dialer := ws.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: constants.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, client.wsURL, nil)
	if err != nil {
		return &TransportError{Op: "dial", URL: client.wsURL, Err: err}
	}
	defer conn.Close()

	if err := conn.WriteJSON(frame); err != nil {
		return &TransportError{Op: "subscribe", URL: client.wsURL, Err: err}
	}

	logger.Info("Subscribed.")

	//
	// Tear the socket down once the caller is no longer interested, which unblocks the read loop.
	//
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(
				ws.CloseMessage,
				ws.FormatCloseMessage(ws.CloseNormalClosure, ""),
				time.Now().Add(closeGrace),
			)
			_ = conn.Close()

		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			var closeErr *ws.CloseError
			if errors.As(err, &closeErr) {
				logger.WithField("code", closeErr.Code).Info("Connection closed by the exchange.")

				return nil
			}

			return &TransportError{Op: "read", URL: client.wsURL, Err: err}
		}

		if !gjson.ValidBytes(msg) {
			client.metrics.observeFrame("malformed")
			logger.WithField("frame", string(msg)).Warn("Skipping frame that is not JSON.")

			continue
		}

		parsed := gjson.ParseBytes(msg)

		if data := parsed.Get("data"); data.Exists() {
			var payload T

			if err := json.Unmarshal([]byte(data.Raw), &payload); err != nil {
				client.metrics.observeFrame("undecodable")
				logger.WithError(err).WithField("stream", parsed.Get("stream").String()).Warn("Skipping payload that could not be decoded.")

				continue
			}

			client.metrics.observeFrame("data")

			select {
			case out <- payload:
			case <-ctx.Done():
				return ctx.Err()
			}

			continue
		}

		if e := parsed.Get("error"); e.Exists() {
			client.metrics.observeFrame("error")
			logger.WithField("error", e.Raw).Error("The exchange reported a stream error.")

			continue
		}

		client.metrics.observeFrame("other")
		logger.WithFields(logrus.Fields{"frame": string(msg)}).Debug("Ignoring frame.")
	}
}

//
// SubscribeOrderUpdates relays private order updates, for all markets when symbol is empty.
//
func (o *Client) SubscribeOrderUpdates(ctx context.Context, out chan<- OrderUpdate, symbol string) error {
	return Subscribe(ctx, o, out, OrderUpdateStream(symbol))
}

func (o *Client) SubscribeRFQUpdates(ctx context.Context, out chan<- RFQUpdate) error {
	return Subscribe(ctx, o, out, RFQUpdateStream())
}

func (o *Client) SubscribeTickers(ctx context.Context, out chan<- TickerUpdate, symbols ...string) error {
	return Subscribe(ctx, o, out, streamsFor(TickerStream, symbols)...)
}

func (o *Client) SubscribeDepth(ctx context.Context, out chan<- DepthUpdate, symbols ...string) error {
	return Subscribe(ctx, o, out, streamsFor(DepthStream, symbols)...)
}

func (o *Client) SubscribeTrades(ctx context.Context, out chan<- TradeUpdate, symbols ...string) error {
	return Subscribe(ctx, o, out, streamsFor(TradeStream, symbols)...)
}

func streamsFor(name func(string) string, symbols []string) []string {
	streams := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		streams = append(streams, name(symbol))
	}

	return streams
}
