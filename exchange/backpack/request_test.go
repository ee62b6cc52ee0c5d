package backpack

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedRequestWithoutKeysNeverDispatches(t *testing.T) {
	transport := &countingTransport{}

	client := newTestClient(t, WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.GetBalances(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Error(), "balanceQuery")

	assert.Equal(t, 0, transport.Calls())
}

func TestUnsignedRequestCarriesNoAuthHeaders(t *testing.T) {
	var seen http.Header

	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()

		assert.Equal(t, APIMarkets, r.URL.Path)
		_, _ = io.WriteString(w, `[]`)
	})

	markets, err := client.GetMarkets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, markets)

	for _, h := range []string{HeaderAPIKey, HeaderSignature, HeaderTimestamp, HeaderWindow} {
		assert.Empty(t, seen.Get(h), h)
	}
}

func TestMaybeSignLeavesUnmappedRequestsAlone(t *testing.T) {
	client := newTestClient(t, WithSecret(testSecret()))

	req, err := client.Prepare(context.Background(), http.MethodGet, APITicker, url.Values{"symbol": {"SOL_USDC"}}, nil)
	require.NoError(t, err)

	signed, err := client.MaybeSign(req)
	require.NoError(t, err)

	assert.Same(t, req, signed)
	assert.Empty(t, signed.Header.Get(HeaderSignature))
}

func TestSignedGetHeadersVerify(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, strconv.FormatInt(fixedNow.UnixMilli(), 10), r.Header.Get(HeaderTimestamp))
		assert.Equal(t, "5000", r.Header.Get(HeaderWindow))

		verifySignature(t, r, "instruction=balanceQuery")

		_, _ = io.WriteString(w, `{"SOL":{"available":"1.5","locked":"0.5","staked":"0"}}`)
	})

	balances, err := client.GetBalances(context.Background())
	require.NoError(t, err)

	require.Contains(t, balances, "SOL")
	assert.True(t, decimal.RequireFromString("2").Equal(balances["SOL"].Total()))
}

func TestSignedPostCoversBody(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ContentTypeJSON, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		signee, err := BuildQueryAndBodySignee("orderExecute", nil, body)
		assert.NoError(t, err)

		verifySignature(t, r, signee)

		_, _ = io.WriteString(w, `{"orderType":"Limit","id":"1","symbol":"SOL_USDC","side":"Bid","quantity":"1","price":"10.5","status":"New","createdAt":1700000000000}`)
	}, WithWindow(60000))

	price := decimal.RequireFromString("10.5")
	quantity := decimal.RequireFromString("1")

	order, err := client.ExecuteOrder(context.Background(), ExecuteOrderPayload{
		OrderType: OrderTypeLimit,
		Side:      Bid,
		Symbol:    "SOL_USDC",
		Price:     &price,
		Quantity:  &quantity,
	})
	require.NoError(t, err)

	require.NotNil(t, order.Limit)
	assert.Equal(t, "1", order.ID())
	assert.Equal(t, OrderNew, order.Status())
}

func TestSignedQueryUsesSortedParameters(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		verifySignature(t, r, "instruction=depositQueryAll&limit=10&offset=20")

		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.GetDeposits(context.Background(), 10, 20)
	require.NoError(t, err)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, "rate limited")
	})

	_, err := client.GetTicker(context.Background(), "SOL_USDC")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate limited", apiErr.Message)

	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestUnexpectedShapeBecomesDecodeError(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"symbol": 12}`)
	})

	_, err := client.GetTicker(context.Background(), "SOL_USDC")

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.Equal(t, `{"symbol": 12}`, string(decodeErr.Body))
}

func TestConnectionFailureBecomesTransportError(t *testing.T) {
	client := newTestClient(t, WithBaseURL("http://127.0.0.1:1"), WithTimeout(time.Second))

	_, err := client.GetMarkets(context.Background())

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "got %v", err)
	assert.Equal(t, http.MethodGet, transportErr.Op)
}

func TestPrepareSetsHeaders(t *testing.T) {
	client := newTestClient(t, WithHeaders(http.Header{"X-Custom": {"yes"}}))

	get, err := client.Prepare(context.Background(), http.MethodGet, APIMarkets, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "yes", get.Header.Get("X-Custom"))
	assert.Empty(t, get.Header.Get("Content-Type"))

	post, err := client.Prepare(context.Background(), http.MethodPost, APIOrder, nil, map[string]string{"note": "<&>"})
	require.NoError(t, err)

	assert.Equal(t, ContentTypeJSON, post.Header.Get("Content-Type"))

	body, err := io.ReadAll(post.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"note":"<&>"}`, string(body))
}

func TestPrepareRejectsUnencodablePayload(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Prepare(context.Background(), http.MethodPost, APIOrder, nil, map[string]interface{}{"c": make(chan int)})

	var reqErr *InvalidRequestError
	assert.True(t, errors.As(err, &reqErr))
}

func TestMissingOrderIdentifiersAreRejectedLocally(t *testing.T) {
	transport := &countingTransport{}

	client := newTestClient(t, WithSecret(testSecret()), WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.GetOpenOrder(context.Background(), "SOL_USDC", "", nil)

	var reqErr *InvalidRequestError
	assert.True(t, errors.As(err, &reqErr))

	_, err = client.ExecuteOrders(context.Background(), nil)
	assert.True(t, errors.As(err, &reqErr))

	assert.Equal(t, 0, transport.Calls())
}
