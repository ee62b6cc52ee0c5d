package backpack

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1700000000000)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	return seed
}

func testSecret() string {
	return base64.StdEncoding.EncodeToString(testSeed())
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

//
// countingTransport fails every request and keeps track of how many it saw.
//
type countingTransport struct {
	calls int32
}

func (o *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&o.calls, 1)

	return nil, errors.New("no network in tests")
}

func (o *countingTransport) Calls() int {
	return int(atomic.LoadInt32(&o.calls))
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	base := []Option{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return fixedNow }),
	}

	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)

	return client
}

//
// newServerClient points an authenticated client at handler.
//
func newServerClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newTestClient(t, append([]Option{WithBaseURL(server.URL), WithSecret(testSecret())}, opts...)...)
}

//
// verifySignature checks the authentication headers of r against the expected signee prefix, i.e.
// everything before the validity suffix. It runs inside handlers, so it only asserts.
//
func verifySignature(t *testing.T, r *http.Request, prefix string) bool {
	t.Helper()

	key, err := base64.StdEncoding.DecodeString(r.Header.Get(HeaderAPIKey))
	if !assert.NoError(t, err) {
		return false
	}

	sig, err := base64.StdEncoding.DecodeString(r.Header.Get(HeaderSignature))
	if !assert.NoError(t, err) {
		return false
	}

	signee := prefix + "&timestamp=" + r.Header.Get(HeaderTimestamp) + "&window=" + r.Header.Get(HeaderWindow)

	return assert.True(t, ed25519.Verify(ed25519.PublicKey(key), []byte(signee), sig), "signature does not cover %q", signee)
}
