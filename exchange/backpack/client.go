package backpack

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	Name = "≪backpack-client≫"
)

var _ exchange.CandleSource = (*Client)(nil)

//
// Client implements authenticated access to the Backpack Exchange REST and websocket APIs. It is
// immutable once built and safe for concurrent use.
//
type Client struct {
	baseURL    *url.URL
	wsURL      string
	keys       *KeyPair
	window     int64
	headers    http.Header
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
	logger     logrus.FieldLogger
	now        func() time.Time
}

type settings struct {
	baseURL    string
	wsURL      string
	secret     string
	headers    http.Header
	timeout    time.Duration
	window     int64
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *Metrics
	logger     logrus.FieldLogger
	now        func() time.Time
}

//
// Option customizes a Client under construction.
//
type Option func(*settings)

func WithBaseURL(baseURL string) Option {
	return func(o *settings) {
		o.baseURL = baseURL
	}
}

func WithWSURL(wsURL string) Option {
	return func(o *settings) {
		o.wsURL = wsURL
	}
}

//
// WithSecret supplies the base64 encoded Ed25519 seed used to sign requests. Without it the client
// is limited to public endpoints and streams.
//
func WithSecret(secret string) Option {
	return func(o *settings) {
		o.secret = secret
	}
}

//
// WithHeaders adds headers that are sent with every REST request.
//
func WithHeaders(headers http.Header) Option {
	return func(o *settings) {
		for k, v := range headers {
			for _, vv := range v {
				o.headers.Add(k, vv)
			}
		}
	}
}

//
// WithTimeout bounds each REST round trip. It is ignored when WithHTTPClient is also given.
//
func WithTimeout(timeout time.Duration) Option {
	return func(o *settings) {
		o.timeout = timeout
	}
}

//
// WithWindow sets the signature validity window, in milliseconds.
//
func WithWindow(window int64) Option {
	return func(o *settings) {
		o.window = window
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *settings) {
		o.httpClient = httpClient
	}
}

//
// WithRateLimit paces outbound REST requests to at most perSecond, allowing bursts of burst.
//
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *settings) {
		o.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *settings) {
		o.metrics = metrics
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *settings) {
		o.logger = logger
	}
}

//
// WithClock replaces the source of request timestamps.
//
func WithClock(now func() time.Time) Option {
	return func(o *settings) {
		o.now = now
	}
}

//
// NewClient builds a client from the provided options. Any configuration problem is reported as a
// *ConfigError and no client is returned.
//
func NewClient(opts ...Option) (*Client, error) {
	s := &settings{
		baseURL: constants.DefaultBaseURL,
		wsURL:   constants.DefaultWSURL,
		headers: make(http.Header),
		timeout: constants.DefaultTimeout,
		window:  constants.DefaultWindow,
		logger:  logrus.StandardLogger(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	//
	// Validate the endpoints.
	//
	baseURL, err := parseEndpoint(s.baseURL, "http", "https")
	if err != nil {
		return nil, &ConfigError{Field: "base url", Err: err}
	}

	if _, err := parseEndpoint(s.wsURL, "ws", "wss"); err != nil {
		return nil, &ConfigError{Field: "websocket url", Err: err}
	}

	if s.window <= 0 {
		return nil, &ConfigError{Field: "window", Err: fmt.Errorf("must be positive, got %d", s.window)}
	}

	//
	// Decode the key material, if there is any.
	//
	var keys *KeyPair

	if s.secret != "" {
		if keys, err = NewKeyPair(s.secret); err != nil {
			return nil, err
		}
	}

	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: s.timeout}
	}

	o := &Client{
		baseURL:    baseURL,
		wsURL:      strings.TrimRight(s.wsURL, "/"),
		keys:       keys,
		window:     s.window,
		headers:    s.headers,
		httpClient: httpClient,
		limiter:    s.limiter,
		metrics:    s.metrics,
		logger:     s.logger.WithField(constants.ComponentKey, Name),
		now:        s.now,
	}

	o.logger.WithFields(logrus.Fields{
		"base_url":      o.baseURL.String(),
		"authenticated": o.keys != nil,
	}).Debug("Client created.")

	return o, nil
}

func parseEndpoint(raw string, schemes ...string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	for _, scheme := range schemes {
		if u.Scheme == scheme && u.Host != "" {
			return u, nil
		}
	}

	return nil, errors.New("expected an absolute " + strings.Join(schemes, " or ") + " url, got " + raw)
}

//
// Authenticated reports whether the client holds key material.
//
func (o *Client) Authenticated() bool {
	return o.keys != nil
}

//
// VerifyingKey returns the base64 public key the client signs as, or an empty string for an
// unauthenticated client.
//
func (o *Client) VerifyingKey() string {
	if o.keys == nil {
		return ""
	}

	return o.keys.VerifyingKeyBase64()
}

func (o *Client) BaseURL() string {
	return o.baseURL.String()
}

func (o *Client) WSURL() string {
	return o.wsURL
}

func (o *Client) Window() int64 {
	return o.window
}

func (o *Client) timestamp() int64 {
	return o.now().UnixMilli()
}
