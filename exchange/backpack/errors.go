package backpack

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrNotAuthenticated is returned (wrapped in an *AuthError) whenever a signed operation is
	// attempted by a client that holds no key material.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMalformedSecret means the secret was not valid base64.
	ErrMalformedSecret = errors.New("malformed base64 secret")

	// ErrInvalidSecretKey means the secret decoded fine but is not a 32 byte Ed25519 seed.
	ErrInvalidSecretKey = errors.New("invalid secret key")
)

//
// ConfigError is returned by NewClient and NewKeyPair when the provided configuration cannot be
// used. No client is ever returned alongside one.
//
type ConfigError struct {
	Field string
	Err   error
}

func (o *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", o.Field, o.Err)
}

func (o *ConfigError) Unwrap() error {
	return o.Err
}

//
// AuthError is returned when an operation requires a signature but the client cannot produce one.
// Streams lists the private stream names that triggered the requirement, if any.
//
type AuthError struct {
	Reason  string
	Streams []string
}

func (o *AuthError) Error() string {
	if len(o.Streams) > 0 {
		return fmt.Sprintf("%s: private streams require a secret: %s", ErrNotAuthenticated, strings.Join(o.Streams, ", "))
	}

	if o.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrNotAuthenticated, o.Reason)
	}

	return ErrNotAuthenticated.Error()
}

func (o *AuthError) Unwrap() error {
	return ErrNotAuthenticated
}

//
// InvalidRequestError is returned before any I/O when a request cannot be canonicalized or is
// missing required parameters.
//
type InvalidRequestError struct {
	Reason string
	Err    error
}

func (o *InvalidRequestError) Error() string {
	if o.Err != nil {
		return fmt.Sprintf("invalid request: %s: %s", o.Reason, o.Err)
	}

	return "invalid request: " + o.Reason
}

func (o *InvalidRequestError) Unwrap() error {
	return o.Err
}

//
// TransportError wraps failures of the underlying HTTP or websocket layer. The request may or may
// not have reached the exchange.
//
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (o *TransportError) Error() string {
	if o.URL == "" {
		return fmt.Sprintf("%s: %s", o.Op, o.Err)
	}

	return fmt.Sprintf("%s %s: %s", o.Op, o.URL, o.Err)
}

func (o *TransportError) Unwrap() error {
	return o.Err
}

//
// Timeout reports whether the failure was caused by a deadline or timeout.
//
func (o *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(o.Err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

//
// APIError is returned for every non-2xx response. Message carries the response body exactly as
// the exchange sent it.
//
type APIError struct {
	StatusCode int
	Message    string
}

func (o *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", o.StatusCode, o.Message)
}

func (o *APIError) ErrorCode() int {
	return o.StatusCode
}

func (o *APIError) ErrorMessage() string {
	return o.Message
}

//
// DecodeError is returned when a 2xx response body does not match the expected shape.
//
type DecodeError struct {
	Body []byte
	Err  error
}

func (o *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %s", o.Err)
}

func (o *DecodeError) Unwrap() error {
	return o.Err
}
