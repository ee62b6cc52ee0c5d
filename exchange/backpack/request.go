package backpack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lukehollenback/bpx/constants"
	"github.com/sirupsen/logrus"
)

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderWindow    = "X-Window"

	ContentTypeJSON = "application/json; charset=utf-8"
)

//
// Prepare builds an unsigned request against the client's base URL. A non-nil payload is encoded
// as the JSON body.
//
func (o *Client) Prepare(ctx context.Context, method string, path string, query url.Values, payload interface{}) (*http.Request, error) {
	u := o.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	//
	// Encode the body. HTML escaping is disabled so that the bytes on the wire are the bytes that
	// get flattened into the signee.
	//
	var body io.Reader

	if payload != nil {
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(payload); err != nil {
			return nil, &InvalidRequestError{Reason: "payload could not be encoded", Err: err}
		}

		body = bytes.NewReader(bytes.TrimRight(buf.Bytes(), "\n"))
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &InvalidRequestError{Reason: "request could not be built", Err: err}
	}

	for k, v := range o.headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}

	req.Header.Set("User-Agent", constants.UserAgent)

	if body != nil {
		switch method {
		case http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodPut:
			req.Header.Set("Content-Type", ContentTypeJSON)
		}
	}

	return req, nil
}

//
// MaybeSign attaches the authentication headers to req if its endpoint requires a signature. The
// request is modified in place and returned. Requests to unsigned endpoints are returned untouched.
//
func (o *Client) MaybeSign(req *http.Request) (*http.Request, error) {
	instruction, ok := ResolveInstruction(req.Method, req.URL.Path)
	if !ok {
		return req, nil
	}

	if o.keys == nil {
		return nil, &AuthError{Reason: instruction + " requires a signed request"}
	}

	//
	// Gather what goes into the signee. Repeated query keys collapse onto their last value.
	//
	query := make(map[string]string)
	for k, v := range req.URL.Query() {
		query[k] = v[len(v)-1]
	}

	body, err := peekBody(req)
	if err != nil {
		return nil, &InvalidRequestError{Reason: "request body could not be read", Err: err}
	}

	timestamp := o.timestamp()

	signee, err := Signee(instruction, query, body, timestamp, o.window)
	if err != nil {
		return nil, err
	}

	o.logger.WithFields(logrus.Fields{
		"instruction": instruction,
		"signee":      signee,
	}).Debug("Signing request.")

	req.Header.Set(HeaderAPIKey, o.keys.VerifyingKeyBase64())
	req.Header.Set(HeaderSignature, o.keys.signBase64(signee))
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	req.Header.Set(HeaderWindow, strconv.FormatInt(o.window, 10))

	return req, nil
}

//
// peekBody returns the request body without consuming it.
//
func peekBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}

	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

//
// Dispatch sends req exactly once. Failures below HTTP are returned as a *TransportError.
//
func (o *Client) Dispatch(req *http.Request) (*http.Response, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(req.Context()); err != nil {
			return nil, &TransportError{Op: "rate limit", URL: req.URL.Path, Err: err}
		}
	}

	start := time.Now()

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.metrics.observeRequest(req.Method, req.URL.Path, 0, time.Since(start))

		return nil, &TransportError{Op: req.Method, URL: req.URL.Path, Err: err}
	}

	o.metrics.observeRequest(req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	return resp, nil
}

//
// Classify consumes resp. Non-2xx responses become an *APIError holding the raw body. Otherwise the
// body is decoded into out, unless out is nil.
//
func Classify(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Body: body, Err: err}
	}

	return nil
}

//
// do runs a request through every stage: prepare, sign, dispatch, and classify.
//
func (o *Client) do(ctx context.Context, method string, path string, query url.Values, payload interface{}, out interface{}) error {
	req, err := o.Prepare(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if req, err = o.MaybeSign(req); err != nil {
		return err
	}

	resp, err := o.Dispatch(req)
	if err != nil {
		return err
	}

	return Classify(resp, out)
}

//
// Get issues a GET against path and decodes the response into out.
//
func (o *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return o.do(ctx, http.MethodGet, path, query, nil, out)
}

func (o *Client) Post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	return o.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (o *Client) Patch(ctx context.Context, path string, payload interface{}, out interface{}) error {
	return o.do(ctx, http.MethodPatch, path, nil, payload, out)
}

func (o *Client) Delete(ctx context.Context, path string, payload interface{}, out interface{}) error {
	return o.do(ctx, http.MethodDelete, path, nil, payload, out)
}
