// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dexnet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"decred.org/xmrrpc/dex"
)

const defaultResponseSizeLimit = 1 << 20 // 1 MiB = 1,048,576 bytes

// ErrHTTPStatus is wrapped by the error returned from Do for any non-2xx
// response.
const ErrHTTPStatus = dex.ErrorKind("HTTP error")

// RequestOption are optional arguemnts to Post, PostJSON, or Do.
type RequestOption struct {
	responseSizeLimit int64
	header            *[2]string
	errThing          any
	client            *http.Client
}

// WithSizeLimit sets a size limit for a response. See defaultResponseSizeLimit
// for the default.
func WithSizeLimit(limit int64) *RequestOption {
	return &RequestOption{responseSizeLimit: limit}
}

// WithRequestHeader adds a header entry to the request.
func WithRequestHeader(k, v string) *RequestOption {
	h := [2]string{k, v}
	return &RequestOption{header: &h}
}

// WithErrorParsing adds parsing of response bodies for HTTP error responses.
// A body that is not JSON leaves thing untouched.
func WithErrorParsing(thing any) *RequestOption {
	return &RequestOption{errThing: thing}
}

// WithClient performs the request with the provided http.Client instead of
// http.DefaultClient. See NewClient.
func WithClient(c *http.Client) *RequestOption {
	return &RequestOption{client: c}
}

// Post peforms an HTTP POST request. If thing is non-nil, the response will
// be JSON-unmarshaled into thing.
func Post(ctx context.Context, uri string, thing any, body []byte, opts ...*RequestOption) error {
	var r io.Reader
	if len(body) > 0 {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, r)
	if err != nil {
		return fmt.Errorf("error constructing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return Do(req, thing, opts...)
}

// PostJSON marshals body and POSTs it to uri. The response is decoded into
// thing, if non-nil. Use a *json.RawMessage to receive the body verbatim.
func PostJSON(ctx context.Context, uri string, thing, body any, opts ...*RequestOption) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding request body: %w", err)
	}
	return Post(ctx, uri, thing, b, opts...)
}

// Do does the request and JSON-marshals the result into thing, if non-nil.
func Do(req *http.Request, thing any, opts ...*RequestOption) error {
	var sizeLimit int64 = defaultResponseSizeLimit
	var errThing any
	client := http.DefaultClient
	for _, opt := range opts {
		switch {
		case opt.responseSizeLimit > 0:
			sizeLimit = opt.responseSizeLimit
		case opt.header != nil:
			h := *opt.header
			k, v := h[0], h[1]
			req.Header.Add(k, v)
		case opt.errThing != nil:
			errThing = opt.errThing
		case opt.client != nil:
			client = opt.client
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error performing request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if errThing != nil {
			// Proxies and auth failures answer in plain text or html.
			b, _ := io.ReadAll(io.LimitReader(resp.Body, sizeLimit))
			if json.Valid(b) {
				json.Unmarshal(b, errThing)
			}
		}
		return fmt.Errorf("%w: %q (code %d)", ErrHTTPStatus, resp.Status, resp.StatusCode)
	}
	if thing == nil {
		return nil
	}
	reader := io.LimitReader(resp.Body, sizeLimit)
	if err = json.NewDecoder(reader).Decode(thing); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
