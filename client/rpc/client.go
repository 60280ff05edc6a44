// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// Package rpc dispatches calls to the monerod and monero-wallet-rpc HTTP
// services. JSON-RPC methods are wrapped in a JSON-RPC 2.0 envelope and
// posted to <base>/json_rpc. Extension methods, the daemon's "other" RPC
// calls, post their params as the raw body to <base>/<method>.
package rpc

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"decred.org/xmrrpc/dex"
	"decred.org/xmrrpc/dex/dexnet"
)

// DefaultResponseSizeLimit is the largest response body decoded. Block and
// transaction dumps from monerod can be several megabytes.
const DefaultResponseSizeLimit = 1 << 26

// Kind selects how a method is dispatched.
type Kind uint8

const (
	// JSONRPC methods are posted to <base>/json_rpc in an envelope.
	JSONRPC Kind = iota
	// Extension methods post the raw params to <base>/<method>.
	Extension
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case JSONRPC:
		return "json_rpc"
	case Extension:
		return "extension"
	}
	return fmt.Sprintf("unknown kind %d", uint8(k))
}

// Config is the configuration for a Client.
type Config struct {
	// URL is the service base URL, e.g. http://127.0.0.1:18081. A trailing
	// slash is ignored.
	URL string
	// Credentials, if non-nil, are sent after the server issues an auth
	// challenge. An empty Pass is a valid password.
	Credentials *dexnet.Credentials
	// Proxy is an optional SOCKS5 proxy address.
	Proxy     string
	ProxyUser string
	ProxyPass string
	// TLSConfig is used for https URLs.
	TLSConfig *tls.Config
	// Timeout is the overall per-request timeout. Zero means none beyond the
	// context.
	Timeout time.Duration
	// Headers are added to every request.
	Headers map[string]string
	// ResponseSizeLimit overrides DefaultResponseSizeLimit if positive.
	ResponseSizeLimit int64
	// HTTPClient, if set, is used instead of building one from the other
	// fields. Credentials and proxy settings are then ignored.
	HTTPClient *http.Client
	// Logger is used for trace logging of calls. dex.Disabled if nil.
	Logger dex.Logger
}

// Client dispatches RPC calls to one service endpoint. A Client is immutable
// after construction and is safe for concurrent use.
type Client struct {
	base      string
	http      *http.Client
	sizeLimit int64
	headers   []*dexnet.RequestOption
	log       dex.Logger
}

// New creates a new Client. No network activity takes place.
func New(cfg *Config) (*Client, error) {
	base := strings.TrimRight(cfg.URL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", cfg.URL)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = dexnet.NewClient(&dexnet.ClientConfig{
			Timeout:     cfg.Timeout,
			Proxy:       cfg.Proxy,
			ProxyUser:   cfg.ProxyUser,
			ProxyPass:   cfg.ProxyPass,
			TLSConfig:   cfg.TLSConfig,
			Credentials: cfg.Credentials,
		})
	}
	sizeLimit := cfg.ResponseSizeLimit
	if sizeLimit <= 0 {
		sizeLimit = DefaultResponseSizeLimit
	}
	log := cfg.Logger
	if log == nil {
		log = dex.Disabled
	}
	headers := make([]*dexnet.RequestOption, 0, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers = append(headers, dexnet.WithRequestHeader(k, v))
	}
	return &Client{
		base:      base,
		http:      httpClient,
		sizeLimit: sizeLimit,
		headers:   headers,
		log:       log,
	}, nil
}

// CloseIdleConnections closes any kept-alive connections that are not in
// use. The Client remains usable.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// URL is the service base URL.
func (c *Client) URL() string {
	return c.base
}

// Dispatch calls the method and returns the response payload. If the body is
// an object with a non-null "result" member, that member is returned.
// Otherwise the whole body is returned. RPC-level failures, such as an
// "error" member or a non-OK "status", are returned as payload and not as an
// error. The error return is reserved for transport failures, non-2xx
// responses and bodies that are not JSON. A JSON-RPC error carried by a
// non-2xx response is wrapped in the returned error as an *RPCError. No call
// is retried. A nil params, including a nil json.RawMessage, is omitted.
func (c *Client) Dispatch(ctx context.Context, method string, params any, kind Kind) (json.RawMessage, error) {
	if method == "" {
		return nil, dex.NewError(ErrMissingArgument, "method")
	}
	if raw, ok := params.(json.RawMessage); ok && raw == nil {
		params = nil
	}
	var uri string
	var body any
	switch kind {
	case JSONRPC:
		uri = c.base + "/json_rpc"
		body = &Request{
			JSONRPC: "2.0",
			ID:      requestID,
			Method:  method,
			Params:  params,
		}
	case Extension:
		uri = c.base + "/" + method
		body = params
		if params == nil {
			body = struct{}{}
		}
	default:
		return nil, fmt.Errorf("cannot dispatch %s: %s", method, kind)
	}

	c.log.Tracef("-> %s %s", kind, method)
	var payload json.RawMessage
	var errBody responseFields
	opts := append([]*dexnet.RequestOption{
		dexnet.WithClient(c.http),
		dexnet.WithSizeLimit(c.sizeLimit),
		dexnet.WithErrorParsing(&errBody),
	}, c.headers...)
	err := dexnet.PostJSON(ctx, uri, &payload, body, opts...)
	if err != nil {
		c.log.Debugf("%s %s failed: %v", kind, method, err)
		if errBody.Error != nil {
			return nil, fmt.Errorf("%s: %w: %w", method, err, errBody.Error)
		}
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	c.log.Tracef("<- %s %s: %d bytes", kind, method, len(payload))
	return unwrapResult(payload), nil
}

// CallJSONRPC dispatches a JSON-RPC method and decodes the result into
// result, if non-nil. Unlike Dispatch, an RPC-level failure in the payload is
// returned as an error. See ErrorFromPayload.
func (c *Client) CallJSONRPC(ctx context.Context, method string, params, result any) error {
	return c.call(ctx, method, params, result, JSONRPC)
}

// CallExtension is like CallJSONRPC for extension methods.
func (c *Client) CallExtension(ctx context.Context, method string, params, result any) error {
	return c.call(ctx, method, params, result, Extension)
}

func (c *Client) call(ctx context.Context, method string, params, result any, kind Kind) error {
	payload, err := c.Dispatch(ctx, method, params, kind)
	if err != nil {
		return err
	}
	if err := ErrorFromPayload(payload); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if result == nil {
		return nil
	}
	return Decode(payload, result)
}
