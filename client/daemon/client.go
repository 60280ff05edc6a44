// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// Package daemon is a client for the monerod RPC service. Every method
// forwards one call and returns the response payload, which is the unwrapped
// "result" for JSON-RPC methods and the whole body otherwise. RPC-level
// failures are part of the payload. See rpc.ErrorFromPayload.
package daemon

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"slices"
	"time"

	"decred.org/xmrrpc/client/endpoint"
	"decred.org/xmrrpc/client/rpc"
	"decred.org/xmrrpc/dex"
)

// Options are the settings of a Client that do not depend on the endpoint.
type Options struct {
	// Logger is the parent logger. dex.Disabled if nil.
	Logger dex.Logger
	// Proxy is an optional SOCKS5 proxy address, e.g. Tor's 127.0.0.1:9050.
	Proxy     string
	ProxyUser string
	ProxyPass string
	// TLSConfig is used for https endpoints.
	TLSConfig *tls.Config
	// Timeout is the per-request timeout. Zero means no timeout beyond the
	// context's.
	Timeout time.Duration
	// Headers are added to every request, e.g. for an authenticating proxy.
	Headers map[string]string
}

// Client is a monerod client. It is safe for concurrent use once connected.
type Client struct {
	opts Options
	log  dex.Logger
	conn rpc.Conn
}

// New creates a Client with no endpoint. Call Connect before any other
// method.
func New(opts *Options) *Client {
	c := &Client{}
	if opts != nil {
		c.opts = *opts
	}
	c.log = c.opts.Logger
	if c.log == nil {
		c.log = dex.Disabled
	}
	return c
}

// FromConfig creates a Client for the endpoint. No network activity takes
// place.
func FromConfig(d endpoint.Descriptor, opts *Options) (*Client, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	c := New(opts)
	rc, err := c.newRPC(d)
	if err != nil {
		return nil, err
	}
	return c, c.conn.Set(rc)
}

// FromFields is FromConfig for an endpoint given by its parts. A nil user
// means no credentials. A nil pass with a user is an empty password.
func FromFields(hostname string, port uint16, user, pass *string, protocol endpoint.Protocol, opts *Options) (*Client, error) {
	d := endpoint.Descriptor{
		Hostname: hostname,
		Port:     port,
		Protocol: protocol,
	}
	if user != nil {
		d.Credentials = &endpoint.Credentials{User: *user}
		if pass != nil {
			d.Credentials.Pass = *pass
		}
	}
	return FromConfig(d, opts)
}

// Connect probes the candidate endpoints from cfg in order and adopts the
// first one that answers get_block_count. It may only succeed once. A nil cfg
// is the zero AutoconnectConfig.
func (c *Client) Connect(ctx context.Context, cfg *endpoint.AutoconnectConfig) (*endpoint.Descriptor, error) {
	if c.conn.Connected() {
		return nil, rpc.ErrAlreadyConnected
	}
	if cfg == nil {
		cfg = &endpoint.AutoconnectConfig{}
	}
	candidates, err := cfg.Candidates(endpoint.Daemon)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("Probing %d monerod candidates", len(candidates))
	// Probes run one at a time, so the live candidate's client is kept
	// without locking.
	var live *rpc.Client
	probe := func(ctx context.Context, d endpoint.Descriptor) error {
		rc, err := c.probe(ctx, d)
		if err != nil {
			return err
		}
		live = rc
		return nil
	}
	d, err := endpoint.Autoconnect(ctx, candidates, probe, c.log.SubLogger("ENDP"))
	if err != nil {
		return nil, err
	}
	if err := c.conn.Set(live); err != nil {
		live.CloseIdleConnections()
		return nil, err
	}
	return d, nil
}

// Connected is true once the Client has an endpoint.
func (c *Client) Connected() bool {
	return c.conn.Connected()
}

// URL is the base URL of the active endpoint, or "" if not connected.
func (c *Client) URL() string {
	rc, err := c.conn.Client()
	if err != nil {
		return ""
	}
	return rc.URL()
}

// probe returns a client for the endpoint if it answers get_block_count. The
// connections of a failed probe are closed.
func (c *Client) probe(ctx context.Context, d endpoint.Descriptor) (*rpc.Client, error) {
	rc, err := c.newRPC(d)
	if err != nil {
		return nil, err
	}
	var res struct {
		Count uint64 `json:"count"`
	}
	if err := rc.CallJSONRPC(ctx, methodGetBlockCount, nil, &res); err != nil {
		rc.CloseIdleConnections()
		return nil, err
	}
	c.log.Tracef("%s block count %d", d, res.Count)
	return rc, nil
}

func (c *Client) newRPC(d endpoint.Descriptor) (*rpc.Client, error) {
	if d.CleartextAuth() {
		c.log.Warnf("Credentials for %s are sent without TLS", d)
	}
	return rpc.New(&rpc.Config{
		URL:         d.URL(),
		Credentials: d.HTTPCredentials(),
		Proxy:       c.opts.Proxy,
		ProxyUser:   c.opts.ProxyUser,
		ProxyPass:   c.opts.ProxyPass,
		TLSConfig:   c.opts.TLSConfig,
		Timeout:     c.opts.Timeout,
		Headers:     c.opts.Headers,
		Logger:      c.log.SubLogger("XRPC"),
	})
}

func (c *Client) jsonRPC(ctx context.Context, method string, params any) (json.RawMessage, error) {
	return c.conn.Dispatch(ctx, method, params, rpc.JSONRPC)
}

func (c *Client) other(ctx context.Context, method string, params any) (json.RawMessage, error) {
	return c.conn.Dispatch(ctx, method, params, rpc.Extension)
}

// BlockCount returns the chain height from get_block_count. Unlike the other
// methods, an RPC-level failure is an error.
func (c *Client) BlockCount(ctx context.Context) (uint64, error) {
	var res struct {
		Count  uint64 `json:"count"`
		Status string `json:"status"`
	}
	if err := c.conn.CallJSONRPC(ctx, methodGetBlockCount, nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Info returns the decoded get_info result. An RPC-level failure is an
// error.
func (c *Client) Info(ctx context.Context) (*GetInfoResult, error) {
	var res GetInfoResult
	if err := c.conn.CallJSONRPC(ctx, methodGetInfo, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Call dispatches any method by name. Methods in OtherMethods are posted to
// their own path, and all others to /json_rpc. It serves callers, like
// xmrctl, that name methods at runtime.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if slices.Contains(OtherMethods, method) {
		return c.other(ctx, method, params)
	}
	return c.jsonRPC(ctx, method, params)
}
