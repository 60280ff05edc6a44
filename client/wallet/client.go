// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// Package wallet is a client for the monero-wallet-rpc service. Methods
// return the unwrapped "result" of the response, or the whole response if it
// has none, in which case it usually carries an "error" member. See
// rpc.ErrorFromPayload.
//
// Methods that change accounts, addresses, labels, tags, the address book,
// notes or attributes are followed by a store call when AutoStore is set.
package wallet

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"decred.org/xmrrpc/client/endpoint"
	"decred.org/xmrrpc/client/rpc"
	"decred.org/xmrrpc/dex"
)

// Options are the settings of a Client that do not depend on the endpoint.
type Options struct {
	// Logger is the parent logger. dex.Disabled if nil.
	Logger dex.Logger
	// AutoStore makes mutating methods save the wallet file afterwards.
	AutoStore bool
	// Proxy is an optional SOCKS5 proxy address.
	Proxy     string
	ProxyUser string
	ProxyPass string
	// TLSConfig is used for https endpoints.
	TLSConfig *tls.Config
	// Timeout is the per-request timeout. Zero means no timeout beyond the
	// context's. Note that refresh and rescan calls can take a long time.
	Timeout time.Duration
	// Headers are added to every request, e.g. for an authenticating proxy.
	Headers map[string]string
}

// Client is a monero-wallet-rpc client. It is safe for concurrent use once
// connected, but the wallet service itself processes one call at a time.
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

// FromConfig creates a Client for the endpoint without contacting it.
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
// first one that answers get_version. It may only succeed once. Only the
// requested endpoint, the local ones, and those in cfg's known list are
// tried. There are no public wallet services. A nil cfg is the zero
// AutoconnectConfig.
func (c *Client) Connect(ctx context.Context, cfg *endpoint.AutoconnectConfig) (*endpoint.Descriptor, error) {
	if c.conn.Connected() {
		return nil, rpc.ErrAlreadyConnected
	}
	if cfg == nil {
		cfg = &endpoint.AutoconnectConfig{}
	}
	candidates, err := cfg.Candidates(endpoint.Wallet)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("Probing %d monero-wallet-rpc candidates", len(candidates))
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

func (c *Client) probe(ctx context.Context, d endpoint.Descriptor) (*rpc.Client, error) {
	rc, err := c.newRPC(d)
	if err != nil {
		return nil, err
	}
	var res VersionResult
	if err := rc.CallJSONRPC(ctx, methodGetVersion, nil, &res); err != nil {
		rc.CloseIdleConnections()
		return nil, err
	}
	c.log.Tracef("%s RPC version %d.%d", d, res.Major(), res.Minor())
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

func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	return c.conn.Dispatch(ctx, method, params, rpc.JSONRPC)
}

// mutate performs the call and then, if AutoStore is set, a store call. The
// store call is made whenever the primary call got a response, and its
// outcome is only logged.
func (c *Client) mutate(ctx context.Context, method string, params any) (json.RawMessage, error) {
	payload, err := c.call(ctx, method, params)
	if err != nil {
		return nil, err
	}
	if c.opts.AutoStore {
		c.autoStore(ctx, method)
	}
	return payload, nil
}

func (c *Client) autoStore(ctx context.Context, after string) {
	payload, err := c.call(ctx, methodStore, nil)
	if err == nil {
		err = rpc.ErrorFromPayload(payload)
	}
	if err != nil {
		c.log.Warnf("Failed to store wallet after %s: %v", after, err)
		return
	}
	c.log.Tracef("Stored wallet after %s", after)
}

// Call dispatches any wallet method by name. Mutating methods are followed
// by a store call as usual.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if mutating[method] {
		return c.mutate(ctx, method, params)
	}
	return c.call(ctx, method, params)
}

// Version returns the decoded get_version result. An RPC-level failure is an
// error.
func (c *Client) Version(ctx context.Context) (*VersionResult, error) {
	var res VersionResult
	if err := c.conn.CallJSONRPC(ctx, methodGetVersion, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Balance returns the decoded get_balance result for the account. An
// RPC-level failure is an error.
func (c *Client) Balance(ctx context.Context, accountIndex uint32) (*BalanceResult, error) {
	var res BalanceResult
	params := map[string]any{"account_index": accountIndex}
	if err := c.conn.CallJSONRPC(ctx, methodGetBalance, params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
