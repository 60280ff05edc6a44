// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package rpc

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"decred.org/xmrrpc/dex"
)

const (
	// ErrNotConnected is returned by a Conn with no active Client.
	ErrNotConnected = dex.ErrorKind("not connected")
	// ErrAlreadyConnected is returned when setting the Client of a Conn a
	// second time.
	ErrAlreadyConnected = dex.ErrorKind("already connected")
)

// Conn holds the active Client of a service facade. The Client is set once
// and never replaced.
type Conn struct {
	setMtx sync.Mutex
	client atomic.Pointer[Client]
}

// Set sets the active Client. It fails if one is already set.
func (cn *Conn) Set(c *Client) error {
	cn.setMtx.Lock()
	defer cn.setMtx.Unlock()
	if cn.client.Load() != nil {
		return ErrAlreadyConnected
	}
	cn.client.Store(c)
	return nil
}

// Client is the active Client.
func (cn *Conn) Client() (*Client, error) {
	c := cn.client.Load()
	if c == nil {
		return nil, ErrNotConnected
	}
	return c, nil
}

// Connected is true if a Client is set.
func (cn *Conn) Connected() bool {
	return cn.client.Load() != nil
}

// Dispatch calls Dispatch on the active Client.
func (cn *Conn) Dispatch(ctx context.Context, method string, params any, kind Kind) (json.RawMessage, error) {
	c, err := cn.Client()
	if err != nil {
		return nil, err
	}
	return c.Dispatch(ctx, method, params, kind)
}

// CallJSONRPC calls CallJSONRPC on the active Client.
func (cn *Conn) CallJSONRPC(ctx context.Context, method string, params, result any) error {
	c, err := cn.Client()
	if err != nil {
		return err
	}
	return c.CallJSONRPC(ctx, method, params, result)
}
