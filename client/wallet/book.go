// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// SetTxNotes sets notes on transactions. notes[i] is the note for txids[i].
func (c *Client) SetTxNotes(ctx context.Context, txids, notes []string) (json.RawMessage, error) {
	if err := rpc.Require(rpc.RequireSlice("txids", txids), rpc.RequireSlice("notes", notes)); err != nil {
		return nil, err
	}
	return c.mutate(ctx, methodSetTxNotes, map[string]any{
		"txids": txids,
		"notes": notes,
	})
}

// GetTxNotes gets the notes of transactions.
func (c *Client) GetTxNotes(ctx context.Context, txids []string) (json.RawMessage, error) {
	if err := rpc.RequireSlice("txids", txids); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetTxNotes, map[string]any{"txids": txids})
}

// SetAttribute sets an arbitrary wallet attribute.
func (c *Client) SetAttribute(ctx context.Context, key, value string) (json.RawMessage, error) {
	if err := rpc.RequireString("key", key); err != nil {
		return nil, err
	}
	return c.mutate(ctx, methodSetAttribute, map[string]any{
		"key":   key,
		"value": value,
	})
}

// GetAttribute gets a wallet attribute.
func (c *Client) GetAttribute(ctx context.Context, key string) (json.RawMessage, error) {
	if err := rpc.RequireString("key", key); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetAttribute, map[string]any{"key": key})
}

// MakeURI makes a monero: payment URI.
func (c *Client) MakeURI(ctx context.Context, req *URIRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireString("address", req.Address); err != nil {
		return nil, err
	}
	return c.call(ctx, methodMakeURI, req)
}

// ParseURI parses a monero: payment URI.
func (c *Client) ParseURI(ctx context.Context, uri string) (json.RawMessage, error) {
	if err := rpc.RequireString("uri", uri); err != nil {
		return nil, err
	}
	return c.call(ctx, methodParseURI, map[string]any{"uri": uri})
}

// GetAddressBook gets address book entries by index.
func (c *Client) GetAddressBook(ctx context.Context, entries []uint64) (json.RawMessage, error) {
	if err := rpc.RequireSlice("entries", entries); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetAddressBook, map[string]any{"entries": entries})
}

// AddAddressBook adds an address book entry. Empty paymentID and
// description are not sent.
func (c *Client) AddAddressBook(ctx context.Context, address, paymentID, description string) (json.RawMessage, error) {
	if err := rpc.RequireString("address", address); err != nil {
		return nil, err
	}
	params := map[string]any{"address": address}
	if paymentID != "" {
		params["payment_id"] = paymentID
	}
	if description != "" {
		params["description"] = description
	}
	return c.mutate(ctx, methodAddAddressBook, params)
}

// EditAddressBook changes an address book entry. Only the non-nil fields are
// changed, and an empty description clears it.
func (c *Client) EditAddressBook(ctx context.Context, index uint64, address, description *string) (json.RawMessage, error) {
	params := map[string]any{
		"index":           index,
		"set_address":     address != nil,
		"set_description": description != nil,
	}
	if address != nil {
		if err := rpc.RequireString("address", *address); err != nil {
			return nil, err
		}
		params["address"] = *address
	}
	if description != nil {
		params["description"] = *description
	}
	return c.mutate(ctx, methodEditAddressBook, params)
}

// DeleteAddressBook deletes an address book entry.
func (c *Client) DeleteAddressBook(ctx context.Context, index uint64) (json.RawMessage, error) {
	return c.mutate(ctx, methodDeleteAddressBook, map[string]any{"index": index})
}
