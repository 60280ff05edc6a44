// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// GetBalance gets the balance of an account, and of its subaddresses in
// addressIndices.
func (c *Client) GetBalance(ctx context.Context, accountIndex uint32, addressIndices []uint32) (json.RawMessage, error) {
	params := map[string]any{"account_index": accountIndex}
	if len(addressIndices) > 0 {
		params["address_indices"] = addressIndices
	}
	return c.call(ctx, methodGetBalance, params)
}

// GetAddress gets the addresses of an account. An empty addressIndices
// means all of them.
func (c *Client) GetAddress(ctx context.Context, accountIndex uint32, addressIndices []uint32) (json.RawMessage, error) {
	params := map[string]any{"account_index": accountIndex}
	if len(addressIndices) > 0 {
		params["address_index"] = addressIndices
	}
	return c.call(ctx, methodGetAddress, params)
}

// GetAddressIndex gets the account and subaddress index of an address.
func (c *Client) GetAddressIndex(ctx context.Context, address string) (json.RawMessage, error) {
	if err := rpc.RequireString("address", address); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetAddressIndex, map[string]any{"address": address})
}

// CreateAddress creates count new subaddresses in the account.
func (c *Client) CreateAddress(ctx context.Context, accountIndex uint32, label string, count uint32) (json.RawMessage, error) {
	params := map[string]any{"account_index": accountIndex}
	if label != "" {
		params["label"] = label
	}
	if count > 0 {
		params["count"] = count
	}
	return c.mutate(ctx, methodCreateAddress, params)
}

// LabelAddress labels a subaddress. An empty label clears it.
func (c *Client) LabelAddress(ctx context.Context, index SubaddressIndex, label string) (json.RawMessage, error) {
	return c.mutate(ctx, methodLabelAddress, map[string]any{
		"index": index,
		"label": label,
	})
}

// ValidateAddress checks an address, optionally accepting other networks'
// addresses and resolving OpenAlias names.
func (c *Client) ValidateAddress(ctx context.Context, address string, anyNetType, allowOpenAlias bool) (json.RawMessage, error) {
	if err := rpc.RequireString("address", address); err != nil {
		return nil, err
	}
	return c.call(ctx, methodValidateAddress, map[string]any{
		"address":         address,
		"any_net_type":    anyNetType,
		"allow_openalias": allowOpenAlias,
	})
}

// GetAccounts gets all accounts, or those with the tag if it is not empty.
func (c *Client) GetAccounts(ctx context.Context, tag string) (json.RawMessage, error) {
	var params any
	if tag != "" {
		params = map[string]any{"tag": tag}
	}
	return c.call(ctx, methodGetAccounts, params)
}

// CreateAccount creates an account, optionally labeled.
func (c *Client) CreateAccount(ctx context.Context, label string) (json.RawMessage, error) {
	var params any
	if label != "" {
		params = map[string]any{"label": label}
	}
	return c.mutate(ctx, methodCreateAccount, params)
}

// LabelAccount labels an account.
func (c *Client) LabelAccount(ctx context.Context, accountIndex uint32, label string) (json.RawMessage, error) {
	return c.mutate(ctx, methodLabelAccount, map[string]any{
		"account_index": accountIndex,
		"label":         label,
	})
}

// GetAccountTags gets the account tags.
func (c *Client) GetAccountTags(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodGetAccountTags, nil)
}

// TagAccounts applies a tag to accounts.
func (c *Client) TagAccounts(ctx context.Context, tag string, accounts []uint32) (json.RawMessage, error) {
	if err := rpc.Require(rpc.RequireString("tag", tag), rpc.RequireSlice("accounts", accounts)); err != nil {
		return nil, err
	}
	return c.mutate(ctx, methodTagAccounts, map[string]any{
		"tag":      tag,
		"accounts": accounts,
	})
}

// UntagAccounts removes the tags of accounts.
func (c *Client) UntagAccounts(ctx context.Context, accounts []uint32) (json.RawMessage, error) {
	if err := rpc.RequireSlice("accounts", accounts); err != nil {
		return nil, err
	}
	return c.mutate(ctx, methodUntagAccounts, map[string]any{"accounts": accounts})
}

// SetAccountTagDescription describes a tag.
func (c *Client) SetAccountTagDescription(ctx context.Context, tag, description string) (json.RawMessage, error) {
	if err := rpc.RequireString("tag", tag); err != nil {
		return nil, err
	}
	return c.mutate(ctx, methodSetAccountTagDesc, map[string]any{
		"tag":         tag,
		"description": description,
	})
}

// GetHeight gets the wallet's current block height.
func (c *Client) GetHeight(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodGetHeight, nil)
}

// MakeIntegratedAddress makes an integrated address from the wallet's
// primary address, or standardAddress if set, and a payment ID. A random
// payment ID is used if paymentID is empty.
func (c *Client) MakeIntegratedAddress(ctx context.Context, standardAddress, paymentID string) (json.RawMessage, error) {
	params := make(map[string]any)
	if standardAddress != "" {
		params["standard_address"] = standardAddress
	}
	if paymentID != "" {
		params["payment_id"] = paymentID
	}
	return c.call(ctx, methodMakeIntegratedAddress, params)
}

// SplitIntegratedAddress gets the standard address and payment ID of an
// integrated address.
func (c *Client) SplitIntegratedAddress(ctx context.Context, integratedAddress string) (json.RawMessage, error) {
	if err := rpc.RequireString("integrated_address", integratedAddress); err != nil {
		return nil, err
	}
	return c.call(ctx, methodSplitIntegratedAddress, map[string]any{"integrated_address": integratedAddress})
}
