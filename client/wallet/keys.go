// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// Key types for QueryKey.
const (
	KeyTypeView     = "view_key"
	KeyTypeSpend    = "spend_key"
	KeyTypeMnemonic = "mnemonic"
)

// QueryKey gets a wallet secret: KeyTypeView, KeyTypeSpend or
// KeyTypeMnemonic.
func (c *Client) QueryKey(ctx context.Context, keyType string) (json.RawMessage, error) {
	if err := rpc.RequireString("key_type", keyType); err != nil {
		return nil, err
	}
	return c.call(ctx, methodQueryKey, map[string]any{"key_type": keyType})
}

// ViewKey gets the private view key.
func (c *Client) ViewKey(ctx context.Context) (json.RawMessage, error) {
	return c.QueryKey(ctx, KeyTypeView)
}

// SpendKey gets the private spend key.
func (c *Client) SpendKey(ctx context.Context) (json.RawMessage, error) {
	return c.QueryKey(ctx, KeyTypeSpend)
}

// Mnemonic gets the mnemonic seed.
func (c *Client) Mnemonic(ctx context.Context) (json.RawMessage, error) {
	return c.QueryKey(ctx, KeyTypeMnemonic)
}

// GetTxKey gets the secret key of an outgoing transaction.
func (c *Client) GetTxKey(ctx context.Context, txid string) (json.RawMessage, error) {
	if err := rpc.RequireString("txid", txid); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetTxKey, map[string]any{"txid": txid})
}

// CheckTxKey checks a transaction's payment to an address with its secret
// key.
func (c *Client) CheckTxKey(ctx context.Context, txid, txKey, address string) (json.RawMessage, error) {
	if err := rpc.Require(
		rpc.RequireString("txid", txid),
		rpc.RequireString("tx_key", txKey),
		rpc.RequireString("address", address),
	); err != nil {
		return nil, err
	}
	return c.call(ctx, methodCheckTxKey, map[string]any{
		"txid":    txid,
		"tx_key":  txKey,
		"address": address,
	})
}

// GetTxProof makes a proof of a transaction's payment to an address.
func (c *Client) GetTxProof(ctx context.Context, txid, address, message string) (json.RawMessage, error) {
	if err := rpc.Require(rpc.RequireString("txid", txid), rpc.RequireString("address", address)); err != nil {
		return nil, err
	}
	params := map[string]any{
		"txid":    txid,
		"address": address,
	}
	if message != "" {
		params["message"] = message
	}
	return c.call(ctx, methodGetTxProof, params)
}

// CheckTxProof checks a proof from GetTxProof.
func (c *Client) CheckTxProof(ctx context.Context, txid, address, message, signature string) (json.RawMessage, error) {
	if err := rpc.Require(
		rpc.RequireString("txid", txid),
		rpc.RequireString("address", address),
		rpc.RequireString("signature", signature),
	); err != nil {
		return nil, err
	}
	params := map[string]any{
		"txid":      txid,
		"address":   address,
		"signature": signature,
	}
	if message != "" {
		params["message"] = message
	}
	return c.call(ctx, methodCheckTxProof, params)
}

// Sign signs data with the wallet's spend key.
func (c *Client) Sign(ctx context.Context, data string) (json.RawMessage, error) {
	if err := rpc.RequireString("data", data); err != nil {
		return nil, err
	}
	return c.call(ctx, methodSign, map[string]any{"data": data})
}

// Verify checks a signature on data made by an address.
func (c *Client) Verify(ctx context.Context, data, address, signature string) (json.RawMessage, error) {
	if err := rpc.Require(
		rpc.RequireString("data", data),
		rpc.RequireString("address", address),
		rpc.RequireString("signature", signature),
	); err != nil {
		return nil, err
	}
	return c.call(ctx, methodVerify, map[string]any{
		"data":      data,
		"address":   address,
		"signature": signature,
	})
}

// ExportOutputs exports the wallet's new outputs, or all outputs, in hex.
func (c *Client) ExportOutputs(ctx context.Context, all bool) (json.RawMessage, error) {
	return c.call(ctx, methodExportOutputs, map[string]any{"all": all})
}

// ImportOutputs imports outputs from ExportOutputs.
func (c *Client) ImportOutputs(ctx context.Context, outputsDataHex string) (json.RawMessage, error) {
	if err := rpc.RequireString("outputs_data_hex", outputsDataHex); err != nil {
		return nil, err
	}
	return c.call(ctx, methodImportOutputs, map[string]any{"outputs_data_hex": outputsDataHex})
}

// ExportKeyImages exports signed key images, all of them or only new ones.
func (c *Client) ExportKeyImages(ctx context.Context, all bool) (json.RawMessage, error) {
	return c.call(ctx, methodExportKeyImages, map[string]any{"all": all})
}

// ImportKeyImages imports signed key images, starting at offset in the
// wallet's transfer list.
func (c *Client) ImportKeyImages(ctx context.Context, signedKeyImages []SignedKeyImage, offset uint32) (json.RawMessage, error) {
	if err := rpc.RequireSlice("signed_key_images", signedKeyImages); err != nil {
		return nil, err
	}
	return c.call(ctx, methodImportKeyImages, map[string]any{
		"signed_key_images": signedKeyImages,
		"offset":            offset,
	})
}
