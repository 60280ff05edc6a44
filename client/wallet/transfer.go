// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	"decred.org/xmrrpc/client/rpc"
)

func checkTransfer(req *TransferRequest) error {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return err
	}
	if err := rpc.RequireSlice("destinations", req.Destinations); err != nil {
		return err
	}
	for i, d := range req.Destinations {
		if err := rpc.RequireString(fmt.Sprintf("destinations[%d].address", i), d.Address); err != nil {
			return err
		}
	}
	return nil
}

// Transfer sends funds to the destinations.
func (c *Client) Transfer(ctx context.Context, req *TransferRequest) (json.RawMessage, error) {
	if err := checkTransfer(req); err != nil {
		return nil, err
	}
	return c.call(ctx, methodTransfer, req)
}

// TransferSplit is like Transfer but may split the payment into several
// transactions.
func (c *Client) TransferSplit(ctx context.Context, req *TransferRequest) (json.RawMessage, error) {
	if err := checkTransfer(req); err != nil {
		return nil, err
	}
	return c.call(ctx, methodTransferSplit, req)
}

// SweepDust sends all dust outputs back to the wallet.
func (c *Client) SweepDust(ctx context.Context, req *SweepDustRequest) (json.RawMessage, error) {
	var params any
	if req != nil {
		params = req
	}
	return c.call(ctx, methodSweepDust, params)
}

// SweepAll sends all unlocked balance of an account to an address.
func (c *Client) SweepAll(ctx context.Context, req *SweepAllRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireString("address", req.Address); err != nil {
		return nil, err
	}
	return c.call(ctx, methodSweepAll, req)
}

// SweepSingle sends the output with the key image to an address.
func (c *Client) SweepSingle(ctx context.Context, req *SweepSingleRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.Require(
		rpc.RequireString("address", req.Address),
		rpc.RequireString("key_image", req.KeyImage),
	); err != nil {
		return nil, err
	}
	return c.call(ctx, methodSweepSingle, req)
}

// RelayTx relays a transaction created with do_not_relay, given its
// metadata hex.
func (c *Client) RelayTx(ctx context.Context, hex string) (json.RawMessage, error) {
	if err := rpc.RequireString("hex", hex); err != nil {
		return nil, err
	}
	return c.call(ctx, methodRelayTx, map[string]any{"hex": hex})
}

// Store saves the wallet file.
func (c *Client) Store(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodStore, nil)
}

// GetPayments gets the incoming payments with a payment ID.
func (c *Client) GetPayments(ctx context.Context, paymentID string) (json.RawMessage, error) {
	if err := rpc.RequireString("payment_id", paymentID); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetPayments, map[string]any{"payment_id": paymentID})
}

// GetBulkPayments gets the incoming payments with any of the payment IDs
// from minBlockHeight on.
func (c *Client) GetBulkPayments(ctx context.Context, paymentIDs []string, minBlockHeight uint64) (json.RawMessage, error) {
	if err := rpc.RequireSlice("payment_ids", paymentIDs); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetBulkPayments, map[string]any{
		"payment_ids":      paymentIDs,
		"min_block_height": minBlockHeight,
	})
}

// Transfer types for IncomingTransfers.
const (
	TransfersAll         = "all"
	TransfersAvailable   = "available"
	TransfersUnavailable = "unavailable"
)

// IncomingTransfers gets the incoming transfers of the type, one of
// TransfersAll, TransfersAvailable or TransfersUnavailable. A nil
// accountIndex means the primary account.
func (c *Client) IncomingTransfers(ctx context.Context, transferType string, accountIndex *uint32, subaddrIndices []uint32) (json.RawMessage, error) {
	if err := rpc.RequireString("transfer_type", transferType); err != nil {
		return nil, err
	}
	params := map[string]any{"transfer_type": transferType}
	if accountIndex != nil {
		params["account_index"] = *accountIndex
	}
	if len(subaddrIndices) > 0 {
		params["subaddr_indices"] = subaddrIndices
	}
	return c.call(ctx, methodIncomingTransfers, params)
}

// GetTransfers gets transfers in the selected categories.
func (c *Client) GetTransfers(ctx context.Context, req *GetTransfersRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGetTransfers, req)
}

// GetTransferByTxID gets a transfer by transaction ID. A nil accountIndex
// searches the primary account.
func (c *Client) GetTransferByTxID(ctx context.Context, txid string, accountIndex *uint32) (json.RawMessage, error) {
	if err := rpc.RequireString("txid", txid); err != nil {
		return nil, err
	}
	params := map[string]any{"txid": txid}
	if accountIndex != nil {
		params["account_index"] = *accountIndex
	}
	return c.call(ctx, methodGetTransferByTxID, params)
}
