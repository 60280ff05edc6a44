// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package daemon

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// GetHeight gets the node's current height.
func (c *Client) GetHeight(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetHeight, nil)
}

// GetTransactions looks up transactions by hash.
func (c *Client) GetTransactions(ctx context.Context, req *GetTransactionsRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireSlice("txs_hashes", req.TxsHashes); err != nil {
		return nil, err
	}
	return c.other(ctx, methodGetTransactions, req)
}

// GetAltBlocksHashes gets the known block hashes not on the main chain.
func (c *Client) GetAltBlocksHashes(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetAltBlocksHashes, nil)
}

// IsKeyImageSpent checks whether the key images are spent.
func (c *Client) IsKeyImageSpent(ctx context.Context, keyImages []string) (json.RawMessage, error) {
	if err := rpc.RequireSlice("key_images", keyImages); err != nil {
		return nil, err
	}
	return c.other(ctx, methodIsKeyImageSpent, map[string]any{"key_images": keyImages})
}

// SendRawTransaction broadcasts a raw transaction to the network.
func (c *Client) SendRawTransaction(ctx context.Context, req *SendRawTransactionRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireString("tx_as_hex", req.TxAsHex); err != nil {
		return nil, err
	}
	return c.other(ctx, methodSendRawTransaction, req)
}

// StartMining starts mining on the node.
func (c *Client) StartMining(ctx context.Context, req *StartMiningRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireString("miner_address", req.MinerAddress); err != nil {
		return nil, err
	}
	return c.other(ctx, methodStartMining, req)
}

// StopMining stops mining on the node.
func (c *Client) StopMining(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodStopMining, nil)
}

// MiningStatus gets the mining status of the node.
func (c *Client) MiningStatus(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodMiningStatus, nil)
}

// SaveBC saves the blockchain to disk.
func (c *Client) SaveBC(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodSaveBC, nil)
}

// GetPeerList gets the known peers.
func (c *Client) GetPeerList(ctx context.Context, publicOnly bool) (json.RawMessage, error) {
	return c.other(ctx, methodGetPeerList, map[string]any{"public_only": publicOnly})
}

// GetPublicNodes gets the known peers advertising a public RPC port.
func (c *Client) GetPublicNodes(ctx context.Context, req *PublicNodesRequest) (json.RawMessage, error) {
	var params any
	if req != nil {
		params = req
	}
	return c.other(ctx, methodGetPublicNodes, params)
}

// SetLogHashRate sets whether the mining hash rate is logged.
func (c *Client) SetLogHashRate(ctx context.Context, visible bool) (json.RawMessage, error) {
	return c.other(ctx, methodSetLogHashRate, map[string]any{"visible": visible})
}

// SetLogLevel sets the daemon log level, 0 through 4.
func (c *Client) SetLogLevel(ctx context.Context, level uint8) (json.RawMessage, error) {
	return c.other(ctx, methodSetLogLevel, map[string]any{"level": level})
}

// SetLogCategories sets the daemon log categories, e.g. "*:WARNING". An
// empty categories only reads the current setting.
func (c *Client) SetLogCategories(ctx context.Context, categories string) (json.RawMessage, error) {
	var params any
	if categories != "" {
		params = map[string]any{"categories": categories}
	}
	return c.other(ctx, methodSetLogCategories, params)
}

// GetTransactionPool gets the transactions and spent key images in the
// pool.
func (c *Client) GetTransactionPool(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetTransactionPool, nil)
}

// GetTransactionPoolHashes gets the hashes of the pool transactions.
func (c *Client) GetTransactionPoolHashes(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetTransactionPoolHashes, nil)
}

// GetTransactionPoolStats gets pool statistics.
func (c *Client) GetTransactionPoolStats(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetTransactionPoolStats, nil)
}

// StopDaemon sends a command to the daemon to safely disconnect and shut
// down.
func (c *Client) StopDaemon(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodStopDaemon, nil)
}

// GetLimit gets the bandwidth limits in kB/s.
func (c *Client) GetLimit(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetLimit, nil)
}

// SetLimit sets the bandwidth limits in kB/s. -1 resets a limit to its
// default and 0 leaves it unchanged.
func (c *Client) SetLimit(ctx context.Context, limitDown, limitUp int64) (json.RawMessage, error) {
	return c.other(ctx, methodSetLimit, map[string]any{
		"limit_down": limitDown,
		"limit_up":   limitUp,
	})
}

// OutPeers limits the number of outgoing peers.
func (c *Client) OutPeers(ctx context.Context, outPeers uint64) (json.RawMessage, error) {
	return c.other(ctx, methodOutPeers, map[string]any{"out_peers": outPeers})
}

// InPeers limits the number of incoming peers.
func (c *Client) InPeers(ctx context.Context, inPeers uint64) (json.RawMessage, error) {
	return c.other(ctx, methodInPeers, map[string]any{"in_peers": inPeers})
}

// GetOuts gets outputs by amount and global index.
func (c *Client) GetOuts(ctx context.Context, outputs []Output, getTxID bool) (json.RawMessage, error) {
	if err := rpc.RequireSlice("outputs", outputs); err != nil {
		return nil, err
	}
	return c.other(ctx, methodGetOuts, map[string]any{
		"outputs":  outputs,
		"get_txid": getTxID,
	})
}

// Update checks for, or downloads, a daemon update. command is "check" or
// "download".
func (c *Client) Update(ctx context.Context, command, path string) (json.RawMessage, error) {
	if err := rpc.RequireString("command", command); err != nil {
		return nil, err
	}
	params := map[string]any{"command": command}
	if path != "" {
		params["path"] = path
	}
	return c.other(ctx, methodUpdate, params)
}

// PopBlocks removes the top nBlocks blocks from the chain.
func (c *Client) PopBlocks(ctx context.Context, nBlocks uint64) (json.RawMessage, error) {
	return c.other(ctx, methodPopBlocks, map[string]any{"nblocks": nBlocks})
}

// GetNetStats gets network traffic statistics.
func (c *Client) GetNetStats(ctx context.Context) (json.RawMessage, error) {
	return c.other(ctx, methodGetNetStats, nil)
}
