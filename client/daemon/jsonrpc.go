// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package daemon

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// GetBlockCount looks up how many blocks are in the longest chain known to
// the node.
func (c *Client) GetBlockCount(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetBlockCount, nil)
}

// OnGetBlockHash looks up a block's hash by its height.
func (c *Client) OnGetBlockHash(ctx context.Context, height uint64) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodOnGetBlockHash, []uint64{height})
}

// GetBlockTemplate gets a block template on which to mine a new block.
func (c *Client) GetBlockTemplate(ctx context.Context, walletAddress string, reserveSize uint64) (json.RawMessage, error) {
	if err := rpc.RequireString("wallet_address", walletAddress); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetBlockTemplate, map[string]any{
		"wallet_address": walletAddress,
		"reserve_size":   reserveSize,
	})
}

// SubmitBlock submits a mined block to the network.
func (c *Client) SubmitBlock(ctx context.Context, blobs ...string) (json.RawMessage, error) {
	if err := rpc.RequireSlice("block blobs", blobs); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodSubmitBlock, blobs)
}

// GenerateBlocks mines blocks on a regtest node.
func (c *Client) GenerateBlocks(ctx context.Context, req *GenerateBlocksRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireString("wallet_address", req.WalletAddress); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGenerateBlocks, req)
}

// GetLastBlockHeader gets the header of the most recent block.
func (c *Client) GetLastBlockHeader(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetLastBlockHeader, nil)
}

// GetBlockHeaderByHash gets a block header by its hash.
func (c *Client) GetBlockHeaderByHash(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := rpc.RequireString("hash", hash); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetBlockHeaderByHash, map[string]any{"hash": hash})
}

// GetBlockHeadersByHash gets several block headers in one call.
func (c *Client) GetBlockHeadersByHash(ctx context.Context, hashes []string) (json.RawMessage, error) {
	if err := rpc.RequireSlice("hashes", hashes); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetBlockHeaderByHash, map[string]any{"hashes": hashes})
}

// GetBlockHeaderByHeight gets a block header by its height.
func (c *Client) GetBlockHeaderByHeight(ctx context.Context, height uint64) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetBlockHeaderByHeight, map[string]any{"height": height})
}

// GetBlockHeadersRange gets the headers of blocks start through end,
// inclusive.
func (c *Client) GetBlockHeadersRange(ctx context.Context, start, end uint64) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetBlockHeadersRange, map[string]any{
		"start_height": start,
		"end_height":   end,
	})
}

// GetBlockByHash gets full block information by hash.
func (c *Client) GetBlockByHash(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := rpc.RequireString("hash", hash); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetBlock, map[string]any{"hash": hash})
}

// GetBlockByHeight gets full block information by height.
func (c *Client) GetBlockByHeight(ctx context.Context, height uint64) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetBlock, map[string]any{"height": height})
}

// GetConnections gets information about incoming and outgoing connections.
func (c *Client) GetConnections(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetConnections, nil)
}

// GetInfo gets general information about the node and the network.
func (c *Client) GetInfo(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetInfo, nil)
}

// HardForkInfo looks up hard fork information.
func (c *Client) HardForkInfo(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodHardForkInfo, nil)
}

// SetBans bans or unbans peers.
func (c *Client) SetBans(ctx context.Context, bans []Ban) (json.RawMessage, error) {
	if err := rpc.RequireSlice("bans", bans); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodSetBans, map[string]any{"bans": bans})
}

// GetBans lists banned peers.
func (c *Client) GetBans(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetBans, nil)
}

// Banned checks whether an address is banned.
func (c *Client) Banned(ctx context.Context, address string) (json.RawMessage, error) {
	if err := rpc.RequireString("address", address); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodBanned, map[string]any{"address": address})
}

// FlushTxpool removes the transactions from the pool. An empty txids
// flushes the whole pool.
func (c *Client) FlushTxpool(ctx context.Context, txids []string) (json.RawMessage, error) {
	var params any
	if len(txids) > 0 {
		params = map[string]any{"txids": txids}
	}
	return c.jsonRPC(ctx, methodFlushTxpool, params)
}

// GetOutputHistogram gets a histogram of output amounts.
func (c *Client) GetOutputHistogram(ctx context.Context, req *OutputHistogramRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetOutputHistogram, req)
}

// GetVersion gets the node's RPC version.
func (c *Client) GetVersion(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetVersion, nil)
}

// GetCoinbaseTxSum gets the coinbase amount and fees for count blocks
// starting at height.
func (c *Client) GetCoinbaseTxSum(ctx context.Context, height, count uint64) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetCoinbaseTxSum, map[string]any{
		"height": height,
		"count":  count,
	})
}

// GetFeeEstimate gets an estimation of fees per byte. graceBlocks is
// optional.
func (c *Client) GetFeeEstimate(ctx context.Context, graceBlocks *uint64) (json.RawMessage, error) {
	var params any
	if graceBlocks != nil {
		params = map[string]any{"grace_blocks": *graceBlocks}
	}
	return c.jsonRPC(ctx, methodGetFeeEstimate, params)
}

// GetAlternateChains displays alternative chains seen by the node.
func (c *Client) GetAlternateChains(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetAlternateChains, nil)
}

// RelayTx relays transactions from the pool.
func (c *Client) RelayTx(ctx context.Context, txids []string) (json.RawMessage, error) {
	if err := rpc.RequireSlice("txids", txids); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodRelayTx, map[string]any{"txids": txids})
}

// SyncInfo gets synchronisation information.
func (c *Client) SyncInfo(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodSyncInfo, nil)
}

// GetTxpoolBacklog gets all transaction pool backlog.
func (c *Client) GetTxpoolBacklog(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetTxpoolBacklog, nil)
}

// GetOutputDistribution gets the output distribution for the amounts.
func (c *Client) GetOutputDistribution(ctx context.Context, req *OutputDistributionRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.RequireSlice("amounts", req.Amounts); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodGetOutputDistribution, req)
}

// GetMinerData gets the data a miner needs for a new block template.
func (c *Client) GetMinerData(ctx context.Context) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodGetMinerData, nil)
}

// PruneBlockchain prunes the blockchain, or only checks the pruning state if
// check is true.
func (c *Client) PruneBlockchain(ctx context.Context, check bool) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodPruneBlockchain, map[string]any{"check": check})
}

// CalcPow calculates the PoW hash of a block candidate.
func (c *Client) CalcPow(ctx context.Context, req *CalcPowRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.Require(
		rpc.RequireString("block_blob", req.BlockBlob),
		rpc.RequireString("seed_hash", req.SeedHash),
	); err != nil {
		return nil, err
	}
	return c.jsonRPC(ctx, methodCalcPow, req)
}

// FlushCache flushes the bad transaction and bad block caches.
func (c *Client) FlushCache(ctx context.Context, badTxs, badBlocks bool) (json.RawMessage, error) {
	return c.jsonRPC(ctx, methodFlushCache, map[string]any{
		"bad_txs":    badTxs,
		"bad_blocks": badBlocks,
	})
}
