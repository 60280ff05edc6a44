// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package daemon

const (
	// JSON-RPC methods, posted to /json_rpc.
	methodGetBlockCount          = "get_block_count"
	methodOnGetBlockHash         = "on_get_block_hash"
	methodGetBlockTemplate       = "get_block_template"
	methodSubmitBlock            = "submit_block"
	methodGenerateBlocks         = "generateblocks" // regtest only
	methodGetLastBlockHeader     = "get_last_block_header"
	methodGetBlockHeaderByHash   = "get_block_header_by_hash"
	methodGetBlockHeaderByHeight = "get_block_header_by_height"
	methodGetBlockHeadersRange   = "get_block_headers_range"
	methodGetBlock               = "get_block"
	methodGetConnections         = "get_connections"
	methodGetInfo                = "get_info"
	methodHardForkInfo           = "hard_fork_info"
	methodSetBans                = "set_bans"
	methodGetBans                = "get_bans"
	methodBanned                 = "banned"
	methodFlushTxpool            = "flush_txpool"
	methodGetOutputHistogram     = "get_output_histogram"
	methodGetVersion             = "get_version"
	methodGetCoinbaseTxSum       = "get_coinbase_tx_sum"
	methodGetFeeEstimate         = "get_fee_estimate"
	methodGetAlternateChains     = "get_alternate_chains"
	methodRelayTx                = "relay_tx"
	methodSyncInfo               = "sync_info"
	methodGetTxpoolBacklog       = "get_txpool_backlog"
	methodGetOutputDistribution  = "get_output_distribution"
	methodGetMinerData           = "get_miner_data"
	methodPruneBlockchain        = "prune_blockchain"
	methodCalcPow                = "calc_pow"
	methodFlushCache             = "flush_cache"

	// Other methods, each posted to its own path.
	methodGetHeight                = "get_height"
	methodGetTransactions          = "get_transactions"
	methodGetAltBlocksHashes       = "get_alt_blocks_hashes"
	methodIsKeyImageSpent          = "is_key_image_spent"
	methodSendRawTransaction       = "send_raw_transaction"
	methodStartMining              = "start_mining"
	methodStopMining               = "stop_mining"
	methodMiningStatus             = "mining_status"
	methodSaveBC                   = "save_bc"
	methodGetPeerList              = "get_peer_list"
	methodGetPublicNodes           = "get_public_nodes"
	methodSetLogHashRate           = "set_log_hash_rate"
	methodSetLogLevel              = "set_log_level"
	methodSetLogCategories         = "set_log_categories"
	methodGetTransactionPool       = "get_transaction_pool"
	methodGetTransactionPoolHashes = "get_transaction_pool_hashes"
	methodGetTransactionPoolStats  = "get_transaction_pool_stats"
	methodStopDaemon               = "stop_daemon"
	methodGetLimit                 = "get_limit"
	methodSetLimit                 = "set_limit"
	methodOutPeers                 = "out_peers"
	methodInPeers                  = "in_peers"
	methodGetOuts                  = "get_outs"
	methodUpdate                   = "update"
	methodPopBlocks                = "pop_blocks"
	methodGetNetStats              = "get_net_stats"
)

// Methods lists the JSON-RPC methods the Client can call.
var Methods = []string{
	methodGetBlockCount, methodOnGetBlockHash, methodGetBlockTemplate,
	methodSubmitBlock, methodGenerateBlocks, methodGetLastBlockHeader,
	methodGetBlockHeaderByHash, methodGetBlockHeaderByHeight,
	methodGetBlockHeadersRange, methodGetBlock, methodGetConnections,
	methodGetInfo, methodHardForkInfo, methodSetBans, methodGetBans,
	methodBanned, methodFlushTxpool, methodGetOutputHistogram,
	methodGetVersion, methodGetCoinbaseTxSum, methodGetFeeEstimate,
	methodGetAlternateChains, methodRelayTx, methodSyncInfo,
	methodGetTxpoolBacklog, methodGetOutputDistribution, methodGetMinerData,
	methodPruneBlockchain, methodCalcPow, methodFlushCache,
}

// OtherMethods lists the methods posted to their own path.
var OtherMethods = []string{
	methodGetHeight, methodGetTransactions, methodGetAltBlocksHashes,
	methodIsKeyImageSpent, methodSendRawTransaction, methodStartMining,
	methodStopMining, methodMiningStatus, methodSaveBC, methodGetPeerList,
	methodGetPublicNodes, methodSetLogHashRate, methodSetLogLevel,
	methodSetLogCategories, methodGetTransactionPool,
	methodGetTransactionPoolHashes, methodGetTransactionPoolStats,
	methodStopDaemon, methodGetLimit, methodSetLimit, methodOutPeers,
	methodInPeers, methodGetOuts, methodUpdate, methodPopBlocks,
	methodGetNetStats,
}
