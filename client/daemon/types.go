// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package daemon

// Optional request fields are pointers and are omitted when nil, so that
// zero values such as height 0 are still sent.

// GenerateBlocksRequest is the params of generateblocks.
type GenerateBlocksRequest struct {
	AmountOfBlocks uint64  `json:"amount_of_blocks"`
	WalletAddress  string  `json:"wallet_address"`
	PrevBlock      *string `json:"prev_block,omitempty"`
	StartingNonce  *uint32 `json:"starting_nonce,omitempty"`
}

// Ban is an element of set_bans params. Either Host or IP identifies the
// peer.
type Ban struct {
	Host    string  `json:"host,omitempty"`
	IP      *uint32 `json:"ip,omitempty"`
	Ban     bool    `json:"ban"`
	Seconds uint32  `json:"seconds"`
}

// OutputHistogramRequest is the params of get_output_histogram.
type OutputHistogramRequest struct {
	Amounts      []uint64 `json:"amounts"`
	MinCount     *uint64  `json:"min_count,omitempty"`
	MaxCount     *uint64  `json:"max_count,omitempty"`
	Unlocked     *bool    `json:"unlocked,omitempty"`
	RecentCutoff *uint64  `json:"recent_cutoff,omitempty"`
}

// OutputDistributionRequest is the params of get_output_distribution.
type OutputDistributionRequest struct {
	Amounts    []uint64 `json:"amounts"`
	Cumulative *bool    `json:"cumulative,omitempty"`
	FromHeight *uint64  `json:"from_height,omitempty"`
	ToHeight   *uint64  `json:"to_height,omitempty"`
}

// CalcPowRequest is the params of calc_pow.
type CalcPowRequest struct {
	MajorVersion uint8  `json:"major_version"`
	Height       uint64 `json:"height"`
	BlockBlob    string `json:"block_blob"`
	SeedHash     string `json:"seed_hash"`
}

// GetTransactionsRequest is the params of get_transactions.
type GetTransactionsRequest struct {
	TxsHashes    []string `json:"txs_hashes"`
	DecodeAsJSON *bool    `json:"decode_as_json,omitempty"`
	Prune        *bool    `json:"prune,omitempty"`
	Split        *bool    `json:"split,omitempty"`
}

// SendRawTransactionRequest is the params of send_raw_transaction.
type SendRawTransactionRequest struct {
	TxAsHex        string `json:"tx_as_hex"`
	DoNotRelay     *bool  `json:"do_not_relay,omitempty"`
	DoSanityChecks *bool  `json:"do_sanity_checks,omitempty"`
}

// StartMiningRequest is the params of start_mining.
type StartMiningRequest struct {
	MinerAddress       string `json:"miner_address"`
	ThreadsCount       uint64 `json:"threads_count"`
	DoBackgroundMining bool   `json:"do_background_mining"`
	IgnoreBattery      bool   `json:"ignore_battery"`
}

// PublicNodesRequest is the params of get_public_nodes.
type PublicNodesRequest struct {
	Gray           *bool `json:"gray,omitempty"`
	White          *bool `json:"white,omitempty"`
	IncludeBlocked *bool `json:"include_blocked,omitempty"`
}

// Output identifies an output for get_outs.
type Output struct {
	Amount uint64 `json:"amount"`
	Index  uint64 `json:"index"`
}

// GetInfoResult is the decoded result of get_info. Only commonly used fields
// are included.
type GetInfoResult struct {
	Height                   uint64 `json:"height"`
	TargetHeight             uint64 `json:"target_height"`
	TopBlockHash             string `json:"top_block_hash"`
	Difficulty               uint64 `json:"difficulty"`
	TxPoolSize               uint64 `json:"tx_pool_size"`
	OutgoingConnectionsCount uint32 `json:"outgoing_connections_count"`
	IncomingConnectionsCount uint32 `json:"incoming_connections_count"`
	Mainnet                  bool   `json:"mainnet"`
	Stagenet                 bool   `json:"stagenet"`
	Testnet                  bool   `json:"testnet"`
	Nettype                  string `json:"nettype"`
	Synchronized             bool   `json:"synchronized"`
	BusySyncing              bool   `json:"busy_syncing"`
	Restricted               bool   `json:"restricted"`
	Untrusted                bool   `json:"untrusted"`
	Offline                  bool   `json:"offline"`
	Version                  string `json:"version"`
	Status                   string `json:"status"`
}
