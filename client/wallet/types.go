// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import "decred.org/xmrrpc/dex/networks/xmr"

// Amounts are in atomic units. See the xmr package for conversions.

// Destination is a transfer recipient.
type Destination struct {
	Amount  uint64 `json:"amount"`
	Address string `json:"address"`
}

// XMRDestination is a Destination for an amount given in XMR.
func XMRDestination(address string, amount float64) Destination {
	return Destination{Amount: xmr.ToAtoms(amount), Address: address}
}

// SubaddressIndex locates a subaddress.
type SubaddressIndex struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

// Priority is a transaction priority, 0 (default) through 4.
type Priority uint32

const (
	PriorityDefault Priority = iota
	PriorityUnimportant
	PriorityNormal
	PriorityElevated
	PriorityPriority
)

// TransferRequest is the params of transfer and transfer_split.
type TransferRequest struct {
	Destinations   []Destination `json:"destinations"`
	AccountIndex   *uint32       `json:"account_index,omitempty"`
	SubaddrIndices []uint32      `json:"subaddr_indices,omitempty"`
	Priority       Priority      `json:"priority"`
	RingSize       *uint32       `json:"ring_size,omitempty"`
	UnlockTime     *uint64       `json:"unlock_time,omitempty"`
	PaymentID      *string       `json:"payment_id,omitempty"`
	GetTxKey       bool          `json:"get_tx_key,omitempty"`
	GetTxKeys      bool          `json:"get_tx_keys,omitempty"`
	DoNotRelay     bool          `json:"do_not_relay,omitempty"`
	GetTxHex       bool          `json:"get_tx_hex,omitempty"`
	GetTxMetadata  bool          `json:"get_tx_metadata,omitempty"`
}

// SweepDustRequest is the params of sweep_dust.
type SweepDustRequest struct {
	GetTxKeys     bool `json:"get_tx_keys,omitempty"`
	DoNotRelay    bool `json:"do_not_relay,omitempty"`
	GetTxHex      bool `json:"get_tx_hex,omitempty"`
	GetTxMetadata bool `json:"get_tx_metadata,omitempty"`
}

// SweepAllRequest is the params of sweep_all.
type SweepAllRequest struct {
	Address           string   `json:"address"`
	AccountIndex      uint32   `json:"account_index"`
	SubaddrIndices    []uint32 `json:"subaddr_indices,omitempty"`
	SubaddrIndicesAll bool     `json:"subaddr_indices_all,omitempty"`
	Priority          Priority `json:"priority"`
	RingSize          *uint32  `json:"ring_size,omitempty"`
	Outputs           *uint32  `json:"outputs,omitempty"`
	UnlockTime        *uint64  `json:"unlock_time,omitempty"`
	BelowAmount       *uint64  `json:"below_amount,omitempty"`
	GetTxKeys         bool     `json:"get_tx_keys,omitempty"`
	DoNotRelay        bool     `json:"do_not_relay,omitempty"`
	GetTxHex          bool     `json:"get_tx_hex,omitempty"`
	GetTxMetadata     bool     `json:"get_tx_metadata,omitempty"`
}

// SweepSingleRequest is the params of sweep_single.
type SweepSingleRequest struct {
	Address       string   `json:"address"`
	KeyImage      string   `json:"key_image"`
	Priority      Priority `json:"priority"`
	RingSize      *uint32  `json:"ring_size,omitempty"`
	Outputs       *uint32  `json:"outputs,omitempty"`
	UnlockTime    *uint64  `json:"unlock_time,omitempty"`
	GetTxKey      bool     `json:"get_tx_key,omitempty"`
	DoNotRelay    bool     `json:"do_not_relay,omitempty"`
	GetTxHex      bool     `json:"get_tx_hex,omitempty"`
	GetTxMetadata bool     `json:"get_tx_metadata,omitempty"`
}

// GetTransfersRequest is the params of get_transfers. At least one of the
// In, Out, Pending, Failed and Pool categories should be set.
type GetTransfersRequest struct {
	In             bool     `json:"in,omitempty"`
	Out            bool     `json:"out,omitempty"`
	Pending        bool     `json:"pending,omitempty"`
	Failed         bool     `json:"failed,omitempty"`
	Pool           bool     `json:"pool,omitempty"`
	FilterByHeight bool     `json:"filter_by_height,omitempty"`
	MinHeight      *uint64  `json:"min_height,omitempty"`
	MaxHeight      *uint64  `json:"max_height,omitempty"`
	AccountIndex   *uint32  `json:"account_index,omitempty"`
	SubaddrIndices []uint32 `json:"subaddr_indices,omitempty"`
	AllAccounts    bool     `json:"all_accounts,omitempty"`
}

// SignedKeyImage is an element of import_key_images params.
type SignedKeyImage struct {
	KeyImage  string `json:"key_image"`
	Signature string `json:"signature"`
}

// URIRequest is the params of make_uri. Amount is in atomic units, and zero
// is sent as given.
type URIRequest struct {
	Address       string `json:"address"`
	Amount        uint64 `json:"amount"`
	PaymentID     string `json:"payment_id,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	TxDescription string `json:"tx_description,omitempty"`
}

// GenerateFromKeysRequest is the params of generate_from_keys. A missing
// SpendKey makes a view-only wallet.
type GenerateFromKeysRequest struct {
	RestoreHeight   uint64  `json:"restore_height"`
	Filename        string  `json:"filename"`
	Address         string  `json:"address"`
	SpendKey        *string `json:"spendkey,omitempty"`
	ViewKey         string  `json:"viewkey"`
	Password        string  `json:"password"`
	AutosaveCurrent *bool   `json:"autosave_current,omitempty"`
}

// RestoreDeterministicRequest is the params of restore_deterministic_wallet.
type RestoreDeterministicRequest struct {
	RestoreHeight   uint64 `json:"restore_height"`
	Filename        string `json:"filename"`
	Seed            string `json:"seed"`
	SeedOffset      string `json:"seed_offset,omitempty"`
	Password        string `json:"password"`
	Language        string `json:"language,omitempty"`
	AutosaveCurrent *bool  `json:"autosave_current,omitempty"`
}

// SetDaemonRequest is the params of set_daemon. An empty Address
// disconnects the wallet from its daemon.
type SetDaemonRequest struct {
	Address         string  `json:"address"`
	Username        *string `json:"username,omitempty"`
	Password        *string `json:"password,omitempty"`
	Trusted         bool    `json:"trusted"`
	SSLSupport      string  `json:"ssl_support,omitempty"`
	SSLAllowAnyCert bool    `json:"ssl_allow_any_cert,omitempty"`
}

// VersionResult is the decoded result of get_version.
type VersionResult struct {
	Version uint32 `json:"version"`
	Release bool   `json:"release"`
}

// Major is the major RPC version.
func (v *VersionResult) Major() uint32 {
	return v.Version >> 16
}

// Minor is the minor RPC version.
func (v *VersionResult) Minor() uint32 {
	return v.Version & 0xffff
}

// BalanceResult is the decoded result of get_balance.
type BalanceResult struct {
	Balance              uint64 `json:"balance"`
	UnlockedBalance      uint64 `json:"unlocked_balance"`
	MultisigImportNeeded bool   `json:"multisig_import_needed"`
	BlocksToUnlock       uint64 `json:"blocks_to_unlock"`
	TimeToUnlock         uint64 `json:"time_to_unlock"`
}

// XMR returns the balance and unlocked balance in XMR.
func (b *BalanceResult) XMR() (balance, unlocked float64) {
	return xmr.FromAtoms(b.Balance), xmr.FromAtoms(b.UnlockedBalance)
}
