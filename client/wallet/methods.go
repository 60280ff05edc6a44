// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

const (
	methodGetBalance             = "get_balance"
	methodGetAddress             = "get_address"
	methodGetAddressIndex        = "get_address_index"
	methodCreateAddress          = "create_address"
	methodLabelAddress           = "label_address"
	methodValidateAddress        = "validate_address"
	methodGetAccounts            = "get_accounts"
	methodCreateAccount          = "create_account"
	methodLabelAccount           = "label_account"
	methodGetAccountTags         = "get_account_tags"
	methodTagAccounts            = "tag_accounts"
	methodUntagAccounts          = "untag_accounts"
	methodSetAccountTagDesc      = "set_account_tag_description"
	methodGetHeight              = "get_height"
	methodTransfer               = "transfer"
	methodTransferSplit          = "transfer_split"
	methodSweepDust              = "sweep_dust"
	methodSweepAll               = "sweep_all"
	methodSweepSingle            = "sweep_single"
	methodRelayTx                = "relay_tx"
	methodStore                  = "store"
	methodGetPayments            = "get_payments"
	methodGetBulkPayments        = "get_bulk_payments"
	methodIncomingTransfers      = "incoming_transfers"
	methodQueryKey               = "query_key"
	methodMakeIntegratedAddress  = "make_integrated_address"
	methodSplitIntegratedAddress = "split_integrated_address"
	methodStopWallet             = "stop_wallet"
	methodRescanBlockchain       = "rescan_blockchain"
	methodSetTxNotes             = "set_tx_notes"
	methodGetTxNotes             = "get_tx_notes"
	methodSetAttribute           = "set_attribute"
	methodGetAttribute           = "get_attribute"
	methodGetTxKey               = "get_tx_key"
	methodCheckTxKey             = "check_tx_key"
	methodGetTxProof             = "get_tx_proof"
	methodCheckTxProof           = "check_tx_proof"
	methodGetTransfers           = "get_transfers"
	methodGetTransferByTxID      = "get_transfer_by_txid"
	methodSign                   = "sign"
	methodVerify                 = "verify"
	methodExportOutputs          = "export_outputs"
	methodImportOutputs          = "import_outputs"
	methodExportKeyImages        = "export_key_images"
	methodImportKeyImages        = "import_key_images"
	methodMakeURI                = "make_uri"
	methodParseURI               = "parse_uri"
	methodGetAddressBook         = "get_address_book"
	methodAddAddressBook         = "add_address_book"
	methodEditAddressBook        = "edit_address_book"
	methodDeleteAddressBook      = "delete_address_book"
	methodRefresh                = "refresh"
	methodAutoRefresh            = "auto_refresh"
	methodRescanSpent            = "rescan_spent"
	methodStartMining            = "start_mining"
	methodStopMining             = "stop_mining"
	methodGetLanguages           = "get_languages"
	methodCreateWallet           = "create_wallet"
	methodOpenWallet             = "open_wallet"
	methodCloseWallet            = "close_wallet"
	methodChangeWalletPassword   = "change_wallet_password"
	methodGenerateFromKeys       = "generate_from_keys"
	methodRestoreDeterministic   = "restore_deterministic_wallet"
	methodIsMultisig             = "is_multisig"
	methodGetVersion             = "get_version"
	methodSetDaemon              = "set_daemon"
	methodFreeze                 = "freeze"
	methodThaw                   = "thaw"
	methodFrozen                 = "frozen"
)

// mutating are the methods followed by a store call when AutoStore is set.
var mutating = map[string]bool{
	methodCreateAddress:     true,
	methodLabelAddress:      true,
	methodCreateAccount:     true,
	methodLabelAccount:      true,
	methodTagAccounts:       true,
	methodUntagAccounts:     true,
	methodSetAccountTagDesc: true,
	methodSetTxNotes:        true,
	methodSetAttribute:      true,
	methodAddAddressBook:    true,
	methodEditAddressBook:   true,
	methodDeleteAddressBook: true,
}

// Methods lists the methods the Client can call.
var Methods = []string{
	methodGetBalance, methodGetAddress, methodGetAddressIndex,
	methodCreateAddress, methodLabelAddress, methodValidateAddress,
	methodGetAccounts, methodCreateAccount, methodLabelAccount,
	methodGetAccountTags, methodTagAccounts, methodUntagAccounts,
	methodSetAccountTagDesc, methodGetHeight, methodTransfer,
	methodTransferSplit, methodSweepDust, methodSweepAll, methodSweepSingle,
	methodRelayTx, methodStore, methodGetPayments, methodGetBulkPayments,
	methodIncomingTransfers, methodQueryKey, methodMakeIntegratedAddress,
	methodSplitIntegratedAddress, methodStopWallet, methodRescanBlockchain,
	methodSetTxNotes, methodGetTxNotes, methodSetAttribute,
	methodGetAttribute, methodGetTxKey, methodCheckTxKey, methodGetTxProof,
	methodCheckTxProof, methodGetTransfers, methodGetTransferByTxID,
	methodSign, methodVerify, methodExportOutputs, methodImportOutputs,
	methodExportKeyImages, methodImportKeyImages, methodMakeURI,
	methodParseURI, methodGetAddressBook, methodAddAddressBook,
	methodEditAddressBook, methodDeleteAddressBook, methodRefresh,
	methodAutoRefresh, methodRescanSpent, methodStartMining,
	methodStopMining, methodGetLanguages, methodCreateWallet,
	methodOpenWallet, methodCloseWallet, methodChangeWalletPassword,
	methodGenerateFromKeys, methodRestoreDeterministic, methodIsMultisig,
	methodGetVersion, methodSetDaemon, methodFreeze, methodThaw,
	methodFrozen,
}
