// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package wallet

import (
	"context"
	"encoding/json"

	"decred.org/xmrrpc/client/rpc"
)

// StopWallet saves the wallet and stops the wallet service.
func (c *Client) StopWallet(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodStopWallet, nil)
}

// RescanBlockchain rescans the chain from the start. A hard rescan also
// forgets spent state.
func (c *Client) RescanBlockchain(ctx context.Context, hard bool) (json.RawMessage, error) {
	var params any
	if hard {
		params = map[string]any{"hard": true}
	}
	return c.call(ctx, methodRescanBlockchain, params)
}

// Refresh syncs the wallet, from startHeight if it is set.
func (c *Client) Refresh(ctx context.Context, startHeight *uint64) (json.RawMessage, error) {
	var params any
	if startHeight != nil {
		params = map[string]any{"start_height": *startHeight}
	}
	return c.call(ctx, methodRefresh, params)
}

// AutoRefresh enables or disables background refresh. A nil period keeps the
// service's default.
func (c *Client) AutoRefresh(ctx context.Context, enable bool, period *uint32) (json.RawMessage, error) {
	params := map[string]any{"enable": enable}
	if period != nil {
		params["period"] = *period
	}
	return c.call(ctx, methodAutoRefresh, params)
}

// RescanSpent rescans the chain for spent outputs.
func (c *Client) RescanSpent(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodRescanSpent, nil)
}

// StartMining starts mining in the wallet's daemon.
func (c *Client) StartMining(ctx context.Context, threadsCount uint64, backgroundMining, ignoreBattery bool) (json.RawMessage, error) {
	return c.call(ctx, methodStartMining, map[string]any{
		"threads_count":        threadsCount,
		"do_background_mining": backgroundMining,
		"ignore_battery":       ignoreBattery,
	})
}

// StopMining stops mining in the wallet's daemon.
func (c *Client) StopMining(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodStopMining, nil)
}

// GetLanguages gets the mnemonic languages.
func (c *Client) GetLanguages(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodGetLanguages, nil)
}

// CreateWallet creates a wallet file in the service's wallet directory and
// opens it.
func (c *Client) CreateWallet(ctx context.Context, filename, password, language string) (json.RawMessage, error) {
	if err := rpc.Require(rpc.RequireString("filename", filename), rpc.RequireString("language", language)); err != nil {
		return nil, err
	}
	return c.call(ctx, methodCreateWallet, map[string]any{
		"filename": filename,
		"password": password,
		"language": language,
	})
}

// OpenWallet opens a wallet file. An empty password is sent as is.
func (c *Client) OpenWallet(ctx context.Context, filename, password string) (json.RawMessage, error) {
	if err := rpc.RequireString("filename", filename); err != nil {
		return nil, err
	}
	return c.call(ctx, methodOpenWallet, map[string]any{
		"filename": filename,
		"password": password,
	})
}

// CloseWallet saves and closes the open wallet.
func (c *Client) CloseWallet(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodCloseWallet, nil)
}

// ChangeWalletPassword changes the open wallet's password.
func (c *Client) ChangeWalletPassword(ctx context.Context, oldPassword, newPassword string) (json.RawMessage, error) {
	return c.call(ctx, methodChangeWalletPassword, map[string]any{
		"old_password": oldPassword,
		"new_password": newPassword,
	})
}

// GenerateFromKeys restores a wallet from its address and private keys.
func (c *Client) GenerateFromKeys(ctx context.Context, req *GenerateFromKeysRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.Require(
		rpc.RequireString("filename", req.Filename),
		rpc.RequireString("address", req.Address),
		rpc.RequireString("viewkey", req.ViewKey),
	); err != nil {
		return nil, err
	}
	return c.call(ctx, methodGenerateFromKeys, req)
}

// RestoreDeterministicWallet restores a wallet from its mnemonic seed.
func (c *Client) RestoreDeterministicWallet(ctx context.Context, req *RestoreDeterministicRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	if err := rpc.Require(rpc.RequireString("filename", req.Filename), rpc.RequireString("seed", req.Seed)); err != nil {
		return nil, err
	}
	return c.call(ctx, methodRestoreDeterministic, req)
}

// IsMultisig checks whether the wallet is multisig.
func (c *Client) IsMultisig(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodIsMultisig, nil)
}

// GetVersion gets the wallet service's RPC version.
func (c *Client) GetVersion(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, methodGetVersion, nil)
}

// SetDaemon connects the wallet to a daemon.
func (c *Client) SetDaemon(ctx context.Context, req *SetDaemonRequest) (json.RawMessage, error) {
	if err := rpc.RequireNonNil("request", req); err != nil {
		return nil, err
	}
	return c.call(ctx, methodSetDaemon, req)
}

// Freeze excludes the output with the key image from spending.
func (c *Client) Freeze(ctx context.Context, keyImage string) (json.RawMessage, error) {
	if err := rpc.RequireString("key_image", keyImage); err != nil {
		return nil, err
	}
	return c.call(ctx, methodFreeze, map[string]any{"key_image": keyImage})
}

// Thaw undoes Freeze.
func (c *Client) Thaw(ctx context.Context, keyImage string) (json.RawMessage, error) {
	if err := rpc.RequireString("key_image", keyImage); err != nil {
		return nil, err
	}
	return c.call(ctx, methodThaw, map[string]any{"key_image": keyImage})
}

// Frozen checks whether the output with the key image is frozen.
func (c *Client) Frozen(ctx context.Context, keyImage string) (json.RawMessage, error) {
	if err := rpc.RequireString("key_image", keyImage); err != nil {
		return nil, err
	}
	return c.call(ctx, methodFrozen, map[string]any{"key_image": keyImage})
}
