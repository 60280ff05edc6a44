// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package xmr

import (
	"math"

	"decred.org/xmrrpc/dex"
)

const (
	// AtomsPerXMR is the number of atomic units (piconero) in one XMR.
	AtomsPerXMR = 1e12
)

// NetPorts are the conventional RPC ports of a Monero network.
type NetPorts struct {
	// Daemon is monerod's unrestricted RPC port.
	Daemon uint16
	// Restricted is the port public nodes use for restricted RPC.
	Restricted uint16
	// Wallet is the customary monero-wallet-rpc port. It has no built-in
	// default, so this is convention only.
	Wallet uint16
}

var (
	MainnetPorts = NetPorts{
		Daemon:     18081,
		Restricted: 18089,
		Wallet:     18083,
	}
	// StagenetPorts are used for dex.Testnet.
	StagenetPorts = NetPorts{
		Daemon:     38081,
		Restricted: 38089,
		Wallet:     38083,
	}
	// RegtestPorts are used for dex.Simnet. monerod --regtest keeps the
	// mainnet ports.
	RegtestPorts = NetPorts{
		Daemon:     18081,
		Restricted: 18089,
		Wallet:     18083,
	}
)

// Ports returns the conventional ports for the network.
func Ports(net dex.Network) NetPorts {
	switch net {
	case dex.Testnet:
		return StagenetPorts
	case dex.Simnet:
		return RegtestPorts
	}
	return MainnetPorts
}

// ToAtoms converts an amount in XMR to atomic units, rounding to the nearest
// atom. Negative and NaN amounts yield 0. Amounts too large for a uint64 yield
// math.MaxUint64.
func ToAtoms(v float64) uint64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	atoms := math.Round(v * AtomsPerXMR)
	if atoms >= 1<<64 {
		return math.MaxUint64
	}
	return uint64(atoms)
}

// FromAtoms converts atomic units to XMR.
func FromAtoms(v uint64) float64 {
	return float64(v) / AtomsPerXMR
}
