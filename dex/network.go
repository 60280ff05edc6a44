// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"fmt"
	"strings"
)

// Network flags passed to clients to signify which network to use.
type Network uint8

const (
	Mainnet Network = iota
	Testnet
	Regtest
)

// Simnet is an alias of Regtest.
const Simnet = Regtest

// String returns the string representation of a Network.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Simnet:
		return "simnet"
	}
	return ""
}

// NetFromString returns the Network for the given network name. Monero's
// "stagenet" is the public test network and maps to Testnet.
func NetFromString(net string) (Network, error) {
	switch strings.ToLower(net) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "stagenet", "stage", "test":
		return Testnet, nil
	case "regtest", "regnet", "simnet", "reg":
		return Simnet, nil
	}
	return 255, fmt.Errorf("unknown network %s", net)
}
