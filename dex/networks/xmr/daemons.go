// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package xmr

import "decred.org/xmrrpc/dex"

const (
	CakeMainnetTLS       = "https://xmr-node.cakewallet.com:18081"
	StackMainnetTLS      = "https://monero.stackwallet.com:18081"
	CakeMainnet          = "http://xmr-node.cakewallet.com:18081"
	MoneroDevsMainnetTLS = "https://node2.monerodevs.org:18089"
	MoneroDevsMainnet_1  = "http://node.monerodevs.org:18089"
	MoneroDevsMainnet_2  = "http://node2.monerodevs.org:18089"
	MoneroDevsMainnet_3  = "http://node3.monerodevs.org:18089"
	MoneroDevsStagenet_1 = "http://node.monerodevs.org:38089"
	MoneroDevsStagenet_2 = "http://node2.monerodevs.org:38089"
	MoneroDevsStagenet_3 = "http://node3.monerodevs.org:38089"
)

// KnownDaemons returns the URLs of known public daemons for the network. TLS
// nodes come first. There are no public regtest nodes.
func KnownDaemons(net dex.Network) []string {
	switch net {
	case dex.Mainnet:
		return []string{
			CakeMainnetTLS,
			StackMainnetTLS,
			MoneroDevsMainnetTLS,
			CakeMainnet,
			MoneroDevsMainnet_1,
			MoneroDevsMainnet_2,
			MoneroDevsMainnet_3,
		}
	case dex.Testnet:
		return []string{
			MoneroDevsStagenet_1,
			MoneroDevsStagenet_2,
			MoneroDevsStagenet_3,
		}
	}
	return nil
}
