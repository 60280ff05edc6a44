// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"math/rand/v2"

	"decred.org/xmrrpc/dex"
	"decred.org/xmrrpc/dex/networks/xmr"
)

// Intn returns a uniformly distributed int in [0, n). rand.IntN is used when
// none is given.
type Intn func(n int) int

// Shuffle permutes s in place with the Fisher-Yates algorithm. Every ordering
// is equally likely if intn is uniform.
func Shuffle[T any](s []T, intn Intn) {
	if intn == nil {
		intn = rand.IntN
	}
	for i := len(s) - 1; i > 0; i-- {
		j := intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// BuildCandidates orders the endpoints to probe. The requested endpoint, if
// any, is first. The locals follow in the given order, then the known
// endpoints, which are shuffled if shuffle is true. The input slices are not
// modified.
func BuildCandidates(requested *Descriptor, locals, known []Descriptor, shuffle bool, intn Intn) []Descriptor {
	remote := make([]Descriptor, len(known))
	copy(remote, known)
	if shuffle {
		Shuffle(remote, intn)
	}
	candidates := make([]Descriptor, 0, len(locals)+len(remote)+1)
	if requested != nil {
		candidates = append(candidates, *requested)
	}
	candidates = append(candidates, locals...)
	return append(candidates, remote...)
}

func local(port uint16) Descriptor {
	return Descriptor{
		Hostname: "127.0.0.1",
		Port:     port,
		Protocol: HTTP,
	}
}

// LocalDaemons are the conventional local monerod endpoints for the network:
// the unrestricted RPC port, then the restricted one.
func LocalDaemons(net dex.Network) []Descriptor {
	ports := xmr.Ports(net)
	return []Descriptor{local(ports.Daemon), local(ports.Restricted)}
}

// LocalWallets are the conventional local monero-wallet-rpc endpoints for the
// network.
func LocalWallets(net dex.Network) []Descriptor {
	return []Descriptor{local(xmr.Ports(net).Wallet)}
}

// Locals returns LocalDaemons or LocalWallets.
func Locals(svc Service, net dex.Network) []Descriptor {
	if svc == Wallet {
		return LocalWallets(net)
	}
	return LocalDaemons(net)
}
