// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"decred.org/xmrrpc/dex"
)

func knownList(n int) []Descriptor {
	ds := make([]Descriptor, n)
	for i := range ds {
		ds[i] = Descriptor{
			Hostname: fmt.Sprintf("node%d.example", i),
			Port:     18089,
			Protocol: HTTP,
		}
	}
	return ds
}

func TestBuildCandidatesOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	requested := &Descriptor{Hostname: "my.node", Port: 0, Protocol: HTTPS, Credentials: &Credentials{User: "u"}}
	locals := LocalDaemons(dex.Mainnet)
	known := knownList(6)
	orig := slices.Clone(known)

	for _, req := range []*Descriptor{requested, nil} {
		for _, shuffle := range []bool{false, true} {
			for trial := 0; trial < 200; trial++ {
				cs := BuildCandidates(req, locals, known, shuffle, rng.IntN)
				if len(cs) != len(locals)+len(known)+btoi(req != nil) {
					t.Fatalf("wrong candidate count %d", len(cs))
				}
				rest := cs
				if req != nil {
					if cs[0] != *req {
						t.Fatalf("requested endpoint not first: %v", cs[0])
					}
					rest = cs[1:]
				}
				if !slices.Equal(rest[:len(locals)], locals) {
					t.Fatalf("locals not next: %v", rest[:len(locals)])
				}
				remote := rest[len(locals):]
				if !shuffle && !slices.Equal(remote, known) {
					t.Fatalf("known list reordered without shuffle")
				}
				if !sameSet(remote, known) {
					t.Fatalf("shuffle changed the set of known endpoints")
				}
			}
		}
	}
	if !slices.Equal(known, orig) {
		t.Fatalf("input slice modified")
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sameSet(a, b []Descriptor) bool {
	key := func(d Descriptor) string { return d.URL() }
	as, bs := make([]string, len(a)), make([]string, len(b))
	for i := range a {
		as[i] = key(a[i])
	}
	for i := range b {
		bs[i] = key(b[i])
	}
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// TestShuffleUniform checks that all n! orderings of a short list come up
// with equal frequency using a chi-squared test.
func TestShuffleUniform(t *testing.T) {
	const n = 4 // 24 permutations
	const trials = 240000
	rng := rand.New(rand.NewPCG(1, 2))
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		s := []int{0, 1, 2, 3}
		Shuffle(s, rng.IntN)
		var b strings.Builder
		for _, v := range s {
			b.WriteByte(byte('0' + v))
		}
		counts[b.String()]++
	}
	if len(counts) != 24 {
		t.Fatalf("expected 24 permutations, saw %d", len(counts))
	}
	expected := float64(trials) / 24
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	// 23 degrees of freedom, p = 0.001 critical value is 49.73.
	if chi2 > 49.73 || math.IsNaN(chi2) {
		t.Fatalf("shuffle not uniform, chi2 = %.2f, counts = %v", chi2, counts)
	}
}

func TestShufflePreservesElements(t *testing.T) {
	for n := 0; n < 10; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i * 3
		}
		Shuffle(s, nil)
		slices.Sort(s)
		for i := range s {
			if s[i] != i*3 {
				t.Fatalf("element lost for n = %d: %v", n, s)
			}
		}
	}
}

func TestLocals(t *testing.T) {
	tests := []struct {
		net                   dex.Network
		daemon, restr, wallet uint16
	}{
		{dex.Mainnet, 18081, 18089, 18083},
		{dex.Testnet, 38081, 38089, 38083},
		{dex.Simnet, 18081, 18089, 18083},
	}
	for _, tt := range tests {
		ds := Locals(Daemon, tt.net)
		if len(ds) != 2 || ds[0].Port != tt.daemon || ds[1].Port != tt.restr {
			t.Errorf("%s: wrong local daemons %v", tt.net, ds)
		}
		ws := Locals(Wallet, tt.net)
		if len(ws) != 1 || ws[0].Port != tt.wallet {
			t.Errorf("%s: wrong local wallets %v", tt.net, ws)
		}
		for _, d := range append(ds, ws...) {
			if d.Hostname != "127.0.0.1" || d.Protocol != HTTP || d.Credentials != nil {
				t.Errorf("%s: bad local %v", tt.net, d)
			}
		}
	}
}
