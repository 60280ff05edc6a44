// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"decred.org/xmrrpc/dex"
	"decred.org/xmrrpc/dex/networks/xmr"
)

// KnownFilename is the customary name of a known endpoints file.
const KnownFilename = "daemons.json"

// knownEntry is an element of a known endpoints file, e.g.
//
//	[{"url": "http://node.monerodevs.org:38089", "tls": false, "net": "stage"}]
//
// The tls flag forces https. user and pass are optional.
type knownEntry struct {
	URL  string  `json:"url"`
	TLS  bool    `json:"tls"`
	Net  string  `json:"net"`
	User *string `json:"user,omitempty"`
	Pass *string `json:"pass,omitempty"`
}

// LoadKnown reads a JSON known endpoints list and returns the entries for
// the network, in file order.
func LoadKnown(r io.Reader, net dex.Network) ([]Descriptor, error) {
	var entries []knownEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("error decoding known endpoints: %w", err)
	}
	ds := make([]Descriptor, 0, len(entries))
	for i, e := range entries {
		entryNet, err := dex.NetFromString(e.Net)
		if err != nil {
			return nil, fmt.Errorf("known endpoint %d: %w", i, err)
		}
		if entryNet != net {
			continue
		}
		d, err := ParseURL(e.URL)
		if err != nil {
			return nil, fmt.Errorf("known endpoint %d: %w", i, err)
		}
		if e.TLS {
			d.Protocol = HTTPS
		}
		if e.User != nil || e.Pass != nil {
			d.Credentials = &Credentials{}
			if e.User != nil {
				d.Credentials.User = *e.User
			}
			if e.Pass != nil {
				d.Credentials.Pass = *e.Pass
			}
		}
		ds = append(ds, *d)
	}
	return ds, nil
}

// LoadKnownFile is LoadKnown for a file path.
func LoadKnownFile(path string, net dex.Network) ([]Descriptor, error) {
	f, err := os.Open(dex.CleanAndExpandPath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadKnown(f, net)
}

// DefaultKnownDaemons are the built-in public monerod endpoints for the
// network.
func DefaultKnownDaemons(net dex.Network) []Descriptor {
	urls := xmr.KnownDaemons(net)
	ds := make([]Descriptor, 0, len(urls))
	for _, u := range urls {
		d, err := ParseURL(u)
		if err != nil {
			panic(fmt.Sprintf("bad built-in daemon URL %q: %v", u, err))
		}
		ds = append(ds, *d)
	}
	return ds
}
