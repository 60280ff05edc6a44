// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"decred.org/xmrrpc/dex"
)

const knownJSON = `[
	{"url": "http://node.monerodevs.org:38089", "tls": false, "net": "stage"},
	{"url": "http://xmr-node.cakewallet.com:18081", "tls": false, "net": "main"},
	{"url": "http://monero.stackwallet.com:18081", "tls": true, "net": "main", "user": "me", "pass": ""},
	{"url": "http://127.0.0.1:18081", "net": "reg"}
]`

func TestLoadKnown(t *testing.T) {
	ds, err := LoadKnown(strings.NewReader(knownJSON), dex.Mainnet)
	if err != nil {
		t.Fatalf("LoadKnown error: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 mainnet entries, got %d", len(ds))
	}
	if ds[0].Hostname != "xmr-node.cakewallet.com" || ds[0].Protocol != HTTP || ds[0].Credentials != nil {
		t.Fatalf("wrong first entry %+v", ds[0])
	}
	if ds[1].Protocol != HTTPS {
		t.Fatalf("tls flag not applied")
	}
	if ds[1].Credentials == nil || ds[1].Credentials.User != "me" || ds[1].Credentials.Pass != "" {
		t.Fatalf("wrong credentials %+v", ds[1].Credentials)
	}

	ds, err = LoadKnown(strings.NewReader(knownJSON), dex.Testnet)
	if err != nil || len(ds) != 1 || ds[0].Port != 38089 {
		t.Fatalf("wrong stagenet entries %v, %v", ds, err)
	}

	for _, bad := range []string{
		`{"url": "http://a:1"}`,
		`[{"url": "http://a:1", "net": "moon"}]`,
		`[{"url": "http://a", "net": "main"}]`,
	} {
		if _, err := LoadKnown(strings.NewReader(bad), dex.Mainnet); err == nil {
			t.Errorf("no error for %s", bad)
		}
	}
}

func TestLoadKnownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), KnownFilename)
	if err := os.WriteFile(path, []byte(knownJSON), 0600); err != nil {
		t.Fatal(err)
	}
	ds, err := LoadKnownFile(path, dex.Simnet)
	if err != nil {
		t.Fatalf("LoadKnownFile error: %v", err)
	}
	if len(ds) != 1 || ds[0].Hostname != "127.0.0.1" {
		t.Fatalf("wrong regtest entries %v", ds)
	}
	if _, err := LoadKnownFile(path+".missing", dex.Simnet); err == nil {
		t.Fatal("no error for missing file")
	}
}

func TestDefaultKnownDaemons(t *testing.T) {
	if n := len(DefaultKnownDaemons(dex.Mainnet)); n != 7 {
		t.Fatalf("expected 7 mainnet daemons, got %d", n)
	}
	for _, d := range DefaultKnownDaemons(dex.Testnet) {
		if d.Port != 38089 {
			t.Fatalf("stagenet daemon on port %d", d.Port)
		}
	}
	if len(DefaultKnownDaemons(dex.Simnet)) != 0 {
		t.Fatal("public regtest daemons")
	}
}

func TestAutoconnectConfigCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), KnownFilename)
	if err := os.WriteFile(path, []byte(knownJSON), 0600); err != nil {
		t.Fatal(err)
	}
	req := &Descriptor{Hostname: "mine", Port: 1, Protocol: HTTP}

	cfg := &AutoconnectConfig{Requested: req, Network: dex.Testnet, KnownFile: path}
	cs, err := cfg.Candidates(Daemon)
	if err != nil {
		t.Fatal(err)
	}
	// requested, 2 locals, 1 from file, 3 built-in.
	if len(cs) != 7 {
		t.Fatalf("expected 7 candidates, got %d: %v", len(cs), cs)
	}
	if cs[0] != *req || cs[1].Port != 38081 || cs[2].Port != 38089 {
		t.Fatalf("wrong head of list %v", cs[:3])
	}
	if cs[3].Hostname != "node.monerodevs.org" {
		t.Fatalf("file entries not ahead of built-in list: %v", cs[3])
	}

	// Wallets have no built-in list.
	cs, err = (&AutoconnectConfig{Network: dex.Testnet}).Candidates(Wallet)
	if err != nil || len(cs) != 1 || cs[0].Port != 38083 {
		t.Fatalf("wrong wallet candidates %v, %v", cs, err)
	}

	// An explicit empty Known list means no remote endpoints.
	cs, err = (&AutoconnectConfig{Network: dex.Mainnet, Known: []Descriptor{}, NoLocals: true, Requested: req}).Candidates(Daemon)
	if err != nil || len(cs) != 1 {
		t.Fatalf("wrong candidates %v, %v", cs, err)
	}

	if _, err = (&AutoconnectConfig{Requested: &Descriptor{Protocol: HTTP}}).Candidates(Daemon); err == nil {
		t.Fatal("no error for invalid requested endpoint")
	}
	if _, err = (&AutoconnectConfig{KnownFile: path + ".missing"}).Candidates(Daemon); err == nil {
		t.Fatal("no error for missing known file")
	}
}
