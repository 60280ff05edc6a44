// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const monerodConf = `# monerod.conf
data-dir=/var/lib/monero
rpc-bind-ip=127.0.0.1
rpc-bind-port=18081
rpc-login=monero:hunter#2
restricted-rpc=1
add-peer=1.2.3.4:18080
add-peer=5.6.7.8:18080
no-igd
`

type rpcConf struct {
	BindIP   string `ini:"rpc-bind-ip"`
	BindPort uint16 `ini:"rpc-bind-port"`
	Login    string `ini:"rpc-login"`
	SSL      string `ini:"rpc-ssl"`
}

func TestOptions(t *testing.T) {
	opts, err := Options([]byte(monerodConf))
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	tests := map[string]string{
		"rpc-bind-ip":    "127.0.0.1",
		"rpc-bind-port":  "18081",
		"rpc-login":      "monero:hunter#2",
		"restricted-rpc": "1",
		"add-peer":       "5.6.7.8:18080",
	}
	for k, want := range tests {
		if got := opts[k]; got != want {
			t.Errorf("option %s: wanted %q, got %q", k, want, got)
		}
	}
	if _, found := opts["no-igd"]; !found {
		t.Errorf("boolean key no-igd not found")
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "monerod.conf")
	if err := os.WriteFile(cfgPath, []byte(monerodConf), 0600); err != nil {
		t.Fatal(err)
	}

	var cfg rpcConf
	if err := Parse(cfgPath, &cfg); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.BindIP != "127.0.0.1" || cfg.BindPort != 18081 || cfg.Login != "monero:hunter#2" {
		t.Fatalf("wrong parsed config: %+v", cfg)
	}
	if cfg.SSL != "" {
		t.Fatalf("unset key parsed as %q", cfg.SSL)
	}

	// Section headers are flattened.
	sectioned := []byte("[rpc]\nrpc-bind-port=38081\n[wallet]\nrpc-login=a:b\n")
	cfg = rpcConf{}
	if err := Parse(sectioned, &cfg); err != nil {
		t.Fatalf("Parse error for sectioned data: %v", err)
	}
	if cfg.BindPort != 38081 || cfg.Login != "a:b" {
		t.Fatalf("wrong parsed sectioned config: %+v", cfg)
	}

	if err := Parse(filepath.Join(dir, "missing.conf"), &cfg); err == nil {
		t.Fatalf("no error for missing file")
	}
}

func TestOptionsMapToINIData(t *testing.T) {
	b := OptionsMapToINIData(map[string]string{"rpc-bind-port": "18083", "daemon-address": "127.0.0.1:18081"})
	want := "daemon-address=127.0.0.1:18081\nrpc-bind-port=18083\n"
	if string(b) != want {
		t.Fatalf("wanted %q, got %q", want, string(b))
	}
}

func TestParseRepeatedKey(t *testing.T) {
	var cfg rpcConf
	if err := Parse([]byte("rpc-bind-port=18081\nrpc-bind-port=18089\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.BindPort != 18089 {
		t.Fatalf("expected last rpc-bind-port, got %d", cfg.BindPort)
	}
}
