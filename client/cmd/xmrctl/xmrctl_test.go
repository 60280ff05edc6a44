// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"decred.org/xmrrpc/client/endpoint"
	"decred.org/xmrrpc/client/rpc"
	"decred.org/xmrrpc/client/rpc/rpctest"
	"decred.org/xmrrpc/dex"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"xmrctl"}, args...)
}

func TestConfigure(t *testing.T) {
	appData := t.TempDir()

	for _, flag := range []string{"-V", "-l", "-h"} {
		setArgs(t, flag)
		_, _, stop, err := configure()
		if err != nil {
			t.Fatalf("%s: %v", flag, err)
		}
		if !stop {
			t.Fatalf("%s: did not stop", flag)
		}
	}

	// parse command line flags
	setArgs(t, "-A", appData, "-ubob", "--pass=password123", "--wallet", "--net=stagenet")
	cfg, _, _, err := configure()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.User != "bob" || cfg.pass == nil || *cfg.pass != "password123" || !cfg.Wallet {
		t.Fatal("incorrectly parsed command line args")
	}
	if cfg.net != dex.Testnet {
		t.Fatalf("wrong network %s", cfg.net)
	}
	d := cfg.descriptor()
	if d.URL() != "http://127.0.0.1:38083" || d.Credentials.User != "bob" {
		t.Fatalf("wrong default wallet endpoint %s", d)
	}

	// An explicit empty host or zero port is kept.
	setArgs(t, "-A", appData, "--host=", "--port=0")
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	d, err = cfg.requested()
	if err != nil {
		t.Fatal(err)
	}
	if d == nil || d.Hostname != "" || d.Port != 0 {
		t.Fatalf("explicit host and port replaced: %v", d)
	}
	setArgs(t, "-A", appData, "--host=node.example")
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	if d, _ = cfg.requested(); d == nil || d.URL() != "http://node.example:18081" {
		t.Fatalf("wrong requested endpoint %v", d)
	}
	setArgs(t, "-A", appData)
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	if d, _ = cfg.requested(); d != nil {
		t.Fatalf("requested endpoint %v without host or port", d)
	}

	setArgs(t, "-A", appData, "--header", "X-Api-Key: a1b2", "--header=User-Agent:xmrctl")
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.headers, map[string]string{"X-Api-Key": "a1b2", "User-Agent": "xmrctl"}) {
		t.Fatalf("wrong headers %v", cfg.headers)
	}

	// An explicitly empty password is kept.
	setArgs(t, "-A", appData, "-ubob", "--pass=")
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	if creds := cfg.credentials(); creds == nil || creds.Pass != "" || cfg.pass == nil {
		t.Fatal("empty password not kept")
	}

	// parse config file
	cfgFile := filepath.Join(appData, defaultConfigFilename)
	b := []byte("host=10.0.0.2\nport=18089\nproxyuser=jorb\n")
	if err := os.WriteFile(cfgFile, b, 0644); err != nil {
		t.Fatal(err)
	}
	setArgs(t, "-A", appData, "--port=18081")
	cfg, _, _, err = configure()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProxyUser != "jorb" || cfg.Host != "10.0.0.2" {
		t.Fatal("incorrectly parsed file")
	}
	if cfg.Port != 18081 {
		t.Fatal("command line did not take precedence")
	}
	if err := os.Remove(cfgFile); err != nil {
		t.Fatal(err)
	}

	// parse args
	setArgs(t, "-A", appData, "get_balance", `{"account_index":0}`)
	_, args, _, err := configure()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(args, []string{"get_balance", `{"account_index":0}`}) {
		t.Fatalf("wrong args %v", args)
	}

	// bad combinations
	for _, bad := range [][]string{
		{"-A", appData, "--random"},
		{"-A", appData, "--net=bitcoin"},
		{"-A", appData, "--moneroconf=monerod.conf", "--host=1.2.3.4"},
		{"-A", appData, "--askpass"},
		{"-A", appData, "--header=X-Api-Key"},
		{"-A", appData, "--header=: v"},
	} {
		setArgs(t, bad...)
		if _, _, _, err := configure(); err == nil {
			t.Fatalf("no error for %v", bad)
		}
	}
}

func TestReadParams(t *testing.T) {
	p, err := readParams("-", strings.NewReader("{\"height\":1}\r\nnext\n"))
	if err != nil || string(p) != `{"height":1}` {
		t.Fatalf("readParams = %s, %v", p, err)
	}
	if _, err := readParams("-", strings.NewReader("")); err == nil {
		t.Fatal("no error for empty stdin")
	}
	if _, err := readParams("{height:1}", nil); err == nil {
		t.Fatal("no error for invalid JSON")
	}
}

func TestPrintPayload(t *testing.T) {
	tests := []struct {
		payload, want string
	}{
		{`{"count":1}`, "{\n  \"count\": 1\n}\n"},
		{`"abc"`, "abc\n"},
		{`7`, "7\n"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var b bytes.Buffer
		if err := printPayload(&b, []byte(tt.payload), false); err != nil {
			t.Fatal(err)
		}
		if b.String() != tt.want {
			t.Fatalf("printed %q for %s, want %q", b.String(), tt.payload, tt.want)
		}
	}

	var b bytes.Buffer
	if err := printPayload(&b, []byte(`{"count":1}`), true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "map[string]interface {}") {
		t.Fatalf("wrong dump %s", b.String())
	}
}

func serverPort(t *testing.T, srv *rpctest.Server) string {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return u.Port()
}

func TestRun(t *testing.T) {
	srv := rpctest.NewServer()
	defer srv.Close()
	srv.Handle("get_block_count", rpctest.Result(map[string]any{"count": 993163, "status": "OK"}))
	srv.Handle("get_height", map[string]any{"height": 993163, "status": "OK"})
	srv.Handle("get_block", rpctest.Error(-2, "Requested block height: 2000000 greater than current top block height: 993162"))
	appData := t.TempDir()
	port := serverPort(t, srv)
	ctx := t.Context()

	// JSON-RPC, no params
	setArgs(t, "-A", appData, "--net=simnet", "--port", port, "--header", "X-Api-Key: a1b2", "get_block_count")
	var out bytes.Buffer
	if err := run(ctx, nil, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out.String(), `"count": 993163`) {
		t.Fatalf("wrong output %s", out.String())
	}
	call := srv.Calls()[0]
	if call.Params != nil {
		t.Fatalf("params sent: %s", call.Body)
	}
	if call.Header.Get("X-Api-Key") != "a1b2" {
		t.Fatalf("header not sent")
	}

	// extension, params from stdin
	srv.Reset()
	out.Reset()
	setArgs(t, "-A", appData, "--net=simnet", "--port", port, "get_height", "-")
	if err := run(ctx, strings.NewReader("{}\n"), &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if calls := srv.Calls(); len(calls) != 1 || !calls[0].Extension || string(calls[0].Params) != "{}" {
		t.Fatalf("wrong calls %v", srv.Methods())
	}

	// RPC errors are printed and returned.
	out.Reset()
	setArgs(t, "-A", appData, "--net=simnet", "--port", port, "get_block", `{"height":2000000}`)
	err := run(ctx, nil, &out)
	var rpcErr *rpc.RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Code != -2 {
		t.Fatalf("expected RPC error, got %v", err)
	}
	if !strings.Contains(out.String(), `"code": -2`) {
		t.Fatalf("error payload not printed: %s", out.String())
	}

	// unknown method
	srv.Reset()
	setArgs(t, "-A", appData, "--port", port, "--wallet", "get_block_count")
	if err := run(ctx, nil, &out); err == nil {
		t.Fatal("no error for daemon method with --wallet")
	}
	if len(srv.Calls()) != 0 {
		t.Fatal("request sent for unknown method")
	}

	if _, err := os.Stat(filepath.Join(appData, "logs", defaultLogFilename)); err != nil {
		t.Fatalf("no log file: %v", err)
	}
}

func TestRunAutoconnect(t *testing.T) {
	srv := rpctest.NewServer(rpctest.WithBasicAuth("rpc", "pw"))
	defer srv.Close()
	srv.Handle("get_version", rpctest.Result(map[string]any{"version": 65562, "release": true}))
	srv.Handle("get_balance", rpctest.Result(map[string]any{"balance": 0, "unlocked_balance": 0}))
	appData := t.TempDir()

	known := fmt.Sprintf(`[{"url": "http://rpc:pw@127.0.0.1:%s", "net": "simnet"}]`, serverPort(t, srv))
	if err := os.WriteFile(filepath.Join(appData, endpoint.KnownFilename), []byte(known), 0644); err != nil {
		t.Fatal(err)
	}

	setArgs(t, "-A", appData, "--net=simnet", "--wallet", "--autoconnect", "--random", "--nolocals", "get_balance", `{"account_index":0}`)
	var out bytes.Buffer
	if err := run(t.Context(), nil, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	var methods []string
	for _, c := range srv.Calls() {
		if c.Authorized {
			methods = append(methods, c.Method)
		}
	}
	if !reflect.DeepEqual(methods, []string{"get_version", "get_balance"}) {
		t.Fatalf("wrong authorized calls %v", methods)
	}
	if !strings.Contains(out.String(), `"unlocked_balance": 0`) {
		t.Fatalf("wrong output %s", out.String())
	}

	// Nothing live.
	srv.Close()
	setArgs(t, "-A", appData, "--net=simnet", "--wallet", "--autoconnect", "--nolocals", "get_balance")
	if err := run(t.Context(), nil, &out); !errors.Is(err, endpoint.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestPrintQR(t *testing.T) {
	var b bytes.Buffer
	uri := `{"uri":"monero:4AYjQM9HoAFNUeC3cvSfgeAN89oMMpMqiByvunzSzhn97cj726rJj3x8hCbH58UnMqQJShczCxbpWRiCJQ3HCUDHLiKuo4T?tx_amount=1"}`
	if err := printQR(&b, []byte(uri)); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(b.String(), "\n"); lines < 10 {
		t.Fatalf("QR code too small, %d lines", lines)
	}
	if err := printQR(&b, []byte(`{"count":1}`)); err == nil {
		t.Fatal("no error for a result without uri or address")
	}
	if err := printQR(&b, []byte(`"abc"`)); err == nil {
		t.Fatal("no error for a non-object result")
	}
}
