// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package rpc

import (
	"errors"
	"testing"
)

func TestConn(t *testing.T) {
	var cn Conn
	if cn.Connected() {
		t.Fatal("zero Conn is connected")
	}
	if _, err := cn.Dispatch(t.Context(), "get_info", nil, JSONRPC); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := cn.CallJSONRPC(t.Context(), "get_info", nil, nil); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	c1, _ := New(&Config{URL: "http://127.0.0.1:18081"})
	c2, _ := New(&Config{URL: "http://127.0.0.1:18089"})
	if err := cn.Set(c1); err != nil {
		t.Fatal(err)
	}
	if err := cn.Set(c2); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("expected ErrAlreadyConnected, got %v", err)
	}
	if c, _ := cn.Client(); c != c1 {
		t.Fatal("active client replaced")
	}
}
