// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

//go:build xmrlive

// Run against a local stagenet monerod, or autoconnect to a public node:
//
//	go test -tags xmrlive -run TestLive ./client/daemon

package daemon

import (
	"context"
	"testing"
	"time"

	"decred.org/xmrrpc/client/endpoint"
	"decred.org/xmrrpc/dex"
	"github.com/davecgh/go-spew/spew"
)

func TestLiveDaemon(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Minute)
	defer cancel()

	c := New(&Options{Logger: tLogger, Timeout: 20 * time.Second})
	d, err := c.Connect(ctx, &endpoint.AutoconnectConfig{
		Network:   dex.Testnet,
		Randomize: true,
	})
	if err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	t.Logf("Connected to %s", d)

	info, err := c.Info(ctx)
	if err != nil {
		t.Fatal(err)
	}
	spew.Dump(info)

	height := info.Height - 1
	hdr, err := c.GetBlockHeaderByHeight(ctx, height)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("header at %d: %s", height, hdr)

	fees, err := c.GetFeeEstimate(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("fee estimate: %s", fees)

	h, err := c.GetHeight(ctx)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("get_height: %s", h)
}
