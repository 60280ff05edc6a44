// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"testing"
)

func TestIsLoopback(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"127.0.0.1", true},
		{"127.0.0.1:18081", true},
		{"127.8.0.1", true},
		{"localhost", true},
		{"LocalHost:28081", true},
		{"::1", true},
		{"[::1]:18089", true},
		{"node.monerodevs.org", false},
		{"node.monerodevs.org:18089", false},
		{"192.168.0.10", false},
		{"[a:b:c:d::]:1234", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLoopback(tt.addr); got != tt.want {
			t.Errorf("IsLoopback(%q) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}
