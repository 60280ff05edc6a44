// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"net"
	"strings"
)

// IsLoopback reports whether addr, a host name, IP address, or host:port,
// refers to the local machine. Only "localhost" and loopback IP literals are
// recognized; no DNS lookups are performed.
func IsLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		addr = host
	} else {
		// If SplitHostPort failed, IPv6 addresses may still have brackets.
		addr = strings.Trim(addr, "[]")
	}
	if strings.EqualFold(addr, "localhost") {
		return true
	}
	ip := net.ParseIP(addr)
	return ip != nil && ip.IsLoopback()
}
