// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dexnet

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/decred/go-socks/socks"
)

// ClientConfig configures an http.Client for JSON-RPC use.
type ClientConfig struct {
	// Timeout is the overall request timeout. Zero means no timeout beyond
	// the context's.
	Timeout time.Duration
	// Proxy is an optional SOCKS5 proxy address, e.g. a Tor daemon at
	// 127.0.0.1:9050.
	Proxy     string
	ProxyUser string
	ProxyPass string
	// TLSConfig is used for https endpoints. monerod's rpc-ssl mode uses a
	// self-signed certificate by default, which requires a custom root or
	// InsecureSkipVerify.
	TLSConfig *tls.Config
	// Credentials, if set, are sent only after the server issues a 401
	// challenge. See ChallengeAuth.
	Credentials *Credentials
}

// Credentials are an HTTP user name and password.
type Credentials struct {
	User string
	Pass string
}

// NewClient creates an http.Client from the ClientConfig. Connections are
// kept alive and reused by the underlying http.Transport.
func NewClient(cfg *ClientConfig) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     cfg.Proxy,
			Username: cfg.ProxyUser,
			Password: cfg.ProxyPass,
		}
		tr.Proxy = nil
		tr.DialContext = proxy.DialContext
	}
	if cfg.TLSConfig != nil {
		tr.TLSClientConfig = cfg.TLSConfig
	}
	var rt http.RoundTripper = tr
	if cfg.Credentials != nil {
		rt = &ChallengeAuth{
			User:      cfg.Credentials.User,
			Pass:      cfg.Credentials.Pass,
			Transport: tr,
		}
	}
	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}
