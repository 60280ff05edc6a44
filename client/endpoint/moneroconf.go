// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"fmt"
	"strconv"
	"strings"

	"decred.org/xmrrpc/dex"
	"decred.org/xmrrpc/dex/config"
	"decred.org/xmrrpc/dex/networks/xmr"
)

// MoneroConfig is the RPC-related subset of a monerod or monero-wallet-rpc
// config file.
type MoneroConfig struct {
	BindIP   string `ini:"rpc-bind-ip"`
	BindPort string `ini:"rpc-bind-port"`
	Login    string `ini:"rpc-login"`
	SSL      string `ini:"rpc-ssl"`
	Stagenet string `ini:"stagenet"`
	Testnet  string `ini:"testnet"`
	Regtest  string `ini:"regtest"`
}

func isSet(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Network is the network the config selects. Monero's testnet has no
// dex.Network and is reported as an error.
func (c *MoneroConfig) Network() (dex.Network, error) {
	switch {
	case isSet(c.Testnet):
		return 0, fmt.Errorf("monero testnet is not supported, use stagenet")
	case isSet(c.Stagenet):
		return dex.Testnet, nil
	case isSet(c.Regtest):
		return dex.Simnet, nil
	}
	return dex.Mainnet, nil
}

// FromMoneroConfig builds the Descriptor of a local service from its config
// file path or []byte data. Options missing from the file take the service's
// own defaults: monerod and monero-wallet-rpc bind 127.0.0.1, monerod listens
// on the network's daemon port, and rpc-ssl defaults to autodetect, which
// accepts plain http. monero-wallet-rpc has no default port, so the file must
// set one for the Wallet service.
func FromMoneroConfig(cfgPathOrData any, svc Service) (*Descriptor, error) {
	var cfg MoneroConfig
	if err := config.Parse(cfgPathOrData, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s config: %w", svc, err)
	}
	net, err := cfg.Network()
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Hostname: "127.0.0.1",
		Protocol: HTTP,
	}
	switch host := cfg.BindIP; host {
	case "", "0.0.0.0", "::":
	default:
		d.Hostname = host
	}

	switch {
	case cfg.BindPort != "":
		port, err := strconv.ParseUint(cfg.BindPort, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad rpc-bind-port %q: %w", cfg.BindPort, err)
		}
		d.Port = uint16(port)
	case svc == Daemon:
		d.Port = xmr.Ports(net).Daemon
	default:
		return nil, fmt.Errorf("%s config has no rpc-bind-port", svc)
	}

	if strings.EqualFold(cfg.SSL, "enabled") {
		d.Protocol = HTTPS
	}

	if cfg.Login != "" {
		user, pass, _ := strings.Cut(cfg.Login, ":")
		d.Credentials = &Credentials{User: user, Pass: pass}
	}
	return d, nil
}
