// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"decred.org/xmrrpc/client/daemon"
	"decred.org/xmrrpc/client/endpoint"
	"decred.org/xmrrpc/client/wallet"
	"decred.org/xmrrpc/dex"
	"decred.org/xmrrpc/dex/networks/xmr"
	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

const (
	defaultConfigFilename = "xmrctl.conf"
	defaultLogFilename    = "xmrctl.log"
	defaultLogLevel       = "info"
	defaultHost           = "127.0.0.1"
)

var defaultAppDir = dcrutil.AppDataDir("xmrctl", false)

// config defines the configuration options for xmrctl.
type config struct {
	ShowVersion  bool          `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands bool          `short:"l" long:"listcommands" description:"List the methods of the selected service and exit"`
	AppData      string        `short:"A" long:"appdata" description:"Directory for the config file, logs and known endpoints"`
	Config       string        `short:"C" long:"config" description:"Path to configuration file"`
	Wallet       bool          `short:"w" long:"wallet" description:"Talk to monero-wallet-rpc instead of monerod"`
	Net          string        `long:"net" default:"mainnet" description:"Network: mainnet, testnet (stagenet) or simnet (regtest)"`
	Host         string        `short:"H" long:"host" description:"Service host. Default 127.0.0.1"`
	Port         uint16        `short:"p" long:"port" description:"Service port. Default is the service's port for the network"`
	User         string        `short:"u" long:"user" description:"RPC username"`
	Pass         string        `short:"P" long:"pass" default-mask:"-" description:"RPC password"`
	AskPass      bool          `long:"askpass" description:"Prompt for the RPC password on the terminal"`
	TLS          bool          `long:"tls" description:"Use https"`
	MoneroConf   string        `long:"moneroconf" description:"Take the endpoint from a monerod or monero-wallet-rpc config file"`
	Autoconnect  bool          `short:"a" long:"autoconnect" description:"Probe the requested, local and known endpoints and use the first live one"`
	Random       bool          `short:"r" long:"random" description:"Shuffle the known endpoints before probing. Requires --autoconnect"`
	Known        string        `short:"k" long:"known" description:"JSON file of known endpoints. Default is daemons.json in the appdata directory, if present"`
	NoLocals     bool          `long:"nolocals" description:"Do not probe local endpoints when autoconnecting"`
	AutoStore    bool          `long:"autostore" description:"Store the wallet after mutating wallet methods"`
	Timeout      time.Duration `short:"t" long:"timeout" description:"Request timeout, e.g. 30s. Default none"`
	Headers      []string      `long:"header" description:"HTTP header to add to every request, as 'Name: value'. May be repeated"`
	Proxy        string        `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser    string        `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass    string        `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	DebugLevel   string        `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}, or subsystem=level pairs"`
	LogStdout    bool          `long:"logstdout" description:"Also write the log to stdout"`
	Dump         bool          `long:"dump" description:"Dump the decoded result instead of printing JSON"`
	QR           bool          `long:"qr" description:"Also print the uri or address of the result as a QR code"`

	net     dex.Network
	pass    *string
	hostSet bool
	portSet bool
	headers map[string]string
	logFile string
}

// configure parses command line options and a config file if present. Returns
// an instantiated *config, leftover command line arguments, and a bool that
// is true if there is nothing further to do (i.e. version was printed and we
// can exit), or a parsing error, in that order.
func configure() (*config, []string, bool, error) {
	stop := true
	cfg := &config{}
	preParser := flags.NewParser(cfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			// This line is printed below the help message.
			fmt.Printf("%v\nThe special parameter `-` reads the params from the next line of standard input.\n", err)
			return nil, nil, stop, nil
		}
		return nil, nil, false, err
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil, nil, stop, nil
	}

	if cfg.ListCommands {
		fmt.Println(listCommands(cfg.Wallet))
		return nil, nil, stop, nil
	}

	if cfg.AppData == "" {
		cfg.AppData = defaultAppDir
	}
	cfg.AppData = dex.CleanAndExpandPath(cfg.AppData)
	if cfg.Config == "" {
		cfg.Config = filepath.Join(cfg.AppData, defaultConfigFilename)
	}
	cfg.Config = dex.CleanAndExpandPath(cfg.Config)

	parser := flags.NewParser(cfg, flags.Default)

	if dex.FileExists(cfg.Config) {
		// Load additional config from file.
		err = flags.NewIniParser(parser).ParseFile(cfg.Config)
		if err != nil {
			return nil, nil, false, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, false, err
	}

	if cfg.net, err = dex.NetFromString(cfg.Net); err != nil {
		return nil, nil, false, err
	}
	if cfg.Random && !cfg.Autoconnect {
		return nil, nil, false, errors.New("--random requires --autoconnect")
	}
	// An explicit empty host or zero port is kept, not replaced by a default.
	cfg.hostSet = isFlagSet(parser, "host")
	cfg.portSet = isFlagSet(parser, "port")
	if cfg.MoneroConf != "" && (cfg.hostSet || cfg.portSet) {
		return nil, nil, false, errors.New("--moneroconf cannot be combined with --host or --port")
	}
	if cfg.Known == "" {
		if fp := filepath.Join(cfg.AppData, endpoint.KnownFilename); dex.FileExists(fp) {
			cfg.Known = fp
		}
	} else {
		cfg.Known = dex.CleanAndExpandPath(cfg.Known)
	}
	if cfg.MoneroConf != "" {
		cfg.MoneroConf = dex.CleanAndExpandPath(cfg.MoneroConf)
	}
	if cfg.DebugLevel == "" {
		cfg.DebugLevel = defaultLogLevel
	}
	cfg.logFile = filepath.Join(cfg.AppData, "logs", defaultLogFilename)
	if cfg.headers, err = parseHeaders(cfg.Headers); err != nil {
		return nil, nil, false, err
	}

	if cfg.AskPass {
		if cfg.User == "" {
			return nil, nil, false, errors.New("--askpass requires --user")
		}
		if cfg.Pass, err = readPassword("RPC password: "); err != nil {
			return nil, nil, false, err
		}
	}
	// go-flags can't tell an empty password from a missing one.
	if cfg.AskPass || isFlagSet(parser, "pass") || cfg.Pass != "" {
		cfg.pass = &cfg.Pass
	}

	return cfg, remainingArgs, false, nil
}

// readPassword prompts on stderr and reads a line from the terminal without
// echo.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("cannot prompt for a password, stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pass), nil
}

// parseHeaders parses "Name: value" pairs. It returns nil if there are none.
func parseHeaders(hs []string) (map[string]string, error) {
	if len(hs) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(hs))
	for _, h := range hs {
		k, v, found := strings.Cut(h, ":")
		k = strings.TrimSpace(k)
		if !found || k == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", h)
		}
		headers[k] = strings.TrimSpace(v)
	}
	return headers, nil
}

func isFlagSet(parser *flags.Parser, long string) bool {
	opt := parser.FindOptionByLongName(long)
	return opt != nil && opt.IsSet()
}

func (cfg *config) service() endpoint.Service {
	if cfg.Wallet {
		return endpoint.Wallet
	}
	return endpoint.Daemon
}

// requested is the endpoint named by --moneroconf or --host and --port, or
// nil if neither was given.
func (cfg *config) requested() (*endpoint.Descriptor, error) {
	if cfg.MoneroConf != "" {
		d, err := endpoint.FromMoneroConfig(cfg.MoneroConf, cfg.service())
		if err != nil {
			return nil, err
		}
		if cfg.User != "" {
			d.Credentials = cfg.credentials()
		}
		return d, nil
	}
	if !cfg.hostSet && !cfg.portSet {
		return nil, nil
	}
	return cfg.descriptor(), nil
}

// descriptor builds the endpoint from the host and port options, with
// defaults for the ones not given.
func (cfg *config) descriptor() *endpoint.Descriptor {
	d := &endpoint.Descriptor{
		Hostname:    cfg.Host,
		Port:        cfg.Port,
		Protocol:    endpoint.HTTP,
		Credentials: cfg.credentials(),
	}
	if !cfg.hostSet {
		d.Hostname = defaultHost
	}
	if !cfg.portSet {
		ports := xmr.Ports(cfg.net)
		d.Port = ports.Daemon
		if cfg.Wallet {
			d.Port = ports.Wallet
		}
	}
	if cfg.TLS {
		d.Protocol = endpoint.HTTPS
	}
	return d
}

func (cfg *config) credentials() *endpoint.Credentials {
	if cfg.User == "" {
		return nil
	}
	creds := &endpoint.Credentials{User: cfg.User}
	if cfg.pass != nil {
		creds.Pass = *cfg.pass
	}
	return creds
}

func (cfg *config) autoconnectConfig(requested *endpoint.Descriptor) *endpoint.AutoconnectConfig {
	return &endpoint.AutoconnectConfig{
		Requested: requested,
		Network:   cfg.net,
		Randomize: cfg.Random,
		KnownFile: cfg.Known,
		NoLocals:  cfg.NoLocals,
	}
}

func (cfg *config) daemonOptions(log dex.Logger) *daemon.Options {
	return &daemon.Options{
		Logger:    log,
		Proxy:     cfg.Proxy,
		ProxyUser: cfg.ProxyUser,
		ProxyPass: cfg.ProxyPass,
		Timeout:   cfg.Timeout,
		Headers:   cfg.headers,
	}
}

func (cfg *config) walletOptions(log dex.Logger) *wallet.Options {
	return &wallet.Options{
		Logger:    log,
		AutoStore: cfg.AutoStore,
		Proxy:     cfg.Proxy,
		ProxyUser: cfg.ProxyUser,
		ProxyPass: cfg.ProxyPass,
		Timeout:   cfg.Timeout,
		Headers:   cfg.headers,
	}
}
