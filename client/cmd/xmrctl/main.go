// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// xmrctl calls a monerod or monero-wallet-rpc method and prints the result.
//
//	xmrctl [options] <method> [json-params | -]
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"decred.org/xmrrpc/client/daemon"
	"decred.org/xmrrpc/client/rpc"
	"decred.org/xmrrpc/client/wallet"
	"decred.org/xmrrpc/dex"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	qrcode "github.com/skip2/go-qrcode"
)

const listCmdMessage = "Specify -l to list available commands"

var version = semver{major: 0, minor: 1, patch: 0}

// semver holds xmrctl's semver values.
type semver struct {
	major, minor, patch uint32
}

// String satisfies fmt.Stringer.
func (s semver) String() string {
	return fmt.Sprintf("%d.%d.%d", s.major, s.minor, s.patch)
}

// caller is the part of the daemon and wallet clients xmrctl uses.
type caller interface {
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
	URL() string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdin, os.Stdout)
	cancel()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func listCommands(isWallet bool) string {
	if isWallet {
		return strings.Join(wallet.Methods, "\n")
	}
	return strings.Join(daemon.Methods, "\n") + "\n" + strings.Join(daemon.OtherMethods, "\n")
}

func knownMethod(isWallet bool, method string) bool {
	if isWallet {
		return slices.Contains(wallet.Methods, method)
	}
	return slices.Contains(daemon.Methods, method) || slices.Contains(daemon.OtherMethods, method)
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	cfg, args, stop, err := configure()
	if err != nil {
		return fmt.Errorf("unable to configure: %w", err)
	}

	if stop {
		return nil
	}

	if len(args) < 1 {
		return fmt.Errorf("no command specified\n%s", listCmdMessage)
	}
	if len(args) > 2 {
		return fmt.Errorf("too many arguments, params must be a single JSON object\n%s", listCmdMessage)
	}

	method := args[0]
	if !knownMethod(cfg.Wallet, method) {
		return fmt.Errorf("unrecognized %s command %q\n%s", cfg.service(), method, listCmdMessage)
	}

	var params json.RawMessage
	if len(args) == 2 {
		if params, err = readParams(args[1], stdin); err != nil {
			return err
		}
	}

	lm, closeLog, err := initLogging(cfg.logFile, cfg.DebugLevel, cfg.LogStdout)
	if err != nil {
		return err
	}
	defer closeLog()
	log := lm.NewLogger("CTL")

	c, err := connect(ctx, cfg, lm)
	if err != nil {
		return err
	}
	log.Debugf("Calling %s at %s", method, c.URL())

	payload, err := c.Call(ctx, method, params)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	if err := printPayload(stdout, payload, cfg.Dump); err != nil {
		return err
	}
	if cfg.QR {
		if err := printQR(stdout, payload); err != nil {
			return err
		}
	}

	var rpcErr *rpc.RPCError
	if errors.As(rpc.ErrorFromPayload(payload), &rpcErr) {
		return rpcErr
	}
	return nil
}

// readParams validates the JSON params argument. The special argument "-"
// reads it from the next line of stdin.
func readParams(arg string, stdin io.Reader) (json.RawMessage, error) {
	if arg == "-" {
		param, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read data from stdin: %w", err)
		}
		if err == io.EOF && len(param) == 0 {
			return nil, errors.New("not enough lines provided on stdin")
		}
		arg = strings.TrimRight(param, "\r\n")
	}
	if !json.Valid([]byte(arg)) {
		return nil, fmt.Errorf("params are not valid JSON: %q", arg)
	}
	return json.RawMessage(arg), nil
}

// connect creates the daemon or wallet client, probing candidates if
// autoconnect is set.
func connect(ctx context.Context, cfg *config, lm *dex.LoggerMaker) (caller, error) {
	requested, err := cfg.requested()
	if err != nil {
		return nil, err
	}
	if !cfg.Autoconnect && requested == nil {
		requested = cfg.descriptor()
	}

	if cfg.Wallet {
		opts := cfg.walletOptions(lm.NewLogger("XMRW"))
		if !cfg.Autoconnect {
			c, err := wallet.FromConfig(*requested, opts)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
		c := wallet.New(opts)
		if _, err := c.Connect(ctx, cfg.autoconnectConfig(requested)); err != nil {
			return nil, fmt.Errorf("no live wallet service: %w", err)
		}
		return c, nil
	}

	opts := cfg.daemonOptions(lm.NewLogger("XMRD"))
	if !cfg.Autoconnect {
		c, err := daemon.FromConfig(*requested, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	c := daemon.New(opts)
	if _, err := c.Connect(ctx, cfg.autoconnectConfig(requested)); err != nil {
		return nil, fmt.Errorf("no live daemon: %w", err)
	}
	return c, nil
}

// printPayload writes the payload as indented JSON, a bare string, or a
// spew dump of the decoded value.
func printPayload(w io.Writer, payload json.RawMessage, dump bool) error {
	if dump {
		var v any
		if err := json.Unmarshal(payload, &v); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
		spew.Fdump(w, v)
		return nil
	}

	strResult := string(payload)
	switch {
	case strings.HasPrefix(strResult, "{") || strings.HasPrefix(strResult, "["):
		var dst bytes.Buffer
		if err := json.Indent(&dst, payload, "", "  "); err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(w, dst.String())
	case strings.HasPrefix(strResult, `"`):
		var str string
		if err := json.Unmarshal(payload, &str); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
		fmt.Fprintln(w, str)
	case strResult != "null":
		fmt.Fprintln(w, strResult)
	}
	return nil
}

// printQR writes the "uri" member of the payload, or else its "address", as
// a QR code made of block characters.
func printQR(w io.Writer, payload json.RawMessage) error {
	var res struct {
		URI     string `json:"uri"`
		Address string `json:"address"`
	}
	if err := json.Unmarshal(payload, &res); err != nil {
		return fmt.Errorf("no QR code for this result: %w", err)
	}
	content := res.URI
	if content == "" {
		content = res.Address
	}
	if content == "" {
		return errors.New("no uri or address in the result")
	}
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}
	fmt.Fprint(w, qr.ToSmallString(false))
	return nil
}
