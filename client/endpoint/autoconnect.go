// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package endpoint

import (
	"context"
	"errors"
	"fmt"

	"decred.org/xmrrpc/dex"
)

// ErrExhausted is returned by Autoconnect when no candidate responded.
const ErrExhausted = dex.ErrorKind("no endpoint responded")

// ProbeFunc performs a liveness call against the endpoint. A nil error means
// the endpoint is usable.
type ProbeFunc func(ctx context.Context, d Descriptor) error

// Autoconnect probes the candidates strictly in order, one at a time, and
// returns the first that responds. Each candidate is probed exactly once. If
// every probe fails, the returned error wraps ErrExhausted and each probe
// error. If ctx is canceled, probing stops with ctx's error.
func Autoconnect(ctx context.Context, candidates []Descriptor, probe ProbeFunc, log dex.Logger) (*Descriptor, error) {
	if log == nil {
		log = dex.Disabled
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrExhausted)
	}
	errs := make([]error, 0, len(candidates))
	for i, d := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := probe(ctx, d); err != nil {
			log.Debugf("Candidate %d of %d, %s, failed: %v", i+1, len(candidates), d, err)
			errs = append(errs, fmt.Errorf("%s: %w", d, err))
			continue
		}
		log.Infof("Connected to %s", d)
		return &d, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w after %d candidates: %w", ErrExhausted, len(candidates), errors.Join(errs...))
}

// AutoconnectConfig configures the candidate list for Connect methods.
type AutoconnectConfig struct {
	// Requested is tried first, if set.
	Requested *Descriptor
	// Network selects the local ports and the known endpoints.
	Network dex.Network
	// Randomize shuffles the known endpoints.
	Randomize bool
	// Known, if non-nil, is the known endpoints list, and KnownFile and the
	// built-in list are not used. An empty non-nil slice means none.
	Known []Descriptor
	// KnownFile is a JSON known endpoints file. Its entries precede the
	// built-in list.
	KnownFile string
	// NoLocals skips the conventional local endpoints.
	NoLocals bool
	// Intn is the random source for Randomize. rand.IntN if nil.
	Intn Intn
}

// Candidates builds the candidate list for the service. Only monerod has a
// built-in known list.
func (cfg *AutoconnectConfig) Candidates(svc Service) ([]Descriptor, error) {
	if cfg.Requested != nil {
		if err := cfg.Requested.Validate(); err != nil {
			return nil, fmt.Errorf("requested endpoint: %w", err)
		}
	}
	var locals []Descriptor
	if !cfg.NoLocals {
		locals = Locals(svc, cfg.Network)
	}
	known := cfg.Known
	if known == nil {
		if cfg.KnownFile != "" {
			fromFile, err := LoadKnownFile(cfg.KnownFile, cfg.Network)
			if err != nil {
				return nil, err
			}
			known = append(known, fromFile...)
		}
		if svc == Daemon {
			known = append(known, DefaultKnownDaemons(cfg.Network)...)
		}
	}
	return BuildCandidates(cfg.Requested, locals, known, cfg.Randomize, cfg.Intn), nil
}
