// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dex

import (
	"fmt"
	"strings"

	"github.com/decred/slog"
)

// parseDebugLevel sets the default level and any per-subsystem levels.
func (lm *LoggerMaker) parseDebugLevel(debugLevel string) error {
	if debugLevel == "" {
		return nil
	}
	// A lone level applies to every subsystem.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		lvl, ok := slog.LevelFromString(debugLevel)
		if !ok {
			return fmt.Errorf("invalid debug level %q", debugLevel)
		}
		lm.DefaultLevel = lvl
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(pair, "=") {
			lvl, ok := slog.LevelFromString(pair)
			if !ok {
				return fmt.Errorf("invalid debug level %q", pair)
			}
			lm.DefaultLevel = lvl
			continue
		}
		fields := strings.Split(pair, "=")
		if len(fields) != 2 || fields[0] == "" {
			return fmt.Errorf("invalid subsystem/level pair %q", pair)
		}
		lvl, ok := slog.LevelFromString(fields[1])
		if !ok {
			return fmt.Errorf("invalid debug level %q for subsystem %s", fields[1], fields[0])
		}
		lm.Levels[fields[0]] = lvl
	}
	return nil
}
