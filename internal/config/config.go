// Package config loads castor.toml, the per-project defaults for the
// promotion mode and the overflow policy.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"castor/internal/diag"
	"castor/internal/errstate"
	"castor/internal/promote"
)

// FileName is the manifest castor looks for.
const FileName = "castor.toml"

// Config mirrors the castor.toml layout. Absent sections keep the built-in
// defaults.
type Config struct {
	Promotion struct {
		Mode string `toml:"mode"`
	} `toml:"promotion"`
	Errstate struct {
		Over string `toml:"over"`
	} `toml:"errstate"`
}

// Load parses a castor.toml. A missing file reports ok=false without an
// error; a present but malformed file is an error.
func Load(path string) (Config, bool, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return cfg, false, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, true, nil
}

// Find walks from startDir toward the filesystem root looking for a
// castor.toml.
func Find(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Apply installs the configured mode and overflow action process-wide.
// Unknown values are diagnosed and leave the current setting untouched.
func (c Config) Apply() *diag.Bag {
	bag := diag.NewBag(4)

	if mode := strings.TrimSpace(c.Promotion.Mode); mode != "" {
		if m, ok := promote.ModeFromName(mode); ok {
			promote.Set(m)
		} else {
			bag.Add(diag.New(diag.SevError, diag.CfgUnknownMode,
				fmt.Sprintf("unknown promotion mode %q (legacy, weak, weak_and_warn)", mode)))
		}
	}
	if over := strings.TrimSpace(c.Errstate.Over); over != "" {
		if a, ok := errstate.FromName(over); ok {
			errstate.Set(errstate.State{Over: a})
		} else {
			bag.Add(diag.New(diag.SevError, diag.CfgUnknownOver,
				fmt.Sprintf("unknown overflow action %q (ignore, warn, raise)", over)))
		}
	}
	return bag
}
