// Zaparoo Fuzzymonth
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Fuzzymonth.
//
// Zaparoo Fuzzymonth is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Fuzzymonth is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Fuzzymonth.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "FUZZYMONTH_CFG"
	ColorAuto     = "auto"
	ColorAlways   = "always"
	ColorNever    = "never"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Display      Display `toml:"display"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

type Display struct {
	Color  string `toml:"color" validate:"oneof=auto always never"`
	Banner bool   `toml:"banner"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Display: Display{
		Color:  ColorAuto,
		Banner: true,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// DefaultPath returns the config file location: the CfgEnv environment
// variable if set, otherwise config.toml in the XDG config directory.
func DefaultPath() string {
	if p := os.Getenv(CfgEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, AppName, CfgFile)
}

// NewConfig loads the config file at cfgPath, writing one out with the given
// defaults first if it doesn't exist yet.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	if cfgPath == "" {
		cfgPath = DefaultPath()
	}
	log.Debug().Msgf("config path: %s", cfgPath)

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Msg("saving new default config to disk")

		if err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := validate.Struct(newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// ColorMode returns one of ColorAuto, ColorAlways or ColorNever.
func (c *Instance) ColorMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Display.Color
}

// SetColorMode changes the color mode. Call Save to persist it.
func (c *Instance) SetColorMode(mode string) error {
	if err := validate.Var(mode, "oneof=auto always never"); err != nil {
		return fmt.Errorf("invalid color mode %q: %w", mode, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Display.Color = mode
	return nil
}

func (c *Instance) ShowBanner() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Display.Banner
}
