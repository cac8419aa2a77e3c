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

package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/ZaparooProject/fuzzymonth/pkg/config"
	"github.com/ZaparooProject/fuzzymonth/pkg/helpers"
	"github.com/ZaparooProject/fuzzymonth/pkg/months"
	"github.com/ZaparooProject/fuzzymonth/pkg/ui/shell"
	"github.com/ZaparooProject/fuzzymonth/pkg/ui/term"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	set     *flag.FlagSet
	Version *bool
	Config  *string
	Color   *string
	Debug   *bool
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		set: fs,
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Config: fs.String(
			"config",
			"",
			"path to config file (default $"+config.CfgEnv+" or XDG config dir)",
		),
		Color: fs.String(
			"color",
			"",
			"color output: auto, always or never (overrides config)",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args. Add any custom flags to the set before running this.
func (f *Flags) Pre(args []string) error {
	if err := f.set.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (f *Flags) Args() []string {
	return f.set.Args()
}

// Post applies flag overrides on top of the loaded config.
func (f *Flags) Post(cfg *config.Instance) error {
	if *f.Debug {
		cfg.SetDebugLogging(true)
	}

	if f.isFlagPassed("color") {
		if err := cfg.SetColorMode(*f.Color); err != nil {
			return fmt.Errorf("invalid -color flag: %w", err)
		}
	}

	helpers.SetLogLevel(cfg)
	return nil
}

// Setup initializes logging and loads the user config from cfgPath (empty
// for the default location).
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	fs afero.Fs,
	defaultConfig config.Values,
	cfgPath string,
	logDir string,
	writers []io.Writer,
) (*config.Instance, error) {
	if err := helpers.InitLogging(nil, logDir, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(fs, cfgPath, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	helpers.SetLogLevel(cfg)
	log.Info().Msgf("fuzzymonth v%s started, config: %s", config.AppVersion, cfg.Path())

	return cfg, nil
}

// ResolveArgs resolves each argument and prints one line per input. It
// returns how many inputs were not recognized.
func ResolveArgs(out io.Writer, palette term.Palette, args []string) int {
	failed := 0
	for _, arg := range args {
		m, err := months.Resolve(arg)
		if err != nil {
			failed++
			log.Debug().Err(err).Str("input", arg).Msg("month not recognized")
			_, _ = fmt.Fprintln(out, palette.Paint(palette.Red, "✗ "+err.Error()))
			continue
		}

		log.Debug().
			Str("input", arg).
			Str("stage", m.Stage.String()).
			Float32("score", m.Score).
			Msg("resolved month")
		_, _ = fmt.Fprintln(out, palette.Paint(palette.Green, arg+" → "+shell.FormatMonth(m.Month)))
	}
	return failed
}
