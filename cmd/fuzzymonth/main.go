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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/fuzzymonth/pkg/cli"
	"github.com/ZaparooProject/fuzzymonth/pkg/config"
	"github.com/ZaparooProject/fuzzymonth/pkg/helpers"
	"github.com/ZaparooProject/fuzzymonth/pkg/ui/shell"
	"github.com/ZaparooProject/fuzzymonth/pkg/ui/term"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)
	if err := flags.Pre(os.Args[1:]); err != nil {
		return err
	}

	if *flags.Version {
		_, _ = fmt.Printf("fuzzymonth v%s\n", config.AppVersion)
		return nil
	}

	cfg, err := cli.Setup(
		afero.NewOsFs(),
		config.BaseDefaults,
		*flags.Config,
		helpers.LogDir(),
		nil,
	)
	if err != nil {
		return err
	}

	if err := flags.Post(cfg); err != nil {
		return err
	}

	palette := term.Configure(cfg.ColorMode(), os.Stdout)

	if args := flags.Args(); len(args) > 0 {
		if failed := cli.ResolveArgs(os.Stdout, palette, args); failed > 0 {
			return fmt.Errorf("%d of %d inputs not recognized", failed, len(args))
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = shell.New(os.Stdin, os.Stdout, palette, cfg.ShowBanner()).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("error running shell")
		return fmt.Errorf("error running shell: %w", err)
	}

	return nil
}
