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

// Package term holds ANSI color state for terminal output.
//
// Colors are resolved once at startup with [Configure]. When disabled every
// color is the empty string, so wrapping text in them is a no-op.
package term

import (
	"os"
	"strings"

	"github.com/ZaparooProject/fuzzymonth/pkg/config"
	"github.com/mattn/go-isatty"
)

// Palette is a set of ANSI escape sequences.
type Palette struct {
	Red   string
	Green string
	Blue  string
	Cyan  string
	Reset string
}

var ansi = Palette{
	Red:   "\x1b[31m",
	Green: "\x1b[32m",
	Blue:  "\x1b[34m",
	Cyan:  "\x1b[36m",
	Reset: "\x1b[0m",
}

// Configure returns the palette for the given color mode. In auto mode
// colors are enabled only when out is a terminal, NO_COLOR is unset
// (https://no-color.org) and TERM isn't "dumb".
func Configure(mode string, out *os.File) Palette {
	if Enabled(mode, out) {
		return ansi
	}
	return Palette{}
}

// Enabled reports whether the given color mode turns colors on for out.
func Enabled(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(out) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Paint wraps s in color followed by a reset. With an empty palette it
// returns s unchanged.
func (p Palette) Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + p.Reset
}
