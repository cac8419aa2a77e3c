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

// Package shell is the interactive prompt: it reads one line at a time,
// resolves it to a month and prints the result until an empty line, EOF or
// cancellation.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/fuzzymonth/pkg/months"
	"github.com/ZaparooProject/fuzzymonth/pkg/ui/term"
	"github.com/rs/zerolog/log"
)

const welcome = `
🗓 Fuzzy Month Parser
Type a month name (any format) and press Enter
Press Ctrl+C or Enter an empty line to exit
`

type Shell struct {
	in      io.Reader
	out     io.Writer
	palette term.Palette
	banner  bool
}

func New(in io.Reader, out io.Writer, palette term.Palette, banner bool) *Shell {
	return &Shell{
		in:      in,
		out:     out,
		palette: palette,
		banner:  banner,
	}
}

// FormatMonth renders a month with its calendar number, e.g. "January (1)".
func FormatMonth(m months.Month) string {
	return fmt.Sprintf("%s (%d)", m, m.Number())
}

type readResult struct {
	err  error
	line string
	eof  bool
}

// readLines feeds lines from r into the returned channel until EOF, a read
// error or done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan readResult {
	results := make(chan readResult)
	go func() {
		defer close(results)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case results <- readResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}
		res := readResult{eof: true}
		if err := scanner.Err(); err != nil {
			res = readResult{err: err}
		}
		select {
		case results <- res:
		case <-done:
		}
	}()
	return results
}

// Run prints the banner and loops until the user enters an empty line, the
// input is exhausted or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner {
		s.printf("%s\n", s.palette.Paint(s.palette.Blue, welcome))
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.in, done)

	for {
		s.printf("%s", s.palette.Paint(s.palette.Cyan, "→ "))

		var res readResult
		select {
		case <-ctx.Done():
			s.printf("\n")
			s.goodbye()
			return nil
		case res = <-lines:
		}

		if res.err != nil {
			return fmt.Errorf("error reading input: %w", res.err)
		}

		input := strings.TrimSpace(res.line)
		if res.eof || input == "" {
			s.goodbye()
			return nil
		}

		s.handle(input)
	}
}

func (s *Shell) handle(input string) {
	m, err := months.Resolve(input)
	if err != nil {
		log.Debug().Err(err).Str("input", input).Msg("month not recognized")
		s.printf("%s\n", s.palette.Paint(s.palette.Red, "✗ Invalid input: "+input))
		return
	}

	log.Debug().
		Str("input", input).
		Str("month", m.Month.String()).
		Str("stage", m.Stage.String()).
		Float32("score", m.Score).
		Msg("resolved month")
	s.printf("%s\n", s.palette.Paint(s.palette.Green, "✓ "+FormatMonth(m.Month)))
}

func (s *Shell) goodbye() {
	s.printf("👋 Goodbye!\n")
}

func (s *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
