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

package months

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalize trims surrounding whitespace, composes to NFC and lowercases the
// whole string. Scripts without case (Arabic, Chinese) pass through as-is.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	// a Caser keeps state between calls, so one per call
	return cases.Lower(language.Und).String(s)
}

// leadingDigits returns the run of ASCII digits at the start of s. The bool is
// false when s does not start with a digit.
func leadingDigits(s string) (string, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end], end > 0
}
