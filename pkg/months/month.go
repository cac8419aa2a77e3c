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

// Package months resolves free-form text to one of the twelve calendar
// months. It accepts full names, abbreviations, numeric and ordinal forms,
// a fixed set of international spellings and small typos.
//
// Everything in this package is read-only after initialization and safe for
// concurrent use.
package months

import (
	"strconv"
	"time"
)

// Month is a calendar month numbered from January = 1 to December = 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// All returns the twelve months in calendar order.
func All() []Month {
	return []Month{
		January, February, March, April, May, June,
		July, August, September, October, November, December,
	}
}

// FromNumber returns the month with the given 1-based index.
func FromNumber(n int) (Month, bool) {
	m := Month(n)
	if !m.Valid() {
		return 0, false
	}
	return m, true
}

// Valid reports whether m is one of the twelve months.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Number returns the 1-based calendar index of the month.
func (m Month) Number() int {
	return int(m)
}

// Time converts the month to the standard library representation.
func (m Month) Time() time.Month {
	return time.Month(m)
}

// String returns the English name of the month, e.g. "January".
func (m Month) String() string {
	if !m.Valid() {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}
