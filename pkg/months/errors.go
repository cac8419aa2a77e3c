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
	"errors"
	"fmt"
)

// ErrInvalidMonth matches every ValidationError with errors.Is.
var ErrInvalidMonth = errors.New("invalid month")

// ValidationError is returned when input cannot be resolved to a month. Input
// holds the text exactly as the caller passed it, before trimming.
type ValidationError struct {
	Input   string
	Message string
}

func newValidationError(raw string) *ValidationError {
	return &ValidationError{
		Input:   raw,
		Message: fmt.Sprintf("Invalid month: %s. Enter a month from January to December", raw),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidMonth
}
