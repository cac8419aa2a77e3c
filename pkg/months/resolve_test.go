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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ExactMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Month
	}{
		{"january", January},
		{"jan", January},
		{"ja", January},
		{"1", January},
		{"01", January},
		{"January", January},
		{" january ", January},
		{"JANUARY", January},
		{" JANUARY ", January},
		{"\tjan\n", January},
		{"feb", February},
		{"mar", March},
		{"apr", April},
		{"may", May},
		{"MAY", May},
		{"jun", June},
		{"jul", July},
		{"aug", August},
		{"sep", September},
		{"sept", September},
		{"SePt", September},
		{"09", September},
		{"oct", October},
		{"nov", November},
		{"dec", December},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_EveryCanonicalName(t *testing.T) {
	t.Parallel()

	for _, m := range All() {
		for _, input := range []string{m.String(), canonicalNames[m-1], "  " + m.String() + "  "} {
			got, err := Parse(input)
			require.NoError(t, err, input)
			assert.Equal(t, m, got, input)
		}
	}
}

func TestParse_Numbers(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 12; n++ {
		got, err := Parse(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Equal(t, Month(n), got)

		if n < 10 {
			got, err = Parse("0" + strconv.Itoa(n))
			require.NoError(t, err)
			assert.Equal(t, Month(n), got)
		}
	}
}

func TestParse_OrdinalsAndNumericPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Month
	}{
		{"1st", January},
		{"2nd", February},
		{"3rd", March},
		{"4th", April},
		{"12th", December},
		{"1xyz", January},
		{"007", July},
		{" 11th ", November},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			m, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Month)
			assert.Equal(t, StageNumeric, m.Stage)
		})
	}
}

func TestParse_FuzzyMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		reason   string
		expected Month
	}{
		{input: "janurary", expected: January, reason: "common misspelling"},
		{input: "feburary", expected: February, reason: "common misspelling"},
		{input: "febuary", expected: February, reason: "common misspelling"},
		{input: "marh", expected: March, reason: "single char deletion"},
		{input: "appril", expected: April, reason: "double consonant"},
		{input: "apryl", expected: April, reason: "phonetic"},
		{input: "agust", expected: August, reason: "missing letter"},
		{input: "augst", expected: August, reason: "missing letter"},
		{input: "septmber", expected: September, reason: "missing letter"},
		{input: "sepetember", expected: September, reason: "extra letter"},
		{input: "sebtembar", expected: September, reason: "two substitutions"},
		{input: "ocktober", expected: October, reason: "extra letter"},
		{input: "novemeber", expected: November, reason: "extra letter"},
		{input: "deccember", expected: December, reason: "double consonant"},
		{input: "j@nuary", expected: January, reason: "special character"},
		{input: "febru4ry", expected: February, reason: "digit mixed in"},
		{input: "m@rch", expected: March, reason: "special character"},
		{input: "jun3", expected: June, reason: "digit mixed in"},
		{input: "Aprill", expected: April, reason: "case folded before fuzzy"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			m, err := Resolve(tt.input)
			require.NoError(t, err, tt.reason)
			assert.Equal(t, tt.expected, m.Month, tt.reason)
			assert.Equal(t, StageFuzzy, m.Stage)
			assert.GreaterOrEqual(t, m.Score, SimilarityThreshold)
			assert.Less(t, m.Score, float32(1))
		})
	}
}

func TestParse_FuzzyTieGoesToEarlierMonth(t *testing.T) {
	t.Parallel()

	// one edit from both june and july
	got, err := Parse("jule")
	require.NoError(t, err)
	assert.Equal(t, June, got)
}

func TestParse_AppendedCharacter(t *testing.T) {
	t.Parallel()

	for _, m := range All() {
		name := canonicalNames[m-1]

		got, err := Parse(name + "x")
		require.NoError(t, err, name+"x")
		assert.Equal(t, m, got)

		_, err = Parse("xxx" + name + "yyy")
		assert.ErrorIs(t, err, ErrInvalidMonth, "xxx"+name+"yyy")
	}
}

func TestParse_InternationalVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Month
	}{
		{"enero", January},
		{"janvier", January},
		{"januar", January},
		{"gennaio", January},
		{"styczeń", January},
		{"январь", January},
		{"يناير", January},
		{"一月", January},
		{"Février", February},
		{"MÄRZ", March},
		{"marzo", March},
		{"Май", May},
		{"août", August},
		{"październik", October},
		{"十一月", November},
		{"Dezember", December},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			m, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Month)
		})
	}
}

func TestParse_EveryVariantResolves(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		got, err := Parse(v.Spelling)
		require.NoError(t, err, v.Spelling)
		assert.Equal(t, v.Month, got, "%s (%s)", v.Spelling, v.Language)
	}
}

func TestParse_DecomposedAccents(t *testing.T) {
	t.Parallel()

	m, err := Resolve("fe\u0301vrier")
	require.NoError(t, err)
	assert.Equal(t, February, m.Month)
	assert.Equal(t, StageInternational, m.Stage)
}

func TestParse_InvalidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		reason string
	}{
		{input: "januori", reason: "denylisted"},
		{input: "marsh", reason: "denylisted, fuzzy would accept it"},
		{input: "MARSH", reason: "denylist applies after normalization"},
		{input: "julie", reason: "denylisted"},
		{input: "13", reason: "out of range"},
		{input: "0", reason: "out of range"},
		{input: "00", reason: "out of range"},
		{input: "99999999999999999999", reason: "overflows"},
		{input: "", reason: "empty"},
		{input: " ", reason: "whitespace only"},
		{input: "\t\n", reason: "whitespace only"},
		{input: "invalid", reason: "unrelated word"},
		{input: "xxxjanuaryyyy", reason: "too much noise"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.Error(t, err, tt.reason)
			assert.Equal(t, Month(0), got)
			assert.ErrorIs(t, err, ErrInvalidMonth)
		})
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"invalid", "Invalid month: invalid. Enter a month from January to December"},
		{"  Marsh ", "Invalid month:   Marsh . Enter a month from January to December"},
		{"", "Invalid month: . Enter a month from January to December"},
	}

	for _, tt := range tests {
		tt := tt
		_, err := Parse(tt.input)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, tt.input, verr.Input)
		assert.Equal(t, tt.expected, verr.Message)
		assert.EqualError(t, err, tt.expected)
	}
}

func TestResolve_Stages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		stage Stage
	}{
		{"dec", StageExact},
		{"10", StageExact},
		{"10th", StageNumeric},
		{"juin", StageInternational},
		{"decembr", StageFuzzy},
	}

	for _, tt := range tests {
		tt := tt
		m, err := Resolve(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.stage, m.Stage, tt.input)
		if tt.stage != StageFuzzy {
			assert.InDelta(t, 1, m.Score, 0.0001)
		}
	}
}

func TestStage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exact", StageExact.String())
	assert.Equal(t, "numeric", StageNumeric.String())
	assert.Equal(t, "international", StageInternational.String())
	assert.Equal(t, "fuzzy", StageFuzzy.String())
	assert.Equal(t, "fallback", StageFallback.String())
	assert.Equal(t, "unknown", Stage(42).String())
}

func TestMatchNumericPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Month
		ok       bool
	}{
		{"5", May, true},
		{"5th", May, true},
		{"12abc", December, true},
		{"0", 0, false},
		{"13", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"x1", 0, false},
		{"４", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		got, ok := matchNumericPrefix(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "january", normalize("  JANUARY\t"))
	assert.Equal(t, "märz", normalize("MÄRZ"))
	assert.Equal(t, "март", normalize("МАРТ"))
	assert.Equal(t, "一月", normalize(" 一月 "))
	assert.Equal(t, "", normalize("   "))
	assert.Equal(t, normalize("Février"), normalize(normalize("Février")))
}
