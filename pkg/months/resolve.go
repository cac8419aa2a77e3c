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
	"strconv"

	"github.com/ZaparooProject/fuzzymonth/pkg/matcher"
)

// SimilarityThreshold is the minimum normalized Levenshtein similarity a
// fuzzy match needs. Tuned by hand against common typos; changing the
// similarity metric means retuning this too.
const SimilarityThreshold float32 = 0.75

// Stage identifies which resolution step produced a match.
type Stage int

const (
	// StageExact matched a full name, abbreviation or numeric token.
	StageExact Stage = iota
	// StageNumeric matched a leading number such as "3rd".
	StageNumeric
	// StageInternational matched a non-English spelling.
	StageInternational
	// StageFuzzy matched a canonical name within the similarity threshold.
	StageFuzzy
	// StageFallback matched the exact table on the final pass.
	StageFallback
)

func (s Stage) String() string {
	switch s {
	case StageExact:
		return "exact"
	case StageNumeric:
		return "numeric"
	case StageInternational:
		return "international"
	case StageFuzzy:
		return "fuzzy"
	case StageFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Match is a successful resolution. Score is the fuzzy similarity for
// StageFuzzy and 1 for every other stage.
type Match struct {
	Month Month
	Stage Stage
	Score float32
}

// Parse resolves raw to a month. On failure the error is a
// *ValidationError.
func Parse(raw string) (Month, error) {
	m, err := Resolve(raw)
	if err != nil {
		return 0, err
	}
	return m.Month, nil
}

// Resolve resolves raw to a month and reports how it was matched. Strategies
// are tried in order and the first hit wins:
//
//  1. exact names, abbreviations and numbers ("jan", "sept", "09")
//  2. a leading number from 1 to 12, ignoring what follows ("3rd", "1xyz")
//  3. international spellings ("enero", "märz", "十月")
//  4. the denylist, which rejects outright
//  5. fuzzy matching against the English names
//  6. the exact table once more
func Resolve(raw string) (Match, error) {
	input := normalize(raw)

	if m, ok := matchExact(input); ok {
		return Match{Month: m, Stage: StageExact, Score: 1}, nil
	}

	if m, ok := matchNumericPrefix(input); ok {
		return Match{Month: m, Stage: StageNumeric, Score: 1}, nil
	}

	if m, ok := variantTokens[input]; ok {
		return Match{Month: m, Stage: StageInternational, Score: 1}, nil
	}

	if _, denied := denylist[input]; denied {
		return Match{}, newValidationError(raw)
	}

	if best, ok := matcher.BestMatch(input, canonicalNames); ok && best.Similarity >= SimilarityThreshold {
		return Match{Month: Month(best.Index + 1), Stage: StageFuzzy, Score: best.Similarity}, nil
	}

	// Unreachable while normalize is idempotent. Kept so that adding a
	// normalization step between the stages above can't lose exact matches.
	if m, ok := matchExact(input); ok {
		return Match{Month: m, Stage: StageFallback, Score: 1}, nil
	}

	return Match{}, newValidationError(raw)
}

func matchExact(input string) (Month, bool) {
	m, ok := exactTokens[input]
	return m, ok
}

func matchNumericPrefix(input string) (Month, bool) {
	digits, ok := leadingDigits(input)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		// too many digits to be a month
		return 0, false
	}
	if n < 1 || n > 12 {
		return 0, false
	}
	return Month(n), true
}
