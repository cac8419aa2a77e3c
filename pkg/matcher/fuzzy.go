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

// Package matcher scores free-form text against a fixed list of candidate
// strings using normalized edit distance.
package matcher

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// FuzzyMatch represents a candidate that matches the query with a similarity score.
type FuzzyMatch struct {
	Candidate  string
	Index      int
	Similarity float32
}

// Similarity returns the normalized Levenshtein similarity of a and b in the
// range 0.0 to 1.0. The edit distance is divided by the rune length of the
// longer string, so 1.0 means identical and 0.0 means nothing in common.
func Similarity(a, b string) float32 {
	// edlib divides by zero when both are empty
	if a == "" && b == "" {
		return 1
	}

	similarity, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		// only returned for an unknown algorithm
		return 0
	}
	return similarity
}

// FindFuzzyMatches returns every candidate whose similarity to the query is
// at least minSimilarity, sorted by similarity (best first). Candidates with
// equal scores keep their original order.
func FindFuzzyMatches(query string, candidates []string, minSimilarity float32) []FuzzyMatch {
	var matches []FuzzyMatch

	for i, candidate := range candidates {
		similarity := Similarity(query, candidate)
		if similarity >= minSimilarity {
			matches = append(matches, FuzzyMatch{
				Candidate:  candidate,
				Index:      i,
				Similarity: similarity,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}

// BestMatch returns the candidate most similar to the query. When several
// candidates share the top score the earliest one wins. The bool is false
// only when candidates is empty.
func BestMatch(query string, candidates []string) (FuzzyMatch, bool) {
	if len(candidates) == 0 {
		return FuzzyMatch{}, false
	}

	best := FuzzyMatch{Index: -1, Similarity: -1}
	for i, candidate := range candidates {
		similarity := Similarity(query, candidate)
		if similarity > best.Similarity {
			best = FuzzyMatch{
				Candidate:  candidate,
				Index:      i,
				Similarity: similarity,
			}
		}
	}

	return best, true
}
