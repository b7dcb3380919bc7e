// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"sort"
	"strings"
)

// Suggestion is a single candidate correction: Term is the dictionary
// word, Distance is its edit distance to the queried input, and Count is
// Term's stored frequency.
type Suggestion struct {
	Term     string
	Distance int
	Count    int
}

// SuggestionList is an ordered list of Suggestion, as returned by Lookup.
type SuggestionList []Suggestion

// Terms returns just the suggested words, in order.
func (s SuggestionList) Terms() []string {
	terms := make([]string, 0, len(s))
	for _, v := range s {
		terms = append(terms, v.Term)
	}
	return terms
}

// String renders the suggestion list as "[term1, term2, ...]".
func (s SuggestionList) String() string {
	return "[" + strings.Join(s.Terms(), ", ") + "]"
}

// sortByCountDescending orders suggestions so that, for equal distances,
// the highest-frequency suggestion sorts first - the VerboseBest/
// VerboseClosest ordering policy from spec.md §4.2.
func sortByCountDescending(suggestions SuggestionList) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Count > b.Count
	})
}

// sortByDistanceThenCount implements the VerboseAll ordering policy:
// ascending by 2*distance - count. Each unit of distance weighs as much as
// two units of count, so a high-count suggestion can sort ahead of one
// with a smaller distance.
func sortByDistanceThenCount(suggestions SuggestionList) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		return (2*a.Distance - a.Count) < (2*b.Distance - b.Count)
	})
}
