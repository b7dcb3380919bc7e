// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"strings"
	"time"
)

// LookupCompound jointly corrects space-insertion errors, space-deletion
// errors, and ordinary misspellings across a whitespace-separated phrase,
// per spec.md §4.3. It requires VerboseBest; see NewFromConfig.
//
// This implementation fixes the two documented source bugs in the split
// branch (spec.md §9): the second half of a candidate split is the
// remainder of the token, not a single character, and the second guard
// checks the second half's suggestion list (not the first half's again)
// before comparing it against the single-word correction. A successful merge
// also only skips the rest of *this* token's processing (continue),
// rather than abandoning every token still left in the phrase.
func (s *Spell) LookupCompound(phrase string, opts ...LookupOption) Suggestion {
	p := s.defaultLookupParams()
	for _, opt := range opts {
		opt(p)
	}
	if p.trace != nil {
		start := time.Now()
		defer func() { p.trace("LookupCompound", time.Since(start)) }()
	}
	// The nested Lookup calls below must not report to the caller's trace.
	opts = append(opts[:len(opts):len(opts)], WithTrace(nil))

	tokens := strings.Fields(phrase)

	var parts SuggestionList
	lastCombi := false

	for i, token := range tokens {
		current := s.Lookup(token, opts...)

		if i > 0 && !lastCombi {
			combined := s.Lookup(tokens[i-1]+token, opts...)
			if len(combined) > 0 {
				best1 := parts[len(parts)-1]
				best2 := Suggestion{Term: token, Distance: s.editDistanceMaxOf(opts) + 1, Count: 0}
				if len(current) > 0 {
					best2 = current[0]
				}

				merged := combined[0]
				originalDistance := s.distanceBetween(
					tokens[i-1]+" "+token,
					best1.Term+" "+best2.Term,
					opts,
				)
				if merged.Distance+1 < originalDistance {
					merged.Distance++
					parts[len(parts)-1] = merged
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		switch {
		case len(current) > 0 && (current[0].Distance == 0 || runeLen(token) == 1):
			parts = append(parts, current[0])

		default:
			parts = append(parts, s.bestSplit(token, current, opts))
		}
	}

	return s.assemblePhrase(parts, phrase, opts)
}

// bestSplit tries every split position of token, looking up both halves,
// and returns the lowest 2*distance-count split candidate. It falls back
// to a placeholder of zero count and edit_distance_max+1 distance when no
// split works and the unsplit lookup also found nothing.
func (s *Spell) bestSplit(token string, single SuggestionList, opts []LookupOption) Suggestion {
	candidates := SuggestionList{}
	if len(single) > 0 {
		candidates = append(candidates, single[0])
	}

	runes := []rune(token)
	for j := 1; j < len(runes); j++ {
		part1 := string(runes[:j])
		part2 := string(runes[j:])

		suggestions1 := s.Lookup(part1, opts...)
		if len(suggestions1) == 0 {
			continue
		}
		if len(single) > 0 && single[0].Term == suggestions1[0].Term {
			break
		}

		suggestions2 := s.Lookup(part2, opts...)
		if len(suggestions2) == 0 {
			continue
		}
		if len(single) > 0 && single[0].Term == suggestions2[0].Term {
			break
		}

		split := Suggestion{
			Term:     suggestions1[0].Term + " " + suggestions2[0].Term,
			Distance: s.distanceBetween(token, suggestions1[0].Term+" "+suggestions2[0].Term, opts),
			Count:    minInt(suggestions1[0].Count, suggestions2[0].Count),
		}
		candidates = append(candidates, split)
		if split.Distance == 1 {
			break
		}
	}

	if len(candidates) == 0 {
		return Suggestion{Term: token, Count: 0, Distance: s.editDistanceMaxOf(opts) + 1}
	}

	sortByDistanceThenCount(candidates)
	return candidates[0]
}

// assemblePhrase joins the chosen per-token suggestions into the overall
// corrected phrase: count is the min across parts, distance is the edit
// distance between the corrected phrase and the original input, computed
// with whichever distance function this call resolved to.
func (s *Spell) assemblePhrase(parts SuggestionList, original string, opts []LookupOption) Suggestion {
	terms := make([]string, 0, len(parts))
	count := -1
	for _, p := range parts {
		terms = append(terms, p.Term)
		if count == -1 || p.Count < count {
			count = p.Count
		}
	}
	if count == -1 {
		count = 0
	}

	term := strings.Join(terms, " ")
	return Suggestion{
		Term:     term,
		Count:    count,
		Distance: s.distanceBetween(term, original, opts),
	}
}

func (s *Spell) distanceBetween(a, b string, opts []LookupOption) int {
	p := s.defaultLookupParams()
	for _, opt := range opts {
		opt(p)
	}
	return p.distance(a, b)
}

func (s *Spell) editDistanceMaxOf(opts []LookupOption) int {
	p := s.defaultLookupParams()
	for _, opt := range opts {
		opt(p)
	}
	return p.editDistanceMax
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
