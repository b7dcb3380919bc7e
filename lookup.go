// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"time"

	"github.com/rcourivaud/symspellcompound/distance"
)

// lookupParams holds the resolved settings for one Lookup call.
type lookupParams struct {
	language        string
	editDistanceMax int
	verbose         Verbose
	distance        distance.Func
	trace           func(op string, d time.Duration)
}

// LookupOption configures a single Lookup call, overriding the Spell's
// defaults.
type LookupOption func(*lookupParams)

// WithLanguage selects which language's entries to search.
func WithLanguage(language string) LookupOption {
	return func(p *lookupParams) { p.language = language }
}

// WithEditDistanceMax overrides the edit distance budget for this call.
func WithEditDistanceMax(k int) LookupOption {
	return func(p *lookupParams) { p.editDistanceMax = k }
}

// WithVerbose overrides the suggestion-retention policy for this call.
func WithVerbose(v Verbose) LookupOption {
	return func(p *lookupParams) { p.verbose = v }
}

// WithDistanceFunc overrides the distance function used for this call.
func WithDistanceFunc(fn distance.Func) LookupOption {
	return func(p *lookupParams) { p.distance = fn }
}

// WithTrace registers a callback invoked once after Lookup or
// LookupCompound returns, with the operation name ("Lookup" or
// "LookupCompound") and its wall-clock duration. It replaces the Python
// source's @time_printer decorator, which wrapped a function call with a
// print+time.time() pair; here the caller supplies the sink instead of
// the library hardcoding one, so timing a query never forces a logging
// dependency on callers who don't ask for it.
func WithTrace(fn func(op string, d time.Duration)) LookupOption {
	return func(p *lookupParams) { p.trace = fn }
}

func (s *Spell) defaultLookupParams() *lookupParams {
	return &lookupParams{
		language:        DefaultLanguage,
		editDistanceMax: s.config.EditDistanceMax,
		verbose:         s.config.Verbose,
		distance:        s.distance,
	}
}

// Lookup returns spelling corrections for input, walking the symmetric
// -delete index under a bounded edit-distance budget. See spec.md §4.2
// for the full algorithm; this implementation fixes the source's
// suffix-trim arithmetic (see trueDistance) and expands every candidate's
// deletes whether or not the candidate is itself an index key.
func (s *Spell) Lookup(input string, opts ...LookupOption) SuggestionList {
	p := s.defaultLookupParams()
	for _, opt := range opts {
		opt(p)
	}
	if p.trace != nil {
		start := time.Now()
		defer func() { p.trace("Lookup", time.Since(start)) }()
	}

	d := s.Dictionary
	d.mu.RLock()
	defer d.mu.RUnlock()

	inputLen := runeLen(input)
	if inputLen-p.editDistanceMax > d.maxLength {
		return SuggestionList{}
	}

	candidates := []string{input}
	candidateSeen := map[string]bool{}
	resultSeen := map[string]bool{}
	suggestions := SuggestionList{}

	for len(candidates) > 0 {
		candidate := candidates[0]
		candidates = candidates[1:]
		candidateLen := runeLen(candidate)

		if p.verbose < VerboseAll && len(suggestions) > 0 &&
			inputLen-candidateLen > suggestions[0].Distance {
			break
		}

		// Expansion (below) happens whether or not this candidate is
		// itself an index key: the dictionary only stores delete-variants
		// that are reachable from a real word, so a miss here doesn't mean
		// a deeper delete of this candidate can't still reach one.
		fullKey := languageKey(p.language, candidate)
		slotValue, exists := d.index[fullKey]

		var item *dictionaryItem
		if exists {
			if !isEntrySlot(slotValue) {
				item = &dictionaryItem{Suggestions: []int{slotValue}}
			} else {
				item = d.entries.get(entryIndexFromSlot(slotValue))
			}
		} else {
			item = &dictionaryItem{}
		}

		if item.Count > 0 && !resultSeen[candidate] {
			resultSeen[candidate] = true
			dist := inputLen - candidateLen

			if p.verbose == VerboseAll || len(suggestions) == 0 || dist <= suggestions[0].Distance {
				if p.verbose < VerboseAll && len(suggestions) > 0 && suggestions[0].Distance > dist {
					suggestions = suggestions[:0]
				}
				suggestions = append(suggestions, Suggestion{
					Term:     candidate,
					Distance: dist,
					Count:    item.Count,
				})
				if p.verbose < VerboseAll && dist == 0 {
					break
				}
			}
		}

		for _, suggestionID := range item.Suggestions {
			suggestion := d.words.get(suggestionID)
			if resultSeen[suggestion] {
				continue
			}
			resultSeen[suggestion] = true

			dist := 0
			if suggestion != input {
				dist = s.trueDistance(p, input, suggestion, candidate)
			}

			if p.verbose < VerboseAll && len(suggestions) > 0 && dist > suggestions[0].Distance {
				continue
			}

			if dist > p.editDistanceMax {
				continue
			}

			count := d.countOf(p.language, suggestion)

			if p.verbose < VerboseAll && len(suggestions) > 0 && suggestions[0].Distance > dist {
				suggestions = suggestions[:0]
			}
			suggestions = append(suggestions, Suggestion{
				Term:     suggestion,
				Distance: dist,
				Count:    count,
			})
		}

		if inputLen-candidateLen < p.editDistanceMax {
			if p.verbose < VerboseAll && len(suggestions) > 0 &&
				inputLen-candidateLen >= suggestions[0].Distance {
				continue
			}

			runes := []rune(candidate)
			for i := range runes {
				del := string(append(append([]rune{}, runes[:i]...), runes[i+1:]...))
				if !candidateSeen[del] {
					candidateSeen[del] = true
					candidates = append(candidates, del)
				}
			}
		}
	}

	switch p.verbose {
	case VerboseAll:
		sortByDistanceThenCount(suggestions)
	default:
		sortByCountDescending(suggestions)
	}

	if p.verbose == VerboseBest && len(suggestions) > 1 {
		return suggestions[:1]
	}
	return suggestions
}

// trueDistance computes the real edit distance between suggestion and
// input, using the common-prefix/common-suffix trim spec.md §4.2
// describes. The fix from the documented source bug is the final slice:
// it strips exactly the common prefix (length ii) and common suffix
// (length jj), rather than reusing ii for both ends.
func (s *Spell) trueDistance(p *lookupParams, input, suggestion, candidate string) int {
	suggestionLen := runeLen(suggestion)
	candidateLen := runeLen(candidate)
	inputLen := runeLen(input)

	if suggestionLen == candidateLen {
		return inputLen - candidateLen
	}
	if inputLen == candidateLen {
		return suggestionLen - candidateLen
	}

	sr := []rune(suggestion)
	ir := []rune(input)

	ii := 0
	for ii < len(sr) && ii < len(ir) && sr[ii] == ir[ii] {
		ii++
	}

	jj := 0
	for jj < len(sr)-ii && jj < len(ir)-ii && sr[len(sr)-jj-1] == ir[len(ir)-jj-1] {
		jj++
	}

	if ii > 0 || jj > 0 {
		return p.distance(string(sr[ii:len(sr)-jj]), string(ir[ii:len(ir)-jj]))
	}
	return p.distance(suggestion, input)
}

// countOf returns the stored frequency for a known word, looking its own
// entry up directly rather than trusting the caller to have one handy.
func (d *Dictionary) countOf(language, word string) int {
	s, exists := d.index[languageKey(language, word)]
	if !exists || !isEntrySlot(s) {
		return 0
	}
	return d.entries.get(entryIndexFromSlot(s)).Count
}
