// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package distance

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	insertionCost    = 1.0
	deletionCost     = 1.0
	substitutionCost = 1.0
)

// fold transliterates s to plain ASCII-ish lowercase by decomposing
// accented runes and dropping the combining marks, the Go equivalent of
// the source's unidecode() call, using golang.org/x/text instead of
// hand-rolling a transliteration table.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Typo returns a keyboard-weighted edit distance function for layout. It
// charges insertion/substitution as base cost plus the Euclidean distance
// between the two keys' positions on the keyboard, and deletion as a flat
// cost, via dynamic programming over the two (folded) input strings.
//
// Unlike the Python source, a character with no known keyboard
// coordinate never crashes: euclideanKeyDistance reports ok == false and
// the cost falls back to the flat base cost, per spec.
func Typo(layout Layout) Func {
	return func(a, b string) int {
		return int(typoDistance(fold(a), fold(b), layout) + 0.5)
	}
}

// typoDistance computes the floating point keyboard-weighted distance
// between s and t, mirroring typo_distance.py's matrix recurrence but
// space-optimized to two rows, the style used throughout the retrieval
// pack's other Levenshtein implementations.
func typoDistance(s, t string, layout Layout) float64 {
	rs := []rune(s)
	rt := []rune(t)

	prev := make([]float64, len(rt)+1)
	curr := make([]float64, len(rt)+1)

	// Row 0 has no source rune to anchor against, so each insertion's
	// keyboard context is the t rune just inserted before it - the first
	// insertion of a row gets the flat base cost, mirroring
	// typo_distance.py's growing intermediateString.
	for j := 1; j <= len(rt); j++ {
		if j == 1 {
			prev[j] = prev[j-1] + insertionCost
			continue
		}
		prev[j] = prev[j-1] + insertionCostFor(rt[j-2], rt[j-1], layout)
	}

	for i := 1; i <= len(rs); i++ {
		curr[0] = prev[0] + deletionCost
		for j := 1; j <= len(rt); j++ {
			if rs[i-1] == rt[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			del := prev[j] + deletionCost
			ins := curr[j-1] + insertionCostFor(rs[i-1], rt[j-1], layout)
			sub := prev[j-1] + substitutionCostFor(rs[i-1], rt[j-1], layout)
			curr[j] = minFloat(del, minFloat(ins, sub))
		}
		prev, curr = curr, prev
	}

	return prev[len(rt)]
}

// insertionCostFor charges the base insertion cost plus the keyboard
// distance between the character being inserted and its neighboring
// context rune - mirroring typo_distance.py's insertion_cost(s, i, c,
// layout), which compares the inserted character c against s[i]. A
// self-comparison here would always report zero keyboard distance and
// silently flatten every insertion to the same cost, so neighbor and
// inserted must always be the two distinct runes on either side of the
// insertion point.
func insertionCostFor(neighbor, inserted rune, layout Layout) float64 {
	return insertionCost + keyCostFallback(neighbor, inserted, layout)
}

func substitutionCostFor(a, b rune, layout Layout) float64 {
	return substitutionCost + keyCostFallback(a, b, layout)
}

// keyCostFallback returns the Euclidean key distance between a and b, or
// 0 when either has no known coordinate - the flat-cost fallback spec.md
// requires in place of the source's crash-prone lookup.
func keyCostFallback(a, b rune, layout Layout) float64 {
	d, ok := euclideanKeyDistance(a, b, layout)
	if !ok {
		return 0
	}
	return d
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

