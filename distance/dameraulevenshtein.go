// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package distance

import "github.com/eskriett/strmet"

// DamerauLevenshtein is the default built-in distance, delegating to
// github.com/eskriett/strmet - the same string-metric library the teacher
// package depends on for its own default LookupOption.
//
// strmet's functions take a maxDist bound and return -1 once the true
// distance exceeds it; DamerauLevenshtein here passes a bound wide enough
// that it's never hit, so callers always get the true distance.
func DamerauLevenshtein(a, b string) int {
	bound := len(a) + len(b) + 1
	d := strmet.DamerauLevenshtein(a, b, bound)
	if d < 0 {
		return bound
	}
	return d
}

// Levenshtein is exposed for callers who want classic Levenshtein
// (no transpositions) instead of the package default, mirroring the
// teacher's DistanceFunc example.
func Levenshtein(a, b string) int {
	bound := len(a) + len(b) + 1
	d := strmet.Levenshtein(a, b, bound)
	if d < 0 {
		return bound
	}
	return d
}
