// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package distance provides the pluggable edit-distance functions
// consumed by the symspell package's core search: a Damerau-Levenshtein
// implementation (backed by github.com/eskriett/strmet, the teacher's own
// distance dependency) and a keyboard-weighted "typo" distance built for
// this module, since nothing in the retrieval pack ships one.
package distance

// Func computes a non-negative distance between two strings. It must be
// symmetric-ish and monotone in string difference: the larger a and b
// differ, the larger the result.
type Func func(a, b string) int

// Lookup resolves a built-in distance function by name. The names
// recognized are "dameraulevenshtein" and "typo", and the empty name,
// which also resolves to Damerau-Levenshtein; anything else reports
// ok == false so the caller can turn it into a configuration error.
func Lookup(name string) (Func, bool) {
	switch name {
	case "dameraulevenshtein", "":
		return DamerauLevenshtein, true
	case "typo":
		return Typo(QWERTY), true
	default:
		return nil, false
	}
}
