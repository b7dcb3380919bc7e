// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package distance

import "testing"

func TestLookupKnownNames(t *testing.T) {
	for _, name := range []string{"dameraulevenshtein", "typo"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("expected %q to be a registered distance function", name)
		}
	}
}

func TestLookupUnknownName(t *testing.T) {
	if _, ok := Lookup("soundex"); ok {
		t.Fatal("expected an unregistered name to report false")
	}
}

func TestDamerauLevenshteinTranspositionIsOneEdit(t *testing.T) {
	fn, _ := Lookup("dameraulevenshtein")
	if got := fn("quikc", "quick"); got != 1 {
		t.Fatalf("expected a single transposition to cost 1, got %d", got)
	}
}

func TestDamerauLevenshteinIdenticalIsZero(t *testing.T) {
	fn, _ := Lookup("dameraulevenshtein")
	if got := fn("example", "example"); got != 0 {
		t.Fatalf("expected identical strings to have distance 0, got %d", got)
	}
}
