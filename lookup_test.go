// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"testing"
	"time"
)

func newSpellWithExample() *Spell {
	s := New()
	s.AddEntry("example", 1)
	return s
}

func TestLookupFindsSingleDelete(t *testing.T) {
	s := newSpellWithExample()
	suggestions := s.Lookup("eample")
	if len(suggestions) != 1 {
		t.Fatalf("expected exactly one match, got %v", suggestions)
	}
	if suggestions[0].Term != "example" {
		t.Fatalf("expected 'example', got %q", suggestions[0].Term)
	}
	if suggestions[0].Distance != 1 {
		t.Fatalf("expected distance 1, got %d", suggestions[0].Distance)
	}
}

func TestLookupEditDistanceZeroRequiresExactMatch(t *testing.T) {
	s := newSpellWithExample()
	suggestions := s.Lookup("eample", WithEditDistanceMax(0))
	if len(suggestions) != 0 {
		t.Fatalf("expected no matches at edit distance 0, got %v", suggestions)
	}
	suggestions = s.Lookup("example", WithEditDistanceMax(0))
	if len(suggestions) != 1 || suggestions[0].Term != "example" {
		t.Fatalf("expected exact match to still succeed, got %v", suggestions)
	}
}

func TestLookupVerboseAllReturnsEveryCandidate(t *testing.T) {
	s := New()
	s.AddEntry("ab", 5)
	s.AddEntry("ac", 3)

	suggestions := s.Lookup("a", WithVerbose(VerboseAll), WithEditDistanceMax(1))
	if len(suggestions) != 2 {
		t.Fatalf("expected both ab and ac within distance 1, got %v", suggestions)
	}
}

func TestLookupRejectsInputsLongerThanDictionaryAllows(t *testing.T) {
	s := New()
	s.AddEntry("ab", 1)
	suggestions := s.Lookup("abcdefgh", WithEditDistanceMax(1))
	if len(suggestions) != 0 {
		t.Fatalf("expected no matches for an input far longer than any entry, got %v", suggestions)
	}
}

func TestLookupUnknownWordReturnsNoSuggestions(t *testing.T) {
	s := newSpellWithExample()
	suggestions := s.Lookup("zzzzzzzzzz", WithEditDistanceMax(2))
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions for a wildly different input, got %v", suggestions)
	}
}

func TestLookupRespectsLanguage(t *testing.T) {
	s := New()
	s.AddLanguageEntry("chat", "fr", 10)

	if got := s.Lookup("chat", WithLanguage("en")); len(got) != 0 {
		t.Fatalf("expected no en match for an fr-only entry, got %v", got)
	}
	if got := s.Lookup("chat", WithLanguage("fr")); len(got) != 1 {
		t.Fatalf("expected fr lookup to find the entry, got %v", got)
	}
}

func TestLookupWithTraceReportsOperationAndDuration(t *testing.T) {
	s := newSpellWithExample()

	var gotOp string
	var gotDuration time.Duration
	calls := 0

	s.Lookup("eample", WithTrace(func(op string, d time.Duration) {
		calls++
		gotOp = op
		gotDuration = d
	}))

	if calls != 1 {
		t.Fatalf("expected trace to be invoked exactly once, got %d calls", calls)
	}
	if gotOp != "Lookup" {
		t.Fatalf("expected op %q, got %q", "Lookup", gotOp)
	}
	if gotDuration < 0 {
		t.Fatalf("expected a non-negative duration, got %s", gotDuration)
	}
}
