// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"testing"
	"time"
)

func newCompoundSpell(t *testing.T) *Spell {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EnableCompoundCheck = true
	s, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"the", "quick", "brown", "fox", "problem"} {
		s.AddEntry(w, 10)
	}
	return s
}

func TestLookupCompoundFixesMisspelling(t *testing.T) {
	s := newCompoundSpell(t)
	got := s.LookupCompound("the quikc brown fox")
	if got.Term != "the quick brown fox" {
		t.Fatalf("expected 'the quick brown fox', got %q", got.Term)
	}
}

func TestLookupCompoundMergesSplitWord(t *testing.T) {
	s := New()
	s.AddEntry("whereis", 10)

	// "wh" has no correction of its own, but "wh"+"ereis" recombines into
	// a known word, which beats keeping the two tokens apart.
	got := s.LookupCompound("wh ereis")
	if got.Term != "whereis" {
		t.Fatalf("expected merge to 'whereis', got %q", got.Term)
	}
}

func TestLookupCompoundSplitsConcatenatedWords(t *testing.T) {
	s := New()
	for _, w := range []string{"the", "problem"} {
		s.AddEntry(w, 10)
	}

	got := s.LookupCompound("theproblem")
	if got.Term != "the problem" {
		t.Fatalf("expected split to 'the problem', got %q", got.Term)
	}
}

func TestLookupCompoundWithTraceReportsOperationAndDuration(t *testing.T) {
	s := newCompoundSpell(t)

	var gotOp string
	calls := 0

	s.LookupCompound("the quikc brown fox", WithTrace(func(op string, d time.Duration) {
		calls++
		gotOp = op
		if d < 0 {
			t.Fatalf("expected a non-negative duration, got %s", d)
		}
	}))

	if calls != 1 {
		t.Fatalf("expected trace to be invoked exactly once, got %d calls", calls)
	}
	if gotOp != "LookupCompound" {
		t.Fatalf("expected op %q, got %q", "LookupCompound", gotOp)
	}
}

func TestNewFromConfigRejectsCompoundWithoutVerboseBest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableCompoundCheck = true
	cfg.Verbose = VerboseAll

	if _, err := NewFromConfig(cfg); err != errConfigCompoundRequiresVerboseBest {
		t.Fatalf("expected errConfigCompoundRequiresVerboseBest, got %v", err)
	}
}
