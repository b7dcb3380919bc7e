// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package tokenize

import (
	"reflect"
	"testing"
)

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	got := Tokenize("The Quick, Brown Fox!")
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeCollapsesRepeatedSeparators(t *testing.T) {
	got := Tokenize("one,,  two...three")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	got := Tokenize("   ")
	if len(got) != 0 {
		t.Fatalf("expected no tokens for blank input, got %v", got)
	}
}

func TestTokenizeWithFilters(t *testing.T) {
	got := Tokenize("a_b-c", WithFilters("_"))
	want := []string{"a", "b-c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeWithConfusableFolding(t *testing.T) {
	// U+0430 CYRILLIC SMALL LETTER A renders identically to Latin "a".
	homoglyph := "pаypal"
	plain := Tokenize("paypal")

	folded := Tokenize(homoglyph, WithConfusableFolding())
	if !reflect.DeepEqual(folded, plain) {
		t.Fatalf("expected confusable folding to normalize %q to %v, got %v", homoglyph, plain, folded)
	}

	unfolded := Tokenize(homoglyph)
	if reflect.DeepEqual(unfolded, plain) {
		t.Fatal("expected the homoglyph token to differ from the plain-ASCII token without folding")
	}
}
