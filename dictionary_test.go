// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"os"
	"testing"
)

func newDictWithExample() *Dictionary {
	d := NewDictionary(DefaultEditDistanceMax, VerboseBest)
	d.CreateDictionaryEntry("example", DefaultLanguage, 1)
	return d
}

func TestCreateDictionaryEntryPromotesOnThreshold(t *testing.T) {
	d := NewDictionary(DefaultEditDistanceMax, VerboseBest)
	if promoted := d.CreateDictionaryEntry("example", DefaultLanguage, 1); !promoted {
		t.Fatal("expected first insert at count 1 to promote the word")
	}
	if promoted := d.CreateDictionaryEntry("example", DefaultLanguage, 1); promoted {
		t.Fatal("expected a second insert to only increment count, not re-promote")
	}
}

func TestMaxLengthTracksRuneLength(t *testing.T) {
	d := NewDictionary(DefaultEditDistanceMax, VerboseBest)
	d.CreateDictionaryEntry("café", DefaultLanguage, 1)
	if got := d.MaxLength(); got != 4 {
		t.Fatalf("expected rune length 4 for 'café', got %d", got)
	}
}

func TestLanguagesAreIsolated(t *testing.T) {
	d := NewDictionary(DefaultEditDistanceMax, VerboseBest)
	d.CreateDictionaryEntry("chat", "en", 5)
	d.CreateDictionaryEntry("chat", "fr", 9)

	if got := d.countOf("en", "chat"); got != 5 {
		t.Fatalf("expected en count 5, got %d", got)
	}
	if got := d.countOf("fr", "chat"); got != 9 {
		t.Fatalf("expected fr count 9, got %d", got)
	}
}

func TestGenerateDeletes(t *testing.T) {
	deletes := generateDeletes("ab", 2)
	want := []string{"a", "b"}
	for _, w := range want {
		if !deletes[w] {
			t.Fatalf("expected delete set of 'ab' to contain %q, got %v", w, deletes)
		}
	}
	if len(deletes) != len(want) {
		t.Fatalf("expected exactly %v, got %v", want, deletes)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := newDictWithExample()
	defer os.Remove("./dict.test.dump")

	if err := d.Save("./dict.test.dump"); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load("./dict.test.dump")
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.countOf(DefaultLanguage, "example"); got != 1 {
		t.Fatalf("expected loaded count 1, got %d", got)
	}
	if loaded.MaxLength() != runeLen("example") {
		t.Fatalf("expected maxLength %d, got %d", runeLen("example"), loaded.MaxLength())
	}
}
