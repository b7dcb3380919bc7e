// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"os"
	"testing"
)

func TestSpellSaveLoadRoundTrip(t *testing.T) {
	s1 := New()
	s1.AddEntry("example", 7)

	defer os.Remove("./spell.test.dump")
	if err := s1.Save("./spell.test.dump"); err != nil {
		t.Fatal(err)
	}

	s2, err := LoadSpell("./spell.test.dump", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	suggestions := s2.Lookup("eample")
	if len(suggestions) != 1 || suggestions[0].Term != "example" {
		t.Fatalf("expected loaded dictionary to still find 'example', got %v", suggestions)
	}
}

func TestLoadSpellRejectsInconsistentConfig(t *testing.T) {
	s1 := New()
	s1.AddEntry("example", 1)

	defer os.Remove("./spell.test2.dump")
	if err := s1.Save("./spell.test2.dump"); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.EnableCompoundCheck = true
	cfg.Verbose = VerboseAll

	if _, err := LoadSpell("./spell.test2.dump", cfg); err != errConfigCompoundRequiresVerboseBest {
		t.Fatalf("expected errConfigCompoundRequiresVerboseBest, got %v", err)
	}
}
