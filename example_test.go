// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell_test

import (
	"fmt"

	symspell "github.com/rcourivaud/symspellcompound"
)

func ExampleSpell_Lookup() {
	s := symspell.New()
	s.AddEntry("example", 1)

	suggestions := s.Lookup("eample")
	fmt.Println(suggestions)
	// Output:
	// [example]
}

func ExampleSpell_Lookup_editDistance() {
	s := symspell.New()
	s.AddEntry("example", 1)

	// Only exact matches survive at edit distance 0.
	suggestions := s.Lookup("eample", symspell.WithEditDistanceMax(0))
	fmt.Println(suggestions)
	// Output:
	// []
}

func ExampleSpell_LookupCompound() {
	cfg := symspell.DefaultConfig()
	cfg.EnableCompoundCheck = true
	s, _ := symspell.NewFromConfig(cfg)

	for _, w := range []string{"the", "quick", "brown", "fox"} {
		s.AddEntry(w, 10)
	}

	result := s.LookupCompound("the quikc brown fox")
	fmt.Println(result.Term)
	// Output:
	// the quick brown fox
}
