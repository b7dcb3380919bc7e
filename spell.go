// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"github.com/rcourivaud/symspellcompound/distance"
)

// Spell ties a Dictionary to a resolved Config: the distance function,
// default edit distance budget, verbosity and compound-check flag used by
// Lookup and LookupCompound when the caller doesn't override them.
type Spell struct {
	Dictionary *Dictionary

	config   *Config
	distance distance.Func
}

// New creates a Spell with an empty dictionary and DefaultConfig.
func New() *Spell {
	s, err := NewFromConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig always names a registered distance, so this can't
		// actually fail; New is kept error-free for the common case the
		// way the teacher's own New() is.
		panic(err)
	}
	return s
}

// NewFromConfig creates a Spell from an explicit Config, failing loudly
// if it names an unrecognized distance function.
func NewFromConfig(cfg *Config) (*Spell, error) {
	fn, err := cfg.resolveDistance()
	if err != nil {
		return nil, err
	}

	if cfg.EnableCompoundCheck && cfg.Verbose != VerboseBest {
		return nil, errConfigCompoundRequiresVerboseBest
	}

	return &Spell{
		Dictionary: NewDictionary(uint32(cfg.EditDistanceMax), cfg.Verbose),
		config:     cfg,
		distance:   fn,
	}, nil
}

// AddEntry inserts word into the default-language dictionary with the
// given frequency count. It reports whether the word was newly promoted
// to a known word (as opposed to only having its count incremented).
func (s *Spell) AddEntry(word string, count int) bool {
	return s.Dictionary.CreateDictionaryEntry(word, DefaultLanguage, count)
}

// AddLanguageEntry is AddEntry for a specific language.
func (s *Spell) AddLanguageEntry(word, language string, count int) bool {
	return s.Dictionary.CreateDictionaryEntry(word, language, count)
}
