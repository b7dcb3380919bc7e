// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package tokenize converts raw text into the lowercase, punctuation-free
// word tokens the symspell index is built and queried against. It is the
// "external collaborator" component described in spec.md §2: the core
// index and lookup engine never see punctuation or mixed case, only the
// tokens this package produces.
package tokenize

import (
	"strings"

	"github.com/eskriett/confusables"
)

// defaultFilters is the set of punctuation characters stripped before
// splitting, the same default set as the Python source's
// text_to_word_sequence.
const defaultFilters = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n"

type options struct {
	filters        string
	foldHomoglyphs bool
}

// Option configures a Tokenize call.
type Option func(*options)

// WithFilters overrides the set of characters treated as separators, in
// addition to whitespace.
func WithFilters(filters string) Option {
	return func(o *options) { o.filters = filters }
}

// WithConfusableFolding normalizes Unicode confusable characters (e.g.
// Cyrillic "а" which looks like Latin "a") to their skeleton form before
// tokenizing, using github.com/eskriett/confusables - a dependency the
// teacher package declares but never exercises in the files this module
// was grounded on. Folding here means a homoglyph-corrupted word still
// matches its dictionary entry instead of silently failing every lookup.
func WithConfusableFolding() Option {
	return func(o *options) { o.foldHomoglyphs = true }
}

// Tokenize splits text into lowercase word tokens, stripping punctuation.
// A rune present in the filter set is treated as a split point exactly
// like whitespace; runs of separators collapse and empty tokens are
// dropped.
func Tokenize(text string, opts ...Option) []string {
	o := &options{filters: defaultFilters}
	for _, opt := range opts {
		opt(o)
	}

	text = strings.ToLower(text)
	if o.foldHomoglyphs {
		text = confusables.Skeleton(text)
	}

	isSeparator := func(r rune) bool {
		return strings.ContainsRune(o.filters, r)
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return isSeparator(r) || isWhitespace(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
