// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package symspell provides fast spelling correction and compound-word
// segmentation over a symmetric-delete dictionary index.
package symspell

// DefaultLanguage is used when no language is supplied to an operation that
// requires one. It lets single-language callers ignore language keying
// entirely.
const DefaultLanguage = "en"

// languageKey prefixes a dictionary key with its language so one Dictionary
// can hold entries for several languages without them colliding.
func languageKey(language, key string) string {
	if language == "" {
		language = DefaultLanguage
	}
	return language + key
}
