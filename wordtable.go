// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import "unicode/utf8"

// runeLen counts Unicode code points rather than bytes, matching the
// source's Python string-length semantics; dictionary words aren't
// assumed to be ASCII.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// dictionaryItem is the mutable record behind a "tagged" index slot: a
// known word (Count > 0) that may also be a delete-neighbor of longer
// words, or a pure delete-neighbor (Count == 0) carrying the WordIDs of
// the words that generate it, or both at once.
type dictionaryItem struct {
	Count       int
	Suggestions []int
}

// A slot in the index is a plain int rather than a hand-rolled tagged
// union: a non-negative value is a bare WordID (the common case, a delete
// with exactly one generator and no self-count); a negative value v
// back-indexes the entry table at -v-1. This mirrors the source's
// sign-encoded int, just using Go's native int width instead of forcing
// int32 for a cache-density win the source took for granted in CPython.
type slot = int

func isEntrySlot(s slot) bool { return s < 0 }

func entryIndexFromSlot(s slot) int { return -s - 1 }

func slotFromEntryIndex(i int) slot { return slot(-(i + 1)) }

// wordTable is the append-only, immutable-once-written sequence of
// canonical original words. A word's position is its WordID.
type wordTable struct {
	words []string
}

func (wt *wordTable) append(word string) int {
	wt.words = append(wt.words, word)
	return len(wt.words) - 1
}

func (wt *wordTable) get(id int) string {
	return wt.words[id]
}

func (wt *wordTable) len() int {
	return len(wt.words)
}

// entryTable is the ordered sequence of dictionaryItem, grown only by
// appending new items, incrementing a Count, or appending a Suggestion.
type entryTable struct {
	entries []*dictionaryItem
}

func (et *entryTable) append(item *dictionaryItem) int {
	et.entries = append(et.entries, item)
	return len(et.entries) - 1
}

func (et *entryTable) get(id int) *dictionaryItem {
	return et.entries[id]
}
