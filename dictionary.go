// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"bufio"
	"os"
	"strconv"
	"sync"

	"github.com/rcourivaud/symspellcompound/tokenize"
)

// Dictionary is the symmetric-delete index described in spec.md §3: a
// mapping from language-prefixed key to a tagged slot (bare WordID or a
// back-index into the entry table), plus the word table and entry table
// that slot resolves against.
//
// A Dictionary is mutable only during construction (CreateDictionaryEntry
// and the loaders below). Once handed to a Spell for querying, callers
// must not continue to mutate it concurrently with lookups - the same
// read-only-after-build contract the teacher package documents for its
// own words/deletes maps, just generalized to the richer slot encoding
// spec.md requires.
type Dictionary struct {
	mu sync.RWMutex

	index   map[string]slot
	words   wordTable
	entries entryTable

	maxLength       int
	editDistanceMax uint32
	verbose         Verbose
}

// NewDictionary creates an empty Dictionary. editDistanceMax is K, the
// number of deletes generated per inserted word; verbose controls the
// lowest-distance suggestion-retention policy used while building the
// delete neighborhood (see addLowestDistance).
func NewDictionary(editDistanceMax uint32, verbose Verbose) *Dictionary {
	return &Dictionary{
		index:           make(map[string]slot),
		editDistanceMax: editDistanceMax,
		verbose:         verbose,
	}
}

// MaxLength is the length of the longest original word in the dictionary,
// used by Lookup to reject inputs that can't possibly match anything.
func (d *Dictionary) MaxLength() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.maxLength
}

// CreateDictionaryEntry inserts key (in language) with a frequency
// increment of count, generating its delete-neighborhood the first time
// it crosses the known-word threshold. It reports whether this call
// promoted key to a known word.
func (d *Dictionary) CreateDictionaryEntry(key, language string, count int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fullKey := languageKey(language, key)

	var item *dictionaryItem
	prevCount := 0

	if s, exists := d.index[fullKey]; exists {
		if !isEntrySlot(s) {
			item = &dictionaryItem{Suggestions: []int{s}}
			idx := d.entries.append(item)
			d.index[fullKey] = slotFromEntryIndex(idx)
		} else {
			item = d.entries.get(entryIndexFromSlot(s))
		}
		prevCount = item.Count
		item.Count += count
	} else {
		item = &dictionaryItem{Count: count}
		idx := d.entries.append(item)
		d.index[fullKey] = slotFromEntryIndex(idx)
	}

	promoted := item.Count >= countThreshold && prevCount < countThreshold

	if promoted {
		id := d.words.append(key)

		for del := range generateDeletes(key, d.editDistanceMax) {
			deleteKey := languageKey(language, del)

			s, exists := d.index[deleteKey]
			switch {
			case !exists:
				d.index[deleteKey] = id

			case !isEntrySlot(s):
				di := &dictionaryItem{Suggestions: []int{s}}
				idx := d.entries.append(di)
				d.index[deleteKey] = slotFromEntryIndex(idx)
				if !containsInt(di.Suggestions, id) {
					d.addLowestDistance(di, key, id, del)
				}

			default:
				di := d.entries.get(entryIndexFromSlot(s))
				if !containsInt(di.Suggestions, id) {
					d.addLowestDistance(di, key, id, del)
				}
			}
		}
	}

	if keyLen := runeLen(key); keyLen > d.maxLength {
		d.maxLength = keyLen
	}

	return promoted
}

// addLowestDistance inserts suggestionID (the word "key") as a generator
// of an already-indexed delete entry, applying the lowest-distance
// retention rule from spec.md §4.1: at VerboseBest/VerboseClosest, only
// the generators of the shortest surviving length (measured against the
// shared delete) are kept, ties included; VerboseAll keeps every generator
// regardless of length.
func (d *Dictionary) addLowestDistance(item *dictionaryItem, key string, keyID int, deleteStr string) {
	deleteLen := runeLen(deleteStr)
	keyLen := runeLen(key)

	if d.verbose < VerboseAll && len(item.Suggestions) > 0 {
		current := d.words.get(item.Suggestions[0])
		if runeLen(current)-deleteLen > keyLen-deleteLen {
			item.Suggestions = item.Suggestions[:0]
		}
	}

	if d.verbose == VerboseAll || len(item.Suggestions) == 0 ||
		runeLen(d.words.get(item.Suggestions[0]))-deleteLen >= keyLen-deleteLen {
		item.Suggestions = append(item.Suggestions, keyID)
	}
}

// LoadDictionary loads frequency entries from a tokenized corpus file: a
// line is accepted once it tokenizes to at least two fields, termIndex
// selects the word, countIndex its frequency. Lines whose count column
// isn't a valid integer are silently skipped. It reports false (with no
// error) if the file can't be opened - an I/O problem at load time
// degrades to a falsey status rather than propagating an exception.
// tokenizeOpts are forwarded to tokenize.Tokenize, e.g. to fold Unicode
// confusable characters in the corpus before indexing it.
func (d *Dictionary) LoadDictionary(path, language string, termIndex, countIndex int, tokenizeOpts ...tokenize.Option) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens := tokenize.Tokenize(scanner.Text(), tokenizeOpts...)
		if len(tokens) < 2 {
			continue
		}
		if termIndex >= len(tokens) || countIndex >= len(tokens) {
			continue
		}
		count, err := strconv.Atoi(tokens[countIndex])
		if err != nil {
			continue
		}
		d.CreateDictionaryEntry(tokens[termIndex], language, count)
	}
	return true
}

// CreateDictionary loads the "alternative format" described in spec.md
// §6: plain tokenized text where every observed token is inserted with
// count=1 and duplicates accumulate. tokenizeOpts are forwarded to
// tokenize.Tokenize, e.g. to fold Unicode confusable characters in the
// corpus before indexing it.
func (d *Dictionary) CreateDictionary(path, language string, tokenizeOpts ...tokenize.Option) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, token := range tokenize.Tokenize(scanner.Text(), tokenizeOpts...) {
			d.CreateDictionaryEntry(token, language, 1)
		}
	}
	return true
}

// generateDeletes returns every string obtainable from word by removing
// up to maxEdits characters, via recursive single-character deletions,
// stopping at one-character strings (the empty string is never produced),
// deduplicated in a set that is discarded once the caller has consumed it
// (per spec.md §5, these temporary sets must not be retained).
func generateDeletes(word string, maxEdits uint32) map[string]bool {
	deletes := make(map[string]bool)

	var recurse func(w []rune, depth uint32)
	recurse = func(w []rune, depth uint32) {
		depth++
		if depth > maxEdits || len(w) <= 1 {
			return
		}
		for i := range w {
			variant := make([]rune, 0, len(w)-1)
			variant = append(variant, w[:i]...)
			variant = append(variant, w[i+1:]...)
			s := string(variant)
			if !deletes[s] {
				deletes[s] = true
				if depth < maxEdits {
					recurse(variant, depth)
				}
			}
		}
	}

	recurse([]rune(word), 0)
	return deletes
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
