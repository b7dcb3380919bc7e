// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"compress/gzip"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/tidwall/gjson"
)

// persistedEntry is the on-disk shape of a dictionaryItem: json.Marshal
// already does this for the unexported fields-free struct, but it's named
// here so the snapshot format doesn't silently change if dictionaryItem
// grows more exported fields later.
type persistedEntry struct {
	Count       int   `json:"count"`
	Suggestions []int `json:"suggestions"`
}

// Save writes a gzip-compressed JSON snapshot of the dictionary to
// filename: the index, word table, entry table and the build-time
// settings needed to keep Lookup's budget checks consistent after Load.
func (d *Dictionary) Save(filename string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make([]persistedEntry, len(d.entries.entries))
	for i, e := range d.entries.entries {
		entries[i] = persistedEntry{Count: e.Count, Suggestions: e.Suggestions}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"index":           d.index,
		"words":           d.words.words,
		"entries":         entries,
		"maxLength":       d.maxLength,
		"editDistanceMax": d.editDistanceMax,
		"verbose":         d.verbose,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	w := gzip.NewWriter(f)
	if _, err := w.Write(payload); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a snapshot written by Save and returns a ready-to-query
// Dictionary. It does not replay CreateDictionaryEntry, so the snapshot
// must have been taken after the index was fully built.
func Load(filename string) (*Dictionary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	data, err := ioutil.ReadAll(gz)
	if cerr := gz.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}

	gj := gjson.ParseBytes(data)

	d := &Dictionary{
		index:           make(map[string]slot),
		maxLength:       int(gj.Get("maxLength").Int()),
		editDistanceMax: uint32(gj.Get("editDistanceMax").Int()),
		verbose:         Verbose(gj.Get("verbose").Int()),
	}

	gj.Get("index").ForEach(func(key, value gjson.Result) bool {
		d.index[key.String()] = int(value.Int())
		return true
	})

	gj.Get("words").ForEach(func(_, value gjson.Result) bool {
		d.words.words = append(d.words.words, value.String())
		return true
	})

	var entries []persistedEntry
	if err := json.Unmarshal([]byte(gj.Get("entries").Raw), &entries); err != nil {
		return nil, err
	}
	d.entries.entries = make([]*dictionaryItem, len(entries))
	for i, e := range entries {
		d.entries.entries[i] = &dictionaryItem{Count: e.Count, Suggestions: e.Suggestions}
	}

	return d, nil
}

// Save writes s's dictionary to filename. The Config (distance choice,
// verbosity, edit distance budget) is not part of the snapshot - callers
// reload with LoadSpell against the same or an equivalent Config.
func (s *Spell) Save(filename string) error {
	return s.Dictionary.Save(filename)
}

// LoadSpell reads a dictionary snapshot from filename and pairs it with
// cfg to produce a ready-to-query Spell.
func LoadSpell(filename string, cfg *Config) (*Spell, error) {
	d, err := Load(filename)
	if err != nil {
		return nil, err
	}

	fn, err := cfg.resolveDistance()
	if err != nil {
		return nil, err
	}
	if cfg.EnableCompoundCheck && cfg.Verbose != VerboseBest {
		return nil, errConfigCompoundRequiresVerboseBest
	}

	return &Spell{Dictionary: d, config: cfg, distance: fn}, nil
}
