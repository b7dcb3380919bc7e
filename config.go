// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rcourivaud/symspellcompound/distance"
)

// Verbose controls how many suggestions Lookup keeps and how aggressively
// it prunes while searching. See the package constants.
type Verbose int

const (
	// VerboseBest returns only the single best suggestion.
	VerboseBest Verbose = iota

	// VerboseClosest returns every suggestion that shares the best distance.
	VerboseClosest

	// VerboseAll returns every suggestion within the edit distance budget,
	// without early termination.
	VerboseAll
)

const (
	// DefaultEditDistanceMax is used when a Config does not set one.
	DefaultEditDistanceMax = 2

	countThreshold = 1
)

// ErrUnknownDistance is returned when a Config names a distance function
// that isn't registered.
var ErrUnknownDistance = errors.New("symspell: unknown distance function")

// ErrEmptyDictionary describes an empty dictionary. No function in this
// package returns it: lookups against an empty dictionary return empty
// results instead.
var ErrEmptyDictionary = errors.New("symspell: dictionary is empty")

// errConfigCompoundRequiresVerboseBest enforces spec.md §6: compound
// lookup requires Verbose == VerboseBest.
var errConfigCompoundRequiresVerboseBest = errors.New(
	"symspell: enable_compound_check requires verbose = VerboseBest")

// Config declares how a Spell instance should be built. It can be
// constructed directly or decoded from a generic map (e.g. parsed JSON or
// YAML) via NewConfigFromMap, using mapstructure the way a deployed
// service would load it from a config file.
type Config struct {
	// Distance names a built-in distance function ("dameraulevenshtein" or
	// "typo") or is left empty to use DistanceFunc instead.
	Distance string `mapstructure:"distance"`

	// DistanceFunc, if set, overrides Distance with a caller-supplied
	// distance function. Not decodable from a map; set it in code.
	DistanceFunc distance.Func `mapstructure:"-"`

	// EditDistanceMax is K: the number of deletes generated per dictionary
	// word, and the default budget for Lookup/LookupCompound.
	EditDistanceMax int `mapstructure:"edit_distance_max"`

	// Verbose selects the suggestion-retention policy.
	Verbose Verbose `mapstructure:"verbose"`

	// EnableCompoundCheck marks the Config for phrase-mode (LookupCompound)
	// use. Its only effect is validation: NewFromConfig and LoadSpell
	// reject it unless Verbose == VerboseBest. It does not switch Lookup
	// to phrase mode; callers choose Lookup or LookupCompound themselves,
	// and LookupCompound does not check this flag.
	EnableCompoundCheck bool `mapstructure:"enable_compound_check"`
}

// NewConfigFromMap decodes a generic map into a Config using
// mapstructure, e.g. for values parsed from a JSON/YAML config file.
func NewConfigFromMap(raw map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("symspell: building config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("symspell: decoding config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the package defaults: Damerau-Levenshtein
// distance, edit distance 2, best-suggestion-only verbosity.
func DefaultConfig() *Config {
	return &Config{
		Distance:        "dameraulevenshtein",
		EditDistanceMax: DefaultEditDistanceMax,
		Verbose:         VerboseBest,
	}
}

// resolveDistance turns the Config's Distance name (or DistanceFunc
// override) into a concrete distance.Func, failing loudly at
// construction time if the name is unrecognized - a configuration error
// never degrades silently the way a query-time miss does.
func (c *Config) resolveDistance() (distance.Func, error) {
	if c.DistanceFunc != nil {
		return c.DistanceFunc, nil
	}
	fn, ok := distance.Lookup(c.Distance)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistance, c.Distance)
	}
	return fn, nil
}
