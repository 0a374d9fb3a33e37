// Copyright © 2024-2025 The palign Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config implements the composable alignment configuration:
// an ordered set of orthogonal elements, each tagged with a stable
// identifier. Duplicate or mutually exclusive elements are rejected
// when the configuration is combined, before any alignment runs.
package config

import "github.com/palign/palign/palign/scoring"

// ElementID tags each configuration element category.
type ElementID uint8

const (
	IDScoring ElementID = iota
	IDGap
	IDMethod
	IDBand
	IDOutput
	IDOnResult
	IDEdit

	numElementIDs
)

func (id ElementID) String() string {
	switch id {
	case IDScoring:
		return "scoring"
	case IDGap:
		return "gap"
	case IDMethod:
		return "method"
	case IDBand:
		return "band"
	case IDOutput:
		return "output"
	case IDOnResult:
		return "on-result"
	case IDEdit:
		return "edit"
	}
	return "unknown"
}

// incompatible[id] is the bitmask of element IDs that may not coexist
// with id. Every ID is incompatible with itself (no duplicates).
// The edit preset fixes both the scheme and the gap costs, so it
// excludes explicit scoring and gap elements.
var incompatible = func() [numElementIDs]uint16 {
	var t [numElementIDs]uint16
	for id := ElementID(0); id < numElementIDs; id++ {
		t[id] = 1 << id
	}
	t[IDEdit] |= 1<<IDScoring | 1<<IDGap
	t[IDScoring] |= 1 << IDEdit
	t[IDGap] |= 1 << IDEdit
	return t
}()

// Element is one alignment configuration element.
type Element interface {
	id() ElementID
}

// Scoring selects a substitution scheme.
type Scoring struct {
	Scheme scoring.Scheme
}

func (Scoring) id() ElementID { return IDScoring }

// Gap selects a gap cost model.
type Gap struct {
	Scheme scoring.GapScheme
}

func (Gap) id() ElementID { return IDGap }

// OnResult registers a callback receiving every *align.Result as it
// is produced. Under parallel execution the delivery order across
// pairs is unspecified.
type OnResult struct {
	Fn func(result interface{})
}

func (OnResult) id() ElementID { return IDOnResult }

// Edit selects the edit-distance (Levenshtein) preset:
// match 0, mismatch -1, linear unit-cost gaps.
type Edit struct{}

func (Edit) id() ElementID { return IDEdit }

// Config is an immutable set of configuration elements. The zero
// value is a valid, empty configuration. Elements are retrieved by
// identity; combination order never affects semantics.
type Config struct {
	set uint16 // bitmask of present element IDs

	scoring  scoring.Scheme
	gap      scoring.GapScheme
	method   Method
	band     Band
	output   Output
	onResult func(result interface{})
}

// New builds a configuration from elements, failing on the first
// duplicate or incompatible pair.
func New(elems ...Element) (Config, error) {
	var c Config
	var err error
	for _, e := range elems {
		c, err = c.Combine(e)
		if err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

// Must is New without the error, for configuration literals.
// It panics on invalid combinations.
func Must(elems ...Element) Config {
	c, err := New(elems...)
	if err != nil {
		panic(err)
	}
	return c
}

// Combine returns a new configuration with e inserted. The receiver
// is not modified. Inserting an element whose ID is already present,
// or one excluded by an existing element, is a *ConfigError.
func (c Config) Combine(e Element) (Config, error) {
	id := e.id()
	if c.set&(1<<id) > 0 {
		return Config{}, newErrorf("duplicate element: %s", id)
	}
	if conflicts := c.set & incompatible[id] &^ (1 << id); conflicts > 0 {
		for other := ElementID(0); other < numElementIDs; other++ {
			if conflicts&(1<<other) > 0 {
				return Config{}, newErrorf("incompatible elements: %s and %s", other, id)
			}
		}
	}

	c.set |= 1 << id
	switch v := e.(type) {
	case Scoring:
		c.scoring = v.Scheme
	case Gap:
		c.gap = v.Scheme
	case Method:
		c.method = v
	case Band:
		c.band = v
	case Output:
		c.output = v
	case OnResult:
		c.onResult = v.Fn
	case Edit:
	}
	return c, nil
}

// Has reports whether an element of the given ID is present.
// An unset element is distinct from one set to its default value.
func (c Config) Has(id ElementID) bool {
	return c.set&(1<<id) > 0
}

// Scoring returns the configured substitution scheme, if any.
func (c Config) Scoring() (scoring.Scheme, bool) {
	return c.scoring, c.Has(IDScoring)
}

// Gap returns the configured gap scheme, if any.
func (c Config) Gap() (scoring.GapScheme, bool) {
	return c.gap, c.Has(IDGap)
}

// GapOr returns the configured gap scheme, or def when absent.
func (c Config) GapOr(def scoring.GapScheme) scoring.GapScheme {
	if c.Has(IDGap) {
		return c.gap
	}
	return def
}

// Method returns the configured alignment method, if any.
func (c Config) Method() (Method, bool) {
	return c.method, c.Has(IDMethod)
}

// MethodOr returns the configured method, or def when absent.
func (c Config) MethodOr(def Method) Method {
	if c.Has(IDMethod) {
		return c.method
	}
	return def
}

// Band returns the configured band, if any.
func (c Config) Band() (Band, bool) {
	return c.band, c.Has(IDBand)
}

// Output returns the configured output selection, if any.
func (c Config) Output() (Output, bool) {
	return c.output, c.Has(IDOutput)
}

// OutputOr returns the configured output selection, or def when absent.
func (c Config) OutputOr(def Output) Output {
	if c.Has(IDOutput) {
		return c.output
	}
	return def
}

// OnResult returns the configured result callback, if any.
func (c Config) OnResult() (func(result interface{}), bool) {
	return c.onResult, c.Has(IDOnResult)
}

// Edit reports whether the edit-distance preset is selected.
func (c Config) Edit() bool {
	return c.Has(IDEdit)
}

// EffectiveScoring resolves the substitution scheme, applying the
// edit preset when selected. A configuration with neither a scoring
// element nor the edit preset is invalid.
func (c Config) EffectiveScoring() (scoring.Scheme, error) {
	if c.Edit() {
		return scoring.MatchMismatch{Match: 0, Mismatch: -1}, nil
	}
	if s, ok := c.Scoring(); ok {
		return s, nil
	}
	return nil, newErrorf("no scoring scheme configured")
}

// EffectiveGap resolves the gap scheme, applying the edit preset
// when selected and the default linear scheme when absent.
func (c Config) EffectiveGap() scoring.GapScheme {
	if c.Edit() {
		return scoring.GapScheme{Extend: -1, Open: 0}
	}
	return c.GapOr(scoring.DefaultGapScheme)
}

// Validate checks the configuration against a concrete pair of
// sequence lengths: mandatory elements present and, if banded, the
// band geometry valid for the chosen method. len1 is the length of
// sequence 1 (columns), len2 of sequence 2 (rows).
func (c Config) Validate(len1, len2 int) error {
	if _, err := c.EffectiveScoring(); err != nil {
		return err
	}
	if b, ok := c.Band(); ok {
		if err := b.validate(len1, len2, c.MethodOr(Method{})); err != nil {
			return err
		}
	}
	return nil
}
