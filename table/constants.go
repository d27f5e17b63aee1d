// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math/big"

	bl "github.com/saferwall/bytelayout"
)

// Constants is a name<->Integer table used for symbolic comparison;
// per spec.md §4.6, names must be unique but values need not be.
type Constants struct {
	byName map[string]*big.Int
}

// NewConstants returns an empty Constants table.
func NewConstants() *Constants {
	return &Constants{byName: map[string]*big.Int{}}
}

// LoadConstants builds a Constants table from ordered pairs, rejecting
// a repeated name.
func LoadConstants(pairs []NamedValue) (*Constants, error) {
	c := NewConstants()
	for _, p := range pairs {
		if _, exists := c.byName[p.Name]; exists {
			return nil, fmt.Errorf("%w: constant name %q", bl.ErrDuplicateEntry, p.Name)
		}
		v, err := ParseInteger(p.Value)
		if err != nil {
			return nil, fmt.Errorf("constant %q: %w", p.Name, err)
		}
		c.byName[p.Name] = v
	}
	return c, nil
}

// GetByName returns the Integer mapped to name, if any.
func (c *Constants) GetByName(name string) (*big.Int, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// MatchValue returns the name of a registered constant whose value
// equals v, if any. Iteration order over Go maps is randomized,
// so when multiple constants share a value (permitted, since values
// need not be unique) the returned name is not guaranteed stable
// across calls - acceptable for the display-hint use in
// datatype.Integer, where any matching name is informative.
func (c *Constants) MatchValue(v *big.Int) (string, bool) {
	for name, val := range c.byName {
		if val.Cmp(v) == 0 {
			return name, true
		}
	}
	return "", false
}

// Len returns the number of distinct names in the table.
func (c *Constants) Len() int {
	return len(c.byName)
}
