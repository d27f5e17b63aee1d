// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math/big"
	"sort"

	bl "github.com/saferwall/bytelayout"
)

// Enums is a name<->Integer table consulted when rendering an Enum
// Type, grounded on the bitmasks.rs/data_trait.rs shape in
// original_source/h2datatype/src/data. Lookup by value can return more
// than one name: spec.md §4.6 permits duplicate values by design.
type Enums struct {
	byName  map[string]*big.Int
	byValue map[string][]string // keyed by the value's canonical decimal string
}

// NewEnums returns an empty Enums table.
func NewEnums() *Enums {
	return &Enums{byName: map[string]*big.Int{}, byValue: map[string][]string{}}
}

// LoadEnums builds an Enums table from ordered pairs, rejecting a
// repeated name.
func LoadEnums(pairs []NamedValue) (*Enums, error) {
	e := NewEnums()
	for _, p := range pairs {
		if _, exists := e.byName[p.Name]; exists {
			return nil, fmt.Errorf("%w: enum name %q", bl.ErrDuplicateEntry, p.Name)
		}
		v, err := ParseInteger(p.Value)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", p.Name, err)
		}
		e.byName[p.Name] = v
		key := v.String()
		e.byValue[key] = append(e.byValue[key], p.Name)
	}
	return e, nil
}

// GetByName returns the Integer mapped to name, if any.
func (e *Enums) GetByName(name string) (*big.Int, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// GetByValue returns every name mapped to v, in insertion order. A
// value with no matching name returns an empty slice.
func (e *Enums) GetByValue(v *big.Int) []string {
	names := e.byValue[v.String()]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Len returns the number of distinct names in the table.
func (e *Enums) Len() int {
	return len(e.byName)
}

// Entries returns every (name, value) pair in the table, sorted by
// name, for a collaborator that wants to list the whole table rather
// than look up a single name or value (e.g. bltable's `enums show`).
func (e *Enums) Entries() []NamedValue {
	out := make([]NamedValue, 0, len(e.byName))
	for name, v := range e.byName {
		out = append(out, NamedValue{Name: name, Value: v.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
