// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
)

// Bitmasks is a name<->bit_position table consulted when rendering a
// Bitmask Type, grounded on
// original_source/h2datatype/src/data/bitmasks.rs.
type Bitmasks struct {
	byName     map[string]uint8
	byPosition map[uint8]string

	hasUnknown      bool
	unknownPrefix   string
	unknownRenderer render.IntegerRenderer
}

// NewBitmasks returns an empty Bitmasks table.
func NewBitmasks() *Bitmasks {
	return &Bitmasks{byName: map[string]uint8{}, byPosition: map[uint8]string{}}
}

// LoadBitmasks builds a Bitmasks table from ordered pairs, rejecting a
// repeated name, a repeated position, or a position outside [0, 128).
func LoadBitmasks(pairs []NamedValue) (*Bitmasks, error) {
	b := NewBitmasks()
	for _, p := range pairs {
		if _, exists := b.byName[p.Name]; exists {
			return nil, fmt.Errorf("%w: bitmask name %q", bl.ErrDuplicateEntry, p.Name)
		}

		v, err := ParseInteger(p.Value)
		if err != nil {
			return nil, fmt.Errorf("bitmask %q: %w", p.Name, err)
		}
		if v.Sign() < 0 || v.Cmp(big.NewInt(127)) > 0 {
			return nil, fmt.Errorf("%w: bitmask position %s out of range [0,127]", bl.ErrInvalidConfiguration, v.String())
		}
		position := uint8(v.Uint64())

		if _, exists := b.byPosition[position]; exists {
			return nil, fmt.Errorf("%w: bitmask position %d", bl.ErrDuplicateEntry, position)
		}

		b.byName[p.Name] = position
		b.byPosition[position] = p.Name
	}
	return b, nil
}

// SetUnknownRenderer configures how a set bit with no mapped name is
// rendered: prefix + r.RenderInteger(1 << position). Call
// ClearUnknownRenderer to go back to silently dropping unmapped bits.
func (b *Bitmasks) SetUnknownRenderer(prefix string, r render.IntegerRenderer) {
	b.hasUnknown = true
	b.unknownPrefix = prefix
	b.unknownRenderer = r
}

// ClearUnknownRenderer disables the fallback for unmapped bits.
func (b *Bitmasks) ClearUnknownRenderer() {
	b.hasUnknown = false
	b.unknownRenderer = nil
}

// GetByName returns the bit position mapped to name, if any.
func (b *Bitmasks) GetByName(name string) (int, bool) {
	pos, ok := b.byName[name]
	return int(pos), ok
}

// GetByValue iterates bit positions 0..127 in ascending order and, for
// each set bit, appends the mapped name or, if an unknown-bit renderer
// is configured, prefix+render(1<<position).
func (b *Bitmasks) GetByValue(v *big.Int) ([]string, error) {
	var out []string
	for pos := 0; pos < 128; pos++ {
		if v.Bit(pos) == 0 {
			continue
		}
		if name, ok := b.byPosition[uint8(pos)]; ok {
			out = append(out, name)
			continue
		}
		if !b.hasUnknown {
			continue
		}
		bit := new(big.Int).Lsh(big.NewInt(1), uint(pos))
		rendered, err := b.unknownRenderer.RenderInteger(scalar.FromBigInt(scalar.U128, bit))
		if err != nil {
			return nil, err
		}
		out = append(out, b.unknownPrefix+rendered)
	}
	return out, nil
}

// Len returns the number of distinct names in the table.
func (b *Bitmasks) Len() int {
	return len(b.byName)
}

// Entries returns every (name, position) pair in the table, sorted by
// name, for a collaborator that wants to list the whole table (e.g.
// bltable's `bitmasks show`).
func (b *Bitmasks) Entries() []NamedValue {
	out := make([]NamedValue, 0, len(b.byName))
	for name, pos := range b.byName {
		out = append(out, NamedValue{Name: name, Value: strconv.Itoa(int(pos))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
