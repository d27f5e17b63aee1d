// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package datatype holds the Type algebra described in spec.md §4:
// primitive, composite (array/struct/union), string (fixed/NUL-
// terminated/length-prefixed), network (IPv4/6, MAC-48/64), misc
// (UUID, RGB, Blob, PKCS7Blob, Pointer), and Named(name) references
// resolved through a Data registry, grounded on
// original_source/h2datatype/src/h2type.rs's H2Type/H2TypeType and
// h2typetrait.rs's H2TypeTrait.
package datatype

import (
	"fmt"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/table"
)

// Data is the read-only registry a Named Type dereferences through,
// and the home for the auxiliary Enums/Bitmasks/Constants tables that
// Enum/Bitmask field rendering consults. It is built once (via
// NewData/WithType/WithEnums/...) and then shared read-only across
// every resolve call, matching spec.md §4.6 and §5's "safe to call
// from multiple threads provided each holds its own Context" model:
// Data itself is never mutated after construction.
type Data struct {
	types     map[string]Type
	enums     map[string]*table.Enums
	bitmasks  map[string]*table.Bitmasks
	constants map[string]*table.Constants
}

// NewData returns an empty registry.
func NewData() *Data {
	return &Data{
		types:     map[string]Type{},
		enums:     map[string]*table.Enums{},
		bitmasks:  map[string]*table.Bitmasks{},
		constants: map[string]*table.Constants{},
	}
}

// WithType registers a named Type, returning an error if the name is
// already taken (registries are append-only by construction).
func (d *Data) WithType(name string, t Type) (*Data, error) {
	if _, exists := d.types[name]; exists {
		return d, fmt.Errorf("%w: type %q", bl.ErrDuplicateEntry, name)
	}
	d.types[name] = t
	return d, nil
}

// HasType reports whether name is registered.
func (d *Data) HasType(name string) bool {
	_, ok := d.types[name]
	return ok
}

// GetType returns the Type registered under name.
func (d *Data) GetType(name string) (Type, bool) {
	t, ok := d.types[name]
	return t, ok
}

// WithEnums registers an Enums table under name.
func (d *Data) WithEnums(name string, e *table.Enums) *Data {
	d.enums[name] = e
	return d
}

// GetEnums returns the Enums table registered under name.
func (d *Data) GetEnums(name string) (*table.Enums, bool) {
	e, ok := d.enums[name]
	return e, ok
}

// WithBitmasks registers a Bitmasks table under name.
func (d *Data) WithBitmasks(name string, b *table.Bitmasks) *Data {
	d.bitmasks[name] = b
	return d
}

// GetBitmasks returns the Bitmasks table registered under name.
func (d *Data) GetBitmasks(name string) (*table.Bitmasks, bool) {
	b, ok := d.bitmasks[name]
	return b, ok
}

// WithConstants registers a Constants table under name.
func (d *Data) WithConstants(name string, c *table.Constants) *Data {
	d.constants[name] = c
	return d
}

// GetConstants returns the Constants table registered under name.
func (d *Data) GetConstants(name string) (*table.Constants, bool) {
	c, ok := d.constants[name]
	return c, ok
}
