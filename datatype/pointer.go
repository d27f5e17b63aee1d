// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/reader"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
)

// pointerField is the Pointer Type variant supplemented from
// original_source/h2datatype/src/simple/h2pointer.rs per SPEC_FULL.md
// §5: spec.md §3/§4.5 call Resolved.related "non-empty only for
// pointer-like variants (future: pointer)" - this is that variant.
// Reading it yields an address (via Reader) and Related reports that
// address paired with Target, the same way the teacher's
// getSectionByRva/GetData resolve an RVA to section data.
type pointerField struct {
	baseField
	Reader   reader.IntegerReader
	Renderer render.IntegerRenderer
	Target   Type
}

// NewPointer builds an inline Pointer Type: reading it yields an
// address rendered via renderer, with Related reporting (address,
// target) so a consumer can follow the pointer elsewhere in the buffer.
func NewPointer(alignment bl.Alignment, r reader.IntegerReader, renderer render.IntegerRenderer, target Type) Type {
	return newInline(alignment, pointerField{Reader: r, Renderer: renderer, Target: target})
}

func (f pointerField) BaseSize(bl.Context, *Data) (uint64, error) {
	size, _ := f.Reader.Size()
	return uint64(size), nil
}

func (f pointerField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderInteger(v)
}

func (f pointerField) Related(ctx bl.Context, data *Data) ([]RelatedEntry, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	addr, err := v.Uint64()
	if err != nil {
		return nil, err
	}
	return []RelatedEntry{{Address: addr, Type: f.Target}}, nil
}

func (f pointerField) CanBeInteger() bool { return true }

func (f pointerField) ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error) {
	return f.Reader.Read(ctx)
}
