// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"
	"strings"

	bl "github.com/saferwall/bytelayout"
)

// arrayField is the Array Type variant: a fixed count of one child
// Type laid out consecutively, grounded on
// original_source/h2datatype/src/composite/h2array.rs.
type arrayField struct {
	baseField
	Element Type
	Length  uint64
}

// NewArray builds an inline Array Type of length copies of element.
// Length must be > 0, per §7's InvalidConfiguration ("zero-length
// arrays... detected at construction").
func NewArray(alignment bl.Alignment, element Type, length uint64) (Type, error) {
	if length == 0 {
		return Type{}, fmt.Errorf("%w: array length must be > 0", bl.ErrInvalidConfiguration)
	}
	return newInline(alignment, arrayField{Element: element, Length: length}), nil
}

func (f arrayField) Children(bl.Context, *Data) ([]Child, error) {
	out := make([]Child, f.Length)
	for i := range out {
		out[i] = Child{Type: f.Element}
	}
	return out, nil
}

func (f arrayField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	return baseSizeFromChildren(fieldAsType(f), ctx, data)
}

func (f arrayField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	children, err := fieldAsType(f).childrenWithRange(ctx, data)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(children))
	for i, c := range children {
		s, err := c.Type.ToDisplay(ctx.At(c.Range.Start), data)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[ " + strings.Join(parts, ", ") + " ]", nil
}

// fieldAsType wraps a bare fieldType back into an unaligned Type so it
// can call through the shared childrenWithRange/BaseSize machinery on
// itself - every composite variant needs this one-line trick since the
// default layout helpers hang off Type, not the field.
func fieldAsType(f fieldType) Type {
	return newInline(bl.NoAlign(), f)
}

// structField is the Struct Type variant: an ordered, heterogeneous
// list of named children laid out consecutively, grounded on
// original_source/h2datatype/src/composite/h2struct.rs.
type structField struct {
	baseField
	Fields []Child
}

// NewStruct builds an inline Struct Type from an ordered field list.
// fields must be non-empty, per §7's "empty structs" InvalidConfiguration.
func NewStruct(alignment bl.Alignment, fields []Child) (Type, error) {
	if len(fields) == 0 {
		return Type{}, fmt.Errorf("%w: struct must have at least one field", bl.ErrInvalidConfiguration)
	}
	cp := make([]Child, len(fields))
	copy(cp, fields)
	return newInline(alignment, structField{Fields: cp}), nil
}

func (f structField) Children(bl.Context, *Data) ([]Child, error) {
	out := make([]Child, len(f.Fields))
	copy(out, f.Fields)
	return out, nil
}

func (f structField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	return baseSizeFromChildren(fieldAsType(f), ctx, data)
}

func (f structField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	children, err := fieldAsType(f).childrenWithRange(ctx, data)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(children))
	for i, c := range children {
		s, err := c.Type.ToDisplay(ctx.At(c.Range.Start), data)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("%s: %s", c.Name, s)
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}

// unionField is the Union Type variant: every child starts at the
// union's own offset, grounded on
// original_source/h2datatype/src/composite/h2union.rs (implied sibling
// of h2array/h2struct; spec.md §4.5 describes its layout directly).
type unionField struct {
	baseField
	Variants []Child
}

// NewUnion builds an inline Union Type from an ordered variant list.
func NewUnion(alignment bl.Alignment, variants []Child) (Type, error) {
	if len(variants) == 0 {
		return Type{}, fmt.Errorf("%w: union must have at least one variant", bl.ErrInvalidConfiguration)
	}
	cp := make([]Child, len(variants))
	copy(cp, variants)
	return newInline(alignment, unionField{Variants: cp}), nil
}

func (f unionField) Children(bl.Context, *Data) ([]Child, error) {
	out := make([]Child, len(f.Variants))
	copy(out, f.Variants)
	return out, nil
}

// childrenWithRange overrides the default consecutive layout: every
// variant is placed at the union's own start, per spec.md §4.5 ("Union
// child layout... Every child starts at the union's own start offset").
func (f unionField) childrenWithRange(ctx bl.Context, data *Data, children []Child) ([]rangedChild, error) {
	out := make([]rangedChild, 0, len(children))
	for _, c := range children {
		r, err := c.Type.AlignedRange(ctx, data)
		if err != nil {
			return nil, err
		}
		out = append(out, rangedChild{Range: r, Name: c.Name, Type: c.Type})
	}
	return out, nil
}

// BaseSize is the maximum of the variants' aligned sizes, per spec.md
// §4.5 ("unions take the maximum of variants' aligned sizes").
func (f unionField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	children, err := f.Children(ctx, data)
	if err != nil {
		return 0, err
	}
	var max uint64
	for _, c := range children {
		size, err := c.Type.AlignedSize(ctx, data)
		if err != nil {
			return 0, err
		}
		if size > max {
			max = size
		}
	}
	return max, nil
}

func (f unionField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	children, err := fieldAsType(f).childrenWithRange(ctx, data)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(children))
	for i, c := range children {
		s, err := c.Type.ToDisplay(ctx.At(c.Range.Start), data)
		if err != nil {
			return "", err
		}
		parts[i] = fmt.Sprintf("%s: %s", c.Name, s)
	}
	return "{ " + strings.Join(parts, " | ") + " }", nil
}
