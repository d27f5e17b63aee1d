// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// fieldType is the per-variant behavior every concrete Type field
// implements, mirroring H2TypeTrait. baseField supplies the sane
// defaults h2typetrait.rs documents; a concrete field only overrides
// what it needs by defining its own method of the same name, which Go
// method promotion resolves ahead of the embedded default.
type fieldType interface {
	BaseSize(ctx bl.Context, data *Data) (uint64, error)
	ToDisplay(ctx bl.Context, data *Data) (string, error)
	Children(ctx bl.Context, data *Data) ([]Child, error)
	Related(ctx bl.Context, data *Data) ([]RelatedEntry, error)
	CanBeString() bool
	ToString(ctx bl.Context, data *Data) (string, error)
	CanBeInteger() bool
	ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error)
	CanBeFloat() bool
	ToFloat(ctx bl.Context, data *Data) (scalar.Float, error)
	CanBeCharacter() bool
	ToCharacter(ctx bl.Context, data *Data) (scalar.Character, error)
}

// Child is an unresolved (name, Type) pair as returned by a field's
// Children, before range placement.
type Child struct {
	Name string // empty for an unnamed child (e.g. an array element)
	Type Type
}

// RelatedEntry is an (address, Type) back-reference, populated only by
// pointer-like variants, per spec.md §4.2's "related" field.
type RelatedEntry struct {
	Address uint64 `json:"address"`
	Type    Type   `json:"type"`
}

// rangedChild is a Child placed at its aligned range within the
// parent, the shape children_with_range produces.
type rangedChild struct {
	Range bl.Range
	Name  string
	Type  Type
}

// Type is the core of the package: any type of value, described
// abstractly, mirroring H2Type/H2TypeType. A Type is either an inline
// field (a concrete variant constructed by one of the New* functions
// in this package) or a reference to a name registered in a Data
// registry. Either way it carries its own Alignment, applied as an
// outer layer around whatever the field ultimately resolves to.
type Type struct {
	alignment bl.Alignment
	named     string
	field     fieldType
}

func newInline(alignment bl.Alignment, field fieldType) Type {
	return Type{alignment: alignment, field: field}
}

// NewNamedAligned builds a Type that refers to a name registered in
// data, with its own alignment.
func NewNamedAligned(alignment bl.Alignment, name string, data *Data) (Type, error) {
	if !data.HasType(name) {
		return Type{}, fmt.Errorf("%w: %s", bl.ErrNameNotFound, name)
	}
	return Type{alignment: alignment, named: name}, nil
}

// NewNamed builds an unaligned named-reference Type.
func NewNamed(name string, data *Data) (Type, error) {
	return NewNamedAligned(bl.NoAlign(), name, data)
}

// resolvedField walks through any chain of Named references down to
// the terminal inline field, detecting cycles along the way per
// spec.md §4.5's "Named-type resolution".
func (t Type) resolvedField(data *Data) (fieldType, error) {
	visited := map[string]bool{}
	cur := t
	for cur.named != "" {
		if visited[cur.named] {
			return nil, bl.ErrCyclicReference
		}
		visited[cur.named] = true
		next, ok := data.GetType(cur.named)
		if !ok {
			return nil, bl.ErrNameNotFound
		}
		cur = next
	}
	if cur.field == nil {
		return nil, fmt.Errorf("%w: empty type", bl.ErrInvalidConfiguration)
	}
	return cur.field, nil
}

// BaseSize is the size, in bytes, of just the field - no alignment.
func (t Type) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return 0, err
	}
	return f.BaseSize(ctx, data)
}

// BaseRange is the byte range the type covers with no padding.
func (t Type) BaseRange(ctx bl.Context, data *Data) (bl.Range, error) {
	size, err := t.BaseSize(ctx, data)
	if err != nil {
		return bl.Range{}, err
	}
	start := ctx.Offset()
	return bl.Range{Start: start, End: start + size}, nil
}

// AlignedRange is the byte range the type covers once its own
// alignment is applied around BaseRange.
func (t Type) AlignedRange(ctx bl.Context, data *Data) (bl.Range, error) {
	base, err := t.BaseRange(ctx, data)
	if err != nil {
		return bl.Range{}, err
	}
	return t.alignment.Align(base)
}

// AlignedSize is the length of AlignedRange.
func (t Type) AlignedSize(ctx bl.Context, data *Data) (uint64, error) {
	r, err := t.AlignedRange(ctx, data)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// Children returns the unresolved (name, Type) pairs that make up this
// type. Leaf variants return none.
func (t Type) Children(ctx bl.Context, data *Data) ([]Child, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return nil, err
	}
	return f.Children(ctx, data)
}

// childrenWithRange places each child at its aligned range, advancing
// a running context from each child's end to the next child's start -
// the default consecutive layout spec.md §4.5 describes for arrays
// and structs. Union overrides this (every child starts at the
// union's own start) by implementing its own childrenWithRange.
func (t Type) childrenWithRange(ctx bl.Context, data *Data) ([]rangedChild, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return nil, err
	}
	children, err := f.Children(ctx, data)
	if err != nil {
		return nil, err
	}

	if cwr, ok := f.(interface {
		childrenWithRange(ctx bl.Context, data *Data, children []Child) ([]rangedChild, error)
	}); ok {
		return cwr.childrenWithRange(ctx, data, children)
	}

	childCtx := ctx
	out := make([]rangedChild, 0, len(children))
	for _, c := range children {
		r, err := c.Type.AlignedRange(childCtx, data)
		if err != nil {
			return nil, err
		}
		out = append(out, rangedChild{Range: r, Name: c.Name, Type: c.Type})
		childCtx = ctx.At(r.End)
	}
	return out, nil
}

// Related returns pointer-like back-references: (address, Type) pairs
// for whatever this type points to. Every other variant returns none.
func (t Type) Related(ctx bl.Context, data *Data) ([]RelatedEntry, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return nil, err
	}
	return f.Related(ctx, data)
}

// ToDisplay renders the type's user-facing string form.
func (t Type) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return "", err
	}
	return f.ToDisplay(ctx, data)
}

// CanBeString reports whether ToString is expected to succeed.
func (t Type) CanBeString(data *Data) (bool, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return false, err
	}
	return f.CanBeString(), nil
}

// ToString converts the type to a String, if its variant supports it.
func (t Type) ToString(ctx bl.Context, data *Data) (string, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return "", err
	}
	return f.ToString(ctx, data)
}

// CanBeInteger reports whether ToInteger is expected to succeed.
func (t Type) CanBeInteger(data *Data) (bool, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return false, err
	}
	return f.CanBeInteger(), nil
}

// ToInteger converts the type to an Integer, if its variant supports it.
func (t Type) ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return scalar.Integer{}, err
	}
	return f.ToInteger(ctx, data)
}

// CanBeFloat reports whether ToFloat is expected to succeed.
func (t Type) CanBeFloat(data *Data) (bool, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return false, err
	}
	return f.CanBeFloat(), nil
}

// ToFloat converts the type to a Float, if its variant supports it.
func (t Type) ToFloat(ctx bl.Context, data *Data) (scalar.Float, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return scalar.Float{}, err
	}
	return f.ToFloat(ctx, data)
}

// CanBeCharacter reports whether ToCharacter is expected to succeed.
func (t Type) CanBeCharacter(data *Data) (bool, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return false, err
	}
	return f.CanBeCharacter(), nil
}

// ToCharacter converts the type to a Character, if its variant supports it.
func (t Type) ToCharacter(ctx bl.Context, data *Data) (scalar.Character, error) {
	f, err := t.resolvedField(data)
	if err != nil {
		return scalar.Character{}, err
	}
	return f.ToCharacter(ctx, data)
}

// baseField supplies the default H2TypeTrait behavior: no children, no
// related entries, and every scalar conversion reports "unsupported".
// Concrete variants embed this and override only what applies to them.
type baseField struct{}

func (baseField) Children(bl.Context, *Data) ([]Child, error)          { return nil, nil }
func (baseField) Related(bl.Context, *Data) ([]RelatedEntry, error)    { return nil, nil }
func (baseField) CanBeString() bool                                     { return false }
func (baseField) ToString(bl.Context, *Data) (string, error)            { return "", bl.ErrUnsupportedRender }
func (baseField) CanBeInteger() bool                                    { return false }
func (baseField) ToInteger(bl.Context, *Data) (scalar.Integer, error)   { return scalar.Integer{}, bl.ErrUnsupportedRender }
func (baseField) CanBeFloat() bool                                      { return false }
func (baseField) ToFloat(bl.Context, *Data) (scalar.Float, error)       { return scalar.Float{}, bl.ErrUnsupportedRender }
func (baseField) CanBeCharacter() bool                                  { return false }
func (baseField) ToCharacter(bl.Context, *Data) (scalar.Character, error) {
	return scalar.Character{}, bl.ErrUnsupportedRender
}

// baseSizeFromChildren is the default BaseSize h2typetrait.rs documents
// for composite types whose children fully cover their range: the
// first child's start to the last child's end. Leaf variants (numeric,
// network, misc) always implement their own BaseSize instead.
func baseSizeFromChildren(t Type, ctx bl.Context, data *Data) (uint64, error) {
	children, err := t.childrenWithRange(ctx, data)
	if err != nil {
		return 0, err
	}
	if len(children) == 0 {
		return 0, fmt.Errorf("%w: can't calculate size with no child types", bl.ErrInvalidConfiguration)
	}
	first := children[0].Range
	last := children[len(children)-1].Range
	return last.End - first.Start, nil
}
