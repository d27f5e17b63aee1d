// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"errors"
	"testing"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

func TestResolveStructProducesOrderedChildren(t *testing.T) {
	data := NewData()
	st, err := NewStruct(bl.NoAlign(), []Child{
		{Name: "a", Type: u8(bl.NoAlign())},
		{Name: "b", Type: u32(bl.NoAlign())},
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	ctx := bl.New([]byte{0xFF, 0x01, 0x00, 0x00, 0x00})

	r, err := Resolve(st, ctx, nil, data)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.FieldName != nil {
		t.Errorf("root FieldName = %v, want nil", r.FieldName)
	}
	if len(r.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(r.Children))
	}
	if name := r.Children[0].FieldName; name == nil || *name != "a" {
		t.Errorf("Children[0].FieldName = %v, want \"a\"", name)
	}
	if name := r.Children[1].FieldName; name == nil || *name != "b" {
		t.Errorf("Children[1].FieldName = %v, want \"b\"", name)
	}
	if r.Children[0].AsInteger == nil || r.Children[0].AsInteger.String() != "255" {
		t.Errorf("Children[0].AsInteger = %v, want 255", r.Children[0].AsInteger)
	}
	if r.Children[1].AsInteger == nil || r.Children[1].AsInteger.String() != "1" {
		t.Errorf("Children[1].AsInteger = %v, want 1", r.Children[1].AsInteger)
	}
}

func TestResolveFollowsNamedReference(t *testing.T) {
	data := NewData()
	if _, err := data.WithType("byte", u8(bl.NoAlign())); err != nil {
		t.Fatalf("WithType: %v", err)
	}
	named, err := NewNamed("byte", data)
	if err != nil {
		t.Fatalf("NewNamed: %v", err)
	}

	r, err := Resolve(named, bl.New([]byte{0x2a}), nil, data)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Display != "42" {
		t.Errorf("Display = %q, want 42", r.Display)
	}
}

func TestResolveDetectsCyclicNamedChain(t *testing.T) {
	data := NewData()
	a, err := NewNamed("b", data)
	if err == nil {
		t.Fatal("expected an error registering a Named reference to an unregistered name")
	}
	_ = a

	// Register "a" and "b" pointing at each other.
	placeholder := u8(bl.NoAlign())
	if _, err := data.WithType("a", placeholder); err != nil {
		t.Fatalf("WithType(a): %v", err)
	}
	if _, err := data.WithType("b", placeholder); err != nil {
		t.Fatalf("WithType(b): %v", err)
	}
	aRef, err := NewNamed("b", data)
	if err != nil {
		t.Fatalf("NewNamed(b): %v", err)
	}
	bRef, err := NewNamed("a", data)
	if err != nil {
		t.Fatalf("NewNamed(a): %v", err)
	}
	data.types["a"] = aRef
	data.types["b"] = bRef

	root, err := NewNamed("a", data)
	if err != nil {
		t.Fatalf("NewNamed(a) root: %v", err)
	}

	_, err = Resolve(root, bl.New([]byte{0x01}), nil, data)
	if !errors.Is(err, bl.ErrCyclicReference) {
		t.Errorf("Resolve error = %v, want ErrCyclicReference", err)
	}
}

func TestResolveMaxDepthEnforced(t *testing.T) {
	data := NewData()
	inner, err := NewStruct(bl.NoAlign(), []Child{{Name: "leaf", Type: u8(bl.NoAlign())}})
	if err != nil {
		t.Fatalf("NewStruct(inner): %v", err)
	}
	outer, err := NewStruct(bl.NoAlign(), []Child{{Name: "nested", Type: inner}})
	if err != nil {
		t.Fatalf("NewStruct(outer): %v", err)
	}

	_, err = ResolveWithOptions(outer, bl.New([]byte{0x01}), nil, data, &bl.Options{MaxDepth: 1})
	if !errors.Is(err, bl.ErrCyclicReference) {
		t.Errorf("ResolveWithOptions error = %v, want a max-depth error wrapping ErrCyclicReference", err)
	}

	r, err := ResolveWithOptions(outer, bl.New([]byte{0x01}), nil, data, &bl.Options{MaxDepth: 2})
	if err != nil {
		t.Fatalf("ResolveWithOptions with sufficient depth: %v", err)
	}
	if len(r.Children) != 1 || len(r.Children[0].Children) != 1 {
		t.Fatalf("unexpected tree shape: %+v", r)
	}
}

func TestResolveMaxChildrenEnforced(t *testing.T) {
	data := NewData()
	arr, err := NewArray(bl.NoAlign(), u8(bl.NoAlign()), 5)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}

	_, err = ResolveWithOptions(arr, bl.New([]byte{1, 2, 3, 4, 5}), nil, data, &bl.Options{MaxChildren: 2})
	if err == nil {
		t.Fatal("expected an error when children exceed MaxChildren")
	}
}

// absenceOnErrorField is a minimal fieldType used only to exercise
// resolveNode's scalar-projection-error-becomes-absence policy: it
// reports CanBeInteger true but ToInteger always fails, while
// BaseSize/ToDisplay succeed independently of the underlying bytes.
type absenceOnErrorField struct {
	baseField
}

func (absenceOnErrorField) BaseSize(bl.Context, *Data) (uint64, error) { return 1, nil }
func (absenceOnErrorField) ToDisplay(bl.Context, *Data) (string, error) {
	return "opaque", nil
}
func (absenceOnErrorField) CanBeInteger() bool { return true }
func (absenceOnErrorField) ToInteger(bl.Context, *Data) (scalar.Integer, error) {
	return scalar.Integer{}, bl.ErrUnsupportedRender
}

func TestResolveScalarProjectionErrorBecomesAbsence(t *testing.T) {
	data := NewData()
	ty := newInline(bl.NoAlign(), absenceOnErrorField{})

	r, err := Resolve(ty, bl.New([]byte{0x00}), nil, data)
	if err != nil {
		t.Fatalf("Resolve should not surface a failed scalar projection as an error: %v", err)
	}
	if r.Display != "opaque" {
		t.Errorf("Display = %q, want opaque", r.Display)
	}
	if r.AsInteger != nil {
		t.Errorf("AsInteger = %v, want nil (ToInteger failed, so it must be absent, not propagated)", r.AsInteger)
	}
}
