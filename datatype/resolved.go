// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// Resolved is the flattened, fully-evaluated snapshot of a Type at a
// given Context, per spec.md §3 "Resolved". It is an output-only
// value: spec.md §6 notes it "need not round-trip", but it still
// carries json tags for debugging/snapshotting per SPEC_FULL.md §1.
type Resolved struct {
	// BaseRange is the byte range the field actually occupies, with no
	// padding.
	BaseRange bl.Range `json:"base_range"`

	// AlignedRange is BaseRange after the type's own alignment is
	// applied; BaseRange is always contained within it.
	AlignedRange bl.Range `json:"aligned_range"`

	// FieldName is set by a parent struct/union for its named children;
	// nil for an unnamed field (array elements, the resolution root).
	FieldName *string `json:"field_name,omitempty"`

	// Display is the rendered text form of the field.
	Display string `json:"display"`

	// Children is the ordered, depth-first list of this field's
	// resolved children. Empty for leaf variants.
	Children []Resolved `json:"children,omitempty"`

	// Related holds pointer-like back-references: (address, Type) pairs
	// this field points to elsewhere in the buffer. Empty for every
	// variant except Pointer.
	Related []RelatedEntry `json:"related,omitempty"`

	// AsInteger/AsFloat/AsCharacter/AsString are scalar projections,
	// present only when meaningful for the variant; a failed conversion
	// yields absence (nil), never an error, per spec.md §7's "scalar
	// projections... convert an error into absence" propagation policy.
	AsInteger   *scalar.Integer   `json:"as_integer,omitempty"`
	AsFloat     *scalar.Float     `json:"as_float,omitempty"`
	AsCharacter *scalar.Character `json:"as_character,omitempty"`
	AsString    *string           `json:"as_string,omitempty"`
}
