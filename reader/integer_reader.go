// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package reader holds the three parametric scalar readers
// (IntegerReader, FloatReader, CharacterReader), grounded on
// original_source/generic-number/src/integer_reader.rs and
// character_reader.rs: small serializable descriptors that read one
// scalar from a bytelayout.Context.
package reader

import (
	"encoding/json"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// IntegerReader describes how to read one scalar.Integer: which width
// and, for multi-byte widths, which endian.
type IntegerReader struct {
	Kind   scalar.IntegerKind
	Endian bl.Endian
}

// NewIntegerReader builds an IntegerReader for kind, using endian for
// multi-byte widths (ignored for U8/I8).
func NewIntegerReader(kind scalar.IntegerKind, endian bl.Endian) IntegerReader {
	return IntegerReader{Kind: kind, Endian: endian}
}

// Read dispatches to the Context primitive matching r.Kind.
func (r IntegerReader) Read(ctx bl.Context) (scalar.Integer, error) {
	e := r.Endian
	switch r.Kind {
	case scalar.U8:
		v, err := ctx.ReadU8()
		return scalar.FromUint64(scalar.U8, uint64(v)), err
	case scalar.I8:
		v, err := ctx.ReadI8()
		return scalar.FromInt64(scalar.I8, int64(v)), err
	case scalar.U16:
		v, err := ctx.ReadU16(e)
		return scalar.FromUint64(scalar.U16, uint64(v)), err
	case scalar.I16:
		v, err := ctx.ReadI16(e)
		return scalar.FromInt64(scalar.I16, int64(v)), err
	case scalar.U24:
		v, err := ctx.ReadU24(e)
		return scalar.FromUint64(scalar.U24, uint64(v)), err
	case scalar.U32:
		v, err := ctx.ReadU32(e)
		return scalar.FromUint64(scalar.U32, uint64(v)), err
	case scalar.I32:
		v, err := ctx.ReadI32(e)
		return scalar.FromInt64(scalar.I32, int64(v)), err
	case scalar.U64, scalar.USize:
		v, err := ctx.ReadU64(e)
		return scalar.FromUint64(r.Kind, v), err
	case scalar.I64, scalar.ISize:
		v, err := ctx.ReadI64(e)
		return scalar.FromInt64(r.Kind, v), err
	case scalar.U128:
		v, err := ctx.ReadU128(e)
		if err != nil {
			return scalar.Integer{}, err
		}
		return scalar.FromBigInt(scalar.U128, v), nil
	case scalar.I128:
		v, err := ctx.ReadI128(e)
		if err != nil {
			return scalar.Integer{}, err
		}
		return scalar.FromBigInt(scalar.I128, v), nil
	default:
		return scalar.Integer{}, bl.ErrInvalidConfiguration
	}
}

// Size returns the reader's byte width. Every integer width is
// statically sized, so the bool is always true; it is kept for
// symmetry with FloatReader/CharacterReader's Size signature.
func (r IntegerReader) Size() (int, bool) {
	return r.Kind.ByteSize(), true
}

// CanBeUsize reports whether this reader's width can always be
// represented as a usize: true iff the width is unsigned and at most
// 64 bits, per the Open Question resolution in SPEC_FULL.md/DESIGN.md
// (this module targets a 64-bit usize). LPString validates its length
// prefix reader against this.
func (r IntegerReader) CanBeUsize() bool {
	return r.Kind.Unsigned() && r.Kind.Bits() <= 64
}

type integerReaderWire struct {
	Kind   string    `json:"kind"`
	Endian *bl.Endian `json:"endian,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r IntegerReader) MarshalJSON() ([]byte, error) {
	w := integerReaderWire{Kind: r.Kind.String()}
	if r.Kind.ByteSize() > 1 {
		e := r.Endian
		w.Endian = &e
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *IntegerReader) UnmarshalJSON(b []byte) error {
	var w integerReaderWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	kind, ok := integerKindFromString(w.Kind)
	if !ok {
		return bl.ErrInvalidConfiguration
	}
	r.Kind = kind
	if w.Endian != nil {
		r.Endian = *w.Endian
	}
	return nil
}

func integerKindFromString(s string) (scalar.IntegerKind, bool) {
	kinds := []scalar.IntegerKind{
		scalar.U8, scalar.U16, scalar.U24, scalar.U32, scalar.U64, scalar.U128, scalar.USize,
		scalar.I8, scalar.I16, scalar.I32, scalar.I64, scalar.ISize, scalar.I128,
	}
	for _, k := range kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
