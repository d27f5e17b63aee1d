// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package scalar holds the tagged scalar variants (Integer, Float,
// Character) that readers produce and formatters render, grounded on
// original_source/h2datatype/src/simple/numeric/{h2integer,h2float}.rs
// and expressed, per spec.md §9, as a Go tagged union (a Kind field
// plus an exhaustively-switched payload) rather than a trait
// hierarchy.
package scalar

import (
	"errors"
	"math/big"
)

// ErrOverflow is returned by a numeric conversion that cannot
// represent the Integer's value in the requested Go type.
var ErrOverflow = errors.New("scalar: integer overflow in conversion")

// ErrIncompatibleConversion is returned when a conversion is
// structurally invalid regardless of value, e.g. asking a signed
// Integer for its unsigned magnitude without an explicit cast, or
// converting between unrelated families.
var ErrIncompatibleConversion = errors.New("scalar: incompatible conversion")

// IntegerKind tags the concrete width/signedness of an Integer.
//
// Per SPEC_FULL.md §4.3 this module supports I128 symmetrically with
// U128 (the "support all widths everywhere" resolution of spec.md §9's
// open question), rather than omitting it from some operations the way
// the original source did.
type IntegerKind int

// Integer width/signedness variants.
const (
	U8 IntegerKind = iota
	U16
	U24
	U32
	U64
	U128
	USize
	I8
	I16
	I32
	I64
	ISize
	I128
)

var integerKindNames = map[IntegerKind]string{
	U8: "u8", U16: "u16", U24: "u24", U32: "u32", U64: "u64", U128: "u128", USize: "usize",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", ISize: "isize", I128: "i128",
}

// String implements fmt.Stringer.
func (k IntegerKind) String() string {
	if s, ok := integerKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ByteSize returns the number of bytes the width occupies. USize/ISize
// are treated as 64-bit, per the Open Question resolution recorded in
// DESIGN.md.
func (k IntegerKind) ByteSize() int {
	switch k {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U24:
		return 3
	case U32, I32:
		return 4
	case U64, I64, USize, ISize:
		return 8
	case U128, I128:
		return 16
	default:
		return 0
	}
}

// Bits returns the bit width (ByteSize * 8).
func (k IntegerKind) Bits() int {
	return k.ByteSize() * 8
}

// Signed reports whether the width is a signed integer.
func (k IntegerKind) Signed() bool {
	switch k {
	case I8, I16, I32, I64, ISize, I128:
		return true
	default:
		return false
	}
}

// Unsigned reports whether the width is an unsigned integer.
func (k IntegerKind) Unsigned() bool {
	return !k.Signed()
}

// Integer is a tagged union over the widths in IntegerKind. Value
// always holds the integer's true mathematical value (negative for a
// negative signed integer), never a raw two's-complement bit pattern;
// readers are responsible for the two's-complement -> value
// conversion at read time.
type Integer struct {
	Kind  IntegerKind
	Value *big.Int
}

// FromInt64 builds an Integer of the given kind from a Go int64.
func FromInt64(kind IntegerKind, v int64) Integer {
	return Integer{Kind: kind, Value: big.NewInt(v)}
}

// FromUint64 builds an Integer of the given kind from a Go uint64.
func FromUint64(kind IntegerKind, v uint64) Integer {
	return Integer{Kind: kind, Value: new(big.Int).SetUint64(v)}
}

// FromBigInt builds an Integer of the given kind from an existing
// big.Int, taking ownership of it (callers should not mutate it
// afterwards).
func FromBigInt(kind IntegerKind, v *big.Int) Integer {
	return Integer{Kind: kind, Value: v}
}

// Size returns the Integer's byte width.
func (i Integer) Size() int {
	return i.Kind.ByteSize()
}

// IsNegative reports whether the Integer's value is negative.
func (i Integer) IsNegative() bool {
	return i.Value.Sign() < 0
}

// Int64 converts the Integer to an int64, failing ErrOverflow if the
// value doesn't fit.
func (i Integer) Int64() (int64, error) {
	if !i.Value.IsInt64() {
		return 0, ErrOverflow
	}
	return i.Value.Int64(), nil
}

// Uint64 converts the Integer to a uint64. Fails ErrIncompatibleConversion
// if the value is negative (signed variants cannot convert to unsigned
// without an explicit fallible cast, per spec.md §3), and ErrOverflow
// if it doesn't otherwise fit.
func (i Integer) Uint64() (uint64, error) {
	if i.IsNegative() {
		return 0, ErrIncompatibleConversion
	}
	if !i.Value.IsUint64() {
		return 0, ErrOverflow
	}
	return i.Value.Uint64(), nil
}

// BigInt returns the Integer's exact value. The returned pointer must
// not be mutated by the caller.
func (i Integer) BigInt() *big.Int {
	return i.Value
}

// Float64 returns the nearest float64 to the Integer's value, for use
// by formatters/conversions that need a floating approximation (e.g.
// scientific notation). This conversion is lossy for very large
// magnitudes and never fails.
func (i Integer) Float64() float64 {
	f := new(big.Float).SetInt(i.Value)
	v, _ := f.Float64()
	return v
}

// String renders the Integer in base 10, the canonical form Default
// formatting delegates to.
func (i Integer) String() string {
	return i.Value.String()
}

// MaxValue returns the largest value representable by kind.
func MaxValue(kind IntegerKind) *big.Int {
	bits := kind.Bits()
	if kind.Signed() {
		max := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		return max.Sub(max, big.NewInt(1))
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return max.Sub(max, big.NewInt(1))
}

// MinValue returns the smallest value representable by kind.
func MinValue(kind IntegerKind) *big.Int {
	if !kind.Signed() {
		return big.NewInt(0)
	}
	bits := kind.Bits()
	min := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	return min.Neg(min)
}

// Fits reports whether v fits within the range representable by kind,
// without altering v.
func Fits(kind IntegerKind, v *big.Int) bool {
	return v.Cmp(MinValue(kind)) >= 0 && v.Cmp(MaxValue(kind)) <= 0
}
