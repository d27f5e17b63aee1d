// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package scalar

import "math"

// FloatKind tags the concrete precision of a Float.
type FloatKind int

// Float precision variants.
const (
	F32 FloatKind = iota
	F64
)

// String implements fmt.Stringer.
func (k FloatKind) String() string {
	if k == F32 {
		return "f32"
	}
	return "f64"
}

// ByteSize returns the width in bytes.
func (k FloatKind) ByteSize() int {
	if k == F32 {
		return 4
	}
	return 8
}

// Float is a tagged F32/F64 value. The value is always stored as a
// float64; for F32, it is the widened form of a value that was
// already rounded to binary32 precision at read time.
type Float struct {
	Kind  FloatKind
	Value float64
}

// FromFloat32 builds an F32 Float.
func FromFloat32(v float32) Float {
	return Float{Kind: F32, Value: float64(v)}
}

// FromFloat64 builds an F64 Float.
func FromFloat64(v float64) Float {
	return Float{Kind: F64, Value: v}
}

// Size returns the Float's byte width.
func (f Float) Size() int {
	return f.Kind.ByteSize()
}

// IsNaN reports whether the Float's value is NaN. Per spec.md §3, NaN
// always renders as the literal string "NaN".
func (f Float) IsNaN() bool {
	return math.IsNaN(f.Value)
}

// Float32 narrows the Float to a float32 (lossy for F64 values outside
// binary32 range/precision; this is an explicit, never-failing
// narrowing, matching how display formatters treat floats).
func (f Float) Float32() float32 {
	return float32(f.Value)
}

// Float64 returns the Float's value as a float64.
func (f Float) Float64() float64 {
	return f.Value
}
