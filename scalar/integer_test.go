// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package scalar

import (
	"math/big"
	"testing"
)

var integerConversionTests = []struct {
	in      Integer
	wantU64 uint64
	wantErr bool
}{
	{FromUint64(U32, 1234), 1234, false},
	{FromInt64(I32, -1), 0, true},
	{FromUint64(U128, 1<<63), 1 << 63, false},
}

func TestIntegerUint64(t *testing.T) {
	for _, tt := range integerConversionTests {
		got, err := tt.in.Uint64()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Uint64(%v) got no error, want an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Uint64(%v) got error %v, want nil", tt.in, err)
			continue
		}
		if got != tt.wantU64 {
			t.Errorf("Uint64(%v) got %v, want %v", tt.in, got, tt.wantU64)
		}
	}
}

func TestIntegerSignedUnsigned(t *testing.T) {
	signedKinds := []IntegerKind{I8, I16, I32, I64, ISize, I128}
	for _, k := range signedKinds {
		if !k.Signed() {
			t.Errorf("%v.Signed() = false, want true", k)
		}
		if k.Unsigned() {
			t.Errorf("%v.Unsigned() = true, want false", k)
		}
	}

	unsignedKinds := []IntegerKind{U8, U16, U24, U32, U64, U128, USize}
	for _, k := range unsignedKinds {
		if k.Signed() {
			t.Errorf("%v.Signed() = true, want false", k)
		}
	}
}

func TestIntegerByteSize(t *testing.T) {
	tests := []struct {
		kind IntegerKind
		size int
	}{
		{U8, 1}, {I8, 1}, {U16, 2}, {I16, 2}, {U24, 3},
		{U32, 4}, {I32, 4}, {U64, 8}, {I64, 8}, {USize, 8}, {ISize, 8},
		{U128, 16}, {I128, 16},
	}
	for _, tt := range tests {
		if got := tt.kind.ByteSize(); got != tt.size {
			t.Errorf("%v.ByteSize() = %d, want %d", tt.kind, got, tt.size)
		}
	}
}

func TestFitsU24(t *testing.T) {
	if !Fits(U24, big.NewInt(0xFFFFFF)) {
		t.Errorf("Fits(U24, 0xFFFFFF) = false, want true")
	}
	if Fits(U24, big.NewInt(0x1000000)) {
		t.Errorf("Fits(U24, 0x1000000) = true, want false")
	}
}

func TestIntegerJSONRoundTrip(t *testing.T) {
	in := FromUint64(U128, 0)
	in.Value.SetString("340282366920938463463374607431768211455", 10) // max u128

	b, err := in.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var out Integer
	if err := out.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if out.Kind != in.Kind || out.Value.Cmp(in.Value) != 0 {
		t.Errorf("round trip got %v/%v, want %v/%v", out.Kind, out.Value, in.Kind, in.Value)
	}
}
