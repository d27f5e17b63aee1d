// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package reader

import (
	"testing"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

var utf8ReaderTests = []struct {
	offset uint64
	wantR  rune
	wantN  int
}{
	{0, 'A', 1},
	{1, 'B', 1},
	{2, '❄', 3},
	{5, '☢', 3},
	{8, '𝄞', 4},
}

func TestCharacterReaderUTF8(t *testing.T) {
	data := []byte{0x41, 0x42, 0xE2, 0x9D, 0x84, 0xE2, 0x98, 0xA2, 0xF0, 0x9D, 0x84, 0x9E}
	ctx := bl.New(data)
	r := NewCharacterReader(UTF8, bl.Big)

	for _, tt := range utf8ReaderTests {
		c, err := r.Read(ctx.At(tt.offset))
		if err != nil {
			t.Fatalf("Read at %d failed: %v", tt.offset, err)
		}
		if c.Value != tt.wantR || c.ByteLength != tt.wantN {
			t.Errorf("Read at %d = (%q, %d), want (%q, %d)", tt.offset, c.Value, c.ByteLength, tt.wantR, tt.wantN)
		}
	}
}

func TestCharacterReaderASCIIHighByte(t *testing.T) {
	data := []byte{0xFF}
	r := NewCharacterReader(ASCII, bl.Big)
	c, err := r.Read(bl.New(data))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if c.Value != 0xFF || c.ByteLength != 1 {
		t.Errorf("Read(0xFF) = (%q, %d), want (U+00FF, 1)", c.Value, c.ByteLength)
	}
}

func TestIntegerReaderU32BigEndian(t *testing.T) {
	data := []byte{0x00, 0x00, 0x12, 0x34}
	r := NewIntegerReader(scalar.U32, bl.Big)
	v, err := r.Read(bl.New(data))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	got, err := v.Uint64()
	if err != nil {
		t.Fatalf("Uint64 failed: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("Read() = 0x%X, want 0x1234", got)
	}
}

func TestIntegerReaderCanBeUsize(t *testing.T) {
	tests := []struct {
		kind scalar.IntegerKind
		want bool
	}{
		{scalar.U8, true},
		{scalar.U64, true},
		{scalar.U128, false},
		{scalar.I32, false},
	}
	for _, tt := range tests {
		r := NewIntegerReader(tt.kind, bl.Big)
		if got := r.CanBeUsize(); got != tt.want {
			t.Errorf("CanBeUsize(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestFloatReaderRoundTrip(t *testing.T) {
	// IEEE-754 binary32 for 1.5 is 0x3FC00000.
	data := []byte{0x3F, 0xC0, 0x00, 0x00}
	r := NewFloatReader(scalar.F32, bl.Big)
	v, err := r.Read(bl.New(data))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if v.Float64() != 1.5 {
		t.Errorf("Read() = %v, want 1.5", v.Float64())
	}
}

func TestIntegerReaderJSONRoundTrip(t *testing.T) {
	r := NewIntegerReader(scalar.U16, bl.Little)
	b, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	var out IntegerReader
	if err := out.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if out.Kind != r.Kind || out.Endian != r.Endian {
		t.Errorf("round trip got %+v, want %+v", out, r)
	}
}
