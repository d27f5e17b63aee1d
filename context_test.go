// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import "testing"

// TestReadUTF8Sequence is scenario S1 from spec.md §8: successive UTF-8
// reads at offsets 0, 1, 2, 5, 8 over a mixed ASCII/multi-byte buffer.
func TestReadUTF8Sequence(t *testing.T) {
	data := []byte{0x41, 0x42, 0xE2, 0x9D, 0x84, 0xE2, 0x98, 0xA2, 0xF0, 0x9D, 0x84, 0x9E}
	c := New(data)

	tests := []struct {
		offset   uint64
		wantR    rune
		wantSize int
	}{
		{0, 'A', 1},
		{1, 'B', 1},
		{2, '❄', 3},
		{5, '☢', 3},
		{8, '𝄞', 4},
	}

	for _, tt := range tests {
		r, size, err := c.At(tt.offset).ReadUTF8()
		if err != nil {
			t.Fatalf("ReadUTF8 at %d failed: %v", tt.offset, err)
		}
		if r != tt.wantR || size != tt.wantSize {
			t.Errorf("ReadUTF8 at %d = (%q, %d), want (%q, %d)", tt.offset, r, size, tt.wantR, tt.wantSize)
		}
	}
}

func TestReadU24(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		endian Endian
		want   uint32
	}{
		{"big endian", []byte{0xAA, 0xBB, 0xCC}, Big, 0x00AABBCC},
		{"little endian", []byte{0xCC, 0xBB, 0xAA}, Little, 0x00AABBCC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.data).ReadU24(tt.endian)
			if err != nil {
				t.Fatalf("ReadU24 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU24(%v) = 0x%06X, want 0x%06X", tt.endian, got, tt.want)
			}
		})
	}
}

func TestReadOutOfRange(t *testing.T) {
	c := New([]byte{0x01, 0x02})
	if _, err := c.ReadU32(Big); err != ErrReadOutOfRange {
		t.Errorf("ReadU32 on 2-byte buffer got err %v, want ErrReadOutOfRange", err)
	}
}

func TestReadUTF16SurrogatePair(t *testing.T) {
	// Big-endian: 'A' single unit, then a surrogate pair for 𝄞 (U+1D11E).
	data := []byte{0x00, 0x41, 0xD8, 0x34, 0xDD, 0x1E}
	c := New(data)

	r, n, err := c.ReadUTF16(Big)
	if err != nil {
		t.Fatalf("ReadUTF16 failed: %v", err)
	}
	if r != 'A' || n != 2 {
		t.Errorf("ReadUTF16 at 0 = (%q, %d), want ('A', 2)", r, n)
	}

	r, n, err = c.At(2).ReadUTF16(Big)
	if err != nil {
		t.Fatalf("ReadUTF16 surrogate pair failed: %v", err)
	}
	if r != '𝄞' || n != 4 {
		t.Errorf("ReadUTF16 at 2 = (%q, %d), want ('𝄞', 4)", r, n)
	}
}

func TestReadUTF16LoneLowSurrogate(t *testing.T) {
	data := []byte{0xDC, 0x00}
	_, _, err := New(data).ReadUTF16(Big)
	if err != ErrInvalidEncoding {
		t.Errorf("ReadUTF16 lone low surrogate got %v, want ErrInvalidEncoding", err)
	}
}

func TestReadUTF32InvalidScalar(t *testing.T) {
	// 0x0000D800 is in the surrogate range.
	data := []byte{0x00, 0x00, 0xD8, 0x00}
	_, err := New(data).ReadUTF32(Big)
	if err != ErrInvalidEncoding {
		t.Errorf("ReadUTF32 surrogate value got %v, want ErrInvalidEncoding", err)
	}
}

func TestAlignmentLoose(t *testing.T) {
	tests := []struct {
		r    Range
		m    uint64
		want Range
	}{
		{Range{0, 0}, 0, Range{0, 0}},
		{Range{0, 0}, 4, Range{0, 0}},
		{Range{0, 1}, 4, Range{0, 4}},
		{Range{1, 3}, 4, Range{1, 5}},
		{Range{5, 5}, 4, Range{5, 5}},
	}
	for _, tt := range tests {
		got, err := LooseAlign(tt.m).Align(tt.r)
		if err != nil {
			t.Fatalf("Align(%v, Loose(%d)) failed: %v", tt.r, tt.m, err)
		}
		if got != tt.want {
			t.Errorf("Align(%v, Loose(%d)) = %v, want %v", tt.r, tt.m, got, tt.want)
		}
	}
}

func TestAlignmentStrictViolation(t *testing.T) {
	_, err := StrictAlign(4).Align(Range{1, 5})
	if err != ErrAlignmentViolation {
		t.Errorf("Align(1..5, Strict(4)) got %v, want ErrAlignmentViolation", err)
	}

	got, err := StrictAlign(4).Align(Range{4, 5})
	if err != nil {
		t.Fatalf("Align(4..5, Strict(4)) failed: %v", err)
	}
	if got != (Range{4, 8}) {
		t.Errorf("Align(4..5, Strict(4)) = %v, want {4 8}", got)
	}
}
