// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import "testing"

// FuzzBytes exercises Context.Bytes against arbitrary offsets and
// counts over arbitrary data: it must never panic, and a count that
// fits within the buffer must round-trip back the same byte slice.
func FuzzBytes(f *testing.F) {
	f.Add([]byte{}, uint64(0), uint64(0))
	f.Add([]byte{1, 2, 3, 4}, uint64(1), uint64(2))
	f.Add([]byte{1, 2, 3, 4}, uint64(10), uint64(1))

	f.Fuzz(func(t *testing.T, data []byte, offset, count uint64) {
		ctx := NewAt(data, offset)
		got, err := ctx.Bytes(count)
		if err != nil {
			return
		}
		if uint64(len(got)) != count {
			t.Fatalf("Bytes(%d) at offset %d returned %d bytes, want %d", count, offset, len(got), count)
		}
	})
}

// FuzzReadUTF8 checks that ReadUTF8 never panics and, when it
// succeeds, reports a byte size within the valid UTF-8 range.
func FuzzReadUTF8(f *testing.F) {
	f.Add([]byte{0x41})
	f.Add([]byte{0xE2, 0x9D, 0x84})
	f.Add([]byte{0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, size, err := New(data).ReadUTF8()
		if err != nil {
			return
		}
		if size < 1 || size > 4 {
			t.Fatalf("ReadUTF8 reported size %d outside [1,4]", size)
		}
	})
}
