// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package scalar

// Character is a decoded code point together with the number of bytes
// its source encoding consumed to produce it: 1 for ASCII, 1-4 for
// UTF-8, 2 or 4 for UTF-16, 4 for UTF-32. ByteLength always matches
// what the reader actually consumed, never a fixed assumption based on
// the encoding alone.
type Character struct {
	Value      rune
	ByteLength int
}

// NewCharacter builds a Character. ByteLength must be >= 1, per
// spec.md §3's invariant; callers (readers) are expected to supply the
// true consumed length.
func NewCharacter(value rune, byteLength int) Character {
	return Character{Value: value, ByteLength: byteLength}
}

// String returns the character as a one-rune Go string.
func (c Character) String() string {
	return string(c.Value)
}
