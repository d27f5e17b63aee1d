// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package reader

import (
	"encoding/json"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// CharacterEncoding tags which source encoding a CharacterReader
// decodes.
type CharacterEncoding int

// Supported character encodings.
const (
	ASCII CharacterEncoding = iota
	UTF8
	UTF16
	UTF32
)

func (e CharacterEncoding) String() string {
	switch e {
	case ASCII:
		return "ascii"
	case UTF8:
		return "utf8"
	case UTF16:
		return "utf16"
	case UTF32:
		return "utf32"
	default:
		return "unknown"
	}
}

// CharacterReader describes how to read one scalar.Character: which
// encoding and, for UTF16/UTF32, which endian (ASCII and UTF8 are
// endian-independent byte streams).
type CharacterReader struct {
	Encoding CharacterEncoding
	Endian   bl.Endian
}

// NewCharacterReader builds a CharacterReader. endian is ignored for
// ASCII/UTF8.
func NewCharacterReader(encoding CharacterEncoding, endian bl.Endian) CharacterReader {
	return CharacterReader{Encoding: encoding, Endian: endian}
}

// Read dispatches to the Context primitive matching r.Encoding.
func (r CharacterReader) Read(ctx bl.Context) (scalar.Character, error) {
	switch r.Encoding {
	case ASCII:
		v, n, err := ctx.ReadASCII()
		return scalar.NewCharacter(v, n), err
	case UTF8:
		v, n, err := ctx.ReadUTF8()
		return scalar.NewCharacter(v, n), err
	case UTF16:
		v, n, err := ctx.ReadUTF16(r.Endian)
		return scalar.NewCharacter(v, n), err
	case UTF32:
		v, err := ctx.ReadUTF32(r.Endian)
		return scalar.NewCharacter(v, 4), err
	default:
		return scalar.Character{}, bl.ErrInvalidConfiguration
	}
}

// Size returns the reader's byte width if statically known. ASCII is
// always 1 byte, UTF32 is always 4; UTF8/UTF16 are variable-width, so
// the bool is false and the caller must read to discover the size.
func (r CharacterReader) Size() (int, bool) {
	switch r.Encoding {
	case ASCII:
		return 1, true
	case UTF32:
		return 4, true
	default:
		return 0, false
	}
}

type characterReaderWire struct {
	Encoding string    `json:"encoding"`
	Endian   *bl.Endian `json:"endian,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r CharacterReader) MarshalJSON() ([]byte, error) {
	w := characterReaderWire{Encoding: r.Encoding.String()}
	if r.Encoding == UTF16 || r.Encoding == UTF32 {
		e := r.Endian
		w.Endian = &e
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CharacterReader) UnmarshalJSON(b []byte) error {
	var w characterReaderWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Encoding {
	case "ascii":
		r.Encoding = ASCII
	case "utf8":
		r.Encoding = UTF8
	case "utf16":
		r.Encoding = UTF16
	case "utf32":
		r.Encoding = UTF32
	default:
		return bl.ErrInvalidConfiguration
	}
	if w.Endian != nil {
		r.Endian = *w.Endian
	}
	return nil
}
