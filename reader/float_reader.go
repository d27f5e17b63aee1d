// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package reader

import (
	"encoding/json"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// FloatReader describes how to read one scalar.Float.
type FloatReader struct {
	Kind   scalar.FloatKind
	Endian bl.Endian
}

// NewFloatReader builds a FloatReader for kind and endian.
func NewFloatReader(kind scalar.FloatKind, endian bl.Endian) FloatReader {
	return FloatReader{Kind: kind, Endian: endian}
}

// Read dispatches to the Context primitive matching r.Kind.
func (r FloatReader) Read(ctx bl.Context) (scalar.Float, error) {
	switch r.Kind {
	case scalar.F32:
		v, err := ctx.ReadF32(r.Endian)
		return scalar.FromFloat32(v), err
	case scalar.F64:
		v, err := ctx.ReadF64(r.Endian)
		return scalar.FromFloat64(v), err
	default:
		return scalar.Float{}, bl.ErrInvalidConfiguration
	}
}

// Size returns the reader's byte width. Floats are always statically
// sized.
func (r FloatReader) Size() (int, bool) {
	return r.Kind.ByteSize(), true
}

type floatReaderWire struct {
	Kind   string   `json:"kind"`
	Endian bl.Endian `json:"endian"`
}

// MarshalJSON implements json.Marshaler.
func (r FloatReader) MarshalJSON() ([]byte, error) {
	return json.Marshal(floatReaderWire{Kind: r.Kind.String(), Endian: r.Endian})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *FloatReader) UnmarshalJSON(b []byte) error {
	var w floatReaderWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "f32":
		r.Kind = scalar.F32
	case "f64":
		r.Kind = scalar.F64
	default:
		return bl.ErrInvalidConfiguration
	}
	r.Endian = w.Endian
	return nil
}
