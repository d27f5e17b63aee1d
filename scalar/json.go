// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package scalar

import (
	"encoding/json"
	"math/big"
)

type integerWire struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalJSON implements json.Marshaler. The value is carried as a
// decimal string so widths beyond int64/uint64 round-trip exactly.
func (i Integer) MarshalJSON() ([]byte, error) {
	v := i.Value
	if v == nil {
		v = big.NewInt(0)
	}
	return json.Marshal(integerWire{Kind: i.Kind.String(), Value: v.String()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Integer) UnmarshalJSON(b []byte) error {
	var w integerWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	kind, ok := kindFromString(w.Kind)
	if !ok {
		return ErrIncompatibleConversion
	}
	v, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return ErrIncompatibleConversion
	}
	i.Kind = kind
	i.Value = v
	return nil
}

func kindFromString(s string) (IntegerKind, bool) {
	for k, name := range integerKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

type floatWire struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(floatWire{Kind: f.Kind.String(), Value: f.Value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	var w floatWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "f32":
		f.Kind = F32
	case "f64":
		f.Kind = F64
	default:
		return ErrIncompatibleConversion
	}
	f.Value = w.Value
	return nil
}

type characterWire struct {
	Value      string `json:"value"`
	ByteLength int    `json:"byte_length"`
}

// MarshalJSON implements json.Marshaler.
func (c Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(characterWire{Value: string(c.Value), ByteLength: c.ByteLength})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Character) UnmarshalJSON(b []byte) error {
	var w characterWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	runes := []rune(w.Value)
	if len(runes) != 1 {
		return ErrIncompatibleConversion
	}
	c.Value = runes[0]
	c.ByteLength = w.ByteLength
	return nil
}
