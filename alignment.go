// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import "encoding/json"

// Range is a half-open byte range [Start, End).
type Range struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

// Len returns the number of bytes in the range.
func (r Range) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether other is fully contained within r.
func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// alignmentKind tags which Alignment variant is in play.
type alignmentKind int

const (
	alignNone alignmentKind = iota
	alignLoose
	alignStrict
)

// Alignment is a padding/validation policy applied to a base Range to
// produce an aligned Range. See NoAlign, LooseAlign, and StrictAlign.
type Alignment struct {
	kind     alignmentKind
	modulus  uint64
}

// NoAlign performs no padding and no validation.
func NoAlign() Alignment {
	return Alignment{kind: alignNone}
}

// LooseAlign pads a range's length up to the next multiple of m,
// relative to the range's start. m == 0 is a no-op.
func LooseAlign(m uint64) Alignment {
	return Alignment{kind: alignLoose, modulus: m}
}

// StrictAlign behaves like LooseAlign but additionally requires the
// range to start on a multiple of m, failing ErrAlignmentViolation
// otherwise. m == 0 is a no-op (no padding, no start requirement).
func StrictAlign(m uint64) Alignment {
	return Alignment{kind: alignStrict, modulus: m}
}

// IsNone reports whether this is the no-op alignment policy.
func (a Alignment) IsNone() bool {
	return a.kind == alignNone
}

// Modulus returns the alignment's configured modulus (0 for None).
func (a Alignment) Modulus() uint64 {
	return a.modulus
}

func roundUp(n, multiple uint64) uint64 {
	if multiple == 0 {
		return n
	}
	remainder := n % multiple
	if remainder == 0 {
		return n
	}
	return n - remainder + multiple
}

// Align applies the alignment policy to r, returning the padded
// range or ErrAlignmentViolation for a Strict misalignment.
func (a Alignment) Align(r Range) (Range, error) {
	switch a.kind {
	case alignNone:
		return r, nil

	case alignLoose:
		newLen := roundUp(r.Len(), a.modulus)
		return Range{Start: r.Start, End: r.Start + newLen}, nil

	case alignStrict:
		if a.modulus != 0 && r.Start%a.modulus != 0 {
			return Range{}, ErrAlignmentViolation
		}
		newLen := roundUp(r.Len(), a.modulus)
		return Range{Start: r.Start, End: r.Start + newLen}, nil

	default:
		return r, nil
	}
}

// MarshalJSON implements json.Marshaler.
func (a Alignment) MarshalJSON() ([]byte, error) {
	type wire struct {
		Kind    string `json:"kind"`
		Modulus uint64 `json:"modulus,omitempty"`
	}
	w := wire{Modulus: a.modulus}
	switch a.kind {
	case alignNone:
		w.Kind = "none"
	case alignLoose:
		w.Kind = "loose"
	case alignStrict:
		w.Kind = "strict"
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Alignment) UnmarshalJSON(b []byte) error {
	type wire struct {
		Kind    string `json:"kind"`
		Modulus uint64 `json:"modulus,omitempty"`
	}
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "none":
		*a = NoAlign()
	case "loose":
		*a = LooseAlign(w.Modulus)
	case "strict":
		*a = StrictAlign(w.Modulus)
	default:
		return ErrInvalidConfiguration
	}
	return nil
}
