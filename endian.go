// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

// Endian selects the byte order used when a reader assembles a
// multi-byte scalar from the underlying buffer.
type Endian int

const (
	// Big is most-significant-byte-first.
	Big Endian = iota

	// Little is least-significant-byte-first.
	Little
)

// String implements fmt.Stringer.
func (e Endian) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (e Endian) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Endian) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"big"`:
		*e = Big
	case `"little"`:
		*e = Little
	default:
		return ErrInvalidConfiguration
	}
	return nil
}
