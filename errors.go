// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import "errors"

// Errors returned by the byte reader, formatter, and type-resolution
// layers. None of these are ever wrapped in a panic; every fallible
// operation in this module returns one of these as a typed error.
var (
	// ErrReadOutOfRange is returned when a read would pass the end of
	// the buffer backing a Context.
	ErrReadOutOfRange = errors.New("read out of range")

	// ErrInvalidEncoding is returned when a UTF-8/16/32 decode fails:
	// malformed sequences, lone surrogates, or code points outside the
	// valid Unicode scalar range.
	ErrInvalidEncoding = errors.New("invalid character encoding")

	// ErrUnsupportedRender is returned when a formatter is invoked on a
	// scalar family it cannot render (e.g. a float through a hex
	// integer formatter).
	ErrUnsupportedRender = errors.New("unsupported render for this scalar")

	// ErrAlignmentViolation is returned by a Strict alignment when the
	// range does not start on a multiple of the alignment modulus.
	ErrAlignmentViolation = errors.New("alignment violation")

	// ErrUnterminatedString is returned when a null-terminated string
	// reaches the end of the buffer without encountering its
	// terminator.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrLengthPrefixOverflow is returned when an LPString's length
	// prefix reader cannot be represented as a usize.
	ErrLengthPrefixOverflow = errors.New("length prefix cannot fit in usize")

	// ErrNameNotFound is returned when a Named type or a table lookup
	// references a name that isn't registered.
	ErrNameNotFound = errors.New("name not found")

	// ErrCyclicReference is returned when resolving a Named type chain
	// revisits a name already being resolved in the same call chain.
	ErrCyclicReference = errors.New("cyclic named-type reference")

	// ErrDuplicateEntry is returned when loading a table that declares
	// the same name, or the same bit position, more than once.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidConfiguration is returned at construction time for
	// structurally invalid types: zero-length arrays, empty structs,
	// bitmask positions outside [0, 128), and similar.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
