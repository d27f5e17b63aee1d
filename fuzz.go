// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

// Fuzz is a go-fuzz-style entry point kept for parity with the
// teacher's fuzz.go shape; this module's real fuzzing lives in
// the native testing.F fuzz tests in context_fuzz_test.go.
// It exercises the same base primitive the rest of the engine is built
// on: carving a Context out of an arbitrary byte slice must never
// panic, regardless of how small or malformed data is.
func Fuzz(data []byte) int {
	ctx := New(data)
	if _, err := ctx.Bytes(uint64(len(data))); err != nil {
		return 0
	}
	return 1
}
