// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

// NamedValue is an ordered (name, stringified-integer) pair, the shape
// a CSV-like loader walks when it needs to detect a duplicate name as
// it goes, per spec.md §4.6's "Loading rejects duplicate names".
type NamedValue struct {
	Name  string
	Value string
}

// pairsFromStringMap turns a JSON/YAML-decoded string map into
// NamedValue pairs. Go map keys are already unique, so no duplicate
// check applies at this step; LoadEnums/LoadBitmasks/LoadConstants
// still run their own duplicate-position (Bitmasks) checks.
func pairsFromStringMap(m map[string]string) []NamedValue {
	pairs := make([]NamedValue, 0, len(m))
	for name, value := range m {
		pairs = append(pairs, NamedValue{Name: name, Value: value})
	}
	return pairs
}
