// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Each table's serialization contract is a name -> stringified-integer
// map, per spec.md §4.6; these helpers are the collaborator-facing
// load/save surface that sits on top of the in-memory shapes above,
// grounded on original_source/h2datatype/src/data/traits/data_trait.rs's
// load_yaml/load_json/to_yaml/to_json methods.

func decodeYAML(data []byte) (map[string]string, error) {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSON(data []byte) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadEnumsFromYAML loads an Enums table from a YAML name->value map.
func LoadEnumsFromYAML(data []byte) (*Enums, error) {
	m, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return LoadEnums(pairsFromStringMap(m))
}

// LoadEnumsFromJSON loads an Enums table from a JSON name->value map.
func LoadEnumsFromJSON(data []byte) (*Enums, error) {
	m, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return LoadEnums(pairsFromStringMap(m))
}

// ToYAML serializes the table as a YAML name->decimal-value map.
func (e *Enums) ToYAML() ([]byte, error) {
	m := make(map[string]string, len(e.byName))
	for name, v := range e.byName {
		m[name] = v.String()
	}
	return yaml.Marshal(m)
}

// ToJSON serializes the table as a JSON name->decimal-value map.
func (e *Enums) ToJSON() ([]byte, error) {
	m := make(map[string]string, len(e.byName))
	for name, v := range e.byName {
		m[name] = v.String()
	}
	return json.Marshal(m)
}

// LoadBitmasksFromYAML loads a Bitmasks table from a YAML
// name->position map.
func LoadBitmasksFromYAML(data []byte) (*Bitmasks, error) {
	m, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return LoadBitmasks(pairsFromStringMap(m))
}

// LoadBitmasksFromJSON loads a Bitmasks table from a JSON
// name->position map.
func LoadBitmasksFromJSON(data []byte) (*Bitmasks, error) {
	m, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return LoadBitmasks(pairsFromStringMap(m))
}

// ToYAML serializes the table as a YAML name->decimal-position map.
func (b *Bitmasks) ToYAML() ([]byte, error) {
	m := make(map[string]string, len(b.byName))
	for name, pos := range b.byName {
		m[name] = strconv.Itoa(int(pos))
	}
	return yaml.Marshal(m)
}

// ToJSON serializes the table as a JSON name->decimal-position map.
func (b *Bitmasks) ToJSON() ([]byte, error) {
	m := make(map[string]string, len(b.byName))
	for name, pos := range b.byName {
		m[name] = strconv.Itoa(int(pos))
	}
	return json.Marshal(m)
}

// LoadConstantsFromYAML loads a Constants table from a YAML
// name->value map.
func LoadConstantsFromYAML(data []byte) (*Constants, error) {
	m, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return LoadConstants(pairsFromStringMap(m))
}

// LoadConstantsFromJSON loads a Constants table from a JSON
// name->value map.
func LoadConstantsFromJSON(data []byte) (*Constants, error) {
	m, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return LoadConstants(pairsFromStringMap(m))
}

// ToYAML serializes the table as a YAML name->decimal-value map.
func (c *Constants) ToYAML() ([]byte, error) {
	m := make(map[string]string, len(c.byName))
	for name, v := range c.byName {
		m[name] = v.String()
	}
	return yaml.Marshal(m)
}

// ToJSON serializes the table as a JSON name->decimal-value map.
func (c *Constants) ToJSON() ([]byte, error) {
	m := make(map[string]string, len(c.byName))
	for name, v := range c.byName {
		m[name] = v.String()
	}
	return json.Marshal(m)
}
