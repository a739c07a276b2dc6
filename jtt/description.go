// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"bytes"
	"fmt"
	"io"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/elliotchance/orderedmap/v3"
	"gopkg.in/yaml.v3"
)

// Presence mirrors the "presence" flag of a described schema.
type Presence string

const (
	PresenceUnset    Presence = ""
	PresenceOptional Presence = "optional"
	PresenceRequired Presence = "required"
)

type Flags struct {
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Presence    Presence `yaml:"presence"`
	Unknown     bool     `yaml:"unknown"` // object only
}

// Description is one node of a schema's structural description, as produced
// by the validation library's describe call.
type Description struct {
	Type  string
	Flags Flags
	Allow []any // string and basic types only

	Items   []*Description                               // array only
	Keys    *orderedmap.OrderedMap[string, *Description] // object only, keyed by property name
	Matches []Match                                      // alternatives only
}

type Match struct {
	Schema *Description `yaml:"schema"`
}

func (d *Description) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Type    string         `yaml:"type"`
		Flags   Flags          `yaml:"flags"`
		Allow   []any          `yaml:"allow"`
		Items   []*Description `yaml:"items"`
		Keys    yaml.Node      `yaml:"keys"`
		Matches []Match        `yaml:"matches"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Type == "" {
		return &DecodeError{Line: value.Line, Msg: "description has no type"}
	}

	d.Type = raw.Type
	d.Flags = raw.Flags
	d.Allow = raw.Allow
	d.Items = raw.Items
	d.Matches = raw.Matches
	switch d.Flags.Presence {
	case PresenceOptional, PresenceRequired:
	default:
		d.Flags.Presence = PresenceUnset
	}

	if raw.Keys.Kind == 0 || raw.Keys.ShortTag() == "!!null" {
		return nil
	}
	keys, err := decodeOrdered[*Description](&raw.Keys)
	if err != nil {
		return err
	}
	d.Keys = keys
	return nil
}

// Document is a decoded description file: every exported schema of one
// source file, keyed by export name.
type Document struct {
	Exports *orderedmap.OrderedMap[string, *Description]
}

func (doc *Document) UnmarshalYAML(value *yaml.Node) error {
	exports, err := decodeOrdered[*Description](value)
	if err != nil {
		return err
	}
	doc.Exports = exports
	return nil
}

func decodeOrdered[V any](node *yaml.Node) (*orderedmap.OrderedMap[string, V], error) {
	if node.Kind != yaml.MappingNode {
		return nil, &DecodeError{Line: node.Line, Msg: "expected a mapping"}
	}
	m := orderedmap.NewOrderedMap[string, V]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var v V
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		if !m.Set(key.Value, v) {
			return nil, &DecodeError{Line: key.Line, Msg: fmt.Sprintf("duplicate key %q", key.Value)}
		}
	}
	return m, nil
}

// DecodeDocument decodes a description file. ext selects the input syntax:
// ".json" and ".jsonc" may contain comments, anything else is read as YAML.
func DecodeDocument(data []byte, ext string) (*Document, error) {
	data, err := stripComments(data, ext)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Exports == nil {
		doc.Exports = orderedmap.NewOrderedMap[string, *Description]()
	}
	return &doc, nil
}

// ParseDescription decodes a single description node.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if d.Type == "" {
		return nil, &DecodeError{Msg: "empty description"}
	}
	return &d, nil
}

func stripComments(data []byte, ext string) ([]byte, error) {
	switch ext {
	case ".json", ".jsonc":
		return io.ReadAll(jsonc.New(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

func isDescriptionExt(ext string) bool {
	switch ext {
	case ".json", ".jsonc", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
