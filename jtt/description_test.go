// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeDocumentKeepsOrder(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
  "ZebraSchema": {"type": "object", "keys": {"z": {"type": "string"}, "a": {"type": "number"}, "m": {"type": "any"}}},
  "AntSchema": {"type": "string"}
}`), ".json")
	require.NoError(t, err)
	require.Equal(t, []string{"ZebraSchema", "AntSchema"}, slices.Collect(doc.Exports.Keys()))

	zebra, ok := doc.Exports.Get("ZebraSchema")
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "m"}, slices.Collect(zebra.Keys.Keys()))
}

func TestDecodeDocumentComments(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
  // line comment
  "NameSchema": { /* block comment */ "type": "string" }
}`), ".jsonc")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Exports.Len())
}

func TestDecodeDocumentEmpty(t *testing.T) {
	doc, err := DecodeDocument(nil, ".yaml")
	require.NoError(t, err)
	require.Zero(t, doc.Exports.Len())
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := map[string]string{
		"not a mapping": `[1, 2]`,
		"missing type":  `{NameSchema: {flags: {label: Name}}}`,
		"bad keys":      `{NameSchema: {type: object, keys: [a]}}`,
		"duplicate key": "NameSchema: {type: string}\nNameSchema: {type: number}\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(src), ".yaml")
			require.Error(t, err)
		})
	}
}

func TestParseDescriptionFields(t *testing.T) {
	d, err := ParseDescription([]byte(`
type: object
flags:
  label: Thing
  description: Something
  presence: forbidden
  unknown: true
allow: ["s", 1, 1.5, true, null]
rules: [{name: min}]
keys:
  list:
    type: array
    items: [{type: string}]
  choice:
    type: alternatives
    matches:
      - schema: {type: number}
`))
	require.NoError(t, err)
	require.Equal(t, "object", d.Type)
	require.Equal(t, Flags{Label: "Thing", Description: "Something", Unknown: true}, d.Flags)
	require.Equal(t, []any{"s", 1, 1.5, true, nil}, d.Allow)

	list, ok := d.Keys.Get("list")
	require.True(t, ok)
	require.Len(t, list.Items, 1)
	require.Equal(t, "string", list.Items[0].Type)

	choice, ok := d.Keys.Get("choice")
	require.True(t, ok)
	require.Len(t, choice.Matches, 1)
	require.Equal(t, "number", choice.Matches[0].Schema.Type)
}

func TestParseDescriptionEmpty(t *testing.T) {
	_, err := ParseDescription([]byte(""))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
