// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestConvertJob(t *testing.T) {
	d := mustDescription(t, `
type: object
flags: {label: Job}
keys:
  businessName: {type: string, flags: {presence: required}}
  jobTitle: {type: string, flags: {presence: required}}
`)
	decl, err := ConvertSchema(&Settings{}, d, "JobSchema")
	require.NoError(t, err)
	require.Equal(t, "Job", decl.Name)
	require.Equal(t, "export interface Job {\n  businessName: string;\n  jobTitle: string;\n}", decl.Text)
	require.Zero(t, decl.CustomTypes.Size())
}

func TestConvertPeople(t *testing.T) {
	d := mustDescription(t, `
type: array
flags: {label: People}
items:
  - type: object
    flags: {label: Person}
    keys:
      name: {type: string}
`)
	decl, err := ConvertSchema(&Settings{}, d, "PeopleSchema")
	require.NoError(t, err)
	require.Equal(t, "export type People = Person[];", decl.Text)
	require.Equal(t, []string{"Person"}, decl.CustomTypes.Slice())
}

func TestConvertName(t *testing.T) {
	s := &Settings{SchemaFileSuffix: "Schema"}
	decl, err := ConvertSchema(s, &Description{Type: "string"}, "NameSchema")
	require.NoError(t, err)
	require.Equal(t, "export type Name = string;", decl.Text)

	decl, err = ConvertSchema(s, &Description{Type: "string"}, "Schema")
	require.NoError(t, err)
	require.Nil(t, decl)

	decl, err = ConvertSchema(s, &Description{Type: "binary", Flags: Flags{Label: "Blob"}}, "BlobSchema")
	require.NoError(t, err)
	require.Nil(t, decl)
}

func TestConvertSelfReference(t *testing.T) {
	d := mustDescription(t, `
type: object
flags: {label: Node}
keys:
  children:
    type: array
    items: [{type: object, flags: {label: Node}}]
`)
	decl, err := ConvertSchema(&Settings{}, d, "NodeSchema")
	require.NoError(t, err)
	require.Equal(t, "export interface Node {\n  children?: Node[];\n}", decl.Text)
	require.Zero(t, decl.CustomTypes.Size())
}

// Each archive holds an input document and the expected output. The archive
// comment lists the settings to enable, one per line.
func TestConvertGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "convert", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			s := &Settings{SchemaFileSuffix: "Schema"}
			for _, line := range strings.Fields(string(ar.Comment)) {
				switch line {
				case "sort":
					s.SortPropertiesByName = true
				case "comment-everything":
					s.CommentEverything = true
				case "default-required":
					s.DefaultToRequired = true
				default:
					t.Fatalf("unknown setting %q", line)
				}
			}

			var input, want []byte
			var ext string
			for _, f := range ar.Files {
				switch {
				case strings.HasPrefix(f.Name, "input."):
					input, ext = f.Data, path.Ext(f.Name)
				case f.Name == "output.ts":
					want = f.Data
				}
			}
			require.NotNil(t, input)
			require.NotNil(t, want)

			doc, err := DecodeDocument(input, ext)
			require.NoError(t, err)
			var texts []string
			for exportName, d := range doc.Exports.AllFromFront() {
				decl, err := ConvertSchema(s, d, exportName)
				require.NoError(t, err)
				if decl != nil {
					texts = append(texts, decl.Text)
				}
			}
			require.Equal(t, string(want), strings.Join(texts, "\n\n")+"\n")
		})
	}
}
