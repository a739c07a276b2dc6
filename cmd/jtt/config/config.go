// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"strings"
	"sync"

	"github.com/antoniszymanski/jtt-go/cmd/jtt/internal"
	"github.com/antoniszymanski/jtt-go/jtt"
	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sirupsen/logrus"
)

const DefaultFileHeader = `/**
 * This file was automatically generated by jtt.
 * Do not modify it by hand, regenerate it from the schema descriptions instead.
 */`

type Config struct {
	Schema string `json:"$schema,omitempty"`
	// Directory containing the schema description files.
	SchemaDirectory string `json:"schema_directory" jsonschema:"required,minLength=1"`
	// Directory the TypeScript files are written to.
	TypeOutputDirectory string `json:"type_output_directory" jsonschema:"required,minLength=1"`
	// Only files whose name ends with this suffix are converted. It is
	// removed from output file names and from export names used as type names.
	SchemaFileSuffix string `json:"schema_file_suffix" jsonschema:"default=Schema"`
	// Text prepended to every generated file.
	FileHeader string `json:"file_header"`
	// Treat schemas without an explicit presence flag as required.
	DefaultToRequired bool `json:"default_to_required"`
	// Sort interface properties by name.
	SortPropertiesByName bool `json:"sort_properties_by_name" jsonschema:"default=true"`
	// Emit a doc comment on every interface and property.
	CommentEverything bool `json:"comment_everything"`
	// Indentation unit of generated code.
	Indentation string `json:"indentation"`
	// Write every file to type_output_directory instead of mirroring the
	// input directories.
	FlattenTree bool `json:"flatten_tree"`
	// Ignore subdirectories of schema_directory.
	RootDirectoryOnly bool `json:"root_directory_only"`
	// Write a single index file re-exporting every module.
	IndexAllToRoot bool `json:"index_all_to_root"`
	// Do not write index files.
	OmitIndexFiles bool `json:"omit_index_files"`
	// File names to skip.
	IgnoreFiles internal.Array[string] `json:"ignore_files"`
	// Format generated files.
	Format bool `json:"format"`
	// Enable debug logging.
	Debug bool `json:"debug"`
}

func Default() Config {
	return Config{
		SchemaFileSuffix:     "Schema",
		FileHeader:           DefaultFileHeader,
		SortPropertiesByName: true,
		Indentation:          "  ",
	}
}

func (c *Config) UnmarshalJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type RawConfig Config
	raw := RawConfig(Default())
	if err = json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Config(raw)
	return nil
}

func (c *Config) GenerateOptions(log logrus.FieldLogger) jtt.GenerateOptions {
	return jtt.GenerateOptions{
		Settings: jtt.Settings{
			DefaultToRequired:    c.DefaultToRequired,
			SortPropertiesByName: c.SortPropertiesByName,
			CommentEverything:    c.CommentEverything,
			Indentation:          c.Indentation,
			SchemaFileSuffix:     c.SchemaFileSuffix,
			Logger:               log,
		},
		FlattenTree:       c.FlattenTree,
		RootDirectoryOnly: c.RootDirectoryOnly,
		IndexAllToRoot:    c.IndexAllToRoot,
		OmitIndexFiles:    c.OmitIndexFiles,
		IgnoreFiles:       c.IgnoreFiles,
	}
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
