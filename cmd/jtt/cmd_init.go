// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/antoniszymanski/jtt-go/cmd/jtt/config"
	"github.com/antoniszymanski/jtt-go/cmd/jtt/internal"
)

type cmdInit struct {
	Path       string `arg:"" type:"path" default:"jtt.jsonc"`
	SchemaPath string `arg:"" type:"path" default:"jtt.schema.json"`
	NoSchema   bool   `short:"S" help:"Do not reference the JSON Schema."`
}

func (c *cmdInit) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		dir := filepath.Dir(c.Path)
		if err = os.MkdirAll(dir, 0750); err != nil {
			return err
		}
		f, err = os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		if !c.NoSchema {
			relpath, err := filepath.Rel(dir, c.SchemaPath)
			if err == nil {
				c.SchemaPath = filepath.ToSlash(relpath)
			}
		}
	} else {
		f = os.Stdout
	}

	cfg := config.Default()
	if !c.NoSchema {
		cfg.Schema = c.SchemaPath
	}
	cfg.SchemaDirectory = "schemas"
	cfg.TypeOutputDirectory = "types"
	return internal.EncodeJSON(f, &cfg)
}
