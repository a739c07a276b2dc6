// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/jtt-go/cmd/jtt/config"
	"github.com/antoniszymanski/jtt-go/jtt"
	"github.com/antoniszymanski/sanefmt-go"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type cmdGenerate struct {
	Path  string `arg:"" type:"path" default:"jtt.jsonc"`
	Limit int    `help:"Maximum number of files processed concurrently." default:"0"`
}

func (c *cmdGenerate) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		f, err = os.Open(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
	} else {
		f = os.Stdin
	}

	data, err := io.ReadAll(jsonc.New(f))
	if err != nil {
		return err
	}
	var cfg config.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	var formatter jtt.Formatter
	if cfg.Format {
		formatter = func(b []byte) ([]byte, error) {
			return sanefmt.Format(bytes.NewReader(b))
		}
	}

	opts := cfg.GenerateOptions(log)
	opts.Limit = c.Limit
	pkg, genErr := jtt.Generate(os.DirFS(cfg.SchemaDirectory), opts)
	var failed *jtt.GenerateError
	if genErr != nil && !errors.As(genErr, &failed) {
		return genErr
	}

	err = pkg.Render(jtt.PackageRenderOptions{
		ModuleRenderOptions: jtt.ModuleRenderOptions{
			Header:    cfg.FileHeader,
			Formatter: formatter,
		},
		Limit: c.Limit,
		Write: func(modPath string, data []byte) error {
			name := filepath.Join(cfg.TypeOutputDirectory, filepath.FromSlash(modPath)+".ts")
			if err := os.MkdirAll(filepath.Dir(name), 0750); err != nil {
				return err
			}
			if err := os.WriteFile(name, data, 0600); err != nil {
				return err
			}
			log.WithField("file", name).Info("generated")
			return nil
		},
	})
	return errors.Join(err, genErr)
}
