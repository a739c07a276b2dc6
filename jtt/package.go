// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"maps"
	"path"
	"slices"

	"golang.org/x/sync/errgroup"
)

type Package map[string]*Module // Keyed by module path

type PackageRenderOptions struct {
	ModuleRenderOptions
	Limit int
	Write func(modPath string, data []byte) error
}

func (p Package) Render(opts PackageRenderOptions) error {
	var g errgroup.Group
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for modPath, mod := range p {
		g.Go(func() error {
			data, err := mod.Render(opts.ModuleRenderOptions)
			if err != nil {
				return &FileError{Path: modPath, Err: err}
			}
			return opts.Write(modPath, data)
		})
	}
	return g.Wait()
}

func (p Package) module(modPath string) *Module {
	if mod, ok := p[modPath]; ok {
		return mod
	}
	mod := newModule(modPath)
	p[modPath] = mod
	return mod
}

// addIndexes adds an index module to every directory holding modules. Each
// index re-exports the modules and indexed subdirectories next to it. With
// allToRoot there is a single root index re-exporting every module.
func (p Package) addIndexes(allToRoot bool) {
	for _, modPath := range slices.Sorted(maps.Keys(p)) {
		if allToRoot {
			if modPath != "index" {
				index := p.module("index")
				index.ReExports = append(index.ReExports, "./"+modPath)
			}
			continue
		}

		dir := path.Dir(modPath)
		index := p.module(path.Join(dir, "index"))
		if index.Path != modPath {
			index.ReExports = append(index.ReExports, "./"+path.Base(modPath))
		}
		for dir != "." {
			parent := p.module(path.Join(path.Dir(dir), "index"))
			spec := "./" + path.Base(dir)
			if slices.Contains(parent.ReExports, spec) {
				break
			}
			parent.ReExports = append(parent.ReExports, spec)
			dir = path.Dir(dir)
		}
	}
	for _, mod := range p {
		slices.Sort(mod.ReExports)
	}
}
