// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/hashicorp/go-set/v3"
)

// Module is one generated TypeScript file.
type Module struct {
	Path      string                                           // Slash separated, without extension
	Imports   *orderedmap.OrderedMap[string, *set.Set[string]] // Keyed by module specifier
	ReExports []string                                         // Module specifiers
	Defs      *orderedmap.OrderedMap[string, string]           // Keyed by type name
}

func newModule(path string) *Module {
	return &Module{
		Path:    path,
		Imports: orderedmap.NewOrderedMap[string, *set.Set[string]](),
		Defs:    orderedmap.NewOrderedMap[string, string](),
	}
}

type ModuleRenderOptions struct {
	Header    string
	Formatter Formatter
}

type Formatter func([]byte) ([]byte, error)

func (m *Module) Render(opts ModuleRenderOptions) ([]byte, error) {
	var b []byte
	if opts.Header != "" {
		b = append(b, opts.Header...)
		if !strings.HasSuffix(opts.Header, "\n") {
			b = append(b, '\n')
		}
		b = append(b, '\n')
	}

	for spec, names := range m.Imports.AllFromFront() {
		sorted := names.Slice()
		slices.Sort(sorted)
		b = append(b, "import { "...)
		b = append(b, strings.Join(sorted, ", ")...)
		b = append(b, " } from "...)
		b = append(b, quote(spec)...)
		b = append(b, ";\n"...)
	}
	if m.Imports.Len() > 0 {
		b = append(b, '\n')
	}

	for _, spec := range m.ReExports {
		b = append(b, "export * from "...)
		b = append(b, quote(spec)...)
		b = append(b, ";\n"...)
	}
	if len(m.ReExports) > 0 && m.Defs.Len() > 0 {
		b = append(b, '\n')
	}

	first := true
	for def := range m.Defs.Values() {
		if !first {
			b = append(b, "\n\n"...)
		}
		b = append(b, def...)
		first = false
	}
	if m.Defs.Len() > 0 {
		b = append(b, '\n')
	}

	if opts.Formatter != nil {
		return opts.Formatter(b)
	}
	return b, nil
}

func (m *Module) addImport(spec, name string) {
	names, ok := m.Imports.Get(spec)
	if !ok {
		names = set.New[string](1)
		m.Imports.Set(spec, names)
	}
	names.Insert(name)
}
