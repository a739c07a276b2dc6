// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type GenerateOptions struct {
	Settings
	// FlattenTree writes every module to the output root instead of
	// mirroring the input directories.
	FlattenTree       bool
	RootDirectoryOnly bool
	IndexAllToRoot    bool
	OmitIndexFiles    bool
	IgnoreFiles       []string // Base names, with or without extension
	Limit             int      // Files converted concurrently, 0 for no limit
}

type sourceFile struct {
	path    string
	modPath string
	decls   []*Declaration
	err     error
}

// Generate converts every description file in fsys into a module. Files that
// fail are reported in a [*GenerateError] alongside the package built from
// the remaining files.
func Generate(fsys fs.FS, opts GenerateOptions) (Package, error) {
	files, err := findSourceFiles(fsys, &opts)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for _, file := range files {
		g.Go(func() error {
			file.decls, file.err = convertFile(fsys, file.path, &opts.Settings)
			return nil
		})
	}
	_ = g.Wait()

	log := opts.logger()
	pkg := make(Package)
	owners := make(map[string]string) // Type name to module path
	var errs []error
	var accepted []*sourceFile
	for _, file := range files {
		if file.err != nil {
			errs = append(errs, file.err)
			continue
		}
		if len(file.decls) == 0 {
			continue
		}
		kept := file.decls[:0]
		for _, decl := range file.decls {
			if owner, ok := owners[decl.Name]; ok {
				log.WithFields(logrus.Fields{
					"type":   decl.Name,
					"file":   file.path,
					"module": owner,
				}).Warn("type already defined")
				continue
			}
			owners[decl.Name] = file.modPath
			pkg.module(file.modPath).Defs.Set(decl.Name, decl.Text)
			kept = append(kept, decl)
		}
		if len(kept) > 0 {
			file.decls = kept
			accepted = append(accepted, file)
		}
	}

	for _, file := range accepted {
		resolveImports(pkg[file.modPath], file, owners, log)
	}
	if !opts.OmitIndexFiles {
		pkg.addIndexes(opts.IndexAllToRoot)
	}

	if len(errs) > 0 {
		return pkg, &GenerateError{Errors: errs}
	}
	return pkg, nil
}

func findSourceFiles(fsys fs.FS, opts *GenerateOptions) ([]*sourceFile, error) {
	ignore := set.From(opts.IgnoreFiles)
	claimed := make(map[string]string) // Module path to first source file
	var files []*sourceFile
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && opts.RootDirectoryOnly {
				return fs.SkipDir
			}
			return nil
		}

		base := path.Base(p)
		ext := path.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		if !isDescriptionExt(ext) || ignore.Contains(base) || ignore.Contains(stem) {
			return nil
		}
		if !strings.HasSuffix(stem, opts.SchemaFileSuffix) {
			return nil
		}

		name := strings.TrimSuffix(stem, opts.SchemaFileSuffix)
		if name == "" {
			name = stem
		}
		modPath := name
		if dir := path.Dir(p); dir != "." && !opts.FlattenTree {
			modPath = dir + "/" + name
		}
		if first, ok := claimed[modPath]; ok {
			opts.logger().WithFields(logrus.Fields{
				"module": modPath,
				"file":   p,
				"first":  first,
			}).Warn("module path already used by another file")
		} else {
			claimed[modPath] = p
		}
		files = append(files, &sourceFile{path: p, modPath: modPath})
		return nil
	})
	return files, err
}

func convertFile(fsys fs.FS, name string, s *Settings) ([]*Declaration, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &FileError{Path: name, Err: err}
	}
	doc, err := DecodeDocument(data, path.Ext(name))
	if err != nil {
		return nil, &FileError{Path: name, Err: err}
	}

	s = s.withField("file", name)
	var decls []*Declaration
	for exportName, d := range doc.Exports.AllFromFront() {
		decl, err := ConvertSchema(s, d, exportName)
		if err != nil {
			return nil, &FileError{Path: name, Err: err}
		}
		if decl != nil {
			decls = append(decls, decl)
		}
	}
	return decls, nil
}

func resolveImports(mod *Module, file *sourceFile, owners map[string]string, log logrus.FieldLogger) {
	imports := make(map[string][]string) // Module specifier to names
	for _, decl := range file.decls {
		for _, name := range decl.CustomTypes.Slice() {
			owner, ok := owners[name]
			if !ok {
				log.WithFields(logrus.Fields{
					"type": name,
					"file": file.path,
				}).Warn("referenced type is not defined by any schema")
				continue
			}
			if owner == mod.Path {
				continue
			}
			spec := relativeSpecifier(mod.Path, owner)
			imports[spec] = append(imports[spec], name)
		}
	}

	specs := make([]string, 0, len(imports))
	for spec := range imports {
		specs = append(specs, spec)
	}
	slices.Sort(specs)
	for _, spec := range specs {
		for _, name := range imports[spec] {
			mod.addImport(spec, name)
		}
	}
}

// relativeSpecifier returns the import specifier of module to, as seen from
// module from.
func relativeSpecifier(from, to string) string {
	fromDir := splitDir(path.Dir(from))
	toDir := splitDir(path.Dir(to))
	i := 0
	for i < len(fromDir) && i < len(toDir) && fromDir[i] == toDir[i] {
		i++
	}

	var sb strings.Builder
	if i == len(fromDir) {
		sb.WriteString("./")
	} else {
		sb.WriteString(strings.Repeat("../", len(fromDir)-i))
	}
	for _, elem := range toDir[i:] {
		sb.WriteString(elem)
		sb.WriteByte('/')
	}
	sb.WriteString(path.Base(to))
	return sb.String()
}

func splitDir(dir string) []string {
	if dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}
