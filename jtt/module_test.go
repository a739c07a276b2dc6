// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModuleRender(t *testing.T) {
	mod := newModule("users/Job")
	mod.addImport("../Person", "Person")
	mod.addImport("./teams/Team", "Team")
	mod.addImport("./teams/Team", "Role")
	mod.Defs.Set("Job", "export interface Job {\n  owner: Person;\n}")
	mod.Defs.Set("Jobs", "export type Jobs = Job[];")

	out, err := mod.Render(ModuleRenderOptions{Header: "/* generated */"})
	require.NoError(t, err)
	require.Equal(t, `/* generated */

import { Person } from '../Person';
import { Role, Team } from './teams/Team';

export interface Job {
  owner: Person;
}

export type Jobs = Job[];
`, string(out))
}

func TestModuleRenderReExports(t *testing.T) {
	mod := newModule("index")
	mod.ReExports = []string{"./Job", "./users"}
	mod.Defs.Set("Id", "export type Id = string;")

	out, err := mod.Render(ModuleRenderOptions{})
	require.NoError(t, err)
	require.Equal(t, "export * from './Job';\nexport * from './users';\n\nexport type Id = string;\n", string(out))
}

func TestModuleRenderFormatter(t *testing.T) {
	mod := newModule("Id")
	mod.Defs.Set("Id", "export type Id = string;")

	out, err := mod.Render(ModuleRenderOptions{
		Formatter: func(b []byte) ([]byte, error) {
			return bytes.ReplaceAll(b, []byte("string"), []byte("number")), nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, "export type Id = number;\n", string(out))

	errFormat := errors.New("format failed")
	_, err = mod.Render(ModuleRenderOptions{
		Formatter: func([]byte) ([]byte, error) { return nil, errFormat },
	})
	require.ErrorIs(t, err, errFormat)
}

func TestPackageRenderErrors(t *testing.T) {
	pkg := make(Package)
	pkg.module("A").Defs.Set("A", "export type A = string;")
	pkg.module("B").Defs.Set("B", "export type B = number;")

	errWrite := errors.New("disk full")
	err := pkg.Render(PackageRenderOptions{
		Write: func(modPath string, _ []byte) error {
			if modPath == "B" {
				return errWrite
			}
			return nil
		},
	})
	require.ErrorIs(t, err, errWrite)

	errFormat := errors.New("format failed")
	err = pkg.Render(PackageRenderOptions{
		ModuleRenderOptions: ModuleRenderOptions{
			Formatter: func([]byte) ([]byte, error) { return nil, errFormat },
		},
		Write: func(string, []byte) error { return nil },
	})
	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	require.ErrorIs(t, err, errFormat)
}
