// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"fmt"
	"strings"
)

type DecodeError struct {
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// UnnamedExportError is returned when a node without a name is exported.
type UnnamedExportError struct {
	Node TypeContent
}

func (e *UnnamedExportError) Error() string {
	return nodeString(e.Node) + ": type needs a name to be exported"
}

type UnnamedPropertyError struct {
	Node TypeContent
}

func (e *UnnamedPropertyError) Error() string {
	return nodeString(e.Node) + ": object property has no name"
}

type ListArityError struct {
	Node *Composite
}

func (e *ListArityError) Error() string {
	return fmt.Sprintf("%s: list needs exactly one item type", nodeString(e.Node))
}

type JoinOperationError struct {
	Node *Composite
}

func (e *JoinOperationError) Error() string {
	return fmt.Sprintf("%s: unsupported join operation", nodeString(e.Node))
}

// FileError is a failure to convert one description file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// GenerateError collects the files that failed during [Generate].
type GenerateError struct {
	Errors []error
}

func (e *GenerateError) Error() string {
	var sb strings.Builder
	for _, err := range e.Errors {
		sb.WriteString(err.Error())
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (e *GenerateError) Unwrap() []error {
	return e.Errors
}
