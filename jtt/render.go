// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"errors"
	"strings"
	"unsafe"
)

// RenderDeclaration serializes tc to TypeScript. With doExport set the result
// is an exported interface or type alias named after tc.
func RenderDeclaration(s *Settings, tc TypeContent, doExport bool) (string, error) {
	if tc == nil {
		return "", errors.New("nil type content")
	}
	m := tc.meta()
	dst := appendDocComment(nil, s, m.Name, m.Description, 0)
	dst, err := renderTypeContent(dst, s, tc, doExport, 1)
	if err != nil {
		return "", err
	}
	return bytesToString(dst), nil
}

// depth is the indentation level of properties of an object rendered here.
func renderTypeContent(dst []byte, s *Settings, tc TypeContent, doExport bool, depth int) ([]byte, error) {
	switch tc := tc.(type) {
	case *Leaf:
		if doExport {
			if tc.Name == "" {
				return nil, &UnnamedExportError{Node: tc}
			}
			return appendTypeAlias(dst, tc.Name, []byte(tc.Content)), nil
		}
		return append(dst, tc.Content...), nil
	case *Composite:
		if doExport && tc.Name == "" {
			return nil, &UnnamedExportError{Node: tc}
		}
		switch tc.JoinOperation {
		case JoinList:
			return renderList(dst, s, tc, doExport, depth)
		case JoinUnion:
			return renderUnion(dst, s, tc, doExport, depth)
		case JoinObject:
			return renderObject(dst, s, tc, doExport, depth)
		default:
			return nil, &JoinOperationError{Node: tc}
		}
	default:
		return nil, errors.New("nil type content")
	}
}

func appendTypeAlias(dst []byte, name string, expr []byte) []byte {
	dst = append(dst, "export type "...)
	dst = append(dst, name...)
	dst = append(dst, " = "...)
	dst = append(dst, expr...)
	dst = append(dst, ';')
	return dst
}

func renderList(dst []byte, s *Settings, tc *Composite, doExport bool, depth int) ([]byte, error) {
	if len(tc.Children) != 1 {
		return nil, &ListArityError{Node: tc}
	}
	item, err := renderTypeContent(nil, s, tc.Children[0], false, depth)
	if err != nil {
		return nil, err
	}

	expr := make([]byte, 0, len(item)+4)
	if needsParens(tc.Children[0]) {
		expr = append(expr, '(')
		expr = append(expr, item...)
		expr = append(expr, ')')
	} else {
		expr = append(expr, item...)
	}
	expr = append(expr, "[]"...)

	if doExport {
		return appendTypeAlias(dst, tc.Name, expr), nil
	}
	return append(dst, expr...), nil
}

// needsParens reports whether tc renders as a union of more than one member,
// which binds looser than the array suffix.
func needsParens(tc TypeContent) bool {
	c, ok := tc.(*Composite)
	if !ok || c.JoinOperation != JoinUnion {
		return false
	}
	if len(c.Children) == 1 {
		return needsParens(c.Children[0])
	}
	return len(c.Children) > 1
}

func renderUnion(dst []byte, s *Settings, tc *Composite, doExport bool, depth int) ([]byte, error) {
	var expr []byte
	var err error
	for i, child := range tc.Children {
		if i > 0 {
			expr = append(expr, " | "...)
		}
		expr, err = renderTypeContent(expr, s, child, false, depth)
		if err != nil {
			return nil, err
		}
	}

	if doExport {
		return appendTypeAlias(dst, tc.Name, expr), nil
	}
	return append(dst, expr...), nil
}

func renderObject(dst []byte, s *Settings, tc *Composite, doExport bool, depth int) (_ []byte, err error) {
	if len(tc.Children) == 0 && !doExport {
		return append(dst, "object"...), nil
	}
	if doExport {
		dst = append(dst, "export interface "...)
		dst = append(dst, tc.Name...)
		dst = append(dst, ' ')
	}
	if len(tc.Children) == 0 {
		return append(dst, "{}"...), nil
	}

	dst = append(dst, "{\n"...)
	for _, child := range tc.Children {
		m := child.meta()
		if m.Name == "" {
			return nil, &UnnamedPropertyError{Node: child}
		}
		dst = appendDocComment(dst, s, m.Name, m.Description, depth)
		dst = appendIndent(dst, s, depth)
		dst = append(dst, m.Name...)
		if !m.Required {
			dst = append(dst, '?')
		}
		dst = append(dst, ": "...)
		dst, err = renderTypeContent(dst, s, child, false, depth+1)
		if err != nil {
			return nil, err
		}
		dst = append(dst, ";\n"...)
	}
	dst = appendIndent(dst, s, depth-1)
	dst = append(dst, '}')
	return dst, nil
}

func appendIndent(dst []byte, s *Settings, depth int) []byte {
	for range depth {
		dst = append(dst, s.indentation()...)
	}
	return dst
}

// appendDocComment writes a /** */ block for description, or for name when
// CommentEverything is set and there is no description.
func appendDocComment(dst []byte, s *Settings, name, description string, depth int) []byte {
	body := description
	if body == "" {
		if !s.CommentEverything {
			return dst
		}
		body = name
	}
	if body == "" {
		return dst
	}

	dst = appendIndent(dst, s, depth)
	dst = append(dst, "/**\n"...)
	for line := range strings.SplitSeq(body, "\n") {
		line = strings.TrimRight(line, " \t\r")
		dst = appendIndent(dst, s, depth)
		dst = append(dst, " *"...)
		if line != "" {
			dst = append(dst, ' ')
			dst = append(dst, strings.ReplaceAll(line, "*/", `*\/`)...)
		}
		dst = append(dst, '\n')
	}
	dst = appendIndent(dst, s, depth)
	dst = append(dst, " */\n"...)
	return dst
}

// dst is never written to after conversion.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
