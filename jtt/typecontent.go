// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// TypeContent is the intermediate representation between a [Description]
// and rendered TypeScript. It is either a [*Leaf] or a [*Composite].
type TypeContent interface {
	meta() *Meta
}

// Meta holds the fields shared by both TypeContent shapes.
type Meta struct {
	// Name is the property name inside an object, or the declared type name
	// at top level.
	Name        string
	Description string
	// Required is only meaningful for object properties.
	Required bool
	// CustomTypes are the labels this node references.
	CustomTypes *set.Set[string]
}

func (m *Meta) meta() *Meta { return m }

// Leaf holds already rendered TypeScript, such as a primitive, a literal or
// a reference to a labelled type.
type Leaf struct {
	Meta
	Content string
}

// Composite needs further rendering: an interface body, an array or a union.
type Composite struct {
	Meta
	JoinOperation JoinOperation
	Children      []TypeContent
}

type JoinOperation uint8

const (
	JoinObject JoinOperation = iota + 1
	JoinList
	JoinUnion
)

func (op JoinOperation) String() string {
	switch op {
	case JoinObject:
		return "object"
	case JoinList:
		return "list"
	case JoinUnion:
		return "union"
	default:
		return "JoinOperation(" + strconv.Itoa(int(op)) + ")"
	}
}

// CollectCustomTypes returns every label referenced by tc or its descendants.
func CollectCustomTypes(tc TypeContent) *set.Set[string] {
	dst := set.New[string](0)
	collectCustomTypes(dst, tc)
	return dst
}

func collectCustomTypes(dst *set.Set[string], tc TypeContent) {
	switch tc := tc.(type) {
	case *Leaf:
		if tc.CustomTypes != nil {
			dst.InsertSet(tc.CustomTypes)
		}
	case *Composite:
		if tc.CustomTypes != nil {
			dst.InsertSet(tc.CustomTypes)
		}
		for _, child := range tc.Children {
			collectCustomTypes(dst, child)
		}
	}
}

func nodeString(tc TypeContent) string {
	switch tc := tc.(type) {
	case *Leaf:
		if tc.Name != "" {
			return fmt.Sprintf("leaf %s (%q)", tc.Name, tc.Content)
		}
		return fmt.Sprintf("leaf %q", tc.Content)
	case *Composite:
		if tc.Name != "" {
			return fmt.Sprintf("%s %s (%d children)", tc.JoinOperation, tc.Name, len(tc.Children))
		}
		return fmt.Sprintf("%s (%d children)", tc.JoinOperation, len(tc.Children))
	default:
		return "<nil>"
	}
}
