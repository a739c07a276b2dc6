// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Declaration is the rendered TypeScript for one exported schema.
type Declaration struct {
	Name string
	Text string
	// CustomTypes are the labels referenced by Text, excluding Name itself.
	CustomTypes *set.Set[string]
}

// ConvertSchema parses and renders a top-level schema. The type name is the
// schema's label, or exportName without [Settings.SchemaFileSuffix]. A nil
// Declaration with a nil error means the schema produced no output.
func ConvertSchema(s *Settings, d *Description, exportName string) (*Declaration, error) {
	if d == nil {
		return nil, nil
	}
	name := d.Flags.Label
	if name == "" {
		name = strings.TrimSuffix(exportName, s.SchemaFileSuffix)
	}
	if name == "" {
		s.logger().WithField("export", exportName).Debug("skipping unnamed schema")
		return nil, nil
	}

	// The top-level node is the definition of its label, not a reference.
	tc := ParseSchema(d, s, false)
	if tc == nil {
		return nil, nil
	}
	tc.meta().Name = name

	text, err := RenderDeclaration(s, tc, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	customTypes := CollectCustomTypes(tc)
	customTypes.Remove(name)
	return &Declaration{Name: name, Text: text, CustomTypes: customTypes}, nil
}
