// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/sirupsen/logrus"
)

// ParseSchema converts d into its intermediate representation. A nil result
// means d contributes nothing to its parent.
//
// When useLabels is set, a labelled node that is not in ignoreLabels becomes
// a reference to its label instead of being expanded.
func ParseSchema(d *Description, s *Settings, useLabels bool, ignoreLabels ...string) TypeContent {
	if d == nil {
		return nil
	}
	label := d.Flags.Label
	required := s.required(d.Flags.Presence)
	if label != "" && useLabels && !slices.Contains(ignoreLabels, label) {
		return &Leaf{
			Meta: Meta{
				Description: d.Flags.Description,
				Required:    required,
				CustomTypes: set.From([]string{label}),
			},
			Content: label,
		}
	}

	var tc TypeContent
	switch d.Type {
	case "array":
		tc = parseArray(d, s)
	case "object":
		tc = parseObject(d, s)
	case "alternatives":
		tc = parseAlternatives(d, s)
	case "string":
		tc = parseString(d, s)
	case "any", "boolean", "date", "number":
		tc = parseBasic(d, s)
	default:
		s.logger().WithFields(logrus.Fields{
			"type":  d.Type,
			"label": label,
		}).Warn("unsupported schema type")
		return nil
	}
	if tc == nil {
		return nil
	}

	m := tc.meta()
	m.Name = label
	m.Description = d.Flags.Description
	m.Required = required
	return tc
}

func parseBasic(d *Description, s *Settings) TypeContent {
	content := d.Type
	if content == "date" {
		content = "Date"
	}
	if len(d.Allow) == 0 {
		return &Leaf{Content: content}
	}

	children := make([]TypeContent, 0, len(d.Allow)+1)
	if d.Allow[0] == nil {
		children = append(children, &Leaf{Content: content})
	}
	children = appendLiterals(children, d.Allow, s)
	if len(children) == 0 {
		return &Leaf{Content: content}
	}
	return &Composite{JoinOperation: JoinUnion, Children: children}
}

func parseString(d *Description, s *Settings) TypeContent {
	if len(d.Allow) == 0 || (len(d.Allow) == 1 && d.Allow[0] == "") {
		return &Leaf{Content: "string"}
	}

	trivial := true
	for _, v := range d.Allow {
		if v != nil && v != "" {
			trivial = false
			break
		}
	}
	children := make([]TypeContent, 0, len(d.Allow)+1)
	if trivial {
		children = append(children, &Leaf{Content: "string"})
	}
	children = appendLiterals(children, d.Allow, s)
	if len(children) == 0 {
		return &Leaf{Content: "string"}
	}
	return &Composite{JoinOperation: JoinUnion, Children: children}
}

func appendLiterals(dst []TypeContent, values []any, s *Settings) []TypeContent {
	for _, v := range values {
		lit, ok := literal(v)
		if !ok {
			s.logger().WithField("value", v).Warn("unsupported allowed value")
			continue
		}
		dst = append(dst, &Leaf{Content: lit})
	}
	return dst
}

func literal(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "null", true
	case string:
		return quote(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

func parseArray(d *Description, s *Settings) TypeContent {
	item := &Description{Type: "any"}
	if len(d.Items) > 0 {
		item = d.Items[0]
	}
	if len(d.Items) > 1 {
		s.logger().WithField("label", d.Flags.Label).Debug("only the first array item type is used")
	}
	child := ParseSchema(item, s, true)
	if child == nil {
		return nil
	}
	return &Composite{JoinOperation: JoinList, Children: []TypeContent{child}}
}

func parseAlternatives(d *Description, s *Settings) TypeContent {
	var ignore []string
	if label := d.Flags.Label; label != "" {
		ignore = []string{label}
	}
	children := make([]TypeContent, 0, len(d.Matches))
	for _, match := range d.Matches {
		if child := ParseSchema(match.Schema, s, true, ignore...); child != nil {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		return nil
	}
	return &Composite{JoinOperation: JoinUnion, Children: children}
}

var identifier = regexp.MustCompile(`^[$A-Za-z_][$0-9A-Za-z_]*$`)

func propertyName(key string) string {
	if identifier.MatchString(key) {
		return key
	}
	return quote(key)
}

func parseObject(d *Description, s *Settings) TypeContent {
	var children []TypeContent
	if d.Keys != nil {
		children = make([]TypeContent, 0, d.Keys.Len()+1)
		for key, value := range d.Keys.AllFromFront() {
			child := ParseSchema(value, s, true)
			if child == nil {
				continue
			}
			child.meta().Name = propertyName(key)
			children = append(children, child)
		}
	}
	if d.Flags.Unknown {
		children = append(children, &Leaf{
			Meta: Meta{
				Name:        "[x: string]",
				Description: "Unknown Property",
				Required:    true,
			},
			Content: "any",
		})
	}
	if s.SortPropertiesByName {
		slices.SortStableFunc(children, func(a, b TypeContent) int {
			return strings.Compare(a.meta().Name, b.meta().Name)
		})
	}
	return &Composite{JoinOperation: JoinObject, Children: children}
}
