// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jtt

import "github.com/sirupsen/logrus"

type Settings struct {
	// DefaultToRequired is used for nodes without an explicit presence flag.
	DefaultToRequired    bool
	SortPropertiesByName bool
	// CommentEverything emits a doc comment on every interface and property,
	// falling back to the name when there is no description.
	CommentEverything bool
	Indentation       string // defaults to two spaces
	// SchemaFileSuffix is trimmed from export names used as type names.
	SchemaFileSuffix string
	Logger           logrus.FieldLogger
}

func (s *Settings) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

func (s *Settings) indentation() string {
	if s.Indentation == "" {
		return "  "
	}
	return s.Indentation
}

func (s *Settings) required(p Presence) bool {
	switch p {
	case PresenceOptional:
		return false
	case PresenceRequired:
		return true
	default:
		return s.DefaultToRequired
	}
}

func (s *Settings) withField(key string, value any) *Settings {
	c := *s
	c.Logger = s.logger().WithField(key, value)
	return &c
}
