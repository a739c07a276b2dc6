// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
)

// EncodeJSON writes in as indented JSON without HTML escaping.
func EncodeJSON(w io.Writer, in any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(in)
}

func MarshalJSON(in any) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Array marshals to [] instead of null when empty.
type Array[T any] []T

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(a))
}
