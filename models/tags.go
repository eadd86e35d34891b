// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is an ordered list of note labels.
//
// In the database it is stored as a JSON array (jsonb in PostgreSQL,
// TEXT in SQLite). On the wire a nil list is rendered as [].
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("error encoding tags: %w", err)
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var data []byte
	switch value := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported type %T for tags", src)
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("error decoding tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}

	*t = tags
	return nil
}

// MarshalJSON renders a nil list as an empty JSON array.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(t))
}
