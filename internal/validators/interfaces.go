// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user and note input before it reaches the
// store.
//
// Each validator accepts one of its supported model types and may be
// restricted to a subset of fields by name, e.g. only "email" and
// "password" on login. Violations are reported with the sentinel errors of
// this package so callers can match them with errors.Is.
package validators

import "context"

// Validator validates a model value. When fields are given only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
