// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"

	"github.com/yconf/yconf/pkg/yamldoc"
)

// ConfigError is the hard failure kind: the top-level file could not be read,
// or its content is not a minimally valid document. It aborts the whole load.
type ConfigError struct {
	Path  string
	Cause error
}

func NewConfigError(path string, cause error) error {
	return &ConfigError{Path: path, Cause: cause}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Loading config '%s': %s", e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// CoercionError is the soft failure kind: a single field's value did not fit
// its declared type. It never escapes Materialize; the field falls back to
// its default instead.
type CoercionError struct {
	Expected string
	Found    interface{}
}

func NewCoercionError(expected string, found interface{}) error {
	return &CoercionError{Expected: expected, Found: found}
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("Expected %s, but was %s", e.Expected, yamldoc.TypeName(e.Found))
}

// IsSoft reports whether err is a per-field resolution problem that the
// materializer resolves by default substitution.
func IsSoft(err error) bool {
	var coercionErr *CoercionError
	return errors.As(err, &coercionErr)
}

// MissingFieldError signals that a requested field name has no corresponding
// descriptor in the schema. This is a programmatic schema error, not a data
// error.
type MissingFieldError struct {
	Schema string
	Field  string
}

func NewMissingFieldError(schema, field string) error {
	return &MissingFieldError{Schema: schema, Field: field}
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Schema '%s' has no field '%s'", e.Schema, e.Field)
}
