// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamldoc parses YAML into a generic, read-only document tree (a
yamldoc.Document holding Map/Array nodes over plain Go scalars) and renders
such trees back to text.

The resolution engine consumes only this tree; the raw YAML parsing itself is
delegated to gopkg.in/yaml.v3. Scalars are normalized to nil, bool, int64,
float64 or string. Mapping order is preserved.
*/
package yamldoc
