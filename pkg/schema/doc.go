// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package schema implements the configuration resolution engine: given a
StructSchema (an ordered list of FieldDescriptor's with defaults) and a parsed
document tree, it produces a fully-populated typed value.

Resolution is deliberately forgiving at the field level: a missing key, a
value of the wrong kind, an unknown enum label or an unresolvable extern
reference all fall back to the field's default. Only the inability to read or
parse the top-level file is a hard error. The per-field coercions still return
explicit errors; Materialize is the single place that converts them into
defaults.

Extern indirection: a field whose value is the literal string "extern" has its
content loaded from a companion file located through a files.Resolver. The
resulting Resolution carries a ConfigMeta provenance tree so that a later
WriteFile targets the same companion files instead of inlining everything.
*/
package schema
