// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/yconf/yconf/pkg/filepos"
	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/spell"
	"github.com/yconf/yconf/pkg/yamldoc"
)

// ResolveOpts configures a resolution. Dir is the directory extern references
// of the document are resolved against; Resolver performs the lookup (nil
// means extern references never resolve and their fields default).
type ResolveOpts struct {
	Dir      string
	Resolver files.Resolver
}

// Resolution is the outcome of materializing one document against a schema.
// Value is fully populated: every field carries either a document-derived
// value or its default; partial states are not observable.
type Resolution struct {
	Value    interface{}
	Meta     *ConfigMeta
	Warnings []Warning
}

// Warning is advisory only (eg an unknown key); it never fails a load.
type Warning struct {
	Message  string
	Position *filepos.Position
}

// Context carries the per-resolution collaborators down through nested
// coercions: the current directory for extern lookups, the provenance node
// being filled in, and the shared warning sink.
type Context struct {
	dir      string
	rootDir  string
	resolver files.Resolver
	meta     *ConfigMeta
	warnings *[]Warning
}

func newContext(opts ResolveOpts) *Context {
	rootDir := opts.Dir
	if rootDir == "" {
		rootDir = "."
	}
	return &Context{
		dir:      opts.Dir,
		rootDir:  rootDir,
		resolver: opts.Resolver,
		meta:     NewConfigMeta(),
		warnings: &[]Warning{},
	}
}

// Materialize resolves doc against the schema. It cannot fail: every
// field-level problem is resolved by substituting the field's default, and a
// document whose root is not a mapping resolves to the schema's default
// value. Callers needing strictness validate the Resolution post-hoc.
func Materialize(s *StructSchema, doc *yamldoc.Document, opts ResolveOpts) *Resolution {
	ctx := newContext(opts)

	val, err := StructType{s}.Coerce(doc.Value, ctx)
	if err != nil {
		val = s.DefaultValue()
	}

	return &Resolution{Value: val, Meta: ctx.meta, Warnings: *ctx.warnings}
}

// MaterializeEnum validates a scalar against the enum's label set, falling
// back to the schema's default variant on any other node kind or label.
func MaterializeEnum(e *EnumSchema, val interface{}) string {
	label, err := EnumType{e}.Coerce(val, nil)
	if err != nil {
		return e.defaultVariant
	}
	return label.(string)
}

// ResolveField resolves a single field in isolation: the descriptor's default
// when the value is absent (found=false) or fails coercion, the decoded value
// otherwise. This path never fails.
func ResolveField(d FieldDescriptor, val interface{}, found bool, opts ResolveOpts) interface{} {
	if !found {
		return d.defaultValue()
	}

	v, err := d.Type.Coerce(val, newContext(opts))
	if err != nil {
		return d.defaultValue()
	}
	return v
}

// materializeMap is the two-phase per-field pipeline: dereference the extern
// sentinel if present, then coerce; no field is ever revisited.
func (s *StructSchema) materializeMap(m *yamldoc.Map, ctx *Context) interface{} {
	vals := make([]interface{}, 0, len(s.fields))

	for _, d := range s.fields {
		raw, found := m.Lookup(d.Name)

		childMeta := NewConfigMeta()
		fieldCtx := &Context{
			dir:      ctx.dir,
			rootDir:  ctx.rootDir,
			resolver: ctx.resolver,
			meta:     childMeta,
			warnings: ctx.warnings,
		}

		if found && isExternSentinel(raw) {
			derefVal, derefCtx, ok := dereference(d.Name, fieldCtx)
			if ok {
				raw, fieldCtx = derefVal, derefCtx
			} else {
				found = false
			}
		}

		if !found {
			vals = append(vals, d.defaultValue())
			continue
		}

		v, err := d.Type.Coerce(raw, fieldCtx)
		if err != nil {
			v = d.defaultValue()
		}
		vals = append(vals, v)

		if childMeta.FromExtern() || childMeta.hasChildren() {
			ctx.meta.SetChild(d.Name, childMeta)
		}
	}

	s.warnUnknownKeys(m, ctx)

	return s.construct(vals)
}

func (s *StructSchema) warnUnknownKeys(m *yamldoc.Map, ctx *Context) {
	for _, item := range m.Items {
		if s.hasField(item.Key) {
			continue
		}

		msg := fmt.Sprintf("Unknown key '%s' in '%s'", item.Key, s.name)
		if suggestion, found := spell.Nearest(item.Key, s.fieldNames()); found {
			msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}

		*ctx.warnings = append(*ctx.warnings, Warning{Message: msg, Position: item.Position})
	}
}
