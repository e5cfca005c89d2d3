// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"path/filepath"
	"strings"

	"github.com/yconf/yconf/pkg/yamldoc"
)

// ExternSentinel marks a field whose content lives in another file.
const ExternSentinel = "extern"

func isExternSentinel(val interface{}) bool {
	typedVal, ok := val.(string)
	return ok && typedVal == ExternSentinel
}

// dereference swaps the extern sentinel on the named field for the root value
// of the located companion file. Resolution of that value continues relative
// to the companion file's own directory, so externs nest.
//
// Any failure here (no candidate file, unreadable, unparsable) reports
// ok=false and the caller treats the field as absent. The sentinel is then
// NOT recorded in provenance: a later write-back inlines the defaulted
// content rather than re-emitting a reference that never resolved.
func dereference(field string, ctx *Context) (interface{}, *Context, bool) {
	if ctx.resolver == nil {
		return nil, nil, false
	}

	src, found := ctx.resolver.Locate(ctx.dir, field)
	if !found {
		return nil, nil, false
	}

	data, err := src.Bytes()
	if err != nil {
		return nil, nil, false
	}

	path := src.RelativePath()

	doc, err := yamldoc.NewParser().ParseBytes(data, path)
	if err != nil {
		return nil, nil, false
	}

	ctx.meta.MarkExtern(relativeToRoot(ctx.rootDir, path))

	newCtx := &Context{
		dir:      filepath.Dir(path),
		rootDir:  ctx.rootDir,
		resolver: ctx.resolver,
		meta:     ctx.meta,
		warnings: ctx.warnings,
	}

	return doc.Value, newCtx, true
}

func relativeToRoot(rootDir, path string) string {
	rel, err := filepath.Rel(rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
