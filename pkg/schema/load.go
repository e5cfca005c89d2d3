// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"path/filepath"

	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/yamldoc"
)

// Load parses data as a document and materializes it against the schema.
// A root parse failure is the hard kind and aborts the load.
func Load(s *StructSchema, data []byte, name string, opts ResolveOpts) (*Resolution, error) {
	doc, err := yamldoc.NewParser().ParseBytes(data, name)
	if err != nil {
		return nil, NewConfigError(name, err)
	}

	return Materialize(s, doc, opts), nil
}

// LoadFile reads, parses and materializes the config file at path. Extern
// references are resolved relative to the file's directory; a nil resolver
// defaults to the local filesystem.
func LoadFile(s *StructSchema, path string, resolver files.Resolver) (*Resolution, error) {
	data, err := files.NewLocalSource(path).Bytes()
	if err != nil {
		return nil, NewConfigError(path, err)
	}

	if resolver == nil {
		resolver = files.NewLocalResolver()
	}

	return Load(s, data, path, ResolveOpts{Dir: filepath.Dir(path), Resolver: resolver})
}
