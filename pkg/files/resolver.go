// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
)

// Resolver locates the file backing an extern reference. Given the directory
// of the document currently being resolved and the name of the field carrying
// the extern sentinel, it returns the Source to load the field's content from.
//
// Lookup order is fixed:
//
//	<dir>/<field>/config.yml  (then the .yaml variant)
//	<dir>/<field>.yml         (then the .yaml variant)
//
// The first existing candidate wins.
type Resolver interface {
	Locate(dir, field string) (Source, bool)
}

var _ = []Resolver{LocalResolver{}, &InMemoryResolver{}}

func externCandidates(dir, field string) []string {
	return []string{
		filepath.Join(dir, field, "config.yml"),
		filepath.Join(dir, field, "config.yaml"),
		filepath.Join(dir, field+".yml"),
		filepath.Join(dir, field+".yaml"),
	}
}

// LocalResolver locates extern files on the local filesystem.
type LocalResolver struct{}

func NewLocalResolver() LocalResolver { return LocalResolver{} }

func (r LocalResolver) Locate(dir, field string) (Source, bool) {
	for _, candidate := range externCandidates(dir, field) {
		fileInfo, err := os.Stat(candidate)
		if err != nil || fileInfo.IsDir() {
			continue
		}
		return NewLocalSource(candidate), true
	}
	return nil, false
}

// InMemoryResolver serves extern lookups from a fixed set of in-memory files,
// keyed by path. Meant for tests.
type InMemoryResolver struct {
	files map[string][]byte
}

func NewInMemoryResolver(files map[string][]byte) *InMemoryResolver {
	return &InMemoryResolver{files}
}

func (r *InMemoryResolver) Locate(dir, field string) (Source, bool) {
	for _, candidate := range externCandidates(dir, field) {
		if data, found := r.files[candidate]; found {
			return NewBytesSource(candidate, data), true
		}
	}
	return nil, false
}
