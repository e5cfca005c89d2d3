// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

// ConfigMeta records where a resolved value came from. A value loaded through
// an extern reference remembers the companion file path so that a later
// write-back targets that file instead of inlining the content into the
// parent document. Methods are nil-receiver safe; a nil meta simply reports
// no provenance.
type ConfigMeta struct {
	path     string
	extern   bool
	children map[string]*ConfigMeta
}

func NewConfigMeta() *ConfigMeta {
	return &ConfigMeta{}
}

// Path is the file the value was loaded from, relative to the directory of
// the primary document. Empty for values resolved in place.
func (m *ConfigMeta) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

func (m *ConfigMeta) FromExtern() bool {
	return m != nil && m.extern
}

// MarkExtern records that the value was sourced from the extern file at path.
// Marking also forces the sentinel to be re-emitted on serialization.
func (m *ConfigMeta) MarkExtern(path string) {
	m.extern = true
	m.path = path
}

func (m *ConfigMeta) Child(name string) *ConfigMeta {
	if m == nil {
		return nil
	}
	return m.children[name]
}

func (m *ConfigMeta) SetChild(name string, child *ConfigMeta) {
	if m.children == nil {
		m.children = map[string]*ConfigMeta{}
	}
	m.children[name] = child
}

func (m *ConfigMeta) hasChildren() bool {
	return m != nil && len(m.children) > 0
}
