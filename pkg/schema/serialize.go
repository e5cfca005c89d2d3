// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"path/filepath"

	"github.com/yconf/yconf/pkg/filepos"
	"github.com/yconf/yconf/pkg/files"
	"github.com/yconf/yconf/pkg/yamldoc"
)

// Serialize turns a typed value back into a document tree, in schema field
// order. A field whose meta marks it extern-sourced is emitted as the
// sentinel string; its actual content is produced by ExternFiles. Passing a
// nil meta inlines everything.
func Serialize(s *StructSchema, v interface{}, meta *ConfigMeta) *yamldoc.Document {
	return &yamldoc.Document{Value: s.encodeValue(v, meta), Position: filepos.NewUnknownPosition()}
}

// SerializeInline ignores provenance and inlines all nested content.
func SerializeInline(s *StructSchema, v interface{}) *yamldoc.Document {
	return Serialize(s, v, nil)
}

func (s *StructSchema) encodeValue(v interface{}, meta *ConfigMeta) *yamldoc.Map {
	vals := s.deconstruct(v)
	if len(vals) != len(s.fields) {
		panic(fmt.Sprintf("Internal inconsistency: schema '%s' deconstruct returned %d values for %d fields", s.name, len(vals), len(s.fields)))
	}

	result := &yamldoc.Map{}

	for i, d := range s.fields {
		child := meta.Child(d.Name)

		nested, isStruct := structSchemaOf(d.Type)

		var itemVal interface{}
		switch {
		case child.FromExtern():
			itemVal = ExternSentinel
		case child.hasChildren() && isStruct && vals[i] != nil:
			// nested value with extern grandchildren keeps its own split
			itemVal = nested.encodeValue(vals[i], child)
		default:
			itemVal = d.Type.Encode(vals[i])
		}

		result.Items = append(result.Items, &yamldoc.MapItem{Key: d.Name, Value: itemVal})
	}

	return result
}

// ExternFiles renders the companion file for every extern-sourced field,
// recursively, each addressed at its recorded path.
func ExternFiles(s *StructSchema, v interface{}, meta *ConfigMeta) ([]files.OutputFile, error) {
	var result []files.OutputFile
	err := collectExternFiles(s, v, meta, &result)
	return result, err
}

func collectExternFiles(s *StructSchema, v interface{}, meta *ConfigMeta, result *[]files.OutputFile) error {
	vals := s.deconstruct(v)

	for i, d := range s.fields {
		child := meta.Child(d.Name)
		if child == nil {
			continue
		}

		nested, isStruct := structSchemaOf(d.Type)

		if child.FromExtern() {
			// struct-typed content keeps its own nested extern split; any
			// other field type is rendered through its encoder
			var doc *yamldoc.Document
			if isStruct && vals[i] != nil {
				doc = Serialize(nested, vals[i], child)
			} else {
				doc = &yamldoc.Document{Value: d.Type.Encode(vals[i]), Position: filepos.NewUnknownPosition()}
			}

			text, err := yamldoc.PrintStr(doc)
			if err != nil {
				return err
			}
			*result = append(*result, files.NewOutputFile(child.Path(), []byte(text)))
		}

		if isStruct && vals[i] != nil {
			err := collectExternFiles(nested, vals[i], child, result)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func structSchemaOf(t Type) (*StructSchema, bool) {
	switch typedType := t.(type) {
	case StructType:
		return typedType.Schema, true
	case OptionalType:
		return structSchemaOf(typedType.Elem)
	default:
		return nil, false
	}
}

// WriteFile writes the serialized value to path, plus a companion file next
// to it for every extern-sourced field. An extern reference that never
// resolved at load time has no provenance and is therefore written inline:
// broken references self-heal on write-back.
func WriteFile(s *StructSchema, v interface{}, meta *ConfigMeta, path string) error {
	text, err := yamldoc.PrintStr(Serialize(s, v, meta))
	if err != nil {
		return err
	}

	outFiles := []files.OutputFile{files.NewOutputFile(filepath.Base(path), []byte(text))}

	externFiles, err := ExternFiles(s, v, meta)
	if err != nil {
		return err
	}
	outFiles = append(outFiles, externFiles...)

	dir := filepath.Dir(path)
	for _, outFile := range outFiles {
		err := outFile.Create(dir)
		if err != nil {
			return fmt.Errorf("Writing '%s': %s", outFile.Path(dir), err)
		}
	}

	return nil
}
