// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

type Printer struct {
	writer io.Writer
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer}
}

// Print renders the document as YAML text, preserving mapping order.
func (p Printer) Print(doc *Document) error {
	node, err := asYAMLNode(doc.Value)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(2)

	err = enc.Encode(node)
	if err != nil {
		return fmt.Errorf("Encoding YAML: %s", err)
	}

	return enc.Close()
}

func (p Printer) PrintStr(doc *Document) (string, error) {
	return PrintStr(doc)
}

// PrintStr renders the document as a YAML string.
func PrintStr(doc *Document) (string, error) {
	buf := new(bytes.Buffer)

	err := Printer{buf}.Print(doc)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func asYAMLNode(val interface{}) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case *Document:
		return asYAMLNode(typedVal.Value)

	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, item := range typedVal.Items {
			keyNode := &yaml.Node{}
			err := keyNode.Encode(item.Key)
			if err != nil {
				return nil, err
			}
			valNode, err := asYAMLNode(item.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil

	case *Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typedVal.Items {
			itemNode, err := asYAMLNode(item.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil

	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	case float64:
		// keep whole floats spelled as floats so they reparse as floats
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(typedVal)}, nil

	default:
		node := &yaml.Node{}
		err := node.Encode(typedVal)
		if err != nil {
			return nil, fmt.Errorf("Encoding scalar %#v: %s", typedVal, err)
		}
		return node, nil
	}
}

func formatFloat(val float64) string {
	switch {
	case math.IsInf(val, 1):
		return ".inf"
	case math.IsInf(val, -1):
		return "-.inf"
	case math.IsNaN(val):
		return ".nan"
	}

	result := strconv.FormatFloat(val, 'g', -1, 64)
	if !strings.ContainsAny(result, ".eE") {
		result += ".0"
	}
	return result
}
