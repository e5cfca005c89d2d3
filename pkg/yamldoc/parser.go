// Copyright 2025 The yconf Authors.
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/yconf/yconf/pkg/filepos"
	yaml "gopkg.in/yaml.v3"
)

type Parser struct {
	associatedName string
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseBytes parses data as exactly one YAML document. The document tree it
// returns is never shared or mutated; repeated calls over the same bytes
// produce structurally equal trees.
func (p *Parser) ParseBytes(data []byte, associatedName string) (*Document, error) {
	p.associatedName = associatedName

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node

	err := dec.Decode(&root)
	if err != nil {
		if err == io.EOF {
			return &Document{Value: nil, Position: p.newUnknownPosition()}, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if dec.Decode(&extra) != io.EOF {
		return nil, fmt.Errorf("Expected to find exactly one YAML document")
	}

	val, err := p.parse(&root)
	if err != nil {
		return nil, err
	}

	return &Document{Value: val, Position: p.newPosition(root.Line)}, nil
}

func (p *Parser) parse(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return p.parse(node.Content[0])

	case yaml.AliasNode:
		return p.parse(node.Alias)

	case yaml.MappingNode:
		result := &Map{Position: p.newPosition(node.Line)}
		for i := 0; i < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			val, err := p.parse(valNode)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &MapItem{
				Key:      keyNode.Value,
				Value:    val,
				Position: p.newPosition(keyNode.Line),
			})
		}
		return result, nil

	case yaml.SequenceNode:
		result := &Array{Position: p.newPosition(node.Line)}
		for _, itemNode := range node.Content {
			val, err := p.parse(itemNode)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &ArrayItem{
				Value:    val,
				Position: p.newPosition(itemNode.Line),
			})
		}
		return result, nil

	case yaml.ScalarNode:
		return p.parseScalar(node)

	default:
		return nil, fmt.Errorf("Unknown YAML node kind %d at %s", node.Kind, p.newPosition(node.Line).AsCompactString())
	}
}

func (p *Parser) parseScalar(node *yaml.Node) (interface{}, error) {
	switch node.Tag {
	case "!!null":
		return nil, nil

	case "!!bool":
		result, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, fmt.Errorf("Parsing boolean at %s: %s", p.newPosition(node.Line).AsCompactString(), err)
		}
		return result, nil

	case "!!int":
		result, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("Parsing integer at %s: %s", p.newPosition(node.Line).AsCompactString(), err)
		}
		return result, nil

	case "!!float":
		switch node.Value {
		case ".inf", "+.inf", ".Inf", "+.Inf":
			return math.Inf(1), nil
		case "-.inf", "-.Inf":
			return math.Inf(-1), nil
		case ".nan", ".NaN":
			return math.NaN(), nil
		}
		result, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("Parsing float at %s: %s", p.newPosition(node.Line).AsCompactString(), err)
		}
		return result, nil

	default:
		return node.Value, nil
	}
}

func (p *Parser) newPosition(line int) *filepos.Position {
	if line <= 0 {
		return p.newUnknownPosition()
	}
	if p.associatedName == "" {
		return filepos.NewPosition(line)
	}
	return filepos.NewPositionInFile(line, p.associatedName)
}

func (p *Parser) newUnknownPosition() *filepos.Position {
	return filepos.NewUnknownPositionInFile(p.associatedName)
}
