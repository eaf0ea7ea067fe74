/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/recordstore/codec"
)

// yamlDocument is the on-disk shape of a schema file:
//
//	tables:
//	  - table: Posts
//	    attributes:
//	      - name: id
//	        type: integer
//	        key: hash
//	      - name: date
//	        type: date
//	        key: range
//	      - name: body
//	        type: string
//	        storage: body_text
type yamlDocument struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Table      string          `yaml:"table"`
	Attributes []yamlAttribute `yaml:"attributes"`
}

type yamlAttribute struct {
	Name    string            `yaml:"name"`
	Type    string            `yaml:"type"`
	Key     string            `yaml:"key"`
	Storage string            `yaml:"storage"`
	Default string            `yaml:"default"`
	Options map[string]string `yaml:"options"`
}

// ParseYAML builds record definitions from a YAML schema document.
// Builder errors (duplicate attributes, duplicate key roles, missing hash
// key) propagate with the table name attached.
func ParseYAML(data []byte) ([]*Definition, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("schema document declares no tables")
	}

	defs := make([]*Definition, 0, len(doc.Tables))
	for _, table := range doc.Tables {
		if table.Table == "" {
			return nil, fmt.Errorf("schema document contains a table with no name")
		}

		builder := NewBuilder(table.Table)
		for _, attr := range table.Attributes {
			opts, err := attr.options()
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", table.Table, err)
			}
			if err := builder.Attribute(attr.Name, codec.Type(attr.Type), opts...); err != nil {
				return nil, fmt.Errorf("table %q: %w", table.Table, err)
			}
		}

		def, err := builder.Finalize()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// LoadYAMLFile reads and parses a YAML schema file.
func LoadYAMLFile(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return ParseYAML(data)
}

func (a yamlAttribute) options() ([]AttributeOption, error) {
	var opts []AttributeOption

	switch a.Key {
	case "":
	case "hash":
		opts = append(opts, HashKey())
	case "range":
		opts = append(opts, RangeKey())
	default:
		return nil, fmt.Errorf("attribute %q: unknown key role %q", a.Name, a.Key)
	}

	if a.Storage != "" {
		opts = append(opts, WithStorageName(a.Storage))
	}

	switch a.Default {
	case "":
	case "uuid":
		opts = append(opts, WithDefault(UUIDString))
	default:
		opts = append(opts, WithDefault(StaticDefault(a.Default)))
	}

	if len(a.Options) > 0 {
		opts = append(opts, WithOptions(a.Options))
	}

	return opts, nil
}
