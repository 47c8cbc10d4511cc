// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// 📝 Parse parses sections from YAML. Values keep their source text, so an
// unquoted version such as 0.10 is read as "0.10" and not as a float.
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (Sections, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	sections := Sections{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return sections, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("YAML root is not a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i].Value, root.Content[i+1]
		if body.Kind != yaml.MappingNode {
			continue
		}
		sec := map[string]string{}
		for j := 0; j+1 < len(body.Content); j += 2 {
			v := body.Content[j+1]
			switch {
			case v.Kind != yaml.ScalarNode:
				continue
			case v.Tag == "!!null":
				sec[body.Content[j].Value] = ""
			default:
				sec[body.Content[j].Value] = v.Value
			}
		}
		sections[name] = sec
	}
	return sections, nil
}

// 💾 Encode updates the YAML node tree so comments and ordering survive
func (p *YAMLParser) Encode(ctx context.Context, original []byte, sections Sections) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(original, &doc); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("YAML root is not a mapping")
	}

	for _, name := range sortedKeys(sections) {
		sec := mappingValue(root, name)
		if sec == nil {
			sec = &yaml.Node{Kind: yaml.MappingNode}
			root.Content = append(root.Content, stringNode(name), sec)
		}
		for _, key := range sortedKeys(sections[name]) {
			if v := mappingValue(sec, key); v != nil {
				v.Kind = yaml.ScalarNode
				v.Tag = "!!str"
				v.Value = sections[name][key]
				continue
			}
			sec.Content = append(sec.Content, stringNode(key), stringNode(sections[name][key]))
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, errors.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func stringNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
