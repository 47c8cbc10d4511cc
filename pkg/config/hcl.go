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
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files.
// Each section is a label-less block:
//
//	python {
//	  version = "9.2.1"
//	}
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses sections from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (Sections, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.Errorf("parsing HCL: unexpected body type %T", hclFile.Body)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	sections := Sections{}
	for _, block := range body.Blocks {
		sec, exists := sections[block.Type]
		if !exists {
			sec = map[string]string{}
			sections[block.Type] = sec
		}
		for name, attr := range block.Body.Attributes {
			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return nil, errors.Errorf("evaluating %s.%s: %s", block.Type, name, diags.Error())
			}
			str, err := convert.Convert(val, cty.String)
			if err != nil {
				return nil, errors.Errorf("converting %s.%s: %w", block.Type, name, err)
			}
			if str.IsNull() {
				sec[name] = ""
				continue
			}
			sec[name] = str.AsString()
		}
	}
	return sections, nil
}

// 💾 Encode rewrites attribute values in place with hclwrite
func (p *HCLParser) Encode(ctx context.Context, original []byte, sections Sections) ([]byte, error) {
	f, diags := hclwrite.ParseConfig(original, "config.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	root := f.Body()
	for _, name := range sortedKeys(sections) {
		block := root.FirstMatchingBlock(name, nil)
		if block == nil {
			block = root.AppendNewBlock(name, nil)
		}
		for _, key := range sortedKeys(sections[name]) {
			block.Body().SetAttributeValue(key, cty.StringVal(sections[name][key]))
		}
	}
	return f.Bytes(), nil
}
