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
	"gopkg.in/ini.v1"
)

// 🔧 INIParser reads the config.ini layout used by the generation scripts
type INIParser struct{}

func init() {
	Register(&INIParser{})
}

func (p *INIParser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".ini")
}

func (p *INIParser) load(data []byte) (*ini.File, error) {
	// key case matters: backendTag, githubUrl
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: false}, data)
	if err != nil {
		return nil, errors.Errorf("parsing INI: %w", err)
	}
	return f, nil
}

func (p *INIParser) Parse(ctx context.Context, data []byte) (Sections, error) {
	f, err := p.load(data)
	if err != nil {
		return nil, err
	}

	sections := Sections{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		keys := map[string]string{}
		for _, k := range sec.Keys() {
			keys[k.Name()] = k.String()
		}
		sections[sec.Name()] = keys
	}
	return sections, nil
}

func (p *INIParser) Encode(ctx context.Context, original []byte, sections Sections) ([]byte, error) {
	f, err := p.load(original)
	if err != nil {
		return nil, err
	}

	for _, name := range sortedKeys(sections) {
		sec := f.Section(name)
		for _, key := range sortedKeys(sections[name]) {
			sec.Key(key).SetValue(sections[name][key])
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Errorf("writing INI: %w", err)
	}
	return buf.Bytes(), nil
}
