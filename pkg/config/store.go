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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnknownLanguage is returned when a language has no version in the store.
	ErrUnknownLanguage = errors.Base("unknown language")

	// ErrNoParser is returned when no registered parser accepts a file name.
	ErrNoParser = errors.Base("no parser for config file")
)

const (
	keyVersion    = "version"
	sectionInput  = "input"
	keyBackendTag = "backendTag"
)

// 📦 Store is the persisted settings of the generation run: one section per
// target language plus the input and general sections
type Store struct {
	path     string
	parser   Parser
	original []byte
	sections Sections
}

// 📝 Load reads a config file, picking the parser by extension
func Load(ctx context.Context, path string) (*Store, error) {
	parser := GetParser(path)
	if parser == nil {
		return nil, errors.Errorf("%w: %s", ErrNoParser, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	sections, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Strs("sections", sortedKeys(sections)).
		Msg("loaded config")

	return &Store{
		path:     path,
		parser:   parser,
		original: data,
		sections: sections,
	}, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Sections lists the section names in sorted order.
func (s *Store) Sections() []string {
	return sortedKeys(s.sections)
}

// Get returns a raw value.
func (s *Store) Get(section, key string) (string, bool) {
	sec, ok := s.sections[section]
	if !ok {
		return "", false
	}
	v, ok := sec[key]
	return v, ok
}

// Set stores a raw value, creating the section when needed.
func (s *Store) Set(section, key, value string) {
	if s.sections == nil {
		s.sections = Sections{}
	}
	sec, ok := s.sections[section]
	if !ok {
		sec = map[string]string{}
		s.sections[section] = sec
	}
	sec[key] = value
}

// 🏷️ Version returns the client version of a target language
func (s *Store) Version(language string) (string, error) {
	v, ok := s.Get(language, keyVersion)
	if !ok || strings.TrimSpace(v) == "" {
		return "", errors.Errorf("%w: %s", ErrUnknownLanguage, language)
	}
	return strings.TrimSpace(v), nil
}

// Languages lists the sections that carry a version.
func (s *Store) Languages() []string {
	var out []string
	for _, name := range s.Sections() {
		if _, ok := s.sections[name][keyVersion]; ok {
			out = append(out, name)
		}
	}
	return out
}

// BackendTag returns the backend image tag the clients were generated from.
func (s *Store) BackendTag() string {
	v, _ := s.Get(sectionInput, keyBackendTag)
	return v
}

// SetBackendTag records a new backend image tag.
func (s *Store) SetBackendTag(tag string) {
	s.Set(sectionInput, keyBackendTag, tag)
}

// ⬆️ Bump increments the patch component of each language version.
// With no languages given, every versioned section is bumped.
func (s *Store) Bump(ctx context.Context, languages ...string) error {
	if len(languages) == 0 {
		languages = s.Languages()
	}

	for _, lang := range languages {
		current, err := s.Version(lang)
		if err != nil {
			return err
		}
		next, err := BumpVersion(current)
		if err != nil {
			return errors.Errorf("bumping %s: %w", lang, err)
		}
		s.Set(lang, keyVersion, next)

		zerolog.Ctx(ctx).Info().
			Str("language", lang).
			Str("from", current).
			Str("to", next).
			Msg("bumped version")
	}
	return nil
}

// 💾 Save writes the store back to its file in the source format
func (s *Store) Save(ctx context.Context) error {
	data, err := s.parser.Encode(ctx, s.original, s.sections)
	if err != nil {
		return errors.Errorf("encoding %s: %w", s.path, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(s.path, data, mode); err != nil {
		return errors.Errorf("writing config file: %w", err)
	}
	s.original = data

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("saved config")
	return nil
}

// BumpVersion increments the last dotted component of a numeric version.
func BumpVersion(version string) (string, error) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return "", errors.Errorf("invalid version %q: %w", version, err)
		}
	}
	last, _ := strconv.Atoi(parts[len(parts)-1])
	parts[len(parts)-1] = strconv.Itoa(last + 1)
	return strings.Join(parts, "."), nil
}
