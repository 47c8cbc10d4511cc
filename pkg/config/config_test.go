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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel).WithContext(context.Background())
}

// copyFixture copies a testdata file into a temp dir so Save can write it
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "reading fixture")
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600), "writing fixture")
	return path
}

var formats = []string{"config.ini", "config.yaml", "config.hcl"}

func TestLoad(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			ctx := testContext(t)

			store, err := Load(ctx, filepath.Join("testdata", name))
			require.NoError(t, err, "loading should succeed")

			py, err := store.Version("python")
			require.NoError(t, err)
			assert.Equal(t, "9.2.1", py, "python version should match")

			ts, err := store.Version("typescript")
			require.NoError(t, err)
			assert.Equal(t, "4.5.6", ts, "typescript version should match")

			assert.Equal(t, "nightly-2024-05-21", store.BackendTag(), "backend tag should keep its key case")
			url, ok := store.Get("general", "githubUrl")
			assert.True(t, ok, "githubUrl should exist")
			assert.Equal(t, "https://github.com/geo-engine/openapi-client", url)

			assert.Equal(t, []string{"python", "typescript"}, store.Languages())
			assert.Equal(t, []string{"general", "input", "python", "typescript"}, store.Sections())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "unsupported_extension",
			path:    "testdata/config.toml",
			wantErr: ErrNoParser,
		},
		{
			name: "missing_file",
			path: "testdata/does-not-exist.ini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(ctx, tt.path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVersionUnknownLanguage(t *testing.T) {
	ctx := testContext(t)

	store, err := Load(ctx, "testdata/missing.ini")
	require.NoError(t, err)

	tests := []struct {
		name     string
		language string
	}{
		{name: "section_without_version", language: "python"},
		{name: "missing_section", language: "typescript"},
		{name: "unknown_language", language: "rust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Version(tt.language)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownLanguage)
			assert.Contains(t, err.Error(), tt.language, "error should name the language")
		})
	}
}

func TestBumpAndSave(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			ctx := testContext(t)
			path := copyFixture(t, name)

			store, err := Load(ctx, path)
			require.NoError(t, err)

			store.SetBackendTag("2024-06-01")
			require.NoError(t, store.Bump(ctx), "bumping all languages should succeed")
			require.NoError(t, store.Save(ctx), "saving should succeed")

			reloaded, err := Load(ctx, path)
			require.NoError(t, err)

			py, err := reloaded.Version("python")
			require.NoError(t, err)
			assert.Equal(t, "9.2.2", py)

			ts, err := reloaded.Version("typescript")
			require.NoError(t, err)
			assert.Equal(t, "4.5.7", ts)

			assert.Equal(t, "2024-06-01", reloaded.BackendTag())

			pkg, ok := reloaded.Get("typescript", "name")
			assert.True(t, ok, "untouched keys should survive")
			assert.Equal(t, "@geoengine/openapi-client", pkg)
		})
	}
}

func TestYAMLUnquotedVersionKeepsText(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "python:\n  version: 0.10\n  packageName: geoengine_openapi_client\ntypescript:\n  version: 1.20\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store, err := Load(ctx, path)
	require.NoError(t, err)

	py, err := store.Version("python")
	require.NoError(t, err)
	assert.Equal(t, "0.10", py, "unquoted version should keep its trailing zero")

	ts, err := store.Version("typescript")
	require.NoError(t, err)
	assert.Equal(t, "1.20", ts)

	require.NoError(t, store.Bump(ctx))
	require.NoError(t, store.Save(ctx))

	reloaded, err := Load(ctx, path)
	require.NoError(t, err)

	py, err = reloaded.Version("python")
	require.NoError(t, err)
	assert.Equal(t, "0.11", py, "bump should increment the last component")

	ts, err = reloaded.Version("typescript")
	require.NoError(t, err)
	assert.Equal(t, "1.21", ts)

	name, ok := reloaded.Get("python", "packageName")
	assert.True(t, ok)
	assert.Equal(t, "geoengine_openapi_client", name)
}

func TestSaveKeepsYAMLComments(t *testing.T) {
	ctx := testContext(t)
	path := copyFixture(t, "config.yaml")

	store, err := Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Bump(ctx, "python"))
	require.NoError(t, store.Save(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# generation settings")
	assert.Contains(t, string(data), "# stamped into the user agent")
}

func TestBumpSelectedLanguage(t *testing.T) {
	ctx := testContext(t)
	path := copyFixture(t, "config.ini")

	store, err := Load(ctx, path)
	require.NoError(t, err)

	require.NoError(t, store.Bump(ctx, "typescript"))

	py, _ := store.Version("python")
	ts, _ := store.Version("typescript")
	assert.Equal(t, "9.2.1", py, "python should be untouched")
	assert.Equal(t, "4.5.7", ts)

	err = store.Bump(ctx, "rust")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestBumpVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr bool
	}{
		{name: "patch", version: "9.2.1", want: "9.2.2"},
		{name: "carry_free", version: "1.0.9", want: "1.0.10"},
		{name: "single_component", version: "7", want: "8"},
		{name: "surrounding_space", version: " 0.0.1 ", want: "0.0.2"},
		{name: "not_numeric", version: "1.x", wantErr: true},
		{name: "empty", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BumpVersion(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "config.ini", want: &INIParser{}},
		{filename: "CONFIG.INI", want: &INIParser{}},
		{filename: "config.yaml", want: &YAMLParser{}},
		{filename: "config.yml", want: &YAMLParser{}},
		{filename: "config.hcl", want: &HCLParser{}},
		{filename: "config.json", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
