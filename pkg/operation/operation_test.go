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

package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/genpatch/pkg/config"
	"github.com/walteh/genpatch/pkg/operation"
	"github.com/walteh/genpatch/pkg/rewrite"
	"github.com/walteh/genpatch/pkg/status"
)

// 🧪 testContext returns a context carrying a test logger
func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

// 🧪 placeFixture copies a generator fixture to dir/rel
func placeFixture(t *testing.T, dir, rel, fixture string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "fixes", "testdata", fixture))
	require.NoError(t, err, "reading fixture %s", fixture)
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func loadStore(t *testing.T, ctx context.Context, name string) *config.Store {
	t.Helper()
	store, err := config.Load(ctx, filepath.Join("..", "config", "testdata", name))
	require.NoError(t, err)
	return store
}

func shoutRules() *rewrite.RuleSet {
	return &rewrite.RuleSet{
		File:     "shout.py",
		Language: "python",
		Indent:   2,
		Rules: []rewrite.Rule{
			{
				Name:     "shout",
				Trigger:  rewrite.Trigger{Prefix: "print("},
				Policy:   rewrite.Replace,
				Template: rewrite.NewTemplate("print('HELLO')\n"),
				Level:    2,
			},
		},
	}
}

func TestModify(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		transform   rewrite.Transform
		opts        operation.Options
		wantContent string
		wantChanged bool
		wantWritten bool
	}{
		{
			name:        "identity_leaves_file_alone",
			content:     "def f():\n    print('hello')\n",
			transform:   rewrite.Identity,
			wantContent: "def f():\n    print('hello')\n",
		},
		{
			name:        "rewrites_matching_line",
			content:     "def f():\n    print('hello')\n",
			transform:   shoutRules().Transform,
			wantContent: "def f():\n    print('HELLO')\n",
			wantChanged: true,
			wantWritten: true,
		},
		{
			name:        "dry_run_does_not_write",
			content:     "def f():\n    print('hello')\n",
			transform:   shoutRules().Transform,
			opts:        operation.Options{DryRun: true},
			wantContent: "def f():\n    print('hello')\n",
			wantChanged: true,
		},
		{
			name:        "empty_file",
			content:     "",
			transform:   shoutRules().Transform,
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			path := filepath.Join(t.TempDir(), "shout.py")
			writeFile(t, path, tt.content)

			res, err := operation.Modify(ctx, path, tt.transform, tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChanged, res.Changed, "changed flag should match")
			assert.Equal(t, tt.wantWritten, res.Written, "written flag should match")
			assert.Equal(t, tt.wantContent, readFile(t, path), "file content should match")
		})
	}
}

func TestModifyMissingFile(t *testing.T) {
	ctx := testContext(t)
	_, err := operation.Modify(ctx, filepath.Join(t.TempDir(), "missing.py"), rewrite.Identity, operation.Options{})
	assert.Error(t, err)
}

func TestPatchExceptionsEndToEnd(t *testing.T) {
	ctx := testContext(t)
	path := placeFixture(t, t.TempDir(), "geoengine_openapi_client/exceptions.py", "exceptions.py")

	res, err := operation.Patch(ctx, path, operation.FixesSelector(loadStore(t, ctx, "config.ini")), operation.Options{})
	require.NoError(t, err)

	assert.True(t, res.Written, "file should be rewritten")
	assert.Equal(t, status.StatusPatched, res.Status())
	assert.Equal(t, "python", res.Language)
	assert.Empty(t, res.Unmatched, "every trigger should be found")

	want := strings.Join([]string{
		`        """Custom error messages for exception"""`,
		`        # Note: changed message formatting`,
		`        import json`,
		`        parsed_body = json.loads(self.body)`,
		`        return f'{parsed_body["error"]}: {parsed_body["message"]}'`,
		``,
	}, "\n")
	assert.Contains(t, readFile(t, path), want, "block should directly follow the docstring")

	added, removed := res.Stats()
	assert.Equal(t, 5, added)
	assert.Equal(t, 0, removed)
}

func TestPatchUnrelatedFileIsByteIdentical(t *testing.T) {
	ctx := testContext(t)
	path := placeFixture(t, t.TempDir(), "unrelated.py", "unrelated.py")
	before := readFile(t, path)

	res, err := operation.Patch(ctx, path, operation.FixesSelector(nil), operation.Options{})
	require.NoError(t, err)

	assert.True(t, res.Skipped, "unknown names should be skipped")
	assert.Equal(t, status.StatusSkipped, res.Status())
	assert.Equal(t, before, readFile(t, path), "file should be byte-identical")
}

func TestPatchUserAgentVersion(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	store := loadStore(t, ctx, "config.ini")

	py := placeFixture(t, dir, "python/api_client.py", "api_client.py")
	ts := placeFixture(t, dir, "typescript/runtime.ts", "runtime.ts")

	for _, path := range []string{py, ts} {
		_, err := operation.Patch(ctx, path, operation.FixesSelector(store), operation.Options{})
		require.NoError(t, err)
	}

	assert.Contains(t, readFile(t, py), "geoengine/openapi-client/python/9.2.1")
	assert.Contains(t, readFile(t, ts), "geoengine/openapi-client/typescript/4.5.6")
}

func TestPatchUnknownLanguageLeavesFileUntouched(t *testing.T) {
	ctx := testContext(t)
	path := placeFixture(t, t.TempDir(), "api_client.py", "api_client.py")
	before := readFile(t, path)

	_, err := operation.Patch(ctx, path, operation.FixesSelector(loadStore(t, ctx, "missing.ini")), operation.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownLanguage)
	assert.Equal(t, before, readFile(t, path), "nothing should be written on failure")
}

func TestPatchReportsMissingTriggers(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "palette_colorizer.py")
	writeFile(t, path, "class PaletteColorizer:\n    pass\n")

	res, err := operation.Patch(ctx, path, operation.FixesSelector(nil), operation.Options{})
	require.NoError(t, err)

	assert.Equal(t, status.StatusUnchanged, res.Status())
	assert.Equal(t, []string{"colors_field"}, res.Unmatched)
	assert.Equal(t, "class PaletteColorizer:\n    pass\n", readFile(t, path))
}

func TestResultDiff(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "shout.py")
	writeFile(t, path, "def f():\n    print('hello')\n    return\n")

	res, err := operation.Modify(ctx, path, shoutRules().Transform, operation.Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, "  def f():\n-     print('hello')\n+     print('HELLO')\n      return\n", res.Diff())

	added, removed := res.Stats()
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)

	unchanged := &operation.Result{Before: []string{"a\n"}, After: []string{"a\n"}}
	assert.Empty(t, unchanged.Diff())
}
