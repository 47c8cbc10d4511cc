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

// Package fixes holds the corrections applied to files emitted by
// openapi-generator, keyed by the generated file's name.
package fixes

import (
	"path/filepath"
	"slices"

	"github.com/walteh/genpatch/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

const (
	Python     = "python"
	TypeScript = "typescript"
)

// Versions resolves the released version of a client language.
type Versions interface {
	Version(language string) (string, error)
}

// Builder assembles the rules for one generated file.
type Builder func(v Versions) (*rewrite.RuleSet, error)

type entry struct {
	language string
	build    Builder
}

// 🗺️ table maps generated file names to their corrections
var table = map[string]entry{
	"api_client.py":                     {Python, apiClientPy},
	"exceptions.py":                     {Python, exceptionsPy},
	"palette_colorizer.py":              {Python, paletteColorizerPy},
	"raster_dataset_from_workflow.py":   {Python, rasterDatasetFromWorkflowPy},
	"task_status_with_id.py":            {Python, taskStatusWithIDPy},
	"linear_gradient_with_type.py":      {Python, defaultColorPy("linear_gradient_with_type.py")},
	"logarithmic_gradient_with_type.py": {Python, defaultColorPy("logarithmic_gradient_with_type.py")},

	"runtime.ts":            {TypeScript, runtimeTs},
	"ProjectUpdateToken.ts": {TypeScript, projectUpdateTokenTs},
	"PlotUpdate.ts":         {TypeScript, plotUpdateTs},
	"LayerUpdate.ts":        {TypeScript, layerUpdateTs},
	"TaskStatusWithId.ts":   {TypeScript, taskStatusWithIDTs},
}

// Select returns the rules for the file at path, matched on its base name.
// Unknown names get an empty rule set, which leaves the file as it is.
func Select(path string, v Versions) (*rewrite.RuleSet, error) {
	name := filepath.Base(path)
	e, ok := table[name]
	if !ok {
		return &rewrite.RuleSet{File: name}, nil
	}
	rs, err := e.build(v)
	if err != nil {
		return nil, errors.Errorf("building rules for %s: %w", name, err)
	}
	return rs, nil
}

// Known reports whether corrections exist for the file at path.
func Known(path string) bool {
	_, ok := table[filepath.Base(path)]
	return ok
}

// Files lists the registered file names of a language, or of every
// language when language is empty.
func Files(language string) []string {
	var names []string
	for name, e := range table {
		if language == "" || e.language == language {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Languages lists the client languages with corrections.
func Languages() []string {
	return []string{Python, TypeScript}
}

func version(v Versions, language string) (string, error) {
	if v == nil {
		return "", errors.Errorf("no version source for %s", language)
	}
	ver, err := v.Version(language)
	if err != nil {
		return "", errors.Errorf("resolving %s version: %w", language, err)
	}
	return ver, nil
}
