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

package fixes

import (
	"fmt"

	"github.com/walteh/genpatch/pkg/rewrite"
)

const typescriptIndent rewrite.Indent = 4

func runtimeTs(v Versions) (*rewrite.RuleSet, error) {
	ver, err := version(v, TypeScript)
	if err != nil {
		return nil, err
	}

	return &rewrite.RuleSet{
		File:     "runtime.ts",
		Language: TypeScript,
		Indent:   typescriptIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "user_agent",
				Trigger: rewrite.Trigger{Prefix: "export const DefaultConfig = new Configuration();"},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(fmt.Sprintf(`
					export const DefaultConfig = new Configuration({
					    headers: {
					        'User-Agent': 'geoengine/openapi-client/typescript/%s'
					    }
					});
				`, ver)),
			},
		},
	}, nil
}

// openapi-generator#14831: union types with an enum member lose their guards.

func projectUpdateTokenTs(Versions) (*rewrite.RuleSet, error) {
	return &rewrite.RuleSet{
		File:     "ProjectUpdateToken.ts",
		Language: TypeScript,
		Indent:   typescriptIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "instance_of",
				Trigger: rewrite.Trigger{Prefix: "export function ProjectUpdateTokenToJSON"},
				Policy:  rewrite.Prepend,
				Template: rewrite.NewTemplate(`
					export function instanceOfProjectUpdateToken(value: any): boolean {
					    return value === ProjectUpdateToken.None || value === ProjectUpdateToken.Delete;
					}

				`),
			},
		},
	}, nil
}

func plotUpdateTs(Versions) (*rewrite.RuleSet, error) {
	return unionUpdateTs("PlotUpdate.ts", "Plot"), nil
}

func layerUpdateTs(Versions) (*rewrite.RuleSet, error) {
	return unionUpdateTs("LayerUpdate.ts", "ProjectLayer"), nil
}

// unionUpdateTs fixes a `<Model> | ProjectUpdateToken` union whose generated
// code treats every value as the model.
func unionUpdateTs(file, model string) *rewrite.RuleSet {
	return &rewrite.RuleSet{
		File:     file,
		Language: TypeScript,
		Indent:   typescriptIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "from_json",
				Trigger: rewrite.Trigger{Prefix: fmt.Sprintf("return { ...%sFromJSONTyped(json, true)", model)},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(fmt.Sprintf(`
					if (json === ProjectUpdateToken.None) {
					    return ProjectUpdateToken.None;
					} else if (json === ProjectUpdateToken.Delete) {
					    return ProjectUpdateToken.Delete;
					} else {
					    return %sFromJSONTyped(json, true);
					}
				`, model)),
				Level: 1,
			},
			{
				Name:    "to_json",
				Trigger: rewrite.Trigger{Prefix: fmt.Sprintf("if (instanceOf%s(value))", model)},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(fmt.Sprintf(`
					if (typeof value === 'object' && instanceOf%s(value)) {
				`, model)),
				Level: 1,
			},
		},
	}
}

// interfaces cannot extend a union type
func taskStatusWithIDTs(Versions) (*rewrite.RuleSet, error) {
	return &rewrite.RuleSet{
		File:     "TaskStatusWithId.ts",
		Language: TypeScript,
		Indent:   typescriptIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "intersection_type",
				Trigger: rewrite.Trigger{Prefix: "export interface TaskStatusWithId extends TaskStatus"},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(`
					export type TaskStatusWithId = { taskId: string } & TaskStatus;

					export interface _TaskStatusWithId /* extends TaskStatus */ {
				`),
			},
		},
	}, nil
}
