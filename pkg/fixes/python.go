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

// The python generator nests blocks by four columns but lays some of them
// out with two, so two columns is the smallest common step. Rule levels are
// absolute: level 5 always renders at column 10, wherever the trigger sits.
const pythonIndent rewrite.Indent = 2

func apiClientPy(v Versions) (*rewrite.RuleSet, error) {
	ver, err := version(v, Python)
	if err != nil {
		return nil, err
	}

	return &rewrite.RuleSet{
		File:     "api_client.py",
		Language: Python,
		Indent:   pythonIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "user_agent",
				Trigger: rewrite.Trigger{Prefix: "self.user_agent = 'OpenAPI-Generator/"},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(fmt.Sprintf(`
					self.user_agent = 'geoengine/openapi-client/python/%s'
				`, ver)),
				Level: 4,
			},
			{
				Name: "empty_response",
				Trigger: rewrite.Trigger{
					Previous: "response_data.data = response_data.data",
					Prefix:   "else:",
				},
				Policy: rewrite.Replace,
				Template: rewrite.NewTemplate(`
					elif response_data.data is not None:
					    # Note: fixed handling of empty responses
				`),
				Level: 5,
			},
			{
				Name:    "ogc_query_string",
				Trigger: rewrite.Trigger{Prefix: "if not async_req:"},
				Policy:  rewrite.Prepend,
				Template: rewrite.NewTemplate(`
					# Note: remove query string in path part for ogc endpoints
					resource_path = resource_path.partition("?")[0]
				`),
				Level: 4,
			},
		},
	}, nil
}

func exceptionsPy(Versions) (*rewrite.RuleSet, error) {
	return &rewrite.RuleSet{
		File:     "exceptions.py",
		Language: Python,
		Indent:   pythonIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "error_message",
				Trigger: rewrite.Trigger{Prefix: `"""Custom error messages for exception"""`},
				Policy:  rewrite.Append,
				Template: rewrite.NewTemplate(`
					# Note: changed message formatting
					import json
					parsed_body = json.loads(self.body)
					return f'{parsed_body["error"]}: {parsed_body["message"]}'

				`),
				Level: 4,
			},
		},
	}, nil
}

func paletteColorizerPy(Versions) (*rewrite.RuleSet, error) {
	return &rewrite.RuleSet{
		File:     "palette_colorizer.py",
		Language: Python,
		Indent:   pythonIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "colors_field",
				Trigger: rewrite.Trigger{Prefix: "# override the default output"},
				Policy:  rewrite.Prepend,
				Template: rewrite.NewTemplate(`
					# Note: fixed wrong handling of colors field
					return _dict
				`),
				Level: 4,
			},
		},
	}, nil
}

func rasterDatasetFromWorkflowPy(Versions) (*rewrite.RuleSet, error) {
	return &rewrite.RuleSet{
		File:     "raster_dataset_from_workflow.py",
		Language: Python,
		Indent:   pythonIndent,
		Rules: []rewrite.Rule{
			{
				Name:    "exclude_defaults",
				Trigger: rewrite.Trigger{Prefix: "exclude_none=True)"},
				Policy:  rewrite.Replace,
				Template: rewrite.NewTemplate(`
					exclude_none=True,
					# Note: remove as_cog when set to default
					exclude_defaults=True)
				`),
				Level: 13,
			},
		},
	}, nil
}

func taskStatusWithIDPy(Versions) (*rewrite.RuleSet, error) {
	field := func(name string) rewrite.Rule {
		return rewrite.Rule{
			Name:    "actual_instance_" + name,
			Trigger: rewrite.Trigger{Prefix: fmt.Sprintf("if self.%s is None and", name)},
			Policy:  rewrite.Replace,
			Template: rewrite.NewTemplate(fmt.Sprintf(`
				# Note: fixed handling of actual_instance
				if getattr(self.actual_instance, "%[1]s", None) is None and "%[1]s" in self.actual_instance.__fields_set__:
			`, name)),
			Level: 4,
		}
	}

	return &rewrite.RuleSet{
		File:     "task_status_with_id.py",
		Language: Python,
		Indent:   pythonIndent,
		Rules: []rewrite.Rule{
			field("info"),
			field("clean_up"),
			field("error"),
			{
				Name:    "from_dict",
				Trigger: rewrite.Trigger{Prefix: "_obj = TaskStatusWithId.parse_obj({"},
				Policy:  rewrite.Prepend,
				Template: rewrite.NewTemplate(`
					# Note: fixed handling of actual_instance
					return TaskStatusWithId.parse_obj({
					    "actual_instance": TaskStatus.from_dict(obj).actual_instance,
					    "task_id": obj.get("taskId")
					})
				`),
				Level: 4,
			},
		},
	}, nil
}

func defaultColorPy(file string) Builder {
	return func(Versions) (*rewrite.RuleSet, error) {
		return &rewrite.RuleSet{
			File:     file,
			Language: Python,
			Indent:   pythonIndent,
			Rules: []rewrite.Rule{
				{
					Name:     "default_color",
					Trigger:  rewrite.Trigger{Prefix: "default_color: conlist"},
					Policy:   rewrite.Replace,
					Template: rewrite.NewTemplate("# Note: need to remove default_color\n"),
					Level:    2,
				},
			},
		}, nil
	}
}
