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

package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/genpatch/cmd/genpatch/opts"
	"github.com/walteh/genpatch/pkg/fixes"
	"gitlab.com/tozd/go/errors"
)

// placeholderVersions stands in for the store when only listing rules
type placeholderVersions struct{}

func (placeholderVersions) Version(string) (string, error) { return "<version>", nil }

// NewRulesCmd creates a new rules command
func NewRulesCmd(_ *opts.RootOpts) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered corrections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if language != "" && !slices.Contains(fixes.Languages(), language) {
				return errors.Errorf("unknown language %q, want one of %v", language, fixes.Languages())
			}

			data := pterm.TableData{{"File", "Language", "Rule", "Policy", "Level", "Trigger"}}
			for _, file := range fixes.Files(language) {
				rs, err := fixes.Select(file, placeholderVersions{})
				if err != nil {
					return errors.Errorf("listing %s: %w", file, err)
				}
				for _, r := range rs.Rules {
					data = append(data, []string{
						file,
						rs.Language,
						r.Name,
						r.Policy.String(),
						strconv.Itoa(r.Level),
						r.Trigger.String(),
					})
				}
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "only list rules of one language")

	return cmd
}
