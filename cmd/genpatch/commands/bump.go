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

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/genpatch/cmd/genpatch/opts"
	"gitlab.com/tozd/go/errors"
)

// NewBumpCmd creates a new bump command
func NewBumpCmd(o *opts.RootOpts) *cobra.Command {
	var (
		backendTag string
		languages  []string
	)

	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Record a new backend tag and bump client versions",
		Long: `Bump prepares the version store for the next generation run.
It will:
1. Set input.backendTag to the given tag
2. Increment the last version component of each language
3. Write the store back in its own format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "bump").Logger().WithContext(cmd.Context())
			console := o.Console(ctx, cmd.OutOrStdout())

			store, err := o.Store(ctx)
			if err != nil {
				return err
			}

			targets := languages
			if len(targets) == 0 {
				targets = store.Languages()
			}

			before := map[string]string{}
			for _, lang := range targets {
				v, err := store.Version(lang)
				if err != nil {
					return errors.Errorf("bumping: %w", err)
				}
				before[lang] = v
			}

			store.SetBackendTag(backendTag)
			if err := store.Bump(ctx, targets...); err != nil {
				return errors.Errorf("bumping: %w", err)
			}
			if err := store.Save(ctx); err != nil {
				return errors.Errorf("bumping: %w", err)
			}

			data := pterm.TableData{{"Language", "From", "To"}}
			for _, lang := range targets {
				after, _ := store.Version(lang)
				data = append(data, []string{lang, before[lang], after})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			console.Successf("backend tag set to %s in %s", backendTag, store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&backendTag, "backend-tag", "", "backend image tag the clients are generated from")
	cmd.Flags().StringSliceVarP(&languages, "language", "l", nil, "languages to bump (default all)")
	_ = cmd.MarkFlagRequired("backend-tag")

	return cmd
}
