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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/genpatch/cmd/genpatch/opts"
	"github.com/walteh/genpatch/pkg/log"
	"github.com/walteh/genpatch/pkg/operation"
	"github.com/walteh/genpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewBatchCmd creates a new batch command
func NewBatchCmd(o *opts.RootOpts) *cobra.Command {
	var (
		patterns []string
		ignore   []string
		dryRun   bool
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Patch every generated file under a directory",
		Long: `Batch walks a generated client tree and patches each matching file,
one file at a time. The first fatal error stops the run. Run it on freshly
generated output: prepend and append corrections fire again on every run.
It will:
1. Glob the directory (default **/*.py and **/*.ts)
2. Patch each file that has corrections registered
3. Print a summary of the run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "batch").Logger().WithContext(cmd.Context())
			console := o.Console(ctx, cmd.OutOrStdout())
			reporter := status.New()

			console.StartRun(ctx, log.RunOperation{Root: args[0], Config: o.ConfigFile, DryRun: dryRun})
			defer console.EndRun(ctx)

			results, err := operation.Batch(ctx, args[0], operation.FixesSelector(o.Versions(ctx)), operation.BatchOptions{
				Options:  operation.Options{DryRun: dryRun},
				Patterns: patterns,
				Ignore:   ignore,
				Reporter: reporter,
			})

			for _, res := range results {
				if res.Skipped {
					continue
				}
				report(ctx, cmd.OutOrStdout(), console, res, showDiff)
			}

			console.Summary(reporter.Summary(ctx))
			if err != nil {
				return errors.Errorf("batch %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "glob", "g", operation.DefaultPatterns, "doublestar patterns of files to patch")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "doublestar patterns of files to leave alone")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "compute changes without writing files")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff of each change")

	return cmd
}
