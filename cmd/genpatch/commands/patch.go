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
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/genpatch/cmd/genpatch/opts"
	"github.com/walteh/genpatch/pkg/log"
	"github.com/walteh/genpatch/pkg/operation"
	"github.com/walteh/genpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewPatchCmd creates a new patch command
func NewPatchCmd(o *opts.RootOpts) *cobra.Command {
	var (
		dryRun   bool
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "patch <file>...",
		Short: "Apply the corrections registered for generated files",
		Long: `Patch rewrites each file in place with the corrections registered for
its base name. Files without corrections are left untouched.
It will:
1. Resolve the rules for the file name (and any version they embed)
2. Read the file and apply the rules
3. Replace the file if its content changed
4. Count corrections whose trigger was not found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "patch").Logger().WithContext(cmd.Context())
			console := o.Console(ctx, cmd.OutOrStdout())
			reporter := status.New()

			sel := operation.FixesSelector(o.Versions(ctx))
			for _, path := range args {
				res, err := operation.Patch(ctx, path, sel, operation.Options{DryRun: dryRun})
				if err != nil {
					console.LogFileOperation(ctx, status.FileInfo{Path: path, Status: status.StatusFailed, Error: err})
					return errors.Errorf("patching %s: %w", path, err)
				}
				reporter.TrackFile(ctx, res.Info())
				report(ctx, cmd.OutOrStdout(), console, res, showDiff)
			}

			console.Summary(reporter.Summary(ctx))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "compute changes without writing files")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff of each change")

	return cmd
}

// report prints one result. Missing triggers are counted on the row; the
// status manager names each one.
func report(ctx context.Context, w io.Writer, console *log.Logger, res *operation.Result, showDiff bool) {
	console.LogFileOperation(ctx, res.Info())
	if showDiff && res.Changed {
		fmt.Fprint(w, res.Diff())
	}
}
