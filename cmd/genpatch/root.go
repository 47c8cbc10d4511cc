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

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/genpatch/cmd/genpatch/commands"
	"github.com/walteh/genpatch/cmd/genpatch/opts"
)

// NewCommand builds the genpatch command tree
func NewCommand() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "genpatch",
		Short: "Patch known defects in generated API clients",
		Long: `genpatch rewrites files emitted by openapi-generator (python and
typescript-fetch targets) to correct known generator defects before the
client libraries are packaged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(o.Debug)
			if o.Debug {
				logger := zerolog.Ctx(cmd.Context()).Level(zerolog.DebugLevel)
				cmd.SetContext(logger.WithContext(cmd.Context()))
			}
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewPatchCmd(o),
		commands.NewBatchCmd(o),
		commands.NewBumpCmd(o),
		commands.NewRulesCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", opts.DefaultConfigFile, "version store path (.ini, .yaml or .hcl)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if zerolog.DefaultContextLogger == nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		zerolog.DefaultContextLogger = &log
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
		},
	}
}
