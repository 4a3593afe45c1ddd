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
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/commands"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/fsys"
	"github.com/walteh/sortrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by all commands
type rootFlags struct {
	configFile string
	debug      bool
	dryRun     bool
}

// newRootCmd creates the root command. Running it without a subcommand sorts
// the target directory.
func newRootCmd(stdout, stderr io.Writer, fs fsys.FileSystem) (*cobra.Command, *opts.RootOpts) {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{FS: fs}

	rootCmd := &cobra.Command{
		Use:   "sortrc [directory]",
		Short: "Sort the files of a directory into folders by extension",
		Long: `sortrc moves every file directly inside a directory into a folder named
after its category (Images, Documents, Archives, ...). Files with an unknown
extension go to the fallback folder, files without an extension and all
subdirectories are left where they are.

Without arguments the configured target (default ~/Desktop/TEST_FOLDER) is sorted.
A relative directory argument is resolved against the working directory; a
relative target in a config file is resolved against that file's directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(stderr, flags.debug)
			ctx := zlog.WithContext(cmd.Context())

			rootOpts.Console = log.New(stdout, zlog)
			ctx = log.NewContext(ctx, rootOpts.Console)
			cmd.SetContext(ctx)

			cfg, err := loadConfig(cmd, flags.configFile)
			if err != nil {
				return err
			}
			rootOpts.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.RunSort(cmd, rootOpts, args, flags.dryRun)
			return err
		},
	}

	addRootFlags(rootCmd, flags)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(
		commands.NewPlanCmd(rootOpts),
		commands.NewCategoriesCmd(rootOpts),
	)

	return rootCmd, rootOpts
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.hcl, .yaml, .json or .toml)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "show what would be moved without moving anything")
}

// loadConfig reads the config file when one is given, otherwise uses the built-in defaults
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	ctx := cmd.Context()

	if path == "" {
		cfg := config.Default()
		if err := config.Validate(ctx, cfg); err != nil {
			return nil, errors.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging configures zerolog based on flags. Structured events are only
// shown with --debug; regular runs rely on the console notices.
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}
