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
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [directory]",
		Short: "Show where files would be moved",
		Long: `Plan lists every entry of the target directory and the folder it would be
moved to, without creating folders or moving anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := RunSort(cmd, opts, args, true)
			return err
		},
	}

	return cmd
}

// RunSort sorts (or plans) the target chosen by args.
func RunSort(cmd *cobra.Command, opts *opts.RootOpts, args []string, dryRun bool) (*operation.Report, error) {
	ctx := cmd.Context()
	console := log.FromContext(ctx)

	if loc := opts.Config.Location(); loc != "" {
		console.Infof("using config %s", loc)
	}

	target, err := opts.Target(args)
	if err != nil {
		return nil, err
	}

	sorter, err := opts.NewSorter(console)
	if err != nil {
		return nil, errors.Errorf("creating sorter: %w", err)
	}

	var report *operation.Report
	if dryRun {
		report, err = sorter.Plan(ctx, target)
	} else {
		report, err = sorter.Sort(ctx, target)
	}
	if err != nil {
		if errors.Is(err, operation.ErrTargetNotFound) || errors.Is(err, operation.ErrTargetNotDirectory) {
			console.Warning("pass the directory as an argument or set target in a config file (--config)")
		}
		return report, err
	}

	return report, nil
}
