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

package opts

import (
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/fsys"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands. It is filled in by
// the root command before any subcommand runs. Console is kept for reporting
// errors after the command context is gone; commands read it from the context.
type RootOpts struct {
	Config  *config.Config
	FS      fsys.FileSystem
	Console *log.Logger
}

// NewSorter builds a sorter from the loaded configuration that reports to console.
func (o *RootOpts) NewSorter(console *log.Logger) (*operation.Sorter, error) {
	if o.Config == nil {
		return nil, errors.Errorf("configuration not loaded")
	}
	return operation.New(operation.Options{
		FS:     o.FS,
		Table:  o.Config.Table(),
		Ignore: o.Config.Ignore,
		Logger: console,
	})
}

// Target returns the directory to sort: the first argument when given,
// otherwise the configured target. A relative argument is relative to the
// working directory.
func (o *RootOpts) Target(args []string) (string, error) {
	if len(args) == 0 {
		return o.Config.Target, nil
	}
	target, err := config.ExpandHome(args[0])
	if err != nil {
		return "", errors.Errorf("resolving target: %w", err)
	}
	return target, nil
}
