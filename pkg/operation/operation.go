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

package operation

import (
	"context"
	"io"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/category"
	"github.com/walteh/sortrc/pkg/fsys"
	"github.com/walteh/sortrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTargetNotFound is returned when the target directory does not exist.
	ErrTargetNotFound = errors.Base("target directory not found")
	// ErrTargetNotDirectory is returned when the target exists but is not a directory.
	ErrTargetNotDirectory = errors.Base("target is not a directory")
)

// 🔧 Options contains configuration for the sorter
type Options struct {
	// FS performs all filesystem access
	FS fsys.FileSystem
	// Table maps extensions to destination folders
	Table *category.Table
	// Ignore holds doublestar patterns; matching files are left in place
	Ignore []string
	// Logger receives console notices; when nil notices only reach the
	// zerolog logger carried by the context
	Logger *log.Logger
}

// 🗂️ Sorter moves the files directly inside a directory into category folders
type Sorter struct {
	fs     fsys.FileSystem
	table  *category.Table
	ignore []string
	logger *log.Logger
}

// 🏭 New creates a new sorter with the given options
func New(opts Options) (*Sorter, error) {
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Table == nil {
		return nil, errors.Errorf("category table is required")
	}
	if err := opts.Table.Validate(); err != nil {
		return nil, errors.Errorf("validating category table: %w", err)
	}
	for _, p := range opts.Ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid ignore pattern %q", p)
		}
	}
	return &Sorter{
		fs:     opts.FS,
		table:  opts.Table,
		ignore: opts.Ignore,
		logger: opts.Logger,
	}, nil
}

func (s *Sorter) console(ctx context.Context) *log.Logger {
	if s.logger != nil {
		return s.logger
	}
	return log.New(io.Discard, *zerolog.Ctx(ctx))
}

// 🔍 checkTarget fails unless target exists and is a directory
func (s *Sorter) checkTarget(ctx context.Context, target string) error {
	e, err := s.fs.Stat(ctx, target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Errorf("%w: %s", ErrTargetNotFound, target)
		}
		return errors.Errorf("checking target: %w", err)
	}
	if !e.IsDir {
		return errors.Errorf("%w: %s", ErrTargetNotDirectory, target)
	}
	return nil
}

// 🎯 decide classifies one entry without touching the filesystem
func (s *Sorter) decide(ctx context.Context, e fsys.Entry) Action {
	a := Action{Entry: e}

	if e.IsDir {
		if s.table.IsDestination(e.Name) {
			a.Kind = ActionSkipDestination
		} else {
			a.Kind = ActionSkipDirectory
		}
		return a
	}

	for _, p := range s.ignore {
		// patterns are validated in New
		if ok, _ := doublestar.Match(p, e.Name); ok {
			zerolog.Ctx(ctx).Debug().Str("entry", e.Name).Str("pattern", p).Msg("ignore pattern matched")
			a.Kind = ActionSkipIgnored
			return a
		}
	}

	a.Extension = category.Extension(e.Name)
	if a.Extension == "" {
		a.Kind = ActionSkipNoExtension
		return a
	}

	dest, matched := s.table.Classify(a.Extension)
	a.Kind = ActionMove
	a.Destination = dest
	a.Fallback = !matched
	return a
}
