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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Sort moves every file directly inside target into its destination folder.
//
// Entries are handled once each, in listing order. Destination folders are
// created the first time a file needs them. The first failed mkdir or move
// stops the run; files already moved stay where they are and the returned
// report covers them.
func (s *Sorter) Sort(ctx context.Context, target string) (*Report, error) {
	return s.run(ctx, target, false)
}

// 🔍 Plan reports what Sort would do without changing anything.
func (s *Sorter) Plan(ctx context.Context, target string) (*Report, error) {
	return s.run(ctx, target, true)
}

func (s *Sorter) run(ctx context.Context, target string, dryRun bool) (*Report, error) {
	target = filepath.Clean(target)
	logger := zerolog.Ctx(ctx).With().Str("target", target).Bool("dry_run", dryRun).Logger()
	ctx = logger.WithContext(ctx)
	console := s.console(ctx)

	if err := s.checkTarget(ctx, target); err != nil {
		return nil, err
	}

	if dryRun {
		console.Header("planning " + target)
	} else {
		console.Header("sorting " + target)
	}

	entries, err := s.fs.ReadDir(ctx, target)
	if err != nil {
		return nil, errors.Errorf("listing target: %w", err)
	}
	logger.Debug().Int("entries", len(entries)).Msg("listed target")

	report := &Report{Target: target, DryRun: dryRun}
	ensured := make(map[string]bool)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return report, errors.Errorf("sorting interrupted: %w", err)
		}

		a := s.decide(ctx, e)

		switch a.Kind {
		case ActionSkipDestination:
			logger.Debug().Str("entry", e.Name).Msg("skipping destination folder")
			report.Actions = append(report.Actions, a)
			continue
		case ActionSkipDirectory, ActionSkipNoExtension, ActionSkipIgnored:
			console.LogEntryOperation(ctx, log.EntryOperation{
				Name:   e.Name,
				Status: log.StatusSkipped,
				Reason: a.Kind.String(),
			})
			report.Actions = append(report.Actions, a)
			continue
		}

		status := log.StatusPlanned
		if !dryRun {
			if err := s.apply(ctx, target, a, ensured, report); err != nil {
				return report, err
			}
			status = log.StatusMoved
		}
		report.Actions = append(report.Actions, a)

		console.LogEntryOperation(ctx, log.EntryOperation{
			Name:        e.Name,
			Destination: a.Destination,
			Status:      status,
			Fallback:    a.Fallback,
			Size:        e.Size,
		})
	}

	console.LogSummary(ctx, report.summary())
	if dryRun {
		console.Success("plan complete")
	} else {
		console.Success("sorting complete")
	}

	return report, nil
}

// 📦 apply ensures the destination folder exists and moves the file into it
func (s *Sorter) apply(ctx context.Context, target string, a Action, ensured map[string]bool, report *Report) error {
	dir := filepath.Join(target, a.Destination)

	if !ensured[a.Destination] {
		if err := s.fs.MkdirIfAbsent(ctx, dir); err != nil {
			return errors.Errorf("creating %s: %w", a.Destination, err)
		}
		ensured[a.Destination] = true
		report.Ensured = append(report.Ensured, a.Destination)
	}

	src := filepath.Join(target, a.Entry.Name)
	dst := filepath.Join(dir, a.Entry.Name)
	if err := s.fs.Move(ctx, src, dst); err != nil {
		return errors.Errorf("moving %s to %s: %w", a.Entry.Name, a.Destination, err)
	}

	return nil
}
