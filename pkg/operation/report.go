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
	"github.com/walteh/sortrc/pkg/fsys"
	"github.com/walteh/sortrc/pkg/log"
)

// 🏷️ ActionKind is the decision taken for a directory entry
type ActionKind int

const (
	// ActionMove relocates a file into Action.Destination
	ActionMove ActionKind = iota
	// ActionSkipDirectory leaves a foreign directory alone, with a notice
	ActionSkipDirectory
	// ActionSkipDestination leaves a category or fallback folder alone, silently
	ActionSkipDestination
	// ActionSkipNoExtension leaves a file without extension in place
	ActionSkipNoExtension
	// ActionSkipIgnored leaves a file matching an ignore pattern in place
	ActionSkipIgnored
)

// String returns a string representation of ActionKind
func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionSkipDirectory:
		return "directory found, ignored"
	case ActionSkipDestination:
		return "destination folder"
	case ActionSkipNoExtension:
		return "file without extension, ignored"
	case ActionSkipIgnored:
		return "matches ignore pattern"
	default:
		return "unknown"
	}
}

// 📄 Action is the decision for one entry
type Action struct {
	Kind        ActionKind
	Entry       fsys.Entry
	Extension   string // lowercased, set for files
	Destination string // set for ActionMove
	Fallback    bool   // Destination is the fallback folder
}

// 📊 Report describes a finished (or interrupted) pass over a target
type Report struct {
	Target  string
	DryRun  bool
	Actions []Action
	// Ensured lists the destination folders the run made sure exist, in order
	Ensured []string
}

// Moved returns the number of files moved (or that would be moved on a dry run).
func (r *Report) Moved() int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == ActionMove {
			n++
		}
	}
	return n
}

// Skipped returns the number of entries left in place.
func (r *Report) Skipped() int {
	return len(r.Actions) - r.Moved()
}

// Bytes returns the total size of moved files.
func (r *Report) Bytes() int64 {
	var total int64
	for _, a := range r.Actions {
		if a.Kind == ActionMove {
			total += a.Entry.Size
		}
	}
	return total
}

// ByDestination counts moved files per destination folder.
func (r *Report) ByDestination() map[string]int {
	out := map[string]int{}
	for _, a := range r.Actions {
		if a.Kind == ActionMove {
			out[a.Destination]++
		}
	}
	return out
}

func (r *Report) summary() log.RunSummary {
	return log.RunSummary{
		Target:  r.Target,
		Moved:   r.Moved(),
		Skipped: r.Skipped(),
		Bytes:   r.Bytes(),
		DryRun:  r.DryRun,
	}
}
