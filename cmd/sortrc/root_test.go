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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sortrc/pkg/fsys"
	"github.com/walteh/sortrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

const target = "/data/inbox"

func runCmd(t *testing.T, mem *fsys.Memory, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableColor()
	})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd, _ := newRootCmd(stdout, stderr, mem)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name        string
		setup       func(t *testing.T) *fsys.Memory
		args        func(t *testing.T) []string
		wantErr     error
		errContains string
		validate    func(t *testing.T, mem *fsys.Memory, out string)
	}{
		{
			name: "sort_argument",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target).
					AddFile(target+"/a.jpg", 1).
					AddFile(target+"/b", 1)
			},
			args: func(t *testing.T) []string { return []string{target} },
			validate: func(t *testing.T, mem *fsys.Memory, out string) {
				assert.Equal(t, []string{"Images/", "Images/a.jpg", "b"}, mem.Paths(target))
				assert.Contains(t, out, "sorting complete")
			},
		},
		{
			name: "dry_run_flag",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target).AddFile(target+"/a.jpg", 1)
			},
			args: func(t *testing.T) []string { return []string{"--dry-run", target} },
			validate: func(t *testing.T, mem *fsys.Memory, out string) {
				assert.Equal(t, []string{"a.jpg"}, mem.Paths(target))
				assert.Contains(t, out, "would move 1 files")
			},
		},
		{
			name: "plan_command",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target).AddFile(target+"/clip.mp4", 1)
			},
			args: func(t *testing.T) []string { return []string{"plan", target} },
			validate: func(t *testing.T, mem *fsys.Memory, out string) {
				assert.Equal(t, []string{"clip.mp4"}, mem.Paths(target))
				assert.Contains(t, out, "Video/")
				assert.Contains(t, out, "plan complete")
			},
		},
		{
			name: "config_target",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target).AddFile(target+"/main.go", 1)
			},
			args: func(t *testing.T) []string {
				path := filepath.Join(t.TempDir(), "sortrc.yaml")
				content := "target: " + target + "\ncategories:\n  - name: Code\n    extensions: [.go]\n"
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
				return []string{"--config", path}
			},
			validate: func(t *testing.T, mem *fsys.Memory, out string) {
				assert.Equal(t, []string{"Code/", "Code/main.go"}, mem.Paths(target))
				assert.Contains(t, out, "ℹ️  using config ")
				assert.Contains(t, out, "sortrc.yaml")
			},
		},
		{
			name: "missing_target",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory("/data")
			},
			args:    func(t *testing.T) []string { return []string{target} },
			wantErr: operation.ErrTargetNotFound,
			validate: func(t *testing.T, mem *fsys.Memory, out string) {
				assert.Contains(t, out, "pass the directory as an argument")
				assert.Empty(t, mem.Calls())
			},
		},
		{
			name: "bad_config",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target)
			},
			args: func(t *testing.T) []string {
				path := filepath.Join(t.TempDir(), "sortrc.yaml")
				require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: :"), 0o644))
				return []string{"--config", path}
			},
			errContains: "loading config",
		},
		{
			name: "too_many_args",
			setup: func(t *testing.T) *fsys.Memory {
				return fsys.NewMemory(target)
			},
			args:        func(t *testing.T) []string { return []string{"a", "b"} },
			errContains: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := tt.setup(t)
			out, err := runCmd(t, mem, tt.args(t)...)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v", tt.wantErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err)
			}

			if tt.validate != nil {
				tt.validate(t, mem, out)
			}
		})
	}
}

func TestCategoriesCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "sortrc.hcl")
	content := `
category "Text" {
  extensions = [".txt", ".md"]
}

category "Notes" {
  extensions = [".md"]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runCmd(t, fsys.NewMemory(), "categories", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Text")
	assert.Contains(t, out, ".txt .md")
	assert.Contains(t, out, "Other")
	assert.Contains(t, out, "overlapping extension .md -> Text (also in Notes)")
}
