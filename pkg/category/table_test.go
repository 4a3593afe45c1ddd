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

package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "simple", file: "report.pdf", want: ".pdf"},
		{name: "uppercase", file: "photo.JPG", want: ".jpg"},
		{name: "double_extension", file: "archive.tar.gz", want: ".gz"},
		{name: "no_extension", file: "notes", want: ""},
		{name: "dotfile", file: ".bashrc", want: ""},
		{name: "trailing_dot", file: "draft.", want: ""},
		{name: "double_leading_dot", file: "..hidden", want: ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.file), "extension should match")
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, ".jpg", Normalize("JPG"))
	assert.Equal(t, ".jpg", Normalize(" .Jpg "))
	assert.Equal(t, "", Normalize(""))
}

func TestClassify(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		ext         string
		wantDest    string
		wantMatched bool
	}{
		{ext: ".jpg", wantDest: "Images", wantMatched: true},
		{ext: ".pdf", wantDest: "Documents", wantMatched: true},
		{ext: ".gz", wantDest: "Archives", wantMatched: true},
		{ext: ".wav", wantDest: "Music", wantMatched: true},
		{ext: ".mkv", wantDest: "Video", wantMatched: true},
		{ext: ".xyz", wantDest: "Other", wantMatched: false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			dest, matched := table.Classify(tt.ext)
			assert.Equal(t, tt.wantDest, dest, "destination should match")
			assert.Equal(t, tt.wantMatched, matched, "matched should match")
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := NewTable("Misc",
		Category{Name: "Text", Extensions: []string{"txt", "md"}},
		Category{Name: "Notes", Extensions: []string{".md", ".org"}},
	)

	dest, matched := table.Classify(".md")
	assert.True(t, matched)
	assert.Equal(t, "Text", dest, "earlier category should win")

	dest, _ = table.Classify(".org")
	assert.Equal(t, "Notes", dest)

	dest, matched = table.Classify(".exe")
	assert.False(t, matched)
	assert.Equal(t, "Misc", dest)

	overlaps := table.Overlaps()
	require.Len(t, overlaps, 1)
	assert.Equal(t, ".md", overlaps[0].Extension)
	assert.Equal(t, "Text", overlaps[0].Winner)
	assert.Equal(t, []string{"Notes"}, overlaps[0].Shadowed)
	assert.Equal(t, ".md -> Text (also in Notes)", overlaps[0].String())
}

func TestIsDestination(t *testing.T) {
	table := DefaultTable()
	assert.True(t, table.IsDestination("Images"))
	assert.True(t, table.IsDestination("Other"))
	assert.False(t, table.IsDestination("images"), "match is case sensitive")
	assert.False(t, table.IsDestination("Projects"))
	assert.Equal(t, []string{"Images", "Documents", "Archives", "Music", "Video", "Other"}, table.Names())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		table       *Table
		errContains string
	}{
		{name: "default", table: DefaultTable()},
		{
			name:        "empty_fallback",
			table:       &Table{Fallback: ""},
			errContains: "fallback: name is required",
		},
		{
			name:        "duplicate_category",
			table:       NewTable("", Category{Name: "A", Extensions: []string{".a"}}, Category{Name: "A"}),
			errContains: "defined more than once",
		},
		{
			name:        "category_named_like_fallback",
			table:       NewTable("Other", Category{Name: "Other"}),
			errContains: "collides with fallback",
		},
		{
			name:        "path_separator",
			table:       NewTable("", Category{Name: "a/b"}),
			errContains: "path separator",
		},
		{
			name:        "dot_dot",
			table:       NewTable("", Category{Name: ".."}),
			errContains: "invalid name",
		},
		{
			name:        "empty_extension",
			table:       NewTable("", Category{Name: "A", Extensions: []string{" "}}),
			errContains: "empty extension",
		},
		{
			name:        "multi_dot_extension",
			table:       NewTable("", Category{Name: "Arc", Extensions: []string{"tar.gz"}}),
			errContains: `extension ".tar.gz" can never match a file`,
		},
		{
			name:        "extension_with_separator",
			table:       NewTable("", Category{Name: "A", Extensions: []string{".a/b"}}),
			errContains: "can never match a file",
		},
		{
			name:        "unnormalized_extension",
			table:       &Table{Fallback: "Other", Categories: []Category{{Name: "A", Extensions: []string{"JPG"}}}},
			errContains: "not normalized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}
