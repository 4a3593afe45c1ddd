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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultFallback is the destination for files whose extension matches no category.
const DefaultFallback = "Other"

// 📦 Category is a named bucket of file extensions. Its name doubles as the
// destination folder name.
type Category struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions" toml:"extensions"`
}

// Contains reports whether ext is one of the category's extensions.
func (c Category) Contains(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// 📚 Table is an ordered list of categories plus the fallback destination.
//
// Classification walks Categories in order and the first category containing
// the extension wins, so an extension listed twice always resolves to the
// earlier category.
type Table struct {
	Categories []Category
	Fallback   string
}

// 🏭 DefaultTable returns the built-in category table.
func DefaultTable() *Table {
	return &Table{
		Categories: []Category{
			{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".svg"}},
			{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".xlsx", ".xls", ".txt", ".pptx"}},
			{Name: "Archives", Extensions: []string{".zip", ".gz", ".tar", ".rar"}},
			{Name: "Music", Extensions: []string{".mp3", ".wav", ".aac"}},
			{Name: "Video", Extensions: []string{".mov", ".mp4", ".avi", ".mkv"}},
		},
		Fallback: DefaultFallback,
	}
}

// 🏭 NewTable builds a table from categories, normalizing every extension.
// An empty fallback falls back to DefaultFallback.
func NewTable(fallback string, categories ...Category) *Table {
	if fallback == "" {
		fallback = DefaultFallback
	}
	cats := make([]Category, 0, len(categories))
	for _, c := range categories {
		exts := make([]string, 0, len(c.Extensions))
		for _, e := range c.Extensions {
			exts = append(exts, Normalize(e))
		}
		cats = append(cats, Category{Name: c.Name, Extensions: exts})
	}
	return &Table{Categories: cats, Fallback: fallback}
}

// 🔍 Classify returns the destination folder for ext. matched is false when
// no category lists ext and the fallback is returned.
func (t *Table) Classify(ext string) (dest string, matched bool) {
	for _, c := range t.Categories {
		if c.Contains(ext) {
			return c.Name, true
		}
	}
	return t.Fallback, false
}

// IsDestination reports whether name is one of the folders this table sorts into.
func (t *Table) IsDestination(name string) bool {
	if name == t.Fallback {
		return true
	}
	for _, c := range t.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Names returns the category names in table order followed by the fallback.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Categories)+1)
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return append(names, t.Fallback)
}

// ✅ Validate checks that every destination is a usable folder name and that
// names are unique. Overlapping extensions are allowed; see Overlaps.
func (t *Table) Validate() error {
	if err := validateFolderName(t.Fallback); err != nil {
		return errors.Errorf("fallback: %w", err)
	}

	seen := make(map[string]bool, len(t.Categories))
	for i, c := range t.Categories {
		if err := validateFolderName(c.Name); err != nil {
			return errors.Errorf("category %d: %w", i, err)
		}
		if c.Name == t.Fallback {
			return errors.Errorf("category %q: name collides with fallback", c.Name)
		}
		if seen[c.Name] {
			return errors.Errorf("category %q: defined more than once", c.Name)
		}
		seen[c.Name] = true

		for _, e := range c.Extensions {
			if e == "" || e == "." {
				return errors.Errorf("category %q: empty extension", c.Name)
			}
			if e != Normalize(e) {
				return errors.Errorf("category %q: extension %q is not normalized", c.Name, e)
			}
			if strings.Contains(e[1:], ".") || strings.ContainsAny(e, `/\`) {
				// Extension only ever yields the part after the last dot
				return errors.Errorf("category %q: extension %q can never match a file", c.Name, e)
			}
		}
	}

	return nil
}

// 🔀 Overlap is an extension listed by more than one category. Winner is the
// category that classification resolves it to.
type Overlap struct {
	Extension string
	Winner    string
	Shadowed  []string
}

func (o Overlap) String() string {
	return fmt.Sprintf("%s -> %s (also in %s)", o.Extension, o.Winner, strings.Join(o.Shadowed, ", "))
}

// Overlaps lists extensions that appear in more than one category, in the
// order they are first seen.
func (t *Table) Overlaps() []Overlap {
	var out []Overlap
	index := map[string]int{}
	for _, c := range t.Categories {
		for _, e := range c.Extensions {
			winner, _ := t.Classify(e)
			if winner == c.Name {
				continue
			}
			i, ok := index[e]
			if !ok {
				i = len(out)
				index[e] = i
				out = append(out, Overlap{Extension: e, Winner: winner})
			}
			out[i].Shadowed = append(out[i].Shadowed, c.Name)
		}
	}
	return out
}

func validateFolderName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("name is required")
	case name == "." || name == "..":
		return errors.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Errorf("name %q contains a path separator", name)
	}
	return nil
}
