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

package fsys

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const dirPerm = 0o755

var _ FileSystem = (*OS)(nil)

// 🖥️ OS implements FileSystem on top of the os package.
type OS struct{}

// NewOS returns the real filesystem.
func NewOS() *OS {
	return &OS{}
}

func (o *OS) Stat(ctx context.Context, path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, errors.Errorf("stat %s: %w", path, err)
	}
	return Entry{Name: info.Name(), IsDir: info.IsDir(), Size: info.Size()}, nil
}

func (o *OS) ReadDir(ctx context.Context, path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		var info fs.FileInfo
		if d.Type()&fs.ModeSymlink != 0 {
			// classify links by what they point at
			info, err = os.Stat(filepath.Join(path, d.Name()))
		} else {
			info, err = d.Info()
		}
		if err != nil {
			// dangling link or entry removed since listing
			zerolog.Ctx(ctx).Debug().Err(err).Str("name", d.Name()).Msg("falling back to lstat type")
			entries = append(entries, Entry{Name: d.Name(), IsDir: d.IsDir()})
			continue
		}
		entries = append(entries, Entry{Name: d.Name(), IsDir: info.IsDir(), Size: info.Size()})
	}

	return entries, nil
}

func (o *OS) MkdirIfAbsent(ctx context.Context, path string) error {
	err := os.Mkdir(path, dirPerm)
	if err == nil {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("created directory")
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return errors.Errorf("creating directory %s: %w", path, err)
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return errors.Errorf("checking existing %s: %w", path, statErr)
	}
	if !info.IsDir() {
		return errors.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Move renames src to dst. An existing file at dst is replaced, matching
// rename(2).
func (o *OS) Move(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return errors.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return nil
}
