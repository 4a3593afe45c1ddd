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

// Package fsys is the filesystem seam used by the sorter: listing the direct
// children of a directory, checking a path, creating a folder if it is absent
// and moving a file. OS talks to the real filesystem and Memory is an
// in-memory stand-in for tests.
package fsys

import (
	"context"
)

// 📄 Entry is a node directly inside a directory.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// 💾 FileSystem is the set of primitives the sorter needs.
//
// Implementations report a missing path with an error matching fs.ErrNotExist.
type FileSystem interface {
	// Stat describes the node at path.
	Stat(ctx context.Context, path string) (Entry, error)
	// ReadDir lists the direct children of path.
	ReadDir(ctx context.Context, path string) ([]Entry, error)
	// MkdirIfAbsent creates the directory at path unless a directory is
	// already there. Its parent must exist.
	MkdirIfAbsent(ctx context.Context, path string) error
	// Move relocates the file at src to dst.
	Move(ctx context.Context, src, dst string) error
}
