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
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// Op names a mutating Memory call, used for failure injection and the journal.
type Op string

const (
	OpMkdir Op = "mkdir"
	OpMove  Op = "move"
)

// Call is one successful mutation recorded by Memory.
type Call struct {
	Op   Op
	Path string
	Dst  string
}

type memNode struct {
	isDir bool
	size  int64
}

var _ FileSystem = (*Memory)(nil)

// 🧪 Memory is an in-memory FileSystem. Paths are cleaned with filepath.Clean
// and ReadDir lists children sorted by name.
type Memory struct {
	mu       sync.Mutex
	nodes    map[string]memNode
	failures map[Op]map[string]error
	calls    []Call
}

// NewMemory returns an empty Memory containing only the given root directories.
func NewMemory(roots ...string) *Memory {
	m := &Memory{
		nodes:    make(map[string]memNode),
		failures: make(map[Op]map[string]error),
	}
	for _, r := range roots {
		m.nodes[filepath.Clean(r)] = memNode{isDir: true}
	}
	return m
}

// AddFile places a file at path, creating missing parents.
func (m *Memory) AddFile(path string, size int64) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.addParents(path)
	m.nodes[path] = memNode{size: size}
	return m
}

// AddDir places a directory at path, creating missing parents.
func (m *Memory) AddDir(path string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.addParents(path)
	m.nodes[path] = memNode{isDir: true}
	return m
}

// Fail makes the next op on path return err.
func (m *Memory) Fail(op Op, path string, err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures[op] == nil {
		m.failures[op] = make(map[string]error)
	}
	m.failures[op][filepath.Clean(path)] = err
	return m
}

// Calls returns the mutations performed so far.
func (m *Memory) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Paths returns every file and directory path under root (excluding root),
// sorted. Directories carry a trailing separator.
func (m *Memory) Paths(root string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	root = filepath.Clean(root)
	var out []string
	for p, n := range m.nodes {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if n.isDir {
			rel += string(filepath.Separator)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func (m *Memory) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if _, ok := m.nodes[dir]; !ok {
			m.nodes[dir] = memNode{isDir: true}
		}
		if dir == filepath.Dir(dir) {
			return
		}
	}
}

func (m *Memory) takeFailure(op Op, path string) error {
	err, ok := m.failures[op][path]
	if !ok {
		return nil
	}
	delete(m.failures[op], path)
	return err
}

func notExist(op, path string) error {
	return errors.Errorf("%s %s: %w", op, path, fs.ErrNotExist)
}

func (m *Memory) Stat(ctx context.Context, path string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	n, ok := m.nodes[path]
	if !ok {
		return Entry{}, notExist("stat", path)
	}
	return Entry{Name: filepath.Base(path), IsDir: n.isDir, Size: n.size}, nil
}

func (m *Memory) ReadDir(ctx context.Context, path string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	n, ok := m.nodes[path]
	if !ok {
		return nil, notExist("reading directory", path)
	}
	if !n.isDir {
		return nil, errors.Errorf("reading directory %s: not a directory", path)
	}

	var entries []Entry
	for p, child := range m.nodes {
		if p == path || filepath.Dir(p) != path {
			continue
		}
		entries = append(entries, Entry{Name: filepath.Base(p), IsDir: child.isDir, Size: child.size})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (m *Memory) MkdirIfAbsent(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.takeFailure(OpMkdir, path); err != nil {
		return errors.Errorf("creating directory %s: %w", path, err)
	}
	if n, ok := m.nodes[path]; ok {
		if n.isDir {
			return nil
		}
		return errors.Errorf("creating directory %s: %w", path, fs.ErrExist)
	}
	if parent, ok := m.nodes[filepath.Dir(path)]; !ok || !parent.isDir {
		return notExist("creating directory", path)
	}
	m.nodes[path] = memNode{isDir: true}
	m.calls = append(m.calls, Call{Op: OpMkdir, Path: path})
	return nil
}

func (m *Memory) Move(ctx context.Context, src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err := m.takeFailure(OpMove, src); err != nil {
		return errors.Errorf("moving %s to %s: %w", src, dst, err)
	}
	n, ok := m.nodes[src]
	if !ok {
		return notExist("moving", src)
	}
	if n.isDir {
		return errors.Errorf("moving %s: is a directory", src)
	}
	if parent, ok := m.nodes[filepath.Dir(dst)]; !ok || !parent.isDir {
		return notExist("moving to", dst)
	}
	if existing, ok := m.nodes[dst]; ok && existing.isDir {
		return errors.Errorf("moving %s to %s: destination is a directory", src, dst)
	}
	delete(m.nodes, src)
	m.nodes[dst] = n
	m.calls = append(m.calls, Call{Op: OpMove, Path: src, Dst: dst})
	return nil
}
