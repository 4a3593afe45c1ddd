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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/category"
	"gitlab.com/tozd/go/errors"
)

// DefaultTarget is sorted when neither the command line nor a config file names a directory.
const DefaultTarget = "~/Desktop/TEST_FOLDER"

// ErrUnsupportedFormat is returned for config files no parser accepts.
var ErrUnsupportedFormat = errors.Base("unsupported config format")

// 📚 Config represents the complete configuration
type Config struct {
	Target     string              `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Fallback   string              `json:"fallback,omitempty" yaml:"fallback,omitempty" toml:"fallback,omitempty"`
	Ignore     []string            `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Categories []category.Category `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	table := category.DefaultTable()
	return &Config{
		Target:     DefaultTarget,
		Fallback:   table.Fallback,
		Categories: table.Categories,
	}
}

// Location returns the file the config was loaded from, if any.
func (c *Config) Location() string {
	return c.location
}

// Table builds the category table described by the config.
func (c *Config) Table() *category.Table {
	return category.NewTable(c.Fallback, c.Categories...)
}

// 🔍 Validate fills defaults, resolves the target path and checks the table
func Validate(ctx context.Context, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.Fallback == "" {
		cfg.Fallback = category.DefaultFallback
	}
	if cfg.Categories == nil {
		logger.Debug().Msg("no categories configured, using defaults")
		cfg.Categories = category.DefaultTable().Categories
	}

	target, err := ExpandHome(cfg.Target)
	if err != nil {
		return errors.Errorf("resolving target: %w", err)
	}
	if !filepath.IsAbs(target) && cfg.location != "" {
		target = filepath.Join(filepath.Dir(cfg.location), target)
	}
	cfg.Target = filepath.Clean(target)

	for _, p := range cfg.Ignore {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("ignore: invalid pattern %q", p)
		}
	}

	table := cfg.Table()
	if err := table.Validate(); err != nil {
		return errors.Errorf("categories: %w", err)
	}
	cfg.Categories = table.Categories

	return nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
