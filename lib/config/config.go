// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Document is an immutable nested key/value tree with dot-notation
// lookup. Construct one with [Parse], [ParseYAML], [ReadFile], or
// [New].
type Document struct {
	name string
	root map[string]any
}

// New wraps an already-built tree in a Document. The name identifies
// the document in diagnostics. The tree is not copied; callers must
// not mutate root afterward.
func New(name string, root map[string]any) *Document {
	if root == nil {
		root = map[string]any{}
	}
	return &Document{name: name, root: root}
}

// Parse builds a Document from JSONC bytes: JSON extended with // line
// comments, /* block comments */, and trailing commas. Plain JSON
// passes through unchanged.
func Parse(name string, data []byte) (*Document, error) {
	stripped := jsonc.ToJSON(data)

	var root map[string]any
	if err := json.Unmarshal(stripped, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return New(name, root), nil
}

// ParseYAML builds a Document from YAML bytes. The top level must be a
// mapping.
func ParseYAML(name string, data []byte) (*Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return New(name, root), nil
}

// ReadFile loads a Document from path, choosing the parser by file
// extension: .yaml and .yml are YAML, .json and .jsonc are JSONC.
// Anything else is an error. The document is named by the file's base
// name.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(name, data)
	case ".json", ".jsonc":
		return Parse(name, data)
	default:
		return nil, fmt.Errorf("%s: unsupported config extension %q", path, filepath.Ext(path))
	}
}

// Load loads the Document named by the ATLAS_CONFIG environment
// variable.
//
// This is the only way to load configuration without an explicit path.
// There are no fallbacks or defaults: if ATLAS_CONFIG is not set, Load
// fails.
func Load() (*Document, error) {
	path := os.Getenv("ATLAS_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("ATLAS_CONFIG environment variable not set; " +
			"set it to the path of your config file, or pass an explicit path")
	}
	return ReadFile(path)
}

// Name returns the document's diagnostic name: the file base name for
// loaded documents, or whatever the caller passed to [New].
func (d *Document) Name() string {
	return d.name
}
