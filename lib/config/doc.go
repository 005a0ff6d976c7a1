// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides dot-notation key resolution over nested
// configuration documents.
//
// A Document is an immutable key/value tree loaded from YAML, JSON, or
// JSONC (JSON extended with comments and trailing commas). Resolve
// walks the tree for a dotted key such as "feature.pruning.enabled",
// trying the longest literal key at each level first, so a flat
// "a.b.c" entry shadows the same path spelled as nested maps.
//
// Configuration is loaded from an explicit path (via [ReadFile]) or
// from the ATLAS_CONFIG environment variable (via [Load]). There are
// no fallbacks, no ~/.config discovery, and no automatic file search.
// This ensures deterministic, auditable configuration with no hidden
// overrides.
//
// Key exports:
//
//   - [Document] -- the resolved tree, with typed accessors
//   - [Parse], [ParseYAML], [ReadFile], [Load] -- the entry points
//   - [Get] -- generic lookup with a fallback value
//
// This package depends on no other Atlas packages.
package config
