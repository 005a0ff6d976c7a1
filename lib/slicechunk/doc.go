// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

// Package slicechunk provides the standard slice-backed implementation
// of largearray.Chunk. Use [Factory] as largearray.Config.NewChunk
// unless the elements need specialized storage.
package slicechunk
