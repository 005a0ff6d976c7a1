// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for Atlas
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/davis20/atlas/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// They default to "unknown" / "0.1.0-dev" when not injected, which
// occurs during development builds and test runs. [Info] formats the
// one-line string binaries print for --version; [Full] adds the Go
// toolchain and platform.
package version
