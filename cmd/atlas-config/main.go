// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

// atlas-config resolves dot-notation keys against a configuration
// document and prints each resolved value as JSON, one per line.
//
// The document format is chosen by file extension (.yaml, .yml, .json,
// .jsonc); --format overrides it, and is required when reading stdin
// via --file -. When --file is omitted the path is taken from the
// ATLAS_CONFIG environment variable.
//
// Exit codes: 0 when every key resolves, 1 when any key is missing,
// 2 on usage or load errors.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/davis20/atlas/lib/config"
	"github.com/davis20/atlas/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing to match other Atlas binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("atlas-config %s\n", version.Info())
		return 0
	}

	var filePath string
	var format string

	flagSet := pflag.NewFlagSet("atlas-config", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "", `path to the config document ("-" reads stdin; default: $ATLAS_CONFIG)`)
	flagSet.StringVar(&format, "format", "", "document format: json, jsonc, or yaml (default: by file extension)")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Usage = func() { printUsage(flagSet) }

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if help, _ := flagSet.GetBool("help"); help {
		printUsage(flagSet)
		return 0
	}

	keys := flagSet.Args()
	if len(keys) == 0 {
		fmt.Fprintln(os.Stderr, "error: no keys to resolve")
		printUsage(flagSet)
		return 2
	}

	document, err := loadDocument(filePath, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	return resolveKeys(document, keys, os.Stdout)
}

// loadDocument reads the document from path, from stdin when path is
// "-", or from the file named by ATLAS_CONFIG when path is empty. An
// explicit format takes precedence over extension dispatch.
func loadDocument(path, format string) (*config.Document, error) {
	if path == "" {
		path = os.Getenv("ATLAS_CONFIG")
		if path == "" {
			return nil, errors.New("no document: pass --file or set ATLAS_CONFIG")
		}
	}

	if path == "-" {
		if format == "" {
			return nil, errors.New("--format is required when reading stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return parseAs("stdin", format, data)
	}

	if format == "" {
		return config.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseAs(filepath.Base(path), format, data)
}

// parseAs dispatches on an explicit --format value.
func parseAs(name, format string, data []byte) (*config.Document, error) {
	switch format {
	case "json", "jsonc":
		return config.Parse(name, data)
	case "yaml", "yml":
		return config.ParseYAML(name, data)
	default:
		return nil, fmt.Errorf("unknown format %q (want json, jsonc, or yaml)", format)
	}
}

// resolveKeys resolves each key in order and writes its JSON encoding
// to out, one value per line. Returns 0 when every key resolved, 1
// otherwise; failures are reported on stderr and do not stop the
// remaining keys.
func resolveKeys(document *config.Document, keys []string, out io.Writer) int {
	exitCode := 0
	for _, key := range keys {
		value, found := document.Resolve(key)
		if !found {
			fmt.Fprintf(os.Stderr, "error: %s: key %q not found\n", document.Name(), key)
			exitCode = 1
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			// YAML can hold values JSON cannot encode, such as
			// mappings with non-string keys.
			fmt.Fprintf(os.Stderr, "error: %s: key %q: %v\n", document.Name(), key, err)
			exitCode = 1
			continue
		}
		fmt.Fprintf(out, "%s\n", encoded)
	}
	return exitCode
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `atlas-config resolves dot-notation keys against a configuration document.

Each resolved value is printed as JSON, one per line, in key order.
Keys resolve with longest-match-first semantics: a flat "a.b.c" entry
shadows the same path spelled as nested maps.

Usage:
  atlas-config [--file <path>] [--format json|jsonc|yaml] KEY...

Examples:
  # Resolve two keys from a YAML document
  atlas-config --file atlas.yaml feature.pruning.enabled chunks.initial

  # Read a JSONC document from stdin
  generate-config | atlas-config --file - --format jsonc feature.limits

  # Use the document named by ATLAS_CONFIG
  atlas-config feature.pruning.enabled

Exit codes: 0 all keys resolved, 1 any key missing, 2 usage or load error.

Flags:
%s`, flagSet.FlagUsages())
}
