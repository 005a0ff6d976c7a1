// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"math"
	"strings"
)

// Resolve looks up a dotted key in the document. At each level of the
// tree the longest dotted join of the remaining key parts is tried
// first, so a flat "a.b.c" entry shadows the same path spelled as
// nested maps. A map value descends a level, resolving the rest of the
// key inside it; descending consumes the matched parts and never
// backtracks. An empty key, or a key fully consumed by descents,
// resolves to the subtree itself.
//
// The second result reports whether anything was found. Entries whose
// value is explicitly null count as missing.
func (d *Document) Resolve(key string) (any, bool) {
	return resolve(key, d.root)
}

// resolve walks one level. The split point starts past the last key
// part and moves left until a join matches, mirroring lookup of
// "a.b.c" as "a.b.c", then "a.b" with remainder "c", then "a" with
// remainder "b.c".
func resolve(key string, context map[string]any) (any, bool) {
	if key == "" {
		return context, true
	}
	parts := strings.Split(key, ".")
	for split := len(parts); split > 0; split-- {
		value := context[strings.Join(parts[:split], ".")]
		if child, ok := value.(map[string]any); ok {
			return resolve(strings.Join(parts[split:], "."), child)
		}
		if value != nil {
			return value, true
		}
	}
	return nil, false
}

// String returns the string value at key.
func (d *Document) String(key string) (string, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// Int returns the integer value at key. The YAML and JSON decoders
// produce different concrete types for integers (int, int64, uint64,
// and float64 with an integral value); all of them coerce. Values with
// a fractional part, or outside the int64 range, do not.
func (d *Document) Int(key string) (int64, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return 0, false
	}
	switch number := value.(type) {
	case int:
		return int64(number), true
	case int64:
		return number, true
	case uint64:
		if number > math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case float64:
		if number != math.Trunc(number) || number < -(1<<63) || number >= 1<<63 {
			return 0, false
		}
		return int64(number), true
	}
	return 0, false
}

// Float returns the floating-point value at key, coercing any of the
// decoders' numeric types.
func (d *Document) Float(key string) (float64, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return 0, false
	}
	switch number := value.(type) {
	case float64:
		return number, true
	case int:
		return float64(number), true
	case int64:
		return float64(number), true
	case uint64:
		return float64(number), true
	}
	return 0, false
}

// Bool returns the boolean value at key.
func (d *Document) Bool(key string) (bool, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return false, false
	}
	flag, ok := value.(bool)
	return flag, ok
}

// Strings returns the list value at key. Every element must be a
// string.
func (d *Document) Strings(key string) ([]string, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return nil, false
	}
	switch list := value.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, len(list))
		for i, element := range list {
			text, ok := element.(string)
			if !ok {
				return nil, false
			}
			out[i] = text
		}
		return out, true
	}
	return nil, false
}

// Sub returns the subtree at key as a child Document. The child shares
// the parent's name (it comes from the same resource) and the parent's
// backing tree.
func (d *Document) Sub(key string) (*Document, bool) {
	value, ok := d.Resolve(key)
	if !ok {
		return nil, false
	}
	child, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return New(d.name, child), true
}

// Get resolves key and type-asserts the raw value to T, returning
// fallback when the key is missing or holds a different concrete type.
// No numeric coercion is performed; use the typed accessors when the
// decoder's concrete number type is not known in advance.
func Get[T any](d *Document, key string, fallback T) T {
	value, ok := d.Resolve(key)
	if !ok {
		return fallback
	}
	typed, ok := value.(T)
	if !ok {
		return fallback
	}
	return typed
}
