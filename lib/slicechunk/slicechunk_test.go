// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package slicechunk

import (
	"errors"
	"slices"
	"testing"

	"github.com/davis20/atlas/lib/largearray"
)

func TestNewZeroFilled(t *testing.T) {
	chunk := New[int](4)

	if got := chunk.Capacity(); got != 4 {
		t.Fatalf("Capacity() = %d, want 4", got)
	}
	for offset := 0; offset < 4; offset++ {
		if got := chunk.Get(offset); got != 0 {
			t.Errorf("Get(%d) on fresh chunk = %d, want 0", offset, got)
		}
	}
}

func TestSetGet(t *testing.T) {
	chunk := New[string](3)
	chunk.Set(1, "b")

	if got := chunk.Get(1); got != "b" {
		t.Errorf("Get(1) = %q, want %q", got, "b")
	}
	if got := chunk.Get(0); got != "" {
		t.Errorf("Get(0) = %q, want empty (Set must not touch neighbors)", got)
	}
}

func TestWithCapacityGrow(t *testing.T) {
	chunk := New[int](2)
	chunk.Set(0, 7)
	chunk.Set(1, 8)

	grown := chunk.WithCapacity(4)

	if got := grown.Capacity(); got != 4 {
		t.Fatalf("grown Capacity() = %d, want 4", got)
	}
	for offset, want := range []int{7, 8, 0, 0} {
		if got := grown.Get(offset); got != want {
			t.Errorf("grown Get(%d) = %d, want %d", offset, got, want)
		}
	}

	// The copy must not alias the receiver in either direction.
	grown.Set(0, 99)
	if got := chunk.Get(0); got != 7 {
		t.Errorf("receiver Get(0) after writing the copy = %d, want 7", got)
	}
	if got := chunk.Capacity(); got != 2 {
		t.Errorf("receiver Capacity() = %d, want 2", got)
	}
}

func TestWithCapacityShrink(t *testing.T) {
	chunk := New[int](4)
	for offset := 0; offset < 4; offset++ {
		chunk.Set(offset, offset+1)
	}

	shrunk := chunk.WithCapacity(2)

	if got := shrunk.Capacity(); got != 2 {
		t.Fatalf("shrunk Capacity() = %d, want 2", got)
	}
	for offset, want := range []int{1, 2} {
		if got := shrunk.Get(offset); got != want {
			t.Errorf("shrunk Get(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestTrimmed(t *testing.T) {
	chunk := New[int](8)
	chunk.Set(0, 5)
	chunk.Set(1, 6)
	chunk.Set(2, 7)

	trimmed := chunk.Trimmed(3)

	if got := trimmed.Capacity(); got != 3 {
		t.Fatalf("trimmed Capacity() = %d, want 3", got)
	}
	for offset, want := range []int{5, 6, 7} {
		if got := trimmed.Get(offset); got != want {
			t.Errorf("trimmed Get(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	chunk := New[int](2)

	defer func() {
		if recover() == nil {
			t.Error("Get past capacity should panic")
		}
	}()
	chunk.Get(2)
}

// TestArrayIntegration drives a largearray.Array with the real factory
// through its growth, capacity, and trim paths.
func TestArrayIntegration(t *testing.T) {
	array, err := largearray.New(largearray.Config[int]{
		MaximumSize:          10,
		InitialChunkCapacity: 2,
		ChunkCapacityLimit:   4,
		NewChunk:             Factory[int](),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := array.Append(i); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
	}
	if err := array.Append(10); !errors.Is(err, largearray.ErrCapacityExceeded) {
		t.Fatalf("Append beyond maximum = %v, want ErrCapacityExceeded", err)
	}

	array.Trim()

	if got := array.Size(); got != 10 {
		t.Fatalf("Size() = %d, want 10", got)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := slices.Collect(array.Values()); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if err := array.Set(5, 50); err != nil {
		t.Fatalf("Set(5, 50): %v", err)
	}
	if got, err := array.Get(5); err != nil || got != 50 {
		t.Errorf("Get(5) = %d, %v, want 50, nil", got, err)
	}
}
