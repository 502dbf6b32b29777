// This file is part of eli - https://github.com/eli-lang/eli
//
// Copyright 2026 The ELI Authors
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

package vm

// ValueKind distinguishes the two variants a Value may hold.
type ValueKind int

const (
	// Integer is a signed 64-bit scalar.
	Integer ValueKind = iota
	// ArrayRef is a reference to a contiguous region of the array heap.
	ArrayRef
)

// Value is the tagged union every operand-stack slot and memory cell
// holds: either a plain Integer or a reference to an Array on the heap.
type Value struct {
	Kind ValueKind
	Int  int64
	Arr  *Array
}

// Int64Value wraps a plain integer.
func Int64Value(v int64) Value { return Value{Kind: Integer, Int: v} }

// ArrayValue wraps a reference to an Array.
func ArrayValue(a *Array) Value { return Value{Kind: ArrayRef, Arr: a} }

// IsZero reports whether an Integer Value is zero. Only meaningful for
// Integer values; callers must type-check first.
func (v Value) IsZero() bool { return v.Kind == Integer && v.Int == 0 }

// Array is a bump-allocated, append-only region: the element count
// followed by that many 64-bit cells. Arrays are never freed during a
// program run and references into the heap remain stable for the
// program's lifetime.
type Array struct {
	Elems []int64
}

// Len returns the element count.
func (a *Array) Len() int { return len(a.Elems) }

// Heap is the bump allocator backing all Array values. Allocation only
// ever appends; there is no reclamation.
type Heap struct {
	arrays []*Array
}

// Alloc bump-allocates a new Array holding a copy of elems and returns
// a reference to it.
func (h *Heap) Alloc(elems []int64) *Array {
	cp := make([]int64, len(elems))
	copy(cp, elems)
	a := &Array{Elems: cp}
	h.arrays = append(h.arrays, a)
	return a
}

// Len reports how many arrays have been allocated so far.
func (h *Heap) Len() int { return len(h.arrays) }
