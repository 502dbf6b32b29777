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

import (
	"bytes"
	"testing"

	"github.com/eli-lang/eli/token"
)

func TestNewDefaultsIO(t *testing.T) {
	i := New(nil)
	if i.input == nil || i.output == nil {
		t.Fatalf("expected default input/output to be set")
	}
}

func TestOptionOutput(t *testing.T) {
	var buf bytes.Buffer
	toks, err := token.Scan("65 O H")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	i := New(toks, Output(&buf))
	if err := i.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.String() != "A" {
		t.Fatalf("got %q, want %q", buf.String(), "A")
	}
}

func TestHeapAllocIsStable(t *testing.T) {
	var h Heap
	a := h.Alloc([]int64{1, 2, 3})
	b := h.Alloc([]int64{4, 5})
	if a.Len() != 3 || b.Len() != 2 {
		t.Fatalf("unexpected lengths: %d %d", a.Len(), b.Len())
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 allocations, got %d", h.Len())
	}
	// mutating the returned array must not alias the caller's slice
	src := []int64{9}
	c := h.Alloc(src)
	src[0] = 100
	if c.Elems[0] != 9 {
		t.Fatalf("Alloc must copy its input: got %d", c.Elems[0])
	}
}

func TestFaultError(t *testing.T) {
	f := &Fault{Kind: FaultUnderflow, Op: 'A', TokenIndex: 3, Stack: nil, Msg: "boom"}
	if f.Error() == "" {
		t.Fatalf("expected non-empty error string")
	}
}

func TestMaxCallDepthEnforced(t *testing.T) {
	// token 0: -1 (offset back to token 0), token 1: C. Each pass pushes
	// -1 then calls itself, growing the call stack by one frame per
	// iteration with no base case, so it must fail once the call stack
	// exceeds MaxCallDepth rather than recursing forever.
	toks, err := token.Scan("-1 C")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	i := New(toks)
	err = i.Run()
	if err == nil {
		t.Fatalf("expected call-stack overflow error")
	}
}
