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

// Package vm implements the ELI stack machine: the operand and call
// stacks, the address-indexed memory store, the bump-allocated array
// heap, and the reference tree-walking interpreter that dispatches on
// the token stream produced by package token.
package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/eli-lang/eli/token"
)

// CallFrame is a single entry of the call stack: the token index to
// resume at on return, and the operand-stack depth to restore to.
type CallFrame struct {
	Return int
	Depth  int
}

// Option configures an Instance at construction time.
type Option func(*Instance)

// Input sets the Instance's input stream. Defaults to os.Stdin.
func Input(r io.Reader) Option {
	return func(i *Instance) { i.input = newReader(r) }
}

// Output sets the Instance's output stream. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(i *Instance) { i.output = ensureRuneWriter(w) }
}

// Debug enables the dispatch trace: one line per executed token,
// written to stderr before the opcode runs.
func Debug(enabled bool) Option {
	return func(i *Instance) { i.debug = enabled }
}

// Instance holds all mutable state for a single ELI program run:
// tokens, operand stack, call stack, memory, and array heap. All
// mutable state lives here rather than in package-level variables, so
// that multiple Instances can run concurrently without interference.
type Instance struct {
	Tokens []token.Token

	stack []Value
	calls []CallFrame
	mem   map[int64]Value
	heap  Heap

	pc       int
	insCount int64
	debug    bool

	input  io.RuneReader
	output codePointWriter
}

// New creates an Instance ready to run the given token sequence.
func New(tokens []token.Token, opts ...Option) *Instance {
	i := &Instance{
		Tokens: tokens,
		mem:    make(map[int64]Value),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.input == nil {
		i.input = bufio.NewReader(os.Stdin)
	}
	if i.output == nil {
		i.output = ensureRuneWriter(os.Stdout)
	}
	return i
}

// PC returns the current program counter (token index).
func (vm *Instance) PC() int { return vm.pc }

// Stack returns the operand stack, bottom first. The returned slice
// aliases the Instance's internal storage and must be treated as
// read-only by callers.
func (vm *Instance) Stack() []Value { return vm.stack }

// Depth returns the operand-stack depth.
func (vm *Instance) Depth() int { return len(vm.stack) }

// CallDepth returns the call-stack depth.
func (vm *Instance) CallDepth() int { return len(vm.calls) }

// InstructionCount returns the number of tokens dispatched so far.
func (vm *Instance) InstructionCount() int64 { return vm.insCount }

// Memory returns a snapshot-free view of the value stored at addr, or
// the integer 0 if addr was never written.
func (vm *Instance) Memory(addr int64) Value {
	if v, ok := vm.mem[addr]; ok {
		return v
	}
	return Int64Value(0)
}

// HeapLen reports how many arrays have been allocated so far.
func (vm *Instance) HeapLen() int { return vm.heap.Len() }
