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

package codegen

import (
	"fmt"
	"strings"

	"github.com/eli-lang/eli/token"
	"github.com/eli-lang/eli/vm"
	"github.com/pkg/errors"
)

// Generator accumulates the assembly text for one program. It holds no
// state beyond what a single Generate call needs; callers construct a
// fresh Generator per program the way the reference constructs a fresh
// emit-context per compile.
type Generator struct {
	tokens   []token.Token
	platform Platform
	debug    bool
	b        strings.Builder
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// Debug annotates each emitted opcode block with a comment naming the
// token index, mirroring the per-opcode debug comments the reference
// backend already emits unconditionally; here it is opt-in via `-d`.
func Debug(enabled bool) Option {
	return func(g *Generator) { g.debug = enabled }
}

// Generate lowers tokens to a complete ARM64 assembly unit for the
// given platform.
func Generate(tokens []token.Token, platform Platform, opts ...Option) (string, error) {
	g := &Generator{tokens: tokens, platform: platform}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.run(); err != nil {
		return "", err
	}
	return g.b.String(), nil
}

func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(&g.b, format, args...)
	g.b.WriteByte('\n')
}

func (g *Generator) emitRaw(s string) {
	g.b.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		g.b.WriteByte('\n')
	}
}

// tokenLabel names the jump-table entry / code label for token i.
func tokenLabel(i int) string { return fmt.Sprintf(".token_%d", i) }

func (g *Generator) run() error {
	g.header()
	g.dataSection()
	g.jumpTable()
	g.entry()

	for i, t := range g.tokens {
		g.emit("%s:", tokenLabel(i))
		if g.debug {
			g.emit("    // token %d: %s", i, describeToken(t))
		}
		switch t.Kind {
		case token.Lit:
			g.emitPushLiteral(t.Value)
		case token.Buffer:
			g.emitPushBuffer(t.Elems)
		case token.Op:
			if err := g.emitOp(t.Op, i); err != nil {
				return errors.Wrapf(err, "token %d", i)
			}
		}
	}

	g.exitSequence()
	g.helpers()
	return nil
}

func describeToken(t token.Token) string {
	switch t.Kind {
	case token.Lit:
		return fmt.Sprintf("lit %d", t.Value)
	case token.Buffer:
		return fmt.Sprintf("buf[%d]", len(t.Elems))
	default:
		return string(t.Op)
	}
}

func (g *Generator) header() {
	g.emit(".global _start")
	g.emit(".align 4")
	g.emit("")
}

func (g *Generator) dataSection() {
	g.emit(".data")
	g.emit("stack_storage:")
	g.emit("    .space %d", stackSize)
	g.emit("")
	g.emit("memory_storage:")
	g.emit("    .space %d // operand memory, slots 1-2 reserved for call-stack metadata", memoryBytes)
	g.emit("")
	g.emit("print_buffer:")
	g.emit("    .space %d", printBufBytes)
	g.emit("")
	g.emit("call_stack_storage:")
	g.emit("    .space %d // %d frames x 16 bytes", callStackBytes, callStackFrames)
	g.emit("")
}

// jumpTable emits one entry per token plus a sentinel entry at index
// len(tokens) pointing at program_end. A computed jump landing exactly
// at the end of the token stream is valid (spec.md §3: targets in
// [0, len(tokens)]) and must behave like the interpreter's loop exiting
// cleanly, not like an out-of-bounds table read.
func (g *Generator) jumpTable() {
	g.emit("    .align 3")
	g.emit("jump_table:")
	for i := range g.tokens {
		g.emit("    .quad %s", tokenLabel(i))
	}
	g.emit("    .quad program_end")
	g.emit("")
	g.emit(".text")
}

// entry initializes the shared register convention documented in
// platform.go, then falls into token 0 (or straight to exit_program if
// the token stream is empty).
func (g *Generator) entry() {
	g.emit("_start:")
	g.emit("    // operand stack pointer (x19) and base (x18)")
	g.emit("    adrp x19, stack_storage@PAGE")
	g.emit("    add x19, x19, stack_storage@PAGEOFF")
	g.emit("    mov x18, x19")
	g.emit("")
	g.emit("    // memory base (x24) and array-heap bump pointer (x25)")
	g.emit("    adrp x24, memory_storage@PAGE")
	g.emit("    add x24, x24, memory_storage@PAGEOFF")
	g.emit("    mov x25, x24")
	g.emit("    mov x0, #%d", heapOffsetBytes)
	g.emit("    add x25, x25, x0")
	g.emit("")
	g.emit("    // call-stack metadata: pointer at memory+8, depth at memory+16")
	g.emit("    adrp x20, call_stack_storage@PAGE")
	g.emit("    add x20, x20, call_stack_storage@PAGEOFF")
	g.emit("    str x20, [x24, #8]")
	g.emit("    mov x21, #0")
	g.emit("    str x21, [x24, #16]")
	g.emit("")
	if len(g.tokens) == 0 {
		g.emit("    b exit_program")
	} else {
		g.emit("    b %s", tokenLabel(0))
	}
	g.emit("")
}

func (g *Generator) exitSequence() {
	g.emit("")
	g.emit("program_end:          // sentinel jump-table target for falling off the end")
	g.emit("    mov x0, #0")
	g.emit("    b exit_program")
	g.emit("")
	g.emit("runtime_error:        // shared failure path: every opcode's precondition")
	g.emit("                      // check branches directly here")
	g.emit("    mov x0, #1")
	g.emit("")
	g.emit("exit_program:")
	g.exitSyscall()
	g.emit("")
}

// emitPushLiteral materializes a 64-bit constant with a movz/movk/movn
// sequence (so any value, including negatives, is reachable without a
// literal pool) and pushes it.
func (g *Generator) emitPushLiteral(v int64) {
	g.emit("    // PUSH %d", v)
	u := uint64(v)
	if v < 0 {
		// movn loads NOT(imm) into bits[15:0] and implicitly sets every
		// other 16-bit lane to 0xffff; since imm is chosen as the one's
		// complement of u's low 16 bits, bits[15:0] end up equal to u's
		// low 16 bits directly. Any higher lane that isn't already
		// 0xffff needs an explicit movk with its real (uninverted) value.
		nv := ^u
		g.emit("    movn x0, #%d", nv&0xffff)
		for shift := 16; shift < 64; shift += 16 {
			part := (u >> uint(shift)) & 0xffff
			if part != 0xffff {
				g.emit("    movk x0, #%d, lsl #%d", part, shift)
			}
		}
	} else {
		g.emit("    movz x0, #%d", u&0xffff)
		for shift := 16; shift < 64; shift += 16 {
			part := (u >> uint(shift)) & 0xffff
			if part != 0 {
				g.emit("    movk x0, #%d, lsl #%d", part, shift)
			}
		}
	}
	g.emit("    str x0, [x19], #8")
}

// emitPushBuffer writes a buffer's length-prefixed element list into
// the heap region each time the token executes and pushes the
// resulting base address,
// per spec.md's array layout [length, elem0, elem1, ...].
func (g *Generator) emitPushBuffer(elems []int64) {
	g.emit("    // PUSH buffer[%d]", len(elems))
	g.emit("    mov x1, x25")
	g.emit("    mov x0, #%d", len(elems))
	g.emit("    str x0, [x25], #8")
	for _, e := range elems {
		u := uint64(e)
		g.emit("    movz x2, #%d", u&0xffff)
		for shift := 16; shift < 64; shift += 16 {
			part := (u >> uint(shift)) & 0xffff
			if part != 0 {
				g.emit("    movk x2, #%d, lsl #%d", part, shift)
			}
		}
		g.emit("    str x2, [x25], #8")
	}
	g.emit("    str x1, [x19], #8")
}

// emitOp dispatches a single operator token to its group-specific
// emitter, covering exactly the 42 opcodes in package vm.
func (g *Generator) emitOp(op vm.Opcode, tokenIndex int) error {
	switch op {
	case vm.OpAdd, vm.OpSub, vm.OpMul, vm.OpDiv, vm.OpMod:
		g.emitArith(op)
	case vm.OpMakeArr, vm.OpLen, vm.OpGet:
		g.emitArray(op, tokenIndex)
	case vm.OpEq, vm.OpGt, vm.OpLt:
		g.emitComparison(op)
	case vm.OpNot, vm.OpAnd, vm.OpOr, vm.OpXor, vm.OpBNot, vm.OpShl, vm.OpShr:
		g.emitBitwise(op, tokenIndex)
	case vm.OpDup, vm.OpSwap, vm.OpDrop, vm.OpOver, vm.OpRot:
		g.emitStack(op)
	case vm.OpStore, vm.OpLoad, vm.OpPtrAdd, vm.OpPtrSub, vm.OpReadBuf, vm.OpSetBuf:
		g.emitMemory(op)
	case vm.OpCAS, vm.OpTAS, vm.OpFence:
		g.emitAtomic(op, tokenIndex)
	case vm.OpJump, vm.OpJumpZero, vm.OpJumpNZ, vm.OpHalt, vm.OpCall, vm.OpReturn:
		return g.emitControl(op, tokenIndex)
	case vm.OpPrintInt, vm.OpReadInt, vm.OpReadChar, vm.OpPrintChr:
		g.emitIO(op)
	default:
		return errors.Errorf("unknown opcode %q", op)
	}
	return nil
}

func (g *Generator) emitIO(op vm.Opcode) {
	if g.platform == Baremetal {
		g.emitIOBaremetal(op)
	} else {
		g.emitIOHosted(op)
	}
}

func (g *Generator) exitSyscall() {
	if g.platform == Baremetal {
		g.exitSyscallBaremetal()
	} else {
		g.exitSyscallHosted()
	}
}

func (g *Generator) helpers() {
	if g.platform == Baremetal {
		g.helpersBaremetal()
	} else {
		g.helpersHosted()
	}
}
