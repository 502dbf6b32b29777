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

import "github.com/eli-lang/eli/vm"

// popPair emits the shared pop-b-then-pop-a prologue used by every
// binary opcode: b (top) into x1, a into x0.
func (g *Generator) popPair() {
	g.emit("    sub x19, x19, #8")
	g.emit("    ldr x1, [x19]")
	g.emit("    sub x19, x19, #8")
	g.emit("    ldr x0, [x19]")
}

func (g *Generator) pushX0() {
	g.emit("    str x0, [x19], #8")
}

func (g *Generator) emitArith(op vm.Opcode) {
	switch op {
	case vm.OpAdd:
		g.popPair()
		g.emit("    add x0, x0, x1")
		g.pushX0()
	case vm.OpSub:
		g.popPair()
		g.emit("    sub x0, x0, x1")
		g.pushX0()
	case vm.OpMul:
		g.popPair()
		g.emit("    mul x0, x0, x1")
		g.pushX0()
	case vm.OpDiv:
		g.popPair()
		g.emit("    cbz x1, runtime_error")
		g.emit("    sdiv x0, x0, x1")
		g.pushX0()
	case vm.OpMod:
		g.popPair()
		g.emit("    cbz x1, runtime_error")
		g.emit("    sdiv x2, x0, x1")
		g.emit("    msub x0, x2, x1, x0")
		g.pushX0()
	}
}

func (g *Generator) emitComparison(op vm.Opcode) {
	g.popPair()
	g.emit("    cmp x0, x1")
	switch op {
	case vm.OpEq:
		g.emit("    cset x0, eq")
	case vm.OpGt:
		g.emit("    cset x0, gt")
	case vm.OpLt:
		g.emit("    cset x0, lt")
	}
	g.pushX0()
}

// emitBitwise realizes `&|^~<>` as pure bitwise/shift operations, not
// boolean-coerced; only `!` is a logical not (1 if zero, else 0).
// spec.md §4.2 defines `&`/`|`/`^` as bitwise and, in
// particular, distinct from a hypothetical logical-and that would
// booleanize its operands first.
func (g *Generator) emitBitwise(op vm.Opcode, tokenIndex int) {
	switch op {
	case vm.OpNot:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    cmp x0, #0")
		g.emit("    cset x0, eq")
		g.pushX0()
	case vm.OpAnd:
		g.popPair()
		g.emit("    and x0, x0, x1")
		g.pushX0()
	case vm.OpOr:
		g.popPair()
		g.emit("    orr x0, x0, x1")
		g.pushX0()
	case vm.OpXor:
		g.popPair()
		g.emit("    eor x0, x0, x1")
		g.pushX0()
	case vm.OpBNot:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    mvn x0, x0")
		g.pushX0()
	case vm.OpShl, vm.OpShr:
		g.popPair()
		g.emit("    cmp x1, #64")
		g.emit("    b.gt runtime_error")
		g.emit("    cmp x1, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    cmp x1, #64")
		g.emit("    b.ne .shift_%d_do", tokenIndex)
		g.emit("    mov x0, #0")
		g.emit("    b .shift_%d_done", tokenIndex)
		g.emit(".shift_%d_do:", tokenIndex)
		if op == vm.OpShl {
			g.emit("    lsl x0, x0, x1")
		} else {
			g.emit("    lsr x0, x0, x1")
		}
		g.emit(".shift_%d_done:", tokenIndex)
		g.pushX0()
	}
}
