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

// emitAtomic realizes $/%/= with genuine load-exclusive/store-exclusive
// retry loops, so that the compiled program is correct under true
// concurrency even though the interpreter only ever runs one thread
// (spec.md §5).
func (g *Generator) emitAtomic(op vm.Opcode, tokenIndex int) {
	switch op {
	case vm.OpCAS:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // old")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x2, [x19]       // new")
		g.emit("    add x3, x24, x0, lsl #3")
		g.emit(".cas_%d_retry:", tokenIndex)
		g.emit("    ldaxr x4, [x3]")
		g.emit("    cmp x4, x1")
		g.emit("    b.ne .cas_%d_fail", tokenIndex)
		g.emit("    stlxr w5, x2, [x3]")
		g.emit("    cbnz w5, .cas_%d_retry", tokenIndex)
		g.emit("    mov x6, #1")
		g.emit("    b .cas_%d_done", tokenIndex)
		g.emit(".cas_%d_fail:", tokenIndex)
		g.emit("    clrex")
		g.emit("    mov x6, #0")
		g.emit(".cas_%d_done:", tokenIndex)
		g.emit("    str x6, [x19], #8")
	case vm.OpTAS:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    add x1, x24, x0, lsl #3")
		g.emit(".tas_%d_retry:", tokenIndex)
		g.emit("    ldaxr x2, [x1]")
		g.emit("    mov x3, #1")
		g.emit("    stlxr w4, x3, [x1]")
		g.emit("    cbnz w4, .tas_%d_retry", tokenIndex)
		g.emit("    str x2, [x19], #8   // push old value")
	case vm.OpFence:
		g.emit("    dmb ish")
	}
}
