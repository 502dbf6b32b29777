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

// emitIndirectBranch loads the jump table entry at token index + the
// value in reg and branches to it, after validating the target is in
// range, the native counterpart of vm.jumpTarget, since an
// out-of-range load through the jump table is undefined rather than a
// clean loop exit (spec.md §9's jump-validation open question).
func (g *Generator) emitIndirectBranch(tokenIndex int, offsetReg string, scratch string) {
	g.emit("    mov %s, #%d", scratch, tokenIndex)
	g.emit("    add %s, %s, %s        // target = token index + offset", scratch, scratch, offsetReg)
	g.emit("    cmp %s, #0", scratch)
	g.emit("    b.lt runtime_error")
	g.emit("    cmp %s, #%d", scratch, len(g.tokens))
	g.emit("    b.gt runtime_error")
	g.emit("    adrp x9, jump_table@PAGE")
	g.emit("    add x9, x9, jump_table@PAGEOFF")
	g.emit("    ldr x9, [x9, %s, lsl #3]", scratch)
	g.emit("    br x9")
}

func (g *Generator) emitControl(op vm.Opcode, tokenIndex int) error {
	switch op {
	case vm.OpJump:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // offset")
		g.emitIndirectBranch(tokenIndex, "x0", "x1")
	case vm.OpJumpZero:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // offset (popped first, per spec.md)")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // val")
		g.emit("    cmp x1, #0")
		g.emit("    b.ne .token_%d_skip", tokenIndex)
		g.emitIndirectBranch(tokenIndex, "x0", "x2")
		g.emit(".token_%d_skip:", tokenIndex)
	case vm.OpJumpNZ:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // offset (popped first, per spec.md)")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // val")
		g.emit("    cmp x1, #0")
		g.emit("    b.eq .token_%d_skip", tokenIndex)
		g.emitIndirectBranch(tokenIndex, "x0", "x2")
		g.emit(".token_%d_skip:", tokenIndex)
	case vm.OpHalt:
		g.emit("    mov x0, #0")
		g.emit("    b exit_program")
	case vm.OpCall:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // offset")
		g.emit("    ldr x1, [x24, #16]  // call depth")
		g.emit("    cmp x1, #%d", vm.MaxCallDepth)
		g.emit("    b.ge runtime_error")
		g.emit("    mov x2, #%d         // return token index", tokenIndex+1)
		g.emit("    sub x3, x19, x18")
		g.emit("    lsr x3, x3, #3     // operand-stack depth in elements")
		g.emit("    ldr x4, [x24, #8]  // call-stack pointer")
		g.emit("    str x2, [x4]")
		g.emit("    str x3, [x4, #8]")
		g.emit("    add x4, x4, #16")
		g.emit("    str x4, [x24, #8]")
		g.emit("    add x1, x1, #1")
		g.emit("    str x1, [x24, #16]")
		g.emitIndirectBranch(tokenIndex, "x0", "x5")
	case vm.OpReturn:
		g.emit("    ldr x0, [x24, #16]  // call depth")
		g.emit("    cbz x0, runtime_error")
		g.emit("    cmp x19, x18")
		g.emit("    b.le runtime_error  // underflow: no return value to pop")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // return value")
		g.emit("    ldr x2, [x24, #8]   // call-stack pointer")
		g.emit("    sub x2, x2, #16")
		g.emit("    ldr x3, [x2]        // saved return token index")
		g.emit("    ldr x4, [x2, #8]    // saved operand-stack depth (elements)")
		g.emit("    str x2, [x24, #8]")
		g.emit("    sub x0, x0, #1")
		g.emit("    str x0, [x24, #16]")
		g.emit("    sub x7, x19, x18")
		g.emit("    lsr x7, x7, #3      // current depth (elements), after popping rv")
		g.emit("    cmp x4, x7")
		g.emit("    b.gt .ret_%d_no_clamp  // saved depth exceeds actual: leave stack as-is", tokenIndex)
		g.emit("    lsl x6, x4, #3")
		g.emit("    add x19, x18, x6    // truncate to the depth saved at call time")
		g.emit(".ret_%d_no_clamp:", tokenIndex)
		g.emit("    str x1, [x19], #8   // push the single return value")
		g.emit("    adrp x5, jump_table@PAGE")
		g.emit("    add x5, x5, jump_table@PAGEOFF")
		g.emit("    ldr x6, [x5, x3, lsl #3]")
		g.emit("    br x6")
	}
	return nil
}
