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

// emitArray realizes `a`, `l`, `g` against the array heap layout
// [length, elem0, elem1, ...], with the bump pointer in x25.
func (g *Generator) emitArray(op vm.Opcode, tokenIndex int) {
	switch op {
	case vm.OpMakeArr:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // n")
		g.emit("    mov x1, x25         // result array base")
		g.emit("    str x0, [x25], #8   // write length")
		g.emit("    mov x2, x0")
		g.emit(".array_%d_loop:", tokenIndex)
		g.emit("    cbz x2, .array_%d_done", tokenIndex)
		g.emit("    sub x3, x2, #1")
		g.emit("    lsl x3, x3, #3")
		g.emit("    sub x4, x19, x3")
		g.emit("    sub x4, x4, #8")
		g.emit("    ldr x5, [x4]        // elements are pushed bottom-to-top;")
		g.emit("    str x5, [x25], #8   // reading up toward x19 replays push order")
		g.emit("    sub x2, x2, #1")
		g.emit("    b .array_%d_loop", tokenIndex)
		g.emit(".array_%d_done:", tokenIndex)
		g.emit("    lsl x0, x0, #3")
		g.emit("    sub x19, x19, x0    // drop the n source elements")
		g.emit("    str x1, [x19], #8   // push the array reference")
	case vm.OpLen:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // array base")
		g.emit("    ldr x1, [x0]        // length is the first cell")
		g.emit("    str x1, [x19], #8")
	case vm.OpGet:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // index")
		g.emit("    ldr x0, [x19, #-8]  // array base, left on the stack: g does not consume it")
		g.emit("    ldr x2, [x0]        // length, for the bounds check")
		g.emit("    cmp x1, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    cmp x1, x2")
		g.emit("    b.ge runtime_error")
		g.emit("    add x3, x0, #8")
		g.emit("    ldr x4, [x3, x1, lsl #3]")
		g.emit("    str x4, [x19], #8   // push the value; array base is still at [x19-16]")
	}
}
