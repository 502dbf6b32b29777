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

// emitMemory realizes T/F/@/#/B/S. The memory region is indexed by
// addr*8 from x24; B/S use the same slot to hold either a scalar or an
// array base pointer, distinguished only by how the reader interprets
// the cell; the region itself is untyped 64-bit storage.
func (g *Generator) emitMemory(op vm.Opcode) {
	switch op {
	case vm.OpStore:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // val")
		g.emit("    str x1, [x24, x0, lsl #3]")
	case vm.OpLoad:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    ldr x1, [x24, x0, lsl #3]")
		g.emit("    str x1, [x19], #8")
	case vm.OpPtrAdd:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // offset")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // pointer")
		g.emit("    add x0, x0, x1")
		g.emit("    str x0, [x19], #8")
	case vm.OpPtrSub:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // offset")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // pointer")
		g.emit("    sub x0, x0, x1")
		g.emit("    str x0, [x19], #8")
	case vm.OpReadBuf:
		// Native memory cells are untyped 64-bit words with no value-kind
		// tag, unlike the interpreter's Value union. B therefore always
		// treats the slot as an array base pointer; see DESIGN.md for the
		// resulting, documented divergence from the interpreter's
		// scalar-to-single-element-array coercion.
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    ldr x1, [x24, x0, lsl #3]")
		g.emit("    str x1, [x19], #8")
	case vm.OpSetBuf:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // addr")
		g.emit("    cmp x0, #0")
		g.emit("    b.lt runtime_error")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // array base")
		g.emit("    str x1, [x24, x0, lsl #3]")
	}
}
