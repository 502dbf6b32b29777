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

func (g *Generator) emitStack(op vm.Opcode) {
	switch op {
	case vm.OpDup:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    str x0, [x19], #8")
		g.emit("    str x0, [x19], #8")
	case vm.OpSwap:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // top (b)")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // (a)")
		g.emit("    str x0, [x19], #8")
		g.emit("    str x1, [x19], #8")
	case vm.OpDrop:
		g.emit("    sub x19, x19, #8")
	case vm.OpOver:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // b (top)")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // a")
		g.emit("    str x1, [x19], #8   // restore a")
		g.emit("    str x0, [x19], #8   // restore b")
		g.emit("    str x1, [x19], #8   // push copy of a")
	case vm.OpRot:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x2, [x19]       // c (top)")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x1, [x19]       // b")
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]       // a (bottom)")
		g.emit("    str x1, [x19], #8   // push b")
		g.emit("    str x2, [x19], #8   // push c")
		g.emit("    str x0, [x19], #8   // push a on top")
	}
}
