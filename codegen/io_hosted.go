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

// Hosted I/O uses the classic three syscalls exposed by the macOS
// (Darwin) ARM64 syscall ABI used by the teacher's native-compiler
// reference: 1 (exit), 3 (read), 4 (write), number in x16, all via
// svc #0x80.
func (g *Generator) exitSyscallHosted() {
	g.emit("    mov x16, #1         // exit syscall")
	g.emit("    svc #0x80")
}

func (g *Generator) emitIOHosted(op vm.Opcode) {
	switch op {
	case vm.OpPrintInt:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    bl print_int")
	case vm.OpReadInt:
		g.emit("    bl read_int")
		g.emit("    str x0, [x19], #8")
	case vm.OpReadChar:
		g.emit("    bl read_char")
		g.emit("    str x0, [x19], #8")
	case vm.OpPrintChr:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    bl print_char")
	}
}

// helpersHosted emits print_int/read_int/read_char/print_char against
// stdin/stdout via syscalls 3/4, porting the reference's repeated-
// divide-by-ten integer formatter and signed-decimal parser.
func (g *Generator) helpersHosted() {
	g.emitRaw(`
// print_int: format x0 as signed decimal + newline, write to stdout
print_int:
    stp x29, x30, [sp, #-16]!
    mov x29, sp

    adrp x10, print_buffer@PAGE
    add x10, x10, print_buffer@PAGEOFF
    add x10, x10, #31
    mov x11, #0
    strb w11, [x10]

    mov x12, #0
    cmp x0, #0
    b.ge .Lprint_int_positive
    mov x12, #1
    neg x0, x0

.Lprint_int_positive:
    mov x13, #10
.Lprint_int_loop:
    udiv x1, x0, x13
    msub x2, x1, x13, x0
    add x2, x2, #48
    sub x10, x10, #1
    strb w2, [x10]
    mov x0, x1
    cbnz x0, .Lprint_int_loop

    cbz x12, .Lprint_int_emit
    mov x2, #45
    sub x10, x10, #1
    strb w2, [x10]

.Lprint_int_emit:
    adrp x11, print_buffer@PAGE
    add x11, x11, print_buffer@PAGEOFF
    add x11, x11, #31
    sub x2, x11, x10
    mov x13, #10
    strb w13, [x11]
    add x2, x2, #1

    mov x0, #1
    mov x1, x10
    mov x16, #4
    svc #0x80

    ldp x29, x30, [sp], #16
    ret

// read_int: read a line from stdin, parse a signed decimal into x0
read_int:
    stp x29, x30, [sp, #-16]!
    mov x29, sp
    sub sp, sp, #32

    mov x0, #0
    mov x1, sp
    mov x2, #31
    mov x16, #3
    svc #0x80

    mov x10, sp
    mov x11, #0
    mov x12, #0

    ldrb w13, [x10]
    cmp w13, #45
    b.ne .Lread_int_digits
    mov x12, #1
    add x10, x10, #1

.Lread_int_digits:
    ldrb w13, [x10], #1
    cmp w13, #10
    b.eq .Lread_int_done
    cmp w13, #48
    b.lt .Lread_int_done
    cmp w13, #57
    b.gt .Lread_int_done
    sub w13, w13, #48
    mov x14, #10
    mul x11, x11, x14
    add x11, x11, x13
    b .Lread_int_digits

.Lread_int_done:
    cmp x12, #0
    b.eq .Lread_int_ret
    neg x11, x11

.Lread_int_ret:
    mov x0, x11
    add sp, sp, #32
    ldp x29, x30, [sp], #16
    ret

// read_char: read one byte from stdin into x0
read_char:
    stp x29, x30, [sp, #-16]!
    mov x29, sp
    sub sp, sp, #16

    mov x0, #0
    mov x1, sp
    mov x2, #1
    mov x16, #3
    svc #0x80

    ldrb w0, [sp]

    add sp, sp, #16
    ldp x29, x30, [sp], #16
    ret

// print_char: write the low byte of x0 to stdout
print_char:
    stp x29, x30, [sp, #-16]!
    mov x29, sp
    sub sp, sp, #16
    strb w0, [sp]

    mov x0, #1
    mov x1, sp
    mov x2, #1
    mov x16, #4
    svc #0x80

    add sp, sp, #16
    ldp x29, x30, [sp], #16
    ret
`)
}
