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

// Bare-metal I/O targets a PL011-compatible UART at a fixed QEMU
// `virt`-machine MMIO base, per spec.md §6: data register at offset 0,
// flag register at +0x18, TXFF (transmit FIFO full) bit 5, RXFE
// (receive FIFO empty) bit 4.
const uartBase = 0x09000000

func (g *Generator) exitSyscallBaremetal() {
	g.emit("    // no OS to return to: spin in wfi forever")
	g.emit(".halt_loop:")
	g.emit("    wfi")
	g.emit("    b .halt_loop")
}

func (g *Generator) emitIOBaremetal(op vm.Opcode) {
	switch op {
	case vm.OpPrintInt:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    bl uart_print_int")
	case vm.OpReadInt:
		g.emit("    bl uart_read_int")
		g.emit("    str x0, [x19], #8")
	case vm.OpReadChar:
		g.emit("    bl uart_read_char")
		g.emit("    str x0, [x19], #8")
	case vm.OpPrintChr:
		g.emit("    sub x19, x19, #8")
		g.emit("    ldr x0, [x19]")
		g.emit("    bl uart_print_char")
	}
}

// helpersBaremetal emits the UART-polling equivalents of the hosted
// syscall-based helpers: busy-wait on the flag register instead of
// blocking in the kernel.
func (g *Generator) helpersBaremetal() {
	g.emitRaw(`
// uart_putc: write the low byte of w1 to the UART, polling TXFF
uart_putc:
    mov x14, #0x09000000
.Luart_putc_wait:
    ldr w15, [x14, #0x18]
    tbnz w15, #5, .Luart_putc_wait
    str w1, [x14]
    ret

// uart_getc: block for one byte from the UART, polling RXFE
uart_getc:
    mov x14, #0x09000000
.Luart_getc_wait:
    ldr w15, [x14, #0x18]
    tbnz w15, #4, .Luart_getc_wait
    ldr w0, [x14]
    and w0, w0, #0xff
    ret

// uart_print_int: format x0 as signed decimal + newline over the UART
uart_print_int:
    stp x29, x30, [sp, #-32]!
    mov x29, sp
    str x19, [sp, #16]

    adrp x10, print_buffer@PAGE
    add x10, x10, print_buffer@PAGEOFF
    add x10, x10, #31
    mov x11, #0
    strb w11, [x10]

    mov x12, #0
    cmp x0, #0
    b.ge .Luart_pi_positive
    mov x12, #1
    neg x0, x0

.Luart_pi_positive:
    mov x13, #10
.Luart_pi_loop:
    udiv x1, x0, x13
    msub x2, x1, x13, x0
    add x2, x2, #48
    sub x10, x10, #1
    strb w2, [x10]
    mov x0, x1
    cbnz x0, .Luart_pi_loop

    cbz x12, .Luart_pi_emit
    mov x2, #45
    sub x10, x10, #1
    strb w2, [x10]

.Luart_pi_emit:
    adrp x19, print_buffer@PAGE
    add x19, x19, print_buffer@PAGEOFF
    add x19, x19, #31
.Luart_pi_emit_loop:
    cmp x10, x19
    b.ge .Luart_pi_newline
    ldrb w1, [x10], #1
    bl uart_putc
    b .Luart_pi_emit_loop

.Luart_pi_newline:
    mov w1, #10
    bl uart_putc

    ldr x19, [sp, #16]
    ldp x29, x30, [sp], #32
    ret

// uart_read_int: read a signed-decimal line from the UART into x0
uart_read_int:
    stp x29, x30, [sp, #-16]!
    mov x29, sp

    mov x11, #0
    mov x12, #0

    bl uart_getc
    cmp w0, #45
    b.ne .Luart_ri_digits
    mov x12, #1
    bl uart_getc

.Luart_ri_digits:
    cmp w0, #10
    b.eq .Luart_ri_done
    cmp w0, #48
    b.lt .Luart_ri_done
    cmp w0, #57
    b.gt .Luart_ri_done
    sub w0, w0, #48
    mov x13, #10
    mul x11, x11, x13
    add x11, x11, x0
    bl uart_getc
    b .Luart_ri_digits

.Luart_ri_done:
    cmp x12, #0
    b.eq .Luart_ri_ret
    neg x11, x11

.Luart_ri_ret:
    mov x0, x11
    ldp x29, x30, [sp], #16
    ret

// uart_read_char: read a single code point (byte) from the UART
uart_read_char:
    b uart_getc

// uart_print_char: write the low byte of x0 over the UART
uart_print_char:
    stp x29, x30, [sp, #-16]!
    mov x29, sp
    mov w1, w0
    bl uart_putc
    ldp x29, x30, [sp], #16
    ret
`)
}
