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

package vm

import (
	"fmt"
	"os"

	"github.com/eli-lang/eli/token"
	"github.com/pkg/errors"
)

// push appends a Value to the top of the operand stack.
func (vm *Instance) push(v Value) {
	vm.stack = append(vm.stack, v)
}

// pop removes and returns the top Value of the operand stack, failing
// with a stack-underflow Fault if the stack is empty.
func (vm *Instance) pop(op rune) Value {
	n := len(vm.stack)
	if n == 0 {
		vm.fail(FaultUnderflow, op, "operand stack is empty")
	}
	v := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return v
}

// popInt pops a Value and requires it to be an Integer.
func (vm *Instance) popInt(op rune) int64 {
	v := vm.pop(op)
	if v.Kind != Integer {
		vm.fail(FaultTypeMismatch, op, "expected integer, found array reference")
	}
	return v.Int
}

// popArr pops a Value and requires it to be an ArrayRef.
func (vm *Instance) popArr(op rune) *Array {
	v := vm.pop(op)
	if v.Kind != ArrayRef {
		vm.fail(FaultTypeMismatch, op, "expected array reference, found integer")
	}
	return v.Arr
}

// at returns the Value n entries below the top without popping,
// failing with underflow if the stack is too shallow. n==0 is the top.
func (vm *Instance) at(op rune, n int) Value {
	idx := len(vm.stack) - 1 - n
	if idx < 0 {
		vm.fail(FaultUnderflow, op, "need %d entries, have %d", n+1, len(vm.stack))
	}
	return vm.stack[idx]
}

// Run executes the token stream from the current program counter until
// a Halt opcode, the end of the token stream, or a fatal Fault.
//
// Any failure during opcode dispatch halts the program with a
// diagnostic and no result: opcode handlers fail via panic(*Fault),
// recovered and wrapped here exactly once, so no opcode can partially
// mutate state past the point its precondition check fails.
func (vm *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch f := e.(type) {
			case *Fault:
				err = errors.WithStack(f)
			default:
				panic(e)
			}
		}
	}()

	for vm.pc < len(vm.Tokens) {
		t := vm.Tokens[vm.pc]

		if vm.debug {
			fmt.Fprintf(os.Stderr, "[%4d] %-6s | stack=%v\n", vm.pc, describe(t), vm.stack)
		}

		switch t.Kind {
		case token.Lit:
			vm.push(Int64Value(t.Value))
			vm.pc++
		case token.Buffer:
			a := vm.heap.Alloc(t.Elems)
			vm.push(ArrayValue(a))
			vm.pc++
		case token.Op:
			vm.dispatch(t.Op)
		}
		vm.insCount++
	}
	return nil
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.Lit:
		return fmt.Sprintf("lit %d", t.Value)
	case token.Buffer:
		return fmt.Sprintf("buf[%d]", len(t.Elems))
	default:
		return string(t.Op)
	}
}

// jumpTarget validates and returns the absolute token index obtained by
// adding off to the token index of the jump opcode itself.
func (vm *Instance) jumpTarget(op rune, opIndex int, off int64) int {
	target := opIndex + int(off)
	if target < 0 || target > len(vm.Tokens) {
		vm.fail(FaultBounds, op, "jump target %d out of range [0,%d]", target, len(vm.Tokens))
	}
	return target
}

// dispatch executes a single Op token and advances the program counter.
func (vm *Instance) dispatch(op rune) {
	opIndex := vm.pc

	switch op {

	// Arithmetic
	case OpAdd:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a + b))
	case OpSub:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a - b))
	case OpMul:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a * b))
	case OpDiv:
		b, a := vm.popInt(op), vm.popInt(op)
		if b == 0 {
			vm.fail(FaultArithmetic, op, "division by zero")
		}
		vm.push(Int64Value(a / b))
	case OpMod:
		b, a := vm.popInt(op), vm.popInt(op)
		if b == 0 {
			vm.fail(FaultArithmetic, op, "modulo by zero")
		}
		vm.push(Int64Value(a % b))

	// Array
	case OpMakeArr:
		n := vm.popInt(op)
		if n < 0 || int64(len(vm.stack)) < n {
			vm.fail(FaultBounds, op, "array count %d exceeds stack depth %d", n, len(vm.stack))
		}
		elems := make([]int64, n)
		for k := int64(0); k < n; k++ {
			elems[n-1-k] = vm.popInt(op)
		}
		vm.push(ArrayValue(vm.heap.Alloc(elems)))
	case OpLen:
		a := vm.popArr(op)
		vm.push(Int64Value(int64(a.Len())))
	case OpGet:
		idx := vm.popInt(op)
		a := vm.popArr(op)
		if idx < 0 || idx >= int64(a.Len()) {
			vm.fail(FaultBounds, op, "array index %d out of range [0,%d)", idx, a.Len())
		}
		// The array reference is a pointer into the heap, not an
		// ephemeral stack value: indexing it leaves it available for
		// further indexing, matching repeated "idx g" reads of the
		// same buffer without an intervening re-fetch.
		vm.push(ArrayValue(a))
		vm.push(Int64Value(a.Elems[idx]))

	// Comparison
	case OpEq:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(boolValue(a == b))
	case OpGt:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(boolValue(a > b))
	case OpLt:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(boolValue(a < b))

	// Boolean / bitwise
	case OpNot:
		a := vm.popInt(op)
		vm.push(boolValue(a == 0))
	case OpAnd:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a & b))
	case OpOr:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a | b))
	case OpXor:
		b, a := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(a ^ b))
	case OpBNot:
		a := vm.popInt(op)
		vm.push(Int64Value(^a))
	case OpShl:
		b, a := vm.popInt(op), vm.popInt(op)
		if b < 0 || b > 64 {
			vm.fail(FaultArithmetic, op, "shift amount %d out of [0,64]", b)
		}
		vm.push(Int64Value(shiftLeft(a, b)))
	case OpShr:
		b, a := vm.popInt(op), vm.popInt(op)
		if b < 0 || b > 64 {
			vm.fail(FaultArithmetic, op, "shift amount %d out of [0,64]", b)
		}
		vm.push(Int64Value(shiftRightLogical(a, b)))

	// Stack
	case OpDup:
		a := vm.at(op, 0)
		vm.push(a)
	case OpSwap:
		b := vm.pop(op)
		a := vm.pop(op)
		vm.push(b)
		vm.push(a)
	case OpDrop:
		vm.pop(op)
	case OpOver:
		a := vm.at(op, 1)
		vm.push(a)
	case OpRot:
		c := vm.pop(op)
		b := vm.pop(op)
		a := vm.pop(op)
		vm.push(b)
		vm.push(c)
		vm.push(a)

	// Memory
	case OpStore:
		addr := vm.popInt(op)
		val := vm.pop(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		vm.mem[addr] = val
	case OpLoad:
		addr := vm.popInt(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		vm.push(vm.Memory(addr))
	case OpPtrAdd:
		o, p := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(p + o))
	case OpPtrSub:
		o, p := vm.popInt(op), vm.popInt(op)
		vm.push(Int64Value(p - o))
	case OpReadBuf:
		addr := vm.popInt(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		v := vm.Memory(addr)
		if v.Kind == ArrayRef {
			vm.push(v)
		} else {
			vm.push(ArrayValue(vm.heap.Alloc([]int64{v.Int})))
		}
	case OpSetBuf:
		addr := vm.popInt(op)
		a := vm.popArr(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		vm.mem[addr] = ArrayValue(a)

	// Atomic
	case OpCAS:
		addr := vm.popInt(op)
		old := vm.popInt(op)
		newv := vm.popInt(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		cur := vm.Memory(addr)
		if cur.Kind == Integer && cur.Int == old {
			vm.mem[addr] = Int64Value(newv)
			vm.push(Int64Value(1))
		} else {
			vm.push(Int64Value(0))
		}
	case OpTAS:
		addr := vm.popInt(op)
		if addr < 0 {
			vm.fail(FaultBounds, op, "negative memory address %d", addr)
		}
		old := vm.Memory(addr)
		vm.mem[addr] = Int64Value(1)
		vm.push(old)
	case OpFence:
		// no operand effect; sequential execution makes this a no-op.

	// Control
	case OpJump:
		off := vm.popInt(op)
		vm.pc = vm.jumpTarget(op, opIndex, off)
		return
	case OpJumpZero:
		off := vm.popInt(op)
		val := vm.popInt(op)
		if val == 0 {
			vm.pc = vm.jumpTarget(op, opIndex, off)
			return
		}
	case OpJumpNZ:
		off := vm.popInt(op)
		val := vm.popInt(op)
		if val != 0 {
			vm.pc = vm.jumpTarget(op, opIndex, off)
			return
		}
	case OpHalt:
		vm.pc = len(vm.Tokens)
		return

	// Functions
	case OpCall:
		off := vm.popInt(op)
		if len(vm.calls) >= MaxCallDepth {
			vm.fail(FaultCallStack, op, "call depth exceeds %d", MaxCallDepth)
		}
		vm.calls = append(vm.calls, CallFrame{Return: opIndex + 1, Depth: len(vm.stack)})
		vm.pc = vm.jumpTarget(op, opIndex, off)
		return
	case OpReturn:
		rv := vm.pop(op)
		n := len(vm.calls)
		if n == 0 {
			vm.fail(FaultCallStack, op, "return with no matching call")
		}
		frame := vm.calls[n-1]
		vm.calls = vm.calls[:n-1]
		if frame.Depth <= len(vm.stack) {
			vm.stack = vm.stack[:frame.Depth]
		}
		vm.push(rv)
		vm.pc = frame.Return
		return

	// I/O
	case OpPrintInt:
		v := vm.popInt(op)
		if err := vm.printInt(v); err != nil {
			vm.fail(FaultIO, op, "%v", err)
		}
	case OpReadInt:
		v, err := vm.readInt()
		if err != nil {
			vm.fail(FaultIO, op, "%v", err)
		}
		vm.push(Int64Value(v))
	case OpReadChar:
		v, err := vm.readChar()
		if err != nil {
			vm.fail(FaultIO, op, "%v", err)
		}
		vm.push(Int64Value(v))
	case OpPrintChr:
		v := vm.popInt(op)
		if err := vm.printChar(v); err != nil {
			vm.fail(FaultIO, op, "%v", err)
		}

	default:
		vm.fail(FaultLexical, op, "unknown opcode")
	}

	vm.pc++
}

func boolValue(b bool) Value {
	if b {
		return Int64Value(1)
	}
	return Int64Value(0)
}

// shiftLeft implements << with the chosen convention for b==64: the
// result is zero. ARM64's LSL-by-register takes the amount modulo 64,
// so the code generator emits an explicit b==64 branch to match.
func shiftLeft(a, b int64) int64 {
	if b == 64 {
		return 0
	}
	return a << uint(b)
}

// shiftRightLogical implements >> as a logical (unsigned) shift, with
// b==64 yielding zero, mirroring shiftLeft.
func shiftRightLogical(a, b int64) int64 {
	if b == 64 {
		return 0
	}
	return int64(uint64(a) >> uint(b))
}
