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

// Opcode names the 42 single-character ELI operators. The rune value
// itself is the opcode; there is no translation table between source
// character and dispatch tag, matching the token alphabet in package
// token.
type Opcode = rune

// Opcode groups, named for documentation and for the jump-table /
// inline-sequence generators in package codegen, which must cover
// exactly this set.
const (
	OpAdd      Opcode = 'A'
	OpSub      Opcode = 's'
	OpMul      Opcode = 'M'
	OpDiv      Opcode = 'D'
	OpMod      Opcode = 'X'
	OpMakeArr  Opcode = 'a'
	OpLen      Opcode = 'l'
	OpGet      Opcode = 'g'
	OpEq       Opcode = 'E'
	OpGt       Opcode = 'G'
	OpLt       Opcode = 'L'
	OpNot      Opcode = '!'
	OpAnd      Opcode = '&'
	OpOr       Opcode = '|'
	OpXor      Opcode = '^'
	OpBNot     Opcode = '~'
	OpShl      Opcode = '<'
	OpShr      Opcode = '>'
	OpDup      Opcode = 'U'
	OpSwap     Opcode = 'W'
	OpDrop     Opcode = 'V'
	OpOver     Opcode = 'Y'
	OpRot      Opcode = 'R'
	OpStore    Opcode = 'T'
	OpLoad     Opcode = 'F'
	OpPtrAdd   Opcode = '@'
	OpPtrSub   Opcode = '#'
	OpReadBuf  Opcode = 'B'
	OpSetBuf   Opcode = 'S'
	OpCAS      Opcode = '$'
	OpTAS      Opcode = '%'
	OpFence    Opcode = '='
	OpJump     Opcode = 'J'
	OpJumpZero Opcode = 'Z'
	OpJumpNZ   Opcode = 'N'
	OpHalt     Opcode = 'H'
	OpCall     Opcode = 'C'
	OpReturn   Opcode = 'Q'
	OpPrintInt Opcode = 'P'
	OpReadInt  Opcode = 'I'
	OpReadChar Opcode = 'K'
	OpPrintChr Opcode = 'O'
)

// MaxCallDepth is the maximum number of nested C calls; exceeding it
// is a fatal Call-stack error.
const MaxCallDepth = 1000
