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

// Package token contains the tokens produced when scanning an ELI
// program, and the Position attached to lexical errors.
package token

import "fmt"

// Kind identifies the shape of a Token.
type Kind int

const (
	// Lit is a decimal or hexadecimal integer literal.
	Lit Kind = iota
	// Buffer is a quoted string literal, exploded into code points.
	Buffer
	// Op is one of the 42 single-character operators.
	Op
)

func (k Kind) String() string {
	switch k {
	case Lit:
		return "LIT"
	case Buffer:
		return "BUFFER"
	case Op:
		return "OP"
	default:
		return "UNKNOWN"
	}
}

// Position locates a byte in the source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit of an ELI program.
//
// For Lit tokens, Value holds the literal's integer value. For Buffer
// tokens, Elems holds the code points of the quoted string, in order.
// For Op tokens, Op holds the operator rune.
type Token struct {
	Kind  Kind
	Value int64
	Elems []int64
	Op    rune
	Pos   Position
}

// Operators is the fixed 42-character operator alphabet recognized by
// the tokenizer. Position in this program is the sole addressing unit
// for control flow; this set is never extended at runtime.
var Operators = map[rune]bool{
	'A': true, 's': true, 'M': true, 'D': true, 'X': true,
	'a': true, 'l': true, 'g': true,
	'E': true, 'G': true, 'L': true,
	'!': true, '&': true, '|': true, '^': true,
	'~': true, '<': true, '>': true,
	'U': true, 'W': true, 'V': true, 'Y': true, 'R': true,
	'T': true, 'F': true, '@': true, '#': true, 'B': true, 'S': true,
	'$': true, '%': true, '=': true,
	'J': true, 'Z': true, 'N': true, 'H': true,
	'C': true, 'Q': true,
	'P': true, 'I': true, 'K': true, 'O': true,
}
