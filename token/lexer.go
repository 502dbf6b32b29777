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

package token

import (
	"strconv"

	"github.com/pkg/errors"
)

// Lexer turns ELI source text into a flat ordered sequence of Tokens.
// Position in the returned slice is the only addressing unit; the
// Lexer itself is stateless once Scan returns.
type Lexer struct {
	src          []rune
	position     int
	readPosition int
	ch           rune
	line         int
	col          int
}

// New creates a Lexer over the given source text.
func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1, col: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.src) {
		l.ch = 0
	} else {
		l.ch = l.src[l.readPosition]
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peek() rune {
	if l.readPosition >= len(l.src) {
		return 0
	}
	return l.src[l.readPosition]
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.position}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Scan tokenizes the whole of the Lexer's source text and returns the
// resulting token sequence, or the first lexical error encountered.
func Scan(src string) ([]Token, error) {
	l := New(src)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
	}
	return tokens, nil
}

// next returns the next Token, or (nil, nil) at end of input, or an
// error describing a lexical failure at its Position.
func (l *Lexer) next() (*Token, error) {
	for isWhitespace(l.ch) {
		l.readChar()
	}
	if l.ch == 0 {
		return nil, nil
	}

	pos := l.pos()

	switch {
	case l.ch == '"':
		return l.readBuffer(pos)
	case l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X'):
		return l.readHex(pos)
	case l.ch == '-' && isDigit(l.peek()):
		return l.readNegativeDecimal(pos)
	case isDigit(l.ch):
		return l.readDecimal(pos)
	case Operators[l.ch]:
		t := &Token{Kind: Op, Op: l.ch, Pos: pos}
		l.readChar()
		return t, nil
	default:
		return nil, errors.Errorf("%s: invalid character %q", pos, l.ch)
	}
}

func (l *Lexer) readBuffer(pos Position) (*Token, error) {
	l.readChar() // consume opening quote
	var elems []int64
	for l.ch != '"' {
		if l.ch == 0 {
			return nil, errors.Errorf("%s: unterminated string literal", pos)
		}
		elems = append(elems, int64(l.ch))
		l.readChar()
	}
	l.readChar() // consume closing quote
	return &Token{Kind: Buffer, Elems: elems, Pos: pos}, nil
}

func (l *Lexer) readHex(pos Position) (*Token, error) {
	l.readChar() // '0'
	l.readChar() // 'x'/'X'
	start := l.position
	for isHexDigit(l.ch) {
		l.readChar()
	}
	lit := string(l.src[start:l.position])
	if lit == "" {
		return nil, errors.Errorf("%s: empty hexadecimal literal", pos)
	}
	v, err := strconv.ParseInt(lit, 16, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: invalid hexadecimal literal %q", pos, lit)
	}
	return &Token{Kind: Lit, Value: v, Pos: pos}, nil
}

func (l *Lexer) readNegativeDecimal(pos Position) (*Token, error) {
	l.readChar() // consume '-'
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lit := "-" + string(l.src[start:l.position])
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: invalid integer literal %q", pos, lit)
	}
	return &Token{Kind: Lit, Value: v, Pos: pos}, nil
}

func (l *Lexer) readDecimal(pos Position) (*Token, error) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lit := string(l.src[start:l.position])
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: invalid integer literal %q", pos, lit)
	}
	return &Token{Kind: Lit, Value: v, Pos: pos}, nil
}

// StripComments removes lines whose first non-whitespace character is
// '#', per the ELI source-file convention. This is driver-level
// behavior, performed before tokenization, not part of the lexer
// proper.
func StripComments(src string) string {
	var out []rune
	line := []rune{}
	flushLine := func() {
		trimmed := line
		i := 0
		for i < len(trimmed) && isWhitespace(trimmed[i]) {
			i++
		}
		if i < len(trimmed) && trimmed[i] == '#' {
			// drop the comment line entirely
		} else {
			out = append(out, line...)
		}
		out = append(out, '\n')
		line = line[:0]
	}
	for _, r := range src {
		if r == '\n' {
			flushLine()
			continue
		}
		line = append(line, r)
	}
	flushLine()
	return string(out)
}
