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
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// codePointWriter is anything that can emit a single Unicode code
// point, satisfied directly by *bufio.Writer.
type codePointWriter interface {
	io.Writer
	WriteRune(r rune) (size int, err error)
}

// utf8Writer adapts a plain io.Writer that has no WriteRune method of
// its own, encoding each code point on the fly.
type utf8Writer struct {
	io.Writer
}

func (w *utf8Writer) WriteRune(r rune) (int, error) {
	return w.Write(utf8.AppendRune(nil, r))
}

// ensureRuneWriter returns w unchanged if it already knows how to
// write a single rune, otherwise adapts it with utf8Writer.
func ensureRuneWriter(w io.Writer) codePointWriter {
	if w == nil {
		return nil
	}
	if cw, ok := w.(codePointWriter); ok {
		return cw
	}
	return &utf8Writer{w}
}

func newReader(r io.Reader) io.RuneReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.RuneReader:
		return rr
	default:
		return bufio.NewReader(r)
	}
}

// printInt writes v as decimal digits followed by a newline, per §4.2 P.
func (vm *Instance) printInt(v int64) error {
	_, err := io.WriteString(vm.output, strconv.FormatInt(v, 10)+"\n")
	return errors.Wrap(err, "printInt")
}

// readInt blocks until a line of input is available and parses it as a
// signed decimal integer, per §4.2 I.
func (vm *Instance) readInt() (int64, error) {
	line, err := vm.readLine()
	if err != nil {
		return 0, errors.Wrap(err, "readInt")
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "readInt: unparseable integer %q", line)
	}
	return v, nil
}

func (vm *Instance) readLine() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := vm.input.ReadRune()
		if err != nil {
			if sb.Len() > 0 && errors.Cause(err) == io.EOF {
				return sb.String(), nil
			}
			return "", err
		}
		if r == '\n' {
			return sb.String(), nil
		}
		if r != '\r' {
			sb.WriteRune(r)
		}
	}
}

// readChar blocks for a single character of input and returns its code
// point, per §4.2 K.
func (vm *Instance) readChar() (int64, error) {
	r, _, err := vm.input.ReadRune()
	if err != nil {
		return 0, errors.Wrap(err, "readChar")
	}
	return int64(r), nil
}

// printChar writes a single Unicode code point, per §4.2 O.
func (vm *Instance) printChar(cp int64) error {
	if cp < 0 || cp > 0x10FFFF {
		return errors.Errorf("printChar: code point %d out of Unicode range", cp)
	}
	_, err := vm.output.WriteRune(rune(cp))
	return errors.Wrap(err, "printChar")
}
