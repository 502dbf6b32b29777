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

import "testing"

func TestScanLiterals(t *testing.T) {
	toks, err := Scan("2 3 A -7 0x1F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Kind: Lit, Value: 2},
		{Kind: Lit, Value: 3},
		{Kind: Op, Op: 'A'},
		{Kind: Lit, Value: -7},
		{Kind: Lit, Value: 0x1F},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i].Kind != want[i].Kind || toks[i].Value != want[i].Value || toks[i].Op != want[i].Op {
			t.Errorf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestScanBuffer(t *testing.T) {
	toks, err := Scan(`"HI"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Buffer {
		t.Fatalf("got %+v", toks)
	}
	want := []int64{72, 73}
	if len(toks[0].Elems) != len(want) {
		t.Fatalf("got %v, want %v", toks[0].Elems, want)
	}
	for i := range want {
		if toks[0].Elems[i] != want[i] {
			t.Errorf("elem %d: got %d, want %d", i, toks[0].Elems[i], want[i])
		}
	}
}

func TestScanEmptyHex(t *testing.T) {
	_, err := Scan("0x")
	if err == nil {
		t.Fatalf("expected error on empty hex literal")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan(`"abc`)
	if err == nil {
		t.Fatalf("expected error on unterminated string")
	}
}

func TestScanInvalidCharacter(t *testing.T) {
	_, err := Scan("2 3 A ?")
	if err == nil {
		t.Fatalf("expected error on invalid character")
	}
}

func TestScanSubtractIsLowercaseS(t *testing.T) {
	toks, err := Scan("5 3 s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[2].Kind != Op || toks[2].Op != 's' {
		t.Fatalf("got %+v", toks)
	}
}

func TestStripComments(t *testing.T) {
	src := "2 3 A\n# a comment\nP H\n   # indented comment\n"
	out := StripComments(src)
	toks, err := Scan(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
}
