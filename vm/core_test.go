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
	"bytes"
	"strings"
	"testing"

	"github.com/eli-lang/eli/token"
)

func mustTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := token.Scan(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func runProgram(t *testing.T, src, stdin string) (string, *Instance, error) {
	t.Helper()
	toks := mustTokens(t, src)
	var out bytes.Buffer
	in := strings.NewReader(stdin)
	i := New(toks, Input(in), Output(&out))
	err := i.Run()
	return out.String(), i, err
}

func TestAddPrint(t *testing.T) {
	out, _, err := runProgram(t, "2 3 A P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("got %q, want %q", out, "5\n")
	}
}

func TestDivide(t *testing.T) {
	out, _, err := runProgram(t, "10 2 D P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("got %q, want %q", out, "5\n")
	}
}

func TestDivideByZero(t *testing.T) {
	_, _, err := runProgram(t, "5 0 D", "")
	if err == nil {
		t.Fatalf("expected division-by-zero error")
	}
}

func TestMemoryDefaultAndRoundtrip(t *testing.T) {
	out, _, err := runProgram(t, "0 1 T 1 F P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n" {
		t.Fatalf("got %q, want %q", out, "0\n")
	}
}

func TestCountedLoop(t *testing.T) {
	// mem[100] = running sum, mem[101] = counter, counting down from 5.
	// Token layout (index: token): 0:0 1:100 2:T 3:5 4:101 5:T
	// 6:101 7:F 8:100 9:F 10:A 11:100 12:T 13:101 14:F 15:1 16:s
	// 17:101 18:T 19:101 20:F 21:-16 22:N 23:100 24:F 25:P 26:H
	// N is at token 22; the back-offset -16 targets token 6 (loop start).
	src := "0 100 T 5 101 T 101 F 100 F A 100 T 101 F 1 s 101 T 101 F -16 N 100 F P H"
	out, _, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("got %q, want %q (sum of 1..5)", out, "15\n")
	}
}

// benchmarkKernelSource is the counted loop summing 1..1000 from
// spec.md §8 scenario 5, carried over from the canonical timing
// program in original_source/benchmarks/run_all_benchmarks.py's
// gen_sum_program (k=1, i.e. N=1000), with the generator's trailing
// "10 O" dropped since P already appends the newline here. This same
// text is embedded in cmd/eli's package doc as the worked example.
const benchmarkKernelSource = `1 1000 M 1000 T
0 1001 T
0 1002 T
1002 F 1000 F L 16 Z
1002 F 1 A 1002 T
1001 F 1002 F A 1001 T
-21 J
1001 F P H`

func TestBenchmarkKernelSumTo1000(t *testing.T) {
	// mem[1000] = loop limit, mem[1001] = running sum, mem[1002] =
	// counter. Z at token 17 jumps +16 to token 33 (the print/halt
	// tail) once the counter reaches the limit; J at token 32 jumps
	// -21 back to token 11 (the comparison) otherwise.
	out, _, err := runProgram(t, benchmarkKernelSource, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "500500\n" {
		t.Fatalf("got %q, want %q (sum of 1..1000)", out, "500500\n")
	}
}

func TestBufferStoreAndReadback(t *testing.T) {
	out, _, err := runProgram(t, `"HI" 0 S 0 B 0 g P 1 g P H`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "72\n73\n" {
		t.Fatalf("got %q, want %q", out, "72\n73\n")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	out, _, err := runProgram(t, "10 20 30 3 a U l P 0 g P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n10\n" {
		t.Fatalf("got %q, want %q", out, "3\n10\n")
	}
}

func TestCallReturnBalance(t *testing.T) {
	// token 0:21 1:3 2:C 3:P 4:H 5:U 6:A 7:Q
	// C at token 2 jumps +3 to token 5, the "double" routine (dup, add,
	// return); on Q popping the return value 42 leaves the stack empty,
	// which is shallower than the call-time depth (1, the pushed
	// argument), so the stack is left as is and the single return value
	// is pushed in the argument's place.
	out, _, err := runProgram(t, "21 3 C P H U A Q", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42\n" {
		t.Fatalf("got %q, want %q", out, "42\n")
	}
}

func TestReturnWithoutCall(t *testing.T) {
	_, _, err := runProgram(t, "1 Q", "")
	if err == nil {
		t.Fatalf("expected call-stack underflow error")
	}
}

func TestShiftBoundary(t *testing.T) {
	out, _, err := runProgram(t, "1 0 < P 1 64 < P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n0\n" {
		t.Fatalf("got %q, want %q", out, "1\n0\n")
	}
}

func TestShiftOutOfRangeFails(t *testing.T) {
	_, _, err := runProgram(t, "1 65 <", "")
	if err == nil {
		t.Fatalf("expected shift range error")
	}
}

func TestOverOnTwoElements(t *testing.T) {
	out, _, err := runProgram(t, "1 2 Y P P P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n1\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n1\n")
	}
}

func TestRotRequiresThree(t *testing.T) {
	_, _, err := runProgram(t, "1 2 R", "")
	if err == nil {
		t.Fatalf("expected underflow error")
	}
}

func TestEmptyProgramHalts(t *testing.T) {
	_, i, err := runProgram(t, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Depth() != 0 {
		t.Fatalf("expected empty stack, got depth %d", i.Depth())
	}
}

func TestTypeMismatchOnArray(t *testing.T) {
	_, _, err := runProgram(t, `"HI" 1 A`, "")
	if err == nil {
		t.Fatalf("expected type-mismatch error")
	}
}

func TestCompareAndSwap(t *testing.T) {
	out, _, err := runProgram(t, "0 1 T 1 0 1 $ P 1 F P H", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n1\n" {
		t.Fatalf("got %q, want %q", out, "1\n1\n")
	}
}
