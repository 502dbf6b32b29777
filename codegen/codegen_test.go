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

import (
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

func TestGenerateBasicStructure(t *testing.T) {
	toks := mustTokens(t, "2 3 A P H")
	asm, err := Generate(toks, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		".global _start",
		"_start:",
		"jump_table:",
		".token_0:",
		".token_4:",
		"exit_program:",
		"runtime_error:",
		"program_end:",
		"print_int:",
	} {
		if !strings.Contains(asm, want) {
			t.Errorf("generated assembly missing %q", want)
		}
	}
}

func TestJumpTableHasSentinelEntry(t *testing.T) {
	toks := mustTokens(t, "1 2 A P H")
	asm, err := Generate(toks, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	quads := 0
	inTable := false
	for _, line := range strings.Split(asm, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "jump_table:" {
			inTable = true
			continue
		}
		if inTable {
			if strings.HasPrefix(trimmed, ".quad") {
				quads++
				continue
			}
			break
		}
	}
	// one entry per token plus the program_end sentinel.
	if quads != len(toks)+1 {
		t.Fatalf("got %d jump-table entries, want %d (tokens=%d + sentinel)", quads, len(toks)+1, len(toks))
	}
	if !strings.Contains(asm, ".quad program_end") {
		t.Fatalf("expected sentinel entry pointing at program_end")
	}
}

func TestHostedUsesSyscallIO(t *testing.T) {
	toks := mustTokens(t, `"HI" 0 g P H`)
	asm, err := Generate(toks, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(asm, "svc #0x80") {
		t.Fatalf("hosted target must use svc #0x80 syscalls")
	}
	if strings.Contains(asm, uartBaseLiteral()) {
		t.Fatalf("hosted target must not reference the UART MMIO base")
	}
}

func TestBaremetalUsesUART(t *testing.T) {
	toks := mustTokens(t, "65 O H")
	asm, err := Generate(toks, Baremetal, Debug(true))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(asm, uartBaseLiteral()) {
		t.Fatalf("baremetal target must reference the UART MMIO base")
	}
	if !strings.Contains(asm, "wfi") {
		t.Fatalf("baremetal halt path must enter a wfi loop")
	}
	if strings.Contains(asm, "svc #0x80") {
		t.Fatalf("baremetal target must not use hosted syscalls")
	}
}

func uartBaseLiteral() string { return "0x09000000" }

func TestDebugAnnotatesTokens(t *testing.T) {
	toks := mustTokens(t, "1 2 A H")
	asm, err := Generate(toks, Hosted, Debug(true))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(asm, "// token 2: A") {
		t.Fatalf("expected debug annotation naming the add opcode at its token index")
	}
}

func TestShiftEmitsBoundsCheckAndZeroCase(t *testing.T) {
	toks := mustTokens(t, "1 64 < P H")
	asm, err := Generate(toks, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(asm, "cmp x1, #64") {
		t.Fatalf("expected a shift-amount bounds check against 64")
	}
	if !strings.Contains(asm, "lsl x0, x0, x1") {
		t.Fatalf("expected an lsl instruction for the shl opcode")
	}
	if !strings.Contains(asm, "b.ne .shift_2_do") {
		t.Fatalf("expected a branch around the shift-by-64 zero case")
	}
}

func TestCallReturnEmitsCallStackBookkeeping(t *testing.T) {
	toks := mustTokens(t, "21 3 C P H U A Q")
	asm, err := Generate(toks, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{"str x2, [x4]", "ldr x3, [x2]", "br x6", "br x9"} {
		if !strings.Contains(asm, want) {
			t.Errorf("expected call/return bookkeeping to include %q", want)
		}
	}
}

func TestEmptyProgramStillHalts(t *testing.T) {
	asm, err := Generate(nil, Hosted)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(asm, "b exit_program") {
		t.Fatalf("empty program must still branch straight to exit_program")
	}
}

func TestParsePlatform(t *testing.T) {
	if p, err := ParsePlatform("arm64"); err != nil || p != Hosted {
		t.Fatalf("ParsePlatform(arm64) = %v, %v", p, err)
	}
	if p, err := ParsePlatform("arm64_baremetal"); err != nil || p != Baremetal {
		t.Fatalf("ParsePlatform(arm64_baremetal) = %v, %v", p, err)
	}
	if _, err := ParsePlatform("x86"); err == nil {
		t.Fatalf("expected an error for an unknown target")
	}
}
