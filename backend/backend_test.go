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

package backend

import (
	"strings"
	"testing"

	"github.com/eli-lang/eli/codegen"
)

func TestLookupKnownPlatforms(t *testing.T) {
	for _, p := range []codegen.Platform{codegen.Hosted, codegen.Baremetal} {
		target, err := Lookup(p)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p, err)
		}
		if target.Platform != p {
			t.Fatalf("Lookup(%s).Platform = %s", p, target.Platform)
		}
		if len(target.ToolPrefixes) == 0 {
			t.Fatalf("Lookup(%s) has no tool prefixes to try", p)
		}
	}
}

func TestLookupUnknownPlatform(t *testing.T) {
	if _, err := Lookup(codegen.Platform(99)); err == nil {
		t.Fatalf("expected an error for an unregistered platform")
	}
}

func TestBaremetalPrefixesPreferCrossToolchain(t *testing.T) {
	target, err := Lookup(codegen.Baremetal)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if target.ToolPrefixes[0] == "" {
		t.Fatalf("baremetal target should try a cross-toolchain prefix before the bare tool name")
	}
}

func TestLinkerScriptLoadAddressAndDiscards(t *testing.T) {
	if !strings.Contains(BaremetalLinkerScript, ". = 0x40000000;") {
		t.Fatalf("expected the QEMU virt RAM base load address")
	}
	if !strings.Contains(BaremetalLinkerScript, "ENTRY(_start)") {
		t.Fatalf("expected an explicit ENTRY(_start)")
	}
	for _, section := range []string{".text", ".rodata", ".data", ".bss"} {
		if !strings.Contains(BaremetalLinkerScript, section+" : {") {
			t.Errorf("missing section %s", section)
		}
	}
	if !strings.Contains(BaremetalLinkerScript, "/DISCARD/") {
		t.Fatalf("expected a /DISCARD/ block for .comment/.note*/.eh_frame")
	}
}

func TestMacOSSDKPathHonorsEnv(t *testing.T) {
	t.Setenv("SDKROOT", "/tmp/fake-sdk")
	if got := macOSSDKPath(); got != "/tmp/fake-sdk" {
		t.Fatalf("macOSSDKPath() = %q, want the SDKROOT override", got)
	}
}

func TestMacOSSDKPathDefaultsToCommandLineTools(t *testing.T) {
	t.Setenv("SDKROOT", "")
	if got := macOSSDKPath(); !strings.Contains(got, "CommandLineTools") {
		t.Fatalf("macOSSDKPath() = %q, want the Xcode CLT default", got)
	}
}
