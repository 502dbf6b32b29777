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

// Package codegen lowers a tokenized ELI program to ARM64 assembly
// text, one translation unit per run, in the shape described by the
// register convention below. Every opcode except the I/O group has a
// single shared emitter; I/O and the program-exit sequence are the
// only parts that differ between the Hosted and Baremetal platforms.
//
// Register convention, fixed for the whole package:
//
//	x19  operand-stack pointer, grows up, post-increment on push
//	x18  operand-stack base (saved once at entry; call/return restore against it)
//	x24  memory-region base
//	x25  array-heap bump pointer
//	x20  scratch: call-stack pointer home is memory+#8, not a dedicated register
//	x21  scratch: call-depth counter home is memory+#16
//
// x0-x7 are free scratch registers within each opcode's inline
// sequence; nothing is live across opcode boundaries outside of
// x18/x19/x24/x25 and the memory-resident call-stack metadata.
package codegen

import "github.com/pkg/errors"

// Platform selects the I/O and program-exit strategy for generated
// code. The static two entries mirror the backend registry described
// in SPEC_FULL.md, not a filesystem-scanned plugin discovery.
type Platform int

const (
	Hosted Platform = iota
	Baremetal
)

func (p Platform) String() string {
	switch p {
	case Hosted:
		return "arm64"
	case Baremetal:
		return "arm64_baremetal"
	default:
		return "unknown"
	}
}

// ParsePlatform maps a CLI `-a` flag value to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "arm64":
		return Hosted, nil
	case "arm64_baremetal":
		return Baremetal, nil
	default:
		return 0, errors.Errorf("unknown target %q (want arm64 or arm64_baremetal)", s)
	}
}

// Memory layout constants for the generated data section.
const (
	stackSize       = 8192          // operand stack, bytes
	memorySlots     = 10000         // memory region, 8-byte slots
	memoryBytes     = memorySlots * 8
	callStackFrames = 1000
	callStackBytes  = callStackFrames * 16
	printBufBytes   = 32
	heapOffsetBytes = 40000 // array heap begins at memory+40000, per spec.md §6
)
