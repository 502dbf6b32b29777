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

// The elic command compiles an ELI token program to a native ARM64
// binary.
//
// Usage:
//
//	elic [flags] program
//
//	-f
//	      treat the positional argument as a source file path instead
//	      of inline opcode text
//	-o path
//	      output path for the linked binary (default "a.out")
//	-a target
//	      arm64 (hosted) or arm64_baremetal (QEMU virt)
//	-l
//	      list the registered backend targets and exit
//	-d
//	      annotate the generated assembly with per-token debug comments
package main
