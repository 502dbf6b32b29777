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

// The eli command runs an ELI token program through the
// tree-walking interpreter.
//
// Usage:
//
//	eli [flags] [file]
//
//	-c text
//	      run the inline program text instead of reading a file
//	-d
//	      enable the per-token dispatch trace and verbose fault reporting
//	-noraw
//	      disable raw terminal IO for stdin
//	-stats
//	      print instruction-count/throughput statistics on exit
//
// Example: summing 1..1000 with a counted back-offset loop, the
// canonical timing program also used by the original benchmark suite.
// mem[1000] holds the loop limit, mem[1001] the running sum, mem[1002]
// the counter; running it with `-stats` prints "500500" on stdout and
// the instruction-rate line on stderr.
//
//	1 1000 M 1000 T
//	0 1001 T
//	0 1002 T
//	1002 F 1000 F L 16 Z
//	1002 F 1 A 1002 T
//	1001 F 1002 F A 1001 T
//	-21 J
//	1001 F P H
package main
