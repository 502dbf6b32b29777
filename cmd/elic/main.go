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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eli-lang/eli/backend"
	"github.com/eli-lang/eli/codegen"
	"github.com/eli-lang/eli/token"
	"github.com/pkg/errors"
)

// readSource resolves the positional argument to program source: as a
// file path when -f is set, otherwise as the inline opcode text
// itself. File mode strips comment lines before tokenization, per
// spec.md §6; inline text is taken verbatim.
func readSource(arg string, fileMode bool) (string, error) {
	if arg == "" {
		return "", errors.New("no program given: pass an opcode string or, with -f, a source file")
	}
	if !fileMode {
		return arg, nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", arg)
	}
	return token.StripComments(string(b)), nil
}

func listTargets() {
	for _, p := range []codegen.Platform{codegen.Hosted, codegen.Baremetal} {
		fmt.Println(p)
	}
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}()

	fileMode := flag.Bool("f", false, "treat the positional argument as a source file path instead of inline opcode text")
	outPath := flag.String("o", "a.out", "output `path` for the linked binary")
	arch := targetFlag(codegen.Hosted)
	flag.Var(&arch, "a", "target: arm64 (hosted) or arm64_baremetal (QEMU virt)")
	list := flag.Bool("l", false, "list the registered backend targets and exit")
	debug := flag.Bool("d", false, "annotate the generated assembly with per-token debug comments")
	flag.Parse()

	if *list {
		listTargets()
		return
	}

	var src string
	src, err = readSource(flag.Arg(0), *fileMode)
	if err != nil {
		return
	}

	var toks []token.Token
	toks, err = token.Scan(src)
	if err != nil {
		return
	}

	platform := codegen.Platform(arch)

	var opts []codegen.Option
	if *debug {
		opts = append(opts, codegen.Debug(true))
	}

	var asm string
	asm, err = codegen.Generate(toks, platform, opts...)
	if err != nil {
		return
	}

	var target backend.Target
	target, err = backend.Lookup(platform)
	if err != nil {
		return
	}
	err = target.Assemble(asm, *outPath)
}
