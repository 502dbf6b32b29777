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
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eli-lang/eli/token"
	"github.com/eli-lang/eli/vm"
	"github.com/pkg/errors"
)

func setupIO(noRawIO bool) (tearDown func()) {
	if noRawIO {
		return nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return nil
	}
	return tearDown
}

func atExit(i *vm.Instance, debug bool, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %d, stack: %v, call depth: %d\n", i.PC(), i.Stack(), i.CallDepth())
	}
	os.Exit(1)
}

// readSource resolves the program source text. File mode strips
// comment lines (first non-whitespace char '#') before tokenization,
// per spec.md §6; inline -c text is taken verbatim since it never
// passes through the source-file convention.
func readSource(path, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", errors.New("no program given: pass a file or -c")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return token.StripComments(string(b)), nil
}

func main() {
	var i *vm.Instance
	var err error

	inline := flag.String("c", "", "run the inline program `text` instead of reading a file")
	debug := flag.Bool("d", false, "enable the per-token dispatch trace and verbose fault reporting")
	noRawIO := flag.Bool("noraw", false, "disable raw terminal IO for stdin")
	execStats := flag.Bool("stats", false, "print instruction-count/throughput statistics on exit")
	flag.Parse()

	defer func() { atExit(i, *debug, err) }()

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	var src string
	src, err = readSource(path, *inline)
	if err != nil {
		return
	}

	var toks []token.Token
	toks, err = token.Scan(src)
	if err != nil {
		return
	}

	tearDown := setupIO(*noRawIO)
	if tearDown != nil {
		defer tearDown()
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	i = vm.New(toks,
		vm.Input(bufio.NewReader(os.Stdin)),
		vm.Output(stdout),
		vm.Debug(*debug),
	)

	start := time.Now()
	err = i.Run()
	if *execStats {
		delta := time.Since(start)
		fmt.Fprintf(os.Stderr, "Executed %d instructions in %v (%.3f MHz).\n",
			i.InstructionCount(), delta, float64(i.InstructionCount())/float64(delta)*float64(time.Second)/1e6)
	}
}
