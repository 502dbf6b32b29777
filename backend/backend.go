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

// Package backend turns generated ARM64 assembly text into a linked
// executable by shelling out to the system toolchain, the way the
// reference compilers invoke `gcc`/`as`/`ld` rather than embedding an
// assembler. Two targets are registered, matching codegen.Platform:
// Hosted links a normal macOS process-image executable against
// libSystem, Baremetal links a freestanding ELF against a
// generated linker script for the QEMU `virt` machine.
package backend

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/eli-lang/eli/codegen"
	"github.com/pkg/errors"
)

// Target assembles and links one platform's output.
type Target struct {
	Platform codegen.Platform
	// ToolPrefixes are tried in order for each of as/ld/objcopy (an
	// empty prefix means the bare tool name), mirroring the reference backend's fallback list
	// of aarch64-linux-gnu-*/aarch64-elf-*/* cross-toolchain names.
	ToolPrefixes []string
}

var registry = map[codegen.Platform]Target{
	codegen.Hosted: {
		Platform:     codegen.Hosted,
		ToolPrefixes: []string{""},
	},
	codegen.Baremetal: {
		Platform:     codegen.Baremetal,
		ToolPrefixes: []string{"aarch64-linux-gnu-", "aarch64-elf-", ""},
	},
}

// Lookup returns the registered Target for a platform.
func Lookup(p codegen.Platform) (Target, error) {
	t, ok := registry[p]
	if !ok {
		return Target{}, errors.Errorf("no backend registered for platform %s", p)
	}
	return t, nil
}

// findTool looks up each prefixed candidate on PATH and returns the
// first one found, the same fallback order the
// reference bare-metal backend uses to pick between a cross-toolchain
// and the native one.
func findTool(prefixes []string, tool string) (string, error) {
	for _, prefix := range prefixes {
		candidate := prefix + tool
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Errorf("no %q toolchain binary found (tried %v)", tool, prefixes)
}

// Assemble writes asm to a temporary .s file, assembles and links it
// into outputPath, and removes the intermediate object file, the
// write-assemble-link-cleanup sequence the reference backends run as
// subprocess.run/os/exec calls around `as`/`ld`.
func (t Target) Assemble(asm string, outputPath string) error {
	asFile := outputPath + ".s"
	objFile := outputPath + ".o"
	if err := os.WriteFile(asFile, []byte(asm), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", asFile)
	}
	defer os.Remove(asFile)

	as, err := findTool(t.ToolPrefixes, "as")
	if err != nil {
		return err
	}
	if err := run(as, "-o", objFile, asFile); err != nil {
		return errors.Wrap(err, "assembling")
	}
	defer os.Remove(objFile)

	ld, err := findTool(t.ToolPrefixes, "ld")
	if err != nil {
		return err
	}

	switch t.Platform {
	case codegen.Hosted:
		// Hosted I/O uses the BSD/Darwin syscall ABI (x16 + svc #0x80,
		// per io_hosted.go), so link against libSystem the way the
		// reference arm64.py backend does rather than a bare ELF link.
		if err := run(ld, "-o", outputPath, objFile,
			"-lSystem", "-syslibroot", macOSSDKPath(), "-e", "_start", "-arch", "arm64"); err != nil {
			return errors.Wrap(err, "linking")
		}
	case codegen.Baremetal:
		ldScript := outputPath + ".ld"
		if err := os.WriteFile(ldScript, []byte(BaremetalLinkerScript), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", ldScript)
		}
		defer os.Remove(ldScript)
		if err := run(ld, "-T", ldScript, "-nostdlib", "-o", outputPath, objFile, "--entry", "_start"); err != nil {
			return errors.Wrap(err, "linking")
		}
		if objcopy, err := findTool(t.ToolPrefixes, "objcopy"); err == nil {
			if err := run(objcopy, "-O", "binary", outputPath, outputPath+".bin"); err != nil {
				return errors.Wrap(err, "extracting raw binary")
			}
		}
	}
	return nil
}

// macOSSDKPath returns the SDK root ld needs for -lSystem, honoring
// SDKROOT when the caller has set it (e.g. from `xcrun --show-sdk-path`)
// and falling back to the Xcode Command Line Tools' default location.
func macOSSDKPath() string {
	if root := os.Getenv("SDKROOT"); root != "" {
		return root
	}
	return "/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk"
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Errorf("%s %v: %v: %s", name, args, err, stderr.String())
	}
	return nil
}
