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

import "github.com/eli-lang/eli/codegen"

// targetFlag adapts codegen.Platform to flag.Value, the same custom-
// Value-for-a-small-enumeration pattern the teacher uses for its own
// cellSizeBits flag in cmd/retro/main.go.
type targetFlag codegen.Platform

func (t *targetFlag) String() string {
	return codegen.Platform(*t).String()
}

func (t *targetFlag) Set(s string) error {
	p, err := codegen.ParsePlatform(s)
	if err != nil {
		return err
	}
	*t = targetFlag(p)
	return nil
}

func (t *targetFlag) Get() interface{} {
	return codegen.Platform(*t)
}
