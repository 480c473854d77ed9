// Copyright 2026 numgo Authors
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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		currentWidth = 16
		return
	}

	// SSE2 is part of the x86-64 baseline, so 16 bytes is the floor.
	// Wider levels raise the portable width so the generic kernels unroll
	// to the same shape the hardware-specific variants assume.
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		currentLevel = LevelAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
		currentWidth = 32
	default:
		currentLevel = LevelSSE2
		currentWidth = 16
	}
}
