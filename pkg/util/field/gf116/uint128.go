// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf116

import "math/bits"

// uint128 holds a 128-bit number as two 64-bit limbs, for use with the
// bits.Mul64 and bits.Add64 intrinsics.
type uint128 struct {
	lo, hi uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo, hi}
}

func add128(a, b uint128) uint128 {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	hi, c := bits.Add64(a.hi, b.hi, c)
	//
	if c != 0 {
		panic("gf116: unexpected overflow")
	}
	//
	return uint128{lo, hi}
}

// mulSmall multiplies by a small constant k; the caller guarantees a·k fits
// 128 bits.
func mulSmall(a uint128, k uint64) uint128 {
	hi, lo := bits.Mul64(a.lo, k)
	return uint128{lo, hi + a.hi*k}
}

func shr(a uint128, n uint) uint128 {
	return uint128{a.lo>>n | a.hi<<(64-n), a.hi >> n}
}
