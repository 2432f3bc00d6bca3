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
package polymac

import (
	"encoding/binary"

	"github.com/consensys/go-polymac/pkg/util/field/gf116"
)

// rClampMask clears the top 16 bits of the second evaluation-key word,
// keeping r below 2^112 so that sums fed into gf116 multiplication stay
// inside its documented limb headroom.
const rClampMask = 1<<48 - 1

// keySchedule holds everything derived from a key. It is immutable once
// built and may be shared read-only between engines authenticating under the
// same key.
type keySchedule struct {
	// pow holds r^1 .. r^batchBlocks, each fully reduced. pow[0] drives the
	// scalar path; the batched evaluator uses all of them.
	pow [batchBlocks]gf116.Element
	// s is the 128-bit masking key as little-endian 64-bit words. It never
	// enters the field, so it is not clamped.
	s [2]uint64
}

// newKeySchedule derives the evaluation point, its powers and the masking
// key from the raw key bytes.
func newKeySchedule(key *[KeySize]byte) keySchedule {
	var ks keySchedule
	//
	lo := binary.LittleEndian.Uint64(key[0:8])
	hi := binary.LittleEndian.Uint64(key[8:16]) & rClampMask
	r := gf116.Element{
		lo & gf116.LimbMask,
		lo>>gf116.LimbBits | hi<<(64-gf116.LimbBits),
	}
	//
	ks.pow[0] = r
	for i := 1; i < batchBlocks; i++ {
		ks.pow[i] = ks.pow[i-1].Mul(r).Reduce()
	}
	//
	ks.s[0] = binary.LittleEndian.Uint64(key[16:24])
	ks.s[1] = binary.LittleEndian.Uint64(key[24:32])
	//
	return ks
}
