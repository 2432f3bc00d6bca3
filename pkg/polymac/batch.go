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

import "github.com/consensys/go-polymac/pkg/util/field/gf116"

// updateBatch folds whole groups of batchBlocks blocks into acc using the
// precomputed powers of r. One batch advances the accumulator by
//
//	acc = (acc + m1)·r⁴ + m2·r³ + m3·r² + m4·r
//
// which is the per-block recurrence acc = (acc + m)·r unrolled four times.
// The four products depend only on the batch's own blocks, so they are
// mutually independent; the fold from one batch into the next remains
// strictly sequential. len(msg) must be a multiple of batchSize.
func updateBatch(acc gf116.Element, msg []byte, ks *keySchedule) gf116.Element {
	for len(msg) >= batchSize {
		t0 := acc.Add(loadBlock(msg)).Mul(ks.pow[3])
		t1 := loadBlock(msg[BlockSize:]).Mul(ks.pow[2])
		t2 := loadBlock(msg[2*BlockSize:]).Mul(ks.pow[1])
		t3 := loadBlock(msg[3*BlockSize:]).Mul(ks.pow[0])
		// Summing four products costs two bits of limb headroom; one carry
		// pass restores the invariant before the next fold.
		acc = t0.Add(t1).Add(t2).Add(t3).Carry()
		//
		msg = msg[batchSize:]
	}
	//
	return acc
}
