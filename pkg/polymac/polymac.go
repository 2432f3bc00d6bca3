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

// Package polymac implements a polynomial-evaluation message authentication
// code over GF(2^116 - 3).
//
// The message, cut into 14-byte blocks, forms the coefficients of a
// polynomial which is evaluated by Horner's rule at a secret point r derived
// from the first half of the key:
//
//	acc = (acc + pad(block)) · r  (mod 2^116 - 3)
//
// where pad sets a single 1 bit immediately above the block's last message
// byte, so a short block can never collide with a longer one that ends in
// zeros. The tag is the reduced accumulator plus the second key half, added
// with plain 128-bit wraparound, serialized little-endian.
//
// A key must only ever be used the way the surrounding protocol prescribes;
// this package takes no position on key reuse, nonces or replay. It is an
// authenticator, not a cipher.
package polymac

// Sizes of the fixed-width inputs and output, in bytes.
const (
	// KeySize is the size of a key: 16 bytes of evaluation-point material
	// followed by 16 bytes of masking material, both little-endian.
	KeySize = 32
	// TagSize is the size of an authentication tag.
	TagSize = 16
	// BlockSize is the polynomial coefficient width.
	BlockSize = 14

	// batchBlocks is how many blocks the batched evaluator folds per step.
	batchBlocks = 4
	batchSize   = batchBlocks * BlockSize
)

// Sum computes the authentication tag of msg under key in one shot.
func Sum(key *[KeySize]byte, msg []byte) [TagSize]byte {
	h := New(key)
	_ = h.Update(msg)
	tag, _ := h.Final()
	//
	return tag
}

// Verify reports whether tag authenticates msg under key. The comparison is
// constant time; a false result means the message must be rejected outright.
func Verify(key *[KeySize]byte, msg []byte, tag [TagSize]byte) bool {
	h := New(key)
	_ = h.Update(msg)
	ok, _ := h.Verify(tag)
	//
	return ok
}
