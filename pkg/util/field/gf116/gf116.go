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

// Package gf116 implements arithmetic over the prime field GF(2^116 - 3).
//
// The modulus has the Crandall shape 2^n - c, which gives a cheap reduction
// identity: 2^116 ≡ 3 (mod p), so anything overflowing bit 116 folds back
// into the low bits multiplied by 3. Values are held in two limbs of radix
// 2^58, leaving enough headroom that a 58x58 bit product fits a 64x64->128
// multiply (math/bits.Mul64) without intermediate reductions.
//
// Limbs are allowed to drift above 58 bits between operations; each
// operation documents the headroom it tolerates and the headroom it leaves
// behind. Nothing here branches on, or indexes memory by, the values
// involved: the operands are secret key and message material, and the
// reduction at the end is a mask select rather than a comparison.
package gf116

// Representation constants.
const (
	// LimbBits is the radix exponent: an Element x represents the integer
	// x[0] + x[1]·2^LimbBits.
	LimbBits = 58
	// LimbMask selects the low LimbBits bits of a limb.
	LimbMask = (1 << LimbBits) - 1
	// fold is the residue of 2^116 modulo p.
	fold = 3
)

// An Element of GF(2^116 - 3), stored as two little-endian limbs of radix
// 2^58. The zero value represents 0.
//
// An Element is canonical when both limbs are below 2^58 and the represented
// integer is below the modulus; only Reduce guarantees that. Arithmetic
// methods tolerate denormalized inputs up to the headroom they document, and
// callers chaining Add into Mul are responsible for staying inside it.
type Element [2]uint64

// Add computes x + y without carrying. The result's limbs are the plain sums
// of the operands' limbs, so input headroom shrinks by one bit per chained
// addition.
func (x Element) Add(y Element) Element {
	return Element{x[0] + y[0], x[1] + y[1]}
}

// Mul computes x·y modulo p. Both operands may carry limbs up to 2^61; the
// result has a canonical low limb and a high limb below 2^58 + 2^9.
func (x Element) Mul(y Element) Element {
	m00 := mul64(x[0], y[0])
	m01 := mul64(x[0], y[1])
	m10 := mul64(x[1], y[0])
	m11 := mul64(x[1], y[1])
	// x·y = m00 + (m01 + m10)·2^58 + m11·2^116, and 2^116 ≡ 3, so the top
	// cross product folds straight into the bottom limb.
	lo := add128(m00, mulSmall(m11, fold))
	mid := add128(m01, m10)
	// Carry chain at radix 2^58.
	z0 := lo.lo & LimbMask
	mid = add128(mid, shr(lo, LimbBits))
	z1 := mid.lo & LimbMask
	// Whatever remains above bit 116 folds back times 3.
	top := mulSmall(shr(mid, LimbBits), fold)
	t := add128(uint128{lo: z0}, top)
	z0 = t.lo & LimbMask
	z1 += t.lo>>LimbBits | t.hi<<(64-LimbBits)
	//
	return Element{z0, z1}
}

// Carry runs one normalization pass: limb overflow moves up, and overflow out
// of bit 116 folds back times 3. Inputs may carry limbs up to 2^62. Once both
// limbs are canonical, Carry is the identity.
func (x Element) Carry() Element {
	x[1] += x[0] >> LimbBits
	x[0] &= LimbMask
	x[0] += fold * (x[1] >> LimbBits)
	x[1] &= LimbMask
	//
	return x
}

// Reduce fully canonicalizes x into [0, p). Inputs may carry limbs up to
// 2^62. The final conditional subtraction of p is a mask select driven by the
// carry out of x + 3, never a branch: x ≥ p exactly when x + 3 ≥ 2^116.
func (x Element) Reduce() Element {
	// Three passes leave both limbs canonical, hence the value below 2^116.
	x = x.Carry().Carry().Carry()
	//
	g0 := x[0] + fold
	g1 := x[1] + g0>>LimbBits
	g0 &= LimbMask
	m := -(g1 >> LimbBits) // all ones iff x ≥ p
	g1 &= LimbMask
	//
	return Element{g0&m | x[0]&^m, g1&m | x[1]&^m}
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.Reduce() == Element{}
}

// Equal checks whether x and y represent the same field value, regardless of
// limb normalization. Not constant time; intended for tests and diagnostics.
func (x Element) Equal(y Element) bool {
	return x.Reduce() == y.Reduce()
}
