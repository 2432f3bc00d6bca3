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

import "math/big"

// The math/big bridge exists for property tests and diagnostics. None of it
// is constant time, and none of it belongs on a path handling live keys.

var modulus = new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 116), big.NewInt(fold))

var bigLimbMask = big.NewInt(LimbMask)

// Modulus returns p = 2^116 - 3 as a fresh big.Int.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// SetBig returns the element representing v modulo p.
func (x Element) SetBig(v *big.Int) Element {
	var t big.Int
	//
	t.Mod(v, modulus)
	//
	lo := new(big.Int).And(&t, bigLimbMask)
	hi := new(big.Int).Rsh(&t, LimbBits)
	//
	return Element{lo.Uint64(), hi.Uint64()}
}

// Big returns the integer x represents, taking the limbs at face value
// (i.e. without reducing first).
func (x Element) Big() *big.Int {
	v := new(big.Int).SetUint64(x[1])
	v.Lsh(v, LimbBits)
	//
	return v.Add(v, new(big.Int).SetUint64(x[0]))
}

// String returns the canonical value of x in hexadecimal.
func (x Element) String() string {
	return "0x" + x.Reduce().Big().Text(16)
}
