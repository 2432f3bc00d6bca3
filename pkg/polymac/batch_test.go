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
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/go-polymac/pkg/util/assert"
	"github.com/consensys/go-polymac/pkg/util/field/gf116"
)

// Boundary lengths from the batch/scalar equivalence requirement: empty, one
// block, batch−1 blocks, exactly one batch, one batch + one block, two
// batches, two batches + a partial block, and the off-by-one-byte variants.
var boundaryLengths = []int{
	0, 1, 13, 14, 15,
	42, 55, 56, 57, 70,
	112, 113, 117, 168, 200,
}

// The batched evaluator must produce the same accumulator as the scalar
// per-block fold on any whole number of batches, from any starting
// accumulator.
func TestBatchMatchesScalarFold(t *testing.T) {
	ks := newKeySchedule(&testKey)
	rng := rand.New(rand.NewSource(61409))
	//
	for batches := 1; batches <= 6; batches++ {
		msg := patterned(batches * batchSize)
		//
		for trial := 0; trial < 16; trial++ {
			acc := gf116.Element{rng.Uint64() & gf116.LimbMask, rng.Uint64() & gf116.LimbMask}
			//
			batched := updateBatch(acc, msg, &ks).Reduce()
			scalar := updateBlocks(acc, msg, ks.pow[0]).Reduce()
			assert.Equal(t, scalar, batched, "%d batches, trial %d", batches, trial)
		}
	}
}

// End to end, the engine (which batches internally) must agree with an
// independent big.Int model of the algorithm at every boundary length.
func TestEngineMatchesBigIntModel(t *testing.T) {
	for _, n := range boundaryLengths {
		msg := patterned(n)
		expected := bigIntSum(&testKey, msg)
		actual := Sum(&testKey, msg)
		assert.BytesEqual(t, expected[:], actual[:], "length %d", n)
	}
}

func TestEngineMatchesBigIntModelRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(230403))
	//
	for trial := 0; trial < 200; trial++ {
		var key [KeySize]byte
		rng.Read(key[:])
		//
		msg := make([]byte, rng.Intn(512))
		rng.Read(msg)
		//
		expected := bigIntSum(&key, msg)
		actual := Sum(&key, msg)
		assert.BytesEqual(t, expected[:], actual[:], "trial %d (%d bytes)", trial, len(msg))
	}
}

// bigIntSum is a deliberately naive reference: arbitrary-precision Horner
// evaluation with none of the limb tricks of the real implementation.
func bigIntSum(key *[KeySize]byte, msg []byte) [TagSize]byte {
	p := gf116.Modulus()
	//
	r := leBytes(key[0:16])
	r.And(r, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1)))
	s := leBytes(key[16:32])
	//
	acc := new(big.Int)
	for i := 0; i < len(msg); i += BlockSize {
		block := msg[i:min(i+BlockSize, len(msg))]
		padded := append(append([]byte{}, block...), 1)
		//
		acc.Add(acc, leBytes(padded))
		acc.Mul(acc, r)
		acc.Mod(acc, p)
	}
	//
	acc.Add(acc, s)
	acc.Mod(acc, new(big.Int).Lsh(big.NewInt(1), 128))
	//
	var tag [TagSize]byte
	acc.FillBytes(tag[:])
	reverse(tag[:])
	//
	return tag
}

// leBytes interprets b as a little-endian integer.
func leBytes(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	//
	return new(big.Int).SetBytes(be)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Precomputed powers must be exactly r^i, fully reduced.
func TestKeySchedulePowers(t *testing.T) {
	ks := newKeySchedule(&testKey)
	//
	r := leBytes(testKey[0:16])
	r.And(r, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1)))
	//
	for i, pow := range ks.pow {
		expected := new(big.Int).Exp(r, big.NewInt(int64(i+1)), gf116.Modulus())
		assert.Equal(t, 0, expected.Cmp(pow.Big()), "power %d", i+1)
		// stored reduced
		assert.Equal(t, pow, pow.Reduce())
	}
}

// The clamp keeps the evaluation point strictly below 2^112.
func TestKeyScheduleClamp(t *testing.T) {
	var ones [KeySize]byte
	for i := range ones {
		ones[i] = 0xFF
	}
	//
	ks := newKeySchedule(&ones)
	limit := new(big.Int).Lsh(big.NewInt(1), 112)
	assert.True(t, ks.pow[0].Big().Cmp(limit) < 0)
	//
	// The masking half is taken verbatim.
	assert.Equal(t, binary.LittleEndian.Uint64(ones[16:24]), ks.s[0])
	assert.Equal(t, binary.LittleEndian.Uint64(ones[24:32]), ks.s[1])
}
