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
	"testing"

	"github.com/consensys/go-polymac/pkg/util/assert"
)

func TestSumDeterministic(t *testing.T) {
	msg := patterned(137)
	//
	a := Sum(&testKey, msg)
	b := Sum(&testKey, msg)
	assert.Equal(t, a, b)
}

// Splitting the message at every single byte boundary must not change the
// tag, including splits inside a block and inside a batch.
func TestChunkInvarianceEveryBoundary(t *testing.T) {
	msg := patterned(113) // two batches plus one byte
	expected := Sum(&testKey, msg)
	//
	for split := 0; split <= len(msg); split++ {
		h := New(&testKey)
		assert.Equal(t, nil, h.Update(msg[:split]))
		assert.Equal(t, nil, h.Update(msg[split:]))
		//
		tag, err := h.Final()
		assert.Equal(t, nil, err)
		assert.Equal(t, expected, tag, "split at byte %d", split)
	}
}

func TestChunkInvarianceSmallChunks(t *testing.T) {
	msg := patterned(200)
	expected := Sum(&testKey, msg)
	//
	for _, chunk := range []int{1, 5, 13, 14, 55, 56, 57} {
		h := New(&testKey)
		for i := 0; i < len(msg); i += chunk {
			end := min(i+chunk, len(msg))
			assert.Equal(t, nil, h.Update(msg[i:end]))
		}
		//
		tag, err := h.Final()
		assert.Equal(t, nil, err)
		assert.Equal(t, expected, tag, "chunk size %d", chunk)
	}
}

func TestZeroLengthUpdates(t *testing.T) {
	msg := patterned(42)
	expected := Sum(&testKey, msg)
	//
	h := New(&testKey)
	assert.Equal(t, nil, h.Update(nil))
	assert.Equal(t, nil, h.Update(msg[:20]))
	assert.Equal(t, nil, h.Update([]byte{}))
	assert.Equal(t, nil, h.Update(msg[20:]))
	assert.Equal(t, nil, h.Update(nil))
	//
	tag, err := h.Final()
	assert.Equal(t, nil, err)
	assert.Equal(t, expected, tag)
}

func TestUseAfterFinal(t *testing.T) {
	h := New(&testKey)
	assert.Equal(t, nil, h.Update(patterned(30)))
	//
	if _, err := h.Final(); err != nil {
		t.Fatalf("first final: %v", err)
	}
	// Every operation on a finalized engine must fail loudly.
	assert.Equal(t, ErrFinalized, h.Update([]byte{1}))
	//
	_, err := h.Final()
	assert.Equal(t, ErrFinalized, err)
	//
	ok, err := h.Verify([TagSize]byte{})
	assert.False(t, ok)
	assert.Equal(t, ErrFinalized, err)
}

func TestVerify(t *testing.T) {
	var zero, ones [KeySize]byte
	for i := range ones {
		ones[i] = 0xFF
	}
	//
	for _, key := range []*[KeySize]byte{&testKey, &zero, &ones} {
		msg := patterned(77)
		tag := Sum(key, msg)
		//
		assert.True(t, Verify(key, msg, tag))
		// Any single-bit corruption of the tag must be rejected.
		for bit := 0; bit < 8*TagSize; bit++ {
			bad := tag
			bad[bit/8] ^= 1 << (bit % 8)
			assert.False(t, Verify(key, msg, bad), "flipped tag bit %d", bit)
		}
	}
}

func TestVerifyEngine(t *testing.T) {
	msg := patterned(21)
	tag := Sum(&testKey, msg)
	//
	h := New(&testKey)
	assert.Equal(t, nil, h.Update(msg))
	//
	ok, err := h.Verify(tag)
	assert.Equal(t, nil, err)
	assert.True(t, ok)
}

// A smoke test, not a security proof: flipping any one bit of the key or of
// the message must change the tag.
func TestAvalanche(t *testing.T) {
	msg := patterned(60)
	expected := Sum(&testKey, msg)
	//
	for bit := 0; bit < 8*KeySize; bit++ {
		if bit >= 112 && bit < 128 {
			// Clamped away by the key schedule; these bits are dead by
			// construction.
			continue
		}
		//
		key := testKey
		key[bit/8] ^= 1 << (bit % 8)
		assert.NotEqual(t, expected, Sum(&key, msg), "flipped key bit %d", bit)
	}
	//
	for bit := 0; bit < 8*len(msg); bit++ {
		corrupted := patterned(60)
		corrupted[bit/8] ^= 1 << (bit % 8)
		assert.NotEqual(t, expected, Sum(&testKey, corrupted), "flipped message bit %d", bit)
	}
}

// Appending or stripping trailing zero bytes must change the tag: the
// padding bit is what separates them.
func TestPaddingDomainSeparation(t *testing.T) {
	base := make([]byte, 13)
	//
	previous := Sum(&testKey, nil)
	for n := 1; n <= len(base); n++ {
		tag := Sum(&testKey, base[:n])
		assert.NotEqual(t, previous, tag, "zero message of %d bytes", n)
		previous = tag
	}
}
