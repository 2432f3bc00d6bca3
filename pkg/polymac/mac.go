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
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/consensys/go-polymac/pkg/util/field/gf116"
)

// ErrFinalized is returned by Update, Final and Verify once Final has run.
// An engine authenticates exactly one message; reuse is a caller bug and is
// reported loudly rather than producing a wrong tag.
var ErrFinalized = errors.New("polymac: engine already finalized")

// A MAC is an incremental authenticator for a single message. It must not be
// shared between goroutines; authenticate concurrent messages with one
// engine each.
type MAC struct {
	key keySchedule
	// acc is the running polynomial value. Its limbs stay inside gf116's
	// multiplication headroom between folds.
	acc gf116.Element
	// buffer retains bytes short of a whole batch between Update calls.
	buffer [batchSize]byte
	offset int
	//
	finalized bool
}

// New returns an engine authenticating under the given key.
func New(key *[KeySize]byte) *MAC {
	return &MAC{key: newKeySchedule(key)}
}

// Update absorbs more message bytes. The tag depends only on the
// concatenation of all updates, never on how the caller chunked them; a
// zero-length update is a no-op.
func (h *MAC) Update(p []byte) error {
	if h.finalized {
		return ErrFinalized
	}
	//
	if h.offset > 0 {
		n := copy(h.buffer[h.offset:], p)
		if h.offset+n < batchSize {
			h.offset += n
			return nil
		}
		//
		p = p[n:]
		h.offset = 0
		h.acc = updateBatch(h.acc, h.buffer[:], &h.key)
	}
	// Whole batches stream straight from the input.
	if n := len(p) - len(p)%batchSize; n > 0 {
		h.acc = updateBatch(h.acc, p[:n], &h.key)
		p = p[n:]
	}
	//
	if len(p) > 0 {
		h.offset += copy(h.buffer[h.offset:], p)
	}
	//
	return nil
}

// Final drains the remaining tail through the scalar path, reduces the
// accumulator and applies the masking key. The engine is terminal
// afterwards: any further Update or Final returns ErrFinalized.
func (h *MAC) Final() ([TagSize]byte, error) {
	var tag [TagSize]byte
	//
	if h.finalized {
		return tag, ErrFinalized
	}
	//
	h.finalized = true
	acc := updateBlocks(h.acc, h.buffer[:h.offset], h.key.pow[0]).Reduce()
	// Repack the canonical 116-bit value into 64-bit words.
	lo := acc[0] | acc[1]<<gf116.LimbBits
	hi := acc[1] >> (64 - gf116.LimbBits)
	// The masking key is combined outside the field: plain 128-bit
	// wrapping addition.
	lo, c := bits.Add64(lo, h.key.s[0], 0)
	hi, _ = bits.Add64(hi, h.key.s[1], c)
	//
	binary.LittleEndian.PutUint64(tag[0:8], lo)
	binary.LittleEndian.PutUint64(tag[8:16], hi)
	//
	return tag, nil
}

// Verify finalizes the engine and compares the tag against expected in
// constant time.
func (h *MAC) Verify(expected [TagSize]byte) (bool, error) {
	tag, err := h.Final()
	if err != nil {
		return false, err
	}
	//
	return subtle.ConstantTimeCompare(tag[:], expected[:]) == 1, nil
}

// updateBlocks folds msg into acc one block at a time, in message order. A
// trailing partial block is padded according to its own length. This is the
// scalar path: the batched evaluator must agree with it bit for bit.
func updateBlocks(acc gf116.Element, msg []byte, r gf116.Element) gf116.Element {
	for len(msg) >= BlockSize {
		acc = acc.Add(loadBlock(msg)).Mul(r)
		msg = msg[BlockSize:]
	}
	//
	if len(msg) > 0 {
		acc = acc.Add(loadFinalBlock(msg)).Mul(r)
	}
	//
	return acc
}

// loadBlock interprets the first BlockSize bytes of b as a little-endian
// integer with the padding bit set at position 8·BlockSize.
func loadBlock(b []byte) gf116.Element {
	w0 := binary.LittleEndian.Uint64(b[0:8])
	w1 := uint64(binary.LittleEndian.Uint32(b[8:12])) |
		uint64(binary.LittleEndian.Uint16(b[12:14]))<<32
	//
	return gf116.Element{
		w0 & gf116.LimbMask,
		w0>>gf116.LimbBits | w1<<(64-gf116.LimbBits) |
			1<<(8*BlockSize-gf116.LimbBits),
	}
}

// loadFinalBlock pads a short block by placing a 0x01 byte directly after
// the message bytes, which sets the padding bit at the block's actual
// length.
func loadFinalBlock(b []byte) gf116.Element {
	var buf [16]byte
	//
	n := copy(buf[:], b)
	buf[n] = 1
	//
	w0 := binary.LittleEndian.Uint64(buf[0:8])
	w1 := binary.LittleEndian.Uint64(buf[8:16])
	//
	return gf116.Element{
		w0 & gf116.LimbMask,
		w0>>gf116.LimbBits | w1<<(64-gf116.LimbBits),
	}
}
