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
package reg

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math/big"
	"math/bits"

	"github.com/consensys/go-aluvm/pkg/util/collection/hash"
)

// Capacity determines the maximum number of bytes which can be held in a
// register value (i.e. 8192 bits).
const Capacity = 1024

// Zero-filled buffer used for hashing the (implicitly) cleaned region of a
// value without having to copy it.
var zeroes [Capacity]byte

// Value represents the contents of a machine register.  This is an unsigned
// integer of some width between 0 and 8192 bits, stored in little endian form
// within a fixed-capacity buffer.  Values are copied by value and never
// allocate.
//
// Only the first Len() bytes of the buffer are meaningful.  Any bytes beyond
// this point are "dirty" and may hold arbitrary data, unless the value has been
// explicitly cleaned.  Equality and hashing always operate over the cleaned
// form, hence dirty bytes are never observable through them.
type Value struct {
	// Logical length (in bytes) of this value.
	len uint16
	// Backing storage.
	bytes [Capacity]byte
}

var _ hash.Hasher[Value] = Value{}

// Zero constructs a value of the given length (in bytes) where all bytes are
// zero.  This panics if the length exceeds the register capacity, since this
// indicates a programming error rather than a recoverable failure.
func Zero(length uint16) Value {
	if length > Capacity {
		panic(fmt.Sprintf("register value of %d bytes exceeds capacity (%d bytes)", length, Capacity))
	}
	//
	return Value{len: length}
}

// With constructs a value from a given slice of bytes, where the length of the
// value matches the length of the slice.  Bytes are interpreted in little
// endian order.  This panics if the slice is longer than the register capacity.
func With(bytes []byte) Value {
	var val = Zero(checkCapacity(len(bytes)))
	//
	copy(val.bytes[:], bytes)
	//
	return val
}

// Len returns the logical length (in bytes) of this value.
func (p Value) Len() uint16 {
	return p.len
}

// BitWidth returns the logical width of this value in bits.
func (p Value) BitWidth() uint {
	return uint(p.len) * 8
}

// Bytes returns a copy of the logical region of this value, in little endian
// order.  Dirty bytes are never included.
func (p Value) Bytes() []byte {
	return bytes.Clone(p.bytes[:p.len])
}

// Get returns the byte at a given offset within the logical region of this
// value.  Reading at or beyond the logical length is a contract violation and
// panics.
func (p Value) Get(index uint16) byte {
	p.checkIndex(index)
	//
	return p.bytes[index]
}

// Set assigns the byte at a given offset within the logical region of this
// value.  Writing at or beyond the logical length is a contract violation and
// panics.
func (p *Value) Set(index uint16, b byte) {
	p.checkIndex(index)
	//
	p.bytes[index] = b
}

// Resize returns a copy of this value with the given logical length.  When
// growing, the value is zero extended.  When shrinking, the high-order bytes
// are dropped.  This panics if the length exceeds the register capacity.
func (p Value) Resize(length uint16) Value {
	var val = Zero(length)
	//
	copy(val.bytes[:length], p.bytes[:p.len])
	//
	return val
}

// Bit returns the bit at a given offset in this value, where offsets start
// from the least significant bit.  Bits beyond the logical width are zero.
func (p Value) Bit(offset uint) bool {
	if offset >= p.BitWidth() {
		return false
	}
	//
	return (p.bytes[offset/8]>>(offset%8))&1 == 1
}

// IsZero checks whether every byte within the logical region is zero.
func (p Value) IsZero() bool {
	for _, b := range p.bytes[:p.len] {
		if b != 0 {
			return false
		}
	}
	//
	return true
}

// CountOnes returns the number of set bits within the logical region of this
// value.
func (p Value) CountOnes() uint16 {
	var count uint16
	//
	for _, b := range p.bytes[:p.len] {
		count += uint16(bits.OnesCount8(b))
	}
	//
	return count
}

// Clean zeroes every dirty byte (i.e. all bytes beyond the logical length) of
// this value.
func (p *Value) Clean() {
	clear(p.bytes[p.len:])
}

// ToClean returns a copy of this value where all dirty bytes are zeroed.
func (p Value) ToClean() Value {
	p.Clean()
	//
	return p
}

// IsClean checks whether all dirty bytes of this value are zero.
func (p Value) IsClean() bool {
	return bytes.Equal(p.bytes[p.len:], zeroes[p.len:])
}

// Equals implementation for the hash.Hasher interface.  Two values are equal
// when their cleaned forms are identical.
func (p Value) Equals(o Value) bool {
	return p.len == o.len && bytes.Equal(p.bytes[:p.len], o.bytes[:o.len])
}

// Hash implementation for the hash.Hasher interface.  The hash is computed
// over the cleaned form of this value.
func (p Value) Hash() uint64 {
	var (
		hash = fnv.New64a()
		n    = [2]byte{byte(p.len), byte(p.len >> 8)}
	)
	//
	hash.Write(n[:])
	hash.Write(p.bytes[:p.len])
	hash.Write(zeroes[p.len:])
	// Done
	return hash.Sum64()
}

// BigInt returns the (unsigned) integer represented by this value.  This is
// lossless for every value, since the result is not bounded in width.
func (p Value) BigInt() *big.Int {
	return p.toBig(Capacity)
}

// ToU1024 widens this value into a 1024 bit unsigned integer.  Only the low
// 128 bytes of the cleaned value are retained, hence values whose logical
// length exceeds 128 bytes are truncated.  Use BigInt for a lossless
// conversion.
func (p Value) ToU1024() *big.Int {
	return p.Uint1024()
}

func (p *Value) checkIndex(index uint16) {
	if index >= p.len {
		panic(fmt.Sprintf("byte index %d out of bounds for register value of %d bytes", index, p.len))
	}
}

func checkCapacity(n int) uint16 {
	if n > Capacity {
		panic(fmt.Sprintf("register value of %d bytes exceeds capacity (%d bytes)", n, Capacity))
	}
	//
	return uint16(n)
}
