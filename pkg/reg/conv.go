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
	"encoding/binary"
	"math/big"
	"slices"

	"github.com/holiman/uint256"
)

// fromArray constructs a value whose length matches that of the given array.
// The array is expected to have come from one of the fixed-width array types,
// and hence its length is within capacity.
func fromArray(bytes []byte) Value {
	var val = Value{len: uint16(len(bytes))}
	//
	copy(val.bytes[:], bytes)
	//
	return val
}

// putArray writes the low-order bytes of the cleaned value into a given
// (zeroed) array.  Any bytes of the value which do not fit are silently
// dropped.
func (p *Value) putArray(out []byte) {
	var n = min(int(p.len), len(out))
	//
	copy(out, p.bytes[:n])
	clear(out[n:])
}

// toBig interprets the low n bytes of the cleaned value as an unsigned integer.
func (p *Value) toBig(n int) *big.Int {
	var be = make([]byte, n)
	//
	p.putArray(be)
	slices.Reverse(be)
	//
	return new(big.Int).SetBytes(be)
}

// toSignedBig interprets the low n bytes of the cleaned value as a two's
// complement signed integer.
func (p *Value) toSignedBig(n int) *big.Int {
	var val = p.toBig(n)
	//
	if val.Bit(8*n-1) == 1 {
		val.Sub(val, modulus(n))
	}
	//
	return val
}

// fromBig constructs a value of n bytes holding the given integer modulo
// 2^(8n).  Negative integers are therefore encoded in two's complement form.
func fromBig(v *big.Int, n int) Value {
	var (
		be   = make([]byte, n)
		mask = new(big.Int).Sub(modulus(n), big.NewInt(1))
	)
	// Reduce into range (and two's complement)
	new(big.Int).And(v, mask).FillBytes(be)
	slices.Reverse(be)
	//
	return fromArray(be)
}

// modulus returns 2^(8n)
func modulus(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(8*n))
}

func fromUint256(v *uint256.Int) Value {
	var bytes [32]byte
	//
	for i, limb := range v {
		binary.LittleEndian.PutUint64(bytes[i*8:], limb)
	}
	//
	return FromArray32(bytes)
}

func (p *Value) toUint256() *uint256.Int {
	var (
		bytes = p.Array32()
		val   uint256.Int
	)
	//
	for i := range val {
		val[i] = binary.LittleEndian.Uint64(bytes[i*8:])
	}
	//
	return &val
}
