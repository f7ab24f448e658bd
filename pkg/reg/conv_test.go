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
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
)

func Test_Conv_00(t *testing.T) {
	var val = With([]byte{0xff, 0xff, 0xff, 0xff})
	//
	if val.Uint32() != math.MaxUint32 {
		t.Errorf("expected 0xffffffff, got 0x%x", val.Uint32())
	} else if val.Uint8() != 0xff {
		t.Errorf("expected 0xff, got 0x%x", val.Uint8())
	}
}

func Test_Conv_01(t *testing.T) {
	// Narrower values are zero extended
	var val = With([]byte{0x7a, 0x01})
	//
	if val.Uint64() != 0x17a {
		t.Errorf("expected 0x17a, got 0x%x", val.Uint64())
	} else if val.Int64() != 0x17a {
		t.Errorf("expected 378, got %d", val.Int64())
	}
}

func Test_Conv_02(t *testing.T) {
	// Truncation keeps low-order bytes
	var val = FromUint64(0x1122334455667788)
	//
	if val.Uint16() != 0x7788 {
		t.Errorf("expected 0x7788, got 0x%x", val.Uint16())
	} else if val.Int8() != -0x78 {
		t.Errorf("expected -120, got %d", val.Int8())
	}
}

func Test_Conv_03(t *testing.T) {
	// Dirty bytes never leak into conversions
	var val = FromUint16(0xbeef)
	//
	val.bytes[2] = 0xaa
	val.bytes[3] = 0xbb
	//
	if val.Uint32() != 0xbeef {
		t.Errorf("expected 0xbeef, got 0x%x", val.Uint32())
	} else if bytes := val.Array4(); bytes != [4]byte{0xef, 0xbe, 0, 0} {
		t.Errorf("unexpected array %v", bytes)
	}
}

func Test_Conv_04(t *testing.T) {
	var val = FromInt128(big.NewInt(-5))
	//
	checkLength(t, val, 16)
	//
	for i := range uint16(16) {
		expected := byte(0xff)
		if i == 0 {
			expected = 0xfb
		}
		//
		if val.Get(i) != expected {
			t.Errorf("unexpected byte 0x%x at offset %d", val.Get(i), i)
		}
	}
	//
	if val.Int128().Int64() != -5 {
		t.Errorf("expected -5, got %s", val.Int128())
	} else if val.Int64() != -5 {
		t.Errorf("expected -5, got %d", val.Int64())
	}
}

func Test_Conv_05(t *testing.T) {
	// Negative integers wrap for unsigned conversions
	var val = FromUint128(big.NewInt(-1))
	//
	if val.CountOnes() != 128 {
		t.Errorf("expected 128 bits set, got %d", val.CountOnes())
	}
}

func Test_Conv_06(t *testing.T) {
	var val = FromUint256(uint256.NewInt(0x0102))
	//
	checkLength(t, val, 32)
	//
	if val.Get(0) != 0x02 || val.Get(1) != 0x01 {
		t.Errorf("unexpected encoding %s", val)
	} else if val.Uint256().Uint64() != 0x0102 {
		t.Errorf("expected 0x0102, got %s", val.Uint256().Hex())
	}
}

func Test_Conv_07(t *testing.T) {
	// ToU1024 truncates to 128 bytes, whilst BigInt does not
	var val = Zero(Capacity)
	//
	val.Set(0, 1)
	val.Set(200, 1)
	//
	if val.ToU1024().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected 1, got %s", val.ToU1024())
	}
	//
	expected := new(big.Int).Lsh(big.NewInt(1), 1600)
	expected.Add(expected, big.NewInt(1))
	//
	if val.BigInt().Cmp(expected) != 0 {
		t.Errorf("expected %s, got %s", expected, val.BigInt())
	}
}

func Test_Conv_08(t *testing.T) {
	// Truncation is deterministic for all lengths and widths
	for n := range 64 {
		var val = randomValue(n)
		//
		for _, w := range []int{1, 2, 4, 8, 16, 20, 32} {
			var (
				out1 = make([]byte, w)
				out2 = make([]byte, w)
			)
			//
			val.putArray(out1)
			val.putArray(out2)
			//
			if !bytes.Equal(out1, out2) {
				t.Errorf("nondeterministic truncation of %s to %d bytes", val, w)
			}
			//
			checkTruncation(t, val, out1)
		}
	}
}

func checkLength(t *testing.T, val Value, expected uint16) {
	if val.Len() != expected {
		t.Errorf("expected length %d, got %d", expected, val.Len())
	}
}

func checkArrayRoundTrip(t *testing.T, val Value, expected []byte, actual []byte) {
	checkLength(t, val, uint16(len(expected)))
	//
	if !bytes.Equal(expected, actual) {
		t.Errorf("array round trip failed: %x became %x", expected, actual)
	} else if !bytes.Equal(expected, val.Bytes()) {
		t.Errorf("array %x became value %s", expected, val)
	}
}

// Check an array holds the low-order bytes of a value, zero extended as
// necessary.
func checkTruncation(t *testing.T, val Value, actual []byte) {
	var expected = make([]byte, len(actual))
	//
	copy(expected, val.Bytes())
	//
	if !bytes.Equal(expected, actual) {
		t.Errorf("truncation of %s gave %x (expected %x)", val, actual, expected)
	}
}

func checkNativeRoundTrip[T any](t *testing.T, expected T, actual T) {
	if !nativeEquals(expected, actual) {
		t.Errorf("native round trip failed: %v became %v", expected, actual)
	}
}

func nativeEquals(lhs any, rhs any) bool {
	switch l := lhs.(type) {
	case *big.Int:
		return l.Cmp(rhs.(*big.Int)) == 0
	case *uint256.Int:
		return l.Eq(rhs.(*uint256.Int))
	default:
		return lhs == rhs
	}
}

func randomBytes(bytes []byte) {
	for i := range bytes {
		bytes[i] = byte(rand.UintN(256))
	}
}

// Construct a random value of a given length, whose dirty bytes are also
// random.
func randomValue(n int) Value {
	var val = Zero(uint16(n))
	//
	randomBytes(val.bytes[:])
	//
	return val
}
