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
package word

import (
	"math"
	"math/rand/v2"
	"testing"
)

func Test_ByteWidth64_00(t *testing.T) {
	checkByteWidth64(t, 0, 0)
	checkByteWidth64(t, 1, 1)
	checkByteWidth64(t, 0xff, 1)
	checkByteWidth64(t, 0x100, 2)
	checkByteWidth64(t, 0x17a, 2)
	checkByteWidth64(t, 0x10000, 3)
	checkByteWidth64(t, math.MaxUint32, 4)
	checkByteWidth64(t, math.MaxUint32+1, 5)
	checkByteWidth64(t, math.MaxUint64, 8)
}

func Test_ByteWidth64_01(t *testing.T) {
	for range 10000 {
		var (
			value    = rand.Uint64() >> rand.UintN(64)
			expected = ByteWidth(uint(64 - leadingZeros(value)))
		)
		//
		checkByteWidth64(t, value, expected)
	}
}

func Test_NativeByteWidth_00(t *testing.T) {
	checkNativeByteWidth(t, 0, 1)
	checkNativeByteWidth(t, 1, 1)
	checkNativeByteWidth(t, 2, 2)
	checkNativeByteWidth(t, 3, 4)
	checkNativeByteWidth(t, 5, 8)
	checkNativeByteWidth(t, 9, 16)
	checkNativeByteWidth(t, 16, 16)
}

func Test_NativeByteWidth_01(t *testing.T) {
	if w, ok := NativeByteWidth(17); ok {
		t.Errorf("unexpected native width %d for 17 bytes", w)
	}
}

func checkByteWidth64(t *testing.T, value uint64, expected uint) {
	if actual := ByteWidth64(value); actual != expected {
		t.Errorf("invalid bytewidth for 0x%x: %d (expected %d)", value, actual, expected)
	}
}

func checkNativeByteWidth(t *testing.T, bytewidth uint, expected uint) {
	actual, ok := NativeByteWidth(bytewidth)
	//
	if !ok || actual != expected {
		t.Errorf("invalid native width for %d bytes: %d (expected %d)", bytewidth, actual, expected)
	}
}

func leadingZeros(value uint64) uint {
	var n uint
	//
	for i := 63; i >= 0 && value&(1<<uint(i)) == 0; i-- {
		n++
	}
	//
	return n
}
