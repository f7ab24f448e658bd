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
)

// NativeByteWidths lists the byte widths of the native unsigned integer types
// (8, 16, 32, 64 and 128 bits) which decimal literals are narrowed to.
var NativeByteWidths = []uint{1, 2, 4, 8, 16}

// ByteWidth returns the least number of bytes required to store an element of
// the given width.
func ByteWidth(bitwidth uint) uint {
	var n = bitwidth / 8
	//
	if bitwidth%8 == 0 {
		return n
	}
	//
	return n + 1
}

// ByteWidth64 returns the bytewidth of the given uint64 value.
func ByteWidth64(value uint64) uint {
	if value > math.MaxUint32 {
		return 4 + ByteWidth32(uint32(value>>32))
	}
	//
	return ByteWidth32(uint32(value))
}

// ByteWidth32 returns the bytewidth of the given uint32 value.
func ByteWidth32(value uint32) uint {
	if value > math.MaxUint16 {
		return 2 + ByteWidth16(uint16(value>>16))
	}
	//
	return ByteWidth16(uint16(value))
}

// ByteWidth16 returns the bytewidth of the given uint16 value.
func ByteWidth16(value uint16) uint {
	if value > math.MaxUint8 {
		return 2
	} else if value > 0 {
		return 1
	}
	//
	return 0
}

// NativeByteWidth returns the smallest native byte width able to hold a value
// of the given bytewidth.  Zero is held in a single byte.  If no native width
// is large enough, then false is returned.
func NativeByteWidth(bytewidth uint) (uint, bool) {
	for _, w := range NativeByteWidths {
		if bytewidth <= w {
			return w, true
		}
	}
	//
	return 0, false
}
