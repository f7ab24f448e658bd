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
	"fmt"
	"slices"

	"github.com/consensys/go-aluvm/pkg/util/word"
)

// NUM_REGISTERS is the number of registers of each width within a block.
const NUM_REGISTERS = 32

// Block identifies a family of registers sharing a common role.
type Block uint8

const (
	// A is the block of arithmetic registers.
	A Block = iota
	// R is the block of general purpose registers.
	R
)

// Register widths (in bits) available within each block.
var blockWidths = [...][]uint16{
	A: {8, 16, 32, 64, 128, 256, 512, 1024},
	R: {128, 160, 256, 512, 1024, 2048, 4096, 8192},
}

// Widths returns the register widths (in bits) available within this block.
func (b Block) Widths() []uint16 {
	return slices.Clone(blockWidths[b])
}

func (b Block) String() string {
	switch b {
	case A:
		return "a"
	case R:
		return "r"
	default:
		return fmt.Sprintf("block(%d)", uint8(b))
	}
}

// Address identifies a single register by its block, its width (in bits) and
// its index amongst registers of that width.
type Address struct {
	Block Block
	Bits  uint16
	Index uint8
}

// NewAddress constructs a register address, without checking it is valid.
func NewAddress(block Block, bits uint16, index uint8) Address {
	return Address{block, bits, index}
}

// Bytes returns the width of the addressed register in bytes.
func (p Address) Bytes() uint16 {
	return uint16(word.ByteWidth(uint(p.Bits)))
}

// Valid checks whether this address identifies an existing register.
func (p Address) Valid() bool {
	return p.Block <= R && p.Index < NUM_REGISTERS && slices.Contains(blockWidths[p.Block], p.Bits)
}

func (p Address) String() string {
	return fmt.Sprintf("%s%d[%d]", p.Block, p.Bits, p.Index)
}

// slot returns the position of this register within a flat register file.
func (p Address) slot() int {
	var w = slices.Index(blockWidths[p.Block], p.Bits)
	//
	return ((int(p.Block)*len(blockWidths[A]))+w)*NUM_REGISTERS + int(p.Index)
}

// Addresses returns all valid register addresses, ordered by block, then
// width, then index.
func Addresses() []Address {
	var addrs []Address
	//
	for _, b := range []Block{A, R} {
		for _, w := range blockWidths[b] {
			for i := range uint8(NUM_REGISTERS) {
				addrs = append(addrs, Address{b, w, i})
			}
		}
	}
	//
	return addrs
}
