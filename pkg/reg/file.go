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

	log "github.com/sirupsen/logrus"
)

// File represents a register file holding every register of both blocks.  All
// registers are initially empty (i.e. hold no value).  A File is not safe for
// concurrent use: the owner must serialise writes, though snapshots may be
// freely passed to concurrent readers.
type File struct {
	registers []RegVal
}

// NewFile constructs a register file where every register is empty.
func NewFile() *File {
	var registers = make([]RegVal, 2*len(blockWidths[A])*NUM_REGISTERS)
	//
	for i := range registers {
		registers[i] = NoneRegVal()
	}
	//
	return &File{registers}
}

// Get returns the contents of a given register.  This panics if the address is
// not valid.
func (p *File) Get(addr Address) RegVal {
	return p.registers[slotOf(addr)]
}

// Set assigns the contents of a given register.  A present value is resized to
// the register width: shorter values are zero extended, whilst longer values
// have their high-order bytes dropped.  This panics if the address is not
// valid.
func (p *File) Set(addr Address, val RegVal) {
	var slot = slotOf(addr)
	//
	if v, ok := val.Get(); ok {
		if v.Len() > addr.Bytes() {
			log.Debugf("truncating %d byte value into %s (%d bytes)", v.Len(), addr, addr.Bytes())
		}
		//
		val = SomeRegVal(v.Resize(addr.Bytes()))
	}
	//
	p.registers[slot] = val
}

// Clear resets a given register to hold no value.
func (p *File) Clear(addr Address) {
	p.registers[slotOf(addr)] = NoneRegVal()
}

// Assigned returns the addresses of all registers currently holding a value,
// ordered by block, then width, then index.
func (p *File) Assigned() []Address {
	var addrs []Address
	//
	for _, addr := range Addresses() {
		if p.registers[addr.slot()].IsSome() {
			addrs = append(addrs, addr)
		}
	}
	//
	return addrs
}

// Snapshot returns an independent copy of this register file.
func (p *File) Snapshot() *File {
	return &File{slices.Clone(p.registers)}
}

func slotOf(addr Address) int {
	if !addr.Valid() {
		panic(fmt.Sprintf("invalid register address %s", addr))
	}
	//
	return addr.slot()
}
