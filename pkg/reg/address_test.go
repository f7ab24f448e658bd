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

//go:build !freestanding

package reg

import (
	"errors"
	"testing"
)

func Test_Address_00(t *testing.T) {
	checkAddress(t, "a8[1]", NewAddress(A, 8, 1))
	checkAddress(t, "a16[8]", NewAddress(A, 16, 8))
	checkAddress(t, "r1024[5]", NewAddress(R, 1024, 5))
	checkAddress(t, "r160[31]", NewAddress(R, 160, 31))
	checkAddress(t, " a256 [ 0 ] ", NewAddress(A, 256, 0))
}

func Test_Address_01(t *testing.T) {
	checkAddressError(t, "")
	checkAddressError(t, "b8[1]")
	checkAddressError(t, "a8")
	checkAddressError(t, "a8[1")
	checkAddressError(t, "a[1]")
	checkAddressError(t, "a12[1]")
	checkAddressError(t, "r8[1]")
	checkAddressError(t, "a8[32]")
	checkAddressError(t, "a8[1]]")
	checkAddressError(t, "a99999[1]")
}

func Test_Address_02(t *testing.T) {
	for _, addr := range Addresses() {
		checkAddress(t, addr.String(), addr)
	}
}

func Test_Address_03(t *testing.T) {
	var slots = make(map[int]bool)
	//
	for _, addr := range Addresses() {
		if slots[addr.slot()] {
			t.Errorf("register %s shares a slot", addr)
		}
		//
		slots[addr.slot()] = true
	}
	//
	if len(slots) != 2*8*NUM_REGISTERS {
		t.Errorf("expected %d registers, found %d", 2*8*NUM_REGISTERS, len(slots))
	}
}

func checkAddress(t *testing.T, text string, expected Address) {
	addr, err := ParseAddress(text)
	//
	if err != nil {
		t.Errorf("unexpected error for %s: %s", text, err)
	} else if addr != expected {
		t.Errorf("parsed %s as %s (expected %s)", text, addr, expected)
	}
}

func checkAddressError(t *testing.T, text string) {
	var aerr *AddressError
	//
	if _, err := ParseAddress(text); !errors.As(err, &aerr) {
		t.Errorf("expected address error for \"%s\", got %v", text, err)
	}
}
