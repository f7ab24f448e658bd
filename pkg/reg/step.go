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
	"io"
)

// Step is a value used by step instructions (e.g. increment or decrement),
// which can be rendered as part of the instruction mnemonic.
type Step struct {
	value Value
}

// NewStep constructs a step from a given value.
func NewStep(val Value) Step {
	return Step{val}
}

// Value returns the underlying value of this step.
func (p Step) Value() Value {
	return p.value
}

// Mnemonic returns the mnemonic for an instruction stepping by this value.
// For this purpose, the value is interpreted as a signed 64 bit integer, hence
// wider values are truncated.
func (p Step) Mnemonic() string {
	switch v := p.value.Int64(); {
	case v == 1:
		return "inc"
	case v == -1:
		return "dec"
	case v < 0:
		return "sub"
	default:
		return "add"
	}
}

// String returns the operand form of this step, which is a comma followed by
// the step value.
func (p Step) String() string {
	return "," + p.value.String()
}

// Format implements fmt.Formatter, where the '#' flag selects the mnemonic.
func (p Step) Format(f fmt.State, verb rune) {
	if f.Flag('#') {
		io.WriteString(f, p.Mnemonic())
	} else {
		io.WriteString(f, p.String())
	}
}
