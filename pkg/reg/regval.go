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
	"github.com/consensys/go-aluvm/pkg/util"
	"github.com/consensys/go-aluvm/pkg/util/collection/hash"
)

// Hashcode used for registers which hold no value.
const noneHash uint64 = 0x9e3779b97f4a7c15

// RegVal represents the contents of a single machine register.  A register
// may hold no value at all, which is distinct from holding zero.  Instructions
// reading a register without a value are expected to produce no value, rather
// than defaulting to zero.  Conversions into and out of a RegVal always
// preserve this distinction.
//
// The contained value is never cleaned implicitly.
type RegVal struct {
	content util.Option[Value]
}

var _ hash.Hasher[RegVal] = RegVal{}

// NoneRegVal constructs a register value holding no value.
func NoneRegVal() RegVal {
	return RegVal{util.None[Value]()}
}

// SomeRegVal constructs a register value holding the given value.
func SomeRegVal(val Value) RegVal {
	return RegVal{util.Some(val)}
}

// RegValOf constructs a register value from an optional value.
func RegValOf(val util.Option[Value]) RegVal {
	return RegVal{val}
}

// IsNone checks whether this register holds no value.
func (p RegVal) IsNone() bool {
	return p.content.IsEmpty()
}

// IsSome checks whether this register holds a value.
func (p RegVal) IsSome() bool {
	return p.content.HasValue()
}

// Get returns the value held in this register, along with a flag indicating
// whether there was one.
func (p RegVal) Get() (Value, bool) {
	return p.content.Get()
}

// Unwrap returns the value held in this register, or panics if there is none.
func (p RegVal) Unwrap() Value {
	return p.content.Unwrap()
}

// Option returns the contents of this register as an optional value.
func (p RegVal) Option() util.Option[Value] {
	return p.content
}

// Equals implementation for the hash.Hasher interface.
func (p RegVal) Equals(o RegVal) bool {
	lv, lok := p.content.Get()
	rv, rok := o.content.Get()
	//
	if !lok || !rok {
		return lok == rok
	}
	//
	return lv.Equals(rv)
}

// Hash implementation for the hash.Hasher interface.
func (p RegVal) Hash() uint64 {
	if val, ok := p.content.Get(); ok {
		return val.Hash()
	}
	//
	return noneHash
}

func (p RegVal) String() string {
	if val, ok := p.content.Get(); ok {
		return val.String()
	}
	//
	return "~"
}

func liftRegVal[T any](o util.Option[T], conv func(T) Value) RegVal {
	return RegVal{util.MapOption(o, conv)}
}

func projectRegVal[T any](p RegVal, conv func(Value) T) util.Option[T] {
	return util.MapOption(p.content, conv)
}
