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
package util

// Option captures a value which may, or may not, be present.  This is used in
// places where an absent value has a distinct meaning from any default value
// (e.g. a register which has never been assigned, as opposed to one holding
// zero).
type Option[T any] struct {
	// Indicates whether value present
	some bool
	// The value itself
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// OptionOf constructs an option from a value and a flag indicating whether it
// is present, following the usual "comma ok" idiom.
func OptionOf[T any](val T, ok bool) Option[T] {
	if ok {
		return Some(val)
	}
	//
	return None[T]()
}

// HasValue indicates whether or not this option contains an actual value, or
// whether it is empty.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty indicates whether or not this option is empty (i.e. contains no value).
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Get returns the value contained (if any) along with a flag indicating
// whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value contained, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	//
	panic("cannot unwrap an empty option")
}

// UnwrapOr returns the value contained, or the given default if this option is
// empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	//
	return def
}

// MapOption applies a function to the contents of an option (if any).  An empty
// option always maps to an empty option.
func MapOption[S, T any](o Option[S], fn func(S) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	//
	return None[T]()
}
