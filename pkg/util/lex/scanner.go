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
package lex

import (
	"cmp"
)

// Scanner is a function which accepts a prefix of the given items, returning
// the number of items matched.  A return of zero indicates no match.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of them do.  Scanners are tried in left-to-right order, and the first
// match wins.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit matches exactly the given items, one after the other.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		// success
		return uint(len(chars))
	}
}

// Within matches a single item within the given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches the given scanner as many times as possible, one after the
// other.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		// done
		return index
	}
}

// Eof matches only the end of the input.  Since scanners report the number of
// items matched, this reports a match of one (phantom) item.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
