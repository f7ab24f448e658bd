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
package hash

// Hasher provides a generic definition of a hashing function suitable for use
// within a hash set.  This includes equality, since hashcodes are permitted to
// collide.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.  Items which are equal must have the same
	// hashcode.
	Hash() uint64
}

// Set is a hash set which handles collisions gracefully using buckets, rather
// than assuming hashcodes uniquely identify items.
type Set[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64]bucket[T]
	// insertion order of items
	order []T
}

// NewSet creates a new hash set with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	items := make(map[uint64]bucket[T], size)
	return &Set[T]{items, nil}
}

// Size returns the number of unique items stored in this set.
func (p *Set[T]) Size() uint {
	return uint(len(p.order))
}

// MaxBucket returns the size of the largest bucket.
func (p *Set[T]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.items {
		m = max(m, uint(len(b.items)))
	}

	return m
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	b := p.items[hash]
	//
	if b.contains(item) {
		return true
	}
	// Insert new item
	b.items = append(b.items, item)
	p.items[hash] = b
	p.order = append(p.order, item)
	// Done
	return false
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	if b, ok := p.items[item.Hash()]; ok {
		return b.contains(item)
	}

	return false
}

// Items returns the items of this set in the order they were first inserted.
func (p *Set[T]) Items() []T {
	return p.order
}

type bucket[T Hasher[T]] struct {
	items []T
}

func (b *bucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}
	//
	return false
}
