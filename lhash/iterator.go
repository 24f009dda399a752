// Copyright 2019 Michael J. Fromberger. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lhash

import "iter"

// An Iterator walks the occupied slots of a Set in a single pass, in an
// order that is total but otherwise implementation-defined: each occupied
// slot is visited exactly once between any point and the end sentinel, but
// no ordering across keys is promised.
//
// Per spec §9, an Iterator is represented as a small, self-contained value
// (a bucket index plus a pointer to the bucket currently being scanned and
// a slot within it) rather than a pointer chain, so copying one is cheap
// and safe. It is invalidated by any mutating call on the Set it came
// from; using one after such a call is a caller error with no defined
// result.
type Iterator[K any] struct {
	s    *Set[K]
	bkt  int
	node *bucket[K]
	slot int
}

// Begin returns an iterator positioned at the first occupied slot, or the
// end iterator if s is empty.
func (s *Set[K]) Begin() Iterator[K] {
	if len(s.dir) == 0 {
		return s.End()
	}
	it := Iterator[K]{s: s, bkt: 0, node: s.dir[0], slot: -1}
	return it.Next()
}

// End returns the end sentinel iterator for s.
func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{s: s, bkt: len(s.dir)}
}

// Done reports whether it is the end sentinel.
func (it Iterator[K]) Done() bool { return it.node == nil }

// Key returns the key it is positioned at, or ErrIteratorMisuse if it is
// the end sentinel.
func (it Iterator[K]) Key() (K, error) {
	if it.Done() {
		var zero K
		return zero, ErrIteratorMisuse
	}
	return it.node.keys[it.slot], nil
}

// Next returns an iterator advanced to the next occupied slot: the rest of
// the current bucket, then its overflow chain, then the next primary
// bucket. Advancing the end sentinel returns the end sentinel unchanged.
func (it Iterator[K]) Next() Iterator[K] {
	if it.Done() {
		return it
	}
	node, bkt, slot := it.node, it.bkt, it.slot+1
	for {
		for ; slot < len(node.used); slot++ {
			if node.used[slot] {
				return Iterator[K]{s: it.s, bkt: bkt, node: node, slot: slot}
			}
		}
		if node.next != nil {
			node = node.next
			slot = 0
			continue
		}
		bkt++
		if bkt >= len(it.s.dir) {
			return it.s.End()
		}
		node = it.s.dir[bkt]
		slot = 0
	}
}

// EqualTo reports whether it and other refer to the same (bucket, slot) —
// or are both the end sentinel. Comparing iterators from different Sets is
// a caller error with no defined result.
func (it Iterator[K]) EqualTo(other Iterator[K]) bool {
	if it.Done() || other.Done() {
		return it.Done() == other.Done()
	}
	return it.bkt == other.bkt && it.node == other.node && it.slot == other.slot
}

// All returns a range-over-func sequence of every key in s, in iterator
// order. It is a convenience alongside the explicit Begin/Next protocol
// above, in the idiom of Go 1.23 range-over-func iterators.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Begin(); !it.Done(); it = it.Next() {
			k, _ := it.Key()
			if !yield(k) {
				return
			}
		}
	}
}
