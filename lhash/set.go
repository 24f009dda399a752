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

// Package lhash implements a set of unique keys backed by Linear Hashing
// with overflow chains: a dynamic hashing scheme that grows its directory
// one bucket at a time, deferring a full rehash of the table.
//
// # Summary
//
// A [Set] holds a collection of keys of a single type K, with no implied
// ordering and no duplicates. Membership, insertion, deletion and a
// single-pass forward iterator are all provided; there is no persistence,
// no thread safety, and no multi-set behavior. NewStrings and NewBytes
// construct a Set for the two most common key shapes; New accepts any K
// given a hash and an equality predicate.
//
// # Implementation notes
//
// Unlike a conventional open-addressing or chained hash table, a linear
// hash grows by appending exactly one bucket per split and spreads the
// cost of that split across insertions rather than paying for a full
// rehash whenever the load factor crosses a threshold. See splitter.go for
// the state machine that drives this.
package lhash

import "log/slog"

// A Set holds a collection of unique keys of type K, addressed by Linear
// Hashing with overflow chains.
type Set[K any] struct {
	capacity     int // N: slots per bucket
	maxBuckets   int // 0 means unlimited
	initialDepth int // d₀: the round depth Clear resets to

	hash  func(K) uint64
	equal func(K, K) bool

	logger *slog.Logger

	dir         directory[K]
	d           int // round depth
	nextToSplit int
	loMask      uint64
	hiMask      uint64

	size int
}

// New constructs an empty Set with the given per-bucket capacity and
// options. opts.Hash and opts.Equal must be set; New panics otherwise,
// since there is no sensible default hash or equality predicate for an
// arbitrary K. capacity must be positive.
func New[K any](capacity int, opts *Options[K]) *Set[K] {
	if capacity <= 0 {
		panic("lhash: capacity must be positive")
	}
	hash := opts.hash()
	equal := opts.equal()
	if hash == nil || equal == nil {
		panic("lhash: Options.Hash and Options.Equal must be set; use NewStrings or NewBytes for built-in defaults")
	}
	s := &Set[K]{
		capacity:     capacity,
		maxBuckets:   opts.maxBuckets(),
		initialDepth: opts.initialDepth(),
		hash:         hash,
		equal:        equal,
		logger:       opts.logger(),
	}
	s.reset(s.initialDepth)
	return s
}

func (s *Set[K]) reset(initialDepth int) {
	s.d = initialDepth
	s.nextToSplit = 0
	s.dir = newDirectory[K](1<<uint(initialDepth), s.capacity)
	s.setMasks()
	s.size = 0
}

// Len returns the number of keys currently in the set.
func (s *Set[K]) Len() int { return s.size }

// Empty reports whether the set has no keys.
func (s *Set[K]) Empty() bool { return s.size == 0 }

// Contains reports whether k is a member of the set.
func (s *Set[K]) Contains(k K) bool {
	addr := s.address(s.hash(k))
	_, slot := chainFind(s.dir[addr], k, s.equal)
	return slot >= 0
}

// Find returns an iterator positioned at k if it is present, or the end
// iterator otherwise. The returned iterator remains valid until the next
// mutating call on s.
func (s *Set[K]) Find(k K) Iterator[K] {
	addr := s.address(s.hash(k))
	node, slot := chainFind(s.dir[addr], k, s.equal)
	if slot < 0 {
		return s.End()
	}
	return Iterator[K]{s: s, bkt: addr, node: node, slot: slot}
}

// Insert adds k to the set if it is not already present. It returns an
// iterator positioned at k (whether newly inserted or already present),
// whether a new key was added, and a non-nil error only on
// ErrAllocationFailure, in which case the set is left exactly as it was
// before the call.
func (s *Set[K]) Insert(k K) (Iterator[K], bool, error) {
	if it := s.Find(k); !it.Done() {
		return it, false, nil
	}

	h := s.hash(k)
	addr := s.address(h)
	head := s.dir[addr]
	appendedAfter := chainInsert(head, k, s.capacity)

	if appendedAfter != nil {
		if s.maxBuckets > 0 && len(s.dir)+1 > s.maxBuckets {
			appendedAfter.next = nil // roll back: leave the set unchanged
			return Iterator[K]{}, false, &OpError{Op: "Insert", Hash: h, Err: ErrAllocationFailure}
		}
		s.size++
		s.split()
	} else {
		s.size++
	}
	return s.Find(k), true, nil
}

// InsertAll inserts each key in keys, in order, folding duplicates exactly
// as repeated calls to Insert would. It returns the number of keys newly
// added. If an insertion fails with ErrAllocationFailure, InsertAll stops
// and returns that error; insertions already applied remain in effect, per
// spec §4.6's documented bulk-insert behavior.
func (s *Set[K]) InsertAll(keys ...K) (inserted int, err error) {
	for _, k := range keys {
		_, added, ierr := s.Insert(k)
		if ierr != nil {
			return inserted, ierr
		}
		if added {
			inserted++
		}
	}
	return inserted, nil
}

// Erase removes k from the set, reporting whether it was present. It does
// not compact overflow chains and never reverses a prior split (spec §9
// leaves erase-time compaction unspecified; this package chooses not to
// compact).
func (s *Set[K]) Erase(k K) bool {
	addr := s.address(s.hash(k))
	node, slot := chainFind(s.dir[addr], k, s.equal)
	if slot < 0 {
		return false
	}
	node.removeAt(slot)
	s.size--
	return true
}

// Clear removes every key and resets the set to its initial empty state
// (d = d₀, nextToSplit = 0).
func (s *Set[K]) Clear() {
	s.reset(s.initialDepth)
}

// Swap exchanges the entire contents and configuration of s and other in
// O(1).
func (s *Set[K]) Swap(other *Set[K]) {
	*s, *other = *other, *s
}

// Equal reports whether s and other contain exactly the same keys,
// regardless of insertion order or internal directory shape.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.size != other.size {
		return false
	}
	for it := s.Begin(); !it.Done(); it = it.Next() {
		k, _ := it.Key()
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Clone returns an independent Set containing the same keys as s. Spec §9
// only requires the observable key set to match, not the internal
// directory shape, so Clone rebuilds by reinsertion rather than copying
// buckets bit for bit.
func (s *Set[K]) Clone() *Set[K] {
	out := &Set[K]{
		capacity:     s.capacity,
		maxBuckets:   s.maxBuckets,
		hash:         s.hash,
		equal:        s.equal,
		logger:       s.logger,
		initialDepth: s.initialDepth,
	}
	out.reset(out.initialDepth)
	for it := s.Begin(); !it.Done(); it = it.Next() {
		k, _ := it.Key()
		out.Insert(k)
	}
	return out
}
