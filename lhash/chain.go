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

// A primary bucket plus the overflow buckets reachable from its next link
// behaves as a single expanded bucket of unbounded capacity. The functions
// here walk that chain head to tail; the chain is singly linked and is
// never walked backward or indexed at random.

// chainFind walks the chain rooted at head looking for a key equal to k. It
// returns the bucket holding the match and the slot index, or (nil, -1) if
// no bucket in the chain holds it.
func chainFind[K any](head *bucket[K], k K, equal func(K, K) bool) (*bucket[K], int) {
	for b := head; b != nil; b = b.next {
		if i := b.findSlot(k, equal); i >= 0 {
			return b, i
		}
	}
	return nil, -1
}

// chainCount returns the total number of occupied slots in the chain rooted
// at head.
func chainCount[K any](head *bucket[K]) int {
	n := 0
	for b := head; b != nil; b = b.next {
		n += len(b.used) - b.freeCount()
	}
	return n
}

// chainLen returns the number of buckets in the chain rooted at head
// (always ≥ 1).
func chainLen[K any](head *bucket[K]) int {
	n := 0
	for b := head; b != nil; b = b.next {
		n++
	}
	return n
}

// chainInsert places k in the first bucket of the chain rooted at head that
// has a free slot. If every bucket in the chain is full, it appends a new
// overflow bucket at the tail and places k in its first slot.
//
// It reports the bucket whose next link was set to point at a freshly
// appended overflow bucket (nil if no bucket was appended), so the caller
// can undo the append — see Set.Insert's AllocationFailure rollback — by
// resetting that bucket's next link to nil.
func chainInsert[K any](head *bucket[K], k K, capacity int) (appendedAfter *bucket[K]) {
	b := head
	for {
		if b.tryPlace(k) {
			return nil
		}
		if b.next == nil {
			break
		}
		b = b.next
	}
	nb := newBucket[K](capacity)
	nb.keys[0] = k
	nb.used[0] = true
	b.next = nb
	return b
}

// chainKeys collects every occupied key in the chain rooted at head, in
// chain order. Used only by the splitter, which is free to reorder keys
// during redistribution.
func chainKeys[K any](head *bucket[K]) []K {
	keys := make([]K, 0, chainCount(head))
	for b := head; b != nil; b = b.next {
		for i, occupied := range b.used {
			if occupied {
				keys = append(keys, b.keys[i])
			}
		}
	}
	return keys
}
