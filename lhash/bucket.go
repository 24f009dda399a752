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

// A bucket holds up to cap(bucket.used) keys plus an optional link to an
// overflow bucket extending it. Go has no value-generic array length, so the
// fixed capacity N from the spec is a per-Set runtime constant instead of a
// compile-time array bound; every bucket allocated by a Set shares it.
type bucket[K any] struct {
	keys []K
	used []bool
	next *bucket[K]
}

func newBucket[K any](capacity int) *bucket[K] {
	return &bucket[K]{
		keys: make([]K, capacity),
		used: make([]bool, capacity),
	}
}

// tryPlace writes k into the first free slot of b and reports whether it
// succeeded. It never mutates b if it is full.
func (b *bucket[K]) tryPlace(k K) bool {
	for i, occupied := range b.used {
		if !occupied {
			b.keys[i] = k
			b.used[i] = true
			return true
		}
	}
	return false
}

// findSlot returns the index of the slot holding a key equal to k under
// equal, or -1 if none of b's own slots (not its chain) match.
func (b *bucket[K]) findSlot(k K, equal func(K, K) bool) int {
	for i, occupied := range b.used {
		if occupied && equal(b.keys[i], k) {
			return i
		}
	}
	return -1
}

// removeAt marks slot i free and releases the key value it held.
func (b *bucket[K]) removeAt(i int) {
	var zero K
	b.keys[i] = zero
	b.used[i] = false
}

func (b *bucket[K]) isFull() bool {
	return b.freeCount() == 0
}

func (b *bucket[K]) freeCount() int {
	n := 0
	for _, occupied := range b.used {
		if !occupied {
			n++
		}
	}
	return n
}
