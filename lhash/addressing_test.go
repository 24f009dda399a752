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

import "testing"

// newIdentitySet builds a Set[int] with hash(k) = k, mirroring the literal
// scenarios that pin hash(i) = i.
func newIdentitySet(t *testing.T, capacity, initialDepth int) *Set[int] {
	t.Helper()
	return New[int](capacity, &Options[int]{
		Hash:         func(k int) uint64 { return uint64(k) },
		Equal:        func(a, b int) bool { return a == b },
		InitialDepth: initialDepth,
	})
}

func TestAddressWithinBounds(t *testing.T) {
	s := newIdentitySet(t, 3, 1)
	for h := uint64(0); h < 64; h++ {
		addr := s.address(h)
		if addr < 0 || addr >= len(s.dir) {
			t.Errorf("address(%d) = %d, out of [0, %d)", h, addr, len(s.dir))
		}
	}
}

func TestAddressBeforeAndAfterSplit(t *testing.T) {
	s := newIdentitySet(t, 3, 1) // d=1, B=2: addresses are h mod 2
	// Before any split, nextToSplit = 0, so every lo >= 0 uses the low mask.
	if got, want := s.address(0), 0; got != want {
		t.Errorf("address(0) = %d, want %d", got, want)
	}
	if got, want := s.address(1), 1; got != want {
		t.Errorf("address(1) = %d, want %d", got, want)
	}

	// Force a split of bucket 0 by driving it to overflow (N=3, so the 4th
	// key landing in bucket 0 overflows it): 0, 2, 4, 6 all hash to bucket 0.
	for _, k := range []int{0, 2, 4, 6} {
		if _, _, err := s.Insert(k); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}
	if got, want := s.nextToSplit, 1; got != want {
		t.Fatalf("nextToSplit = %d, want %d after one split", got, want)
	}
	if got, want := len(s.dir), 3; got != want {
		t.Fatalf("len(dir) = %d, want %d after one split", got, want)
	}
	// Bucket 0 has split: 6 now resolves via h mod 4 = 2.
	if got, want := s.address(6), 2; got != want {
		t.Errorf("address(6) = %d, want %d after split", got, want)
	}
	// Bucket 1 has not split yet: still resolves via the low mask.
	if got, want := s.address(1), 1; got != want {
		t.Errorf("address(1) = %d, want %d", got, want)
	}
}
