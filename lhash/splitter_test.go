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

// TestSplitRoundAdvance drives enough splits to roll nextToSplit over a
// full round (spec §3's round-advance rule: nextToSplit reaching 2^d resets
// to 0 and d increments).
func TestSplitRoundAdvance(t *testing.T) {
	s := newIdentitySet(t, 1, 1) // N=1, d0=1: every second insert into a
	// bucket forces a split, since capacity is one key per bucket.

	// Drive two splits to complete the d=1 round (2^1 = 2 buckets to split).
	for _, k := range []int{0, 2, 1, 3} {
		if _, _, err := s.Insert(k); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}
	if got, want := s.d, 2; got != want {
		t.Errorf("d = %d, want %d after completing a round", got, want)
	}
	if got, want := s.nextToSplit, 0; got != want {
		t.Errorf("nextToSplit = %d, want %d after round advance", got, want)
	}
	for _, k := range []int{0, 1, 2, 3} {
		if !s.Contains(k) {
			t.Errorf("Contains(%d) = false after splits", k)
		}
	}
}

// TestSplitPreservesAllKeys exercises the S2 literal scenario from the
// property suite this package was built against: N=3, d0=1, hash(i)=i,
// inserting 0, 2, 4, 6 (all initially addressed to bucket 0).
func TestSplitPreservesAllKeys(t *testing.T) {
	s := newIdentitySet(t, 3, 1)
	for _, k := range []int{0, 2, 4, 6} {
		if _, added, err := s.Insert(k); err != nil || !added {
			t.Fatalf("Insert(%d): added=%v err=%v", k, added, err)
		}
	}
	if got, want := len(s.dir), 3; got != want {
		t.Errorf("len(dir) = %d, want %d", got, want)
	}
	if got, want := s.nextToSplit, 1; got != want {
		t.Errorf("nextToSplit = %d, want %d", got, want)
	}
	for _, k := range []int{0, 2, 4, 6} {
		if !s.Contains(k) {
			t.Errorf("Contains(%d) = false", k)
		}
	}
	if got, want := s.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}
