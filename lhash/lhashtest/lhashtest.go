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

// Package lhashtest provides conformance tests for a [lhash.Set] of string
// keys built from any constructor, independent of the hash, bucket capacity
// or initial depth used.
package lhashtest

import (
	"sort"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gocollections/linhash/lhash"
)

type op = func(t *testing.T, s *lhash.Set[string])

var script = []op{
	opLen(0),
	opContains("nonesuch", false),

	opInsert("fruit", true),
	opLen(1),
	opContains("fruit", true),

	opInsert("fruit", false), // S3: duplicate insert
	opLen(1),

	opInsert("nut", true),
	opInsert("animal", true),
	opInsert("beverage", true),
	opLen(4),

	opErase("animal", true),
	opErase("animal", false), // S6-adjacent: erase idempotence on absent
	opContains("animal", false),
	opLen(3),

	opInsert("animal", true), // S4: reinsert after erase
	opContains("animal", true),
	opLen(4),

	opKeys("animal", "beverage", "fruit", "nut"),

	opErase("beverage", true),
	opErase("fruit", true),
	opErase("nut", true),
	opErase("animal", true),
	opLen(0),
	opKeys(),
}

func opInsert(key string, wantAdded bool) op {
	return func(t *testing.T, s *lhash.Set[string]) {
		it, added, err := s.Insert(key)
		if err != nil {
			t.Fatalf("Insert(%q): unexpected error: %v", key, err)
		}
		if added != wantAdded {
			t.Errorf("Insert(%q): added=%v, want %v", key, added, wantAdded)
		}
		if it.Done() {
			t.Errorf("Insert(%q): returned iterator is at end", key)
		} else if got, _ := it.Key(); got != key {
			t.Errorf("Insert(%q): iterator key = %q", key, got)
		}
	}
}

func opErase(key string, wantPresent bool) op {
	return func(t *testing.T, s *lhash.Set[string]) {
		if got := s.Erase(key); got != wantPresent {
			t.Errorf("Erase(%q) = %v, want %v", key, got, wantPresent)
		}
	}
}

func opContains(key string, want bool) op {
	return func(t *testing.T, s *lhash.Set[string]) {
		if got := s.Contains(key); got != want {
			t.Errorf("Contains(%q) = %v, want %v", key, got, want)
		}
	}
}

func opLen(want int) op {
	return func(t *testing.T, s *lhash.Set[string]) {
		if got := s.Len(); got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
	}
}

func opKeys(want ...string) op {
	return func(t *testing.T, s *lhash.Set[string]) {
		var got []string
		for k := range s.All() {
			got = append(got, k)
		}
		sort.Strings(got)
		wantSorted := append([]string(nil), want...)
		sort.Strings(wantSorted)
		if diff := cmp.Diff(wantSorted, got); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	}
}

// Run applies the conformance script to s, which must be empty, then
// exercises the round and reachability invariants (spec properties 7 and 9
// in the terms this package was built against) across a wider sweep of
// inserts and erases. After Run returns, s's contents are garbage.
func Run(t *testing.T, s *lhash.Set[string]) {
	for _, step := range script {
		step(t, s)
	}

	CheckInvariants(t, s)

	// A wider sweep to shake out split/redistribute bugs that the small
	// literal script above would not reach.
	const n = 500
	inserted := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, added, err := s.Insert(k); err != nil {
			t.Fatalf("Insert(%q): %v", k, err)
		} else if !added {
			t.Errorf("Insert(%q): added=false on first insertion", k)
		}
		inserted[k] = true
		CheckInvariants(t, s)
	}
	if got, want := s.Len(), len(inserted); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for k := range inserted {
		if !s.Contains(k) {
			t.Errorf("Contains(%q) = false after insertion", k)
		}
	}

	// Erase every other key and recheck.
	i := 0
	for k := range inserted {
		if i%2 == 0 {
			if !s.Erase(k) {
				t.Errorf("Erase(%q) = false, want true", k)
			}
			delete(inserted, k)
		}
		i++
	}
	CheckInvariants(t, s)
	if got, want := s.Len(), len(inserted); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

// CheckInvariants verifies the round invariant (B = 2^d + nextToSplit) and
// that every key reachable by iteration is also reported present by
// Contains, against the snapshot returned by s.Stats.
func CheckInvariants(t *testing.T, s *lhash.Set[string]) {
	t.Helper()
	st := s.Stats()
	wantB := (1 << uint(st.RoundDepth)) + st.NextToSplit
	if st.BucketCount != wantB {
		t.Errorf("round invariant violated: BucketCount=%d, want 2^%d+%d=%d",
			st.BucketCount, st.RoundDepth, st.NextToSplit, wantB)
	}
	if st.NextToSplit < 0 || st.NextToSplit >= (1<<uint(st.RoundDepth)) {
		t.Errorf("nextToSplit=%d out of range [0, 2^%d)", st.NextToSplit, st.RoundDepth)
	}

	seen := make(map[string]bool)
	for it := s.Begin(); !it.Done(); it = it.Next() {
		k, err := it.Key()
		if err != nil {
			t.Errorf("Key() on live iterator: unexpected error: %v", err)
			continue
		}
		if seen[k] {
			t.Errorf("uniqueness violated: %q visited twice by iteration", k)
		}
		seen[k] = true
		if !s.Contains(k) {
			t.Errorf("reachability violated: iterated key %q not Contains", k)
		}
	}
	if len(seen) != st.Size {
		t.Errorf("iteration totality violated: saw %d keys, Stats.Size=%d", len(seen), st.Size)
	}
}

func key(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	b := []byte{alphabet[i%26], alphabet[(i/26)%26], alphabet[(i/676)%26]}
	return string(b) + strconv.Itoa(i)
}
