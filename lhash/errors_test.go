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

import (
	"errors"
	"testing"
)

func TestOpErrorUnwrap(t *testing.T) {
	err := &OpError{Op: "Insert", Hash: 0x42, Err: ErrAllocationFailure}
	if !errors.Is(err, ErrAllocationFailure) {
		t.Error("errors.Is(err, ErrAllocationFailure) = false")
	}
	if !IsAllocationFailure(err) {
		t.Error("IsAllocationFailure(err) = false")
	}
	if IsIteratorMisuse(err) {
		t.Error("IsIteratorMisuse(err) = true for an allocation failure")
	}
	if err.Error() == "" {
		t.Error("Error() returned an empty string")
	}
}

func TestMaxBucketsAllocationFailure(t *testing.T) {
	s := newIdentitySetWithMax(t, 1, 1, 2) // N=1, d0=1 (B=2), capped at 2 buckets
	if _, _, err := s.Insert(0); err != nil {
		t.Fatalf("Insert(0): %v", err)
	}
	sizeBefore := s.Len()
	bucketsBefore := len(s.dir)

	// Inserting 2 also addresses to bucket 0 and would need a split to grow
	// past the cap.
	_, added, err := s.Insert(2)
	if !IsAllocationFailure(err) {
		t.Fatalf("Insert(2): err = %v, want ErrAllocationFailure", err)
	}
	if added {
		t.Error("Insert(2) reported added=true on allocation failure")
	}
	if got := s.Len(); got != sizeBefore {
		t.Errorf("Len() = %d after failed insert, want unchanged %d", got, sizeBefore)
	}
	if got := len(s.dir); got != bucketsBefore {
		t.Errorf("len(dir) = %d after failed insert, want unchanged %d", got, bucketsBefore)
	}
	if s.Contains(2) {
		t.Error("Contains(2) = true after a rolled-back insert")
	}
}

func newIdentitySetWithMax(t *testing.T, capacity, initialDepth, maxBuckets int) *Set[int] {
	t.Helper()
	return New[int](capacity, &Options[int]{
		Hash:         func(k int) uint64 { return uint64(k) },
		Equal:        func(a, b int) bool { return a == b },
		InitialDepth: initialDepth,
		MaxBuckets:   maxBuckets,
	})
}
