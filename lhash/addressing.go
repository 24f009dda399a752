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

// address implements the two-level modulo hash of spec §4.3:
//
//	lo   = h mod 2^d
//	addr = lo                if lo >= nextToSplit
//	addr = h mod 2^(d+1)     otherwise
//
// Buckets in [0, nextToSplit) have already been split this round, so a key
// that hashes low into that range must be resolved with one extra bit
// (the (d+1)-th) to choose between the original bucket and the one it was
// split into; buckets at or beyond nextToSplit have not split yet, so the
// low-order address is still authoritative.
func (s *Set[K]) address(h uint64) int {
	lo := h & s.loMask
	if int(lo) >= s.nextToSplit {
		return int(lo)
	}
	return int(h & s.hiMask)
}

// postSplitAddress is address recomputed as though the bucket currently
// being split had already split — i.e. unconditionally using the
// (d+1)-bit mask. It is used only while redistributing a bucket's chain
// during a split (spec §4.5 step 2), before nextToSplit itself advances.
func (s *Set[K]) postSplitAddress(h uint64) int {
	return int(h & s.hiMask)
}

// setMasks recomputes loMask and hiMask from the current round depth d.
func (s *Set[K]) setMasks() {
	s.loMask = 1<<uint(s.d) - 1
	s.hiMask = 1<<uint(s.d+1) - 1
}
