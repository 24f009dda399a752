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

// split implements spec §4.5: it is invoked at most once per Insert, and
// only when that insert's Chain-insert had to append a new overflow bucket
// somewhere in the directory. The bucket it splits is whichever one
// nextToSplit points at — not necessarily (usually not) the one that just
// overflowed. That decoupling is the defining property of linear hashing:
// the cost of growth is spread evenly across insertions instead of being
// paid all at once by whichever bucket happens to fill up.
func (s *Set[K]) split() {
	sOld := s.nextToSplit
	oldHead := s.dir[sOld]

	sibling := newBucket[K](s.capacity)
	s.dir.append(sibling)

	// Gather every key reachable from the old bucket's chain, then discard
	// the chain entirely. Redistributing from scratch avoids the
	// bookkeeping of editing overflow links in place, and is exactly as
	// correct: the spec leaves in-bucket and in-chain visitation order
	// unobservable, and encourages compacting away now-empty overflow
	// buckets after a split.
	keys := chainKeys(oldHead)
	*oldHead = *newBucket[K](s.capacity)

	for _, k := range keys {
		addr := s.postSplitAddress(s.hash(k))
		if addr == sOld {
			chainInsert(oldHead, k, s.capacity)
		} else {
			chainInsert(sibling, k, s.capacity)
		}
	}

	s.nextToSplit++
	if s.nextToSplit == 1<<uint(s.d) {
		s.d++
		s.nextToSplit = 0
	}
	s.setMasks()

	if s.logger != nil {
		s.logger.Debug("lhash split",
			"round_depth", s.d,
			"next_to_split", s.nextToSplit,
			"bucket_count", len(s.dir))
	}
}
