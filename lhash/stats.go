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

// Stats records size and shape statistics for a Set, in the spirit of
// index.Stats in the Bloom-filter package this is grounded on.
type Stats struct {
	Size        int // number of keys currently stored
	BucketCount int // B: number of primary buckets
	RoundDepth  int // d
	NextToSplit int // cursor into [0, 2^d)
	MaxChainLen int // longest primary-bucket-plus-overflow chain
}

// Stats returns a snapshot of s's current size and shape.
func (s *Set[K]) Stats() Stats {
	st := Stats{
		Size:        s.size,
		BucketCount: len(s.dir),
		RoundDepth:  s.d,
		NextToSplit: s.nextToSplit,
	}
	for _, head := range s.dir {
		if n := chainLen(head); n > st.MaxChainLen {
			st.MaxChainLen = n
		}
	}
	return st
}
