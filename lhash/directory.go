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

// A directory is the ordered sequence of primary buckets, indexed 0..B-1.
// Its only growth primitive is append; there is no shrink primitive, and
// random access by index is O(1) because it is backed by a plain slice.
type directory[K any] []*bucket[K]

func newDirectory[K any](count, capacity int) directory[K] {
	d := make(directory[K], count)
	for i := range d {
		d[i] = newBucket[K](capacity)
	}
	return d
}

func (d *directory[K]) append(b *bucket[K]) {
	*d = append(*d, b)
}
