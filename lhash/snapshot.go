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

import "github.com/creachadair/mds/mapset"

// Snapshot copies the keys of s into a mapset.Set, for interop with code
// built around that package's set algebra (union, intersection, and so on).
// The result shares no storage with s.
func Snapshot[K comparable](s *Set[K]) mapset.Set[K] {
	var out mapset.Set[K]
	for it := s.Begin(); !it.Done(); it = it.Next() {
		k, _ := it.Key()
		out.Add(k)
	}
	return out
}

// FromMapSet builds a new Set containing the keys of m, using opts the same
// way New does.
func FromMapSet[K comparable](m mapset.Set[K], capacity int, opts *Options[K]) *Set[K] {
	out := New(capacity, opts)
	for _, k := range m.Slice() {
		out.Insert(k)
	}
	return out
}
