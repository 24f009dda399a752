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

func TestNilOptionsDefaults(t *testing.T) {
	var o *Options[string]
	if got, want := o.initialDepth(), 1; got != want {
		t.Errorf("nil Options.initialDepth() = %d, want %d", got, want)
	}
	if got, want := o.maxBuckets(), 0; got != want {
		t.Errorf("nil Options.maxBuckets() = %d, want %d", got, want)
	}
	if o.hash() != nil {
		t.Error("nil Options.hash() should be nil")
	}
	if o.logger() != nil {
		t.Error("nil Options.logger() should be nil")
	}
}

func TestNewStringsDefaults(t *testing.T) {
	s := NewStrings(3, nil)
	if _, _, err := s.Insert("hello"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !s.Contains("hello") {
		t.Error("Contains(hello) = false after Insert")
	}
}

func TestNewBytesDefaults(t *testing.T) {
	s := NewBytes(3, nil)
	k := []byte("hello")
	if _, _, err := s.Insert(k); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !s.Contains([]byte("hello")) {
		t.Error("Contains(hello) = false after Insert with an equal but distinct slice")
	}
}

func TestNewPanicsWithoutHashOrEqual(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with nil Hash/Equal did not panic")
		}
	}()
	New[int](3, nil)
}
