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
	"bytes"
	"encoding/binary"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Options carries the customization points and tuning knobs for a Set. A
// nil *Options is ready to use with NewStrings and NewBytes and supplies the
// defaults documented below; New, which has no default Hash or Equal,
// panics when given a nil *Options. The accessors mirror
// the nil-safe Options pattern used throughout this package's
// ancestry (compare index.Options.hashFunc in the bloom-filter package this
// module's hashing defaults are grounded on).
type Options[K any] struct {
	// Hash computes the hash of a key. It has no default for an arbitrary
	// K; New panics if it is nil. Use NewStrings or NewBytes for key types
	// that have a sensible built-in default.
	Hash func(K) uint64

	// Equal reports whether two keys are equal. It has no default for an
	// arbitrary K; New panics if it is nil.
	Equal func(K, K) bool

	// Logger, if non-nil, receives a structured debug record every time a
	// split occurs. A nil Logger (the default) disables this logging
	// entirely; it is never defaulted to slog.Default.
	Logger *slog.Logger

	// InitialDepth sets d₀, the round depth a new Set starts at (so it
	// begins with 2^InitialDepth primary buckets). Spec §9 leaves the
	// choice of d₀ open; this package pins the default to 1. Values ≤ 0
	// are treated as the default.
	InitialDepth int

	// MaxBuckets caps the directory at that many primary buckets. Once the
	// cap is reached, an Insert that would otherwise trigger a split
	// reports ErrAllocationFailure and leaves the Set unchanged instead of
	// growing further. Zero (the default) means unlimited.
	MaxBuckets int
}

func (o *Options[K]) hash() func(K) uint64 {
	if o == nil {
		return nil
	}
	return o.Hash
}

func (o *Options[K]) equal() func(K, K) bool {
	if o == nil {
		return nil
	}
	return o.Equal
}

func (o *Options[K]) logger() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

func (o *Options[K]) initialDepth() int {
	if o == nil || o.InitialDepth <= 0 {
		return 1
	}
	return o.InitialDepth
}

func (o *Options[K]) maxBuckets() int {
	if o == nil {
		return 0
	}
	return o.MaxBuckets
}

// NewStrings constructs a Set[string] whose default hash is
// xxhash.Sum64String, the same default index.Options uses for its Bloom
// filter. opts may be nil. A non-nil opts.Hash or opts.Equal overrides the
// string defaults.
func NewStrings(capacity int, opts *Options[string]) *Set[string] {
	merged := mergeOptions(opts, func(s string) uint64 { return xxhash.Sum64String(s) }, func(a, b string) bool { return a == b })
	return New(capacity, merged)
}

// NewBytes constructs a Set[[]byte] whose default hash folds a blake2b-256
// digest of the key down to 64 bits, the same digest blob.CASFromKV uses to
// compute content addresses. opts may be nil.
func NewBytes(capacity int, opts *Options[[]byte]) *Set[[]byte] {
	hash := func(b []byte) uint64 {
		sum := blake2b.Sum256(b)
		return binary.LittleEndian.Uint64(sum[:8])
	}
	merged := mergeOptions(opts, hash, bytes.Equal)
	return New(capacity, merged)
}

func mergeOptions[K any](opts *Options[K], defaultHash func(K) uint64, defaultEqual func(K, K) bool) *Options[K] {
	out := &Options[K]{
		Hash:         defaultHash,
		Equal:        defaultEqual,
		Logger:       opts.logger(),
		InitialDepth: opts.initialDepth(),
		MaxBuckets:   opts.maxBuckets(),
	}
	if h := opts.hash(); h != nil {
		out.Hash = h
	}
	if e := opts.equal(); e != nil {
		out.Equal = e
	}
	return out
}
