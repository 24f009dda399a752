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
	"fmt"
)

var (
	// ErrAllocationFailure is reported by Insert when growing the
	// directory would exceed Options.MaxBuckets. The set is left exactly
	// as it was before the call.
	ErrAllocationFailure = errors.New("lhash: allocation failure")

	// ErrIteratorMisuse is reported by Iterator.Key when the iterator is
	// positioned at the end sentinel. This package chooses the fail-fast,
	// checked-error option the spec leaves open, rather than a panic or
	// undefined behavior.
	ErrIteratorMisuse = errors.New("lhash: iterator is at end")
)

// OpError is the concrete type of errors returned by Set operations. The
// caller may type-assert to *OpError to recover the operation name and the
// key hash involved.
type OpError struct {
	Op   string // the operation that failed, e.g. "Insert"
	Hash uint64 // the hash of the key involved, if any
	Err  error  // the underlying sentinel error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("lhash: %s: %v (hash=%#x)", e.Op, e.Err, e.Hash)
}

func (e *OpError) Unwrap() error { return e.Err }

// IsAllocationFailure reports whether err is or wraps ErrAllocationFailure.
func IsAllocationFailure(err error) bool { return errors.Is(err, ErrAllocationFailure) }

// IsIteratorMisuse reports whether err is or wraps ErrIteratorMisuse.
func IsIteratorMisuse(err error) bool { return errors.Is(err, ErrIteratorMisuse) }
