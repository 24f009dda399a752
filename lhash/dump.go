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
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// Dump writes a human-readable rendering of s's directory and overflow
// chains to w, one line per primary bucket, for interactive debugging.
// Every occupied key is printed via its %v form, so a reader can confirm
// it is present without querying the Set directly.
func (s *Set[K]) Dump(w io.Writer) error {
	fmt.Fprintf(w, "lhash: size=%d buckets=%d d=%d nextToSplit=%d\n", s.size, len(s.dir), s.d, s.nextToSplit)
	for i, head := range s.dir {
		fmt.Fprintf(w, "  bucket[%d]:", i)
		for b := head; b != nil; b = b.next {
			fmt.Fprintf(w, " (%d/%d)", len(b.used)-b.freeCount(), len(b.used))
			for slot, occupied := range b.used {
				if occupied {
					fmt.Fprintf(w, " %v", b.keys[slot])
				}
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// dumpMagic tags the binary format produced by DumpCompact, so a reader can
// reject anything else before trying to decode it.
const dumpMagic = "lh01"

// DumpCompact encodes a compact binary snapshot of s's directory shape —
// for each primary bucket, its chain depth and total key count — and
// returns it snappy-compressed. It carries no key data, only shape, making
// it safe to log or ship alongside Stats for diagnostics even when K is
// sensitive.
func (s *Set[K]) DumpCompact() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(dumpMagic)

	var header [24]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(s.size))
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(s.dir)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(s.d))
	binary.LittleEndian.PutUint32(header[16:20], uint32(s.nextToSplit))
	binary.LittleEndian.PutUint32(header[20:24], uint32(s.capacity))
	buf.Write(header[:])

	var rec [8]byte
	for _, head := range s.dir {
		binary.LittleEndian.PutUint32(rec[0:4], uint32(chainLen(head)))
		binary.LittleEndian.PutUint32(rec[4:8], uint32(chainCount(head)))
		buf.Write(rec[:])
	}

	return snappy.Encode(nil, buf.Bytes()), nil
}

// BucketShape is one entry of a decoded DumpCompact snapshot.
type BucketShape struct {
	ChainLen int // number of buckets in the primary bucket's chain
	KeyCount int // occupied slots across that chain
}

// DecodeDumpCompact reverses DumpCompact, returning the snapshot's recorded
// size, round depth, split cursor, per-Set capacity, and per-bucket shapes.
// It does not require a live Set and is intended for offline inspection of
// a previously captured snapshot.
func DecodeDumpCompact(data []byte) (size, d, nextToSplit, capacity int, shapes []BucketShape, err error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return 0, 0, 0, 0, nil, fmt.Errorf("lhash: decode snapshot: %w", err)
	}
	if len(raw) < len(dumpMagic)+24 || string(raw[:len(dumpMagic)]) != dumpMagic {
		return 0, 0, 0, 0, nil, fmt.Errorf("lhash: decode snapshot: bad magic or truncated header")
	}
	raw = raw[len(dumpMagic):]

	size = int(binary.LittleEndian.Uint64(raw[0:8]))
	bucketCount := int(binary.LittleEndian.Uint32(raw[8:12]))
	d = int(binary.LittleEndian.Uint32(raw[12:16]))
	nextToSplit = int(binary.LittleEndian.Uint32(raw[16:20]))
	capacity = int(binary.LittleEndian.Uint32(raw[20:24]))
	raw = raw[24:]

	if len(raw) < bucketCount*8 {
		return 0, 0, 0, 0, nil, fmt.Errorf("lhash: decode snapshot: truncated body")
	}
	shapes = make([]BucketShape, bucketCount)
	for i := range shapes {
		off := i * 8
		shapes[i] = BucketShape{
			ChainLen: int(binary.LittleEndian.Uint32(raw[off : off+4])),
			KeyCount: int(binary.LittleEndian.Uint32(raw[off+4 : off+8])),
		}
	}
	return size, d, nextToSplit, capacity, shapes, nil
}
