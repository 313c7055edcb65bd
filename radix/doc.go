// Copyright 2025 go-highway Authors
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

// Package radix implements an in-place, most-significant-bit-first binary
// radix sort over fixed-width primitive keys.
//
// At each step the sort partitions a range on a single bit of the key: all
// elements whose bit is zero go left, all elements whose bit is one go
// right (or the reverse, depending on direction), then the two halves
// recurse on the next lower bit. Unlike a byte-histogram LSD radix sort
// (see the rejected approach in DESIGN.md), no auxiliary buffer is needed:
// every partition is done in place by a scalar two-pointer scan or, where
// the build target and CPU support it, a wide-vector compress-store
// partition that moves each element exactly once.
//
// Three layers build on each other:
//
//   - scalarPartition / simdPartition partition a single bit over a range.
//   - Recursion walks bits high to low, falling back to insertion sort
//     below a configurable threshold.
//   - Coordinator fans a recursion step across a worker pool using a
//     master/slave handshake, then stitches per-worker partitions back
//     into one global split point.
//
// Entry points are SortSequential, SortSimd, SortSequentialThreaded and
// SortSimdThreaded, each available for the unsigned, signed and
// floating-point instantiations declared in sort.go.
package radix
