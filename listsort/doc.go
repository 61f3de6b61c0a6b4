// Copyright 2026 ListSortHelper Authors
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

// Package listsort provides a generic, in-place introspective sort and
// binary search over indexed sequences.
//
// # Algorithm
//
// The sort is an introsort that combines:
//   - Quicksort with median-of-three pivoting for large partitions
//   - Direct swaps and insertion sort for partitions of 16 elements or fewer
//   - Heapsort fallback once the recursion budget of 2*(floor(log2 n)+1)
//     levels is spent, guaranteeing O(n log n) worst case
//
// The sort is not stable: elements that compare equal may end up in either
// order.
//
// # Sequences
//
// The engine never owns the data it sorts. Callers hand it anything that
// satisfies Sequence: a mutable, indexable container reached through Len,
// Get and Set. The Slice adapter covers the common case of a plain Go slice.
// A paired variant, SortPairs, permutes a second value sequence with exactly
// the index permutation applied to the keys.
//
// # Example Usage
//
//	data := listsort.Slice[int]{5, 3, 1, 4, 1, 5, 9, 2, 6}
//	if err := listsort.SortOrdered[int](data, 0, data.Len()); err != nil {
//		// only ill-formed arguments or a broken compare strategy fail
//	}
//
//	pos, err := listsort.BinarySearchOrdered[int](data, 0, data.Len(), 4)
//	if err == nil && pos < 0 {
//		insertAt := ^pos // 4 is absent; ^pos is its insertion point
//		_ = insertAt
//	}
//
// # Ill-behaved compare strategies
//
// A compare function that is not a consistent total order (for example one
// that always answers 1) is detected during partitioning and reported as
// ErrInconsistentCompare instead of looping or reading outside the operated
// range. A compare function that panics surfaces as a *CompareError wrapping
// the original failure. Both sorts and searches share this guard.
//
// # Concurrency
//
// All functions are pure and carry no state between calls, so distinct
// sequences may be sorted concurrently. A single sequence must not be
// mutated by anyone else for the duration of a call; the result of doing so
// is undefined.
package listsort
