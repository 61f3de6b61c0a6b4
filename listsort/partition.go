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

package listsort

// pickPivotAndPartition partitions [lo, hi] inclusive around a
// median-of-three pivot and returns the pivot's final position. Requires
// lo < hi.
//
// The two-pointer scan uses strict comparisons, so elements equal to the
// pivot keep the pointers moving instead of stalling on them; this is also
// why the sort is not stable. A consistent total order keeps both pointers
// inside [lo, hi]: the pivot parked at hi-1 stops the left scan (an element
// compares 0 against itself) and the smallest of the median probes, left at
// lo, stops the right scan. A compare strategy that breaks either property
// is reported as ErrInconsistentCompare before any access outside the
// operated range.
func pickPivotAndPartition[D sortData](d D, lo, hi int) (int, error) {
	middle := lo + (hi-lo)/2

	// Order lo, middle, hi, then park the median at hi-1 as the pivot.
	swapIfGreater(d, lo, middle)
	swapIfGreater(d, lo, hi)
	swapIfGreater(d, middle, hi)

	pivot := hi - 1
	d.swap(middle, pivot)

	// An antisymmetric order forces compare(x, x) == 0, so a comparison
	// that always answers the same sign fails here on the first partition.
	if d.compareAt(pivot, pivot) != 0 {
		return 0, ErrInconsistentCompare
	}

	left, right := lo, hi-1
	for left < right {
		for {
			left++
			if left > hi {
				return 0, ErrInconsistentCompare
			}
			if d.compareAt(left, pivot) >= 0 {
				break
			}
		}
		for {
			right--
			if right < lo {
				return 0, ErrInconsistentCompare
			}
			if d.compareAt(pivot, right) >= 0 {
				break
			}
		}
		if left >= right {
			break
		}
		d.swap(left, right)
	}

	d.swap(left, pivot)
	return left, nil
}
