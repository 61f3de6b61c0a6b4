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

// introsortSizeThreshold: partitions at or below this size skip quicksort
// and are finished with direct swaps or insertion sort.
const introsortSizeThreshold = 16

// Sort rearranges seq[index : index+count] into non-decreasing order
// according to cmp, in place. Elements outside the range are untouched. The
// sort is not stable.
//
// Sort returns nil on success, a validation error for ill-formed arguments,
// ErrInconsistentCompare when cmp is not a consistent total order, or a
// *CompareError when cmp panics.
func Sort[T any](seq Sequence[T], index, count int, cmp Compare[T]) (err error) {
	if seq == nil {
		return ErrNilSequence
	}
	if cmp == nil {
		return ErrNilCompare
	}
	if err := checkRange(seq.Len(), index, count); err != nil {
		return err
	}
	if count < 2 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = asCompareError(r)
		}
	}()
	return introSort(&funcData[T]{seq: seq, cmp: cmp}, index, index+count-1, depthBudget(count))
}

// SortOrdered is Sort for element types with a natural ordering. For
// floating-point elements, NaN sorts before every other value.
func SortOrdered[T Ordered](seq Sequence[T], index, count int) (err error) {
	if seq == nil {
		return ErrNilSequence
	}
	if err := checkRange(seq.Len(), index, count); err != nil {
		return err
	}
	if count < 2 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = asCompareError(r)
		}
	}()
	return introSort(&orderedData[T]{seq: seq}, index, index+count-1, depthBudget(count))
}

// depthBudget returns the quicksort recursion budget 2*(floor(log2 n)+1).
// Once the descent spends it, the remaining partition is heapsorted, which
// bounds the worst case to O(n log n).
func depthBudget(n int) int {
	depth := 0
	for n > 0 {
		depth++
		n >>= 1
	}
	return 2 * depth
}

// introSort runs the introspective sort over [lo, hi] inclusive. The right
// sub-partition recurses; the left side continues the loop, so the stack
// stays logarithmic in the partition size.
func introSort[D sortData](d D, lo, hi, depthLimit int) error {
	for hi > lo {
		partitionSize := hi - lo + 1
		if partitionSize <= introsortSizeThreshold {
			switch partitionSize {
			case 2:
				swapIfGreater(d, lo, hi)
			case 3:
				swapIfGreater(d, lo, hi-1)
				swapIfGreater(d, lo, hi)
				swapIfGreater(d, hi-1, hi)
			default:
				insertionSort(d, lo, hi)
			}
			return nil
		}
		if depthLimit == 0 {
			heapSort(d, lo, hi)
			return nil
		}
		depthLimit--
		p, err := pickPivotAndPartition(d, lo, hi)
		if err != nil {
			return err
		}
		if err := introSort(d, p+1, hi, depthLimit); err != nil {
			return err
		}
		hi = p - 1
	}
	return nil
}
