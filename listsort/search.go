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

// BinarySearch looks for value in seq[index : index+count], which must
// already be sorted under cmp; the result is undefined otherwise.
//
// When an element compares equal to value the return is its position (any
// one of them, if several compare equal). When no element does, the return
// is the bitwise complement of the insertion point: always negative, and
// ^result is the index at which value would keep the range sorted.
func BinarySearch[T any](seq Sequence[T], index, count int, value T, cmp Compare[T]) (result int, err error) {
	if seq == nil {
		return 0, ErrNilSequence
	}
	if cmp == nil {
		return 0, ErrNilCompare
	}
	if err := checkRange(seq.Len(), index, count); err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = asCompareError(r)
		}
	}()
	return searchRange(seq, index, index+count-1, value, cmp), nil
}

// BinarySearchOrdered is BinarySearch under the natural ordering.
func BinarySearchOrdered[T Ordered](seq Sequence[T], index, count int, value T) (result int, err error) {
	if seq == nil {
		return 0, ErrNilSequence
	}
	if err := checkRange(seq.Len(), index, count); err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = asCompareError(r)
		}
	}()
	return searchRange(seq, index, index+count-1, value, compareOrdered[T]), nil
}

// searchRange is the iterative halving over [lo, hi] inclusive shared by
// both variants.
func searchRange[T any](seq Sequence[T], lo, hi int, value T, cmp Compare[T]) int {
	for lo <= hi {
		i := lo + (hi-lo)/2
		order := cmp(seq.Get(i), value)
		if order == 0 {
			return i
		}
		if order < 0 {
			lo = i + 1
		} else {
			hi = i - 1
		}
	}
	return ^lo
}

// IsSorted reports whether seq[index : index+count] is non-decreasing under
// cmp. Ranges shorter than two elements are sorted by definition; arguments
// that do not describe a valid range report false.
func IsSorted[T any](seq Sequence[T], index, count int, cmp Compare[T]) bool {
	if seq == nil || cmp == nil || checkRange(seq.Len(), index, count) != nil {
		return false
	}
	for i := index + 1; i < index+count; i++ {
		if cmp(seq.Get(i-1), seq.Get(i)) > 0 {
			return false
		}
	}
	return true
}
