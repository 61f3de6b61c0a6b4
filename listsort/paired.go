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

// SortPairs sorts keys[index : index+count] in place according to cmp while
// applying exactly the same index permutation to values, so each key keeps
// its value. Comparisons only ever see keys. Both sequences must cover the
// range; there is no requirement that they have equal length beyond that.
//
// Like Sort, the rearrangement is not stable, and the same errors apply.
func SortPairs[K, V any](keys Sequence[K], values Sequence[V], index, count int, cmp Compare[K]) (err error) {
	if keys == nil || values == nil {
		return ErrNilSequence
	}
	if cmp == nil {
		return ErrNilCompare
	}
	if err := checkRange(keys.Len(), index, count); err != nil {
		return err
	}
	if err := checkRange(values.Len(), index, count); err != nil {
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
	d := &pairedFuncData[K, V]{keys: keys, values: values, cmp: cmp}
	return introSort(d, index, index+count-1, depthBudget(count))
}

// SortPairsOrdered is SortPairs under the natural key ordering.
func SortPairsOrdered[K Ordered, V any](keys Sequence[K], values Sequence[V], index, count int) (err error) {
	if keys == nil || values == nil {
		return ErrNilSequence
	}
	if err := checkRange(keys.Len(), index, count); err != nil {
		return err
	}
	if err := checkRange(values.Len(), index, count); err != nil {
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
	d := &pairedOrderedData[K, V]{keys: keys, values: values}
	return introSort(d, index, index+count-1, depthBudget(count))
}
