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

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

// Helper to check non-decreasing order under the natural ordering.
func isNonDecreasing[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if compareOrdered(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

func TestSortOrderedEmpty(t *testing.T) {
	data := Slice[int]{}
	if err := SortOrdered[int](data, 0, 0); err != nil {
		t.Fatalf("SortOrdered(empty) returned error: %v", err)
	}
}

func TestSortOrderedSingle(t *testing.T) {
	data := Slice[int]{42}
	if err := SortOrdered[int](data, 0, 1); err != nil {
		t.Fatalf("SortOrdered(single) returned error: %v", err)
	}
	if data[0] != 42 {
		t.Errorf("SortOrdered([42]) = %v, want [42]", data)
	}
}

func TestSortOrderedScenario(t *testing.T) {
	data := Slice[int]{5, 3, 1, 4, 1, 5, 9, 2, 6}
	want := Slice[int]{1, 1, 2, 3, 4, 5, 5, 6, 9}
	if err := SortOrdered[int](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !slices.Equal(data, want) {
		t.Errorf("SortOrdered = %v, want %v", data, want)
	}
}

func TestSortOrderedAlreadySorted(t *testing.T) {
	data := Slice[int]{1, 2, 3, 4, 5, 6, 7, 8}
	want := slices.Clone(data)
	if err := SortOrdered[int](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !slices.Equal(data, want) {
		t.Errorf("SortOrdered(sorted) = %v, want %v", data, want)
	}
}

func TestSortOrderedReverse(t *testing.T) {
	data := make(Slice[int], 100)
	for i := range data {
		data[i] = len(data) - i
	}
	if err := SortOrdered[int](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !isNonDecreasing(data) {
		t.Errorf("SortOrdered(reverse) produced unsorted result: %v", data)
	}
}

func TestSortOrderedDuplicates(t *testing.T) {
	data := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	want := slices.Clone(data)
	slices.Sort(want)
	if err := SortOrdered[int](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !slices.Equal(data, want) {
		t.Errorf("SortOrdered(duplicates) = %v, want %v", data, want)
	}
}

func TestSortOrderedAllSame(t *testing.T) {
	data := make(Slice[int], 30)
	for i := range data {
		data[i] = 7
	}
	if err := SortOrdered[int](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	for i, v := range data {
		if v != 7 {
			t.Fatalf("SortOrdered(all same) changed element %d to %d", i, v)
		}
	}
}

func TestSortOrderedRandomAgainstStdlib(t *testing.T) {
	// Sizes around the insertion threshold and large enough to exercise
	// the partition/recursion paths.
	for _, n := range []int{2, 3, 15, 16, 17, 20, 33, 100, 1000, 5000} {
		data := make(Slice[int], n)
		for i := range data {
			data[i] = rand.Intn(n * 2)
		}
		want := slices.Clone(data)
		slices.Sort(want)
		if err := SortOrdered[int](data, 0, n); err != nil {
			t.Fatalf("SortOrdered(n=%d) returned error: %v", n, err)
		}
		if !slices.Equal(data, want) {
			t.Errorf("SortOrdered(n=%d) disagrees with stdlib", n)
		}
	}
}

func TestSortOrderedStrings(t *testing.T) {
	data := Slice[string]{"pear", "apple", "fig", "banana", "date"}
	want := Slice[string]{"apple", "banana", "date", "fig", "pear"}
	if err := SortOrdered[string](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !slices.Equal(data, want) {
		t.Errorf("SortOrdered(strings) = %v, want %v", data, want)
	}
}

func TestSortOrderedNaNFirst(t *testing.T) {
	nan := math.NaN()
	data := Slice[float64]{3, nan, 1, nan, 2}
	if err := SortOrdered[float64](data, 0, data.Len()); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}
	if !math.IsNaN(data[0]) || !math.IsNaN(data[1]) {
		t.Fatalf("SortOrdered(NaN) did not move NaNs first: %v", data)
	}
	if !slices.Equal(data[2:], Slice[float64]{1, 2, 3}) {
		t.Errorf("SortOrdered(NaN) non-NaN tail = %v, want [1 2 3]", data[2:])
	}
}

func TestSortOrderedSubrange(t *testing.T) {
	data := make(Slice[int], 40)
	for i := range data {
		data[i] = rand.Intn(100)
	}
	before := slices.Clone(data)

	const index, count = 5, 25
	if err := SortOrdered[int](data, index, count); err != nil {
		t.Fatalf("SortOrdered returned error: %v", err)
	}

	if !slices.Equal(data[:index], before[:index]) {
		t.Errorf("SortOrdered touched elements before the range")
	}
	if !slices.Equal(data[index+count:], before[index+count:]) {
		t.Errorf("SortOrdered touched elements after the range")
	}
	if !isNonDecreasing(data[index : index+count]) {
		t.Errorf("SortOrdered left the range unsorted: %v", data[index:index+count])
	}

	want := slices.Clone(before[index : index+count])
	slices.Sort(want)
	if !slices.Equal(data[index:index+count], want) {
		t.Errorf("SortOrdered changed the range's contents")
	}
}

func TestSortCompareFunc(t *testing.T) {
	data := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}
	descending := func(a, b int) int { return b - a }
	if err := Sort(data, 0, data.Len(), descending); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	want := Slice[int]{9, 6, 5, 4, 3, 2, 1, 1}
	if !slices.Equal(data, want) {
		t.Errorf("Sort(descending) = %v, want %v", data, want)
	}
}

func TestSortCompareFuncStructs(t *testing.T) {
	type account struct {
		owner   string
		balance int
	}
	data := Slice[account]{
		{"carol", 30},
		{"alice", 10},
		{"dave", 30},
		{"bob", 20},
	}
	byBalance := func(a, b account) int { return a.balance - b.balance }
	if err := Sort(data, 0, data.Len(), byBalance); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	for i := 1; i < len(data); i++ {
		if data[i].balance < data[i-1].balance {
			t.Fatalf("Sort(byBalance) out of order at %d: %v", i, data)
		}
	}
}

func TestSortManyEqualKeys(t *testing.T) {
	data := make(Slice[int], 20)
	for i := range data {
		data[i] = i
	}
	rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

	// Only four distinct keys under this comparison.
	byResidue := func(a, b int) int { return a%4 - b%4 }
	if err := Sort(data, 0, data.Len(), byResidue); err != nil {
		t.Fatalf("Sort(byResidue) returned error: %v", err)
	}
	if !IsSorted(data, 0, data.Len(), byResidue) {
		t.Errorf("Sort(byResidue) produced unsorted result: %v", data)
	}
}

func TestInsertionSortDirect(t *testing.T) {
	data := Slice[int]{9, 4, 7, 1, 8, 2, 6, 3, 5}
	insertionSort(&orderedData[int]{seq: data}, 0, data.Len()-1)
	if !isNonDecreasing(data) {
		t.Errorf("insertionSort produced unsorted result: %v", data)
	}
}

func TestHeapSortDirect(t *testing.T) {
	data := make(Slice[int], 128)
	for i := range data {
		data[i] = rand.Intn(1000)
	}
	want := slices.Clone(data)
	slices.Sort(want[16:112])
	heapSort(&orderedData[int]{seq: data}, 16, 111)
	if !slices.Equal(data, want) {
		t.Errorf("heapSort over [16,111] disagrees with stdlib")
	}
}

func TestDepthBudget(t *testing.T) {
	cases := []struct{ n, want int }{
		{1, 2},
		{2, 4},
		{3, 4},
		{9, 8},
		{16, 10},
		{17, 10},
	}
	for _, c := range cases {
		if got := depthBudget(c.n); got != c.want {
			t.Errorf("depthBudget(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestIsSorted(t *testing.T) {
	cmp := func(a, b int) int { return a - b }
	if !IsSorted(Slice[int]{1, 2, 2, 3}, 0, 4, cmp) {
		t.Errorf("IsSorted(sorted) = false")
	}
	if IsSorted(Slice[int]{2, 1}, 0, 2, cmp) {
		t.Errorf("IsSorted(unsorted) = true")
	}
	if !IsSorted(Slice[int]{2, 1}, 0, 1, cmp) {
		t.Errorf("IsSorted(single) = false")
	}
	if !IsSorted(Slice[int]{9, 1, 2, 9}, 1, 2, cmp) {
		t.Errorf("IsSorted(sorted subrange) = false")
	}
	if IsSorted(Slice[int]{1, 2}, 0, 3, cmp) {
		t.Errorf("IsSorted(invalid range) = true")
	}
}
