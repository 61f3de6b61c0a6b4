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

// sortData is the access surface the sort core works through, so the
// algorithm is written once and instantiated per element shape. Indices are
// absolute positions in the underlying sequence(s). hold parks one element
// aside (key and, for paired data, its value) so the shift-based loops can
// move elements in runs; place stores the parked element back.
type sortData interface {
	compareAt(i, j int) int
	compareHeld(j int) int // three-way compare of the held key against key j
	hold(i int)
	place(i int)
	move(from, to int) // copy the element at from over the one at to
	swap(i, j int)
}

// funcData drives a single sequence with an explicit compare function.
type funcData[T any] struct {
	seq  Sequence[T]
	cmp  Compare[T]
	held T
}

func (d *funcData[T]) compareAt(i, j int) int { return d.cmp(d.seq.Get(i), d.seq.Get(j)) }
func (d *funcData[T]) compareHeld(j int) int  { return d.cmp(d.held, d.seq.Get(j)) }
func (d *funcData[T]) hold(i int)             { d.held = d.seq.Get(i) }
func (d *funcData[T]) place(i int)            { d.seq.Set(i, d.held) }
func (d *funcData[T]) move(from, to int)      { d.seq.Set(to, d.seq.Get(from)) }

func (d *funcData[T]) swap(i, j int) {
	a, b := d.seq.Get(i), d.seq.Get(j)
	d.seq.Set(i, b)
	d.seq.Set(j, a)
}

// orderedData drives a single sequence with the natural ordering.
type orderedData[T Ordered] struct {
	seq  Sequence[T]
	held T
}

func (d *orderedData[T]) compareAt(i, j int) int { return compareOrdered(d.seq.Get(i), d.seq.Get(j)) }
func (d *orderedData[T]) compareHeld(j int) int  { return compareOrdered(d.held, d.seq.Get(j)) }
func (d *orderedData[T]) hold(i int)             { d.held = d.seq.Get(i) }
func (d *orderedData[T]) place(i int)            { d.seq.Set(i, d.held) }
func (d *orderedData[T]) move(from, to int)      { d.seq.Set(to, d.seq.Get(from)) }

func (d *orderedData[T]) swap(i, j int) {
	a, b := d.seq.Get(i), d.seq.Get(j)
	d.seq.Set(i, b)
	d.seq.Set(j, a)
}

// pairedFuncData drives a key sequence plus a value sequence that must
// receive the identical permutation. Comparisons only ever see keys.
type pairedFuncData[K, V any] struct {
	keys    Sequence[K]
	values  Sequence[V]
	cmp     Compare[K]
	heldKey K
	heldVal V
}

func (d *pairedFuncData[K, V]) compareAt(i, j int) int { return d.cmp(d.keys.Get(i), d.keys.Get(j)) }
func (d *pairedFuncData[K, V]) compareHeld(j int) int  { return d.cmp(d.heldKey, d.keys.Get(j)) }

func (d *pairedFuncData[K, V]) hold(i int) {
	d.heldKey = d.keys.Get(i)
	d.heldVal = d.values.Get(i)
}

func (d *pairedFuncData[K, V]) place(i int) {
	d.keys.Set(i, d.heldKey)
	d.values.Set(i, d.heldVal)
}

func (d *pairedFuncData[K, V]) move(from, to int) {
	d.keys.Set(to, d.keys.Get(from))
	d.values.Set(to, d.values.Get(from))
}

func (d *pairedFuncData[K, V]) swap(i, j int) {
	ka, kb := d.keys.Get(i), d.keys.Get(j)
	d.keys.Set(i, kb)
	d.keys.Set(j, ka)
	va, vb := d.values.Get(i), d.values.Get(j)
	d.values.Set(i, vb)
	d.values.Set(j, va)
}

// pairedOrderedData is pairedFuncData under the natural key ordering.
type pairedOrderedData[K Ordered, V any] struct {
	keys    Sequence[K]
	values  Sequence[V]
	heldKey K
	heldVal V
}

func (d *pairedOrderedData[K, V]) compareAt(i, j int) int {
	return compareOrdered(d.keys.Get(i), d.keys.Get(j))
}

func (d *pairedOrderedData[K, V]) compareHeld(j int) int {
	return compareOrdered(d.heldKey, d.keys.Get(j))
}

func (d *pairedOrderedData[K, V]) hold(i int) {
	d.heldKey = d.keys.Get(i)
	d.heldVal = d.values.Get(i)
}

func (d *pairedOrderedData[K, V]) place(i int) {
	d.keys.Set(i, d.heldKey)
	d.values.Set(i, d.heldVal)
}

func (d *pairedOrderedData[K, V]) move(from, to int) {
	d.keys.Set(to, d.keys.Get(from))
	d.values.Set(to, d.values.Get(from))
}

func (d *pairedOrderedData[K, V]) swap(i, j int) {
	ka, kb := d.keys.Get(i), d.keys.Get(j)
	d.keys.Set(i, kb)
	d.keys.Set(j, ka)
	va, vb := d.values.Get(i), d.values.Get(j)
	d.values.Set(i, vb)
	d.values.Set(j, va)
}

// swapIfGreater orders the pair of elements at positions i and j.
func swapIfGreater[D sortData](d D, i, j int) {
	if d.compareAt(i, j) > 0 {
		d.swap(i, j)
	}
}

// insertionSort sorts [lo, hi] inclusive by shifting: each element is parked
// aside while larger predecessors move up one slot, then dropped into the
// gap. Used for partitions at or below the introsort threshold, where its
// low overhead beats quicksort.
func insertionSort[D sortData](d D, lo, hi int) {
	for i := lo; i < hi; i++ {
		d.hold(i + 1)
		j := i
		for j >= lo && d.compareHeld(j) < 0 {
			d.move(j, j+1)
			j--
		}
		d.place(j + 1)
	}
}

// heapSort sorts [lo, hi] inclusive via a max-heap, indexed 1-based over the
// partition: build the heap by sifting down from the middle outward, then
// repeatedly swap the root with the last unsorted element and re-sift.
func heapSort[D sortData](d D, lo, hi int) {
	n := hi - lo + 1
	for i := n / 2; i >= 1; i-- {
		downHeap(d, i, n, lo)
	}
	for i := n; i > 1; i-- {
		d.swap(lo, lo+i-1)
		downHeap(d, 1, i-1, lo)
	}
}

// downHeap sifts the element at heap position i down a heap of n elements
// rooted at lo, holding it aside and moving children up until its slot is
// found.
func downHeap[D sortData](d D, i, n, lo int) {
	d.hold(lo + i - 1)
	for i <= n/2 {
		child := 2 * i
		if child < n && d.compareAt(lo+child-1, lo+child) < 0 {
			child++
		}
		if d.compareHeld(lo+child-1) >= 0 {
			break
		}
		d.move(lo+child-1, lo+i-1)
		i = child
	}
	d.place(lo + i - 1)
}
