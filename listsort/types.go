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

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for element types with a natural ordering, used
// by the SortOrdered family when no compare function is supplied.
type Ordered interface {
	Integers | Floats | ~string
}

// Compare is a three-way comparison: negative if a sorts before b, zero if
// the two are equivalent, positive if a sorts after b. It must describe a
// total order; see ErrInconsistentCompare for what happens when it does not.
type Compare[T any] func(a, b T) int

// Sequence is the container contract the engine sorts and searches through.
// It is mutable, indexable and counted; the engine mutates it only via Set
// and never resizes it. Implementations are typically cheap views over an
// existing collection.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

// Slice adapts a plain Go slice to the Sequence interface.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) Get(i int) T    { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// compareOrdered is the natural ordering for Ordered element types. A
// floating-point NaN sorts before every ordered value and equal to another
// NaN, so sorting never loses NaNs in the middle of the range.
func compareOrdered[T Ordered](a, b T) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
