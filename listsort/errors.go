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
	"errors"
	"fmt"
)

// Argument-validation errors returned by the public entry points.
var (
	// ErrNilSequence signals a nil sequence argument.
	ErrNilSequence = errors.New("listsort: nil sequence")

	// ErrNilCompare signals a nil compare function where one is required.
	ErrNilCompare = errors.New("listsort: nil compare function")

	// ErrNegativeRange signals a negative index or count.
	ErrNegativeRange = errors.New("listsort: negative index or count")

	// ErrRangeOutOfBounds signals an (index, count) pair extending past the
	// end of a sequence.
	ErrRangeOutOfBounds = errors.New("listsort: range extends past the end of the sequence")
)

// ErrInconsistentCompare is returned when partitioning detects that the
// compare strategy does not define a consistent total order, for example a
// comparison that is not antisymmetric. The operated range may be left
// partially reordered, but no element outside it is touched.
var ErrInconsistentCompare = errors.New("listsort: compare function returned inconsistent results")

// CompareError reports that a user-supplied compare function (or the
// sequence it was reading) failed during a sort or search call. The original
// failure is available through Unwrap.
type CompareError struct {
	Cause error
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("listsort: compare function failed: %v", e.Cause)
}

func (e *CompareError) Unwrap() error { return e.Cause }

// asCompareError normalizes a recovered panic value into a *CompareError.
func asCompareError(r any) *CompareError {
	if err, ok := r.(error); ok {
		return &CompareError{Cause: err}
	}
	return &CompareError{Cause: fmt.Errorf("%v", r)}
}

// checkRange validates an (index, count) sub-range against a sequence of n
// elements. The subtraction form avoids overflow for large index+count.
func checkRange(n, index, count int) error {
	if index < 0 || count < 0 {
		return ErrNegativeRange
	}
	if n-index < count {
		return ErrRangeOutOfBounds
	}
	return nil
}
