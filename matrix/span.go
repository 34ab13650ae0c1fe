// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Span selects start, start+step, ... up to (not including) stop.
// Negative Start/Stop count from the end; out-of-range bounds are clamped,
// following the slice semantics of dynamic-language front ends.
type Span struct {
	Start, Stop, Step int
}

// All selects every element in order.
func All() Span { return Span{Start: 0, Stop: math.MaxInt, Step: 1} }

// Resolve clamps the span against a sequence of length n and returns the first
// index, the step and the number of selected elements.
// Errors: ErrBadShape when Step == 0.
//
// Complexity: O(1).
func (s Span) Resolve(n int) (start, step, count int, err error) {
	step = s.Step
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("Span%v: zero step: %w", s, ErrBadShape)
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < lower {
				i = lower
			}
		} else if i > upper {
			i = upper
		}
		return i
	}
	start, stop := clamp(s.Start), clamp(s.Stop)

	switch {
	case step > 0 && start < stop:
		count = (stop-start-1)/step + 1
	case step < 0 && stop < start:
		count = (start-stop-1)/(-step) + 1
	}

	return start, step, count, nil
}
