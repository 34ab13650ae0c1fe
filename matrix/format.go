// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Formatting constants shared by matrices and vectors.
const (
	fmtSep = ", "
	fmtEOL = "\n"
)

// Format writes e row by row: values of a row separated by ", ", every row
// (including the last) terminated by "\n". Values use the %v verb.
// An expression is evaluated element by element while printing; products cost O(k)
// per element, so evaluate large products first.
func Format[T Scalar](w io.Writer, e Expr[T]) error {
	if err := ValidateNotNil[T](e); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	width, height := e.Width(), e.Height()
	var x, y int
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			if x > 0 {
				bw.WriteString(fmtSep)
			}
			fmt.Fprintf(bw, "%v", e.At(x, y))
		}
		bw.WriteString(fmtEOL)
	}

	return bw.Flush()
}

// FormatVector writes e as a single row.
func FormatVector[T Scalar](w io.Writer, e VecExpr[T]) error {
	if isNilVecExpr(e) {
		return validatorErrorf("FormatVector", ErrNilExpr)
	}
	bw := bufio.NewWriter(w)
	n := e.Size()
	for i := 0; i < n; i++ {
		if i > 0 {
			bw.WriteString(fmtSep)
		}
		fmt.Fprintf(bw, "%v", e.At(i))
	}
	bw.WriteString(fmtEOL)

	return bw.Flush()
}

func sprint[T Scalar](e Expr[T]) string {
	var sb strings.Builder
	_ = Format[T](&sb, e)

	return sb.String()
}

func sprintVec[T Scalar](e VecExpr[T]) string {
	var sb strings.Builder
	_ = FormatVector[T](&sb, e)

	return sb.String()
}
