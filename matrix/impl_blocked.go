// SPDX-License-Identifier: MIT

// Package matrix - cache-blocked multiply kernel.
//
// Purpose:
//   - Compute C += A*B over strided views with good cache behavior.
//   - Back every ProductExpr assignment.
//
// Loop structure (serial strip [x0,x1) of output columns):
//
//	for k0 in K step BW:                 // inner-dimension panel
//	  for y0 in M step BH:               // output-row panel
//	    pack A(k0:k0+kb, y0:y0+mb) → ablock[k*mb + y]   (aligned, contiguous)
//	    for x in [x0,x1) step 4:         // 4×4 register tiles
//	      for y in panel step 4:
//	        acc[4][4] += ablock[k, y..y+3] ⊗ B(x..x+3, k)
//	      leftover rows, then leftover columns: scalar dot products
//
// Behavior highlights:
//   - Every panel extent is clamped with min, so any M, N, K and any BH×BW are valid.
//   - Integer results are exact for every panel configuration; float results may
//     differ from the naive ordering only by summation rounding.
//   - WithWorkers(n>1) splits [0,N) into column strips; strips write disjoint
//     output columns and each worker packs into its own scratch.
//
// Aliasing:
//   - C must not share memory with A or B. ProductExpr assignment handles this by
//     evaluating into a temporary; direct MulAdd/MulInto callers must ensure it.

package matrix

import (
	"golang.org/x/sync/errgroup"
)

// MulAdd accumulates C += A*B.
// MAIN DESCRIPTION:
//   - Shapes: A is K wide and M high, B is N wide and K high, C is N wide and M high.
//
// Implementation:
//   - Stage 1: validate (nil, inner and output shapes) before touching C.
//   - Stage 2: resolve options (panel BH×BW, workers).
//   - Stage 3: run one strip serially or fan strips out through errgroup.
//
// Errors:
//   - ErrNilExpr, ErrDimensionMismatch (wrapped with "MulAdd").
//
// Complexity:
//   - Time O(M*N*K), Space O(BH*BW) per worker.
func MulAdd[T Scalar](c, a, b *View[T], opts ...Option) error {
	if err := validateMulAdd(c, a, b); err != nil {
		return matrixErrorf(opMulAdd, err)
	}
	o := gatherOptions(opts...)
	m, n, k := c.Height(), c.Width(), a.Width()
	if m == 0 || n == 0 || k == 0 {
		return nil
	}

	if o.workers <= 1 || n <= tileW {
		mulAddStrip(c, a, b, 0, n, o, alignedScratch[T](o.panelH*o.panelW))
		return nil
	}

	// strips rounded up to whole register tiles
	strip := (n + o.workers - 1) / o.workers
	strip = (strip + tileW - 1) / tileW * tileW

	var g errgroup.Group
	g.SetLimit(o.workers)
	for x0 := 0; x0 < n; x0 += strip {
		x1 := min(n, x0+strip)
		g.Go(func() error {
			mulAddStrip(c, a, b, x0, x1, o, alignedScratch[T](o.panelH*o.panelW))
			return nil
		})
	}

	return g.Wait()
}

// MulInto computes C = A*B: C is validated, cleared and then accumulated into.
func MulInto[T Scalar](c, a, b *View[T], opts ...Option) error {
	if err := validateMulAdd(c, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	c.Fill(0)

	return MulAdd(c, a, b, opts...)
}

// mulAddStrip runs the panel loops for output columns [x0, x1).
func mulAddStrip[T Scalar](c, a, b *View[T], x0, x1 int, o Options, ablock []T) {
	m, k := c.Height(), a.Width()
	cl, al, bl := c.layout(), a.layout(), b.layout()

	var k0, kb, y0, mb int
	for k0 = 0; k0 < k; k0 += o.panelW {
		kb = min(k, k0+o.panelW) - k0
		for y0 = 0; y0 < m; y0 += o.panelH {
			mb = min(m, y0+o.panelH) - y0
			packPanel(ablock, a.data, al, k0, kb, y0, mb)
			microKernel(c.data, cl, b.data, bl, ablock, x0, x1, y0, mb, k0, kb)
		}
	}
}

// packPanel copies A(k0+k, y0+y) into dst[k*mb+y] for k<kb, y<mb.
// Unit row stride (contiguous columns) reduces to one copy per k.
func packPanel[T Scalar](dst, src []T, l layout, k0, kb, y0, mb int) {
	var k, y, s int
	for k = 0; k < kb; k++ {
		s = l.base + (k0+k)*l.px + y0*l.py
		row := dst[k*mb : k*mb+mb]
		if l.py == 1 {
			copy(row, src[s:s+mb])
			continue
		}
		for y = range row {
			row[y] = src[s+y*l.py]
		}
	}
}

// microKernel adds ablock * B(x0:x1, k0:k0+kb) into C(x0:x1, y0:y0+mb).
func microKernel[T Scalar](cd []T, cl layout, bd []T, bl layout, ap []T, x0, x1, y0, mb, k0, kb int) {
	var x, y, k int
	for x = x0; x+tileW <= x1; x += tileW {
		b0 := bl.base + x*bl.px + k0*bl.py
		b1 := b0 + bl.px
		b2 := b1 + bl.px
		b3 := b2 + bl.px
		c0 := cl.base + x*cl.px + y0*cl.py

		for y = 0; y+tileH <= mb; y += tileH {
			var (
				a00, a01, a02, a03 T
				a10, a11, a12, a13 T
				a20, a21, a22, a23 T
				a30, a31, a32, a33 T
			)
			for k = 0; k < kb; k++ {
				ak := ap[k*mb+y : k*mb+y+tileH]
				off := k * bl.py
				v0, v1, v2, v3 := bd[b0+off], bd[b1+off], bd[b2+off], bd[b3+off]
				r0, r1, r2, r3 := ak[0], ak[1], ak[2], ak[3]
				a00 += r0 * v0
				a01 += r0 * v1
				a02 += r0 * v2
				a03 += r0 * v3
				a10 += r1 * v0
				a11 += r1 * v1
				a12 += r1 * v2
				a13 += r1 * v3
				a20 += r2 * v0
				a21 += r2 * v1
				a22 += r2 * v2
				a23 += r2 * v3
				a30 += r3 * v0
				a31 += r3 * v1
				a32 += r3 * v2
				a33 += r3 * v3
			}
			// write back: column j of the tile is output column x+j
			p := c0 + y*cl.py
			cd[p] += a00
			cd[p+cl.py] += a10
			cd[p+2*cl.py] += a20
			cd[p+3*cl.py] += a30
			p += cl.px
			cd[p] += a01
			cd[p+cl.py] += a11
			cd[p+2*cl.py] += a21
			cd[p+3*cl.py] += a31
			p += cl.px
			cd[p] += a02
			cd[p+cl.py] += a12
			cd[p+2*cl.py] += a22
			cd[p+3*cl.py] += a32
			p += cl.px
			cd[p] += a03
			cd[p+cl.py] += a13
			cd[p+2*cl.py] += a23
			cd[p+3*cl.py] += a33
		}

		// leftover rows of this 4-column tile
		for ; y < mb; y++ {
			for j, bj := range [tileW]int{b0, b1, b2, b3} {
				var s T
				for k = 0; k < kb; k++ {
					s += ap[k*mb+y] * bd[bj+k*bl.py]
				}
				cd[c0+j*cl.px+y*cl.py] += s
			}
		}
	}

	// leftover columns
	for ; x < x1; x++ {
		bx := bl.base + x*bl.px + k0*bl.py
		cx := cl.base + x*cl.px + y0*cl.py
		for y = 0; y < mb; y++ {
			var s T
			for k = 0; k < kb; k++ {
				s += ap[k*mb+y] * bd[bx+k*bl.py]
			}
			cd[cx+y*cl.py] += s
		}
	}
}
