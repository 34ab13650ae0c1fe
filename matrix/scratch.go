// SPDX-License-Identifier: MIT

package matrix

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLine is the platform cache-line size as padded by x/sys/cpu.
var cacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// alignedScratch returns an n-element buffer whose first element starts on a
// cache-line boundary. The packed left panel lives here so that every
// k-row of the panel begins on a predictable line.
func alignedScratch[T Scalar](n int) []T {
	var zero T
	esz := int(unsafe.Sizeof(zero))
	pad := cacheLine / esz
	buf := make([]T, n+pad)
	if len(buf) == 0 {
		return buf
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	skip := 0
	if r := int(addr % uintptr(cacheLine)); r != 0 {
		skip = (cacheLine - r) / esz
	}

	return buf[skip : skip+n : skip+n]
}
