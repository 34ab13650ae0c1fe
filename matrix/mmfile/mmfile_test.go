// SPDX-License-Identifier: MIT
package mmfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bla/matrix"
	"github.com/katalvlaran/bla/matrix/mmfile"
)

func TestCreateWriteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.bla")

	f, err := mmfile.Create[float64](path, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, path, f.Path())

	v := f.Matrix()
	assert.Equal(t, "0, 0, 0\n0, 0, 0\n", v.String())
	src, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.NoError(t, v.Assign(src.Scale(2)))
	require.NoError(t, f.Flush())
	require.NoError(t, f.Close())
	require.NoError(t, f.Close()) // idempotent

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(16+6*8), info.Size())

	g, err := mmfile.Open[float64](path)
	require.NoError(t, err)
	assert.Equal(t, "2, 4, 6\n8, 10, 12\n", g.Matrix().String())

	// the mapping is a regular view: products can be assigned straight into it
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	p, err := src.Mul(id)
	require.NoError(t, err)
	require.NoError(t, g.Matrix().Assign(p))
	require.NoError(t, g.Close())

	r, err := mmfile.OpenReadOnly[float64](path)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "1, 2, 3\n4, 5, 6\n", r.Matrix().String())
	require.NoError(t, r.Flush())
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	f, err := mmfile.Create[int32](filepath.Join(dir, "i32.bla"), 2, 2)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = mmfile.Open[float64](filepath.Join(dir, "i32.bla"))
	require.ErrorIs(t, err, mmfile.ErrItemSize)

	// float32 shares the element size; only the size is checked
	g, err := mmfile.OpenReadOnly[float32](filepath.Join(dir, "i32.bla"))
	require.NoError(t, err)
	require.NoError(t, g.Close())

	bad := filepath.Join(dir, "bad.bla")
	require.NoError(t, os.WriteFile(bad, bytes.Repeat([]byte{'x'}, 32), 0o644))
	_, err = mmfile.Open[int32](bad)
	require.ErrorIs(t, err, mmfile.ErrBadHeader)

	short := filepath.Join(dir, "short.bla")
	require.NoError(t, os.WriteFile(short, []byte("BLAM"), 0o644))
	_, err = mmfile.Open[int32](short)
	require.ErrorIs(t, err, mmfile.ErrFileSize)

	// header claims 2×2 int32, payload truncated
	raw, err := os.ReadFile(filepath.Join(dir, "i32.bla"))
	require.NoError(t, err)
	trunc := filepath.Join(dir, "trunc.bla")
	require.NoError(t, os.WriteFile(trunc, raw[:len(raw)-4], 0o644))
	_, err = mmfile.Open[int32](trunc)
	require.ErrorIs(t, err, mmfile.ErrFileSize)

	_, err = mmfile.Open[int32](filepath.Join(dir, "missing.bla"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = mmfile.Create[int32](filepath.Join(dir, "zero.bla"), 0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	mmfile.SetLogger(&l)
	defer mmfile.SetLogger(nil)

	f, err := mmfile.Create[int64](filepath.Join(t.TempDir(), "log.bla"), 1, 1)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Contains(t, buf.String(), "mmfile created")
	assert.Contains(t, buf.String(), "mmfile closed")
}
