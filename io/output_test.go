package io

import (
	"bytes"
	"encoding/binary"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFile(t *testing.T) {
	xs := []float64{0, 0.5, 1, 1.5}
	ys := []float64{1, 2, 4, 8}
	info := NewTableInfo("cspline-natural", len(xs), 0, 1.5)

	fname := path.Join(t.TempDir(), "approx.tab")
	require.NoError(t, WriteTableFile(fname, info, xs, ys))

	hd, rxs, rys, err := ReadTableFile(fname)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), hd.Type.Endianness)
	assert.Equal(t, int64(8), hd.Type.ValueSize)
	assert.Equal(t, "cspline-natural", hd.Table.StrategyName())
	assert.Equal(t, 1.5, hd.Table.Hi)
	assert.Equal(t, xs, rxs)
	assert.Equal(t, ys, rys)
}

func TestStrategyNameClipped(t *testing.T) {
	long := "polynomial-Neville's-with-a-much-longer-name"
	info := NewTableInfo(long, 0, 0, 0)
	assert.Equal(t, long[:32], info.StrategyName())
}

func TestWriteTableMismatch(t *testing.T) {
	buf := &bytes.Buffer{}
	info := NewTableInfo("linear", 3, 0, 1)
	assert.Error(t, WriteTable(buf, info, []float64{0, 1}, []float64{0, 1}))
	assert.Error(t, WriteTable(buf, info, []float64{0, 1, 2}, []float64{0, 1}))
}

func TestReadTableErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, binary.Write(buf, binary.LittleEndian, int64(7)))
	_, _, _, err := ReadTable(buf)
	assert.Error(t, err, "bad endianness flag")

	buf.Reset()
	require.NoError(t, binary.Write(buf, binary.LittleEndian, []int64{-1, 12}))
	_, _, _, err = ReadTable(buf)
	assert.Error(t, err, "bad header size")

	buf.Reset()
	info := NewTableInfo("linear", 2, 0, 1)
	require.NoError(t, WriteTable(buf, info, []float64{0, 1}, []float64{0, 1}))
	short := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	_, _, _, err = ReadTable(short)
	assert.Error(t, err, "truncated values")
}

func TestReadTableHugeCount(t *testing.T) {
	buf := &bytes.Buffer{}
	info := NewTableInfo("linear", 2, 0, 1)
	require.NoError(t, WriteTable(buf, info, []float64{0, 1}, []float64{0, 1}))

	// Overwrite the point count with a value no file could hold.
	raw := buf.Bytes()
	countOffset := 3*8 + 32
	binary.LittleEndian.PutUint64(raw[countOffset:], 1<<60)

	_, _, _, err := ReadTable(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestReadTableChunks(t *testing.T) {
	n := 3*readChunk + 7
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = float64(i), float64(2*i)
	}
	buf := &bytes.Buffer{}
	require.NoError(t, WriteTable(buf, NewTableInfo("linear", n, 0, xs[n-1]), xs, ys))

	_, rxs, rys, err := ReadTable(buf)
	require.NoError(t, err)
	assert.Equal(t, xs, rxs)
	assert.Equal(t, ys, rys)
}
