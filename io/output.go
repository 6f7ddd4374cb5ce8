package io

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"
)

var end = binary.LittleEndian

/*
The binary format used for tabulated approximations is as follows:
    |-- 1 --||-- ... 2 ... --||-- ... 3 ... --||-- ... 4 ... --|

    1 - (TypeInfo) Endianness flag, header size and value type.
    2 - (TableInfo) Strategy name, point count and domain of the table.
    3 - ([]float64) Contiguous block of x values.
    4 - ([]float64) Contiguous block of y values.
*/
type TableHeader struct {
	Type  TypeInfo
	Table TableInfo
}

type TypeInfo struct {
	Endianness int64
	HeaderSize int64
	ValueSize  int64
}

type TableInfo struct {
	Strategy [32]byte
	Points   int64
	Lo, Hi   float64
}

// NewTableInfo describes a table of the given size, clipping strategy names
// longer than the header allows.
func NewTableInfo(strategy string, points int, lo, hi float64) TableInfo {
	ti := TableInfo{Points: int64(points), Lo: lo, Hi: hi}
	copy(ti.Strategy[:], strategy)
	return ti
}

// StrategyName returns the strategy name stored in the header.
func (ti *TableInfo) StrategyName() string {
	n := 0
	for n < len(ti.Strategy) && ti.Strategy[n] != 0 {
		n++
	}
	return string(ti.Strategy[:n])
}

// WriteTable writes a header followed by xs and ys.
func WriteTable(wr io.Writer, info TableInfo, xs, ys []float64) error {
	if len(xs) != len(ys) || int64(len(xs)) != info.Points {
		return fmt.Errorf("Header count %d does not match xs length, %d, "+
			"and ys length, %d.", info.Points, len(xs), len(ys))
	}

	var endFlag int64
	if end == binary.LittleEndian {
		endFlag = -1
	} else {
		endFlag = 0
	}

	hd := TableHeader{}
	hd.Type.Endianness = endFlag
	hd.Type.HeaderSize = int64(unsafe.Sizeof(hd))
	hd.Type.ValueSize = int64(unsafe.Sizeof(float64(0)))
	hd.Table = info

	if err := binary.Write(wr, end, &hd); err != nil {
		return err
	}
	if err := binary.Write(wr, end, xs); err != nil {
		return err
	}
	return binary.Write(wr, end, ys)
}

// ReadTable reads a table written by WriteTable.
func ReadTable(rd io.Reader) (*TableHeader, []float64, []float64, error) {
	hd := &TableHeader{}

	var endFlag int64
	// The flag reads the same in either order.
	if err := binary.Read(rd, binary.LittleEndian, &endFlag); err != nil {
		return nil, nil, nil, err
	}
	order, err := endianness(endFlag)
	if err != nil {
		return nil, nil, nil, err
	}

	hd.Type.Endianness = endFlag
	if err := binary.Read(rd, order, &hd.Type.HeaderSize); err != nil {
		return nil, nil, nil, err
	}
	if hd.Type.HeaderSize != int64(unsafe.Sizeof(*hd)) {
		return nil, nil, nil, fmt.Errorf(
			"Expected TableHeader size of %d, found %d.",
			unsafe.Sizeof(*hd), hd.Type.HeaderSize,
		)
	}
	if err := binary.Read(rd, order, &hd.Type.ValueSize); err != nil {
		return nil, nil, nil, err
	}
	if err := binary.Read(rd, order, &hd.Table); err != nil {
		return nil, nil, nil, err
	}
	if hd.Table.Points < 0 {
		return nil, nil, nil, fmt.Errorf(
			"Table header has negative point count, %d.", hd.Table.Points,
		)
	}

	xs, err := readValues(rd, order, hd.Table.Points)
	if err != nil {
		return nil, nil, nil, err
	}
	ys, err := readValues(rd, order, hd.Table.Points)
	if err != nil {
		return nil, nil, nil, err
	}
	return hd, xs, ys, nil
}

// readChunk is the number of values read at a time, so a corrupt count
// can't allocate more than the input actually holds.
const readChunk = 1 << 12

func readValues(rd io.Reader, order binary.ByteOrder, n int64) ([]float64, error) {
	out := make([]float64, 0, min(n, readChunk))
	buf := make([]float64, min(n, readChunk))
	for remaining := n; remaining > 0; {
		k := min(remaining, readChunk)
		if err := binary.Read(rd, order, buf[:k]); err != nil {
			return nil, err
		}
		out = append(out, buf[:k]...)
		remaining -= k
	}
	return out, nil
}

// WriteTableFile writes a table to the named file.
func WriteTableFile(file string, info TableInfo, xs, ys []float64) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := WriteTable(f, info, xs, ys); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTableFile reads a table from the named file.
func ReadTableFile(file string) (*TableHeader, []float64, []float64, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

func endianness(flag int64) (binary.ByteOrder, error) {
	if flag == 0 {
		return binary.BigEndian, nil
	} else if flag == -1 {
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("Unrecognized endianness flag, %d.", flag)
}
