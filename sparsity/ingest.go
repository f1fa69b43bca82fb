// SPDX-License-Identifier: MIT

package sparsity

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	methodFromMatrix        = "FromMatrix"
	methodReadMatrixMarket  = "ReadMatrixMarket"
	methodWriteMatrixMarket = "WriteMatrixMarket"

	mmBanner = "%%MatrixMarket"
)

// FromMatrix extracts the nonzero pattern of a square gonum matrix, row by
// row with ascending columns. Exact zeros are not part of the pattern.
// Complexity: O(N²) At calls.
func FromMatrix(m mat.Matrix, opts ...Option) (*Pattern, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%s: dims %d×%d: %w", methodFromMatrix, r, c, ErrNotSquare)
	}

	rowPtr := make([]int64, r+1)
	colIdx := make([]int64, 0, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				colIdx = append(colIdx, int64(j))
			}
		}
		rowPtr[i+1] = int64(len(colIdx))
	}

	return NewPattern(rowPtr, colIdx, r, opts...)
}

// fromEntries packs coordinates into CSR with a counting pass, sorting
// every row. Entries must lie in [0,n).
func fromEntries(n int, entries []mmEntry, opts ...Option) (*Pattern, error) {
	rowPtr := make([]int64, n+1)
	for _, e := range entries {
		rowPtr[e.i+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}
	colIdx := make([]int64, len(entries))
	next := make([]int64, n)
	copy(next, rowPtr[:n])
	for _, e := range entries {
		colIdx[next[e.i]] = int64(e.j)
		next[e.i]++
	}
	for i := 0; i < n; i++ {
		row := colIdx[rowPtr[i]:rowPtr[i+1]]
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
	}

	return NewPattern(rowPtr, colIdx, n, opts...)
}

// MaxMatrixMarketDim bounds the dimension ReadMatrixMarket accepts; colors
// are int32, so larger patterns could not be colored anyway.
const MaxMatrixMarketDim = math.MaxInt32

// mmEntry is one 0-based (row, col) coordinate.
type mmEntry struct{ i, j int }

// mmHeader is the parsed banner line of a Matrix Market file.
type mmHeader struct {
	field    string // real, integer, complex, pattern
	symmetry string // general, symmetric, skew-symmetric, hermitian
}

// ReadMatrixMarket reads a square coordinate-format Matrix Market stream
// and returns its nonzero pattern. Values are ignored; symmetric,
// skew-symmetric and hermitian files have their off-diagonal entries
// mirrored. Rows come out with ascending columns.
func ReadMatrixMarket(r io.Reader) (*Pattern, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	hdr, err := readMMHeader(sc)
	if err != nil {
		return nil, err
	}

	// size line: first non-comment, non-blank line after the banner
	var rows, cols, nnz int
	for {
		if !sc.Scan() {
			return nil, mmErrorf("missing size line")
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if _, err := fmt.Sscan(line, &rows, &cols, &nnz); err != nil {
			return nil, mmErrorf("size line %q: %v", line, err)
		}
		break
	}
	if rows != cols {
		return nil, fmt.Errorf("%s: dims %d×%d: %w", methodReadMatrixMarket, rows, cols, ErrNotSquare)
	}
	if rows < 0 || nnz < 0 {
		return nil, mmErrorf("negative size %d×%d nnz=%d", rows, cols, nnz)
	}
	if rows > MaxMatrixMarketDim {
		return nil, mmErrorf("dimension %d exceeds %d", rows, MaxMatrixMarketDim)
	}
	if int64(nnz) > int64(rows)*int64(rows) {
		return nil, mmErrorf("nnz=%d exceeds %d×%d", nnz, rows, cols)
	}

	// nothing is sized from the header until the entries are in
	mirror := hdr.symmetry != "general"
	var entries []mmEntry
	seen := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, mmErrorf("entry %d: %q", seen+1, line)
		}
		i, errI := strconv.Atoi(fields[0])
		j, errJ := strconv.Atoi(fields[1])
		if errI != nil || errJ != nil {
			return nil, mmErrorf("entry %d: %q", seen+1, line)
		}
		if i < 1 || i > rows || j < 1 || j > cols {
			return nil, mmErrorf("entry %d: (%d,%d) outside %d×%d", seen+1, i, j, rows, cols)
		}
		i, j = i-1, j-1
		entries = append(entries, mmEntry{i, j})
		if mirror && i != j {
			entries = append(entries, mmEntry{j, i})
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadMatrixMarket, err)
	}
	if seen != nnz {
		return nil, mmErrorf("got %d entries, header declares %d", seen, nnz)
	}

	return fromEntries(rows, entries)
}

func readMMHeader(sc *bufio.Scanner) (mmHeader, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return mmHeader{}, fmt.Errorf("%s: %w", methodReadMatrixMarket, err)
		}
		return mmHeader{}, mmErrorf("empty input")
	}
	fields := strings.Fields(strings.ToLower(sc.Text()))
	if len(fields) != 5 || fields[0] != strings.ToLower(mmBanner) || fields[1] != "matrix" {
		return mmHeader{}, mmErrorf("bad banner %q", sc.Text())
	}
	if fields[2] != "coordinate" {
		return mmHeader{}, mmErrorf("unsupported format %q", fields[2])
	}
	hdr := mmHeader{field: fields[3], symmetry: fields[4]}
	switch hdr.field {
	case "real", "integer", "complex", "pattern":
	default:
		return mmHeader{}, mmErrorf("unsupported field %q", hdr.field)
	}
	switch hdr.symmetry {
	case "general", "symmetric", "skew-symmetric", "hermitian":
	default:
		return mmHeader{}, mmErrorf("unsupported symmetry %q", hdr.symmetry)
	}

	return hdr, nil
}

func mmErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", methodReadMatrixMarket, fmt.Sprintf(format, args...), ErrMalformedMatrixMarket)
}

// WriteMatrixMarket writes p as a "coordinate pattern general" file with
// 1-based indices in CSR order.
func WriteMatrixMarket(w io.Writer, p *Pattern) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s matrix coordinate pattern general\n", mmBanner)
	fmt.Fprintf(bw, "%d %d %d\n", p.N, p.N, p.NNZ())
	for i := 0; i < p.N; i++ {
		for _, c := range p.Row(i) {
			fmt.Fprintf(bw, "%d %d\n", i+1, c+1)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteMatrixMarket, err)
	}

	return nil
}
