package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/hclust/matrix"
)

// ErrNoRows is returned for a numeric file without any data rows.
var ErrNoRows = errors.New("hclust: file has no data rows")

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// closers runs close functions in order and joins their errors.
type closers []func() error

func (cs closers) Close() error {
	var errs []error
	for _, c := range cs {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// readCloser closes a decoder before the underlying file.
type readCloser struct {
	io.Reader
	closers
}

// writeCloser flushes and closes an encoder before the underlying file.
type writeCloser struct {
	io.Writer
	closers
}

// openInput opens path for reading, decompressing ".zst" (zstd) and ".lz4"
// files transparently. "-" reads stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &readCloser{Reader: dec, closers: closers{
			func() error { dec.Close(); return nil },
			f.Close,
		}}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), closers: closers{f.Close}}, nil
	default:
		return f, nil
	}
}

// createOutput creates path for writing, compressing by extension like
// openInput. "-" writes to stdout, which is never closed.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == stdio || path == "" {
		return &writeCloser{Writer: stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &writeCloser{Writer: enc, closers: closers{enc.Close, f.Close}}, nil
	case ".lz4":
		enc := lz4.NewWriter(f)
		return &writeCloser{Writer: enc, closers: closers{enc.Close, f.Close}}, nil
	default:
		return &writeCloser{Writer: f, closers: closers{f.Close}}, nil
	}
}

// readRows parses one row of numbers per line, separated by whitespace
// and/or commas. Blank lines and lines starting with '#' are skipped. Rows
// may differ in length; callers that need a rectangle check it.
func readRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// readMatrix parses a square pairwise matrix. +Inf ("never merge") is
// accepted; NaN and -Inf are not.
func readMatrix(r io.Reader) (*matrix.Dense, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(rows, matrix.WithAllowInf())
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}

	return m, nil
}

// readLabels returns one trimmed, non-empty label per line.
func readLabels(r io.Reader) ([]string, error) {
	var labels []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			labels = append(labels, l)
		}
	}

	return labels, sc.Err()
}
