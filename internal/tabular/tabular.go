// Package tabular provides the shared plumbing for benchkit's delimited-text
// filters: header-aware record readers, raw tab-delimited line handling, and
// pipe-friendly output helpers.
package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
)

// Row is a single record keyed by column name.
type Row map[string]string

// Reader reads delimited records with a leading header line and yields
// name-keyed rows. Columns preserves the header order, which Go maps lose.
type Reader struct {
	Columns []string

	cr *csv.Reader
}

// NewReader consumes the header line of r. comma selects the delimiter
// ('\t' for TSV, ',' for CSV).
func NewReader(r io.Reader, comma rune) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	// Tolerate ragged rows: short rows leave their trailing columns unset
	// and surplus fields are dropped, as in Next.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return &Reader{cr: cr}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return &Reader{Columns: header, cr: cr}, nil
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Row, error) {
	record, err := r.cr.Read()
	if err != nil {
		return nil, err
	}
	row := make(Row, len(record))
	for i, field := range record {
		if i < len(r.Columns) {
			row[r.Columns[i]] = field
		}
	}
	return row, nil
}

// HasColumn reports whether the header contains name.
func (r *Reader) HasColumn(name string) bool {
	for _, c := range r.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// SplitLine strips trailing whitespace and splits a raw line on tabs.
// Matches the behaviour of the classic rstrip-then-split pipeline idiom,
// so fully empty trailing fields are dropped.
func SplitLine(line string) []string {
	return strings.Split(strings.TrimRight(line, " \t\r\n"), "\t")
}

// OpenInput opens path for reading, mapping "" and "-" to Stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// IsBrokenPipe reports whether err came from writing into a closed pipe,
// e.g. `benchkit prune big.tsv | head`.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// Lines iterates raw lines of r, invoking fn with each line minus its
// terminator. It stops on the first error fn returns.
func Lines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
