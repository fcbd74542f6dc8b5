// Package prune removes superfluous columns from a tab-delimited file.
//
// A column is superfluous when every cell holds the same value, or when it
// is identical to an earlier column. The whole file is held in memory.
package prune

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/benchlab/benchkit/internal/tabular"
)

// MaxReportedValues caps how many distinct values a removal report lists.
const MaxReportedValues = 5

// Options configures a prune run.
type Options struct {
	NoHeader bool // input has no header line
}

// RemovedColumn describes one column dropped from the output.
type RemovedColumn struct {
	Index  int      // 1-based position in the original file
	Name   string   // header name, empty without a header
	Values []string // up to MaxReportedValues distinct values, sorted
	More   bool     // the column held further distinct values
}

// Remove reads the tab-delimited input, drops superfluous columns and writes
// the surviving columns to w in their original order. It returns one report
// entry per removed column, in ascending column order.
func Remove(r io.Reader, w io.Writer, opts Options) ([]RemovedColumn, error) {
	br := bufio.NewReader(r)

	var header []string
	if !opts.NoHeader {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		header = tabular.SplitLine(line)
	}

	cols, err := readColumns(br)
	if err != nil {
		return nil, err
	}

	drop := singleValueColumns(cols)
	duplicateColumns(cols, drop)

	report := buildReport(cols, header, drop)
	kept := removeColumns(cols, header, drop)

	if err := writeColumns(w, kept.cols, kept.header); err != nil {
		return nil, err
	}
	return report, nil
}

// readColumns transposes the input into a slice of columns. Short rows are
// padded so every column stays the same height.
func readColumns(r io.Reader) ([][]string, error) {
	var cols [][]string
	err := tabular.Lines(r, func(line string) error {
		fields := tabular.SplitLine(line)
		if cols == nil {
			cols = make([][]string, len(fields))
		}
		for i := range cols {
			if i < len(fields) {
				cols[i] = append(cols[i], fields[i])
			} else {
				cols[i] = append(cols[i], "")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cols, nil
}

// singleValueColumns flags columns holding one repeated value.
func singleValueColumns(cols [][]string) map[int]bool {
	drop := make(map[int]bool)
	for i, col := range cols {
		if len(col) == 0 {
			continue
		}
		single := true
		for _, v := range col[1:] {
			if v != col[0] {
				single = false
				break
			}
		}
		if single {
			drop[i] = true
		}
	}
	return drop
}

// duplicateColumns flags columns identical to an earlier column.
func duplicateColumns(cols [][]string, drop map[int]bool) {
	for i, col1 := range cols {
		for j := i + 1; j < len(cols); j++ {
			if slices.Equal(col1, cols[j]) {
				drop[j] = true
			}
		}
	}
}

func buildReport(cols [][]string, header []string, drop map[int]bool) []RemovedColumn {
	indexes := make([]int, 0, len(drop))
	for i := range drop {
		indexes = append(indexes, i)
	}
	slices.Sort(indexes)

	report := make([]RemovedColumn, 0, len(indexes))
	for _, i := range indexes {
		removed := RemovedColumn{Index: i + 1}
		if i < len(header) {
			removed.Name = header[i]
		}
		distinct := make(map[string]bool)
		for _, v := range cols[i] {
			distinct[v] = true
		}
		values := make([]string, 0, len(distinct))
		for v := range distinct {
			values = append(values, v)
		}
		slices.Sort(values)
		if len(values) > MaxReportedValues {
			removed.Values = values[:MaxReportedValues]
			removed.More = true
		} else {
			removed.Values = values
		}
		report = append(report, removed)
	}
	return report
}

type keptColumns struct {
	cols   [][]string
	header []string
}

func removeColumns(cols [][]string, header []string, drop map[int]bool) keptColumns {
	var kept keptColumns
	for i, col := range cols {
		if drop[i] {
			continue
		}
		kept.cols = append(kept.cols, col)
		if i < len(header) {
			kept.header = append(kept.header, header[i])
		}
	}
	// Header cells beyond the data width are never superfluous; keep them.
	if len(header) > len(cols) {
		kept.header = append(kept.header, header[len(cols):]...)
	}
	return kept
}

func writeColumns(w io.Writer, cols [][]string, header []string) error {
	bw := bufio.NewWriter(w)
	if len(header) > 0 {
		if _, err := fmt.Fprintln(bw, strings.Join(header, "\t")); err != nil {
			return err
		}
	}
	if len(cols) > 0 {
		row := make([]string, len(cols))
		for i := range cols[0] {
			for j, col := range cols {
				row[j] = col[i]
			}
			if _, err := fmt.Fprintln(bw, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
