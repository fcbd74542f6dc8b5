// Package enrich merges SeqMonk DESeq2 results with g:Profiler enrichment
// output, expanding each enrichment term into one row per intersecting gene.
package enrich

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benchlab/benchkit/internal/tabular"
)

// Defaults used when no flag or config overrides them.
const (
	DefaultDESeq2Key    = "ID"
	DefaultGProfilerKey = "intersections"
)

// Options selects the input files and their gene ID columns.
type Options struct {
	DESeq2Path    string // tab-delimited DESeq2 export from SeqMonk
	GProfilerPath string // comma-delimited g:Profiler export
	DESeq2Key     string // gene ID column in the DESeq2 file
	GProfilerKey  string // gene ID list column in the g:Profiler file
}

// Merge joins the two files and writes the result as TSV to w.
// Each g:Profiler row fans out into one output row per gene ID in its key
// column; every gene ID must resolve to a DESeq2 row.
func Merge(opts Options, w io.Writer) error {
	if opts.DESeq2Key == "" {
		opts.DESeq2Key = DefaultDESeq2Key
	}
	if opts.GProfilerKey == "" {
		opts.GProfilerKey = DefaultGProfilerKey
	}

	genes, geneCols, err := readDESeq2(opts.DESeq2Path, opts.DESeq2Key)
	if err != nil {
		return err
	}

	rows, termCols, err := mergeGProfiler(opts, genes)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	// Output column order: g:Profiler fields, then the gene ID, then the
	// DESeq2 fields.
	columns := make([]string, 0, len(termCols)+1+len(geneCols))
	columns = append(columns, termCols...)
	columns = append(columns, opts.DESeq2Key)
	columns = append(columns, geneCols...)

	return writeTSV(w, columns, rows)
}

// readDESeq2 indexes the DESeq2 file by gene ID. The key column is removed
// from the stored rows; a repeated gene ID keeps the last row seen.
func readDESeq2(path, key string) (map[string]tabular.Row, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening DESeq2 file: %w", err)
	}
	defer file.Close()

	reader, err := tabular.NewReader(file, '\t')
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if !reader.HasColumn(key) {
		return nil, nil, fmt.Errorf("%q column not found in %q", key, path)
	}

	var cols []string
	for _, c := range reader.Columns {
		if c != key {
			cols = append(cols, c)
		}
	}

	genes := make(map[string]tabular.Row)
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %q: %w", path, err)
		}
		id := row[key]
		delete(row, key)
		genes[id] = row
	}
	return genes, cols, nil
}

// mergeGProfiler streams the g:Profiler file and joins each listed gene ID
// against the DESeq2 index.
func mergeGProfiler(opts Options, genes map[string]tabular.Row) ([]tabular.Row, []string, error) {
	file, err := os.Open(opts.GProfilerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening g:Profiler file: %w", err)
	}
	defer file.Close()

	reader, err := tabular.NewReader(file, ',')
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", opts.GProfilerPath, err)
	}
	if !reader.HasColumn(opts.GProfilerKey) {
		return nil, nil, fmt.Errorf("%q column not found in %q", opts.GProfilerKey, opts.GProfilerPath)
	}

	var cols []string
	for _, c := range reader.Columns {
		if c != opts.GProfilerKey {
			cols = append(cols, c)
		}
	}

	var merged []tabular.Row
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %q: %w", opts.GProfilerPath, err)
		}
		ids := row[opts.GProfilerKey]
		delete(row, opts.GProfilerKey)
		for _, id := range strings.Split(ids, ",") {
			gene, ok := genes[id]
			if !ok {
				return nil, nil, fmt.Errorf(
					"%q ID from %q column of %q not found in %q column of %q",
					id, opts.GProfilerKey, opts.GProfilerPath,
					opts.DESeq2Key, opts.DESeq2Path,
				)
			}
			out := make(tabular.Row, len(row)+1+len(gene))
			for k, v := range row {
				out[k] = v
			}
			out[opts.DESeq2Key] = id
			for k, v := range gene {
				out[k] = v
			}
			merged = append(merged, out)
		}
	}
	return merged, cols, nil
}

func writeTSV(w io.Writer, columns []string, rows []tabular.Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(columns); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			record[i] = row[c]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
