// Package dedupe collapses duplicate rows of a tab-delimited file.
//
// Rows are considered duplicates when they share the values of one or more
// key fields. Non-key fields of a duplicate group are merged by comma
// joining (collapsed to a single value when identical), or numerically by
// sum, mean, min or max when configured per field.
package dedupe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benchlab/benchkit/internal/tabular"
)

// Op is a numeric merge operation applied to one field of a duplicate group.
type Op int

const (
	OpJoin Op = iota // default comma join / collapse
	OpSum
	OpMean
	OpMin
	OpMax
)

// Options configures a merge run. Field numbers are 1-based.
type Options struct {
	Keys   []int // fields forming the duplicate key
	Sums   []int
	Means  []int
	Mins   []int
	Maxs   []int
	Header bool // first line is a header, passed through untouched
}

// Validate rejects contradictory field assignments.
func (o Options) Validate() error {
	keys := toSet(o.Keys)
	for name, fields := range map[string][]int{
		"sum": o.Sums, "mean": o.Means, "min": o.Mins, "max": o.Maxs,
	} {
		for _, f := range fields {
			if keys[f] {
				return fmt.Errorf("cannot specify 'key' and '%s' for same field", name)
			}
		}
	}
	all := len(o.Sums) + len(o.Means) + len(o.Mins) + len(o.Maxs)
	merged := toSet(o.Sums)
	for _, f := range o.Means {
		merged[f] = true
	}
	for _, f := range o.Mins {
		merged[f] = true
	}
	for _, f := range o.Maxs {
		merged[f] = true
	}
	if all != len(merged) {
		return fmt.Errorf("fields cannot have more than one operation applied (sum, mean, etc...)")
	}
	return nil
}

// ops maps each 1-based field to its configured operation.
func (o Options) ops() map[int]Op {
	m := make(map[int]Op)
	for _, f := range o.Sums {
		m[f] = OpSum
	}
	for _, f := range o.Means {
		m[f] = OpMean
	}
	for _, f := range o.Mins {
		m[f] = OpMin
	}
	for _, f := range o.Maxs {
		m[f] = OpMax
	}
	return m
}

// Merge reads tab-delimited lines from r and writes the merged result to w.
// First-seen order of duplicate groups is preserved.
func Merge(r io.Reader, w io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	if opts.Header {
		header, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if header != "" {
			if _, err := fmt.Fprintln(bw, strings.TrimRight(header, " \t\r\n")); err != nil {
				return err
			}
		}
	}

	groups, order, err := groupByKey(br, opts.Keys)
	if err != nil {
		return err
	}

	ops := opts.ops()
	keys := toSet(opts.Keys)
	for _, key := range order {
		rows := groups[key]
		if len(rows) == 1 {
			if _, err := fmt.Fprintln(bw, strings.Join(rows[0], "\t")); err != nil {
				return err
			}
			continue
		}
		merged, err := mergeGroup(rows, keys, ops)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, strings.Join(merged, "\t")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// groupByKey buckets all lines by the tab-join of their key fields.
func groupByKey(r io.Reader, keyFields []int) (map[string][][]string, []string, error) {
	groups := make(map[string][][]string)
	var order []string
	err := tabular.Lines(r, func(line string) error {
		fields := tabular.SplitLine(line)
		parts := make([]string, 0, len(keyFields))
		for _, k := range keyFields {
			if k-1 < len(fields) {
				parts = append(parts, fields[k-1])
			} else {
				parts = append(parts, "")
			}
		}
		key := strings.Join(parts, "\t")
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], fields)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return groups, order, nil
}

// mergeGroup collapses a duplicate group into a single row. Field widths
// follow the first row of the group.
func mergeGroup(rows [][]string, keys map[int]bool, ops map[int]Op) ([]string, error) {
	out := make([]string, 0, len(rows[0]))
	for i := range rows[0] {
		field := i + 1
		switch {
		case keys[field]:
			out = append(out, rows[0][i])
		case ops[field] != OpJoin:
			val, err := reduce(rows, i, ops[field])
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		default:
			out = append(out, joinValues(rows, i))
		}
	}
	return out, nil
}

// joinValues merges a plain field: a single repeated value collapses,
// anything else becomes the comma join of all non-empty values.
func joinValues(rows [][]string, i int) string {
	var values []string
	for _, row := range rows {
		if i < len(row) && row[i] != "" {
			values = append(values, row[i])
		}
	}
	distinct := make(map[string]bool, len(values))
	for _, v := range values {
		distinct[v] = true
	}
	if len(distinct) == 1 {
		return values[0]
	}
	return strings.Join(values, ",")
}

// reduce applies a numeric operation over the non-empty values of field i.
func reduce(rows [][]string, i int, op Op) (string, error) {
	var values []float64
	for _, row := range rows {
		if i >= len(row) || row[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return "", fmt.Errorf("field %d is not numeric (%q)", i+1, row[i])
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return "", nil
	}

	var result float64
	switch op {
	case OpSum, OpMean:
		for _, v := range values {
			result += v
		}
		if op == OpMean {
			result /= float64(len(values))
		}
	case OpMin:
		result = values[0]
		for _, v := range values[1:] {
			if v < result {
				result = v
			}
		}
	case OpMax:
		result = values[0]
		for _, v := range values[1:] {
			if v > result {
				result = v
			}
		}
	}
	return formatNumber(result), nil
}

// formatNumber drops the decimal point for integral results, so summing
// integer columns keeps them integers.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func toSet(fields []int) map[int]bool {
	set := make(map[int]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
