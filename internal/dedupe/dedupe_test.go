package dedupe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tsv turns space-separated literals into tab-separated input.
func tsv(s string) string {
	return strings.ReplaceAll(s, " ", "\t")
}

func runMerge(t *testing.T, input string, opts Options) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Merge(strings.NewReader(input), &out, opts))
	return out.String()
}

func TestMerge(t *testing.T) {
	input := tsv("a b 1 2 3 4\na b 5 6 7 8\na c 1 2 3 4\n")

	t.Run("no keys merges everything", func(t *testing.T) {
		out := runMerge(t, input, Options{})
		assert.Equal(t, tsv("a b,b,c 1,5,1 2,6,2 3,7,3 4,8,4\n"), out)
	})

	t.Run("key on first two columns", func(t *testing.T) {
		out := runMerge(t, input, Options{Keys: []int{1, 2}})
		assert.Equal(t, tsv("a b 1,5 2,6 3,7 4,8\na c 1 2 3 4\n"), out)
	})

	t.Run("key on first and sixth columns", func(t *testing.T) {
		out := runMerge(t, input, Options{Keys: []int{1, 6}})
		assert.Equal(t, tsv("a b,c 1 2 3 4\na b 5 6 7 8\n"), out)
	})

	t.Run("sum and mean without floats", func(t *testing.T) {
		out := runMerge(t, input, Options{Keys: []int{1, 2}, Sums: []int{3, 4}, Means: []int{5, 6}})
		assert.Equal(t, tsv("a b 6 8 5 6\na c 1 2 3 4\n"), out)
	})

	t.Run("non-numeric field cannot be summed", func(t *testing.T) {
		err := Merge(strings.NewReader(input), &bytes.Buffer{}, Options{Keys: []int{1}, Sums: []int{2}})
		require.Error(t, err)
		assert.EqualError(t, err, `field 2 is not numeric ("b")`)
	})
}

func TestMergeFloats(t *testing.T) {
	input := tsv("a b 1.5 2 3 4\na b 5.5 6.5 8 8\na c 1.5 2 3 4.5\n")
	out := runMerge(t, input, Options{Keys: []int{1, 2}, Sums: []int{3, 4}, Means: []int{5, 6}})
	assert.Equal(t, tsv("a b 7 8.5 5.5 6\na c 1.5 2 3 4.5\n"), out)
}

func TestMergeMinMax(t *testing.T) {
	input := tsv("a b 1 9\na b 5 2\na b 3 4\n")
	out := runMerge(t, input, Options{Keys: []int{1, 2}, Mins: []int{3}, Maxs: []int{4}})
	assert.Equal(t, tsv("a b 1 9\n"), out)
}

func TestMergeEmptyFields(t *testing.T) {
	t.Run("column fully empty", func(t *testing.T) {
		input := tsv("a b 1 2  4\na b 5 6  8\na c 1 2  4\n")
		out := runMerge(t, input, Options{Keys: []int{1, 2}})
		assert.Equal(t, tsv("a b 1,5 2,6  4,8\na c 1 2  4\n"), out)
	})

	t.Run("column partially empty", func(t *testing.T) {
		input := tsv("a b 1 2  4\na b 5 6 7 8\na c 1 2  4\n")
		out := runMerge(t, input, Options{Keys: []int{1, 2}})
		assert.Equal(t, tsv("a b 1,5 2,6 7 4,8\na c 1 2  4\n"), out)
	})
}

func TestMergeHeader(t *testing.T) {
	input := tsv("x y n\na b 1\na b 2\n")
	out := runMerge(t, input, Options{Keys: []int{1, 2}, Sums: []int{3}, Header: true})
	assert.Equal(t, tsv("x y n\na b 3\n"), out)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Keys: []int{1}, Sums: []int{2}, Means: []int{3}}.Validate())

	err := Options{Keys: []int{1}, Sums: []int{1}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot specify 'key' and 'sum'")

	err = Options{Keys: []int{1}, Sums: []int{2}, Means: []int{2}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one operation")
}
