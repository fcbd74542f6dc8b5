package enrich

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMerge(t *testing.T) {
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tpval\nENS1\t0.01\nENS2\t0.02\n")
	gprofiler := writeFile(t, "gprofiler.csv", "Term,IDs\nGO1,ENS1\n\"GO2\",\"ENS1,ENS2\"\nGO3,ENS2\n")

	var out bytes.Buffer
	err := Merge(Options{
		DESeq2Path:    deseq2,
		GProfilerPath: gprofiler,
		DESeq2Key:     "ID",
		GProfilerKey:  "IDs",
	}, &out)
	require.NoError(t, err)

	expected := strings.ReplaceAll(`Term ID pval
GO1 ENS1 0.01
GO2 ENS1 0.01
GO2 ENS2 0.02
GO3 ENS2 0.02
`, " ", "\t")
	assert.Equal(t, expected, out.String())
}

func TestMergeDuplicateGeneID(t *testing.T) {
	// A repeated gene ID in the DESeq2 file: the last row wins.
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tpval\nENS1\t0.01\nENS1\t0.05\n")
	gprofiler := writeFile(t, "gprofiler.csv", "Term,IDs\nGO1,ENS1\n")

	var out bytes.Buffer
	err := Merge(Options{
		DESeq2Path:    deseq2,
		GProfilerPath: gprofiler,
		DESeq2Key:     "ID",
		GProfilerKey:  "IDs",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Term\tID\tpval\nGO1\tENS1\t0.05\n", out.String())
}

func TestMergeRaggedDESeq2Row(t *testing.T) {
	// A short DESeq2 row pads its missing trailing columns with blanks.
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tpval\tpadj\nENS1\t0.01\nENS2\t0.02\t0.04\n")
	gprofiler := writeFile(t, "gprofiler.csv", "Term,IDs\nGO1,\"ENS1,ENS2\"\n")

	var out bytes.Buffer
	err := Merge(Options{
		DESeq2Path:    deseq2,
		GProfilerPath: gprofiler,
		DESeq2Key:     "ID",
		GProfilerKey:  "IDs",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Term\tID\tpval\tpadj\nGO1\tENS1\t0.01\t\nGO1\tENS2\t0.02\t0.04\n", out.String())
}

func TestMergeEmptyResult(t *testing.T) {
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tpval\n")
	gprofiler := writeFile(t, "gprofiler.csv", "Term,IDs\n")

	var out bytes.Buffer
	err := Merge(Options{
		DESeq2Path:    deseq2,
		GProfilerPath: gprofiler,
		DESeq2Key:     "ID",
		GProfilerKey:  "IDs",
	}, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestMergeErrors(t *testing.T) {
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tpval\nENS1\t0.01\n")
	gprofiler := writeFile(t, "gprofiler.csv", "Term,IDs\nGO1,\"ENS1,ENS9\"\n")

	t.Run("missing deseq2 file", func(t *testing.T) {
		err := Merge(Options{DESeq2Path: "missing.tsv", GProfilerPath: gprofiler}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening DESeq2 file")
	})

	t.Run("missing gprofiler file", func(t *testing.T) {
		err := Merge(Options{DESeq2Path: deseq2, GProfilerPath: "missing.csv"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening g:Profiler file")
	})

	t.Run("deseq2 key column absent", func(t *testing.T) {
		err := Merge(Options{
			DESeq2Path:    deseq2,
			GProfilerPath: gprofiler,
			DESeq2Key:     "missing",
			GProfilerKey:  "IDs",
		}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"missing" column not found`)
	})

	t.Run("gprofiler key column absent", func(t *testing.T) {
		err := Merge(Options{
			DESeq2Path:    deseq2,
			GProfilerPath: gprofiler,
			DESeq2Key:     "ID",
			GProfilerKey:  "missing",
		}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"missing" column not found`)
	})

	t.Run("gene absent from deseq2", func(t *testing.T) {
		err := Merge(Options{
			DESeq2Path:    deseq2,
			GProfilerPath: gprofiler,
			DESeq2Key:     "ID",
			GProfilerKey:  "IDs",
		}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ENS9"`)
		assert.Contains(t, err.Error(), "not found in")
	})
}

func TestMergeDefaultKeys(t *testing.T) {
	deseq2 := writeFile(t, "deseq2.tsv", "ID\tlog2FC\nENS1\t1.5\n")
	gprofiler := writeFile(t, "gprofiler.csv", "term_name,intersections\nresponse to stress,ENS1\n")

	var out bytes.Buffer
	err := Merge(Options{DESeq2Path: deseq2, GProfilerPath: gprofiler}, &out)
	require.NoError(t, err)
	assert.Equal(t, "term_name\tID\tlog2FC\nresponse to stress\tENS1\t1.5\n", out.String())
}
