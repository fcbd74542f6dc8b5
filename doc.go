/*
Package benchkit is a toolkit for wrangling tabular output from common
wet-lab and genomics pipelines.

It ships as a single binary with one subcommand per tool:

  - enrich merges SeqMonk DESeq2 differential-expression results with
    g:Profiler enrichment output, one row per (term, gene) pair.
  - dedupe collapses duplicate TSV rows identified by key fields, merging
    the remaining fields by comma join, sum, mean, min or max.
  - prune drops TSV columns that hold a single repeated value or duplicate
    an earlier column.
  - kasp renders KlusterCaller KASP genotyping plate exports into a
    multi-page PDF of FAM/HEX/ROX scatter plots.

All text filters read stdin or a file argument and write to stdout, so they
compose with the usual shell pipelines.
*/
package benchkit
