package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/cluster"
)

const abcMatrix = "0 1 4\n1 0 3\n4 3 0\n"

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestClusterToStdout(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "m.txt", abcMatrix)
	labels := writeFile(t, dir, "labels.txt", "A\nB\nC\n")

	out, _, err := execute(t, "", "cluster", "--matrix", m, "--labels", labels)
	require.NoError(t, err)
	assert.Equal(t, "3\n  1\n    A\n    B\n  C\n", out)

	// Matrix from stdin, indices as labels.
	out, _, err = execute(t, abcMatrix, "cluster", "--matrix", "-", "--linkage", "complete")
	require.NoError(t, err)
	assert.Equal(t, "4\n  1\n    0\n    1\n  2\n", out)
}

func TestClusterCutSamplePipeline(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "m.txt", abcMatrix)
	labels := writeFile(t, dir, "labels.txt", "A\nB\nC\n")

	for _, ext := range []string{".txt", ".txt.zst", ".txt.lz4"} {
		tree := filepath.Join(dir, "tree"+ext)
		_, _, err := execute(t, "", "cluster", "--matrix", m, "--labels", labels, "--out", tree)
		require.NoError(t, err)

		out, _, err := execute(t, "", "cut", "--tree", tree, "--cutoff", "2")
		require.NoError(t, err)
		assert.Equal(t, "1\t2\tA B\n2\t1\tC\n", out, ext)

		out, _, err = execute(t, "", "cut", "--tree", tree, "--cutoff", "0.5")
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "\n"), ext)

		out, _, err = execute(t, "", "sample", "--tree", tree, "--cutoff", "2", "--seed", "3")
		require.NoError(t, err)
		picks := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, picks, 2)
		assert.Contains(t, []string{"A", "B"}, picks[0])
		assert.Equal(t, "C", picks[1])

		again, _, err := execute(t, "", "sample", "--tree", tree, "--cutoff", "2", "--seed", "3", "--uniform")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(again), "\n"), 2)
	}
}

func TestConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "tree.txt", "3\n  1\n    A\n    B\n  C\n")
	cfg := writeFile(t, dir, "hclust.yaml", "cutoff: 2\n")

	out, _, err := execute(t, "", "--config", cfg, "cut", "--tree", tree)
	require.NoError(t, err)
	assert.Equal(t, "1\t2\tA B\n2\t1\tC\n", out)

	// An explicit flag beats the file.
	out, _, err = execute(t, "", "--config", cfg, "cut", "--tree", tree, "--cutoff", "5")
	require.NoError(t, err)
	assert.Equal(t, "1\t3\tA B C\n", out)

	bad := writeFile(t, dir, "bad.yaml", "kind: angle\n")
	_, _, err = execute(t, "", "--config", bad, "cut", "--tree", tree)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClusterPoints(t *testing.T) {
	dir := t.TempDir()
	points := writeFile(t, dir, "p.txt", "0 0\n0 1\n10 10\n")

	out, _, err := execute(t, "", "cluster", "--points", points, "--measure", "euclidean")
	require.NoError(t, err)
	assert.Equal(t, "13.4536\n  1\n    0\n    1\n  2\n", out)

	series := writeFile(t, dir, "s.txt", "0 1 2\n0 0 1 2\n2 1 0\n")
	out, _, err = execute(t, "", "cluster", "--points", series, "--measure", "dtw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4\n  0\n    0\n    1\n"), out)
}

func TestClusterErrors(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "m.txt", abcMatrix)

	_, _, err := execute(t, "", "cluster")
	assert.Error(t, err, "neither --matrix nor --points")

	_, _, err = execute(t, "", "cluster", "--matrix", m, "--points", m)
	assert.Error(t, err, "both --matrix and --points")

	_, _, err = execute(t, "", "cluster", "--matrix", m, "--linkage", "ward")
	assert.ErrorIs(t, err, cluster.ErrUnknownLinkage)

	_, _, err = execute(t, "", "cluster", "--matrix", m, "--kind", "angle")
	assert.ErrorIs(t, err, cluster.ErrUnknownKind)

	labels := writeFile(t, dir, "labels.txt", "A\nB\n")
	_, _, err = execute(t, "", "cluster", "--matrix", m, "--labels", labels)
	assert.ErrorIs(t, err, cluster.ErrItemCount)
}

func TestDebugLogging(t *testing.T) {
	m := writeFile(t, t.TempDir(), "m.txt", abcMatrix)

	_, stderr, err := execute(t, "", "--log-level", "debug", "cluster", "--matrix", m)
	require.NoError(t, err)
	assert.Contains(t, stderr, "cluster: done")
	assert.Contains(t, stderr, "merges=2")

	_, stderr, err = execute(t, "", "cluster", "--matrix", m)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
