package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/dtw"
	"github.com/katalvlaran/hclust/matrix"
	"github.com/katalvlaran/hclust/measure"
)

type clusterFlags struct {
	matrixPath string
	pointsPath string
	labelsPath string
	outPath    string
	kind       string
	linkage    string
	measure    string
	window     int
}

func (a *app) newClusterCmd() *cobra.Command {
	var f clusterFlags
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Build a dendrogram from a pairwise matrix or a point file",
		Long: `Build a dendrogram and write it in the indented text format.

Input is either a square matrix (--matrix, values read as --kind) or one
point/series per line (--points) scored with --measure. Leaves are the
labels from --labels, one per line, or the row indices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCluster(cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.matrixPath, "matrix", "", "square pairwise matrix file (\"-\" for stdin)")
	fs.StringVar(&f.pointsPath, "points", "", "file with one vector or series per line")
	fs.StringVar(&f.labelsPath, "labels", "", "file with one leaf label per line")
	fs.StringVarP(&f.outPath, "out", "o", "-", "output tree file (.zst/.lz4 compress)")
	fs.StringVar(&f.kind, "kind", "", "matrix kind: distance or similarity")
	fs.StringVar(&f.linkage, "linkage", "", "single, complete, upgma or wpgma")
	fs.StringVar(&f.measure, "measure", "", "euclidean, manhattan, cosine, pearson or dtw")
	fs.IntVar(&f.window, "dtw-window", -1, "Sakoe-Chiba window for --measure dtw (-1: none)")
	cmd.MarkFlagsMutuallyExclusive("matrix", "points")
	cmd.MarkFlagsOneRequired("matrix", "points")

	return cmd
}

func (a *app) runCluster(cmd *cobra.Command, f clusterFlags) error {
	linkage, err := cluster.ParseLinkage(setting(cmd, "linkage", f.linkage, a.cfg.Linkage))
	if err != nil {
		return err
	}

	var (
		m    *matrix.Dense
		kind cluster.Kind
	)
	if f.matrixPath != "" {
		if kind, err = a.kind(cmd, f.kind); err != nil {
			return err
		}
		if m, err = a.loadMatrix(f.matrixPath); err != nil {
			return err
		}
	} else {
		if m, kind, err = a.measurePoints(cmd, f); err != nil {
			return err
		}
	}

	labels, err := a.loadLabels(f.labelsPath, m.Rows())
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := cluster.New[string](cluster.WithLogger(a.logger)).Cluster(labels, m, kind, linkage)
	if err != nil {
		return err
	}
	a.logger.Info("clustered", "items", len(labels), "linkage", linkage.String(),
		"kind", kind.String(), "height", res.Root.Height(), "elapsed", time.Since(start))

	out, err := createOutput(f.outPath, a.stdout)
	if err != nil {
		return err
	}
	if err := dendrogram.Write(out, res.Root, nil); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func (a *app) loadMatrix(path string) (*matrix.Dense, error) {
	in, err := openInput(path, a.stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	m, err := readMatrix(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// measurePoints reads --points and scores every pair with the chosen measure.
func (a *app) measurePoints(cmd *cobra.Command, f clusterFlags) (*matrix.Dense, cluster.Kind, error) {
	in, err := openInput(f.pointsPath, a.stdin)
	if err != nil {
		return nil, 0, err
	}
	defer in.Close()

	rows, err := readRows(in)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", f.pointsPath, err)
	}

	var (
		ms  cluster.Measure[[]float64]
		vec *measure.Vector
	)
	switch name := setting(cmd, "measure", f.measure, a.cfg.Measure); name {
	case "euclidean":
		vec = measure.Euclidean()
	case "manhattan":
		vec = measure.Manhattan()
	case "cosine":
		vec = measure.Cosine()
	case "pearson":
		vec = measure.Pearson()
	case "dtw":
		opts := dtw.DefaultOptions()
		opts.Window = setting(cmd, "dtw-window", f.window, a.cfg.Window)
		ms = measure.Series{Options: opts, Workers: a.cfg.Workers}
	default:
		return nil, 0, fmt.Errorf("unknown measure %q", name)
	}
	if vec != nil {
		vec.Workers = a.cfg.Workers
		ms = vec
	}

	m, err := ms.CreateMatrix(cmd.Context(), rows)
	if err != nil {
		return nil, 0, err
	}
	a.logger.Debug("matrix built", "items", len(rows), "kind", ms.Kind().String())

	return m, ms.Kind(), nil
}

// loadLabels reads n labels, or returns "0".."n-1" when path is empty.
func (a *app) loadLabels(path string, n int) ([]string, error) {
	if path == "" {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
		return labels, nil
	}

	in, err := openInput(path, a.stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	labels, err := readLabels(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%s: %d labels for %d items: %w", path, len(labels), n, cluster.ErrItemCount)
	}

	return labels, nil
}
