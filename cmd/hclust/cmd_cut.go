package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/dendrogram"
)

type treeFlags struct {
	treePath string
	kind     string
	cutoff   float64
}

func (f *treeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.treePath, "tree", "-", "tree file written by \"hclust cluster\" (.zst/.lz4 decompress)")
	fs.StringVar(&f.kind, "kind", "", "how heights were produced: distance or similarity")
	fs.Float64Var(&f.cutoff, "cutoff", 0, "cut height (inclusive)")
}

// cutTree loads the tree and cuts it with the resolved kind and cutoff.
func (a *app) cutTree(cmd *cobra.Command, f treeFlags) ([]dendrogram.Node[string], error) {
	kind, err := a.kind(cmd, f.kind)
	if err != nil {
		return nil, err
	}
	cutoff := setting(cmd, "cutoff", f.cutoff, a.cfg.Cutoff)

	in, err := openInput(f.treePath, a.stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	root, err := dendrogram.ReadFrom(in, dendrogram.ParseString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.treePath, err)
	}
	clusters := root.Cut(cutoff, kind.IsDistance())
	a.logger.Debug("cut", "leaves", root.Size(), "cutoff", cutoff, "kind", kind.String(), "clusters", len(clusters))

	return clusters, nil
}

func (a *app) newCutCmd() *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Cut a dendrogram and list the resulting clusters",
		Long: `Cut a dendrogram at --cutoff and print one cluster per line as
"<index> <size> <members>". Items merged exactly at the cutoff stay together.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clusters, err := a.cutTree(cmd, f)
			if err != nil {
				return err
			}
			r := newRenderer(cmd.OutOrStdout())
			for i, c := range clusters {
				if err := r.cluster(i+1, c.LeafSlice()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.register(cmd)

	return cmd
}
