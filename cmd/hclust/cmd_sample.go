package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hclust/dendrogram"
)

func (a *app) newSampleCmd() *cobra.Command {
	var (
		f       treeFlags
		seed    uint64
		uniform bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick one random representative per cluster",
		Long: `Cut a dendrogram at --cutoff and print one random member of each cluster.

By default every merge is a fair coin flip, so an item close to the top of a
cluster is picked more often; --uniform draws uniformly over the members.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clusters, err := a.cutTree(cmd, f)
			if err != nil {
				return err
			}
			rng := dendrogram.NewRand(setting(cmd, "seed", seed, a.cfg.Seed))
			r := newRenderer(cmd.OutOrStdout())
			for _, c := range clusters {
				var pick string
				if uniform {
					pick = c.UniformLeaf(rng)
				} else {
					pick = c.RandomRepresentative(rng)
				}
				if err := r.line(pick); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "draw uniformly over members instead of per branch")

	return cmd
}
