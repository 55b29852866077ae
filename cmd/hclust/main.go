// Command hclust clusters pairwise matrices or point files into
// dendrograms and cuts or samples saved dendrograms.
//
// Usage:
//
//	hclust cluster --matrix dist.txt --labels names.txt --linkage complete --out tree.txt.zst
//	hclust cluster --points series.csv --measure dtw --out tree.txt
//	hclust cut --tree tree.txt.zst --cutoff 2.5
//	hclust sample --tree tree.txt --cutoff 2.5 --seed 7
//
// Tree and input files ending in .zst or .lz4 are (de)compressed on the fly.
// Defaults come from --config (YAML) and are overridden by explicit flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "hclust:", err)
		stop()
		os.Exit(1)
	}
}
