package dendrogram_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hclust/dendrogram"
)

// ExampleNode_Cut builds the tree ((A, B) at 1, C) at 3 and cuts it at two
// thresholds.
func ExampleNode_Cut() {
	tree := dendrogram.NewTree[string](5)
	ab := tree.Merge(tree.Leaf("A"), tree.Leaf("B"), 1)
	root := tree.Merge(ab, tree.Leaf("C"), 3)

	for _, cutoff := range []float64{2, 0.5} {
		var groups []string
		for _, c := range root.Cut(cutoff, true) {
			groups = append(groups, fmt.Sprint(c.LeafSlice()))
		}
		fmt.Printf("cut(%g): %s\n", cutoff, strings.Join(groups, " "))
	}
	// Output:
	// cut(2): [A B] [C]
	// cut(0.5): [A] [B] [C]
}

// ExampleWrite shows the indentation format and reads it back.
func ExampleWrite() {
	tree := dendrogram.NewTree[string](5)
	ab := tree.Merge(tree.Leaf("A"), tree.Leaf("B"), 1.5)
	root := tree.Merge(ab, tree.Leaf("C"), 3)

	var sb strings.Builder
	if err := dendrogram.Write(&sb, root, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(sb.String())

	back, err := dendrogram.ReadFrom(strings.NewReader(sb.String()), dendrogram.ParseString)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(back, back.LeafSlice())
	// Output:
	// 3
	//   1.5
	//     A
	//     B
	//   C
	// Merge(h=3, size=3) [A B C]
}

// ExampleNode_Leaves streams leaves lazily and stops early.
func ExampleNode_Leaves() {
	tree := dendrogram.NewTree[int](7)
	left := tree.Merge(tree.Leaf(1), tree.Leaf(2), 0.5)
	right := tree.Merge(tree.Leaf(3), tree.Leaf(4), 0.7)
	root := tree.Merge(left, right, 2)

	for item := range root.Leaves() {
		if item > 2 {
			break
		}
		fmt.Fprintln(os.Stdout, item)
	}
	// Output:
	// 1
	// 2
}
