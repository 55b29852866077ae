package dendrogram

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Indent is the per-level indentation written by Write.
// Read accepts any number of spaces per level as long as it is consistent
// within each merge.
const Indent = "  "

// heightDigits is the number of significant digits used for merge heights.
const heightDigits = 6

// FormatHeight renders h with 6 significant digits and a '.' decimal point,
// independent of any locale.
func FormatHeight(h float64) string {
	return strconv.FormatFloat(h, 'g', heightDigits, 64)
}

// Write serializes the subtree rooted at root, one node per line.
//
// Line layout: <indent><content>\n, where a merge's content is its height
// (FormatHeight) followed by the left subtree and then the right subtree,
// each one level deeper. A leaf's content is fmt.Sprint(item), suffixed with
// " (annotation)" when annotate is non-nil and reports ok.
//
// Complexity: O(size) time, O(depth) memory.
func Write[C any](w io.Writer, root Node[C], annotate func(C) (string, bool)) error {
	type frame struct {
		id    NodeID
		depth int
	}

	nodes := root.arena()
	bw := bufio.NewWriter(w)
	stack := []frame{{id: root.id}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := 0; i < f.depth; i++ {
			bw.WriteString(Indent)
		}
		s := &nodes[f.id]
		if s.left != NoNode {
			bw.WriteString(FormatHeight(s.height))
			bw.WriteByte('\n')
			stack = append(stack, frame{s.right, f.depth + 1}, frame{s.left, f.depth + 1})
			continue
		}

		bw.WriteString(fmt.Sprint(s.item))
		if annotate != nil {
			if note, ok := annotate(s.item); ok {
				bw.WriteString(" (")
				bw.WriteString(note)
				bw.WriteByte(')')
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("dendrogram: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dendrogram: write: %w", err)
	}

	return nil
}

// ReadFrom reads all lines from r and parses them with Read.
func ReadFrom[C any](r io.Reader, parseLeaf func(string) (C, error)) (Node[C], error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Node[C]{}, fmt.Errorf("dendrogram: read: %w", err)
	}

	return Read(lines, parseLeaf)
}

// Read rebuilds a dendrogram from the lines produced by Write.
//
// Steps:
//  1. Drop one trailing blank line (the artifact of a terminal newline).
//  2. Count each line's leading spaces.
//  3. Resolve the range [from, to): a single line is a leaf and its text,
//     indent stripped, goes to parseLeaf verbatim (annotations included).
//     Otherwise line from is the height, line from+1 opens the left subtree
//     at indent L, and the first later line with indent <= L opens the right
//     subtree, which must sit at exactly L.
//  4. Ranges are processed on an explicit stack; children are merged once
//     both are built.
//
// Any malformed input returns an error naming the 1-based line; no partial
// tree is returned.
// Complexity: O(lines) time and memory.
func Read[C any](lines []string, parseLeaf func(string) (C, error)) (Node[C], error) {
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return Node[C]{}, ErrEmptyInput
	}

	indent := make([]int, len(lines))
	for i, l := range lines {
		indent[i] = len(l) - len(strings.TrimLeft(l, " "))
	}

	type span struct {
		from, to int
		height   float64
		expanded bool
	}

	tree := NewTree[C](len(lines))
	built := make([]Node[C], 0, 2)
	stack := []span{{from: 0, to: len(lines)}}
	for len(stack) > 0 {
		top := len(stack) - 1
		sp := stack[top]

		if sp.to-sp.from == 1 {
			item, err := parseLeaf(lines[sp.from][indent[sp.from]:])
			if err != nil {
				return Node[C]{}, fmt.Errorf("dendrogram: line %d: %w", sp.from+1, err)
			}
			built = append(built, tree.Leaf(item))
			stack = stack[:top]
			continue
		}

		if sp.expanded {
			// Both children are on top of built: left below right.
			k := len(built)
			merged := tree.Merge(built[k-2], built[k-1], sp.height)
			built = append(built[:k-2], merged)
			stack = stack[:top]
			continue
		}

		h, err := strconv.ParseFloat(lines[sp.from][indent[sp.from]:], 64)
		if err != nil {
			return Node[C]{}, fmt.Errorf("dendrogram: line %d: %q: %w", sp.from+1, lines[sp.from], ErrBadHeight)
		}
		l := indent[sp.from+1]
		if l <= indent[sp.from] {
			return Node[C]{}, fmt.Errorf("dendrogram: line %d: %w", sp.from+2, ErrBadIndent)
		}
		r := sp.from + 2
		for r < sp.to && indent[r] > l {
			r++
		}
		if r == sp.to {
			return Node[C]{}, fmt.Errorf("dendrogram: line %d: %w", sp.from+1, ErrMissingChild)
		}
		if indent[r] != l {
			return Node[C]{}, fmt.Errorf("dendrogram: line %d: %w", r+1, ErrBadIndent)
		}

		stack[top].height = h
		stack[top].expanded = true
		// Right is pushed first so the left range is built first.
		stack = append(stack, span{from: r, to: sp.to}, span{from: sp.from + 1, to: r})
	}

	return built[0], nil
}

// ParseString is a parseLeaf function returning the leaf text unchanged.
func ParseString(s string) (string, error) { return s, nil }

// ParseInt is a parseLeaf function for integer items.
func ParseInt(s string) (int, error) { return strconv.Atoi(s) }
