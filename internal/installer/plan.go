package installer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Plan describes what a stage or install step did: which files moved from
// Source to Target for the extension UUID.
type Plan struct {
	UUID   string
	Source string
	Target string
	Files  []string // relative paths, in walk order
}

// treeNode is one level of the file tree assembled from relative paths.
type treeNode struct {
	name     string
	children []*treeNode
}

// PrintPlan writes a tree-style summary of the plan.
func PrintPlan(w io.Writer, plan *Plan) {
	fmt.Fprintf(w, "  %s -> %s\n", plan.UUID, plan.Target)
	fmt.Fprintln(w)

	root := buildTree(plan.Files)
	for i, child := range root.children {
		printTree(w, child, "", i == len(root.children)-1)
	}
	fmt.Fprintln(w)

	noun := "files"
	if len(plan.Files) == 1 {
		noun = "file"
	}
	fmt.Fprintf(w, "  %d %s\n", len(plan.Files), noun)
}

// buildTree assembles a directory tree from relative file paths. Children
// keep the order paths arrive in, which for walk output is sorted per
// level.
func buildTree(paths []string) *treeNode {
	root := &treeNode{}
	for _, p := range paths {
		cur := root
		for _, part := range strings.Split(filepath.ToSlash(p), "/") {
			var child *treeNode
			for _, c := range cur.children {
				if c.name == part {
					child = c
					break
				}
			}
			if child == nil {
				child = &treeNode{name: part}
				cur.children = append(cur.children, child)
			}
			cur = child
		}
	}
	return root
}

// printTree prints a node and its children with box-drawing characters.
func printTree(w io.Writer, node *treeNode, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, node.name)

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}

	for i, child := range node.children {
		printTree(w, child, childPrefix, i == len(node.children)-1)
	}
}
