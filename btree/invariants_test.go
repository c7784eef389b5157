package btree

import (
	"errors"
	"testing"
)

func TestCheckNilTree(t *testing.T) {
	var tree *Tree[int]
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil tree, got %v", err)
	}
}

func TestCheckDetectsStaleSize(t *testing.T) {
	tree := treeWith(t, seq(1, 20)...)
	tree.nodes.at(tree.root).size++
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree for stale size, got %v", err)
	}
}

func TestCheckDetectsBrokenSiblingList(t *testing.T) {
	tree := treeWith(t, seq(1, 20)...)
	v := tree.Find(10).ref
	tree.nodes.at(v).next = nilRef
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree for broken sibling list, got %v", err)
	}
}

func TestCheckDetectsUnorderedChildren(t *testing.T) {
	tree := treeWith(t, 1, 2, 3)
	root := tree.nodes.at(tree.root)
	root.children[0], root.children[1] = root.children[1], root.children[0]
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree for unordered children, got %v", err)
	}
}

func TestCheckDetectsLeakedNodes(t *testing.T) {
	tree := treeWith(t, 1, 2, 3)
	tree.nodes.alloc()
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree for unreachable node, got %v", err)
	}
}
