package btree

import "testing"

func makeLeafHolder(t *testing.T, tree *Tree[int], keys ...int) nodeRef {
	t.Helper()
	lh := tree.nodes.alloc()
	tree.nodes.at(lh).leafHolder = true
	for _, k := range keys {
		tree.attach(lh, tree.makeValue(k))
	}
	tree.fix(lh)
	return lh
}

func childKeys(tree *Tree[int], ref nodeRef) []int {
	var out []int
	for _, c := range tree.nodes.at(ref).children {
		out = append(out, tree.nodes.at(c).minKey)
	}
	return out
}

// listKeys follows next links from the first child of ref.
func listKeys(tree *Tree[int], ref nodeRef) []int {
	var out []int
	children := tree.nodes.at(ref).children
	if len(children) == 0 {
		return nil
	}
	first := children[0]
	if tree.nodes.at(first).prev != nilRef {
		return nil
	}
	for cur := first; cur != nilRef; cur = tree.nodes.at(cur).next {
		out = append(out, tree.nodes.at(cur).minKey)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAttachKeepsChildrenAndLinksOrdered(t *testing.T) {
	tree := newIntTree(t)
	lh := makeLeafHolder(t, tree, 5, 1, 3)
	if got := childKeys(tree, lh); !equalInts(got, []int{1, 3, 5}) {
		t.Fatalf("children out of order: %v", got)
	}
	if got := listKeys(tree, lh); !equalInts(got, []int{1, 3, 5}) {
		t.Fatalf("sibling list out of order: %v", got)
	}
	n := tree.nodes.at(lh)
	if n.size != 3 || n.minKey != 1 || n.maxKey != 5 {
		t.Fatalf("unexpected cached summary size=%d min=%d max=%d", n.size, n.minKey, n.maxKey)
	}
}

func TestAttachFirstChildIsUnlinked(t *testing.T) {
	tree := newIntTree(t)
	lh := makeLeafHolder(t, tree, 9)
	v := tree.nodes.at(tree.nodes.at(lh).children[0])
	if v.prev != nilRef || v.next != nilRef {
		t.Fatalf("single child must not be linked")
	}
}

func TestDetachRelinksNeighbours(t *testing.T) {
	tree := newIntTree(t)
	lh := makeLeafHolder(t, tree, 1, 2, 3)
	mid := tree.nodes.at(lh).children[1]
	live := tree.nodes.live()
	tree.detach(lh, mid)
	tree.fix(lh)
	if got := listKeys(tree, lh); !equalInts(got, []int{1, 3}) {
		t.Fatalf("sibling list after detach: %v", got)
	}
	if tree.nodes.live() != live-1 {
		t.Fatalf("detached node was not released")
	}
	if n := tree.nodes.at(lh); n.size != 2 || n.minKey != 1 || n.maxKey != 3 {
		t.Fatalf("unexpected summary after detach: %+v", n)
	}
}

func TestSplitKeepsSiblingListIntact(t *testing.T) {
	tree := newIntTree(t)
	lh := makeLeafHolder(t, tree, 4, 3, 2, 1)
	sib := tree.split(lh)
	if got := childKeys(tree, lh); !equalInts(got, []int{1, 2}) {
		t.Fatalf("lower half after split: %v", got)
	}
	if got := childKeys(tree, sib); !equalInts(got, []int{3, 4}) {
		t.Fatalf("upper half after split: %v", got)
	}
	if !tree.nodes.at(sib).leafHolder {
		t.Fatalf("split sibling must inherit the leaf-holder role")
	}
	// the value list still runs through both halves
	if got := listKeys(tree, lh); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Fatalf("sibling list after split: %v", got)
	}
}

func TestFirstNotBelow(t *testing.T) {
	tree := newIntTree(t)
	lh := makeLeafHolder(t, tree, 10, 20, 30)
	cases := map[int]int{5: 10, 10: 10, 11: 20, 30: 30}
	for key, want := range cases {
		ref := tree.firstNotBelow(lh, key)
		if ref == nilRef || tree.nodes.at(ref).minKey != want {
			t.Fatalf("firstNotBelow(%d): want %d", key, want)
		}
	}
	if tree.firstNotBelow(lh, 31) != nilRef {
		t.Fatalf("firstNotBelow beyond maximum should return nilRef")
	}
}
