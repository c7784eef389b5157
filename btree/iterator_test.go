package btree

import "testing"

func TestIteratorEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	if !tree.Begin().Equal(tree.End()) {
		t.Fatalf("Begin() should equal End() on empty tree")
	}
	if !tree.Begin().IsEnd() {
		t.Fatalf("Begin() on empty tree should report IsEnd")
	}
	var zero Iterator[int]
	if !zero.Equal(tree.End()) || !tree.Begin().Equal(zero) {
		t.Fatalf("null iterators should all be equal")
	}
	if !tree.End().Next().Equal(zero) || !tree.Begin().Prev().Equal(zero) {
		t.Fatalf("stepping a null iterator should not move it")
	}
}

func TestIteratorForwardTraversal(t *testing.T) {
	tree := treeWith(t, 1, 3, 2, 5, 4)
	var got []int
	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
		got = append(got, it.Key())
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 keys, got %v", got)
	}
	for i, k := range got {
		if k != i+1 {
			t.Fatalf("unexpected traversal %v", got)
		}
	}
}

func TestIteratorBackwardTraversal(t *testing.T) {
	tree := treeWith(t, seq(1, 37)...)
	want := 37
	it := tree.End()
	for !it.Equal(tree.Begin()) {
		it = it.Prev()
		if it.Key() != want {
			t.Fatalf("backward traversal: got %d, want %d", it.Key(), want)
		}
		want--
	}
	if want != 0 {
		t.Fatalf("backward traversal stopped early at %d", want)
	}
}

func TestIteratorEndSharesLastNode(t *testing.T) {
	tree := treeWith(t, seq(1, 10)...)
	end := tree.End()
	last := end.Prev()
	if last.IsEnd() || last.Key() != 10 {
		t.Fatalf("End().Prev() should be positioned at 10")
	}
	if last.ref != end.ref {
		t.Fatalf("end iterator should share the node of the last key")
	}
	if last.Equal(end) {
		t.Fatalf("last and end iterator must differ by their end flag")
	}
	if !last.Next().Equal(end) {
		t.Fatalf("Next() from the last key should yield End()")
	}
}

func TestIteratorPrevAtBeginStays(t *testing.T) {
	tree := treeWith(t, 4, 5, 6)
	begin := tree.Begin()
	if !begin.Prev().Equal(begin) || begin.Prev().Key() != 4 {
		t.Fatalf("Prev() at Begin() should not move")
	}
}

func TestIteratorNeighboursAcrossParents(t *testing.T) {
	tree := treeWith(t, seq(1, 200)...)
	for k := 1; k < 200; k++ {
		it := tree.Find(k)
		if n := it.Next(); n.Key() != k+1 {
			t.Fatalf("successor of %d is %d", k, n.Key())
		}
		if k > 1 {
			if p := it.Prev(); p.Key() != k-1 {
				t.Fatalf("predecessor of %d is %d", k, p.Key())
			}
		}
	}
}

func TestIteratorEqualityAcrossTrees(t *testing.T) {
	a := treeWith(t, 1, 2, 3)
	b := a.Clone()
	if a.Begin().Equal(b.Begin()) {
		t.Fatalf("iterators of different trees must not be equal")
	}
	if !a.Find(2).Equal(a.LowerBound(2)) {
		t.Fatalf("Find and LowerBound of a present key should be equal")
	}
}
