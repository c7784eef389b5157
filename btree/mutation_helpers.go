package btree

// split divides an overflowing node into two halves of MinDegree children
// each. The original keeps the lower half, the returned new sibling takes the
// upper half. The sibling is not yet attached to any parent.
//
// Moved children keep their sibling links: they were neighbours before and
// stay neighbours.
func (t *Tree[K]) split(ref nodeRef) nodeRef {
	sib := t.nodes.alloc()
	n, s := t.nodes.at(ref), t.nodes.at(sib)
	assert(len(n.children) == MaxDegree, "split called for node without overflow")
	s.leafHolder = n.leafHolder
	s.children = append(s.children, n.children[MinDegree:]...)
	n.children = n.children[:MinDegree]
	t.fix(ref)
	t.fix(sib)
	return sib
}

// rebalanceResult tells the erase walk how an underflow has been resolved.
type rebalanceResult int

const (
	rebalanceBorrowed  rebalanceResult = iota // degree restored from a neighbour
	rebalanceMerged                           // node emptied, parent has to drop it
	rebalanceCollapsed                        // root replaced by its only child
	rebalanceNone                             // nothing to do (single key left)
)

// resolveUnderflow repairs a node holding a single child.
//
// Neighbours are taken from the sibling list, so they may belong to a
// different parent. Options are tried in this order: borrow from the left,
// borrow from the right, merge into the left, merge into the right, and
// finally collapse the root.
func (t *Tree[K]) resolveUnderflow(ref nodeRef) rebalanceResult {
	n := t.nodes.at(ref)
	assert(len(n.children) == 1, "resolveUnderflow called for node without underflow")
	if n.prev != nilRef && len(t.nodes.at(n.prev).children) == MaxDegree-1 {
		t.borrowLeft(ref)
		return rebalanceBorrowed
	}
	if n.next != nilRef && len(t.nodes.at(n.next).children) == MaxDegree-1 {
		t.borrowRight(ref)
		return rebalanceBorrowed
	}
	if n.prev != nilRef {
		left := t.nodes.at(n.prev)
		left.children = append(left.children, n.children[0])
		n.children = n.children[:0]
		t.fix(n.prev)
		return rebalanceMerged
	}
	if n.next != nilRef {
		right := t.nodes.at(n.next)
		right.children = append(right.children, nilRef)
		copy(right.children[1:], right.children)
		right.children[0] = n.children[0]
		n.children = n.children[:0]
		t.fix(n.next)
		return rebalanceMerged
	}
	if n.size == 1 {
		return rebalanceNone
	}
	assert(ref == t.root, "underflowing node without siblings must be the root")
	t.root = n.children[0]
	tracer().Debugf("btree: root collapses, height is now %d", t.Height())
	n.children = n.children[:0]
	t.nodes.release(ref)
	t.fix(t.root)
	return rebalanceCollapsed
}

// borrowLeft moves the last child of the left neighbour to the front of ref.
func (t *Tree[K]) borrowLeft(ref nodeRef) {
	n := t.nodes.at(ref)
	left := t.nodes.at(n.prev)
	last := len(left.children) - 1
	n.children = append(n.children, n.children[0])
	n.children[0] = left.children[last]
	left.children = left.children[:last]
	t.fix(n.prev)
}

// borrowRight moves the first child of the right neighbour to the end of ref.
func (t *Tree[K]) borrowRight(ref nodeRef) {
	n := t.nodes.at(ref)
	right := t.nodes.at(n.next)
	n.children = append(n.children, right.children[0])
	copy(right.children, right.children[1:])
	right.children = right.children[:len(right.children)-1]
	t.fix(n.next)
}
