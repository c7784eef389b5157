package btree

// equal derives key equality from the strict order.
func (t *Tree[K]) equal(a, b K) bool {
	return !t.cfg.Less(a, b) && !t.cfg.Less(b, a)
}

// makeValue materializes a new value node holding key.
func (t *Tree[K]) makeValue(key K) nodeRef {
	ref := t.nodes.alloc()
	v := t.nodes.at(ref)
	v.size = 1
	v.minKey, v.maxKey = key, key
	return ref
}

// fix recomputes the cached size and key bounds of ref from its children.
// A node without children gets size 0 and keeps its bounds.
func (t *Tree[K]) fix(ref nodeRef) {
	n := t.nodes.at(ref)
	n.size = 0
	if len(n.children) == 0 {
		return
	}
	first := t.nodes.at(n.children[0])
	n.minKey, n.maxKey = first.minKey, first.maxKey
	for _, c := range n.children {
		child := t.nodes.at(c)
		n.size += child.size
		if t.cfg.Less(n.maxKey, child.maxKey) {
			n.maxKey = child.maxKey
		}
		if t.cfg.Less(child.minKey, n.minKey) {
			n.minKey = child.minKey
		}
	}
}

// attach adds child to parent and moves it into sorted position.
//
// The child is spliced into its level's sibling list right after the
// parent's last child, then bubbled towards the front by adjacent swaps.
// Each swap exchanges the two nodes in the sibling list as well, so the list
// stays consistent with the children order. A child attached to a parent
// without children is not linked to anything.
func (t *Tree[K]) attach(parent, child nodeRef) {
	p := t.nodes.at(parent)
	if len(p.children) > 0 {
		t.linkAfter(p.children[len(p.children)-1], child)
	}
	p.children = append(p.children, child)
	for i := len(p.children) - 1; i > 0; i-- {
		cur, before := t.nodes.at(p.children[i]), t.nodes.at(p.children[i-1])
		if !t.cfg.Less(cur.maxKey, before.maxKey) {
			break
		}
		p.children[i-1], p.children[i] = p.children[i], p.children[i-1]
		t.swapLinks(p.children[i-1], p.children[i])
	}
}

// detach removes child from parent, unlinks it from its sibling list and
// releases its subtree.
func (t *Tree[K]) detach(parent, child nodeRef) {
	p := t.nodes.at(parent)
	slot := -1
	for i, c := range p.children {
		if c == child {
			slot = i
			break
		}
	}
	assert(slot >= 0, "detach called for a node which is not a child of parent")
	copy(p.children[slot:], p.children[slot+1:])
	p.children = p.children[:len(p.children)-1]
	t.unlink(child)
	t.freeSubtree(child)
}

// linkAfter splices ref into the sibling list right after anchor.
func (t *Tree[K]) linkAfter(anchor, ref nodeRef) {
	a, n := t.nodes.at(anchor), t.nodes.at(ref)
	n.prev = anchor
	n.next = a.next
	a.next = ref
	if n.next != nilRef {
		t.nodes.at(n.next).prev = ref
	}
}

// swapLinks exchanges two neighbours in a sibling list. On entry second
// directly precedes first; on exit first directly precedes second.
func (t *Tree[K]) swapLinks(first, second nodeRef) {
	f, s := t.nodes.at(first), t.nodes.at(second)
	f.prev = s.prev
	s.next = f.next
	f.next = second
	s.prev = first
	if s.next != nilRef {
		t.nodes.at(s.next).prev = second
	}
	if f.prev != nilRef {
		t.nodes.at(f.prev).next = first
	}
}

// unlink takes ref out of its sibling list.
func (t *Tree[K]) unlink(ref nodeRef) {
	n := t.nodes.at(ref)
	if n.prev != nilRef {
		t.nodes.at(n.prev).next = n.next
	}
	if n.next != nilRef {
		t.nodes.at(n.next).prev = n.prev
	}
	n.prev, n.next = nilRef, nilRef
}

// freeSubtree releases ref and all of its descendants, children first.
func (t *Tree[K]) freeSubtree(ref nodeRef) {
	for _, c := range t.nodes.at(ref).children {
		t.freeSubtree(c)
	}
	t.nodes.release(ref)
}

// firstNotBelow returns the first child of ref whose maxKey is not less than
// key, or nilRef if key exceeds every key below ref.
func (t *Tree[K]) firstNotBelow(ref nodeRef, key K) nodeRef {
	for _, c := range t.nodes.at(ref).children {
		if !t.cfg.Less(t.nodes.at(c).maxKey, key) {
			return c
		}
	}
	return nilRef
}

// valueChild returns the value node child of leaf-holder ref holding key, or
// nilRef.
func (t *Tree[K]) valueChild(ref nodeRef, key K) nodeRef {
	for _, c := range t.nodes.at(ref).children {
		if t.equal(t.nodes.at(c).minKey, key) {
			return c
		}
	}
	return nilRef
}
