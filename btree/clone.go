package btree

// Clone returns a deep copy of the tree. The copy shares no nodes with t;
// both trees may be mutated independently afterwards.
//
// Nodes are duplicated breadth-first from a worklist of corresponding
// old/new node pairs. Since a breadth-first walk visits each level in key
// order, the sibling lists of the copy are rebuilt by linking every new node
// to its predecessor on the same level.
func (t *Tree[K]) Clone() *Tree[K] {
	if t == nil {
		return nil
	}
	c := &Tree[K]{cfg: t.cfg}
	if t.IsEmpty() {
		return c
	}
	type pair struct {
		old, new nodeRef
		depth    int
	}
	c.root = c.copyNode(t.nodes.at(t.root))
	queue := []pair{{old: t.root, new: c.root}}
	last, lastDepth := nilRef, -1
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, child := range t.nodes.at(p.old).children {
			dup := c.copyNode(t.nodes.at(child))
			c.nodes.at(p.new).children = append(c.nodes.at(p.new).children, dup)
			queue = append(queue, pair{old: child, new: dup, depth: p.depth + 1})
		}
		if last != nilRef && lastDepth == p.depth {
			c.nodes.at(p.new).prev = last
			c.nodes.at(last).next = p.new
		}
		last, lastDepth = p.new, p.depth
	}
	tracer().Debugf("btree: cloned tree of %d nodes", len(queue))
	return c
}

// copyNode allocates a node carrying the cached summary of n, without
// children and sibling links.
func (t *Tree[K]) copyNode(n *node[K]) nodeRef {
	ref := t.nodes.alloc()
	dup := t.nodes.at(ref)
	dup.size = n.size
	dup.minKey, dup.maxKey = n.minKey, n.maxKey
	dup.leafHolder = n.leafHolder
	return ref
}
