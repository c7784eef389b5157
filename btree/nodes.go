package btree

// nodeRef is a handle into the node arena of a tree.
type nodeRef uint32

// nilRef is the null handle. Slot 0 of the arena is never allocated.
const nilRef nodeRef = 0

// node is the single record shape for all three node roles:
//
//   - value nodes have no children and carry their key in minKey == maxKey,
//   - leaf-holders have value nodes as children (leafHolder is set),
//   - inner nodes have leaf-holders or other inner nodes as children.
type node[K any] struct {
	children   []nodeRef // ordered by the children's maxKey
	size       int       // number of value nodes in this subtree
	minKey     K
	maxKey     K
	leafHolder bool
	prev, next nodeRef // links within the sibling list of this node's level
}

func (n *node[K]) reset() {
	var zero K
	n.children = n.children[:0]
	n.size = 0
	n.minKey, n.maxKey = zero, zero
	n.leafHolder = false
	n.prev, n.next = nilRef, nilRef
}

// arena stores node records. Handles stay stable for the lifetime of a node;
// released slots are recycled through a free list.
type arena[K any] struct {
	slots []*node[K]
	free  []nodeRef
}

func (a *arena[K]) at(ref nodeRef) *node[K] {
	assert(ref != nilRef, "arena access with null handle")
	return a.slots[ref]
}

func (a *arena[K]) alloc() nodeRef {
	if len(a.slots) == 0 {
		a.slots = append(a.slots, nil) // reserve the null handle
	}
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		return ref
	}
	a.slots = append(a.slots, &node[K]{})
	return nodeRef(len(a.slots) - 1)
}

func (a *arena[K]) release(ref nodeRef) {
	a.at(ref).reset()
	a.free = append(a.free, ref)
}

// live returns the number of allocated nodes.
func (a *arena[K]) live() int {
	if len(a.slots) == 0 {
		return 0
	}
	return len(a.slots) - 1 - len(a.free)
}
