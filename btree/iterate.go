package btree

// ForEach walks the keys in ascending order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for ref := t.edge(true); ref != nilRef; ref = t.nodes.at(ref).next {
		if !fn(t.nodes.at(ref).minKey) {
			return
		}
	}
}

// ForEachReverse walks the keys in descending order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachReverse(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for ref := t.edge(false); ref != nilRef; ref = t.nodes.at(ref).prev {
		if !fn(t.nodes.at(ref).minKey) {
			return
		}
	}
}

// NodeView is a read-only snapshot of a single node, handed out by Walk.
type NodeView[K any] struct {
	ID         int   // handle of the node, unique within the tree
	Depth      int   // 0 for the root
	Size       int   // number of keys below the node
	Min, Max   K     // key bounds of the subtree
	LeafHolder bool  // children are value nodes
	Value      bool  // node is a value node, Min == Max is its key
	Prev, Next int   // sibling handles, 0 if none
	Children   []int // child handles in key order
}

// Walk visits every node of the tree in pre-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) Walk(fn func(v NodeView[K]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walkNode(t.root, 0, fn)
}

func (t *Tree[K]) walkNode(ref nodeRef, depth int, fn func(v NodeView[K]) bool) bool {
	n := t.nodes.at(ref)
	v := NodeView[K]{
		ID:         int(ref),
		Depth:      depth,
		Size:       n.size,
		Min:        n.minKey,
		Max:        n.maxKey,
		LeafHolder: n.leafHolder,
		Value:      len(n.children) == 0,
		Prev:       int(n.prev),
		Next:       int(n.next),
		Children:   make([]int, len(n.children)),
	}
	for i, c := range n.children {
		v.Children[i] = int(c)
	}
	if !fn(v) {
		return false
	}
	for _, c := range n.children {
		if !t.walkNode(c, depth+1, fn) {
			return false
		}
	}
	return true
}
