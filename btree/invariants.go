package btree

import "fmt"

// Check validates structural tree invariants.
//
// It verifies degree bounds, node roles, uniform depth of value nodes, key
// order of children, the cached sizes and key bounds, and that the sibling
// list of every level is exactly the level's nodes in key order. It is meant
// for tests and debugging; it visits every node of the tree.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nilRef {
		if live := t.nodes.live(); live != 0 {
			return fmt.Errorf("%w: empty tree holds %d live nodes", ErrCorruptTree, live)
		}
		return nil
	}
	root := t.nodes.at(t.root)
	if root.prev != nilRef || root.next != nilRef {
		return fmt.Errorf("%w: root has siblings", ErrCorruptTree)
	}
	if len(root.children) == 0 {
		return fmt.Errorf("%w: root has no children", ErrCorruptTree)
	}
	if len(root.children) == 1 && !(root.leafHolder && root.size == 1) {
		return fmt.Errorf("%w: root with single child holds %d keys", ErrCorruptTree, root.size)
	}
	var levels [][]nodeRef
	count, _, err := t.checkNode(t.root, 0, &levels)
	if err != nil {
		return err
	}
	if count != t.nodes.live() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorruptTree, count, t.nodes.live())
	}
	for depth, level := range levels {
		if err := t.checkLevel(depth, level); err != nil {
			return err
		}
	}
	return nil
}

// checkNode validates the subtree at ref and returns its node count and the
// depth of its value nodes. levels collects the nodes of every depth in key
// order.
func (t *Tree[K]) checkNode(ref nodeRef, depth int, levels *[][]nodeRef) (nodes int, leafDepth int, err error) {
	if ref == nilRef || int(ref) >= len(t.nodes.slots) {
		return 0, 0, fmt.Errorf("%w: invalid handle %d", ErrCorruptTree, ref)
	}
	if len(*levels) == depth {
		*levels = append(*levels, nil)
	}
	(*levels)[depth] = append((*levels)[depth], ref)
	n := t.nodes.at(ref)
	if len(n.children) == 0 {
		if n.leafHolder || n.size != 1 || !t.equal(n.minKey, n.maxKey) {
			return 0, 0, fmt.Errorf("%w: malformed value node %d", ErrCorruptTree, ref)
		}
		return 1, depth, nil
	}
	if len(n.children) >= MaxDegree || (ref != t.root && len(n.children) < MinDegree) {
		return 0, 0, fmt.Errorf("%w: node %d has degree %d", ErrCorruptTree, ref, len(n.children))
	}
	nodes, leafDepth = 1, -1
	size := 0
	for i, c := range n.children {
		if c == nilRef || int(c) >= len(t.nodes.slots) {
			return 0, 0, fmt.Errorf("%w: node %d has invalid child handle %d", ErrCorruptTree, ref, c)
		}
		child := t.nodes.at(c)
		if isValue := len(child.children) == 0; isValue != n.leafHolder {
			return 0, 0, fmt.Errorf("%w: leaf-holder flag of node %d disagrees with its children", ErrCorruptTree, ref)
		}
		if i > 0 && !t.cfg.Less(t.nodes.at(n.children[i-1]).maxKey, child.minKey) {
			return 0, 0, fmt.Errorf("%w: children of node %d out of order", ErrCorruptTree, ref)
		}
		cn, cd, cerr := t.checkNode(c, depth+1, levels)
		if cerr != nil {
			return 0, 0, cerr
		}
		if leafDepth >= 0 && cd != leafDepth {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree depths below node %d", ErrCorruptTree, ref)
		}
		leafDepth = cd
		nodes += cn
		size += child.size
	}
	first, last := t.nodes.at(n.children[0]), t.nodes.at(n.children[len(n.children)-1])
	if size != n.size {
		return 0, 0, fmt.Errorf("%w: node %d caches size %d, has %d", ErrCorruptTree, ref, n.size, size)
	}
	if !t.equal(first.minKey, n.minKey) || !t.equal(last.maxKey, n.maxKey) {
		return 0, 0, fmt.Errorf("%w: node %d caches stale key bounds", ErrCorruptTree, ref)
	}
	return nodes, leafDepth, nil
}

// checkLevel verifies that the sibling list of a level links exactly the
// nodes of the level, in order.
func (t *Tree[K]) checkLevel(depth int, level []nodeRef) error {
	for i, ref := range level {
		want := [2]nodeRef{nilRef, nilRef}
		if i > 0 {
			want[0] = level[i-1]
		}
		if i+1 < len(level) {
			want[1] = level[i+1]
		}
		n := t.nodes.at(ref)
		if n.prev != want[0] || n.next != want[1] {
			return fmt.Errorf("%w: sibling links of node %d at depth %d are (%d,%d), want (%d,%d)",
				ErrCorruptTree, ref, depth, n.prev, n.next, want[0], want[1])
		}
	}
	return nil
}
