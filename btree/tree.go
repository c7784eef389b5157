package btree

// Tree is an ordered set of unique keys, stored in a 2-4 B+ tree with
// sibling-linked levels.
//
// A tree exclusively owns its nodes. Copies have to be made with Clone; a
// struct copy of a Tree shares the node arena with the original.
type Tree[K any] struct {
	cfg   Config[K]
	nodes arena[K]
	root  nodeRef   // nilRef means empty tree
	path  []nodeRef // scratch stack for insert and erase
}

// New creates an empty tree. The configuration must provide a less function.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nilRef
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes.at(t.root).size
}

// Height returns the number of edges between the root and the value nodes.
// An empty tree has height 0, a tree with a single leaf-holder has height 1.
func (t *Tree[K]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h := 0
	for cur := t.root; len(t.nodes.at(cur).children) > 0; h++ {
		cur = t.nodes.at(cur).children[0]
	}
	return h
}

// Insert adds key to the tree. Inserting a key which is already present
// leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) {
	assert(t != nil, "Insert called on nil tree")
	if t.root == nilRef {
		t.root = t.nodes.alloc()
		root := t.nodes.at(t.root)
		root.leafHolder = true
		root.children = append(root.children, t.makeValue(key))
		t.fix(t.root)
		return
	}
	path := t.path[:0]
	defer func() { t.path = path[:0] }()
	cur := t.root
	for !t.nodes.at(cur).leafHolder {
		path = append(path, cur)
		next := t.firstNotBelow(cur, key)
		if next == nilRef { // key is beyond the current maximum
			children := t.nodes.at(cur).children
			next = children[len(children)-1]
		}
		cur = next
	}
	if t.valueChild(cur, key) != nilRef {
		return
	}
	path = append(path, cur)
	t.attach(cur, t.makeValue(key))
	promoted := nilRef
	for len(path) > 0 {
		cur = path[len(path)-1]
		path = path[:len(path)-1]
		t.fix(cur)
		if len(t.nodes.at(cur).children) < MaxDegree {
			continue
		}
		sib := t.split(cur)
		if len(path) > 0 {
			t.attach(path[len(path)-1], sib)
		} else {
			promoted = sib
		}
	}
	if promoted != nilRef {
		root := t.nodes.alloc()
		t.attach(root, t.root)
		t.attach(root, promoted)
		t.fix(root)
		t.root = root
		tracer().Debugf("btree: root split, height is now %d", t.Height())
	}
}

// Erase removes key from the tree and reports whether it has been present.
// Erasing an absent key leaves the tree unchanged.
func (t *Tree[K]) Erase(key K) bool {
	if t.IsEmpty() {
		return false
	}
	path := t.path[:0]
	defer func() { t.path = path[:0] }()
	cur := t.root
	for !t.nodes.at(cur).leafHolder {
		path = append(path, cur)
		if cur = t.firstNotBelow(cur, key); cur == nilRef {
			return false
		}
	}
	path = append(path, cur)
	erased := t.valueChild(cur, key)
	if erased == nilRef {
		return false
	}
	for len(path) > 0 {
		cur = path[len(path)-1]
		path = path[:len(path)-1]
		if erased != nilRef {
			t.detach(cur, erased)
			erased = nilRef
		}
		t.fix(cur)
		// neighbours may have gained or lost children on the level below
		n := t.nodes.at(cur)
		if n.prev != nilRef {
			t.fix(n.prev)
		}
		if n.next != nilRef {
			t.fix(n.next)
		}
		if len(n.children) == 1 {
			switch t.resolveUnderflow(cur) {
			case rebalanceMerged:
				erased = cur
			case rebalanceCollapsed:
				path = path[:0]
				continue
			}
		}
		t.fix(cur)
	}
	if len(t.nodes.at(t.root).children) == 0 {
		t.nodes.release(t.root)
		t.root = nilRef
	}
	return true
}

// Clear removes all keys from the tree.
func (t *Tree[K]) Clear() {
	if t.IsEmpty() {
		return
	}
	t.freeSubtree(t.root)
	t.root = nilRef
}
