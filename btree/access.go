package btree

// Find returns an iterator positioned at key, or End() if key is absent.
func (t *Tree[K]) Find(key K) Iterator[K] {
	if t.IsEmpty() {
		return t.End()
	}
	cur := t.root
	for !t.nodes.at(cur).leafHolder {
		if cur = t.firstNotBelow(cur, key); cur == nilRef {
			return t.End()
		}
	}
	if v := t.valueChild(cur, key); v != nilRef {
		return Iterator[K]{tree: t, ref: v}
	}
	return t.End()
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return !t.Find(key).IsEnd()
}

// LowerBound returns an iterator positioned at the smallest key not less
// than key, or End() if every key in the tree is less than key.
func (t *Tree[K]) LowerBound(key K) Iterator[K] {
	if t.IsEmpty() {
		return t.End()
	}
	cur := t.root
	for len(t.nodes.at(cur).children) > 0 {
		if cur = t.firstNotBelow(cur, key); cur == nilRef {
			return t.End()
		}
	}
	return Iterator[K]{tree: t, ref: cur}
}

// Begin returns an iterator positioned at the smallest key. For an empty
// tree Begin() equals End().
func (t *Tree[K]) Begin() Iterator[K] {
	return Iterator[K]{tree: t, ref: t.edge(true)}
}

// End returns the past-the-end iterator. It shares its node with the
// iterator positioned at the largest key and differs from it by its end flag
// only.
func (t *Tree[K]) End() Iterator[K] {
	return Iterator[K]{tree: t, ref: t.edge(false), end: true}
}

// edge follows first (or last) children from the root down to a value node.
func (t *Tree[K]) edge(first bool) nodeRef {
	if t.IsEmpty() {
		return nilRef
	}
	cur := t.root
	for {
		children := t.nodes.at(cur).children
		if len(children) == 0 {
			return cur
		}
		if first {
			cur = children[0]
		} else {
			cur = children[len(children)-1]
		}
	}
}
