package btree

// Iterator is a position within a tree. Iterators are values; Next and Prev
// return the moved position and leave the receiver untouched.
//
// An iterator is either positioned at a key, or it is the past-the-end
// position, which refers to the node of the largest key with its end flag
// set. Iterators of a tree which has never held a key, as well as the zero
// Iterator, are null: they are all equal to each other and report IsEnd.
//
// Calling Key on an end or null iterator, and calling Next on an end
// iterator, are precondition violations with undefined results. Any
// mutation of the tree invalidates all of its iterators.
type Iterator[K any] struct {
	tree *Tree[K]
	ref  nodeRef
	end  bool
}

// Key returns the key at the iterator position.
func (it Iterator[K]) Key() K {
	return it.tree.nodes.at(it.ref).minKey
}

// IsEnd reports whether the iterator is the past-the-end position (or null).
func (it Iterator[K]) IsEnd() bool {
	return it.end || it.ref == nilRef
}

// Next returns the position of the next larger key, or the past-the-end
// position if the receiver is at the largest key.
func (it Iterator[K]) Next() Iterator[K] {
	if it.ref == nilRef {
		return it
	}
	if next := it.tree.nodes.at(it.ref).next; !it.end && next != nilRef {
		it.ref = next
	} else {
		it.end = true
	}
	return it
}

// Prev returns the position of the next smaller key. For the past-the-end
// position this is the largest key. At the smallest key Prev does not move.
func (it Iterator[K]) Prev() Iterator[K] {
	if it.ref == nilRef {
		return it
	}
	if it.end {
		it.end = false
	} else if prev := it.tree.nodes.at(it.ref).prev; prev != nilRef {
		it.ref = prev
	}
	return it
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	if it.ref == nilRef || other.ref == nilRef {
		return it.ref == other.ref
	}
	return it.tree == other.tree && it.ref == other.ref && it.end == other.end
}
