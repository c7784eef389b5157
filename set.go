package orderedset

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/orderedset/btree"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique keys.
//
// Sets have to be created with one of the constructors (New, NewWithLess, Of,
// FromSeq). A nil *Set behaves like an empty set for all read operations.
type Set[K any] struct {
	tree *btree.Tree[K]
}

// Iterator is a position within a Set. See btree.Iterator for its
// semantics.
type Iterator[K any] = btree.Iterator[K]

// New creates an empty set of keys ordered by '<'.
func New[K constraints.Ordered]() *Set[K] {
	s, err := NewWithLess(btree.Less[K]())
	assertThat(err == nil, "New: cannot create tree")
	return s
}

// NewWithLess creates an empty set of keys ordered by less, which has to be
// a strict total order.
func NewWithLess[K any](less btree.LessFunc[K]) (*Set[K], error) {
	tree, err := btree.New(btree.Config[K]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// Of creates a set from a list of keys. Duplicate keys are dropped.
func Of[K constraints.Ordered](keys ...K) *Set[K] {
	s := New[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// FromSeq creates a set from a sequence of keys. Duplicate keys are dropped.
func FromSeq[K constraints.Ordered](seq iter.Seq[K]) *Set[K] {
	s := New[K]()
	if seq == nil {
		return s
	}
	for k := range seq {
		s.Insert(k)
	}
	return s
}

// Insert adds key to the set. Inserting a key which is already present is
// a no-op.
func (s *Set[K]) Insert(key K) {
	assertThat(s != nil && s.tree != nil, "Insert called on uninitialized set")
	s.tree.Insert(key)
}

// Erase removes key from the set and reports whether it has been present.
// Erasing an absent key is a no-op.
func (s *Set[K]) Erase(key K) bool {
	if s == nil {
		return false
	}
	return s.tree.Erase(key)
}

// Find returns an iterator positioned at key, or End() if key is absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	if s == nil {
		return Iterator[K]{}
	}
	return s.tree.Find(key)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s != nil && s.tree.Contains(key)
}

// LowerBound returns an iterator positioned at the smallest key not less
// than key, or End() if there is no such key.
func (s *Set[K]) LowerBound(key K) Iterator[K] {
	if s == nil {
		return Iterator[K]{}
	}
	return s.tree.LowerBound(key)
}

// Begin returns an iterator positioned at the smallest key, or End() for an
// empty set.
func (s *Set[K]) Begin() Iterator[K] {
	if s == nil {
		return Iterator[K]{}
	}
	return s.tree.Begin()
}

// End returns the past-the-end iterator.
func (s *Set[K]) End() Iterator[K] {
	if s == nil {
		return Iterator[K]{}
	}
	return s.tree.End()
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.Len() == 0
}

// Height returns the height of the underlying tree (0 for an empty set).
func (s *Set[K]) Height() int {
	if s == nil {
		return 0
	}
	return s.tree.Height()
}

// Clone returns an independent deep copy of s.
func (s *Set[K]) Clone() *Set[K] {
	if s == nil {
		return nil
	}
	return &Set[K]{tree: s.tree.Clone()}
}

// Assign replaces the contents of s with a deep copy of src. The ordering of
// s is replaced by the ordering of src as well.
func (s *Set[K]) Assign(src *Set[K]) {
	assertThat(s != nil, "Assign called on nil set")
	if s == src {
		return
	}
	if s.tree != nil {
		s.tree.Clear()
	}
	if src == nil || src.tree == nil {
		return
	}
	s.tree = src.tree.Clone()
}

// Clear removes all keys from the set.
func (s *Set[K]) Clear() {
	if s != nil {
		s.tree.Clear()
	}
}

// All returns an iterator over the keys of s in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s != nil {
			s.tree.ForEach(yield)
		}
	}
}

// Backward returns an iterator over the keys of s in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s != nil {
			s.tree.ForEachReverse(yield)
		}
	}
}

// Keys returns the keys of s in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// String renders the keys of s in ascending order, e.g. "{1 2 3}".
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", k)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

// Check validates the internal structure of s. It is intended for tests and
// debugging.
func (s *Set[K]) Check() error {
	if s == nil {
		return nil
	}
	err := s.tree.Check()
	if err != nil {
		T().Errorf("set check: %s", err.Error())
	}
	return err
}
