/*
Package btree implements the engine behind ordered sets: a 2-4 B+ tree whose
nodes are additionally threaded into per-level sibling lists.

Keys live in value nodes at the bottom of the tree. Every node above caches
the number of keys below it together with the smallest and largest of them,
and children are kept in ascending order of their largest key. A search for
key k therefore always follows the first child whose maximum is not less
than k.

Nodes of one level form a doubly linked list in ascending key order. The list
is spliced only where a node enters or leaves a level; regrouping children
under different parents during split, borrow or merge leaves it untouched.
The bottom list is the flat sequence of all keys, which iterators walk with
O(1) steps.

Node storage is an arena of node records addressed by integer handles.
Sibling links are handles as well. Handle 0 is the null handle.

The package is not safe for concurrent use. Clients have to synchronize
access to a tree if it is shared between goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'orderedset'
func tracer() tracing.Trace {
	return tracing.Select("orderedset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
