/*
Package orderedset offers a sorted container of unique keys.

A Set keeps its keys in ascending order and supports membership tests,
ordered iteration in both directions, predecessor/successor navigation and
lower-bound lookup ("first key not less than k"). Insertion, deletion and
lookup take logarithmic time; stepping an iterator takes constant time.

	s := orderedset.Of(1, 3, 2, 5, 4)
	for k := range s.All() {
	    fmt.Println(k) // 1 2 3 4 5
	}
	it := s.LowerBound(3)   // positioned at 3
	it = it.Next()          // positioned at 4

Internally a Set is a 2-4 B+ tree whose levels are threaded into sibling
lists (see package btree). The bottom list holds all keys in order, which is
what iterators walk.

Sets are not safe for concurrent use.

# Ordering

Keys are ordered by a strict total order, either the built-in '<' for
ordered types (New, Of, FromSeq) or a client supplied less-function
(NewWithLess). Two keys are equal if neither is less than the other.

# Copies

Sets have reference semantics when copied as Go values (they are pointers).
Clone produces an independent deep copy, Assign replaces the contents of a set
with a deep copy of another one.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package orderedset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
