package btree

import (
	"math/rand"
	"testing"
)

func BenchmarkInsertRandom(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := r.Perm(b.N)
	tree := newIntTree(b)
	b.ResetTimer()
	for _, k := range keys {
		tree.Insert(k)
	}
}

func BenchmarkFind(b *testing.B) {
	const n = 100000
	tree := newIntTree(b)
	for k := range n {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Find(i % n)
	}
}

func BenchmarkIterate(b *testing.B) {
	const n = 100000
	tree := newIntTree(b)
	for k := range n {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		}
	}
}
