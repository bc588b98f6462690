// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"strings"
)

// Map is an ordered map implemented as an AVL tree whose nodes live in an
// arena owned by the Map.
//
// A Map is not safe for concurrent mutation. Read operations (Get, Len,
// MakeIter, String, Check) may run concurrently with each other.
type Map[K, V any] struct {
	root   nodeID
	length int
	np     nodePool[K, V]
	cfg    Config[K]
}

// MakeMap constructs an empty Map using cfg.
func MakeMap[K, V any](cfg Config[K]) Map[K, V] {
	if cfg.cmp == nil {
		panic("abstract: Config not constructed with MakeConfig")
	}
	return Map[K, V]{
		np:  makeNodePool[K, V](cfg.Capacity),
		cfg: cfg,
	}
}

// Reset removes all items from the Map. The arena's capacity is retained for
// reuse by later insertions.
func (t *Map[K, V]) Reset() {
	t.np.reset()
	t.root = nilID
	t.length = 0
}

// Clone returns a deep copy of the Map in time proportional to the size of
// its arena. Values are copied shallowly.
func (t *Map[K, V]) Clone() Map[K, V] {
	c := *t
	c.np = t.np.clone()
	return c
}

// Get returns a pointer to the value stored under k, or nil if k is absent.
// The pointer is invalidated by the next Upsert or Delete.
func (t *Map[K, V]) Get(k K) *V {
	return t.find(k)
}

// Upsert adds the given key and value to the tree. If the key is already
// present its value is replaced and the previous value is returned.
func (t *Map[K, V]) Upsert(k K, v V) (replacedV V, replaced bool) {
	t.root, replacedV, replaced = t.insert(t.root, k, v)
	if !replaced {
		t.length++
	}
	if invariants {
		t.mustCheck()
	}
	return replacedV, replaced
}

// Delete removes the key equal to k from the tree, reporting whether it was
// present. The length only changes when a key is actually removed.
func (t *Map[K, V]) Delete(k K) (v V, found bool) {
	if t.root == nilID {
		return v, false
	}
	if t.root, v, found = t.remove(t.root, k); found {
		t.length--
	}
	if invariants {
		t.mustCheck()
	}
	return v, found
}

// MakeIter returns a new Iterator positioned over every entry of the tree.
// It is not safe to continue using an Iterator after the tree is
// structurally modified.
func MakeIter[K, V, E any, S Splitter[K, V, E]](t *Map[K, V]) Iterator[K, V, E, S] {
	return makeIterator[K, V, E, S](&t.np, t.root, t.length)
}

// Take transfers ownership of every node to a consuming Iterator and leaves
// the Map empty and ready for reuse.
func (t *Map[K, V]) Take() Iterator[K, V, Entry[K, V], Consuming[K, V]] {
	np := t.np
	it := makeIterator[K, V, Entry[K, V], Consuming[K, V]](&np, t.root, t.length)
	t.np = makeNodePool[K, V](t.cfg.Capacity)
	t.root = nilID
	t.length = 0
	return it
}

// Height returns the height of the tree, 0 when empty.
func (t *Map[K, V]) Height() int {
	return int(t.np.height(t.root))
}

// Len returns the number of items currently in the tree.
func (t *Map[K, V]) Len() int {
	return t.length
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.np.writeString(&b, t.root)
	return b.String()
}
