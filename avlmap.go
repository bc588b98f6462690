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

// Package avlmap implements an in-memory ordered map backed by an AVL tree.
//
// Insert, lookup and removal take O(log n) time and iteration yields entries
// in key order, from either end. A Map is not safe for concurrent use; guard
// it with a sync.RWMutex if it is shared between goroutines.
package avlmap

import (
	"cmp"
	"io"
	"iter"

	"github.com/ajwerner/avlmap/abstract"
)

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	t abstract.Map[K, V]
}

// New returns an empty Map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K], opts...)
}

// MakeMap returns an empty Map ordered by cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func MakeMap[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	cfg := abstract.MakeConfig(cmp)
	cfg.Capacity = o.capacity
	return &Map[K, V]{t: abstract.MakeMap[K, V](cfg)}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	if p := m.t.Get(k); p != nil {
		return *p, true
	}
	return v, false
}

// GetMut returns a pointer to the value stored under k, through which the
// value may be updated in place. The pointer is invalidated by the next
// Insert, Remove or Pop.
func (m *Map[K, V]) GetMut(k K) (*V, bool) {
	p := m.t.Get(k)
	return p, p != nil
}

// Insert stores v under k. If k was already present, its previous value is
// returned and the length is unchanged.
func (m *Map[K, V]) Insert(k K, v V) (old V, replaced bool) {
	return m.t.Upsert(k, v)
}

// Remove deletes k, reporting whether it was present. Removing an absent key
// is a no-op.
func (m *Map[K, V]) Remove(k K) bool {
	_, found := m.t.Delete(k)
	return found
}

// Pop deletes k and returns the value it held.
func (m *Map[K, V]) Pop(k K) (V, bool) {
	return m.t.Delete(k)
}

// Reset removes all entries, retaining allocated memory for reuse.
func (m *Map[K, V]) Reset() { m.t.Reset() }

// Clone returns an independent copy of the map. Values are copied
// shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// String renders the tree structure. See abstract.Map.String.
func (m *Map[K, V]) String() string { return m.t.String() }

// Print writes a sideways drawing of the tree to w.
func (m *Map[K, V]) Print(w io.Writer) error { return m.t.Print(w) }

// Check verifies the map's internal invariants. A non-nil error indicates a
// bug in this package.
func (m *Map[K, V]) Check() error { return m.t.Check() }

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.NextBack(); ok; k, v, ok = it.NextBack() {
			if !yield(k, v) {
				return
			}
		}
	}
}
