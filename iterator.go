package avlmap

import "github.com/ajwerner/avlmap/abstract"

// Iterator yields copies of a Map's entries from either end. A new Iterator
// starts over; an Iterator must not be used after the map is modified.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, abstract.Entry[K, V], abstract.Shared[K, V]]
}

// Iter returns an Iterator over every entry of m.
func (m *Map[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{
		it: abstract.MakeIter[K, V, abstract.Entry[K, V], abstract.Shared[K, V]](&m.t),
	}
}

// Next returns the smallest remaining entry.
func (it *Iterator[K, V]) Next() (k K, v V, ok bool) {
	e, ok := it.it.Next()
	return e.Key, e.Value, ok
}

// NextBack returns the largest remaining entry.
func (it *Iterator[K, V]) NextBack() (k K, v V, ok bool) {
	e, ok := it.it.NextBack()
	return e.Key, e.Value, ok
}

// Len returns the number of remaining entries.
func (it *Iterator[K, V]) Len() int { return it.it.Len() }

// MutIterator yields pointers to a Map's values from either end, allowing
// them to be updated in place. Keys must not be altered and the map must
// not be modified while the iterator is in use.
type MutIterator[K, V any] struct {
	it abstract.Iterator[K, V, abstract.MutEntry[K, V], abstract.Exclusive[K, V]]
}

// IterMut returns a MutIterator over every entry of m.
func (m *Map[K, V]) IterMut() MutIterator[K, V] {
	return MutIterator[K, V]{
		it: abstract.MakeIter[K, V, abstract.MutEntry[K, V], abstract.Exclusive[K, V]](&m.t),
	}
}

// Next returns the smallest remaining entry.
func (it *MutIterator[K, V]) Next() (k K, v *V, ok bool) {
	e, ok := it.it.Next()
	return e.Key, e.Value, ok
}

// NextBack returns the largest remaining entry.
func (it *MutIterator[K, V]) NextBack() (k K, v *V, ok bool) {
	e, ok := it.it.NextBack()
	return e.Key, e.Value, ok
}

// Len returns the number of remaining entries.
func (it *MutIterator[K, V]) Len() int { return it.it.Len() }

// DrainIterator takes ownership of a Map's entries and releases the tree as
// it is walked.
type DrainIterator[K, V any] struct {
	it abstract.Iterator[K, V, abstract.Entry[K, V], abstract.Consuming[K, V]]
}

// Drain moves every entry of m into the returned iterator, leaving m empty.
// m may be used again immediately; it does not share state with the
// iterator.
func (m *Map[K, V]) Drain() DrainIterator[K, V] {
	return DrainIterator[K, V]{it: m.t.Take()}
}

// Next returns the smallest remaining entry.
func (it *DrainIterator[K, V]) Next() (k K, v V, ok bool) {
	e, ok := it.it.Next()
	return e.Key, e.Value, ok
}

// NextBack returns the largest remaining entry.
func (it *DrainIterator[K, V]) NextBack() (k K, v V, ok bool) {
	e, ok := it.it.NextBack()
	return e.Key, e.Value, ok
}

// Len returns the number of remaining entries.
func (it *DrainIterator[K, V]) Len() int { return it.it.Len() }
