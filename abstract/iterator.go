package abstract

// Iterator walks a Map in order, lazily, from either end. The element type E
// and what the walk may do to the tree are determined by the Splitter S.
//
// Next and NextBack may be interleaved freely; together they yield every
// entry exactly once, as if two cursors were converging on each other.
type Iterator[K, V, E any, S Splitter[K, V, E]] struct {
	np     *nodePool[K, V]
	d      iterDeque[E]
	remain int
	s      S
}

func makeIterator[K, V, E any, S Splitter[K, V, E]](
	np *nodePool[K, V], root nodeID, length int,
) Iterator[K, V, E, S] {
	it := Iterator[K, V, E, S]{np: np, remain: length}
	if root != nilID {
		it.d.pushBack(subtreeFrame[E](root))
	}
	return it
}

// Next returns the smallest entry not yet returned by Next or NextBack.
// It returns false once the iterator is exhausted.
func (i *Iterator[K, V, E, S]) Next() (e E, ok bool) {
	for i.d.len() > 0 {
		f := i.d.popBack()
		if f.ready {
			i.remain--
			return f.elem, true
		}
		left, elem, right := i.s.split(i.np, f.id)
		if right != nilID {
			i.d.pushBack(subtreeFrame[E](right))
		}
		i.d.pushBack(elemFrame(elem))
		if left != nilID {
			i.d.pushBack(subtreeFrame[E](left))
		}
	}
	return e, false
}

// NextBack returns the largest entry not yet returned by Next or NextBack.
// It returns false once the iterator is exhausted.
func (i *Iterator[K, V, E, S]) NextBack() (e E, ok bool) {
	for i.d.len() > 0 {
		f := i.d.popFront()
		if f.ready {
			i.remain--
			return f.elem, true
		}
		left, elem, right := i.s.split(i.np, f.id)
		if left != nilID {
			i.d.pushFront(subtreeFrame[E](left))
		}
		i.d.pushFront(elemFrame(elem))
		if right != nilID {
			i.d.pushFront(subtreeFrame[E](right))
		}
	}
	return e, false
}

// Len returns the exact number of entries remaining.
func (i *Iterator[K, V, E, S]) Len() int {
	return i.remain
}
