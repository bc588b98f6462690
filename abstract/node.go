package abstract

import (
	"fmt"
	"strings"
)

type node[K, V any] struct {
	key         K
	value       V
	height      uint8
	left, right nodeID
}

// insert inserts k and v into the subtree rooted at id, which may be absent.
// It returns the id of the rebalanced subtree and, if k was already present,
// the value it displaced. A replacement changes no structure or heights.
func (t *Map[K, V]) insert(id nodeID, k K, v V) (_ nodeID, old V, replaced bool) {
	np := &t.np
	if id == nilID {
		return np.get(k, v), old, false
	}
	// Child ids are re-read through np after each recursive call since an
	// allocation may have moved the arena.
	switch c := t.cfg.cmp(k, np.nodes[id].key); {
	case c < 0:
		var left nodeID
		left, old, replaced = t.insert(np.nodes[id].left, k, v)
		np.nodes[id].left = left
	case c > 0:
		var right nodeID
		right, old, replaced = t.insert(np.nodes[id].right, k, v)
		np.nodes[id].right = right
	default:
		n := np.at(id)
		old = n.value
		n.key, n.value = k, v
		return id, old, true
	}
	if replaced {
		return id, old, true
	}
	return np.balance(id), old, false
}

// removeMin detaches the minimum node of the subtree rooted at id. It returns
// the rebalanced remainder of the subtree and the detached node, whose
// children are left for the caller to overwrite.
func (np *nodePool[K, V]) removeMin(id nodeID) (rest, minID nodeID) {
	n := np.at(id)
	if n.left == nilID {
		return n.right, id
	}
	n.left, minID = np.removeMin(n.left)
	return np.balance(id), minID
}

// remove removes k from the subtree rooted at id. It returns the id of the
// rebalanced subtree, which is nilID if the subtree became empty, and the
// removed value if k was found. The removed node is returned to the pool.
func (t *Map[K, V]) remove(id nodeID, k K) (_ nodeID, out V, found bool) {
	np := &t.np
	if id == nilID {
		return nilID, out, false
	}
	n := np.at(id)
	switch c := t.cfg.cmp(k, n.key); {
	case c < 0:
		n.left, out, found = t.remove(n.left, k)
	case c > 0:
		n.right, out, found = t.remove(n.right, k)
	default:
		out = n.value
		left, right := n.left, n.right
		np.put(id)
		if right == nilID {
			return left, out, true
		}
		rest, minID := np.removeMin(right)
		m := np.at(minID)
		m.left, m.right = left, rest
		return np.balance(minID), out, true
	}
	if !found {
		return id, out, false
	}
	return np.balance(id), out, true
}

// find returns a pointer to the value stored under k, or nil.
func (t *Map[K, V]) find(k K) *V {
	np := &t.np
	for id := t.root; id != nilID; {
		n := np.at(id)
		switch c := t.cfg.cmp(k, n.key); {
		case c < 0:
			id = n.left
		case c > 0:
			id = n.right
		default:
			return &n.value
		}
	}
	return nil
}

func (np *nodePool[K, V]) writeString(b *strings.Builder, id nodeID) {
	n := np.at(id)
	if n.left != nilID {
		b.WriteString("(")
		np.writeString(b, n.left)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
	if n.right != nilID {
		b.WriteString("(")
		np.writeString(b, n.right)
		b.WriteString(")")
	}
}
