package abstract

// Shared is the Splitter for read-only traversal. It yields copies of the
// entries and leaves the tree untouched.
type Shared[K, V any] struct{}

func (Shared[K, V]) split(np *nodePool[K, V], id nodeID) (nodeID, Entry[K, V], nodeID) {
	n := np.at(id)
	return n.left, Entry[K, V]{Key: n.key, Value: n.value}, n.right
}

// Exclusive is the Splitter for traversal which updates values in place. The
// tree must not be structurally modified while the traversal is in use.
type Exclusive[K, V any] struct{}

func (Exclusive[K, V]) split(np *nodePool[K, V], id nodeID) (nodeID, MutEntry[K, V], nodeID) {
	n := np.at(id)
	return n.left, MutEntry[K, V]{Key: n.key, Value: &n.value}, n.right
}

// Consuming is the Splitter for traversal which takes the tree apart. Each
// node is released to the pool as soon as it is split.
type Consuming[K, V any] struct{}

func (Consuming[K, V]) split(np *nodePool[K, V], id nodeID) (nodeID, Entry[K, V], nodeID) {
	n := np.at(id)
	left, e, right := n.left, Entry[K, V]{Key: n.key, Value: n.value}, n.right
	np.put(id)
	return left, e, right
}
