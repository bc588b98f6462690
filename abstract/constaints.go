package abstract

// nodeID addresses a node in the arena. The zero id is reserved and stands
// for an absent child.
type nodeID int32

const nilID nodeID = 0

// Entry is a key and a copy of its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// MutEntry is a key and a pointer to its value as stored in the tree. The
// pointer is invalidated by the next structural modification of the tree.
type MutEntry[K, V any] struct {
	Key   K
	Value *V
}

// Splitter detaches a node into its left child, an element of type E and its
// right child. The implementation determines what the traversal is allowed
// to do with the tree: read it, mutate values in place, or take it apart.
type Splitter[K, V, E any] interface {
	split(np *nodePool[K, V], id nodeID) (left nodeID, e E, right nodeID)
}
