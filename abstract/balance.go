package abstract

func (np *nodePool[K, V]) height(id nodeID) uint8 {
	if id == nilID {
		return 0
	}
	return np.nodes[id].height
}

// bfactor returns height(right) - height(left) for the node at id.
func (np *nodePool[K, V]) bfactor(id nodeID) int {
	n := &np.nodes[id]
	return int(np.height(n.right)) - int(np.height(n.left))
}

func (np *nodePool[K, V]) fixHeight(id nodeID) {
	n := &np.nodes[id]
	hl, hr := np.height(n.left), np.height(n.right)
	n.height = max(hl, hr) + 1
}

// rotateLeft promotes the right child of p and returns it.
//
// Before:
//
//	    p
//	   / \
//	  a   q
//	     / \
//	    b   c
//
// After:
//
//	      q
//	     / \
//	    p   c
//	   / \
//	  a   b
func (np *nodePool[K, V]) rotateLeft(p nodeID) nodeID {
	q := np.nodes[p].right
	np.nodes[p].right = np.nodes[q].left
	np.fixHeight(p)
	np.nodes[q].left = p
	np.fixHeight(q)
	return q
}

// rotateRight promotes the left child of q and returns it. It is the mirror
// image of rotateLeft.
func (np *nodePool[K, V]) rotateRight(q nodeID) nodeID {
	p := np.nodes[q].left
	np.nodes[q].left = np.nodes[p].right
	np.fixHeight(q)
	np.nodes[p].right = q
	np.fixHeight(p)
	return p
}

// balance recomputes the height of the node at id and, if its subtrees
// differ in height by two, restores the AVL property with a single or double
// rotation. It returns the id of the subtree's new root. The children of id
// must already be balanced.
func (np *nodePool[K, V]) balance(id nodeID) nodeID {
	np.fixHeight(id)
	switch np.bfactor(id) {
	case 2:
		if r := np.nodes[id].right; np.bfactor(r) < 0 {
			np.nodes[id].right = np.rotateRight(r)
		}
		return np.rotateLeft(id)
	case -2:
		if l := np.nodes[id].left; np.bfactor(l) > 0 {
			np.nodes[id].left = np.rotateLeft(l)
		}
		return np.rotateRight(id)
	}
	return id
}
