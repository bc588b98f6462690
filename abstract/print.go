package abstract

import (
	"fmt"
	"io"
)

// branch says which child of its parent a printed node is.
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII rendering of the tree to w, right subtrees
// above their parents, one node per line with its key, value and height.
func (t *Map[K, V]) Print(w io.Writer) error {
	if t.root == nilID {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return t.np.print(w, t.root, "", rootBranch)
}

func (np *nodePool[K, V]) print(w io.Writer, id nodeID, prefix string, br branch) error {
	n := np.at(id)
	if n.right != nilID {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := np.print(w, n.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}
	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v → %v [%d]\n", prefix, edge, n.key, n.value, n.height); err != nil {
		return err
	}
	if n.left != nilID {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		return np.print(w, n.left, prefix+pad, leftBranch)
	}
	return nil
}
