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
	"errors"
	"fmt"
)

// Check verifies the structural invariants of the tree: keys are in strictly
// increasing order, every node is AVL balanced and carries its true height,
// and the length and arena accounting agree with the number of reachable
// nodes. It returns the first violation found.
func (t *Map[K, V]) Check() error {
	var count int
	if _, err := t.checkNode(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("length %d but %d reachable nodes", t.length, count)
	}
	if live := t.np.live(); live != count {
		return fmt.Errorf("%d live arena nodes but %d reachable nodes", live, count)
	}
	return nil
}

// checkNode verifies the subtree at id, whose keys must lie strictly between
// lo and hi when those are set, and returns its height.
func (t *Map[K, V]) checkNode(id nodeID, lo, hi *K, count *int) (uint8, error) {
	if id == nilID {
		return 0, nil
	}
	if int(id) >= len(t.np.nodes) {
		return 0, fmt.Errorf("node id %d out of arena bounds %d", id, len(t.np.nodes))
	}
	*count++
	if *count > t.np.live() {
		return 0, errors.New("cycle or shared node detected")
	}
	n := t.np.at(id)
	if lo != nil && t.cfg.cmp(*lo, n.key) >= 0 {
		return 0, fmt.Errorf("key %v not greater than ancestor %v", n.key, *lo)
	}
	if hi != nil && t.cfg.cmp(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("key %v not less than ancestor %v", n.key, *hi)
	}
	hl, err := t.checkNode(n.left, lo, &n.key, count)
	if err != nil {
		return 0, err
	}
	hr, err := t.checkNode(n.right, &n.key, hi, count)
	if err != nil {
		return 0, err
	}
	if bf := int(hr) - int(hl); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node %v unbalanced: factor %d", n.key, bf)
	}
	h := max(hl, hr) + 1
	if n.height != h {
		return 0, fmt.Errorf("node %v has height %d, want %d", n.key, n.height, h)
	}
	return h, nil
}

func (t *Map[K, V]) mustCheck() {
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("abstract: invariant violated: %v", err))
	}
}
