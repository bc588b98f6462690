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

// nodePool is the arena backing a single tree. Slot 0 is a sentinel whose
// height is always 0 so that heights of absent children need no special
// casing. Removed nodes are cleared and their ids pushed onto free, to be
// handed out again by get before the arena grows.
type nodePool[K, V any] struct {
	nodes []node[K, V]
	free  []nodeID
}

func makeNodePool[K, V any](capacity int) nodePool[K, V] {
	np := nodePool[K, V]{
		nodes: make([]node[K, V], 1, max(capacity, 0)+1),
	}
	return np
}

// at returns the node for id. The pointer is only valid until the next call
// to get, which may grow the arena.
func (np *nodePool[K, V]) at(id nodeID) *node[K, V] {
	return &np.nodes[id]
}

// get allocates a leaf holding k and v, reusing a freed slot if one exists.
func (np *nodePool[K, V]) get(k K, v V) nodeID {
	var id nodeID
	if n := len(np.free); n > 0 {
		id = np.free[n-1]
		np.free = np.free[:n-1]
	} else {
		if len(np.nodes) == 0 {
			np.nodes = append(np.nodes, node[K, V]{})
		}
		id = nodeID(len(np.nodes))
		np.nodes = append(np.nodes, node[K, V]{})
	}
	np.nodes[id] = node[K, V]{key: k, value: v, height: 1}
	return id
}

// put releases id back to the pool. The node is zeroed so the arena does not
// retain the key and value.
func (np *nodePool[K, V]) put(id nodeID) {
	if id == nilID {
		panic("abstract: freeing the sentinel node")
	}
	np.nodes[id] = node[K, V]{}
	np.free = append(np.free, id)
}

// live returns the number of allocated, non-free nodes.
func (np *nodePool[K, V]) live() int {
	if len(np.nodes) == 0 {
		return 0
	}
	return len(np.nodes) - 1 - len(np.free)
}

// reset drops every node while retaining the arena's capacity.
func (np *nodePool[K, V]) reset() {
	if len(np.nodes) > 0 {
		clear(np.nodes)
		np.nodes = np.nodes[:1]
	}
	np.free = np.free[:0]
}

func (np *nodePool[K, V]) clone() nodePool[K, V] {
	c := nodePool[K, V]{
		nodes: make([]node[K, V], len(np.nodes), cap(np.nodes)),
		free:  make([]nodeID, len(np.free)),
	}
	copy(c.nodes, np.nodes)
	copy(c.free, np.free)
	return c
}
