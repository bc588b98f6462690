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

// Config is used to configure the tree. It consists of a comparison function
// for keys and sizing hints for the node arena.
type Config[K any] struct {

	// Capacity is the number of nodes to preallocate room for. It is a hint;
	// the arena grows as needed.
	Capacity int

	cmp func(K, K) int
}

// MakeConfig constructs a Config ordering keys with cmp. cmp must define a
// strict total order: negative when a < b, zero when equal and positive when
// a > b.
func MakeConfig[K any](cmp func(K, K) int) Config[K] {
	if cmp == nil {
		panic("abstract: nil comparison function")
	}
	return Config[K]{cmp: cmp}
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }
