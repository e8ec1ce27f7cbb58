// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if key is in the tree
func (tree *Tree[K, V]) Search(key K) bool {
	p, _ := tree.search(key)
	return nil != p
}

// Get - the value stored for key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p, _ := tree.search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Index - zero based in-order position of key or -1 if not present
func (tree *Tree[K, V]) Index(key K) int {
	_, index := tree.search(key)
	return index
}

func (tree *Tree[K, V]) search(key K) (*node[K, V], int) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			index += p.left.getNodes() + 1
			p = p.right
		default:
			return p, index + p.left.getNodes()
		}
	}
	return nil, -1
}

// Successor - the item with the lowest key strictly above key
func (tree *Tree[K, V]) Successor(key K) (K, V, bool) {
	var succ *node[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(p.key, key) > 0 {
			succ = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return entry(succ)
}

// Predecessor - the item with the highest key strictly below key
func (tree *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	var pred *node[K, V]
	for p := tree.root; nil != p; {
		if tree.compare(p.key, key) < 0 {
			pred = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return entry(pred)
}
