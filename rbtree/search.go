// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Search - true if key is in the tree
func (tree *Tree[K, V]) Search(key K) bool {
	return nil != tree.find(key)
}

// Get - the value stored for key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.find(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

func (tree *Tree[K, V]) find(key K) *node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Min - the item with the lowest key
func (tree *Tree[K, V]) Min() (K, V, bool) {
	return entry(tree.root.first())
}

// Max - the item with the highest key
func (tree *Tree[K, V]) Max() (K, V, bool) {
	return entry(tree.root.last())
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

func entry[K, V any](p *node[K, V]) (K, V, bool) {
	if nil == p {
		var k K
		var v V
		return k, v, false
	}
	return p.key, p.value, true
}
