// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key, returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	added := false
	tree.root, _, added = tree.insert(key, value, true, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// Reference - pointer to the value of key, a zero value is inserted
// if the key is not in the tree
//
// the pointer is valid until the next Insert, Delete or Clear
func (tree *Tree[K, V]) Reference(key K) *V {
	var zero V
	root, p, added := tree.insert(key, zero, false, tree.root)
	tree.root = root
	if added {
		tree.count += 1
	}
	return &p.value
}

// internal routine for insert
//
// returns the possibly updated sub-tree root, the node holding key
// and whether a node was added
func (tree *Tree[K, V]) insert(key K, value V, overwrite bool, p *node[K, V]) (*node[K, V], *node[K, V], bool) {
	if nil == p { // insert new node
		n := tree.newNode(key, value)
		return n, n, true
	}

	var target *node[K, V]
	added := false
	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		p.left, target, added = tree.insert(key, value, overwrite, p.left)
	case c < 0: // p.key < key
		p.right, target, added = tree.insert(key, value, overwrite, p.right)
	default:
		if overwrite {
			p.value = value
		}
		return p, p, false
	}

	if !added {
		return p, target, false
	}
	return rebalance(p), target, true
}
