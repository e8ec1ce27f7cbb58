// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - add a key, or overwrite the value of an existing key,
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	p, added := tree.insert(key, value)
	if !added {
		p.value = value
	}
	return added
}

// Reference - pointer to the value of key, a zero value is inserted
// if the key is not in the tree
//
// the pointer is valid until the next Insert, Delete or Clear
func (tree *Tree[K, V]) Reference(key K) *V {
	var zero V
	p, _ := tree.insert(key, zero)
	return &p.value
}

// find or attach the node for key, a new node is a red leaf
func (tree *Tree[K, V]) insert(key K, value V) (*node[K, V], bool) {
	var parent *node[K, V]
	p := tree.root
	c := 0
	for nil != p {
		parent = p
		c = tree.compare(p.key, key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p, false
		}
	}

	n := tree.newNode(key, value, parent)
	switch {
	case nil == parent:
		tree.root = n
	case c > 0:
		parent.left = n
	default:
		parent.right = n
	}
	tree.count += 1
	tree.insertFixUp(n)
	return n, true
}

// restore the colour rules after n was added as a red node
func (tree *Tree[K, V]) insertFixUp(n *node[K, V]) {
	parent := n.parent
	if nil == parent {
		n.color = black
		return
	}
	if black == parent.color {
		return
	}

	// a red parent is never the root, so grandparent exists
	grandparent := parent.parent
	parentIsLeft := parent == grandparent.left
	uncle := grandparent.left
	if parentIsLeft {
		uncle = grandparent.right
	}

	// red parent and uncle: push the red up one level
	if red == colorOf(uncle) {
		parent.color = black
		uncle.color = black
		grandparent.color = red
		tree.insertFixUp(grandparent)
		return
	}

	// black or missing uncle: straighten a zig-zag, then rotate the
	// grandparent below the parent
	if parentIsLeft {
		if n == parent.right {
			tree.rotateLeft(parent)
			parent = n // the old parent is now its child
		}
		parent.color = black
		grandparent.color = red
		tree.rotateRight(grandparent)
	} else {
		if n == parent.left {
			tree.rotateRight(parent)
			parent = n // the old parent is now its child
		}
		parent.color = black
		grandparent.color = red
		tree.rotateLeft(grandparent)
	}
}
