// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - remove one node with key, returns false if key was not present
func (tree *Tree[K, V]) Delete(key K) bool {
	if 0 == tree.count {
		return false
	}
	removed := tree.delete(key, &tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(key K, pp **node[K, V]) bool {
	p := *pp
	if nil == p { // key not in tree
		return false
	}

	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		return tree.delete(key, &p.left)
	case c < 0: // p.key < key
		return tree.delete(key, &p.right)
	}

	// found: splice out p, or overwrite it with a replacement
	switch {
	case nil == p.left:
		*pp = p.right
		p.right = nil
	case nil == p.right:
		*pp = p.left
		p.left = nil
	case tree.chooser.UseSuccessor():
		r := removeFirst(&p.right)
		p.key = r.key
		p.value = r.value
	default:
		r := removeLast(&p.left)
		p.key = r.key
		p.value = r.value
	}
	return true
}

// unlink the lowest node of a sub-tree, its right child takes its place
func removeFirst[K, V any](pp **node[K, V]) *node[K, V] {
	for nil != (*pp).left {
		pp = &(*pp).left
	}
	p := *pp
	*pp = p.right
	p.right = nil
	return p
}

// unlink the highest node of a sub-tree, its left child takes its place
func removeLast[K, V any](pp **node[K, V]) *node[K, V] {
	for nil != (*pp).right {
		pp = &(*pp).right
	}
	p := *pp
	*pp = p.left
	p.left = nil
	return p
}
