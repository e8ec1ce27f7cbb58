// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree, returns false if
// key was not present
func (tree *Tree[K, V]) Delete(key K) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(key K, p *node[K, V]) (*node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(p.key, key); {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.freeNode(p)
			return child, true
		}

		// two children: take over the key and value of the
		// neighbouring item, then drop that item's node
		var r *node[K, V]
		if tree.chooser.UseSuccessor() {
			p.right, r = tree.deleteFirst(p.right)
		} else {
			p.left, r = tree.deleteLast(p.left)
		}
		p.key = r.key
		p.value = r.value
		tree.freeNode(r)
		removed = true
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// unlink the lowest node of a sub-tree without reclaiming it
func (tree *Tree[K, V]) deleteFirst(p *node[K, V]) (*node[K, V], *node[K, V]) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p
	}
	var removed *node[K, V]
	p.left, removed = tree.deleteFirst(p.left)
	return rebalance(p), removed
}

// unlink the highest node of a sub-tree without reclaiming it
func (tree *Tree[K, V]) deleteLast(p *node[K, V]) (*node[K, V], *node[K, V]) {
	if nil == p.right {
		l := p.left
		p.left = nil
		return l, p
	}
	var removed *node[K, V]
	p.right, removed = tree.deleteLast(p.right)
	return rebalance(p), removed
}
