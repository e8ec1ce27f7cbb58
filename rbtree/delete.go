// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Delete - removes a specific item from the tree, returns false if
// key was not present
func (tree *Tree[K, V]) Delete(key K) bool {
	p := tree.find(key)
	if nil == p {
		return false
	}
	tree.deleteNode(p)
	tree.count -= 1
	return true
}

// internal: remove p, or the neighbour whose item p takes over
func (tree *Tree[K, V]) deleteNode(p *node[K, V]) {
	if nil != p.left && nil != p.right {
		var r *node[K, V]
		if tree.chooser.UseSuccessor() {
			r = p.right.first()
		} else {
			r = p.left.last()
		}
		p.key = r.key
		p.value = r.value
		p = r
	}

	// p now has at most one child
	child := p.left
	if nil == child {
		child = p.right
	}

	switch {
	case nil != child:
		child.parent = p.parent
		tree.replaceChild(p.parent, p, child)
		if black == p.color {
			tree.deleteFixUp(child)
		}

	case nil == p.parent:
		tree.root = nil

	default:
		// a black leaf is balanced while still linked, it stands
		// in for the nil child that replaces it
		if black == p.color {
			tree.deleteFixUp(p)
		}
		if p == p.parent.left {
			p.parent.left = nil
		} else {
			p.parent.right = nil
		}
	}
	tree.freeNode(p)
}

// resolve the missing black on the path through x
func (tree *Tree[K, V]) deleteFixUp(x *node[K, V]) {
	for x != tree.root && black == x.color {
		parent := x.parent
		if x == parent.left {
			sibling := parent.right
			if red == colorOf(sibling) {
				sibling.color = black
				parent.color = red
				tree.rotateLeft(parent)
				sibling = parent.right
			}
			if black == colorOf(sibling.left) && black == colorOf(sibling.right) {
				sibling.color = red
				x = parent
				continue
			}
			if black == colorOf(sibling.right) {
				sibling.left.color = black
				sibling.color = red
				tree.rotateRight(sibling)
				sibling = parent.right
			}
			sibling.color = parent.color
			parent.color = black
			sibling.right.color = black
			tree.rotateLeft(parent)
			x = tree.root
		} else {
			sibling := parent.left
			if red == colorOf(sibling) {
				sibling.color = black
				parent.color = red
				tree.rotateRight(parent)
				sibling = parent.left
			}
			if black == colorOf(sibling.left) && black == colorOf(sibling.right) {
				sibling.color = red
				x = parent
				continue
			}
			if black == colorOf(sibling.left) {
				sibling.right.color = black
				sibling.color = red
				tree.rotateLeft(sibling)
				sibling = parent.left
			}
			sibling.color = parent.color
			parent.color = black
			sibling.left.color = black
			tree.rotateRight(parent)
			x = tree.root
		}
	}
	x.color = black
}
