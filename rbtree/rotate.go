// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// put child in the slot of parent that held old, or make it the root
func (tree *Tree[K, V]) replaceChild(parent *node[K, V], old *node[K, V], child *node[K, V]) {
	switch {
	case nil == parent:
		tree.root = child
	case old == parent.left:
		parent.left = child
	default:
		parent.right = child
	}
}

// left rotation at x
//
//	     p                 p
//	     |                 |
//	     x                 y
//	    / \      →        / \
//	  lx   y             x   ry
//	      / \           / \
//	    ly   ry       lx   ly
func (tree *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if nil != y.left {
		y.left.parent = x
	}
	y.parent = x.parent
	tree.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
}

// right rotation at x, the mirror of rotateLeft
func (tree *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if nil != y.right {
		y.right.parent = x
	}
	y.parent = x.parent
	tree.replaceChild(x.parent, x, y)
	y.right = x
	x.parent = y
}
