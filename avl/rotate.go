// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single left rotation, right child becomes the sub-tree root
//
//	   p              r
//	  / \            / \
//	 a   r    →     p   c
//	    / \        / \
//	   b   c      a   b
func rotateLeft[K, V any](p *node[K, V]) *node[K, V] {
	r := p.right
	p.right = r.left
	r.left = p
	p.update()
	r.update()
	return r
}

// single right rotation, left child becomes the sub-tree root
//
//	     p          l
//	    / \        / \
//	   l   c  →   a   p
//	  / \            / \
//	 a   b          b   c
func rotateRight[K, V any](p *node[K, V]) *node[K, V] {
	l := p.left
	p.left = l.right
	l.right = p
	p.update()
	l.update()
	return l
}

// double LR rotation: the left child's right child becomes the root
func rotateLeftRight[K, V any](p *node[K, V]) *node[K, V] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double RL rotation: the right child's left child becomes the root
func rotateRightLeft[K, V any](p *node[K, V]) *node[K, V] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// recompute p after a child sub-tree changed and restore the height
// balance at p, returns the possibly new sub-tree root
func rebalance[K, V any](p *node[K, V]) *node[K, V] {
	p.update()
	switch p.left.getHeight() - p.right.getHeight() {
	case 2: // left branch is too high
		l := p.left
		if l.left.getHeight() >= l.right.getHeight() {
			return rotateRight(p)
		}
		return rotateLeftRight(p)
	case -2: // right branch is too high
		r := p.right
		if r.right.getHeight() >= r.left.getHeight() {
			return rotateLeft(p)
		}
		return rotateRightLeft(p)
	}
	return p
}
