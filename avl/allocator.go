// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// limit on reclaimed nodes held by one tree
const poolLimit = 1024

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *node[K, V] {
	p := tree.pool
	if nil == p {
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
			nodes:  1,
		}
	}
	tree.pool = p.right
	tree.freeNodes -= 1

	p.right = nil // clear freelist pointer
	p.key = key
	p.value = value
	p.height = 1
	p.nodes = 1
	return p
}

// reclaim a node that is no longer linked into the tree
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	var k K
	var v V
	p.left = nil
	p.key = k
	p.value = v
	p.height = 0
	p.nodes = 0
	if tree.freeNodes >= poolLimit {
		p.right = nil
		return
	}
	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
