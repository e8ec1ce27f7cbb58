// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"iter"

	"github.com/bitmark-inc/ordmap/bst"
)

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// in-order successor using the parent links
func (p *node[K, V]) next() *node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	up := p.parent
	for nil != up && p == up.right {
		p = up
		up = up.parent
	}
	return up
}

// in-order predecessor using the parent links
func (p *node[K, V]) prev() *node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	up := p.parent
	for nil != up && p == up.left {
		p = up
		up = up.parent
	}
	return up
}

// Traverse - apply visit to every node in the given order
func (tree *Tree[K, V]) Traverse(order bst.Order, visit bst.Visitor[K, V]) {
	switch order {
	case bst.PreOrder:
		preOrder(tree.root, visit)
	case bst.InOrder:
		for p := tree.root.first(); nil != p; p = p.next() {
			visit(p.key, &p.value)
		}
	case bst.PostOrder:
		postOrder(tree.root, visit)
	}
}

func preOrder[K, V any](p *node[K, V], visit bst.Visitor[K, V]) {
	if nil == p {
		return
	}
	visit(p.key, &p.value)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

func postOrder[K, V any](p *node[K, V], visit bst.Visitor[K, V]) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p.key, &p.value)
}

// All - items in ascending key order
//
// the tree must not be modified while the sequence is running
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; p = p.next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - items in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.last(); nil != p; p = p.prev() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
