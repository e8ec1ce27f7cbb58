// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/ordmap/bst"
)

// Min - the item with the lowest key
func (tree *Tree[K, V]) Min() (K, V, bool) {
	return entry(tree.root.first())
}

// Max - the item with the highest key
func (tree *Tree[K, V]) Max() (K, V, bool) {
	return entry(tree.root.last())
}

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

// Traverse - apply visit to every node in the given order
func (tree *Tree[K, V]) Traverse(order bst.Order, visit bst.Visitor[K, V]) {
	walk(tree.root, order, visit)
}

func walk[K, V any](p *node[K, V], order bst.Order, visit bst.Visitor[K, V]) {
	if nil == p {
		return
	}
	if bst.PreOrder == order {
		visit(p.key, &p.value)
	}
	walk(p.left, order, visit)
	if bst.InOrder == order {
		visit(p.key, &p.value)
	}
	walk(p.right, order, visit)
	if bst.PostOrder == order {
		visit(p.key, &p.value)
	}
}

// All - items in ascending key order
//
// the tree must not be modified while the sequence is running
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, tree.Height())
		for p := tree.root; nil != p || len(stack) > 0; p = p.right {
			for ; nil != p; p = p.left {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - items in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, tree.Height())
		for p := tree.root; nil != p || len(stack) > 0; p = p.left {
			for ; nil != p; p = p.right {
				stack = append(stack, p)
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
