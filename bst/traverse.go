// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"
)

// Traverse - apply visit to every node in the given order
//
// an invalid order visits nothing
func (tree *Tree[K, V]) Traverse(order Order, visit Visitor[K, V]) {
	switch order {
	case PreOrder:
		preOrder(tree.root, visit)
	case InOrder:
		inOrder(tree.root, visit)
	case PostOrder:
		postOrder(tree.root, visit)
	}
}

func preOrder[K, V any](p *node[K, V], visit Visitor[K, V]) {
	if nil == p {
		return
	}
	visit(p.key, &p.value)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

func inOrder[K, V any](p *node[K, V], visit Visitor[K, V]) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p.key, &p.value)
	inOrder(p.right, visit)
}

func postOrder[K, V any](p *node[K, V], visit Visitor[K, V]) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p.key, &p.value)
}

// All - in-order sequence of all entries, ascending by key
//
// the tree must not be modified while the sequence is running
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, 32)
		p := tree.root
		for nil != p || len(stack) > 0 {
			for nil != p {
				stack = append(stack, p)
				p = p.left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.right
		}
	}
}
