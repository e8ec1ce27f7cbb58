// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// a node in the tree
type node[K, V any] struct {
	left  *node[K, V] // left sub-tree, keys <= key
	right *node[K, V] // right sub-tree, keys >= key
	key   K
	value V
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	compare func(K, K) int
	chooser Chooser
}

// New - create an initially empty tree ordered by the natural order of K
//
// a nil chooser selects Successor
func New[K cmp.Ordered, V any](chooser Chooser) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], chooser)
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare(a, b) returns <0, 0, >0 for a < b, a == b, a > b
func NewFunc[K, V any](compare func(K, K) int, chooser Chooser) *Tree[K, V] {
	if nil == chooser {
		chooser = Successor
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		chooser: chooser,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - number of nodes on the longest root to leaf path
//
// an empty tree has height 0
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// Clear - remove all nodes
func (tree *Tree[K, V]) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: unlink children before their parent
func release[K, V any](p *node[K, V]) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	p.left = nil
	p.right = nil
}
