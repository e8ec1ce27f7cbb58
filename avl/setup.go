// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/ordmap/bst"
)

// a node in the tree
type node[K, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // longest path to a leaf counted in nodes
	nodes  int         // total nodes in this sub-tree
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	compare func(K, K) int
	chooser bst.Chooser

	pool      *node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// New - create an initially empty tree ordered by the natural order of K
//
// a nil chooser selects bst.Successor
func New[K cmp.Ordered, V any](chooser bst.Chooser) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], chooser)
}

// NewFunc - create an initially empty tree ordered by compare
func NewFunc[K, V any](compare func(K, K) int, chooser bst.Chooser) *Tree[K, V] {
	if nil == chooser {
		chooser = bst.Successor
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

// Height - height of the root, 0 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return tree.root.getHeight()
}

// Clear - remove all nodes
func (tree *Tree[K, V]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *Tree[K, V]) release(p *node[K, V]) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.freeNode(p)
}

// nil safe accessors
func (p *node[K, V]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *node[K, V]) getNodes() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// recompute height and size from the children
func (p *node[K, V]) update() {
	p.height = 1 + max(p.left.getHeight(), p.right.getHeight())
	p.nodes = 1 + p.left.getNodes() + p.right.getNodes()
}
