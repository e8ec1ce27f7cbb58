// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/bitmark-inc/ordmap/bst"
)

// Color - of a node
type Color uint8

const (
	red   Color = 0
	black Color = 1
)

// String - readable color name
func (c Color) String() string {
	if red == c {
		return "red"
	}
	return "black"
}

// a node in the tree
type node[K, V any] struct {
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V] // nil for the root
	key    K
	value  V
	color  Color
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *node[K, V]
	count   int
	compare func(K, K) int
	chooser bst.Chooser

	pool      *node[K, V] // reclaimed nodes linked through parent
	freeNodes int
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

// nil children are black
func colorOf[K, V any](p *node[K, V]) Color {
	if nil == p {
		return black
	}
	return p.color
}

const poolLimit = 1024

// allocate a red node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V, parent *node[K, V]) *node[K, V] {
	p := tree.pool
	if nil == p {
		p = &node[K, V]{}
	} else {
		tree.pool = p.parent
		tree.freeNodes -= 1
	}
	p.key = key
	p.value = value
	p.parent = parent
	p.color = red
	return p
}

// reclaim a node that is no longer linked into the tree
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	var k K
	var v V
	p.key = k
	p.value = v
	p.left = nil
	p.right = nil
	p.color = red
	p.parent = nil
	if tree.freeNodes < poolLimit {
		p.parent = tree.pool
		tree.pool = p
		tree.freeNodes += 1
	}
}
