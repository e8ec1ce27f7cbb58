// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"cmp"
	"iter"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/bst"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/rbtree"
)

// operations common to both balanced trees
type engine[K, V any] interface {
	Insert(key K, value V) bool
	Reference(key K) *V
	Delete(key K) bool
	Search(key K) bool
	Get(key K) (V, bool)
	Min() (K, V, bool)
	Max() (K, V, bool)
	Successor(key K) (K, V, bool)
	Predecessor(key K) (K, V, bool)
	Traverse(order bst.Order, visit bst.Visitor[K, V])
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Height() int
	Count() int
	IsEmpty() bool
	Clear()
	Check() error
}

// Map - ordered map of unique keys
type Map[K, V any] struct {
	variant Variant
	tree    engine[K, V]
}

// New - create an empty map ordered by the natural order of K
//
// a nil chooser selects bst.Successor
func New[K cmp.Ordered, V any](variant Variant, chooser bst.Chooser) (*Map[K, V], error) {
	return NewFunc[K, V](cmp.Compare[K], variant, chooser)
}

// NewFunc - create an empty map ordered by compare
//
// compare must be a total order: negative, zero or positive as a is
// below, equal to or above b
func NewFunc[K, V any](compare func(a K, b K) int, variant Variant, chooser bst.Chooser) (*Map[K, V], error) {
	m := &Map[K, V]{
		variant: variant,
	}
	switch variant {
	case AVL:
		m.tree = avl.NewFunc[K, V](compare, chooser)
	case RedBlack:
		m.tree = rbtree.NewFunc[K, V](compare, chooser)
	default:
		return nil, fault.ErrInvalidVariant
	}
	return m, nil
}

// Variant - the balancing scheme in use
func (m *Map[K, V]) Variant() Variant {
	return m.variant
}

// Insert - add a key or replace the value of an existing key,
// returns true if the key was added
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.tree.Insert(key, value)
}

// Delete - remove a key, returns false if the key was not present
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Delete(key)
}

// Search - true if key is present
func (m *Map[K, V]) Search(key K) bool {
	return m.tree.Search(key)
}

// ContainsKey - true if key is present
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.tree.Search(key)
}

// Get - the value for key
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// At - pointer to the value for key, a zero value is inserted if
// the key is not present
//
// the pointer is only valid until the next Insert, Delete, At or Clear
func (m *Map[K, V]) At(key K) *V {
	return m.tree.Reference(key)
}

// Min - the lowest key and its value
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.tree.Min()
}

// Max - the highest key and its value
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.tree.Max()
}

// Successor - the nearest key strictly above key
func (m *Map[K, V]) Successor(key K) (K, V, bool) {
	return m.tree.Successor(key)
}

// Predecessor - the nearest key strictly below key
func (m *Map[K, V]) Predecessor(key K) (K, V, bool) {
	return m.tree.Predecessor(key)
}

// Traverse - call visit for each entry in the given order, the value
// may be updated through the pointer but the map must not be modified
func (m *Map[K, V]) Traverse(order bst.Order, visit bst.Visitor[K, V]) {
	m.tree.Traverse(order, visit)
}

// All - entries in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Backward - entries in descending key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.tree.Backward()
}

// Height - nodes on the longest root to leaf path, 0 when empty
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Size - number of keys
func (m *Map[K, V]) Size() int {
	return m.tree.Count()
}

// IsEmpty - true if there are no keys
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Clear - remove all keys
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Check - verify the invariants of the underlying tree
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}
