// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Order - the sequence a depth first traversal visits nodes in
type Order int

// traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder   Order = iota // left, node, right
	PostOrder Order = iota // left, right, node
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return "unknown"
	}
}

// Valid - true for one of the defined orders
func (o Order) Valid() bool {
	return o >= PreOrder && o <= PostOrder
}

// Visitor - called once for each node in a traversal
//
// the value may be modified in place, the key must not be changed
type Visitor[K, V any] func(key K, value *V)
